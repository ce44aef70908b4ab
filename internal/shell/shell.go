package shell

import "fmt"

// Op는 export 문의 종류다.
type Op int

const (
	// OpSet은 값을 그대로 대입한다: export NAME=VALUE
	OpSet Op = iota
	// OpPrepend는 기존 값 앞에 붙인다: export NAME="VALUE:$NAME"
	OpPrepend
	// OpAppend는 기존 값 뒤에 붙인다: export NAME="$NAME:VALUE"
	OpAppend
)

// String은 로그 출력용 이름을 반환한다.
func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpPrepend:
		return "prepend"
	case OpAppend:
		return "append"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Export는 값을 따옴표 없이 그대로 쓰는 export 문을 생성한다.
// 따옴표가 필요하면 호출자가 value에 직접 포함해야 한다.
func Export(name, value string) string {
	return fmt.Sprintf("export %s=%s", name, value)
}

// Prepend는 value를 기존 변수 앞에 붙이는 export 문을 생성한다.
func Prepend(name, value string) string {
	return fmt.Sprintf("export %s=\"%s:$%s\"", name, value, name)
}

// AppendEnd는 value를 기존 변수 뒤에 붙이는 export 문을 생성한다.
func AppendEnd(name, value string) string {
	return fmt.Sprintf("export %s=\"$%s:%s\"", name, name, value)
}

// Statement는 op에 맞는 export 문을 생성한다.
func Statement(op Op, name, value string) string {
	switch op {
	case OpPrepend:
		return Prepend(name, value)
	case OpAppend:
		return AppendEnd(name, value)
	default:
		return Export(name, value)
	}
}

package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/envperm/internal/profile"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// posixLoginShells는 bash 계열 프로필 파일을 읽는 셸이다.
var posixLoginShells = map[string]bool{
	"bash": true,
	"sh":   true,
	"dash": true,
	"ksh":  true,
}

// CheckShell은 $SHELL이 프로필 파일을 읽는 POSIX 셸인지 확인한다.
func CheckShell() DiagResult {
	sh := filepath.Base(os.Getenv("SHELL"))
	switch {
	case sh == "." || sh == "":
		return DiagResult{
			Name:    "shell",
			Status:  StatusWarn,
			Message: "$SHELL이 설정되지 않았습니다",
		}
	case posixLoginShells[sh]:
		return DiagResult{
			Name:    "shell",
			Status:  StatusOK,
			Message: sh,
		}
	default:
		return DiagResult{
			Name:    "shell",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s은(는) bash 프로필 파일을 읽지 않을 수 있습니다", sh),
			Fix:     "로그인 셸의 시작 파일에서 ~/.profile을 source 하세요",
		}
	}
}

// CheckHome은 홈 디렉토리를 확인할 수 있는지 검사한다.
func CheckHome(home func() (string, error)) DiagResult {
	var dir string
	err := profile.ErrNoHome
	if home != nil {
		dir, err = home()
	}
	if err != nil || dir == "" {
		return DiagResult{
			Name:    "home",
			Status:  StatusFail,
			Message: "홈 디렉토리를 확인할 수 없습니다",
			Fix:     "HOME 환경변수를 설정하거나 설정 파일에 home을 지정하세요",
		}
	}
	return DiagResult{
		Name:    "home",
		Status:  StatusOK,
		Message: dir,
	}
}

// CheckProfiles는 후보 프로필 파일별 존재 여부와 실제 기록 대상을 보고한다.
func CheckProfiles(r *profile.Resolver) []DiagResult {
	cands, err := r.Inspect()
	if err != nil {
		return []DiagResult{{
			Name:    "profiles",
			Status:  StatusFail,
			Message: err.Error(),
		}}
	}

	var results []DiagResult
	for _, c := range cands {
		name := filepath.Base(c.Path)
		if c.Exists {
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusOK,
				Message: fmt.Sprintf("%s 있음", c.Path),
			})
		} else {
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s 없음", c.Path),
			})
		}
	}

	path, exists, err := r.Locate()
	switch {
	case err != nil:
		results = append(results, DiagResult{
			Name:    "target",
			Status:  StatusFail,
			Message: err.Error(),
		})
	case exists:
		results = append(results, DiagResult{
			Name:    "target",
			Status:  StatusOK,
			Message: fmt.Sprintf("export 문이 %s에 추가됩니다", path),
		})
	default:
		results = append(results, DiagResult{
			Name:    "target",
			Status:  StatusWarn,
			Message: fmt.Sprintf("첫 쓰기 시 %s이(가) 생성됩니다", path),
		})
	}
	return results
}

// RunAll은 모든 진단을 실행한다.
func RunAll(r *profile.Resolver) []DiagResult {
	var results []DiagResult
	results = append(results, CheckShell())
	home := CheckHome(r.Home)
	results = append(results, home)
	if home.Status == StatusFail {
		return results
	}
	results = append(results, CheckProfiles(r)...)
	return results
}

// Package envperm permanently sets environment variables by appending export
// statements to the user's login shell profile (~/.bash_profile, ~/.bash_login
// or ~/.profile, whichever opens first; ~/.bash_profile is created when none
// exist).
//
//	// export DUMMY=1, only when DUMMY is not already defined
//	envperm.CheckOrSet("DUMMY", "1")
//	// export PATH="$HOME/some/cool/bin:$PATH"
//	envperm.Append("PATH", "$HOME/some/cool/bin")
//	// export PATH="$PATH:$HOME/some/cooler/bin"
//	envperm.AppendToEnd("PATH", "$HOME/some/cooler/bin")
//	// export DUMMY="/something"
//	envperm.Set("DUMMY", `"/something"`)
//
// Existing profile content is never read or rewritten. Every call appends a
// new line, so calling Set twice leaves two assignments behind.
package envperm

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/hbjs97/envperm/internal/logging"
	"github.com/hbjs97/envperm/internal/profile"
	"github.com/hbjs97/envperm/internal/shell"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

var (
	// ErrNoHome는 홈 디렉토리를 확인할 수 없을 때 반환된다.
	ErrNoHome = profile.ErrNoHome
	// ErrProfile는 프로필 파일을 열거나 생성할 수 없을 때 반환된다.
	ErrProfile = profile.ErrProfile
	// ErrWrite는 프로필 파일 쓰기 또는 flush가 실패했을 때 반환된다.
	ErrWrite = errors.New("프로필 파일에 쓸 수 없습니다")
)

// Writer는 프로필 파일에 export 문을 추가한다.
type Writer struct {
	resolver  *profile.Resolver
	lookupEnv func(string) (string, bool)
	logger    *zerolog.Logger
	lastPath  string
}

// Option은 Writer 설정을 변경한다.
type Option func(*Writer)

// WithFs는 프로필 파일을 다룰 파일시스템을 지정한다.
func WithFs(fs afero.Fs) Option {
	return func(w *Writer) { w.resolver.Fs = fs }
}

// WithHome은 홈 디렉토리 조회 함수를 지정한다.
func WithHome(home func() (string, error)) Option {
	return func(w *Writer) { w.resolver.Home = home }
}

// WithCandidates는 프로필 후보 파일 이름과 순서를 지정한다.
func WithCandidates(names []string) Option {
	return func(w *Writer) { w.resolver.Candidates = names }
}

// WithLookupEnv는 CheckOrSet이 사용할 환경변수 조회 함수를 지정한다.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(w *Writer) { w.lookupEnv = lookup }
}

// WithLogger는 전역 로거 대신 사용할 로거를 지정한다.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Writer) { w.logger = &logger }
}

// New는 기본값(OS 파일시스템, $HOME, 현재 프로세스 환경)으로 Writer를 생성한다.
func New(opts ...Option) *Writer {
	w := &Writer{
		resolver:  profile.NewResolver(),
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Set은 변수 존재 여부와 관계없이 export NAME=VALUE를 추가한다.
// value는 그대로 기록되므로 따옴표가 필요하면 직접 포함해야 한다.
func (w *Writer) Set(name, value string) error {
	return w.write(shell.OpSet, name, value)
}

// CheckOrSet은 name이 현재 프로세스 환경에 정의되어 있으면 아무것도 하지 않고,
// 없으면 Set을 호출한다. 빈 값으로 정의된 변수도 정의된 것으로 본다.
func (w *Writer) CheckOrSet(name, value string) error {
	if w.IsSet(name) {
		w.log().Debug().Str("name", name).Msg("already defined, skipping")
		return nil
	}
	return w.Set(name, value)
}

// Append는 export NAME="VALUE:$NAME"를 추가한다 (기존 값 앞에 붙음).
func (w *Writer) Append(name, value string) error {
	return w.write(shell.OpPrepend, name, value)
}

// AppendToEnd는 export NAME="$NAME:VALUE"를 추가한다 (기존 값 뒤에 붙음).
func (w *Writer) AppendToEnd(name, value string) error {
	return w.write(shell.OpAppend, name, value)
}

// IsSet은 name이 현재 프로세스 환경에 정의되어 있는지 반환한다.
func (w *Writer) IsSet(name string) bool {
	_, ok := w.lookupEnv(name)
	return ok
}

// LastPath는 마지막으로 성공한 쓰기가 실제로 기록된 프로필 경로를 반환한다.
// 아직 쓰기가 없었으면 빈 문자열이다.
func (w *Writer) LastPath() string {
	return w.lastPath
}

// ProfilePath는 다음 쓰기가 기록될 프로필 경로를 반환한다. 파일은 생성하지 않는다.
func (w *Writer) ProfilePath() (path string, exists bool, err error) {
	return w.resolver.Locate()
}

func (w *Writer) write(op shell.Op, name, value string) error {
	f, path, err := w.resolver.Open()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(bw, "\n%s\n", shell.Statement(op, name, value)); err != nil {
		f.Close()
		return fmt.Errorf("envperm.write: %w: %w", ErrWrite, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("envperm.write: %w: %w", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("envperm.write: %w: %w", ErrWrite, err)
	}

	w.lastPath = path
	w.log().Debug().
		Str("op", op.String()).
		Str("name", name).
		Str("profile", path).
		Msg("export appended")
	return nil
}

func (w *Writer) log() *zerolog.Logger {
	if w.logger != nil {
		return w.logger
	}
	l := logging.GetLogger("envperm")
	return &l
}

var std = New()

// Set은 기본 Writer로 Writer.Set을 호출한다.
func Set(name, value string) error { return std.Set(name, value) }

// CheckOrSet은 기본 Writer로 Writer.CheckOrSet을 호출한다.
func CheckOrSet(name, value string) error { return std.CheckOrSet(name, value) }

// Append는 기본 Writer로 Writer.Append를 호출한다.
func Append(name, value string) error { return std.Append(name, value) }

// AppendToEnd는 기본 Writer로 Writer.AppendToEnd를 호출한다.
func AppendToEnd(name, value string) error { return std.AppendToEnd(name, value) }

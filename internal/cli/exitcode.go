package cli

import (
	"errors"
)

// ExitCode는 envperm의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다 (잘못된 인자 포함).
	ExitGeneral ExitCode = 1
	// ExitNoHome는 홈 디렉토리 확인 실패다.
	ExitNoHome ExitCode = 2
	// ExitProfile는 프로필 파일 열기/생성 실패다.
	ExitProfile ExitCode = 3
	// ExitWrite는 프로필 파일 쓰기/flush 실패다.
	ExitWrite ExitCode = 4
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrNoHome):
		return ExitNoHome
	case errors.Is(err, ErrProfile):
		return ExitProfile
	case errors.Is(err, ErrWrite):
		return ExitWrite
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}

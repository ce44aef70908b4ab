package cli

import (
	"github.com/hbjs97/envperm"
	"github.com/hbjs97/envperm/internal/config"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrNoHome는 홈 디렉토리를 확인할 수 없을 때의 sentinel error다.
	ErrNoHome = envperm.ErrNoHome
	// ErrProfile는 프로필 파일을 열거나 생성할 수 없을 때의 sentinel error다.
	ErrProfile = envperm.ErrProfile
	// ErrWrite는 프로필 파일 쓰기 실패를 나타내는 sentinel error다.
	ErrWrite = envperm.ErrWrite
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)

// Package logging configures the zerolog logger shared by the envperm CLI and
// library. Until Setup is called every logger it hands out is disabled, so
// library callers see no output.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var base = zerolog.Nop()

// LevelForVerbosity는 -v 횟수를 zerolog 레벨로 변환한다.
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// ParseLevel은 설정 파일의 log_level 문자열을 해석한다.
// 빈 문자열이면 warn이다.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(s)
}

// Setup은 로거가 out에 콘솔 형식으로 출력하도록 설정한다.
func Setup(out io.Writer, level zerolog.Level) {
	if out == nil {
		out = os.Stderr
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}
	base = zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if level <= zerolog.DebugLevel {
		base = base.With().Caller().Logger()
	}

	base.Debug().Str("level", level.String()).Msg("Logger initialized")
}

// Disable은 Setup 이전 상태(출력 없음)로 되돌린다.
func Disable() {
	base = zerolog.Nop()
}

// GetLogger는 component 필드가 붙은 로거를 반환한다.
func GetLogger(name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/hbjs97/envperm/internal/logging"
	"github.com/hbjs97/envperm/internal/profile"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 envperm 설정 파일의 최상위 구조체다. 모든 키는 선택 사항이다.
type Config struct {
	Version  int      `toml:"version"`
	Home     string   `toml:"home"`
	Profiles []string `toml:"profiles"`
	LogLevel string   `toml:"log_level"`
}

// DefaultPath는 $XDG_CONFIG_HOME/envperm/config.toml을 반환한다.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "envperm", "config.toml")
}

// Default는 기본값이 채워진 Config를 반환한다.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML로 저장한다 (0600 권한, 상위 디렉토리 0700).
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return f.Close()
}

// HomeFunc는 프로필 검색에 사용할 홈 디렉토리 조회 함수를 반환한다.
// home이 설정되어 있으면 그 값을, 아니면 os.UserHomeDir를 사용한다.
func (c *Config) HomeFunc() func() (string, error) {
	if c.Home == "" {
		return os.UserHomeDir
	}
	home := c.Home
	return func() (string, error) { return home, nil }
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if len(c.Profiles) == 0 {
		c.Profiles = append([]string(nil), profile.DefaultCandidates...)
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

func (c *Config) validate() error {
	if c.Home != "" && !filepath.IsAbs(c.Home) {
		return fmt.Errorf("config.Load: %w: home은 절대 경로여야 합니다: %s", ErrConfig, c.Home)
	}
	for i, name := range c.Profiles {
		if name == "" || name == "." || name == ".." || strings.ContainsRune(name, '/') {
			return fmt.Errorf("config.Load: %w: profiles[%d] 파일 이름이 올바르지 않습니다: %q", ErrConfig, i, name)
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config.Load: %w: log_level: %w", ErrConfig, err)
	}
	return nil
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbjs97/envperm/internal/config"
	"github.com/hbjs97/envperm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	content := `version = 1
home = "/srv/home/deploy"
profiles = [".profile", ".bash_profile"]
log_level = "debug"
`
	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "/srv/home/deploy", cfg.Home)
	assert.Equal(t, []string{".profile", ".bash_profile"}, cfg.Profiles)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load("/nonexistent/path/config.toml")

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Empty(t, cfg.Home)
	assert.Equal(t, []string{".bash_profile", ".bash_login", ".profile"}, cfg.Profiles)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_EmptyFileUsesDefaults(t *testing.T) {
	path := testutil.TempConfigFile(t, "")
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{".bash_profile", ".bash_login", ".profile"}, cfg.Profiles)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_RelativeHome(t *testing.T) {
	path := testutil.TempConfigFile(t, `home = "relative/home"`)
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
	assert.Contains(t, err.Error(), "home")
}

func TestLoadConfig_ProfileWithSlash(t *testing.T) {
	path := testutil.TempConfigFile(t, `profiles = [".config/profile"]`)
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_EmptyProfileName(t *testing.T) {
	path := testutil.TempConfigFile(t, `profiles = [".profile", ""]`)
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_UnknownLogLevel(t *testing.T) {
	path := testutil.TempConfigFile(t, `log_level = "loud"`)
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestHomeFunc_Override(t *testing.T) {
	cfg := &config.Config{Home: "/srv/home/deploy"}
	home, err := cfg.HomeFunc()()
	require.NoError(t, err)
	assert.Equal(t, "/srv/home/deploy", home)
}

func TestHomeFunc_DefaultsToUserHome(t *testing.T) {
	dir := testutil.TempHome(t)
	cfg := config.Default()
	home, err := cfg.HomeFunc()()
	require.NoError(t, err)
	assert.Equal(t, dir, home)
}

func TestDefaultPath(t *testing.T) {
	assert.True(t, strings.HasSuffix(config.DefaultPath(), filepath.Join("envperm", "config.toml")))
}

func TestSave_WritesValidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := &config.Config{
		Version:  1,
		Home:     "/srv/home/deploy",
		Profiles: []string{".profile"},
		LogLevel: "info",
	}

	err := config.Save(path, cfg)
	require.NoError(t, err)

	// 파일 권한 0600 확인
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Load로 round-trip 검증
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_CreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	path := filepath.Join(nested, "config.toml")

	err := config.Save(path, config.Default())
	require.NoError(t, err)

	// 디렉토리가 생성되었는지 확인
	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestSave_OverwritesExisting(t *testing.T) {
	path := testutil.TempConfigFile(t, `home = "/old/home"
log_level = "trace"
`)
	require.NoError(t, config.Save(path, config.Default()))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Home)
	assert.Equal(t, "warn", loaded.LogLevel)
}

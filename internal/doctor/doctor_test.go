package doctor_test

import (
	"errors"
	"testing"

	"github.com/hbjs97/envperm/internal/doctor"
	"github.com/hbjs97/envperm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const home = testutil.MemHomeDir

func TestCheckShell_Bash(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/bash")
	assert.Equal(t, doctor.StatusOK, doctor.CheckShell().Status)
}

func TestCheckShell_Fish(t *testing.T) {
	t.Setenv("SHELL", "/usr/local/bin/fish")
	r := doctor.CheckShell()
	assert.Equal(t, doctor.StatusWarn, r.Status)
	assert.NotEmpty(t, r.Fix)
}

func TestCheckShell_Unset(t *testing.T) {
	t.Setenv("SHELL", "")
	assert.Equal(t, doctor.StatusWarn, doctor.CheckShell().Status)
}

func TestCheckHome_OK(t *testing.T) {
	r := doctor.CheckHome(func() (string, error) { return "/home/u", nil })
	assert.Equal(t, doctor.StatusOK, r.Status)
	assert.Equal(t, "/home/u", r.Message)
}

func TestCheckHome_Fail(t *testing.T) {
	r := doctor.CheckHome(func() (string, error) { return "", errors.New("$HOME is not defined") })
	assert.Equal(t, doctor.StatusFail, r.Status)
	assert.Contains(t, r.Fix, "HOME")
}

func TestCheckProfiles_ExistingTarget(t *testing.T) {
	r, fs := testutil.MemResolver(t)
	testutil.WriteProfile(t, fs, home, ".bash_login", "")

	results := doctor.CheckProfiles(r)
	require.Len(t, results, 4)
	assert.Equal(t, ".bash_profile", results[0].Name)
	assert.Equal(t, doctor.StatusWarn, results[0].Status)
	assert.Equal(t, ".bash_login", results[1].Name)
	assert.Equal(t, doctor.StatusOK, results[1].Status)
	assert.Equal(t, ".profile", results[2].Name)
	assert.Equal(t, doctor.StatusWarn, results[2].Status)

	target := results[3]
	assert.Equal(t, "target", target.Name)
	assert.Equal(t, doctor.StatusOK, target.Status)
	assert.Contains(t, target.Message, home+"/.bash_login")
}

func TestCheckProfiles_TargetWillBeCreated(t *testing.T) {
	r, fs := testutil.MemResolver(t)

	results := doctor.CheckProfiles(r)
	target := results[len(results)-1]
	assert.Equal(t, doctor.StatusWarn, target.Status)
	assert.Contains(t, target.Message, home+"/.bash_profile")
	// 진단은 파일을 만들지 않는다
	assert.False(t, testutil.ProfileExists(t, fs, home, ".bash_profile"))
}

func TestRunAll_StopsWithoutHome(t *testing.T) {
	r, _ := testutil.MemResolver(t)
	r.Home = func() (string, error) { return "", nil }

	results := doctor.RunAll(r)
	require.Len(t, results, 2)
	assert.Equal(t, "home", results[1].Name)
	assert.Equal(t, doctor.StatusFail, results[1].Status)
}

func TestRunAll_Complete(t *testing.T) {
	t.Setenv("SHELL", "/bin/bash")
	r, fs := testutil.MemResolver(t)
	testutil.WriteProfile(t, fs, home, ".profile", "")

	results := doctor.RunAll(r)
	require.Len(t, results, 6)
	for _, res := range results {
		assert.NotEqual(t, doctor.StatusFail, res.Status, "check %s should not fail", res.Name)
	}
}

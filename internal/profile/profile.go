package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/envperm/internal/logging"
	"github.com/spf13/afero"
)

var (
	// ErrNoHome는 홈 디렉토리를 확인할 수 없을 때의 sentinel error다.
	ErrNoHome = errors.New("홈 디렉토리를 확인할 수 없습니다")
	// ErrProfile는 어떤 프로필 파일도 열거나 생성할 수 없을 때의 sentinel error다.
	ErrProfile = errors.New("프로필 파일을 열 수 없습니다")
)

// DefaultCandidates는 bash 로그인 셸이 읽는 순서대로 나열한 프로필 파일 이름이다.
var DefaultCandidates = []string{".bash_profile", ".bash_login", ".profile"}

const fileMode = 0644

// Resolver는 export 문을 기록할 프로필 파일을 찾는다.
type Resolver struct {
	Fs         afero.Fs
	Home       func() (string, error)
	Candidates []string // 비어있으면 DefaultCandidates.
}

// Candidate는 후보 파일 하나의 상태다.
type Candidate struct {
	Path   string
	Exists bool
}

// NewResolver는 OS 파일시스템과 os.UserHomeDir를 사용하는 Resolver를 생성한다.
func NewResolver() *Resolver {
	return &Resolver{
		Fs:   afero.NewOsFs(),
		Home: os.UserHomeDir,
	}
}

// Open은 첫 번째로 열리는 후보 파일을 append 모드로 연다.
// 모든 후보가 실패하면 첫 번째 후보를 생성한다.
func (r *Resolver) Open() (afero.File, string, error) {
	home, err := r.home()
	if err != nil {
		return nil, "", fmt.Errorf("profile.Open: %w", err)
	}
	logger := logging.GetLogger("profile")

	names := r.candidates()
	for _, name := range names {
		path := filepath.Join(home, name)
		f, err := r.Fs.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
		if err != nil {
			logger.Trace().Err(err).Str("path", path).Msg("candidate skipped")
			continue
		}
		logger.Debug().Str("path", path).Msg("profile opened")
		return f, path, nil
	}

	path := filepath.Join(home, names[0])
	f, err := r.Fs.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, fileMode)
	if err != nil {
		return nil, "", fmt.Errorf("profile.Open: %w: %w", ErrProfile, err)
	}
	logger.Debug().Str("path", path).Msg("profile created")
	return f, path, nil
}

// Locate는 Open이 사용할 파일 경로를 파일을 만들지 않고 반환한다.
// exists가 false이면 Open이 해당 파일을 새로 생성한다.
func (r *Resolver) Locate() (path string, exists bool, err error) {
	cands, err := r.Inspect()
	if err != nil {
		return "", false, fmt.Errorf("profile.Locate: %w", err)
	}
	for _, c := range cands {
		if c.Exists {
			return c.Path, true, nil
		}
	}
	return cands[0].Path, false, nil
}

// Inspect는 후보 파일별 존재 여부를 순서대로 반환한다.
func (r *Resolver) Inspect() ([]Candidate, error) {
	home, err := r.home()
	if err != nil {
		return nil, err
	}
	names := r.candidates()
	result := make([]Candidate, 0, len(names))
	for _, name := range names {
		path := filepath.Join(home, name)
		info, err := r.Fs.Stat(path)
		result = append(result, Candidate{
			Path:   path,
			Exists: err == nil && info.Mode().IsRegular(),
		})
	}
	return result, nil
}

func (r *Resolver) home() (string, error) {
	if r.Home == nil {
		return "", ErrNoHome
	}
	home, err := r.Home()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoHome, err)
	}
	if home == "" {
		return "", ErrNoHome
	}
	return home, nil
}

func (r *Resolver) candidates() []string {
	if len(r.Candidates) == 0 {
		return DefaultCandidates
	}
	return r.Candidates
}

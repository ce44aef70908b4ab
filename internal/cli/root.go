package cli

import (
	"github.com/hbjs97/envperm"
	"github.com/hbjs97/envperm/internal/config"
	"github.com/hbjs97/envperm/internal/logging"
	"github.com/hbjs97/envperm/internal/profile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// App은 CLI 실행에 필요한 의존성을 담는다.
type App struct {
	CfgPath   string
	Verbosity int
	Fs        afero.Fs                    // 테스트용. nil이면 OS 파일시스템.
	LookupEnv func(string) (string, bool) // 테스트용. nil이면 os.LookupEnv.
}

// NewRootCmd는 기본 App으로 envperm CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	return (&App{}).NewRootCmd()
}

// NewRootCmd는 envperm CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "envperm",
		Short:        "셸 프로필에 환경변수를 영구적으로 설정한다",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogging(cmd)
			logger := logging.GetLogger("cli")
			logger.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
	}

	defaultCfg := a.CfgPath
	if defaultCfg == "" {
		defaultCfg = config.DefaultPath()
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", defaultCfg, "설정 파일 경로")
	cmd.PersistentFlags().CountVarP(&a.Verbosity, "verbose", "v", "상세 출력 (-v INFO, -vv DEBUG, -vvv TRACE)")

	cmd.AddCommand(
		a.newSetCmd(),
		a.newCheckOrSetCmd(),
		a.newAppendCmd(),
		a.newAppendToEndCmd(),
		a.newWhichCmd(),
		a.newDoctorCmd(),
		a.newSetupCmd(),
	)
	return cmd
}

// setupLogging은 -v가 없으면 설정 파일의 log_level을 사용한다.
func (a *App) setupLogging(cmd *cobra.Command) {
	level := logging.LevelForVerbosity(a.Verbosity)
	if a.Verbosity == 0 {
		if cfg, err := config.Load(a.CfgPath); err == nil {
			if l, err := logging.ParseLevel(cfg.LogLevel); err == nil {
				level = l
			}
		}
	}
	logging.Setup(cmd.ErrOrStderr(), level)
}

func (a *App) loadConfig() (*config.Config, error) {
	return config.Load(a.CfgPath)
}

func (a *App) resolver(cfg *config.Config) *profile.Resolver {
	r := profile.NewResolver()
	if a.Fs != nil {
		r.Fs = a.Fs
	}
	r.Home = cfg.HomeFunc()
	r.Candidates = cfg.Profiles
	return r
}

func (a *App) writer(cfg *config.Config) *envperm.Writer {
	opts := []envperm.Option{
		envperm.WithHome(cfg.HomeFunc()),
		envperm.WithCandidates(cfg.Profiles),
	}
	if a.Fs != nil {
		opts = append(opts, envperm.WithFs(a.Fs))
	}
	if a.LookupEnv != nil {
		opts = append(opts, envperm.WithLookupEnv(a.LookupEnv))
	}
	return envperm.New(opts...)
}

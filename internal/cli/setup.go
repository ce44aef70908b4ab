package cli

import (
	"fmt"
	"os"

	"github.com/hbjs97/envperm/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "기본 설정 파일을 생성한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 덮어쓴다")
	return cmd
}

// runSetup는 기본값으로 채운 설정 파일을 생성한다.
func (a *App) runSetup(cmd *cobra.Command, force bool) error {
	if _, err := os.Stat(a.CfgPath); err == nil && !force {
		return fmt.Errorf("cli.setup: 설정 파일이 이미 존재합니다 (--force로 덮어쓰기): %s", a.CfgPath)
	}

	if err := config.Save(a.CfgPath, config.Default()); err != nil {
		return fmt.Errorf("cli.setup: 설정 파일 생성 실패: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	fmt.Fprintln(cmd.OutOrStdout(), "envperm doctor로 기록 대상 프로필을 확인하세요.")
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which",
		Short: "export 문이 기록될 프로필 파일 경로를 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			path, exists, err := a.writer(cfg).ProfilePath()
			if err != nil {
				return err
			}
			if !exists {
				fmt.Fprintf(cmd.ErrOrStderr(), "참고: %s은(는) 첫 쓰기 시 생성됩니다\n", path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

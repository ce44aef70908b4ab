package cli

import (
	"fmt"

	"github.com/hbjs97/envperm"
	"github.com/spf13/cobra"
)

func (a *App) newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME VALUE",
		Short: "export NAME=VALUE를 프로필에 추가한다",
		Long: `export NAME=VALUE를 프로필에 추가한다.
VALUE는 그대로 기록되므로 따옴표가 필요하면 직접 포함하세요:
  envperm set DUMMY '"/something"'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWrite(cmd, (*envperm.Writer).Set, args[0], args[1])
		},
	}
}

func (a *App) newCheckOrSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-or-set NAME VALUE",
		Short: "NAME이 정의되어 있지 않을 때만 export NAME=VALUE를 추가한다",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheckOrSet(cmd, args[0], args[1])
		},
	}
}

func (a *App) newAppendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append NAME VALUE",
		Short: `export NAME="VALUE:$NAME"를 프로필에 추가한다`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWrite(cmd, (*envperm.Writer).Append, args[0], args[1])
		},
	}
}

func (a *App) newAppendToEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append-to-end NAME VALUE",
		Short: `export NAME="$NAME:VALUE"를 프로필에 추가한다`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWrite(cmd, (*envperm.Writer).AppendToEnd, args[0], args[1])
		},
	}
}

type writeFunc func(w *envperm.Writer, name, value string) error

func (a *App) runWrite(cmd *cobra.Command, write writeFunc, name, value string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	w := a.writer(cfg)
	if err := write(w, name, value); err != nil {
		return err
	}
	return printTarget(cmd, w, name)
}

func (a *App) runCheckOrSet(cmd *cobra.Command, name, value string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	w := a.writer(cfg)
	if w.IsSet(name) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s은(는) 이미 정의되어 있어 건너뜁니다\n", name)
		return nil
	}
	if err := w.Set(name, value); err != nil {
		return err
	}
	return printTarget(cmd, w, name)
}

func printTarget(cmd *cobra.Command, w *envperm.Writer, name string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", name, w.LastPath())
	fmt.Fprintln(cmd.OutOrStdout(), "새 로그인 셸부터 적용됩니다.")
	return nil
}

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/hbjs97/envperm/internal/doctor"
	"github.com/spf13/cobra"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	fixStyle  = lipgloss.NewStyle().Faint(true)
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "홈 디렉토리와 프로필 파일 상태를 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.OutOrStdout())
		},
	}
}

func (a *App) runDoctor(out io.Writer) error {
	cfg, err := a.loadConfig()
	if err != nil {
		fmt.Fprintf(out, "  [%s] config: %v\n", failStyle.Render("FAIL"), err)
		fmt.Fprintf(out, "      %s\n", fixStyle.Render("Fix: envperm setup --force 실행 또는 설정 파일 확인"))
		return nil
	}
	printDiagResults(out, doctor.RunAll(a.resolver(cfg)))
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(out io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(out, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(out, "      %s\n", fixStyle.Render("Fix: "+r.Fix))
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return okStyle.Render("OK")
	case doctor.StatusWarn:
		return warnStyle.Render("!!")
	case doctor.StatusFail:
		return failStyle.Render("FAIL")
	default:
		return "??"
	}
}

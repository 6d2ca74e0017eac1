package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/ferry/internal/core/domain"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#667085")).
			Width(10)

	presentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Gray
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which platforms have uploaded artifacts for the current commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.Status(cmd.Context(), runOptions(cmd))
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

func renderStatus(w io.Writer, s *domain.ReleaseStatus) {
	_, _ = fmt.Fprintln(w, labelStyle.Render("release")+s.Key.String())
	_, _ = fmt.Fprintln(w, labelStyle.Render("commit")+s.Key.Commit.Short())
	_, _ = fmt.Fprintln(w, labelStyle.Render("shared")+s.SharedPath)

	var waiting []string
	for _, p := range domain.Platforms() {
		state := missingStyle.Render("missing")
		if s.Present[p] {
			state = presentStyle.Render("present")
		} else {
			waiting = append(waiting, p.String())
		}
		_, _ = fmt.Fprintln(w, labelStyle.Render(p.String())+state)

		for _, r := range s.Transfers[p] {
			_, _ = fmt.Fprintln(w, labelStyle.Render("")+
				noteStyle.Render(fmt.Sprintf("%s %s at %s", r.Direction, r.Digest, r.Timestamp.Format(time.RFC3339))))
		}
	}

	if s.Complete() {
		_, _ = fmt.Fprintln(w, presentStyle.Render("ready to publish"))
		return
	}
	_, _ = fmt.Fprintln(w, missingStyle.Render("waiting for "+strings.Join(waiting, ", ")))
}

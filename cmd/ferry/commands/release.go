package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) runRelease(cmd *cobra.Command, _ []string) error {
	outcome, err := c.app.Release(cmd.Context(), runOptions(cmd))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), outcome.String())
	return nil
}

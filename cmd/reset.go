package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/input"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved answers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprint(out, "Delete all saved answers? [y/N] ")
			line, err := input.ReadLine(input.New(cmd.InOrStdin()))
			if err != nil {
				return fmt.Errorf("read confirmation: %w", err)
			}
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.RecordRepo().Reset(cmd.Context())
		if err != nil {
			return fmt.Errorf("reset records: %w", err)
		}
		logger.Debug("records deleted", "count", n)
		fmt.Fprintf(out, "Deleted %d saved answers.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

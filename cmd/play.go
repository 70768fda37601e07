package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play COUNT KIND [POLICY] [STATS...]",
	Short: "Play a drill in a full-screen terminal UI",
	Long: `Play the same drill as "run" in a full-screen terminal UI.
Arguments and flags match the run command.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, closeStore, err := drillOptions(cmd, args)
		if err != nil {
			return err
		}
		defer closeStore()

		d, err := session.Prepare(opts)
		if err != nil {
			return err
		}
		return app.Run(app.Options{Context: cmd.Context(), Drill: d})
	},
}

func init() {
	addDrillFlags(playCmd)
}

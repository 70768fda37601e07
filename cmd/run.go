package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/input"
	"github.com/abhisek/mathdrill/internal/pipeline"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/stats"
)

var runCmd = &cobra.Command{
	Use:   "run COUNT KIND [POLICY] [STATS...]",
	Short: "Run a drill on standard input and output",
	Long: `Run COUNT questions of KIND, reading one answer per line.

KIND is one of sum, sub, mul, div, mod, percent, missing.
POLICY is skip (default, always move on) or right (repeat until correct).
STATS is any of time and percentage; a summary is printed at the end and
every answer is saved unless --no-store is given.`,
	Example: `  mathdrill run 10 mul
  mathdrill run 5 percent right "time percentage"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, closeStore, err := drillOptions(cmd, args)
		if err != nil {
			return err
		}
		defer closeStore()

		out := cmd.OutOrStdout()
		res, err := session.Run(cmd.Context(), opts, input.New(cmd.InOrStdin()), out)
		if err != nil {
			return err
		}
		return session.Render(out, res.Summary)
	},
}

func init() {
	addDrillFlags(runCmd)
}

func addDrillFlags(c *cobra.Command) {
	c.Flags().Uint64("seed", 0, "Seed for question generation (overrides MATHDRILL_SEED)")
	c.Flags().Bool("no-store", false, "Do not save answers to the database")
}

// drillOptions builds the drill for args and flags, opening the store when
// answers will be saved. The returned close func is never nil.
func drillOptions(cmd *cobra.Command, args []string) (session.Options, func(), error) {
	noop := func() {}
	opts, err := parseRunArgs(args)
	if err != nil {
		return opts, noop, err
	}
	opts.Seed = resolveSeed(cmd)
	opts.Logger = logger

	if noStore, _ := cmd.Flags().GetBool("no-store"); noStore || !opts.Stats.Enabled() {
		return opts, noop, nil
	}
	st, err := openStore(cmd)
	if err != nil {
		return opts, noop, err
	}
	opts.Records = st.RecordRepo()
	return opts, func() { st.Close() }, nil
}

// parseRunArgs turns "COUNT KIND [POLICY] [STATS...]" into drill options.
func parseRunArgs(args []string) (session.Options, error) {
	count, err := strconv.Atoi(args[0])
	if err != nil || count < 0 {
		return session.Options{}, fmt.Errorf("invalid question count %q", args[0])
	}
	kind, err := problemgen.ParseKind(args[1])
	if err != nil {
		return session.Options{}, err
	}

	var policyArg string
	if len(args) > 2 {
		policyArg = args[2]
	}
	policy, err := pipeline.ParsePolicy(policyArg)
	if err != nil {
		return session.Options{}, err
	}

	var statsArg string
	if len(args) > 3 {
		statsArg = strings.Join(args[3:], " ")
	}
	statsCfg, err := stats.ParseConfig(statsArg)
	if err != nil {
		return session.Options{}, err
	}

	return session.Options{
		Kind:      kind,
		Count:     count,
		Policy:    policy,
		Stats:     statsCfg,
		Generator: problemgen.DefaultConfig(),
	}, nil
}

// resolveSeed picks --seed, then MATHDRILL_SEED, then the current time.
func resolveSeed(cmd *cobra.Command) uint64 {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return seed
	}
	if cfg != nil && cfg.HasSeed {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

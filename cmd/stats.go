package cmd

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/stats"
	"github.com/abhisek/mathdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show saved answers and statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.RecordRepo().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load records: %w", err)
		}

		if k, _ := cmd.Flags().GetString("kind"); k != "" {
			kind, err := problemgen.ParseKind(k)
			if err != nil {
				return err
			}
			records = slices.DeleteFunc(records, func(r store.Record) bool {
				return r.QuestionType != string(kind)
			})
		}
		if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(records) > limit {
			records = records[len(records)-limit:]
		}

		return renderStats(cmd.OutOrStdout(), records)
	},
}

func init() {
	statsCmd.Flags().Int("limit", 0, "Show only the most recent N answers")
	statsCmd.Flags().String("kind", "", "Show only answers of this question kind")
}

// renderStats prints records as a table followed by per-kind and overall
// accuracy and answer time.
func renderStats(w io.Writer, records []store.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No answers recorded yet.")
		return err
	}

	table := newTable(w, []string{"When", "Kind", "Question", "Right", "Time"})
	for _, r := range records {
		table.Append([]string{
			r.CreatedAt().Local().Format("2006-01-02 15:04:05"),
			r.QuestionType,
			strings.ReplaceAll(r.FormattedBody, "\n", "  "),
			strconv.FormatBool(r.IsAnswerRight),
			formatDuration(r.Elapsed()),
		})
	}
	table.Render()

	byKind := map[string][]store.Record{}
	for _, r := range records {
		byKind[r.QuestionType] = append(byKind[r.QuestionType], r)
	}
	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	slices.SortFunc(kinds, cmp.Compare[string])

	fmt.Fprintln(w)
	summary := newTable(w, []string{"Kind", "Answers", "Accuracy", "Mean", "Median", "P90"})
	for _, k := range kinds {
		row, err := summaryRow(k, byKind[k])
		if err != nil {
			return err
		}
		summary.Append(row)
	}
	row, err := summaryRow("all", records)
	if err != nil {
		return err
	}
	summary.SetFooter(row)
	summary.Render()
	return nil
}

func summaryRow(label string, records []store.Record) ([]string, error) {
	outcomes := make([]bool, len(records))
	times := make([]time.Duration, len(records))
	for i, r := range records {
		outcomes[i] = r.IsAnswerRight
		times[i] = r.Elapsed()
	}

	pf := stats.Tally(outcomes)
	dist, err := stats.Describe(times)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", label, err)
	}
	return []string{
		label,
		strconv.Itoa(pf.Total()),
		fmt.Sprintf("%d / %d (%.0f%%)", pf.Positive, pf.Total(), pf.Ratio()*100),
		formatDuration(dist.Mean),
		formatDuration(dist.Median),
		formatDuration(dist.P90),
	}, nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader(header)
	return table
}

func formatDuration(d time.Duration) string {
	return d.Round(10 * time.Millisecond).String()
}

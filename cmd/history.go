package cmd

import (
	"errors"
	"io"
	"strconv"
	"time"

	"storage-audit/feature/history"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd prints recorded runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded audit runs",
	Long:  `Prints the most recent runs recorded in the database. Requires DATABASE_ENABLED=true.`,
	Args:  positional(),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if historyLimit <= 0 {
			return invalidf("history: --limit must be positive, got %d", historyLimit)
		}
		return nil
	},
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", history.DefaultLimit, "Number of runs to show")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	if e.runs == nil {
		return errors.New("run history requires a database, set DATABASE_ENABLED=true")
	}

	runs, err := e.runs.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	return printRuns(cmd.OutOrStdout(), runs)
}

// printRuns writes runs as a borderless table.
func printRuns(out io.Writer, runs []history.Run) error {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Time", "Command", "Bucket", "Bag", "Bags", "Objects", "Missing", "Unexpected"})

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, r := range runs {
		table.Append([]string{
			r.CreatedAt.Local().Format(time.DateTime),
			r.Command,
			dash(r.Bucket),
			dash(r.BagFilter),
			strconv.Itoa(r.Bags),
			strconv.Itoa(r.Objects),
			strconv.Itoa(r.MissingObjects),
			strconv.Itoa(r.UnexpectedLocal),
		})
	}

	table.Render()
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package cmd

import (
	"github.com/spf13/cobra"
)

// diffCmd reconciles the persisted catalogs.
var diffCmd = &cobra.Command{
	Use:   "diff [bagFilter]",
	Short: "Compare local and remote catalogs",
	Long: `Reads local.json and remote.json (remote_<bagFilter>.json when filtered)
and writes diff.json (diff_<bagFilter>.json) listing objects missing from the
node per bag and local objects no bag lists.

Run with LOG_LEVEL=debug to log each discrepancy.`,
	Args: positional(arg{name: "bagFilter", numeric: true}),
	RunE: runDiff,
}

func init() {
	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	_, err = e.service().Diff(cmd.Context(), optional(args, 0))
	return err
}

package cmd

import (
	"github.com/spf13/cobra"
)

// bucketObjectsCmd snapshots the objects assigned to a bucket.
var bucketObjectsCmd = &cobra.Command{
	Use:     "bucket-objects <bucketId> [bagFilter]",
	Aliases: []string{"bucketObjects"},
	Short:   "Record the accepted objects assigned to a bucket",
	Long: `Lists the bags of <bucketId> on the query node, collects their accepted
objects and writes them to remote.json.

With [bagFilter], only bags whose id contains it are kept and the result goes
to remote_<bagFilter>.json.

Examples:
  storage-audit bucket-objects 3
  storage-audit bucket-objects 3 42`,
	Args: positional(
		arg{name: "bucketId", required: true, numeric: true},
		arg{name: "bagFilter", numeric: true},
	),
	RunE: runBucketObjects,
}

func init() {
	RootCmd.AddCommand(bucketObjectsCmd)
}

func runBucketObjects(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	ctx, cancel := e.withDeadline(cmd.Context())
	defer cancel()

	_, err = e.service().SnapshotRemote(ctx, args[0], optional(args, 1))
	return err
}

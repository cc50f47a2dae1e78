package cmd

import (
	"github.com/spf13/cobra"
)

// localFilesCmd snapshots the objects held by the node.
var localFilesCmd = &cobra.Command{
	Use:     "local-files <path>",
	Aliases: []string{"localFiles"},
	Short:   "Record the objects stored in a directory or bucket prefix",
	Long: `Lists <path> and writes the object ids found there to local.json.

<path> is a directory, or s3://<prefix> for a prefix of the configured
storage bucket. Only entries named by a plain integer are objects.

Examples:
  storage-audit local-files /data/uploads
  storage-audit local-files s3://uploads`,
	Args: positional(arg{name: "path", required: true}),
	RunE: runLocalFiles,
}

func init() {
	RootCmd.AddCommand(localFilesCmd)
}

func runLocalFiles(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	ctx, cancel := e.withDeadline(cmd.Context())
	defer cancel()

	src, err := e.openSource(args[0])
	if err != nil {
		return err
	}

	_, err = e.service().SnapshotLocal(ctx, src)
	return err
}

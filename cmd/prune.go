package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"storage-audit/core/reconcile"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for prune command
	pruneDir    string
	pruneDryRun bool
	yesConfirm  bool
)

// pruneCmd removes local orphans listed in a diff report.
var pruneCmd = &cobra.Command{
	Use:   "prune [bagFilter]",
	Short: "Delete local objects no bag is assigned",
	Long: `Reads diff.json (diff_<bagFilter>.json when filtered) and deletes the
unexpected local objects it lists from --dir.

--dir takes the same paths as local-files. Missing objects are reported but
never fetched.

Examples:
  # Report only
  prune --dir /data/uploads --dry-run

  # Delete with interactive confirmation
  prune --dir /data/uploads

  # Delete with auto-confirm (non-interactive)
  prune --dir s3://uploads --yes`,
	Args: positional(arg{name: "bagFilter", numeric: true}),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return validatePruneDir(pruneDir)
	},
	RunE: runPrune,
}

func init() {
	pruneCmd.Flags().StringVar(&pruneDir, "dir", "", "Directory or s3://<prefix> holding the objects")
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Force dry-run (no deletions even with --yes)")
	pruneCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(pruneCmd)
}

func validatePruneDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return invalidf("prune: --dir is required")
	}
	return nil
}

func runPrune(cmd *cobra.Command, args []string) error {
	bag := optional(args, 0)

	e, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	ctx, cancel := e.withDeadline(cmd.Context())
	defer cancel()

	svc := e.service()

	plan, err := svc.PlanPrune(bag)
	if err != nil {
		return err
	}
	printPruneReport(e.logger, plan, pruneDir)

	if len(plan.Actions) == 0 {
		e.logger.Info("No local orphans to delete.")
		return nil
	}
	if pruneDryRun {
		e.logger.Info("Dry-run mode: No changes were made.")
		return nil
	}

	src, err := e.openSource(pruneDir)
	if err != nil {
		return err
	}
	if err := svc.CheckPruneTarget(plan, src); err != nil {
		return err
	}

	if !confirmDestructiveAction(cmd.InOrStdin(), cmd.OutOrStdout(), yesConfirm, len(plan.Actions)) {
		e.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	e.logger.Info("Deleting local orphans...", zap.String("dir", pruneDir))
	executed, err := svc.Prune(ctx, src, plan, bag, reconcile.ReconcileOptions{Confirmed: true})
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	e.logger.Info("Successfully deleted local orphans", zap.Int("count", executed))
	return nil
}

// printPruneReport logs the plan summary and a sample of its actions.
func printPruneReport(l *zap.Logger, plan *reconcile.ReconcilePlan, dir string) {
	s := plan.Summary

	l.Info("Prune report",
		zap.String("source", plan.Source),
		zap.String("dir", dir),
		zap.Int("missing_objects", s.MissingObjects),
		zap.Int("missing_bags", s.MissingBags),
		zap.Int("unexpected_local", s.UnexpectedLocal),
		zap.Int("purge_actions", s.PurgeActions),
	)

	maxShow := min(5, len(plan.Actions))
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts for confirmation unless yes is set.
func confirmDestructiveAction(in io.Reader, out io.Writer, yes bool, count int) bool {
	if yes {
		color.New(color.FgGreen).Fprintln(out, "\nAuto-confirmed via --yes flag")
		return true
	}

	color.New(color.FgYellow).Fprintf(out, "\nType 'yes' to delete %d local object(s): ", count)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

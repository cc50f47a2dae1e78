package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storage-audit/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where .env is looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "storage-audit",
	Short: "Storage node object audit",
	Long: `Storage Audit compares the objects a storage node holds against the objects
the query node says its bucket is assigned.

Run local-files and bucket-objects to snapshot both sides, then diff to find
missing objects and local orphans.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and exits with a non-zero status on failure:
// 2 for invalid arguments, 1 for everything else.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	// Console output with ISO8601 timestamps, as for an interactive tool.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr == nil {
		msg := "command failed"
		if exitCode(err) == 2 {
			msg = "invalid arguments"
		}
		l.Error(msg, zap.Error(err))
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return 2
	}
	return 1
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding the .env file")
	RootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &ValidationError{Msg: err.Error()}
	})
}

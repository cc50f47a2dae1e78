package cmd

import (
	"fmt"

	"storage-audit/core/catalog"
	"storage-audit/core/loader"
	"storage-audit/core/logger"
	"storage-audit/core/middleware/auth"
	"storage-audit/core/middleware/rayid"
	"storage-audit/feature/audit"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve persisted audit records over HTTP",
	Long: `Starts a read-only HTTP API over local.json, remote.json, diff.json and the
recorded run history.`,
	Args: positional(),
	RunE: runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	app, err := newApp(e)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		e.logger.Info("Starting server", zap.String("port", e.cfg.Server.Port))
		errCh <- app.Listen(":" + e.cfg.Server.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	e.logger.Info("Shutting down server...")
	return app.Shutdown()
}

// newApp builds the fiber app with middleware and features.
func newApp(e *env) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Ray id first so every log line below carries it.
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(e.logger, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})
	app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey}))

	var runs audit.RunLister
	if e.runs != nil {
		runs = e.runs
	}

	mgr := loader.NewManager()
	mgr.Register(audit.NewFeature(catalog.NewCache(e.store(), e.cfg.Server.CacheTTL()), runs, e.logger))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	e.logger.Debug("Loaded features", zap.Strings("features", loaded))
	return app, nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storage-audit/core/catalog"
	"storage-audit/core/config"
	"storage-audit/core/database"
	"storage-audit/core/logger"
	"storage-audit/core/query"
	"storage-audit/core/storage"
	"storage-audit/feature/audit"
	"storage-audit/feature/bags"
	"storage-audit/feature/history"
	"storage-audit/feature/local"
	"storage-audit/feature/objects"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env holds what every command needs once configuration is loaded.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	runs   *history.Repository
}

// setup loads configuration, builds the logger and opens the optional
// database.
func setup(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	e := &env{cfg: cfg, logger: l}

	db, err := database.Connect(cfg.Database)
	switch {
	case errors.Is(err, database.ErrDisabled):
		l.Debug("Database disabled, runs will not be recorded")
	case err != nil:
		l.Warn("Optional database connection failed", zap.Error(err))
	default:
		repo := history.NewRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			l.Warn("Failed to prepare run history", zap.Error(err))
			break
		}
		e.db = db
		e.runs = repo
		l.Debug("Connected to database", zap.String("name", cfg.Database.Name))
	}

	return e, nil
}

// close flushes the logger and releases the database.
func (e *env) close() {
	if e.db != nil {
		if sqlDB, err := e.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = e.logger.Sync()
}

// withDeadline applies the configured overall deadline to ctx.
func (e *env) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.cfg.Query.DeadlineSeconds <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(e.cfg.Query.DeadlineSeconds)*time.Second)
}

func (e *env) store() *catalog.Store {
	return catalog.NewStore(e.cfg.Audit)
}

// service wires the audit service to the query node and the record store.
func (e *env) service() *audit.Service {
	q := e.cfg.Query
	client := query.NewHTTPClient(q)

	svc := audit.NewService(
		bags.NewEnumerator(client, q.BagsPageSize, e.logger),
		objects.NewCollector(client, objects.Options{
			ChunkSize:   q.ChunkSize,
			PageSize:    q.ObjectsPageSize,
			Concurrency: q.Concurrency,
		}, e.logger),
		local.NewEnumerator(e.logger),
		e.store(),
		e.logger,
	)
	if e.runs != nil {
		svc.WithRecorder(e.runs)
	}
	return svc
}

// openSource resolves a directory or s3:// path.
func (e *env) openSource(path string) (local.Opened, error) {
	return local.Open(path, e.cfg.Storage.Bucket, func() (storage.Client, error) {
		return storage.NewClient(e.cfg.Storage)
	})
}

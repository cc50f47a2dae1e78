package audit

import (
	"context"
	"fmt"

	"storage-audit/core/catalog"
	"storage-audit/core/reconcile"
	"storage-audit/feature/history"
	"storage-audit/feature/local"

	"go.uber.org/zap"
)

// BagLister lists the bags of a bucket.
type BagLister interface {
	ListBags(ctx context.Context, bucketID, filter string) ([]string, error)
}

// ObjectCollector collects the accepted objects of bags.
type ObjectCollector interface {
	Collect(ctx context.Context, bagIDs []string) (map[string][]string, error)
}

// LocalLister builds the local catalog of a source.
type LocalLister interface {
	List(ctx context.Context, src local.Source) (*catalog.LocalCatalog, error)
}

// Recorder stores finished runs.
type Recorder interface {
	Record(ctx context.Context, run *history.Run) error
}

// Service runs audit steps and persists their records.
type Service struct {
	bags     BagLister
	objects  ObjectCollector
	local    LocalLister
	store    *catalog.Store
	recorder Recorder
	logger   *zap.Logger
}

// NewService creates a new audit service.
func NewService(bags BagLister, objects ObjectCollector, localLister LocalLister, store *catalog.Store, logger *zap.Logger) *Service {
	return &Service{
		bags:    bags,
		objects: objects,
		local:   localLister,
		store:   store,
		logger:  logger,
	}
}

// WithRecorder makes the service record every successful run.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// SnapshotLocal lists src and persists the local catalog.
func (s *Service) SnapshotLocal(ctx context.Context, src local.Source) (*catalog.LocalCatalog, error) {
	c, err := s.local.List(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to list local objects: %w", err)
	}

	if err := s.store.WriteLocal(c); err != nil {
		return nil, err
	}
	s.logger.Info("Local catalog saved",
		zap.String("path", s.store.LocalPath()),
		zap.Int("objects", len(c.Objects)),
	)

	s.record(ctx, &history.Run{
		Command: history.CommandLocalFiles,
		Objects: len(c.Objects),
	})
	return c, nil
}

// SnapshotRemote collects the accepted objects of every bag of bucketID
// matching bagFilter and persists the remote catalog.
func (s *Service) SnapshotRemote(ctx context.Context, bucketID, bagFilter string) (*catalog.RemoteCatalog, error) {
	bagIDs, err := s.bags.ListBags(ctx, bucketID, bagFilter)
	if err != nil {
		return nil, err
	}

	bags, err := s.objects.Collect(ctx, bagIDs)
	if err != nil {
		return nil, err
	}

	c := catalog.NewRemoteCatalog(bucketID)
	for id, objects := range bags {
		c.Bags[id] = objects
	}

	if err := s.store.WriteRemote(bagFilter, c); err != nil {
		return nil, err
	}
	s.logger.Info("Remote catalog saved",
		zap.String("path", s.store.RemotePath(bagFilter)),
		zap.Int("bags", len(c.Bags)),
		zap.Int("objects", c.ObjectCount()),
	)

	s.record(ctx, &history.Run{
		Command:   history.CommandBucketObjects,
		Bucket:    bucketID,
		BagFilter: bagFilter,
		Bags:      len(c.Bags),
		Objects:   c.ObjectCount(),
	})
	return c, nil
}

// Diff reconciles the persisted local catalog against the remote catalog of
// bagFilter and persists the report.
func (s *Service) Diff(ctx context.Context, bagFilter string) (*catalog.DiffReport, error) {
	localCatalog, err := s.store.ReadLocal()
	if err != nil {
		return nil, fmt.Errorf("failed to load local catalog: %w", err)
	}
	remoteCatalog, err := s.store.ReadRemote(bagFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to load remote catalog: %w", err)
	}

	report := reconcile.Diff(localCatalog, remoteCatalog)
	if err := s.store.WriteDiff(bagFilter, report); err != nil {
		return nil, err
	}

	for _, id := range report.UnexpectedLocal {
		s.logger.Debug("Unexpected local object", zap.String("object", id))
	}
	for bag, missing := range report.MissingObjectsPerBag {
		for _, id := range missing {
			s.logger.Debug("Missing object", zap.String("bag", bag), zap.String("object", id))
		}
	}

	s.logger.Info("Diff saved",
		zap.String("path", s.store.DiffPath(bagFilter)),
		zap.Int("local_objects", len(localCatalog.Objects)),
		zap.Int("remote_bags", len(remoteCatalog.Bags)),
		zap.Int("missing_objects", report.MissingObjectsTotal),
		zap.Int("bags_with_missing", len(report.MissingObjectsPerBag)),
		zap.Int("unexpected_local", report.UnexpectedLocalTotal),
	)

	s.record(ctx, &history.Run{
		Command:         history.CommandDiff,
		Bucket:          remoteCatalog.Bucket,
		BagFilter:       bagFilter,
		Bags:            len(remoteCatalog.Bags),
		Objects:         len(localCatalog.Objects),
		MissingObjects:  report.MissingObjectsTotal,
		UnexpectedLocal: report.UnexpectedLocalTotal,
	})
	return report, nil
}

// PlanPrune builds the deletion plan for the orphans of a persisted diff.
func (s *Service) PlanPrune(bagFilter string) (*reconcile.ReconcilePlan, error) {
	report, err := s.store.ReadDiff(bagFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to load diff report: %w", err)
	}
	return reconcile.BuildPlan(report), nil
}

// CheckPruneTarget makes sure src is the location the plan's orphans were
// listed from. Plans without a recorded source only produce a warning.
func (s *Service) CheckPruneTarget(plan *reconcile.ReconcilePlan, src local.Source) error {
	target := src.Location()
	if plan.Source == "" {
		s.logger.Warn("Diff report does not record its local source, cannot verify prune target",
			zap.String("target", target))
		return nil
	}
	if plan.Source != target {
		return fmt.Errorf("diff report was built from %s, refusing to prune %s", plan.Source, target)
	}
	return nil
}

// Prune applies plan to mutator and returns how many objects were removed.
func (s *Service) Prune(ctx context.Context, mutator reconcile.Mutator, plan *reconcile.ReconcilePlan, bagFilter string, opts reconcile.ReconcileOptions) (int, error) {
	executed, err := reconcile.ApplyPlan(ctx, mutator, plan, opts)
	if err != nil {
		return executed, err
	}
	if executed > 0 {
		s.logger.Info("Pruned local objects", zap.Int("deleted", executed))
		s.record(ctx, &history.Run{
			Command:         history.CommandPrune,
			BagFilter:       bagFilter,
			UnexpectedLocal: executed,
		})
	}
	return executed, nil
}

// record stores run when a recorder is configured. Failures only warn since
// history is optional.
func (s *Service) record(ctx context.Context, run *history.Run) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, run); err != nil {
		s.logger.Warn("Failed to record run", zap.String("command", run.Command), zap.Error(err))
	}
}

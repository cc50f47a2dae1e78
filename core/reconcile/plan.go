package reconcile

import (
	"context"
	"fmt"

	"storage-audit/core/catalog"
)

// Mutator applies actions to local storage.
type Mutator interface {
	// DeleteLocal removes a single local object.
	DeleteLocal(ctx context.Context, key string) error
}

// BatchDeleter is implemented by mutators that can remove many objects in
// one call.
type BatchDeleter interface {
	DeleteLocalBatch(ctx context.Context, keys []string) error
}

// BuildPlan derives the actions needed to remove local orphans.
// Missing objects are reported in the summary but never acted upon.
func BuildPlan(report *catalog.DiffReport) *ReconcilePlan {
	actions := make([]Action, 0, len(report.UnexpectedLocal))
	for _, id := range report.UnexpectedLocal {
		actions = append(actions, Action{
			Type:   ActionDeleteLocal,
			Key:    id,
			Reason: "not assigned to any bag of the bucket",
		})
	}

	return &ReconcilePlan{
		Source:  report.LocalSource,
		Actions: actions,
		Summary: PlanSummary{
			MissingObjects:  report.MissingObjectsTotal,
			MissingBags:     len(report.MissingObjectsPerBag),
			UnexpectedLocal: len(report.UnexpectedLocal),
			PurgeActions:    len(actions),
		},
	}
}

// ApplyPlan executes the actions in a plan and returns how many ran.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, mutator Mutator, plan *ReconcilePlan, opts ReconcileOptions) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	var deleteKeys []string
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionDeleteLocal:
			deleteKeys = append(deleteKeys, action.Key)
		default:
			return 0, fmt.Errorf("unknown action type %q", action.Type)
		}
	}

	if len(deleteKeys) == 0 {
		return 0, nil
	}

	if batchDeleter, ok := mutator.(BatchDeleter); ok {
		if err := batchDeleter.DeleteLocalBatch(ctx, deleteKeys); err != nil {
			return executed, fmt.Errorf("failed to batch delete local objects: %w", err)
		}
		return len(deleteKeys), nil
	}

	for _, key := range deleteKeys {
		if err := ctx.Err(); err != nil {
			return executed, err
		}
		if err := mutator.DeleteLocal(ctx, key); err != nil {
			return executed, fmt.Errorf("failed to delete local object %s: %w", key, err)
		}
		executed++
	}
	return executed, nil
}

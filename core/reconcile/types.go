package reconcile

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionDeleteLocal removes an orphaned object from local storage.
	ActionDeleteLocal ActionType = "delete_local"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the object identifier.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// ReconcilePlan contains planned actions derived from a diff report.
type ReconcilePlan struct {
	// Source is where the orphans were found. Empty for reports that predate
	// source tracking.
	Source string `json:"source,omitempty"`

	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// MissingObjects counts distinct objects missing locally.
	MissingObjects int `json:"missing_objects"`

	// MissingBags counts bags with at least one missing object.
	MissingBags int `json:"missing_bags"`

	// UnexpectedLocal counts local objects no bag lists.
	UnexpectedLocal int `json:"unexpected_local"`

	// PurgeActions counts planned delete actions.
	PurgeActions int `json:"purge_actions"`
}

// ReconcileOptions controls whether a plan is executed.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates user has confirmed destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}

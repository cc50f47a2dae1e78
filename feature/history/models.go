package history

import "time"

// Command names recorded in Run.Command.
const (
	CommandLocalFiles    = "local-files"
	CommandBucketObjects = "bucket-objects"
	CommandDiff          = "diff"
	CommandPrune         = "prune"
)

// Run is one recorded audit run.
type Run struct {
	ID              string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Command         string    `gorm:"column:command;size:32;index" json:"command"`
	Bucket          string    `gorm:"column:bucket;size:32" json:"bucket,omitempty"`
	BagFilter       string    `gorm:"column:bag_filter;size:32" json:"bagFilter,omitempty"`
	Bags            int       `gorm:"column:bags" json:"bags"`
	Objects         int       `gorm:"column:objects" json:"objects"`
	MissingObjects  int       `gorm:"column:missing_objects" json:"missingObjects"`
	UnexpectedLocal int       `gorm:"column:unexpected_local" json:"unexpectedLocal"`
	CreatedAt       time.Time `gorm:"column:created_at;index" json:"createdAt"`
}

// TableName overrides the table name.
func (Run) TableName() string {
	return "audit_runs"
}

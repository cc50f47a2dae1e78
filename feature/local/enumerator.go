package local

import (
	"context"

	"storage-audit/core/catalog"
	"storage-audit/core/utils"

	"go.uber.org/zap"
)

// Enumerator builds the local catalog from a source.
type Enumerator struct {
	logger *zap.Logger
}

// NewEnumerator creates an enumerator.
func NewEnumerator(logger *zap.Logger) *Enumerator {
	return &Enumerator{logger: logger}
}

// List returns the sorted catalog of object ids found in src. Names are kept
// verbatim, so "007" stays "007".
func (e *Enumerator) List(ctx context.Context, src Source) (*catalog.LocalCatalog, error) {
	names, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	objects := make([]string, 0, len(names))
	for _, name := range names {
		if utils.IsNumeric(name) {
			objects = append(objects, name)
		}
	}

	e.logger.Info("Found local objects",
		zap.String("source", src.Location()),
		zap.Int("count", len(objects)),
		zap.Int("skipped", len(names)-len(objects)),
	)
	c := catalog.NewLocalCatalog(objects)
	c.Source = src.Location()
	return c, nil
}

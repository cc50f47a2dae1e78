package bags

import (
	"context"
	"fmt"
	"strings"

	"storage-audit/core/query"

	"go.uber.org/zap"
)

const bucketBagsQuery = `
query GetStorageBucketBags($storageBucket: ID!, $limit: Int!, $offset: Int!) {
  storageBags(
    where: { storageBuckets_some: { id_eq: $storageBucket } }
    orderBy: [createdAt_ASC, id_ASC]
    limit: $limit
    offset: $offset
  ) {
    id
  }
}
`

type bag struct {
	ID string `json:"id"`
}

// Enumerator lists the bags of a bucket.
type Enumerator struct {
	client   query.Client
	pageSize int
	logger   *zap.Logger
}

// NewEnumerator creates an enumerator fetching pageSize bags per request.
func NewEnumerator(client query.Client, pageSize int, logger *zap.Logger) *Enumerator {
	return &Enumerator{
		client:   client,
		pageSize: pageSize,
		logger:   logger,
	}
}

// ListBags returns the ids of the bags assigned to bucketID in server order.
// A non-empty filter keeps only ids containing it.
func (e *Enumerator) ListBags(ctx context.Context, bucketID, filter string) ([]string, error) {
	e.logger.Info("Getting bags...", zap.String("bucket", bucketID))

	records, err := query.FetchAll[bag](ctx, e.client, query.Request{
		Query:     bucketBagsQuery,
		Variables: map[string]any{"storageBucket": bucketID},
		Field:     "storageBags",
	}, e.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list bags of bucket %s: %w", bucketID, err)
	}

	ids := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			e.logger.Warn("Duplicate bag in listing", zap.String("bag", r.ID))
			continue
		}
		seen[r.ID] = struct{}{}

		if filter != "" && !strings.Contains(r.ID, filter) {
			continue
		}
		ids = append(ids, r.ID)
	}

	e.logger.Info("Found bags",
		zap.Int("count", len(ids)),
		zap.Int("listed", len(records)),
		zap.String("filter", filter),
	)
	return ids, nil
}

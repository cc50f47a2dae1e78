package objects

import (
	"context"
	"fmt"

	"storage-audit/core/collation"
	"storage-audit/core/query"
	"storage-audit/core/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const bagObjectsQuery = `
query GetStorageBagsObjects($storageBags: [ID!]!, $limit: Int!, $offset: Int!) {
  storageBags(
    where: { id_in: $storageBags }
    orderBy: [createdAt_ASC, id_ASC]
    limit: $limit
    offset: $offset
  ) {
    id
    objects {
      id
      isAccepted
    }
  }
}
`

type bagObjects struct {
	ID      string       `json:"id"`
	Objects []dataObject `json:"objects"`
}

type dataObject struct {
	ID         string `json:"id"`
	IsAccepted bool   `json:"isAccepted"`
}

// Options tunes how bags are split and fetched.
type Options struct {
	// ChunkSize caps the number of bag ids per query.
	ChunkSize int
	// PageSize is the page size of each chunk query.
	PageSize int
	// Concurrency is the number of chunks fetched at once.
	Concurrency int
}

// Collector fetches the accepted objects of bags.
type Collector struct {
	client query.Client
	opts   Options
	logger *zap.Logger
}

// NewCollector creates a collector. Zero options fall back to 1000 ids per
// chunk, 1000 records per page and sequential fetching.
func NewCollector(client query.Client, opts Options, logger *zap.Logger) *Collector {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 1000
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 1000
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &Collector{
		client: client,
		opts:   opts,
		logger: logger,
	}
}

// Collect returns the sorted accepted objects of each bag holding at least
// one. Any failing chunk fails the whole collection.
func (c *Collector) Collect(ctx context.Context, bagIDs []string) (map[string][]string, error) {
	c.logger.Info("Getting objects...", zap.Int("bags", len(bagIDs)))

	chunks := utils.Chunk(dedupe(bagIDs), c.opts.ChunkSize)
	results := make([]map[string][]string, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)

	for i, chunk := range chunks {
		g.Go(func() error {
			bags, err := c.fetchChunk(gctx, chunk)
			if err != nil {
				return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
			}
			results[i] = bags
			c.logger.Debug("Fetched chunk",
				zap.Int("chunk", i+1),
				zap.Int("chunks", len(chunks)),
				zap.Int("bags", len(chunk)),
				zap.Int("bags_with_objects", len(bags)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect bag objects: %w", err)
	}

	merged := make(map[string][]string)
	objects := 0
	for _, bags := range results {
		for id, list := range bags {
			merged[id] = list
			objects += len(list)
		}
	}

	c.logger.Info("Found objects",
		zap.Int("objects", objects),
		zap.Int("bags_with_objects", len(merged)),
		zap.Int("chunks", len(chunks)),
	)
	return merged, nil
}

// fetchChunk runs the paginated query for one chunk of bag ids.
func (c *Collector) fetchChunk(ctx context.Context, bagIDs []string) (map[string][]string, error) {
	records, err := query.FetchAll[bagObjects](ctx, c.client, query.Request{
		Query:     bagObjectsQuery,
		Variables: map[string]any{"storageBags": bagIDs},
		Field:     "storageBags",
	}, c.opts.PageSize)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]string, len(records))
	for _, r := range records {
		accepted := acceptedIDs(r.Objects)
		if len(accepted) == 0 {
			continue
		}
		out[r.ID] = accepted
	}
	return out, nil
}

// acceptedIDs returns the distinct accepted object ids in collation order.
func acceptedIDs(objects []dataObject) []string {
	seen := make(map[string]struct{}, len(objects))
	ids := make([]string, 0, len(objects))
	for _, o := range objects {
		if !o.IsAccepted {
			continue
		}
		if _, dup := seen[o.ID]; dup {
			continue
		}
		seen[o.ID] = struct{}{}
		ids = append(ids, o.ID)
	}
	collation.Sort(ids)
	return ids
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

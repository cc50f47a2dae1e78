package query

import "fmt"

// Config holds configuration for the remote query service.
type Config struct {
	// Endpoint is the GraphQL endpoint URL.
	Endpoint string `mapstructure:"endpoint" default:"https://query.joystream.org/graphql"`
	// TimeoutSeconds bounds a single HTTP round trip.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// DeadlineSeconds bounds a whole command run. Zero disables the deadline.
	DeadlineSeconds int `mapstructure:"deadline_seconds" default:"0"`
	// BagsPageSize is the page size used when listing the bags of a bucket.
	BagsPageSize int `mapstructure:"bags_page_size" default:"3000"`
	// ObjectsPageSize is the page size used when listing bag objects. It must
	// be at least ChunkSize so a chunk's bags fit in a single page.
	ObjectsPageSize int `mapstructure:"objects_page_size" default:"1000"`
	// ChunkSize caps the number of bag ids sent in a single id_in filter.
	ChunkSize int `mapstructure:"chunk_size" default:"1000"`
	// Concurrency is the number of bag chunks fetched at the same time.
	Concurrency int `mapstructure:"concurrency" default:"1"`
}

// Validate checks the configuration for values the fetcher cannot work with.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("query endpoint is required")
	}
	if c.BagsPageSize <= 0 || c.ObjectsPageSize <= 0 {
		return fmt.Errorf("page sizes must be positive (bags=%d, objects=%d)", c.BagsPageSize, c.ObjectsPageSize)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.ObjectsPageSize < c.ChunkSize {
		return fmt.Errorf("objects page size %d is smaller than chunk size %d", c.ObjectsPageSize, c.ChunkSize)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	return nil
}

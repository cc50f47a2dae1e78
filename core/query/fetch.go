package query

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
)

// Request describes a paginated query. The query must declare $limit and
// $offset variables; FetchAll sets both on every round.
type Request struct {
	// Query is the GraphQL document.
	Query string
	// Variables are the caller's variables. They are copied, never mutated.
	Variables map[string]any
	// Field is the key under "data" holding the page's record array.
	Field string
}

// FetchAll runs req page by page and returns every record in server order.
// It stops at the first page holding fewer than pageSize records.
func FetchAll[T any](ctx context.Context, client Client, req Request, pageSize int) ([]T, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("invalid page size %d", pageSize)
	}

	var records []T
	for offset := 0; ; offset += pageSize {
		vars := make(map[string]any, len(req.Variables)+2)
		maps.Copy(vars, req.Variables)
		vars["limit"] = pageSize
		vars["offset"] = offset

		data, err := client.Do(ctx, req.Query, vars)
		if err != nil {
			return nil, fmt.Errorf("fetch %s at offset %d: %w", req.Field, offset, err)
		}

		raw, ok := data[req.Field]
		if !ok {
			return nil, fmt.Errorf("fetch %s at offset %d: field missing from response", req.Field, offset)
		}

		var page []T
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("decode %s at offset %d: %w", req.Field, offset, err)
		}

		records = append(records, page...)
		if len(page) < pageSize {
			return records, nil
		}
	}
}

package query

import (
	"fmt"
	"strings"
)

// TransportError is returned when the service answers with a non-2xx status.
type TransportError struct {
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("query service returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("query service returned HTTP %d: %s", e.Status, e.Body)
}

// GraphQLError is a single entry of a GraphQL errors array.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// QueryError is returned when a 2xx response carries GraphQL errors.
type QueryError struct {
	Errors []GraphQLError
}

func (e *QueryError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return "query failed: " + strings.Join(msgs, "; ")
}

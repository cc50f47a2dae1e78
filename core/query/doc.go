// Package query talks to the remote indexing service (a GraphQL query node).
//
// The service exposes a single POST endpoint accepting {query, variables}
// and answering {data, errors}. Client performs one round trip; FetchAll
// walks an offset-paginated query until the service returns a short page.
//
// # Pagination
//
// FetchAll issues requests with limit = pageSize and offset = 0, pageSize,
// 2*pageSize and so on, and stops at the first page holding fewer than
// pageSize records. A listing whose size is an exact multiple of pageSize
// therefore costs one extra, empty request. Offset pagination is only stable
// when the query orders by a total order, so every query in this module
// orders by creation time with the id as tiebreaker.
//
// # Errors
//
// A non-2xx response yields a *TransportError carrying the status code. A 2xx
// response with a GraphQL errors array yields a *QueryError. Either aborts the
// whole fetch and no partial result is returned.
//
// # Usage
//
//	client := query.NewHTTPClient(cfg)
//	bags, err := query.FetchAll[Bag](ctx, client, query.Request{
//	    Query:     bagsQuery,
//	    Variables: map[string]any{"storageBucket": "7"},
//	    Field:     "storageBags",
//	}, 3000)
package query

// Package objects collects the accepted data objects of storage bags.
//
// Bag ids are sent to the query node in id_in filters of at most ChunkSize
// ids. Each chunk is paginated on its own and chunks may be fetched
// concurrently; results are merged by chunk position so the output does not
// depend on which request finishes first.
package objects

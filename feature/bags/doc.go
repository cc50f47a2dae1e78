// Package bags lists the bags a storage bucket is assigned.
//
// The listing is paginated through core/query with the bucket page size
// (3000 by default) and ordered by creation time with the bag id as
// tiebreaker, which keeps offset pagination stable.
//
// An optional numeric filter keeps only bags whose id contains it as a
// substring: "42" matches both dynamic:channel:142 and dynamic:channel:421.
package bags

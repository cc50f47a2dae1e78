// Package collation provides the single ordering used for every serialized
// list of object and bag identifiers.
//
// Identifiers are compared with English locale collation and numeric
// ordering of digit runs, so "obj9" sorts before "obj10" and "9" before "10".
// Identifiers that collate equal (for example "7" and "007") fall back to
// byte order, which keeps the order total and the output deterministic.
//
// # Usage
//
//	ids := []string{"obj9", "obj10", "obj2"}
//	collation.Sort(ids) // [obj2 obj9 obj10]
package collation

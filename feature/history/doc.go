// Package history stores a row per successful audit run in the optional
// database so operators can follow missing and orphaned object counts over
// time.
package history

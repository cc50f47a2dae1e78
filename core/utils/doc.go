// Package utils provides small helpers shared by the storage-audit commands
// and features that don't belong to a specific domain package.
package utils

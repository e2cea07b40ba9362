// Package store provides database access methods for all toolindex
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import "strings"

// likePattern builds a case-insensitive containment pattern for ILIKE,
// escaping the wildcard characters in the caller's filter so they match
// literally. An empty filter yields "%%", which matches every row.
func likePattern(filter string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(filter)
	return "%" + escaped + "%"
}

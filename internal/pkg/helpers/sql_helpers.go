package helpers

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE wildcards so s matches literally
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern returns an ILIKE pattern matching s anywhere in the column
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}

// StringPtr returns a pointer to a trimmed copy of s
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	return &s
}

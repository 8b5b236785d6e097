package database

import "strings"

type rowScanner interface {
	Scan(dest ...any) error
}

// offsetFor converts a 1-based page number to a row offset.
func offsetFor(page, pageSize int) int {
	return (page - 1) * pageSize
}

// TotalPages reports how many pages of the given size a result set spans.
func TotalPages(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}

// likePattern wraps a search term for ILIKE matching, escaping the pattern
// metacharacters so user input always matches literally.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

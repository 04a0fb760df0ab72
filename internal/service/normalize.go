package service

import "strings"

// Normalize lowercases and trims whitespace from a raw recipe title or query.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

package service

import (
	"fmt"
	"strings"
)

// Disambiguate derives a unique username from a display name: lower-cased,
// spaces replaced with underscores, then numeric suffixes until taken
// reports false. Pure so it can be tested without a store.
func Disambiguate(displayName string, taken func(string) bool) string {
	base := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(displayName)), " ", "_")
	if base == "" {
		base = "user"
	}

	username := base
	for counter := 1; taken(username); counter++ {
		username = fmt.Sprintf("%s_%d", base, counter)
	}
	return username
}

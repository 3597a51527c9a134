package textutil

import (
	"strconv"
	"strings"
)

// CoerceBool interprets roster-style truthy strings.
// "1", "true", "yes", "y" and "on" (any case, surrounding spaces ignored)
// are true; everything else is false.
func CoerceBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

// Uniq trims every item, drops empties, and removes case-insensitive
// duplicates while preserving first-seen order.
func Uniq(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// ParseInt parses s as a base-10 integer, returning def on any failure.
func ParseInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// SplitEmailList splits a comma- or semicolon-separated address list into
// a deduplicated slice of addresses.
func SplitEmailList(s string) []string {
	if s == "" {
		return nil
	}
	return Uniq(strings.Split(strings.ReplaceAll(s, ";", ","), ","))
}

package catalog

import "strings"

// NormalizeQuery lowercases and trims a free-text query.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Search returns the items whose name, description or any tag contains the
// query, ignoring case. A blank query returns items unchanged.
func Search(items []Item, query string) []Item {
	q := NormalizeQuery(query)
	if q == "" {
		return items
	}

	out := make([]Item, 0)
	for _, it := range items {
		if it.matches(q) {
			out = append(out, it)
		}
	}
	return out
}

// matches expects an already normalized query.
func (it Item) matches(q string) bool {
	if strings.Contains(strings.ToLower(it.Name), q) ||
		strings.Contains(strings.ToLower(it.Description), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

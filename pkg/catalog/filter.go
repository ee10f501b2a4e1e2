package catalog

// FilterByCategory returns the items whose primary tag is exactly name.
// The match is case-sensitive; an unknown name yields an empty slice.
func FilterByCategory(items []Item, name string) []Item {
	out := make([]Item, 0)
	for _, it := range items {
		if it.PrimaryTag() == name {
			out = append(out, it)
		}
	}
	return out
}

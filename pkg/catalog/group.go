package catalog

// Groups is the result of partitioning items by primary tag.
type Groups struct {
	// Order lists bucket names in the order they were first seen.
	Order   []string
	Buckets map[string][]Item
}

// Group partitions items by primary tag in a single pass. Items keep their
// input order inside each bucket.
func Group(items []Item) Groups {
	g := Groups{
		Order:   []string{},
		Buckets: make(map[string][]Item),
	}
	for _, it := range items {
		name := it.PrimaryTag()
		if _, ok := g.Buckets[name]; !ok {
			g.Order = append(g.Order, name)
		}
		g.Buckets[name] = append(g.Buckets[name], it)
	}
	return g
}

// Len returns the number of buckets.
func (g Groups) Len() int {
	return len(g.Order)
}

package catalog

// Colorer resolves the color token of a bucket name. *taxonomy.Taxonomy
// implements it.
type Colorer interface {
	ColorFor(category string) string
}

// DisplayGroup is one colored bucket of a display plan.
type DisplayGroup struct {
	Category string
	Color    string
	Items    []Item
}

// BuildPlan groups items and colors each bucket, keeping first-seen bucket
// order. An empty input yields an empty plan; callers show a "no results"
// state for it.
func BuildPlan(items []Item, colors Colorer) []DisplayGroup {
	g := Group(items)
	plan := make([]DisplayGroup, 0, g.Len())
	for _, name := range g.Order {
		plan = append(plan, DisplayGroup{
			Category: name,
			Color:    colors.ColorFor(name),
			Items:    g.Buckets[name],
		})
	}
	return plan
}

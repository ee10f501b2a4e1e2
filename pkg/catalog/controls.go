package catalog

import "github.com/sw33tLie/catalogo/pkg/taxonomy"

// AllControl is the label of the control that resets the view to AllItems.
const AllControl = "All"

// Control is one super-category entry point. Activating it offers exactly
// Subcategories as secondary choices.
type Control struct {
	SuperCategory string   `json:"super_category"`
	Color         string   `json:"color"`
	Subcategories []string `json:"subcategories"`
}

// PresentCategories returns the primary tags of items that carry tags.
// Untagged items never contribute, so OtherCategory is only present if some
// item is literally tagged with it.
func PresentCategories(items []Item) map[string]struct{} {
	present := make(map[string]struct{})
	for _, it := range items {
		if len(it.Tags) == 0 || it.Tags[0] == "" {
			continue
		}
		present[it.Tags[0]] = struct{}{}
	}
	return present
}

// BuildControls intersects every super-category of tax with the
// sub-categories present in items. Super-categories with an empty
// intersection are left out. Order follows the taxonomy.
func BuildControls(tax *taxonomy.Taxonomy, items []Item) []Control {
	present := PresentCategories(items)
	controls := make([]Control, 0)
	for _, sc := range tax.SuperCategories() {
		var subs []string
		for _, sub := range sc.Subcategories {
			if _, ok := present[sub]; ok {
				subs = append(subs, sub)
			}
		}
		if len(subs) == 0 {
			continue
		}
		color := sc.Color
		if color == "" {
			color = tax.DefaultColor()
		}
		controls = append(controls, Control{
			SuperCategory: sc.Name,
			Color:         color,
			Subcategories: subs,
		})
	}
	return controls
}

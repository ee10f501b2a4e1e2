// Package catalog holds the item model and the pure engines that group,
// filter, search and plan the display of a loaded collection. Nothing here
// mutates the collection it is given.
package catalog

// OtherCategory is the bucket of items that carry no tags.
const OtherCategory = "Other"

// Item is a single catalog entry. Items are immutable after load.
type Item struct {
	Name         string
	Description  string
	CreationYear string // kept as text; numeric years round-trip as numbers
	Link         string
	Tags         []string
}

// PrimaryTag is the first tag, or OtherCategory when the item has none.
func (it Item) PrimaryTag() string {
	if len(it.Tags) > 0 {
		return it.Tags[0]
	}
	return OtherCategory
}

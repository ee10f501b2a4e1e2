package catalog

import "fmt"

// SelectorKind discriminates the three mutually exclusive view selections.
type SelectorKind int

const (
	KindAll SelectorKind = iota
	KindCategory
	KindSearch
)

// Selector describes which subset of the collection is on display.
type Selector struct {
	Kind     SelectorKind
	Category string
	Query    string
}

func AllItems() Selector { return Selector{Kind: KindAll} }

func ByCategory(name string) Selector { return Selector{Kind: KindCategory, Category: name} }

func BySearch(query string) Selector { return Selector{Kind: KindSearch, Query: query} }

func (s Selector) String() string {
	switch s.Kind {
	case KindCategory:
		return fmt.Sprintf("category(%q)", s.Category)
	case KindSearch:
		return fmt.Sprintf("search(%q)", s.Query)
	default:
		return "all"
	}
}

// Select applies sel to items.
func Select(items []Item, sel Selector) []Item {
	switch sel.Kind {
	case KindCategory:
		return FilterByCategory(items, sel.Category)
	case KindSearch:
		return Search(items, sel.Query)
	default:
		return items
	}
}

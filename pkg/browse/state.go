// Package browse models the host's view state as a small state machine over
// {AllItems, ByCategory, BySearch}. Transitions are pure: each returns a new
// State and never touches the collection.
package browse

import (
	"strings"

	"github.com/sw33tLie/catalogo/pkg/catalog"
)

// State is everything a host needs to remember between user actions.
type State struct {
	Selector catalog.Selector
	// Query is the current content of the search field.
	Query string
	// AllActive reports whether the "All" control is highlighted.
	AllActive bool
}

// Initial is the state right after the collection is loaded.
func Initial() State {
	return State{Selector: catalog.AllItems()}
}

// SelectAll activates the "All" control. The search field is cleared.
func (s State) SelectAll() State {
	return State{Selector: catalog.AllItems(), AllActive: true}
}

// SelectCategory shows a single sub-category. The search field is cleared
// and no control stays highlighted; highlighting the chosen sub-category
// button is left to the host.
func (s State) SelectCategory(name string) State {
	return State{Selector: catalog.ByCategory(name)}
}

// EditQuery records a change to the search field. Emptying the field resets
// the view to all items right away; any other edit waits for SubmitSearch.
func (s State) EditQuery(text string) State {
	s.Query = text
	if strings.TrimSpace(text) == "" {
		s.Selector = catalog.AllItems()
	}
	return s
}

// SubmitSearch runs the search in the field (explicit trigger or Enter).
func (s State) SubmitSearch() State {
	if catalog.NormalizeQuery(s.Query) == "" {
		s.Selector = catalog.AllItems()
		return s
	}
	s.Selector = catalog.BySearch(s.Query)
	return s
}

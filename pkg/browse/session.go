package browse

import (
	"github.com/sw33tLie/catalogo/pkg/catalog"
	"github.com/sw33tLie/catalogo/pkg/taxonomy"
)

const LoadFailureMessage = "Could not load the catalog."

// View is what a renderer paints after a transition.
type View struct {
	Groups []catalog.DisplayGroup
	// Empty is set when the selection matched nothing.
	Empty bool
	// Failed is set when the collection could not be loaded.
	Failed  bool
	Message string
}

// Session binds the immutable base collection to its taxonomy. It is safe
// for concurrent use because nothing in it changes after NewSession.
type Session struct {
	base     []catalog.Item
	tax      *taxonomy.Taxonomy
	loadErr  error
	controls []catalog.Control
}

// NewSession builds a session. A non-nil loadErr marks the load as failed:
// the collection is treated as empty for the lifetime of the session.
func NewSession(base []catalog.Item, tax *taxonomy.Taxonomy, loadErr error) *Session {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if loadErr != nil {
		base = nil
	}
	return &Session{
		base:     base,
		tax:      tax,
		loadErr:  loadErr,
		controls: catalog.BuildControls(tax, base),
	}
}

// Items returns the subset selected by st.
func (s *Session) Items(st State) []catalog.Item {
	return catalog.Select(s.base, st.Selector)
}

// Render computes the view for st.
func (s *Session) Render(st State) View {
	if s.loadErr != nil {
		return View{Groups: []catalog.DisplayGroup{}, Failed: true, Message: LoadFailureMessage}
	}
	groups := catalog.BuildPlan(s.Items(st), s.tax)
	if len(groups) == 0 {
		return View{Groups: groups, Empty: true, Message: catalog.NoResultsMessage}
	}
	return View{Groups: groups}
}

// Controls returns the super-category controls offered for the collection.
func (s *Session) Controls() []catalog.Control {
	out := make([]catalog.Control, len(s.controls))
	for i, c := range s.controls {
		c.Subcategories = append([]string(nil), c.Subcategories...)
		out[i] = c
	}
	return out
}

func (s *Session) Taxonomy() *taxonomy.Taxonomy { return s.tax }

// LoadErr returns the error the collection failed to load with, if any.
func (s *Session) LoadErr() error { return s.loadErr }

// Len is the size of the base collection.
func (s *Session) Len() int { return len(s.base) }

// Package taxonomy maps sub-categories (an item's primary tag) to the
// super-category that owns them and to the color token used to paint them.
package taxonomy

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultColor is the token for sub-categories no super-category owns.
const DefaultColor = "primary-color"

// ErrDuplicateSubcategory is reported when a sub-category is configured under
// more than one super-category.
var ErrDuplicateSubcategory = errors.New("sub-category configured under more than one super-category")

// SuperCategory is a named, colored group of sub-categories.
type SuperCategory struct {
	Name          string   `yaml:"name" json:"name"`
	Color         string   `yaml:"color" json:"color"`
	Subcategories []string `yaml:"subcategories" json:"subcategories"`
}

// Taxonomy is an ordered, read-only set of super-categories.
type Taxonomy struct {
	supers       []SuperCategory
	owners       map[string]int
	defaultColor string
}

// New builds a taxonomy from supers, keeping their order. If a sub-category
// appears under several super-categories the first one in iteration order
// owns it; use Validate to reject such configurations up front.
func New(supers []SuperCategory, defaultColor string) *Taxonomy {
	if defaultColor == "" {
		defaultColor = DefaultColor
	}
	t := &Taxonomy{
		supers:       make([]SuperCategory, 0, len(supers)),
		owners:       make(map[string]int),
		defaultColor: defaultColor,
	}
	for i, sc := range supers {
		subs := make([]string, len(sc.Subcategories))
		copy(subs, sc.Subcategories)
		t.supers = append(t.supers, SuperCategory{Name: sc.Name, Color: sc.Color, Subcategories: subs})
		for _, sub := range subs {
			if _, taken := t.owners[sub]; !taken {
				t.owners[sub] = i
			}
		}
	}
	return t
}

// SuperCategories returns a copy of the configured super-categories in order.
func (t *Taxonomy) SuperCategories() []SuperCategory {
	out := make([]SuperCategory, len(t.supers))
	for i, sc := range t.supers {
		subs := make([]string, len(sc.Subcategories))
		copy(subs, sc.Subcategories)
		out[i] = SuperCategory{Name: sc.Name, Color: sc.Color, Subcategories: subs}
	}
	return out
}

// OwnerOf returns the first super-category containing sub.
func (t *Taxonomy) OwnerOf(sub string) (string, bool) {
	i, ok := t.owners[sub]
	if !ok {
		return "", false
	}
	return t.supers[i].Name, true
}

// ColorFor resolves the color token of a sub-category. Unknown names,
// including the "Other" bucket, get the default token.
func (t *Taxonomy) ColorFor(sub string) string {
	i, ok := t.owners[sub]
	if !ok || t.supers[i].Color == "" {
		return t.defaultColor
	}
	return t.supers[i].Color
}

// DefaultColor returns the fallback color token.
func (t *Taxonomy) DefaultColor() string {
	return t.defaultColor
}

// Validate checks that every super-category is named and that no
// sub-category belongs to two super-categories.
func Validate(supers []SuperCategory) error {
	var errs []error
	seenSuper := make(map[string]bool)
	owner := make(map[string]string)
	for _, sc := range supers {
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			errs = append(errs, errors.New("super-category without a name"))
			continue
		}
		if seenSuper[name] {
			errs = append(errs, fmt.Errorf("super-category %q defined twice", name))
		}
		seenSuper[name] = true
		for _, sub := range sc.Subcategories {
			if prev, ok := owner[sub]; ok && prev != name {
				errs = append(errs, fmt.Errorf("%w: %q in %q and %q", ErrDuplicateSubcategory, sub, prev, name))
				continue
			}
			owner[sub] = name
		}
	}
	return errors.Join(errs...)
}

package taxonomy

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOwnerOf(t *testing.T) {
	tax := Default()

	owner, ok := tax.OwnerOf("Motor de Jogo")
	if !ok || owner != "Tecnologias Core" {
		t.Fatalf("expected Tecnologias Core, got %q (found=%v)", owner, ok)
	}

	if owner, ok := tax.OwnerOf("Other"); ok {
		t.Fatalf("expected no owner for Other, got %q", owner)
	}
}

func TestColorFor(t *testing.T) {
	tax := Default()

	tests := map[string]string{
		"Motor de Jogo":   "color-core",
		"Motor de Física": "color-core",
		"Netcode":         "color-redes",
		"Áudio":           "color-ferramentas",
		"Other":           DefaultColor,
		"Nonexistent":     DefaultColor,
		"":                DefaultColor,
		"motor de jogo":   DefaultColor, // lookups are exact
	}
	for sub, want := range tests {
		if got := tax.ColorFor(sub); got != want {
			t.Fatalf("ColorFor(%q): expected %q, got %q", sub, want, got)
		}
	}
}

func TestColorForIsStable(t *testing.T) {
	tax := Default()
	first := tax.ColorFor("Gráficos")
	tax.ColorFor("Other")
	tax.ColorFor("Multiplayer")
	if again := tax.ColorFor("Gráficos"); again != first {
		t.Fatalf("expected stable color %q, got %q", first, again)
	}
}

func TestFirstOwnerWins(t *testing.T) {
	tax := New([]SuperCategory{
		{Name: "A", Color: "a", Subcategories: []string{"shared", "only-a"}},
		{Name: "B", Color: "b", Subcategories: []string{"shared"}},
	}, "")

	if owner, _ := tax.OwnerOf("shared"); owner != "A" {
		t.Fatalf("expected first super-category to own shared, got %q", owner)
	}
	if got := tax.ColorFor("shared"); got != "a" {
		t.Fatalf("expected color a, got %q", got)
	}
	if tax.DefaultColor() != DefaultColor {
		t.Fatalf("expected default color %q, got %q", DefaultColor, tax.DefaultColor())
	}
}

func TestSuperCategoriesIsACopy(t *testing.T) {
	tax := Default()
	supers := tax.SuperCategories()
	supers[0].Subcategories[0] = "mutated"
	supers[0].Name = "mutated"

	again := tax.SuperCategories()
	if again[0].Name != "Tecnologias Core" || again[0].Subcategories[0] != "Motor de Jogo" {
		t.Fatalf("taxonomy was mutated through SuperCategories: %#v", again[0])
	}
}

func TestDefaultOrder(t *testing.T) {
	var names []string
	for _, sc := range Default().SuperCategories() {
		names = append(names, sc.Name)
	}
	want := []string{
		"Tecnologias Core",
		"Gráficos e Renderização",
		"Design e Gameplay",
		"Online e Redes",
		"Negócios e Monetização",
		"Ferramentas e Middleware",
	}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("unexpected order.\nwant: %#v\ngot:  %#v", want, names)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Validate(defaultSuperCategories); err != nil {
		t.Fatalf("built-in taxonomy is invalid: %v", err)
	}
}

func TestValidateDuplicates(t *testing.T) {
	err := Validate([]SuperCategory{
		{Name: "A", Subcategories: []string{"x"}},
		{Name: "B", Subcategories: []string{"x"}},
	})
	if !errors.Is(err, ErrDuplicateSubcategory) {
		t.Fatalf("expected ErrDuplicateSubcategory, got %v", err)
	}

	if err := Validate([]SuperCategory{{Name: " ", Subcategories: []string{"x"}}}); err == nil {
		t.Fatalf("expected error for unnamed super-category")
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
default_color: muted
super_categories:
  - name: Engines
    color: blue
    subcategories: [Motor de Jogo, Framework]
  - name: Net
    color: green
    subcategories: [Netcode]
`)
	tax, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tax.ColorFor("Framework"); got != "blue" {
		t.Fatalf("expected blue, got %q", got)
	}
	if got := tax.ColorFor("Other"); got != "muted" {
		t.Fatalf("expected muted, got %q", got)
	}
	if supers := tax.SuperCategories(); len(supers) != 2 || supers[1].Name != "Net" {
		t.Fatalf("unexpected super-categories: %#v", supers)
	}
}

func TestParseRejectsDuplicates(t *testing.T) {
	data := []byte(`
super_categories:
  - name: A
    subcategories: [x]
  - name: B
    subcategories: [x]
`)
	if _, err := Parse(data); !errors.Is(err, ErrDuplicateSubcategory) {
		t.Fatalf("expected ErrDuplicateSubcategory, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	tax, err := LoadFile("")
	if err != nil || tax.ColorFor("Netcode") != "color-redes" {
		t.Fatalf("expected built-in taxonomy for empty path, got err=%v", err)
	}

	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	if err := os.WriteFile(path, []byte("super_categories:\n  - name: A\n    color: a\n    subcategories: [x]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tax, err = LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tax.ColorFor("x") != "a" {
		t.Fatalf("expected color a, got %q", tax.ColorFor("x"))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestHex(t *testing.T) {
	if got := Hex("color-core"); got != "#4f8cff" {
		t.Fatalf("expected #4f8cff, got %s", got)
	}
	if got := Hex("#123456"); got != "#123456" {
		t.Fatalf("expected literal hex to pass through, got %s", got)
	}
	if got := Hex("unknown"); got != Hex(DefaultColor) {
		t.Fatalf("expected default hex, got %s", got)
	}
	for _, sc := range Default().SuperCategories() {
		if Hex(sc.Color) == Hex(DefaultColor) {
			t.Fatalf("super-category %s has no palette entry for %s", sc.Name, sc.Color)
		}
	}
	if len(PaletteTokens()) != 7 {
		t.Fatalf("expected 7 palette tokens, got %d", len(PaletteTokens()))
	}
}

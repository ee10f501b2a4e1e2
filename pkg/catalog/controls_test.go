package catalog

import (
	"reflect"
	"testing"

	"github.com/sw33tLie/catalogo/pkg/taxonomy"
)

func TestBuildControls(t *testing.T) {
	items := []Item{
		it("a", "Netcode"),
		it("b", "Motor de Física"),
		it("c", "Motor de Jogo"),
		it("d", "Unknown Tag"),
		it("e"),
		it("f", "C#", "Multiplayer"), // only the primary tag counts
	}
	got := BuildControls(taxonomy.Default(), items)

	want := []Control{
		{SuperCategory: "Tecnologias Core", Color: "color-core", Subcategories: []string{"Motor de Jogo", "Motor de Física"}},
		{SuperCategory: "Online e Redes", Color: "color-redes", Subcategories: []string{"Netcode"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected controls.\nwant: %#v\ngot:  %#v", want, got)
	}
}

func TestBuildControlsEmpty(t *testing.T) {
	got := BuildControls(taxonomy.Default(), []Item{it("a"), it("b", "Unknown")})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected no controls, got %#v", got)
	}
}

func TestPresentCategoriesIgnoresUntagged(t *testing.T) {
	present := PresentCategories([]Item{it("a"), it("b", ""), it("c", "x")})
	if len(present) != 1 {
		t.Fatalf("expected only x, got %v", present)
	}
	if _, ok := present[OtherCategory]; ok {
		t.Fatalf("Other must not be offered as a category")
	}
}

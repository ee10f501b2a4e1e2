package catalog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tidwall/gjson"
)

const sampleCollection = `[
  {"nome": "Unity", "descricao": "Engine", "data_criacao": 2005, "link": "https://unity.com", "tags": ["Motor de Jogo", "C#"]},
  {"nome": "PhysX", "descricao": "Physics", "data_criacao": "2004", "link": "https://nvidia.com", "tags": ["Motor de Física"]},
  {"nome": "Indie X", "descricao": "Game", "data_criacao": "c. 1999", "link": "https://example.com", "tags": []},
  {"nome": "No Tags", "descricao": "", "data_criacao": null, "link": ""}
]`

func TestDecode(t *testing.T) {
	items, err := Decode([]byte(sampleCollection))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}

	want := Item{Name: "Unity", Description: "Engine", CreationYear: "2005", Link: "https://unity.com", Tags: []string{"Motor de Jogo", "C#"}}
	if !reflect.DeepEqual(items[0], want) {
		t.Fatalf("unexpected first item.\nwant: %#v\ngot:  %#v", want, items[0])
	}
	if items[1].CreationYear != "2004" || items[2].CreationYear != "c. 1999" {
		t.Fatalf("unexpected years: %q, %q", items[1].CreationYear, items[2].CreationYear)
	}
	if items[2].PrimaryTag() != OtherCategory || items[3].PrimaryTag() != OtherCategory {
		t.Fatalf("expected untagged items in %s", OtherCategory)
	}
	if items[3].CreationYear != "" {
		t.Fatalf("expected empty year for null, got %q", items[3].CreationYear)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte(`{"nome": "x"`)); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
	if _, err := Decode([]byte(`{"nome": "x"}`)); !errors.Is(err, ErrNotArray) {
		t.Fatalf("expected ErrNotArray, got %v", err)
	}
	items, err := Decode([]byte(`[]`))
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty collection, got %v, %v", items, err)
	}
}

func TestEncodeItemYearTypes(t *testing.T) {
	rec, err := EncodeItem(Item{Name: "Unity", CreationYear: "2005"})
	if err != nil {
		t.Fatal(err)
	}
	if year := gjson.GetBytes(rec, "data_criacao"); year.Type != gjson.Number || year.Int() != 2005 {
		t.Fatalf("expected numeric year, got %s", year.Raw)
	}
	if tags := gjson.GetBytes(rec, "tags"); !tags.IsArray() || len(tags.Array()) != 0 {
		t.Fatalf("expected empty tags array, got %s", tags.Raw)
	}

	rec, err = EncodeItem(Item{Name: "Old", CreationYear: "c. 1999"})
	if err != nil {
		t.Fatal(err)
	}
	if year := gjson.GetBytes(rec, "data_criacao"); year.Type != gjson.String || year.Str != "c. 1999" {
		t.Fatalf("expected string year, got %s", year.Raw)
	}
}

func TestEncodeItemKeepsLeadingZeroYear(t *testing.T) {
	rec, err := EncodeItem(Item{Name: "Ancient", CreationYear: "0005"})
	if err != nil {
		t.Fatal(err)
	}
	if year := gjson.GetBytes(rec, "data_criacao"); year.Type != gjson.String || year.Str != "0005" {
		t.Fatalf("expected string year 0005, got %s", year.Raw)
	}
	items, err := Decode(append(append([]byte("["), rec...), ']'))
	if err != nil {
		t.Fatal(err)
	}
	if items[0].CreationYear != "0005" {
		t.Fatalf("expected 0005 after round trip, got %q", items[0].CreationYear)
	}
}

func TestEncodeDecodeKeepsOrderAndTags(t *testing.T) {
	items, err := Decode([]byte(sampleCollection))
	if err != nil {
		t.Fatal(err)
	}
	data, err := EncodeItems(items)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names(again), names(items)) {
		t.Fatalf("order changed: %v vs %v", names(again), names(items))
	}
	if !reflect.DeepEqual(again[0].Tags, []string{"Motor de Jogo", "C#"}) {
		t.Fatalf("tags changed: %v", again[0].Tags)
	}
}

func TestEncodePlan(t *testing.T) {
	plan := []DisplayGroup{
		{Category: "Motor de Jogo", Color: "color-core", Items: []Item{{Name: "Unity", Tags: []string{"Motor de Jogo"}}}},
		{Category: OtherCategory, Color: "primary-color", Items: []Item{{Name: "Indie X"}}},
	}
	data, err := EncodePlan(plan)
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "#.category").String(); got != `["Motor de Jogo","Other"]` {
		t.Fatalf("unexpected categories %s", got)
	}
	if got := gjson.GetBytes(data, "0.items.0.nome").String(); got != "Unity" {
		t.Fatalf("unexpected first item %q", got)
	}

	empty, err := EncodePlan(nil)
	if err != nil || string(empty) != "[]" {
		t.Fatalf("expected [], got %s (%v)", empty, err)
	}
}

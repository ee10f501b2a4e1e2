package catalog

import (
	"errors"

	"github.com/tidwall/gjson"
)

// External record field names. They are kept verbatim for compatibility
// with existing data files.
const (
	fieldName        = "nome"
	fieldDescription = "descricao"
	fieldYear        = "data_criacao"
	fieldLink        = "link"
	fieldTags        = "tags"
)

var (
	ErrInvalidJSON = errors.New("collection is not valid JSON")
	ErrNotArray    = errors.New("collection is not a JSON array")
)

// Decode parses a collection serialized as a JSON array of
// {nome, descricao, data_criacao, link, tags} records. data_criacao may be a
// string or a number. A missing or non-array tags field means no tags.
func Decode(data []byte) ([]Item, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	items := make([]Item, 0)
	root.ForEach(func(_, rec gjson.Result) bool {
		items = append(items, decodeItem(rec))
		return true
	})
	return items, nil
}

func decodeItem(rec gjson.Result) Item {
	it := Item{
		Name:         rec.Get(fieldName).String(),
		Description:  rec.Get(fieldDescription).String(),
		CreationYear: rec.Get(fieldYear).String(),
		Link:         rec.Get(fieldLink).String(),
	}
	if tags := rec.Get(fieldTags); tags.IsArray() {
		for _, tag := range tags.Array() {
			it.Tags = append(it.Tags, tag.String())
		}
	}
	return it
}

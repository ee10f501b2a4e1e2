package catalog

import (
	"bytes"
	"strconv"

	"github.com/tidwall/sjson"
)

// EncodeItem writes it in the external record format. A year in canonical
// decimal form is written as a JSON number, anything else as a string.
func EncodeItem(it Item) ([]byte, error) {
	rec := []byte(`{}`)
	var err error
	if rec, err = sjson.SetBytes(rec, fieldName, it.Name); err != nil {
		return nil, err
	}
	if rec, err = sjson.SetBytes(rec, fieldDescription, it.Description); err != nil {
		return nil, err
	}
	if n, ok := numericYear(it.CreationYear); ok {
		rec, err = sjson.SetBytes(rec, fieldYear, n)
	} else {
		rec, err = sjson.SetBytes(rec, fieldYear, it.CreationYear)
	}
	if err != nil {
		return nil, err
	}
	if rec, err = sjson.SetBytes(rec, fieldLink, it.Link); err != nil {
		return nil, err
	}
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	if rec, err = sjson.SetBytes(rec, fieldTags, tags); err != nil {
		return nil, err
	}
	return rec, nil
}

// EncodeItems writes items as a JSON array of external records.
func EncodeItems(items []Item) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, it := range items {
		rec, err := EncodeItem(it)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(rec)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// EncodePlan writes a display plan as
// [{"category": ..., "color": ..., "items": [records...]}].
func EncodePlan(plan []DisplayGroup) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, g := range plan {
		group := []byte(`{}`)
		var err error
		if group, err = sjson.SetBytes(group, "category", g.Category); err != nil {
			return nil, err
		}
		if group, err = sjson.SetBytes(group, "color", g.Color); err != nil {
			return nil, err
		}
		items, err := EncodeItems(g.Items)
		if err != nil {
			return nil, err
		}
		if group, err = sjson.SetRawBytes(group, "items", items); err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(group)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func numericYear(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != s {
		return 0, false
	}
	return n, true
}

package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"clueboard/internal/clue"
)

// jsonFields maps lowercased object keys onto dataset columns, in lookup
// order. "money" is the value key used by some public dumps.
var jsonFields = []struct {
	key    string
	column string
}{
	{"category", clue.ColumnCategory},
	{"value", clue.ColumnValue},
	{"money", clue.ColumnValue},
	{"question", clue.ColumnQuestion},
	{"answer", clue.ColumnAnswer},
	{"round", clue.ColumnRound},
}

type jsonSource struct {
	location string
	client   HTTPDoer
}

func (s *jsonSource) Rows(ctx context.Context) ([][]string, error) {
	data, err := fetch(ctx, s.location, s.client)
	if err != nil {
		return nil, err
	}
	rows, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.location, err)
	}
	return rows, nil
}

func (s *jsonSource) Describe() string {
	return "json " + s.location
}

// DecodeJSON reads either a JSON array of clue objects or a stream of
// objects (JSON lines) and returns rows under a clue.Columns header.
func DecodeJSON(r io.Reader) ([][]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	rows := [][]string{append([]string(nil), clue.Columns...)}

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return rows, nil
	}
	if err != nil {
		return nil, err
	}
	switch tok {
	case json.Delim('['):
		for dec.More() {
			row, err := decodeObject(dec)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("read array end: %w", err)
		}
		return rows, nil
	case json.Delim('{'):
		row, err := decodeFields(dec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		for {
			row, err := decodeObject(dec)
			if errors.Is(err, io.EOF) {
				return rows, nil
			}
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	default:
		return nil, fmt.Errorf("expected JSON array or object, got %v", tok)
	}
}

func decodeObject(dec *json.Decoder) ([]string, error) {
	var object map[string]any
	if err := dec.Decode(&object); err != nil {
		return nil, err
	}
	return objectRow(object), nil
}

// decodeFields reads the remainder of an object whose opening brace has
// already been consumed.
func decodeFields(dec *json.Decoder) ([]string, error) {
	object := map[string]any{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		object[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read object end: %w", err)
	}
	return objectRow(object), nil
}

func objectRow(object map[string]any) []string {
	lowered := make(map[string]any, len(object))
	for key, value := range object {
		lowered[strings.ToLower(strings.TrimSpace(key))] = value
	}
	index := clue.NewHeader(clue.Columns)
	row := make([]string, len(clue.Columns))
	filled := make([]bool, len(clue.Columns))
	for _, field := range jsonFields {
		i := index[field.column]
		if filled[i] {
			continue
		}
		if text, ok := scalarText(lowered[field.key]); ok {
			row[i] = text
			filled[i] = true
		}
	}
	return row
}

// scalarText renders strings and numbers; null and composite values are
// treated as missing.
func scalarText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

package clue

import "strings"

// Header maps trimmed column names to their index in a row.
type Header map[string]int

// NewHeader indexes a header row. When a name repeats, the first column wins.
func NewHeader(row []string) Header {
	header := make(Header, len(row))
	for i, name := range row {
		name = strings.TrimSpace(name)
		if _, exists := header[name]; exists {
			continue
		}
		header[name] = i
	}
	return header
}

// Has reports whether the header contains a column.
func (h Header) Has(name string) bool {
	_, ok := h[name]
	return ok
}

// Field returns the named column of row, or "" when the column is missing
// from the header or the row is too short.
func (h Header) Field(row []string, name string) string {
	idx, ok := h[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Missing returns the consumed columns the header lacks.
func (h Header) Missing() []string {
	var missing []string
	for _, name := range Columns {
		if !h.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

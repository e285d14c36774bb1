// Package tabular splits comma-delimited text into rows of fields.
package tabular

import "strings"

// Parse scans text left to right and returns its rows.
//
// Quoted fields may contain commas and line breaks, and "" inside a quoted
// field is a literal quote. Carriage returns outside quotes are dropped so
// CRLF input parses like LF input. Parse never fails: an unterminated quote
// runs to the end of input and whatever was accumulated is flushed.
func Parse(text string) [][]string {
	var (
		rows   [][]string
		row    []string
		field  strings.Builder
		quoted bool
	)

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if quoted {
			switch {
			case ch == '"' && i+1 < len(text) && text[i+1] == '"':
				field.WriteByte('"')
				i++
			case ch == '"':
				quoted = false
			default:
				field.WriteByte(ch)
			}
			continue
		}

		switch ch {
		case '"':
			quoted = true
		case ',':
			endField()
		case '\n':
			endField()
			rows = append(rows, row)
			row = nil
		case '\r':
		default:
			field.WriteByte(ch)
		}
	}

	if field.Len() > 0 || len(row) > 0 {
		endField()
		rows = append(rows, row)
	}
	return rows
}

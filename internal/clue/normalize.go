package clue

import "strings"

// NormalizeRepository maps rows (header first) into the records kept in the
// repository: every row with a category, question and answer.
func NormalizeRepository(rows [][]string) []Record {
	return filter(extract(rows), func(r Record) bool {
		return r.complete()
	})
}

// NormalizeBoard maps rows (header first) into the records eligible for board
// play: complete records from the given round with a non-zero value.
func NormalizeBoard(rows [][]string, round string) []Record {
	return filter(extract(rows), func(r Record) bool {
		return r.complete() && r.Round == round && r.Points() != 0
	})
}

// extract maps every data row into a record without filtering.
func extract(rows [][]string) []Record {
	if len(rows) < 2 {
		return nil
	}
	header := NewHeader(rows[0])
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record{
			Category: strings.TrimSpace(header.Field(row, ColumnCategory)),
			Value:    ParseValue(header.Field(row, ColumnValue)),
			Question: strings.TrimSpace(header.Field(row, ColumnQuestion)),
			Answer:   strings.TrimSpace(header.Field(row, ColumnAnswer)),
			Round:    strings.TrimSpace(header.Field(row, ColumnRound)),
		})
	}
	return records
}

func filter(records []Record, keep func(Record) bool) []Record {
	out := make([]Record, 0, len(records))
	for _, record := range records {
		if keep(record) {
			out = append(out, record)
		}
	}
	return out
}

// Package clue turns parsed dataset rows into clue records and holds the
// in-memory repository used for distractor sourcing.
package clue

// Column names looked up in the dataset header.
const (
	ColumnCategory = "Category"
	ColumnValue    = "Value"
	ColumnQuestion = "Question"
	ColumnAnswer   = "Answer"
	ColumnRound    = "Round"
)

// Columns lists the header names consumed from a dataset, in canonical order.
var Columns = []string{ColumnCategory, ColumnValue, ColumnQuestion, ColumnAnswer, ColumnRound}

// Record is a single trivia clue.
type Record struct {
	Category string `json:"category"`
	Value    *int   `json:"value"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Round    string `json:"round"`
}

// Points returns the clue value, or zero when the value is unknown.
func (r Record) Points() int {
	if r.Value == nil {
		return 0
	}
	return *r.Value
}

// complete reports whether the fields required for repository inclusion are set.
func (r Record) complete() bool {
	return r.Category != "" && r.Question != "" && r.Answer != ""
}

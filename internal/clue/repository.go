package clue

// Repository is an immutable snapshot of every usable clue in a dataset.
// It is built once per load and replaced, never mutated.
type Repository struct {
	records    []Record
	byCategory map[string][]int
	categories []string
}

// NewRepository indexes records by category. The slice is copied.
func NewRepository(records []Record) *Repository {
	repo := &Repository{
		records:    append([]Record(nil), records...),
		byCategory: map[string][]int{},
	}
	for i, record := range repo.records {
		if _, seen := repo.byCategory[record.Category]; !seen {
			repo.categories = append(repo.categories, record.Category)
		}
		repo.byCategory[record.Category] = append(repo.byCategory[record.Category], i)
	}
	return repo
}

// Len returns the number of clues in the repository.
func (r *Repository) Len() int {
	if r == nil {
		return 0
	}
	return len(r.records)
}

// Records returns all clues in dataset order.
func (r *Repository) Records() []Record {
	if r == nil {
		return nil
	}
	return append([]Record(nil), r.records...)
}

// InCategory returns the clues of one category in dataset order.
func (r *Repository) InCategory(name string) []Record {
	if r == nil {
		return nil
	}
	indexes := r.byCategory[name]
	out := make([]Record, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, r.records[idx])
	}
	return out
}

// Categories returns category names in first-seen order.
func (r *Repository) Categories() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.categories...)
}

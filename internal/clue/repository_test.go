package clue

import (
	"reflect"
	"testing"
)

func TestRepositoryGroupsByCategory(t *testing.T) {
	records := []Record{
		{Category: "B", Question: "q1", Answer: "a1"},
		{Category: "A", Question: "q2", Answer: "a2"},
		{Category: "B", Question: "q3", Answer: "a3"},
	}
	repo := NewRepository(records)
	records[0].Answer = "mutated"

	if repo.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", repo.Len())
	}
	if got := repo.Categories(); !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Fatalf("unexpected categories %v", got)
	}
	inB := repo.InCategory("B")
	if len(inB) != 2 || inB[0].Answer != "a1" || inB[1].Answer != "a3" {
		t.Fatalf("unexpected category records %+v", inB)
	}
	if got := repo.InCategory("missing"); len(got) != 0 {
		t.Fatalf("expected no records for unknown category, got %d", len(got))
	}
}

func TestNilRepository(t *testing.T) {
	var repo *Repository
	if repo.Len() != 0 || repo.Records() != nil || repo.InCategory("x") != nil {
		t.Fatalf("expected nil repository to behave as empty")
	}
}

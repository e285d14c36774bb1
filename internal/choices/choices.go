// Package choices builds multiple-choice answer sets for a clue.
package choices

import (
	"math/rand/v2"

	"clueboard/internal/answer"
	"clueboard/internal/clue"
	"clueboard/internal/random"
)

// Distractors is the number of wrong answers offered with the correct one.
const Distractors = 3

// Options tunes candidate scanning.
type Options struct {
	// ScanLimit stops deduplication after this many distinct candidates.
	// Zero scans the whole pool.
	ScanLimit int
}

// Result is a shuffled option list for one clue.
type Result struct {
	Options []string
	// Fallback is set when the clue's own category had too few distinct
	// answers and distractors came from the whole repository.
	Fallback bool
}

// Build returns the correct answer plus up to three distractors in random
// order. Distractors prefer the clue's category and are distinct from each
// other and from the correct answer under canonicalization. A degenerate
// repository yields fewer than four options.
func Build(correct clue.Record, repo *clue.Repository, rng *rand.Rand, opts Options) Result {
	key := answer.Canonicalize(correct.Answer)
	limit := opts.ScanLimit
	if limit > 0 && limit < Distractors {
		limit = Distractors
	}

	pool := distinct(repo.InCategory(correct.Category), key, limit)
	fallback := len(pool) < Distractors
	if fallback {
		pool = distinct(repo.Records(), key, limit)
	}

	random.Shuffle(rng, pool)
	if len(pool) > Distractors {
		pool = pool[:Distractors]
	}

	options := make([]string, 0, len(pool)+1)
	options = append(options, correct.Answer)
	options = append(options, pool...)
	random.Shuffle(rng, options)
	return Result{Options: options, Fallback: fallback}
}

// distinct returns the display text of candidate answers whose canonical form
// is neither empty nor equal to exclude, keeping the first display text seen
// for each canonical form. A positive limit stops the scan early.
func distinct(records []clue.Record, exclude string, limit int) []string {
	seen := map[string]struct{}{exclude: {}}
	var out []string
	for _, record := range records {
		key := answer.Canonicalize(record.Answer)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, record.Answer)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

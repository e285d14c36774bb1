// Package answer compares answer text loosely: case, punctuation, quotes,
// leading articles and markup are ignored.
package answer

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	tagPattern      = regexp.MustCompile(`<[^>]*>`)
	articlePattern  = regexp.MustCompile(`\b(a|an|the)\b`)
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]+`)
	multiSpaceRE    = regexp.MustCompile(`\s+`)

	quoteStripper = strings.NewReplacer(
		`"`, "",
		`'`, "",
		"“", "",
		"”", "",
		"‘", "",
		"’", "",
	)
)

// Canonicalize reduces answer text to the form used for equality checks.
// The result is for comparison only and is never displayed.
func Canonicalize(text string) string {
	text = strings.ToLower(text)
	text = tagPattern.ReplaceAllString(text, "")
	text = quoteStripper.Replace(text)
	text = articlePattern.ReplaceAllString(text, " ")
	text = nonAlnumPattern.ReplaceAllString(text, " ")
	text = multiSpaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Match reports whether two answers share a canonical form.
func Match(a, b string) bool {
	return Canonicalize(a) == Canonicalize(b)
}

// NearMiss reports whether guess is close to, but not the same as, correct.
// Closeness is an edit distance on canonical forms that grows with the
// length of the correct answer.
func NearMiss(guess, correct string) bool {
	g := Canonicalize(guess)
	c := Canonicalize(correct)
	if g == "" || c == "" || g == c {
		return false
	}
	return levenshtein.ComputeDistance(g, c) <= distanceLimit(len(c))
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

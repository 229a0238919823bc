package match

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// containmentBonus is the fixed reward when one core string literally
// contains the other. Release variants are often a prefix or suffix of
// the fuller title, which plain edit similarity undervalues.
const containmentBonus = 0.8

// Strict-strategy blend weights.
const (
	weightSequence    = 0.5
	weightContainment = 0.3
	weightOverlap     = 0.2
)

// SequenceSimilarity returns the normalized longest-common-subsequence
// ratio between two core strings: 2*LCS/(len(a)+len(b)) over runes.
// Identical non-empty strings score 1, an empty side always scores 0.
func SequenceSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	lcs := edlib.LCS(a, b)
	return 2 * float64(lcs) / float64(len([]rune(a))+len([]rune(b)))
}

// NoSpaceSimilarity is SequenceSimilarity with all whitespace removed
// first, recovering matches where only spacing density differs
// ("greatmovie" vs "great movie").
func NoSpaceSimilarity(a, b string) float64 {
	return SequenceSimilarity(stripSpaces(a), stripSpaces(b))
}

// Containment returns the fixed bonus when one non-empty core string is
// a literal substring of the other, else 0.
func Containment(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return containmentBonus
	}
	return 0
}

// WordOverlap is the Jaccard index over the whitespace-split word sets
// of the two core strings; 0 when either set is empty.
func WordOverlap(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}
	common := 0
	for w := range wordsA {
		if wordsB[w] {
			common++
		}
	}
	union := len(wordsA) + len(wordsB) - common
	return float64(common) / float64(union)
}

// StrictScore is the weighted blend tried first by the selector. It
// rewards containment heavily, so a title that is a prefix of a fuller
// release name still clears the threshold.
func StrictScore(a, b string) float64 {
	return weightSequence*SequenceSimilarity(a, b) +
		weightContainment*Containment(a, b) +
		weightOverlap*WordOverlap(a, b)
}

// RelaxedScore is the fallback: the best single signal wins, so a pair
// dominated by formatting differences (punctuation or spacing density)
// can still be recovered.
func RelaxedScore(a, b string) float64 {
	best := SequenceSimilarity(a, b)
	if s := NoSpaceSimilarity(a, b); s > best {
		best = s
	}
	if s := WordOverlap(a, b); s > best {
		best = s
	}
	return best
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func wordSet(s string) map[string]bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

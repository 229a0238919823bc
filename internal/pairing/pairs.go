package pairing

import (
	"os"

	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/logger"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/match"
)

// Pair is a confirmed source-folder/video-file match, ready for the
// disposal step.
type Pair struct {
	SourceName string
	SourcePath string
	VideoName  string
	VideoPath  string
	Score      float64
}

// Thresholds carries the two strategy thresholds for one run.
type Thresholds struct {
	Strict  float64
	Relaxed float64
}

// DefaultThresholds returns the stock strict threshold with the relaxed
// one a notch below it.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Strict:  match.DefaultStrictThreshold,
		Relaxed: match.DefaultStrictThreshold - match.DefaultRelaxedDelta,
	}
}

// FromStrict derives both thresholds from a single strict value.
func FromStrict(strict float64) Thresholds {
	return Thresholds{Strict: strict, Relaxed: strict - match.DefaultRelaxedDelta}
}

// GatherPairs runs the selector for every source against the index and
// collects the pairs whose matched video still exists at check time.
// A video that vanished between indexing and selection (consumed by an
// earlier run, removed by hand) drops its pair silently; that is a
// benign race with the filesystem, not an error.
//
// Candidates are deliberately not consumed: the same video can pair
// with more than one source folder in a single run.
func GatherPairs(sources []Source, index match.CandidateIndex, thresholds Thresholds) []Pair {
	var pairs []Pair
	for _, source := range sources {
		result := match.SelectBest(source.Name, index, thresholds.Strict, thresholds.Relaxed)
		if result.Empty() {
			logger.Match("no candidate for %q cleared the thresholds", source.Name)
			continue
		}
		if _, err := os.Stat(result.Path); err != nil {
			logger.Match("dropping pair for %q: matched video %q no longer exists", source.Name, result.Path)
			continue
		}
		logger.Match("paired %q with %q (score %.2f)", source.Name, result.Name, result.Score)
		pairs = append(pairs, Pair{
			SourceName: source.Name,
			SourcePath: source.Path,
			VideoName:  result.Name,
			VideoPath:  result.Path,
			Score:      result.Score,
		})
	}
	return pairs
}

// Unmatched returns the sources that did not contribute to any pair,
// for the scan report.
func Unmatched(sources []Source, pairs []Pair) []Source {
	paired := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		paired[pair.SourceName] = true
	}
	var unmatched []Source
	for _, source := range sources {
		if !paired[source.Name] {
			unmatched = append(unmatched, source)
		}
	}
	return unmatched
}

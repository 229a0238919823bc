package match

import "sort"

// Default matching thresholds. The relaxed strategy runs a notch below
// strict so it can recover pairs the blend narrowly rejects.
const (
	DefaultStrictThreshold = 0.65
	DefaultRelaxedDelta    = 0.05
	DefaultDiagnosticFloor = 0.2
)

// CandidateIndex maps a candidate file name to its absolute path. It is
// built once per run from a directory listing and read-only afterwards.
type CandidateIndex map[string]string

// Result is the outcome of matching one source name against an index.
// An empty Result (no path, score 0) means no candidate cleared any
// strategy threshold.
type Result struct {
	Path  string
	Name  string
	Score float64
}

// Empty reports whether no candidate was selected.
func (r Result) Empty() bool {
	return r.Path == ""
}

// Strategy pairs a scoring function over two core strings with the
// threshold its best candidate must clear. Strategies are evaluated in
// order by Select; the first one to clear its threshold wins outright.
type Strategy struct {
	Name      string
	Score     func(a, b string) float64
	Threshold float64
}

// DefaultStrategies returns the strict-then-relaxed strategy list.
func DefaultStrategies(strict, relaxed float64) []Strategy {
	return []Strategy{
		{Name: "strict", Score: StrictScore, Threshold: strict},
		{Name: "relaxed", Score: RelaxedScore, Threshold: relaxed},
	}
}

// SelectBest runs the default strict-then-relaxed selection for one
// source name. Pure function of its inputs; the index is never written.
func SelectBest(source string, index CandidateIndex, strict, relaxed float64) Result {
	return Select(source, index, DefaultStrategies(strict, relaxed))
}

// Select evaluates each strategy in order against every candidate and
// returns the best candidate of the first strategy whose maximum clears
// its threshold. When several candidates tie for the maximum, whichever
// the index iteration visits first wins; exact ties are not broken
// deterministically.
func Select(source string, index CandidateIndex, strategies []Strategy) Result {
	sourceCore := Normalize(source)
	cores := make(map[string]string, len(index))
	for name := range index {
		cores[name] = Normalize(name)
	}

	for _, strategy := range strategies {
		var best Result
		for name, path := range index {
			score := strategy.Score(sourceCore, cores[name])
			if score > best.Score {
				best = Result{Path: path, Name: name, Score: score}
			}
		}
		if !best.Empty() && best.Score >= strategy.Threshold {
			return best
		}
	}
	return Result{}
}

// CandidateScore carries the per-candidate diagnostic signals shown by
// the debug command.
type CandidateScore struct {
	Name    string
	Core    string
	Strict  float64
	Relaxed float64
}

// Explain returns the source's core string plus every candidate whose
// strict or relaxed score reaches the diagnostic floor, strongest
// first. Intended for human inspection of near misses, not selection.
func Explain(source string, index CandidateIndex, floor float64) (string, []CandidateScore) {
	sourceCore := Normalize(source)

	var scores []CandidateScore
	for name := range index {
		core := Normalize(name)
		cs := CandidateScore{
			Name:    name,
			Core:    core,
			Strict:  StrictScore(sourceCore, core),
			Relaxed: RelaxedScore(sourceCore, core),
		}
		if cs.Strict >= floor || cs.Relaxed >= floor {
			scores = append(scores, cs)
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Strict != scores[j].Strict {
			return scores[i].Strict > scores[j].Strict
		}
		return scores[i].Name < scores[j].Name
	})
	return sourceCore, scores
}

package match

import "testing"

func TestSelectBestStrictWin(t *testing.T) {
	index := CandidateIndex{
		"Show S01E01.mp4": "/videos/Show S01E01.mp4",
		"Show S01E02.mp4": "/videos/Show S01E02.mp4",
	}

	result := SelectBest("Show S01E01.gifs", index, DefaultStrictThreshold, DefaultStrictThreshold-DefaultRelaxedDelta)
	if result.Empty() {
		t.Fatal("expected a match for Show S01E01.gifs")
	}
	if result.Name != "Show S01E01.mp4" {
		t.Errorf("wrong episode selected: got %q, want Show S01E01.mp4", result.Name)
	}
	if result.Score < 0.9 {
		t.Errorf("exact-core match scored %v, expected >= 0.9", result.Score)
	}
}

func TestSelectBestRelaxedFallback(t *testing.T) {
	// "Great Movie" vs "GreatMovie": strict blend scores
	// 0.5*0.952 + 0 + 0 ~= 0.48 and fails, but the relaxed no-space
	// signal is a perfect 1.0 and must be returned with its own score.
	index := CandidateIndex{
		"GreatMovie.mp4": "/videos/GreatMovie.mp4",
	}

	strict := 0.65
	relaxed := strict - DefaultRelaxedDelta

	if s := StrictScore(Normalize("Great Movie.gifs"), Normalize("GreatMovie.mp4")); s >= strict {
		t.Fatalf("test premise broken: strict score %v already clears %v", s, strict)
	}

	result := SelectBest("Great Movie.gifs", index, strict, relaxed)
	if result.Empty() {
		t.Fatal("expected relaxed strategy to recover the pair")
	}
	if result.Score < 0.99 {
		t.Errorf("relaxed score = %v, expected ~1.0", result.Score)
	}
}

func TestSelectBestNoMatch(t *testing.T) {
	index := CandidateIndex{
		"Ocean Waves.mp4":  "/videos/Ocean Waves.mp4",
		"Desert Storm.avi": "/videos/Desert Storm.avi",
	}

	result := SelectBest("RandomFolder.gifs", index, DefaultStrictThreshold, DefaultStrictThreshold-DefaultRelaxedDelta)
	if !result.Empty() {
		t.Errorf("expected no match for unrelated names, got %q with score %v", result.Name, result.Score)
	}
	if result.Score != 0 {
		t.Errorf("empty result must carry score 0, got %v", result.Score)
	}
}

func TestSelectBestJunkOnlyNeverMatches(t *testing.T) {
	index := CandidateIndex{
		"Great Movie.mp4": "/videos/Great Movie.mp4",
		"1080p HD.mp4":    "/videos/1080p HD.mp4",
	}

	// Both sides of any comparison involving an empty core score 0.
	result := SelectBest("1080p HD.gifs", index, DefaultStrictThreshold, DefaultStrictThreshold-DefaultRelaxedDelta)
	if !result.Empty() {
		t.Errorf("junk-only source matched %q, expected no match", result.Name)
	}
}

func TestSelectBestEmptyIndex(t *testing.T) {
	result := SelectBest("Great Movie.gifs", CandidateIndex{}, DefaultStrictThreshold, DefaultStrictThreshold-DefaultRelaxedDelta)
	if !result.Empty() {
		t.Errorf("expected no match against empty index, got %q", result.Name)
	}
}

func TestSelectBestExactTie(t *testing.T) {
	// Both candidates normalize to the same core. Either may win — the
	// tie-break is deliberately unspecified — but the score must match.
	index := CandidateIndex{
		"Night Drive.mp4": "/videos/Night Drive.mp4",
		"Night_Drive.avi": "/other/Night_Drive.avi",
	}

	result := SelectBest("Night Drive.gifs", index, DefaultStrictThreshold, DefaultStrictThreshold-DefaultRelaxedDelta)
	if result.Empty() {
		t.Fatal("expected one of the tied candidates to be selected")
	}
	if result.Name != "Night Drive.mp4" && result.Name != "Night_Drive.avi" {
		t.Errorf("winner %q is not one of the tied candidates", result.Name)
	}
	if result.Path != index[result.Name] {
		t.Errorf("result path %q does not match index entry for %q", result.Path, result.Name)
	}
}

func TestSelectCustomStrategy(t *testing.T) {
	// The selector shape is an ordered strategy list; a caller can slot
	// in its own scorer without touching the selection loop.
	exact := Strategy{
		Name: "exact",
		Score: func(a, b string) float64 {
			if a != "" && a == b {
				return 1
			}
			return 0
		},
		Threshold: 1,
	}

	index := CandidateIndex{
		"Great Movie.mp4":     "/videos/Great Movie.mp4",
		"Great Movie Too.mp4": "/videos/Great Movie Too.mp4",
	}

	result := Select("Great Movie.gifs", index, []Strategy{exact})
	if result.Name != "Great Movie.mp4" {
		t.Errorf("exact strategy selected %q, want Great Movie.mp4", result.Name)
	}

	result = Select("No Such Thing.gifs", index, []Strategy{exact})
	if !result.Empty() {
		t.Errorf("exact strategy matched %q for unrelated source", result.Name)
	}
}

func TestExplain(t *testing.T) {
	index := CandidateIndex{
		"Great Movie.mp4":    "/videos/Great Movie.mp4",
		"Unrelated Junk.avi": "/videos/Unrelated Junk.avi",
	}

	core, scores := Explain("Great Movie [2019].gifs", index, DefaultDiagnosticFloor)
	if core != "great movie" {
		t.Errorf("Explain core = %q, want \"great movie\"", core)
	}

	if len(scores) == 0 {
		t.Fatal("expected at least one candidate above the diagnostic floor")
	}
	if scores[0].Name != "Great Movie.mp4" {
		t.Errorf("strongest candidate = %q, want Great Movie.mp4", scores[0].Name)
	}
	for _, cs := range scores {
		if cs.Strict < DefaultDiagnosticFloor && cs.Relaxed < DefaultDiagnosticFloor {
			t.Errorf("candidate %q below floor leaked into diagnostics (strict %v, relaxed %v)", cs.Name, cs.Strict, cs.Relaxed)
		}
	}
}

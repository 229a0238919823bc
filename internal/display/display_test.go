package display

import (
	"strings"
	"testing"

	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/pairing"
)

func TestRenderPairsContent(t *testing.T) {
	pairs := []pairing.Pair{
		{SourceName: "Great Movie.gifs", VideoName: "Great_Movie.mp4", Score: 0.94},
		{SourceName: "Show S01E01.gifs", VideoName: "Show S01E01.mkv", Score: 0.71},
	}

	out := RenderPairs(pairs)
	for _, want := range []string{"Found 2 pair(s)", "Great Movie.gifs", "Great_Movie.mp4", "0.94", "Show S01E01.mkv", "0.71"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderPairs output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderUnmatchedEmpty(t *testing.T) {
	if out := RenderUnmatched(nil); out != "" {
		t.Errorf("RenderUnmatched(nil) = %q, want empty", out)
	}
}

func TestRenderSummaryDryRun(t *testing.T) {
	out := RenderSummary(Summary{DryRun: true})
	if !strings.Contains(out, "dry run") {
		t.Errorf("dry-run summary missing marker:\n%s", out)
	}
}

func TestRenderSummaryFailures(t *testing.T) {
	out := RenderSummary(Summary{FoldersDisposed: 2, VideosDisposed: 1, Failures: 1, Label: "moved to trash"})
	for _, want := range []string{"moved to trash", "Failures: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummarySpaceFreed(t *testing.T) {
	out := RenderSummary(Summary{FoldersDisposed: 1, VideosDisposed: 1, BytesFreed: 3 * 1024 * 1024 * 1024, Label: "permanently deleted"})
	if !strings.Contains(out, "3.0 GiB") {
		t.Errorf("summary missing space freed:\n%s", out)
	}
}

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{2 * 1024 * 1024 * 1024, "2.0 GiB"},
		{1 << 50, "1.0 PiB"},
		{1 << 61, "2.0 EiB"},
	}

	for _, test := range tests {
		if got := HumanBytes(test.n); got != test.expected {
			t.Errorf("HumanBytes(%d) = %q, want %q", test.n, got, test.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is far too long", 10, "this is f…"},
		{"ab", 1, "…"},
	}

	for _, test := range tests {
		if got := Truncate(test.input, test.max); got != test.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q", test.input, test.max, got, test.expected)
		}
	}
}

package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/match"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/pairing"
)

// Hardcoded dark theme styles, same palette as the review TUI.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	folderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	videoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	strongStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	weakStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func scoreStyle(score float64) lipgloss.Style {
	if score >= 0.85 {
		return strongStyle
	}
	return weakStyle
}

// RenderPairs lists every matched pair with its winning score.
func RenderPairs(pairs []pairing.Pair) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Found %d pair(s):", len(pairs))))
	b.WriteString("\n")
	for i, pair := range pairs {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, folderStyle.Render(pair.SourceName)))
		b.WriteString(fmt.Sprintf("     %s %s %s\n",
			mutedStyle.Render("└──▶"),
			videoStyle.Render(pair.VideoName),
			scoreStyle(pair.Score).Render(fmt.Sprintf("(score: %.2f)", pair.Score))))
	}
	return b.String()
}

// RenderUnmatched lists the source folders that found no video.
func RenderUnmatched(sources []pairing.Source) string {
	if len(sources) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(warnStyle.Render(fmt.Sprintf("%d folder(s) without a matching video (kept):", len(sources))))
	b.WriteString("\n")
	for _, source := range sources {
		b.WriteString(fmt.Sprintf("  - %s\n", source.Name))
	}
	return b.String()
}

// RenderDiagnostics prints the near-miss table for one source folder.
func RenderDiagnostics(source, core string, scores []match.CandidateScore) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Matching for %q", source)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  core: %q\n", core))
	if len(scores) == 0 {
		b.WriteString(mutedStyle.Render("  no candidate above the diagnostic floor"))
		b.WriteString("\n")
		return b.String()
	}
	for _, cs := range scores {
		b.WriteString(fmt.Sprintf("  %s  core=%q  strict=%.2f  relaxed=%.2f\n",
			folderStyle.Render(Truncate(cs.Name, 48)), cs.Core, cs.Strict, cs.Relaxed))
	}
	return b.String()
}

// Summary carries the end-of-run counters.
type Summary struct {
	FoldersDisposed int
	VideosDisposed  int
	Failures        int
	BytesFreed      int64
	Label           string
	DryRun          bool
}

// RenderSummary formats the end-of-run report.
func RenderSummary(s Summary) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Summary"))
	b.WriteString("\n")
	if s.DryRun {
		b.WriteString(warnStyle.Render("  dry run — nothing was removed"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("  Folders %s: %d\n", s.Label, s.FoldersDisposed))
	b.WriteString(fmt.Sprintf("  Videos %s: %d\n", s.Label, s.VideosDisposed))
	if s.BytesFreed > 0 {
		b.WriteString(fmt.Sprintf("  Space freed: %s\n", HumanBytes(s.BytesFreed)))
	}
	if s.Failures > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  Failures: %d", s.Failures)))
		b.WriteString("\n")
	} else {
		b.WriteString(successStyle.Render("  Completed without errors"))
		b.WriteString("\n")
	}
	return b.String()
}

// HumanBytes formats a byte count with a binary unit suffix.
func HumanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Truncate shortens s to max runes with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

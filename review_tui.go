package main

import (
	"fmt"
	"strings"

	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/logger"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/match"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/pairing"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/usercfg"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errReviewCancelled = fmt.Errorf("review cancelled")

type reviewStyles struct {
	header   lipgloss.Style
	box      lipgloss.Style
	selected lipgloss.Style
	checked  lipgloss.Style
	muted    lipgloss.Style
	help     lipgloss.Style
	score    lipgloss.Style
	error    lipgloss.Style
}

// newReviewStyles returns hardcoded dark theme styles
func newReviewStyles() reviewStyles {
	return reviewStyles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("240")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		checked:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		score:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

type reviewModel struct {
	pairs   []pairing.Pair
	checked []bool // parallel to pairs
	visible []int  // indices into pairs after filtering

	cursor int // index into visible
	offset int // top of the visible window

	width  int
	height int

	filtering   bool
	filterInput textinput.Model
	filter      string
	fuzzyFilter bool

	confirmed bool
	err       error
	styles    reviewStyles
}

func initialReviewModel(pairs []pairing.Pair) reviewModel {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 256

	uiPrefs := usercfg.GetUIPrefs()

	m := reviewModel{
		pairs:       pairs,
		checked:     make([]bool, len(pairs)),
		filterInput: ti,
		filter:      uiPrefs.LastFilter,
		fuzzyFilter: uiPrefs.FuzzyFilter,
		styles:      newReviewStyles(),
	}
	// Everything starts checked; the review is for unchecking doubts.
	for i := range m.checked {
		m.checked[i] = true
	}
	m.applyFilter()
	return m
}

func (m reviewModel) Init() tea.Cmd { return nil }

// applyFilter rebuilds the visible index list from the current filter.
func (m *reviewModel) applyFilter() {
	m.visible = m.visible[:0]
	if m.filter == "" {
		for i := range m.pairs {
			m.visible = append(m.visible, i)
		}
	} else {
		needle := match.Normalize(m.filter)
		for i, pair := range m.pairs {
			if m.pairMatchesFilter(pair, needle) {
				m.visible = append(m.visible, i)
			}
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m reviewModel) pairMatchesFilter(pair pairing.Pair, needle string) bool {
	if needle == "" {
		return true
	}
	folderCore := match.Normalize(pair.SourceName)
	videoCore := match.Normalize(pair.VideoName)
	if m.fuzzyFilter {
		return match.WordOverlap(needle, folderCore) > 0 || match.WordOverlap(needle, videoCore) > 0
	}
	return strings.Contains(folderCore, needle) || strings.Contains(videoCore, needle)
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			switch msg.Type {
			case tea.KeyEsc, tea.KeyCtrlC:
				m.filtering = false
				return m, nil
			case tea.KeyEnter:
				// Exit filtering, fall through to normal key handling
				m.filtering = false
			default:
				// Live update as the user types
				var cmd tea.Cmd
				m.filterInput, cmd = m.filterInput.Update(msg)
				m.filter = m.filterInput.Value()
				m.applyFilter()
				return m, cmd
			}
		}
		key := msg.String()
		switch {
		case key == "q" || key == "esc" || key == "ctrl+c":
			m.saveUIPreferences()
			return m, tea.Quit
		case key == "enter":
			m.confirmed = true
			m.saveUIPreferences()
			return m, tea.Quit
		case key == " ":
			if idx, ok := m.currentPair(); ok {
				m.checked[idx] = !m.checked[idx]
			}
		case key == "a":
			for _, idx := range m.visible {
				m.checked[idx] = true
			}
		case key == "n":
			for _, idx := range m.visible {
				m.checked[idx] = false
			}
		case key == "f":
			m.fuzzyFilter = !m.fuzzyFilter
			m.applyFilter()
		case key == "/":
			m.filtering = true
			m.filterInput.SetValue(m.filter)
			m.filterInput.Focus()
			return m, nil
		case key == "o":
			if idx, ok := m.currentPair(); ok {
				if err := openVideo(m.pairs[idx].VideoPath); err != nil {
					m.err = err
					return m, nil
				}
			}
		case key == "j" || key == "down":
			if len(m.visible) > 0 && m.cursor < len(m.visible)-1 {
				m.cursor++
				m.ensureCursorVisible()
			}
		case key == "k" || key == "up":
			if len(m.visible) > 0 && m.cursor > 0 {
				m.cursor--
				m.ensureCursorVisible()
			}
		}
		return m, nil
	}
	return m, nil
}

func (m reviewModel) View() string {
	header := m.styles.header.Render(clip(fmt.Sprintf("Review pairs — %d of %d selected for removal", m.selectedCount(), len(m.pairs)), m.width))
	help := m.styles.help.Render(clip("(space toggle • a all • n none • / filter • f fuzzy • o open video • enter confirm • q cancel)", m.width))

	window := m.itemsWindowCount()
	start := m.offset
	end := min(len(m.visible), start+window)

	var items []string
	if len(m.visible) == 0 {
		items = []string{m.styles.muted.Render("(no pairs match the filter)")}
	} else {
		if start > 0 {
			items = append(items, m.styles.muted.Render(fmt.Sprintf("… %d above", start)))
		}
		for vi := start; vi < end; vi++ {
			idx := m.visible[vi]
			pair := m.pairs[idx]
			mark := "[ ]"
			if m.checked[idx] {
				mark = m.styles.checked.Render("[x]")
			}
			line := fmt.Sprintf("%s %s", mark, clip(pair.SourceName, max(16, m.width-10)))
			detail := fmt.Sprintf("      └──▶ %s %s",
				clip(pair.VideoName, max(16, m.width-24)),
				m.styles.score.Render(fmt.Sprintf("(%.2f)", pair.Score)))
			if vi == m.cursor {
				line = m.styles.selected.Render(line)
			}
			items = append(items, line, detail)
		}
		if end < len(m.visible) {
			items = append(items, m.styles.muted.Render(fmt.Sprintf("… %d below", len(m.visible)-end)))
		}
	}

	body := m.styles.box.Render(strings.Join(items, "\n"))

	if m.filtering {
		return header + "\n" + help + "\n\n" + body + "\n\nFilter: " + m.filterInput.View()
	}
	footer := ""
	if m.err != nil {
		footer = "\n" + m.styles.error.Render("Error: "+m.err.Error())
	}
	if m.filter != "" {
		mode := "substring"
		if m.fuzzyFilter {
			mode = "fuzzy"
		}
		footer += "\n" + m.styles.muted.Render(fmt.Sprintf("Filter (%s): %s", mode, m.filter))
	}
	return header + "\n" + help + "\n\n" + body + footer + "\n"
}

func (m reviewModel) currentPair() (int, bool) {
	if len(m.visible) == 0 || m.cursor < 0 || m.cursor >= len(m.visible) {
		return 0, false
	}
	return m.visible[m.cursor], true
}

func (m reviewModel) selectedCount() int {
	count := 0
	for _, on := range m.checked {
		if on {
			count++
		}
	}
	return count
}

// itemsWindowCount returns how many pairs fit in the list; each pair takes
// two rows (folder line plus video detail line).
func (m reviewModel) itemsWindowCount() int {
	reserved := 7
	if m.filtering {
		reserved += 2
	}
	avail := max(4, m.height-reserved)
	return max(1, avail/2)
}

func (m *reviewModel) ensureCursorVisible() {
	if len(m.visible) == 0 {
		m.offset = 0
		m.cursor = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.visible)-1 {
		m.cursor = len(m.visible) - 1
	}
	vh := m.itemsWindowCount()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
	maxOffset := 0
	if len(m.visible) > vh {
		maxOffset = len(m.visible) - vh
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m reviewModel) saveUIPreferences() {
	prefs := usercfg.UIPreferences{
		LastFilter:  m.filter,
		FuzzyFilter: m.fuzzyFilter,
	}
	// Best-effort; a failed save never blocks the review result.
	_ = usercfg.SaveUIPrefs(prefs)
}

// reviewPairs runs the interactive checklist and returns the pairs that
// remain selected. A cancelled review returns errReviewCancelled.
func reviewPairs(pairs []pairing.Pair) ([]pairing.Pair, error) {
	model := initialReviewModel(pairs)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	rm, ok := finalModel.(reviewModel)
	if !ok || !rm.confirmed {
		return nil, errReviewCancelled
	}

	var kept []pairing.Pair
	for i, pair := range rm.pairs {
		if rm.checked[i] {
			kept = append(kept, pair)
		}
	}
	logger.TUI("review kept %d of %d pairs", len(kept), len(rm.pairs))
	return kept, nil
}

// clip is a local helper similar to display.Truncate but safe for narrow widths
func clip(s string, w int) string {
	if w <= 0 || len(s) <= w {
		return s
	}
	if w <= 3 {
		return s[:w]
	}
	return s[:w-3] + "..."
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/search"
	"marquee/internal/tui/styles"
)

const maxModalResults = 8

// SearchModal is the fuzzy jump-to-movie modal. It ranks the whole cache with
// match highlighting; enter jumps to the selected movie in the list. The
// inline filter below the header stays plain substring matching.
type SearchModal struct {
	input     textinput.Model
	results   []search.Match
	cursor    int
	visible   bool
	width     int
	prevQuery string

	// Recent queries from the session store, newest first, cycled with
	// up/down while the input is empty
	history []string
	histIdx int
}

// NewSearchModal creates the search modal
func NewSearchModal() SearchModal {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return SearchModal{input: ti}
}

// Show makes the modal visible and focuses the input
func (s *SearchModal) Show(history []string) {
	s.visible = true
	s.input.Focus()
	s.input.SetValue("")
	s.results = nil
	s.cursor = 0
	s.prevQuery = ""
	s.history = history
	s.histIdx = -1
}

// Hide hides the modal
func (s *SearchModal) Hide() {
	s.visible = false
	s.input.Blur()
}

// IsVisible returns true if the modal is shown
func (s SearchModal) IsVisible() bool {
	return s.visible
}

// SetSize updates the component dimensions
func (s *SearchModal) SetSize(width int) {
	s.width = width
	if width > 14 {
		s.input.Width = width - 14
	}
}

// Query returns the current query text
func (s SearchModal) Query() string {
	return s.input.Value()
}

// QueryChanged reports whether the query changed since the last check
func (s *SearchModal) QueryChanged() bool {
	current := s.input.Value()
	if current != s.prevQuery {
		s.prevQuery = current
		return true
	}
	return false
}

// SetResults sets the ranked matches
func (s *SearchModal) SetResults(results []search.Match) {
	if len(results) > maxModalResults {
		results = results[:maxModalResults]
	}
	s.results = results
	s.cursor = 0
}

// Selected returns the match under the cursor
func (s SearchModal) Selected() *search.Match {
	if len(s.results) == 0 || s.cursor >= len(s.results) {
		return nil
	}
	return &s.results[s.cursor]
}

// Update handles messages, returns (modal, cmd, selected)
func (s SearchModal) Update(msg tea.Msg) (SearchModal, tea.Cmd, bool) {
	if !s.visible {
		return s, nil, false
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd, false
	}

	switch keyMsg.String() {
	case "esc":
		s.Hide()
		return s, nil, false

	case "enter":
		if len(s.results) > 0 {
			return s, nil, true
		}
		return s, nil, false

	case "down", "ctrl+n":
		if s.input.Value() == "" && len(s.history) > 0 {
			s.cycleHistory(-1)
			return s, nil, false
		}
		if s.cursor < len(s.results)-1 {
			s.cursor++
		}
		return s, nil, false

	case "up", "ctrl+p":
		if s.input.Value() == "" && len(s.history) > 0 {
			s.cycleHistory(1)
			return s, nil, false
		}
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil, false

	default:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd, false
	}
}

// cycleHistory fills the input from recent queries; dir +1 walks older
func (s *SearchModal) cycleHistory(dir int) {
	s.histIdx += dir
	if s.histIdx < 0 {
		s.histIdx = len(s.history) - 1
	}
	if s.histIdx >= len(s.history) {
		s.histIdx = 0
	}
	s.input.SetValue(s.history[s.histIdx])
	s.input.CursorEnd()
	s.prevQuery = "" // force a re-rank
}

// View renders the modal with highlighted matches
func (s SearchModal) View() string {
	if !s.visible {
		return ""
	}

	rows := []string{s.input.View(), ""}

	if len(s.results) == 0 {
		hint := "type to search"
		if s.input.Value() != "" {
			hint = "no matches"
		} else if len(s.history) > 0 {
			hint = "type to search · ↑ recent"
		}
		rows = append(rows, styles.DimStyle.Render(hint))
	}

	for i, match := range s.results {
		selected := i == s.cursor
		line := s.renderMatch(match, selected)
		rows = append(rows, line)
	}

	if len(s.results) > 0 {
		rows = append(rows, "", styles.DimStyle.Render(fmt.Sprintf("%d match(es) · enter jumps", len(s.results))))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return styles.ModalStyle.Render(content)
}

// renderMatch highlights the characters that matched the query
func (s SearchModal) renderMatch(match search.Match, selected bool) string {
	title := match.Movie.DisplayTitle()

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	base := lipgloss.NewStyle().Foreground(styles.LightGray)
	highlight := styles.MatchHighlightStyle
	if selected {
		base = base.Foreground(styles.White).Background(styles.SlateLight)
		highlight = styles.MatchHighlightSelectedStyle
	}

	var b strings.Builder
	if selected {
		b.WriteString(styles.AccentStyle.Render("> "))
	} else {
		b.WriteString("  ")
	}
	for i, r := range title {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	b.WriteString(styles.DimStyle.Render(" " + fmt.Sprintf("(%s)", match.Movie.DisplayYear())))

	return b.String()
}

package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"marquee/internal/domain"
	"marquee/internal/tui/styles"
)

// Layout constants
const (
	// Border adds 1 char on each side
	borderWidth  = 2
	borderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	scrollIndicatorLines = 2
)

// MovieList is the scrollable catalog list. Every View call redraws all
// visible rows from the sequence it was last given; it holds no catalog state
// of its own beyond that sequence.
type MovieList struct {
	movies []domain.Movie

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	title string

	loading      bool
	spinnerFrame int

	// Shown under the placeholder when a filter matches nothing
	suggestions []string
}

// NewMovieList creates an empty movie list
func NewMovieList(title string) *MovieList {
	return &MovieList{title: title, focused: true}
}

// SetMovies replaces the rendered sequence. The cursor is clamped rather than
// reset so edits keep their place in a filtered view.
func (l *MovieList) SetMovies(movies []domain.Movie) {
	l.movies = movies
	l.loading = false
	if l.cursor >= len(movies) {
		l.cursor = len(movies) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.ensureVisible()
}

// SetSuggestions sets the nearest-title hints for the empty state
func (l *MovieList) SetSuggestions(suggestions []string) {
	l.suggestions = suggestions
}

// Selected returns the movie under the cursor
func (l *MovieList) Selected() *domain.Movie {
	if len(l.movies) == 0 || l.cursor >= len(l.movies) {
		return nil
	}
	m := l.movies[l.cursor]
	return &m
}

// SelectID moves the cursor to the movie with the given ID, if present
func (l *MovieList) SelectID(id string) {
	for i, m := range l.movies {
		if m.ID == id {
			l.cursor = i
			l.ensureVisible()
			return
		}
	}
}

// Count returns the number of rows currently rendered
func (l *MovieList) Count() int {
	return len(l.movies)
}

// SetSize updates the component dimensions
func (l *MovieList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.recalcMaxVisible()
	l.ensureVisible()
}

// SetFocused sets keyboard focus
func (l *MovieList) SetFocused(focused bool) {
	l.focused = focused
}

// SetTitle sets the header line
func (l *MovieList) SetTitle(title string) {
	l.title = title
}

// SetLoading toggles the loading spinner
func (l *MovieList) SetLoading(loading bool) {
	l.loading = loading
}

// SetSpinnerFrame updates the spinner animation frame
func (l *MovieList) SetSpinnerFrame(frame int) {
	l.spinnerFrame = frame
}

// Update handles navigation keys
func (l *MovieList) Update(msg tea.Msg) {
	if !l.focused || len(l.movies) == 0 {
		return
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return
	}

	count := len(l.movies)
	switch keyMsg.String() {
	case "j", "down":
		if l.cursor < count-1 {
			l.cursor++
			l.ensureVisible()
		}
	case "k", "up":
		if l.cursor > 0 {
			l.cursor--
			l.ensureVisible()
		}
	case "g", "home":
		l.cursor = 0
		l.offset = 0
	case "G", "end":
		l.cursor = count - 1
		l.ensureVisible()
	case "ctrl+d":
		l.cursor += l.maxVisible / 2
		if l.cursor >= count {
			l.cursor = count - 1
		}
		l.ensureVisible()
	case "ctrl+u":
		l.cursor -= l.maxVisible / 2
		if l.cursor < 0 {
			l.cursor = 0
		}
		l.ensureVisible()
	}
}

// View renders the list inside its border
func (l *MovieList) View() string {
	style := styles.InactiveBorder
	if l.focused {
		style = styles.ActiveBorder
	}

	content := l.renderContent()

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(l.width - frameW).
		Height(l.height - frameH).
		Render(content)
}

func (l *MovieList) recalcMaxVisible() {
	interiorHeight := l.height - borderHeight
	l.maxVisible = interiorHeight - scrollIndicatorLines - 1 // -1 for title
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
}

func (l *MovieList) ensureVisible() {
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

func (l *MovieList) renderContent() string {
	itemWidth := l.width - borderWidth
	if itemWidth < 10 {
		itemWidth = 10
	}

	titleLine := styles.AccentStyle.Render(styles.Truncate(l.title, itemWidth))

	if l.loading {
		spinner := styles.SpinnerFrames[l.spinnerFrame%len(styles.SpinnerFrames)]
		loadingLine := styles.DimStyle.Render(spinner + " Loading catalog...")
		return titleLine + "\n" + " " + "\n" + loadingLine
	}

	count := len(l.movies)
	if count == 0 {
		// Single placeholder row, no actionable rows behind it
		lines := []string{titleLine, " ", styles.DimStyle.Render("No movies match the search")}
		if len(l.suggestions) > 0 {
			lines = append(lines, styles.DimStyle.Render("closest: "+strings.Join(l.suggestions, ", ")))
		}
		return strings.Join(lines, "\n")
	}

	end := l.offset + l.maxVisible
	if end > count {
		end = count
	}

	var lines []string
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderRow(l.movies[i], i == l.cursor, itemWidth))
	}

	// Reserve header and footer lines even when empty to avoid layout shifts
	header := " "
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	return titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
}

func (l *MovieList) renderRow(m domain.Movie, selected bool, width int) string {
	title := m.DisplayTitle()
	meta := rowMeta(m)

	availableForTitle := width - len(meta) - 5
	if availableForTitle < 5 {
		availableForTitle = 5
	}
	title = styles.Truncate(title, availableForTitle)

	dim := styles.DimGray
	parts := []styles.RowPart{
		{Text: title, Bold: true},
		{Text: " " + meta, Foreground: &dim},
	}

	return styles.RenderListRow(parts, selected, width)
}

// rowMeta builds the "(year) - genre" suffix with display fallbacks
func rowMeta(m domain.Movie) string {
	return fmt.Sprintf("(%s) - %s", m.DisplayYear(), m.DisplayGenre())
}

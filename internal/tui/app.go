package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/domain"
	"marquee/internal/library"
	"marquee/internal/search"
	"marquee/internal/store"
	"marquee/internal/tui/components"
	"marquee/internal/tui/styles"
)

// ApplicationState represents the current interaction mode
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateFiltering
	StateAdding
	StateEditing
	StateConfirmDelete
	StateSearching
	StateHelp
)

const (
	// How long a status/error message stays in the slot
	statusDuration = 5 * time.Second

	suggestionCount = 3

	// Header + filter line + footer
	chromeHeight = 3
)

// Model is the main Bubble Tea model for the application
type Model struct {
	State ApplicationState
	Ready bool

	// Services
	Library *library.Service
	Session *store.SessionStore

	// Components
	List    *components.MovieList
	Form    components.MovieForm
	Confirm components.ConfirmModal
	Search  components.SearchModal

	// Inline substring filter, applied on every keystroke
	FilterInput textinput.Model

	// Dimensions
	Width  int
	Height int

	// Status slot - one message at a time, newest wins
	StatusText  string
	StatusIsErr bool
	statusGen   int

	Loading      bool
	SpinnerFrame int

	// Requests currently outstanding. The UI stays interactive while a
	// request is in flight; completions apply last-response-wins.
	inflight int

	query         string
	pendingDelete domain.Movie
	restored      bool
}

// NewModel creates the application model
func NewModel(svc *library.Service, session *store.SessionStore) Model {
	fi := textinput.New()
	fi.Placeholder = "type to filter title or genre..."
	fi.Prompt = "/ "
	fi.PromptStyle = styles.FilterPromptStyle
	fi.TextStyle = styles.FilterStyle
	fi.CharLimit = 100

	return Model{
		State:       StateBrowsing,
		Loading:     true,
		Library:     svc,
		Session:     session,
		List:        components.NewMovieList("Movies"),
		Form:        components.NewMovieForm(),
		Confirm:     components.NewConfirmModal(),
		Search:      components.NewSearchModal(),
		FilterInput: fi,
	}
}

// Init starts the initial catalog load
func (m Model) Init() tea.Cmd {
	m.List.SetLoading(true)
	return tea.Batch(LoadCatalogCmd(m.Library), TickCmd(), textinput.Blink)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.List.SetSize(msg.Width, msg.Height-chromeHeight)
		m.Search.SetSize(msg.Width / 2)
		m.FilterInput.Width = msg.Width - 6
		m.Ready = true
		return m, nil

	case TickMsg:
		if m.Loading || m.inflight > 0 {
			m.SpinnerFrame++
			m.List.SetSpinnerFrame(m.SpinnerFrame)
			return m, TickCmd()
		}
		return m, nil

	case CatalogLoadedMsg:
		m.Loading = false
		m.List.SetLoading(false)
		m.applyFilter()
		if !m.restored {
			m.restored = true
			if last := m.Session.LastSelected(); last != "" {
				m.List.SelectID(last)
			}
		}
		return m, nil

	case MovieCreatedMsg:
		m.inflight--
		m.clearQuery()
		m.applyFilter()
		m.List.SelectID(msg.Movie.ID)
		return m, m.report(fmt.Sprintf("Added %q", msg.Movie.DisplayTitle()), false)

	case MovieUpdatedMsg:
		m.inflight--
		// Keep the active filter; the edited row stays in its view
		m.applyFilter()
		m.List.SelectID(msg.Movie.ID)
		return m, m.report(fmt.Sprintf("Updated %q", msg.Movie.DisplayTitle()), false)

	case MovieDeletedMsg:
		m.inflight--
		// Deletion drops back to the full, unfiltered list
		m.clearQuery()
		m.applyFilter()
		return m, m.report(fmt.Sprintf("Deleted %q", msg.Title), false)

	case ErrMsg:
		m.Loading = false
		m.List.SetLoading(false)
		if m.inflight > 0 {
			m.inflight--
		}
		return m, m.report(msg.Error(), true)

	case ClearStatusMsg:
		if msg.Gen == m.statusGen {
			m.StatusText = ""
			m.StatusIsErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.routeToFocused(msg)
}

// handleKey dispatches a key press based on the current state
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit, except while typing into an input
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.State {
	case StateAdding, StateEditing:
		return m.updateForm(msg)

	case StateConfirmDelete:
		var confirmed, dismissed bool
		m.Confirm, confirmed, dismissed = m.Confirm.Update(msg)
		if confirmed {
			m.State = StateBrowsing
			m.inflight++
			return m, tea.Batch(
				DeleteMovieCmd(m.Library, m.pendingDelete.ID, m.pendingDelete.DisplayTitle()),
				TickCmd(),
			)
		}
		if dismissed {
			m.State = StateBrowsing
		}
		return m, nil

	case StateSearching:
		return m.updateSearch(msg)

	case StateFiltering:
		return m.updateFilter(msg)

	case StateHelp:
		m.State = StateBrowsing
		return m, nil
	}

	return m.handleBrowsingKey(msg)
}

func (m Model) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()

	case "/":
		m.State = StateFiltering
		m.FilterInput.Focus()
		return m, textinput.Blink

	case "a":
		m.State = StateAdding
		m.Form.ShowAdd()
		return m, textinput.Blink

	case "e":
		if selected := m.List.Selected(); selected != nil {
			m.State = StateEditing
			m.Form.ShowEdit(*selected)
			return m, textinput.Blink
		}
		return m, nil

	case "d":
		if selected := m.List.Selected(); selected != nil {
			m.State = StateConfirmDelete
			m.pendingDelete = *selected
			m.Confirm.Show(fmt.Sprintf("Delete %q (%s)?", selected.DisplayTitle(), selected.DisplayYear()))
		}
		return m, nil

	case "s":
		m.State = StateSearching
		m.Search.Show(m.Session.RecentSearches())
		return m, textinput.Blink

	case "r":
		m.Loading = true
		m.List.SetLoading(true)
		return m, tea.Batch(LoadCatalogCmd(m.Library), TickCmd())

	case "?":
		m.State = StateHelp
		return m, nil

	case "esc":
		if m.query != "" {
			m.clearQuery()
			m.applyFilter()
		}
		return m, nil
	}

	m.List.Update(msg)
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	m.Form, cmd, submitted = m.Form.Update(msg)

	if !m.Form.IsVisible() {
		// Cancelled; no request was sent
		m.State = StateBrowsing
		return m, cmd
	}

	if !submitted {
		return m, cmd
	}

	if m.State == StateAdding {
		draft, err := m.Form.Draft()
		if err != nil {
			m.Form.SetError(err.Error())
			return m, cmd
		}
		m.Form.Hide()
		m.State = StateBrowsing
		m.inflight++
		return m, tea.Batch(CreateMovieCmd(m.Library, draft), TickCmd())
	}

	patch, err := m.Form.Patch()
	if err != nil {
		m.Form.SetError(err.Error())
		return m, cmd
	}
	id := m.Form.MovieID()
	m.Form.Hide()
	m.State = StateBrowsing
	if patch.IsEmpty() {
		return m, nil
	}
	m.inflight++
	return m, tea.Batch(UpdateMovieCmd(m.Library, id, patch), TickCmd())
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var selected bool
	m.Search, cmd, selected = m.Search.Update(msg)

	if !m.Search.IsVisible() {
		m.State = StateBrowsing
		return m, cmd
	}

	if selected {
		match := m.Search.Selected()
		m.Search.Hide()
		m.State = StateBrowsing
		if match != nil {
			if query := m.Search.Query(); query != "" {
				m.Session.RememberSearch(query)
			}
			// Jump lands on the full list so the target is always visible
			m.clearQuery()
			m.applyFilter()
			m.List.SelectID(match.Movie.ID)
		}
		return m, cmd
	}

	if m.Search.QueryChanged() {
		m.Search.SetResults(search.Rank(m.Library.Movies(), m.Search.Query()))
	}
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.FilterInput.Value() != "" {
			m.clearQuery()
			m.applyFilter()
			return m, nil
		}
		m.FilterInput.Blur()
		m.State = StateBrowsing
		return m, nil

	case "enter":
		// Accept the filter and return focus to the list
		m.FilterInput.Blur()
		m.State = StateBrowsing
		if m.query != "" {
			m.Session.RememberSearch(m.query)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)

	// The filter fires on every keystroke
	if m.FilterInput.Value() != m.query {
		m.query = m.FilterInput.Value()
		m.applyFilter()
	}
	return m, cmd
}

// routeToFocused forwards non-key messages (e.g. cursor blink) to whichever
// input currently has focus
func (m Model) routeToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.State {
	case StateAdding, StateEditing:
		m.Form, cmd, _ = m.Form.Update(msg)
	case StateSearching:
		m.Search, cmd, _ = m.Search.Update(msg)
	case StateFiltering:
		m.FilterInput, cmd = m.FilterInput.Update(msg)
	}
	return m, cmd
}

// applyFilter projects the cache through the current query into the list
func (m *Model) applyFilter() {
	all := m.Library.Movies()
	visible := search.Filter(all, m.query)
	m.List.SetMovies(visible)

	if m.query != "" && len(visible) == 0 {
		m.List.SetSuggestions(search.Suggest(all, m.query, suggestionCount))
	} else {
		m.List.SetSuggestions(nil)
	}

	if m.query != "" {
		m.List.SetTitle(fmt.Sprintf("Movies (%d/%d)", len(visible), len(all)))
	} else {
		m.List.SetTitle(fmt.Sprintf("Movies (%d)", len(all)))
	}
}

func (m *Model) clearQuery() {
	m.query = ""
	m.FilterInput.SetValue("")
}

// report puts a message in the status slot and schedules its clear. The
// generation counter makes the newest message own the slot.
func (m *Model) report(text string, isErr bool) tea.Cmd {
	m.statusGen++
	m.StatusText = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusGen, statusDuration)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if selected := m.List.Selected(); selected != nil {
		m.Session.SetLastSelected(selected.ID)
	}
	return m, tea.Quit
}

// View renders the whole screen
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(" marquee ") + styles.DimStyle.Render(" · movie catalog")
	filterLine := m.FilterInput.View()
	body := m.List.View()
	footer := m.renderFooter()

	base := lipgloss.JoinVertical(lipgloss.Left, header, filterLine, body, footer)

	if modal := m.activeModal(); modal != "" {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
	}
	if m.State == StateHelp {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.renderHelp())
	}

	return base
}

func (m Model) activeModal() string {
	switch {
	case m.Form.IsVisible():
		return m.Form.View()
	case m.Confirm.IsVisible():
		return m.Confirm.View()
	case m.Search.IsVisible():
		return m.Search.View()
	}
	return ""
}

func (m Model) renderFooter() string {
	if m.StatusText != "" {
		style := styles.SuccessStyle
		if m.StatusIsErr {
			style = styles.ErrorStyle
		}
		return style.Render(" " + m.StatusText)
	}

	if m.inflight > 0 {
		spinner := styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)]
		return styles.DimStyle.Render(" " + spinner + " working...")
	}

	return styles.DimStyle.Render(" a add · e edit · d delete · / filter · s search · r reload · ? help · q quit")
}

func (m Model) renderHelp() string {
	rows := []string{
		styles.ModalTitleStyle.Render("Keys"),
		"j/k, ↑/↓      move",
		"g/G           first/last",
		"ctrl+d/u      half page",
		"/             filter as you type (title or genre)",
		"s             fuzzy search, enter jumps",
		"a             add a movie",
		"e             edit the selected movie",
		"d             delete the selected movie",
		"r             reload the catalog",
		"q             quit",
		"",
		styles.DimStyle.Render("any key to close"),
	}
	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

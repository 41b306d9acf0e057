package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/domain"
	"marquee/internal/tui/styles"
)

// FormMode distinguishes the add and edit flows
type FormMode int

const (
	FormAdd FormMode = iota
	FormEdit
)

const (
	fieldTitle = iota
	fieldYear
	fieldGenre
	fieldCount
)

// MovieForm is the add/edit modal. It collects a draft without touching the
// network; Esc anywhere abandons the whole flow with no request sent.
type MovieForm struct {
	visible bool
	mode    FormMode
	movieID string
	origin  domain.Movie

	inputs [fieldCount]textinput.Model
	focus  int

	errText string
}

// NewMovieForm creates the form with its three inputs
func NewMovieForm() MovieForm {
	labels := [fieldCount]string{"Title", "Year", "Genre"}

	var f MovieForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 100
		ti.Width = 32
		ti.Prompt = ""
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
		ti.PlaceholderStyle = styles.DimStyle
		f.inputs[i] = ti
	}
	f.inputs[fieldYear].CharLimit = 4

	return f
}

// ShowAdd opens the form empty for a new movie
func (f *MovieForm) ShowAdd() {
	f.visible = true
	f.mode = FormAdd
	f.movieID = ""
	f.origin = domain.Movie{}
	f.errText = ""
	f.setValues("", "", "")
	f.setFocus(fieldTitle)
}

// ShowEdit opens the form pre-filled from an existing movie. The genre field
// defaults to empty when the movie has none.
func (f *MovieForm) ShowEdit(m domain.Movie) {
	f.visible = true
	f.mode = FormEdit
	f.movieID = m.ID
	f.origin = m
	f.errText = ""

	year := ""
	if m.Year > 0 {
		year = strconv.Itoa(m.Year)
	}
	f.setValues(m.Title, year, m.Genre)
	f.setFocus(fieldTitle)
}

// Hide dismisses the form
func (f *MovieForm) Hide() {
	f.visible = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// IsVisible returns whether the form is shown
func (f MovieForm) IsVisible() bool {
	return f.visible
}

// Mode returns whether the form is adding or editing
func (f MovieForm) Mode() FormMode {
	return f.mode
}

// MovieID returns the ID being edited (empty in add mode)
func (f MovieForm) MovieID() string {
	return f.movieID
}

// SetError displays a validation message inside the form
func (f *MovieForm) SetError(msg string) {
	f.errText = msg
}

// Draft validates and returns the collected values for the add flow
func (f MovieForm) Draft() (domain.Draft, error) {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		return domain.Draft{}, &domain.ValidationError{Field: "title", Reason: "is required"}
	}

	yearText := strings.TrimSpace(f.inputs[fieldYear].Value())
	if yearText == "" {
		return domain.Draft{}, &domain.ValidationError{Field: "year", Reason: "is required"}
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return domain.Draft{}, &domain.ValidationError{Field: "year", Reason: "must be a number"}
	}

	return domain.Draft{
		Title: title,
		Year:  year,
		Genre: strings.TrimSpace(f.inputs[fieldGenre].Value()),
	}, nil
}

// Patch validates and returns only the fields that changed relative to the
// movie being edited. A malformed year rejects the submit; it is never
// silently dropped.
func (f MovieForm) Patch() (domain.FieldPatch, error) {
	var patch domain.FieldPatch

	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		return patch, &domain.ValidationError{Field: "title", Reason: "is required"}
	}
	if title != f.origin.Title {
		patch.Title = &title
	}

	yearText := strings.TrimSpace(f.inputs[fieldYear].Value())
	if yearText == "" {
		return patch, &domain.ValidationError{Field: "year", Reason: "is required"}
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return patch, &domain.ValidationError{Field: "year", Reason: "must be a number"}
	}
	if year != f.origin.Year {
		patch.Year = &year
	}

	genre := strings.TrimSpace(f.inputs[fieldGenre].Value())
	if genre != f.origin.Genre {
		patch.Genre = &genre
	}

	return patch, nil
}

// Update handles input events, returns (form, cmd, submitted)
func (f MovieForm) Update(msg tea.Msg) (MovieForm, tea.Cmd, bool) {
	if !f.visible {
		return f, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.Hide()
			return f, nil, false
		case "enter":
			if f.focus == fieldCount-1 {
				return f, nil, true
			}
			f.setFocus(f.focus + 1)
			return f, nil, false
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return f, nil, false
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, nil, false
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

// View renders the form modal
func (f MovieForm) View() string {
	if !f.visible {
		return ""
	}

	title := "Add Movie"
	if f.mode == FormEdit {
		title = "Edit Movie"
	}

	labels := [fieldCount]string{"Title", "Year", "Genre"}
	rows := []string{styles.ModalTitleStyle.Render(title)}
	for i := range f.inputs {
		label := styles.DimStyle.Render(labels[i])
		if i == f.focus {
			label = styles.AccentStyle.Render(labels[i])
		}
		rows = append(rows, label, f.inputs[i].View())
	}

	if f.errText != "" {
		rows = append(rows, "", styles.ErrorStyle.Render(f.errText))
	}
	rows = append(rows, "", styles.DimStyle.Render("enter submit · esc cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return styles.ModalStyle.Render(content)
}

func (f *MovieForm) setValues(title, year, genre string) {
	f.inputs[fieldTitle].SetValue(title)
	f.inputs[fieldYear].SetValue(year)
	f.inputs[fieldGenre].SetValue(genre)
}

func (f *MovieForm) setFocus(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

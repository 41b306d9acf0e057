package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"marquee/internal/domain"
	"marquee/internal/library"
	"marquee/internal/store"
)

type stubRepo struct {
	movies []domain.Movie
}

func (r *stubRepo) List(ctx context.Context) ([]domain.Movie, error) { return r.movies, nil }

func (r *stubRepo) Create(ctx context.Context, draft domain.Draft) (domain.Movie, error) {
	m := domain.Movie{ID: "new", Title: draft.Title, Year: draft.Year, Genre: draft.Genre}
	return m, nil
}

func (r *stubRepo) Update(ctx context.Context, id string, patch domain.FieldPatch) (domain.Movie, error) {
	return domain.Movie{ID: id}, nil
}

func (r *stubRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestModel(t *testing.T, movies []domain.Movie) (Model, *library.Service) {
	t.Helper()

	svc := library.NewService(&stubRepo{movies: movies}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	session, err := store.Open("", 10)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { session.Close() })

	m := NewModel(svc, session)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	updated, _ = m.Update(CatalogLoadedMsg{Movies: svc.Movies()})
	return updated.(Model), svc
}

func TestErrMsgFillsStatusSlot(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)

	err := &domain.RemoteError{Op: "create movie", Status: 500}
	updated, _ := m.Update(ErrMsg{Err: err, Context: "add"})
	m = updated.(Model)

	if !m.StatusIsErr {
		t.Fatal("expected an error status")
	}
	if !strings.Contains(m.StatusText, "500") {
		t.Fatalf("expected status to carry the failure status code, got %q", m.StatusText)
	}
	if !strings.Contains(m.View(), "500") {
		t.Fatal("expected the footer to show the error")
	}
}

func TestStaleClearDoesNotWipeNewerStatus(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)

	updated, _ := m.Update(ErrMsg{Err: &domain.RemoteError{Op: "delete movie", Status: 500}})
	m = updated.(Model)
	firstGen := m.statusGen

	updated, _ = m.Update(ErrMsg{Err: &domain.RemoteError{Op: "create movie", Status: 400}})
	m = updated.(Model)

	// The first message's timer fires after the second message took the slot
	updated, _ = m.Update(ClearStatusMsg{Gen: firstGen})
	m = updated.(Model)
	if !strings.Contains(m.StatusText, "400") {
		t.Fatalf("expected newer status to survive the stale clear, got %q", m.StatusText)
	}

	updated, _ = m.Update(ClearStatusMsg{Gen: m.statusGen})
	m = updated.(Model)
	if m.StatusText != "" {
		t.Fatalf("expected current clear to empty the slot, got %q", m.StatusText)
	}
}

func TestDeletionRerendersRemainingMovies(t *testing.T) {
	t.Parallel()

	m, svc := newTestModel(t, []domain.Movie{
		{ID: "1", Title: "Dune", Year: 2021, Genre: "Sci-Fi"},
		{ID: "2", Title: "Heat", Year: 1995, Genre: "Crime"},
	})

	if err := svc.Remove(context.Background(), "2"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	updated, _ := m.Update(MovieDeletedMsg{ID: "2", Title: "Heat"})
	m = updated.(Model)

	if m.List.Count() != 1 {
		t.Fatalf("expected one rendered row, got %d", m.List.Count())
	}
	if got := m.List.Selected(); got == nil || got.ID != "1" {
		t.Fatalf("expected id 1 to remain selectable, got %+v", got)
	}
	if !strings.Contains(m.StatusText, "Heat") {
		t.Fatalf("expected deletion notice, got %q", m.StatusText)
	}
}

func TestFilterKeystrokesNarrowTheList(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, []domain.Movie{
		{ID: "1", Title: "Dune", Year: 2021, Genre: "Sci-Fi"},
		{ID: "2", Title: "Heat", Year: 1995, Genre: "Crime"},
		{ID: "3", Title: "Solaris", Year: 1972, Genre: "Sci-Fi"},
	})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = updated.(Model)
	if m.State != StateFiltering {
		t.Fatalf("expected filtering state, got %d", m.State)
	}

	for _, r := range "sci" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}

	if m.List.Count() != 2 {
		t.Fatalf("expected 2 visible rows for %q, got %d", "sci", m.List.Count())
	}

	// Esc clears the filter and restores the full list
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.List.Count() != 3 {
		t.Fatalf("expected full list after clearing, got %d", m.List.Count())
	}
}

func TestCreatedMovieBecomesSelected(t *testing.T) {
	t.Parallel()

	m, svc := newTestModel(t, []domain.Movie{
		{ID: "1", Title: "Dune", Year: 2021, Genre: "Sci-Fi"},
	})

	created, err := svc.Add(context.Background(), domain.Draft{Title: "Heat", Year: 1995})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	updated, _ := m.Update(MovieCreatedMsg{Movie: created})
	m = updated.(Model)

	if got := m.List.Selected(); got == nil || got.ID != created.ID {
		t.Fatalf("expected new movie selected, got %+v", got)
	}
	if !strings.Contains(m.StatusText, "Heat") {
		t.Fatalf("expected creation notice, got %q", m.StatusText)
	}
}

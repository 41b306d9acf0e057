package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"marquee/internal/domain"
	"marquee/internal/library"
)

const requestTimeout = 30 * time.Second

// Command factories for async catalog operations. Each command runs on its
// own goroutine and resolves to exactly one message.

// LoadCatalogCmd fetches the full collection
func LoadCatalogCmd(svc *library.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		movies, err := svc.Load(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading catalog"}
		}
		return CatalogLoadedMsg{Movies: movies}
	}
}

// CreateMovieCmd submits a new draft
func CreateMovieCmd(svc *library.Service, draft domain.Draft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		created, err := svc.Add(ctx, draft)
		if err != nil {
			return ErrMsg{Err: err, Context: "adding movie"}
		}
		return MovieCreatedMsg{Movie: created}
	}
}

// UpdateMovieCmd submits a partial edit
func UpdateMovieCmd(svc *library.Service, id string, patch domain.FieldPatch) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		updated, err := svc.Edit(ctx, id, patch)
		if err != nil {
			return ErrMsg{Err: err, Context: "updating movie"}
		}
		return MovieUpdatedMsg{Movie: updated}
	}
}

// DeleteMovieCmd deletes a movie after the user confirmed
func DeleteMovieCmd(svc *library.Service, id, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := svc.Remove(ctx, id); err != nil {
			return ErrMsg{Err: err, Context: "deleting movie"}
		}
		return MovieDeletedMsg{ID: id, Title: title}
	}
}

// ClearStatusCmd clears the status slot after the notification window
func ClearStatusCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{Gen: gen}
	})
}

// TickCmd advances the spinner while loading
func TickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

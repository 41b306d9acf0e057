package tui

import "marquee/internal/domain"

// Message types for the TUI

// ErrMsg represents a failed operation
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogLoadedMsg signals that the full collection has been fetched and
// cached
type CatalogLoadedMsg struct {
	Movies []domain.Movie
}

// MovieCreatedMsg signals that the server accepted a new movie
type MovieCreatedMsg struct {
	Movie domain.Movie
}

// MovieUpdatedMsg signals that the server merged an edit
type MovieUpdatedMsg struct {
	Movie domain.Movie
}

// MovieDeletedMsg signals that the server confirmed a deletion
type MovieDeletedMsg struct {
	ID    string
	Title string
}

// ClearStatusMsg clears the status slot. Gen ties the timer to the message
// that scheduled it so a stale timer never clears a newer status.
type ClearStatusMsg struct {
	Gen int
}

// TickMsg drives the loading spinner
type TickMsg struct{}

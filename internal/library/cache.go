package library

import (
	"sync"

	"marquee/internal/domain"
)

// Cache is the in-memory mirror of the remote catalog. It preserves server
// order and is safe for concurrent use; Bubble Tea runs commands on their own
// goroutines while the update loop reads.
type Cache struct {
	mu     sync.RWMutex
	movies []domain.Movie
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{}
}

// ReplaceAll swaps the whole sequence for a copy of the given one
func (c *Cache) ReplaceAll(movies []domain.Movie) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.movies = make([]domain.Movie, len(movies))
	copy(c.movies, movies)
}

// Upsert replaces the entry with the same ID in place, keeping its position,
// or appends when the ID is new
func (c *Cache) Upsert(m domain.Movie) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.movies {
		if c.movies[i].ID == m.ID {
			c.movies[i] = m
			return
		}
	}
	c.movies = append(c.movies, m)
}

// RemoveByID deletes the entry with the given ID, reporting whether it was
// present
func (c *Cache) RemoveByID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.movies {
		if c.movies[i].ID == id {
			c.movies = append(c.movies[:i], c.movies[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a copy of the sequence in order
func (c *Cache) All() []domain.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Get returns the entry with the given ID
func (c *Cache) Get(id string) (domain.Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, m := range c.movies {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Movie{}, false
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.movies)
}

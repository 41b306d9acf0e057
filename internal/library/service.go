package library

import (
	"context"
	"log/slog"
	"strings"

	"marquee/internal/domain"
)

// Service orchestrates the remote catalog and the local cache. Every
// successful mutation aligns the cache with the server's acknowledged result;
// a failed one leaves the cache untouched.
type Service struct {
	repo   domain.CatalogRepository
	cache  *Cache
	logger *slog.Logger
}

// NewService creates a library service over the given repository
func NewService(repo domain.CatalogRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		cache:  NewCache(),
		logger: logger,
	}
}

// Load fetches the full collection and replaces the cache
func (s *Service) Load(ctx context.Context) ([]domain.Movie, error) {
	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.ReplaceAll(movies)
	s.logger.Info("catalog loaded", "count", len(movies))
	return s.cache.All(), nil
}

// Add validates the draft, creates it remotely, and caches the server's
// representation. Title and year are required; nothing is sent when either
// is missing.
func (s *Service) Add(ctx context.Context, draft domain.Draft) (domain.Movie, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Movie{}, err
	}

	created, err := s.repo.Create(ctx, draft)
	if err != nil {
		return domain.Movie{}, err
	}

	s.cache.Upsert(created)
	s.logger.Info("movie added", "id", created.ID, "title", created.Title)
	return created, nil
}

// Edit applies a partial update remotely and caches the merged result. An
// empty patch is a no-op that returns the cached entry.
func (s *Service) Edit(ctx context.Context, id string, patch domain.FieldPatch) (domain.Movie, error) {
	if patch.IsEmpty() {
		if m, ok := s.cache.Get(id); ok {
			return m, nil
		}
		return domain.Movie{}, domain.ErrMovieNotFound
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Movie{}, err
	}

	s.cache.Upsert(updated)
	s.logger.Info("movie updated", "id", id)
	return updated, nil
}

// Remove deletes the movie remotely, then drops it from the cache. The local
// removal happens only after the server confirms the deletion.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.RemoveByID(id)
	s.logger.Info("movie removed", "id", id)
	return nil
}

// Movies returns the cached sequence in order
func (s *Service) Movies() []domain.Movie {
	return s.cache.All()
}

// Movie returns the cached entry with the given ID
func (s *Service) Movie(id string) (domain.Movie, bool) {
	return s.cache.Get(id)
}

// Count returns the number of cached movies
func (s *Service) Count() int {
	return s.cache.Len()
}

func validateDraft(draft domain.Draft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return &domain.ValidationError{Field: "title", Reason: "is required"}
	}
	if draft.Year == 0 {
		return &domain.ValidationError{Field: "year", Reason: "is required"}
	}
	return nil
}

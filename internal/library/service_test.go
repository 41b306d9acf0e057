package library

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"marquee/internal/domain"
)

// fakeRepo is a scriptable CatalogRepository
type fakeRepo struct {
	listMovies []domain.Movie
	listErr    error
	created    domain.Movie
	createErr  error
	updated    domain.Movie
	updateErr  error
	deleteErr  error

	createCalls int
	deleteCalls int
}

func (f *fakeRepo) List(ctx context.Context) ([]domain.Movie, error) {
	return f.listMovies, f.listErr
}

func (f *fakeRepo) Create(ctx context.Context, draft domain.Draft) (domain.Movie, error) {
	f.createCalls++
	return f.created, f.createErr
}

func (f *fakeRepo) Update(ctx context.Context, id string, patch domain.FieldPatch) (domain.Movie, error) {
	return f.updated, f.updateErr
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	return f.deleteErr
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestServiceLoadPopulatesCache(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{listMovies: []domain.Movie{
		{ID: "1", Title: "Dune", Year: 2021, Genre: "Sci-Fi"},
		{ID: "2", Title: "Amelie", Year: 2001, Genre: "Romance"},
	}}
	svc := newTestService(repo)

	movies, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(movies) != 2 || svc.Count() != 2 {
		t.Fatalf("expected 2 cached movies, got %d returned, %d cached", len(movies), svc.Count())
	}
}

func TestServiceAddMissingTitleBlocksRequest(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.Add(context.Background(), domain.Draft{Title: "", Year: 2020})

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no request to be issued, got %d", repo.createCalls)
	}
	if svc.Count() != 0 {
		t.Fatalf("expected cache unchanged, got %d entries", svc.Count())
	}
}

func TestServiceAddMissingYearBlocksRequest(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.Add(context.Background(), domain.Draft{Title: "Dune"})

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Field != "year" {
		t.Fatalf("expected year to be flagged, got %q", validationErr.Field)
	}
}

func TestServiceAddCachesServerRepresentation(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{created: domain.Movie{ID: "9", Title: "Nope", Year: 1999}}
	svc := newTestService(repo)

	created, err := svc.Add(context.Background(), domain.Draft{Title: "Nope", Year: 1999})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.ID != "9" {
		t.Fatalf("expected server-assigned id, got %q", created.ID)
	}
	if _, ok := svc.Movie("9"); !ok {
		t.Fatal("expected created movie in cache")
	}
}

func TestServiceAddFailureLeavesCacheUnchanged(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		listMovies: []domain.Movie{{ID: "1", Title: "Dune", Year: 2021}},
		createErr:  &domain.RemoteError{Op: "create movie", Status: 500},
	}
	svc := newTestService(repo)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, err := svc.Add(context.Background(), domain.Draft{Title: "Nope", Year: 1999})
	var remoteErr *domain.RemoteError
	if !errors.As(err, &remoteErr) || remoteErr.Status != 500 {
		t.Fatalf("expected RemoteError 500, got %v", err)
	}
	if svc.Count() != 1 {
		t.Fatalf("expected cache unchanged at 1, got %d", svc.Count())
	}
}

func TestServiceEditMergesServerResult(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		listMovies: []domain.Movie{{ID: "1", Title: "Dune", Year: 2021, Genre: "Sci-Fi"}},
		updated:    domain.Movie{ID: "1", Title: "Dune Part Two", Year: 2024, Genre: "Sci-Fi"},
	}
	svc := newTestService(repo)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	title := "Dune Part Two"
	year := 2024
	updated, err := svc.Edit(context.Background(), "1", domain.FieldPatch{Title: &title, Year: &year})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if updated.Year != 2024 {
		t.Fatalf("expected merged year 2024, got %d", updated.Year)
	}

	if svc.Count() != 1 {
		t.Fatalf("expected no duplicate entry after edit, got %d", svc.Count())
	}
	cached, _ := svc.Movie("1")
	if cached.Title != "Dune Part Two" {
		t.Fatalf("expected cache to hold merged movie, got %+v", cached)
	}
}

func TestServiceEditEmptyPatchSkipsRequest(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{listMovies: []domain.Movie{{ID: "1", Title: "Dune", Year: 2021}}}
	svc := newTestService(repo)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	m, err := svc.Edit(context.Background(), "1", domain.FieldPatch{})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if m.Title != "Dune" {
		t.Fatalf("expected cached movie back, got %+v", m)
	}
}

func TestServiceRemoveDropsEntryAfterConfirmation(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{listMovies: []domain.Movie{
		{ID: "1", Title: "Dune", Year: 2021, Genre: "Sci-Fi"},
		{ID: "2", Title: "Amelie", Year: 2001, Genre: "Romance"},
	}}
	svc := newTestService(repo)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := svc.Remove(context.Background(), "2"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	movies := svc.Movies()
	if len(movies) != 1 || movies[0].ID != "1" {
		t.Fatalf("expected only id 1 to remain, got %+v", movies)
	}
}

func TestServiceRemoveFailureKeepsEntry(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		listMovies: []domain.Movie{{ID: "1", Title: "Dune", Year: 2021}},
		deleteErr:  &domain.RemoteError{Op: "delete movie", Status: 404},
	}
	svc := newTestService(repo)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := svc.Remove(context.Background(), "1"); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := svc.Movie("1"); !ok {
		t.Fatal("expected entry to survive failed deletion")
	}
}

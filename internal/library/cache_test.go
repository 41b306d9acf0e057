package library

import (
	"testing"

	"marquee/internal/domain"
)

func seededCache() *Cache {
	c := NewCache()
	c.ReplaceAll([]domain.Movie{
		{ID: "1", Title: "Dune", Year: 2021, Genre: "Sci-Fi"},
		{ID: "2", Title: "Amelie", Year: 2001, Genre: "Romance"},
		{ID: "3", Title: "Heat", Year: 1995, Genre: "Crime"},
	})
	return c
}

func TestCacheUpsertExistingReplacesInPlace(t *testing.T) {
	t.Parallel()

	c := seededCache()
	c.Upsert(domain.Movie{ID: "2", Title: "Amélie", Year: 2001, Genre: "Romance"})

	if c.Len() != 3 {
		t.Fatalf("expected size unchanged at 3, got %d", c.Len())
	}

	all := c.All()
	if all[1].ID != "2" || all[1].Title != "Amélie" {
		t.Fatalf("expected replacement to keep slot 1, got %+v", all[1])
	}
}

func TestCacheUpsertNewAppends(t *testing.T) {
	t.Parallel()

	c := seededCache()
	c.Upsert(domain.Movie{ID: "4", Title: "Alien", Year: 1979, Genre: "Horror"})

	if c.Len() != 4 {
		t.Fatalf("expected size 4, got %d", c.Len())
	}

	m, ok := c.Get("4")
	if !ok || m.Title != "Alien" {
		t.Fatalf("expected to find appended movie, got %+v (ok=%v)", m, ok)
	}
}

func TestCacheRemoveByID(t *testing.T) {
	t.Parallel()

	c := seededCache()

	if removed := c.RemoveByID("2"); !removed {
		t.Fatal("expected RemoveByID to report present entry")
	}
	if c.Len() != 2 {
		t.Fatalf("expected size 2 after removal, got %d", c.Len())
	}
	if _, ok := c.Get("2"); ok {
		t.Fatal("expected id 2 to be absent after removal")
	}

	// Removing an absent id changes nothing
	if removed := c.RemoveByID("2"); removed {
		t.Fatal("expected RemoveByID to report absent entry")
	}
	if c.Len() != 2 {
		t.Fatalf("expected size unchanged at 2, got %d", c.Len())
	}
}

func TestCacheAllReturnsCopyInOrder(t *testing.T) {
	t.Parallel()

	c := seededCache()

	all := c.All()
	if all[0].ID != "1" || all[1].ID != "2" || all[2].ID != "3" {
		t.Fatalf("expected original order, got %+v", all)
	}

	// Mutating the returned slice must not leak into the cache
	all[0].Title = "scribbled"
	if m, _ := c.Get("1"); m.Title != "Dune" {
		t.Fatalf("expected cache isolated from caller mutation, got %q", m.Title)
	}
}

func TestCacheReplaceAllCopiesInput(t *testing.T) {
	t.Parallel()

	c := NewCache()
	input := []domain.Movie{{ID: "1", Title: "Dune"}}
	c.ReplaceAll(input)

	input[0].Title = "scribbled"
	if m, _ := c.Get("1"); m.Title != "Dune" {
		t.Fatalf("expected cache isolated from input mutation, got %q", m.Title)
	}
}

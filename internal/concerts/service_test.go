package concerts

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"sonicseats/internal/shared/storage"
)

func testCatalog() []Concert {
	return []Concert{
		{Artist: "The Midnight Revival", Venue: "The Anthem", City: "Washington", Genre: "Rock"},
		{Artist: "Luna Vega", Venue: "9:30 Club", City: "Washington", Genre: "Pop"},
		{Artist: "Luna Vega & The Satellites", Venue: "Merriweather Post Pavilion", City: "Columbia", Genre: "Pop"},
		{Artist: "Blue Ridge Strings", Venue: "Wolf Trap", City: "Vienna", Genre: "Folk"},
	}
}

func newTestService(t *testing.T, catalog []Concert) Service {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "concerts.json"))
	if err := store.Write(catalog); err != nil {
		t.Fatal(err)
	}
	return NewService(NewRepository(store))
}

func TestListConcertsNoFilters(t *testing.T) {
	t.Parallel()
	s := newTestService(t, testCatalog())

	got, err := s.ListConcerts(context.Background(), ListQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Errorf("unfiltered list: got %d concerts, want 4", len(got))
	}
}

func TestListConcertsArtistSubstring(t *testing.T) {
	t.Parallel()
	s := newTestService(t, testCatalog())

	got, err := s.ListConcerts(context.Background(), ListQuery{Artist: "Luna"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("artist=Luna: got %d concerts, want 2", len(got))
	}
	// Relative catalog order is preserved
	if got[0].Venue != "9:30 Club" || got[1].Venue != "Merriweather Post Pavilion" {
		t.Errorf("artist filter order: got %q then %q", got[0].Venue, got[1].Venue)
	}
}

func TestListConcertsArtistSubstringIsCaseSensitive(t *testing.T) {
	t.Parallel()
	s := newTestService(t, testCatalog())

	got, err := s.ListConcerts(context.Background(), ListQuery{Artist: "luna"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("artist=luna: got %d concerts, want 0", len(got))
	}
}

func TestListConcertsFiltersCompose(t *testing.T) {
	t.Parallel()
	s := newTestService(t, testCatalog())

	got, err := s.ListConcerts(context.Background(), ListQuery{City: "Washington", Genre: "Pop"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Artist != "Luna Vega" {
		t.Errorf("city+genre: got %v", got)
	}
}

func TestListConcertsExactMatchFilters(t *testing.T) {
	t.Parallel()
	s := newTestService(t, testCatalog())

	// Venue matches exactly, not by substring
	got, err := s.ListConcerts(context.Background(), ListQuery{Venue: "Anthem"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("venue=Anthem (partial): got %d concerts, want 0", len(got))
	}
}

func TestListConcertsLimit(t *testing.T) {
	t.Parallel()
	s := newTestService(t, testCatalog())

	got, err := s.ListConcerts(context.Background(), ListQuery{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("limit=2: got %d concerts", len(got))
	}
	if got[0].Artist != "The Midnight Revival" || got[1].Artist != "Luna Vega" {
		t.Errorf("limit must keep original order: got %q, %q", got[0].Artist, got[1].Artist)
	}
}

func TestListConcertsLimitBeyondLength(t *testing.T) {
	t.Parallel()
	s := newTestService(t, testCatalog())

	got, err := s.ListConcerts(context.Background(), ListQuery{Limit: 50})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Errorf("limit=50: got %d concerts, want all 4", len(got))
	}
}

func TestGetConcertByID(t *testing.T) {
	t.Parallel()
	s := newTestService(t, testCatalog())

	got, err := s.GetConcertByID(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Artist != "Luna Vega" {
		t.Errorf("GetConcertByID(1): got %q", got.Artist)
	}
}

func TestGetConcertByIDOutOfRange(t *testing.T) {
	t.Parallel()
	s := newTestService(t, testCatalog())

	for _, id := range []int{-1, 4, 100} {
		_, err := s.GetConcertByID(context.Background(), id)
		var outOfRange *OutOfRangeError
		if !errors.As(err, &outOfRange) {
			t.Errorf("GetConcertByID(%d): got %v, want OutOfRangeError", id, err)
			continue
		}
		if got, want := outOfRange.Error(), "Concert ID needs to be between 0 and 3."; got != want {
			t.Errorf("GetConcertByID(%d) message: got %q, want %q", id, got, want)
		}
	}
}

package concerts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"sonicseats/internal/shared/storage"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newConcertEngine(t *testing.T, catalog []Concert) (*gin.Engine, *storage.Store) {
	t.Helper()

	store := storage.New(filepath.Join(t.TempDir(), "concerts.json"))
	if err := store.Write(catalog); err != nil {
		t.Fatal(err)
	}

	controller := NewController(NewService(NewRepository(store)))
	engine := gin.New()
	SetupConcertRoutes(engine.Group(""), controller)
	return engine, store
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGetConcertReturnsCatalogEntry(t *testing.T) {
	t.Parallel()
	engine, _ := newConcertEngine(t, testCatalog())

	w := get(engine, "/concert/2")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var concert Concert
	if err := json.Unmarshal(w.Body.Bytes(), &concert); err != nil {
		t.Fatalf("response not a concert object: %v", err)
	}
	if concert.Artist != "Luna Vega & The Satellites" {
		t.Errorf("concert 2 artist: got %q", concert.Artist)
	}
}

func TestGetConcertNonIntegerID(t *testing.T) {
	t.Parallel()
	engine, _ := newConcertEngine(t, testCatalog())

	w := get(engine, "/concert/two")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
	if got, want := w.Body.String(), "Concert ID needs to be an integer."; got != want {
		t.Errorf("body: got %q, want %q", got, want)
	}
}

func TestGetConcertOutOfRangeID(t *testing.T) {
	t.Parallel()
	engine, _ := newConcertEngine(t, testCatalog())

	w := get(engine, "/concert/99")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
	if got, want := w.Body.String(), "Concert ID needs to be between 0 and 3."; got != want {
		t.Errorf("body: got %q, want %q", got, want)
	}
}

func TestGetConcertsFiltered(t *testing.T) {
	t.Parallel()
	engine, _ := newConcertEngine(t, testCatalog())

	w := get(engine, "/concerts?city=Washington&genre=Pop")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var got []Concert
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response not a concert array: %v", err)
	}
	if len(got) != 1 || got[0].Artist != "Luna Vega" {
		t.Errorf("filtered concerts: got %v", got)
	}
}

func TestGetConcertsStorageFailure(t *testing.T) {
	t.Parallel()

	// Point the store at a file that does not exist
	store := storage.New(filepath.Join(t.TempDir(), "absent.json"))
	controller := NewController(NewService(NewRepository(store)))
	engine := gin.New()
	SetupConcertRoutes(engine.Group(""), controller)

	w := get(engine, "/concerts")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", w.Code)
	}
	if got, want := w.Body.String(), "Something went wrong on the server. Please try again later."; got != want {
		t.Errorf("body: got %q, want %q", got, want)
	}
}

func TestGetConcertUnchangedByUnrelatedRequests(t *testing.T) {
	t.Parallel()
	engine, _ := newConcertEngine(t, testCatalog())

	first := get(engine, "/concert/0")
	get(engine, "/concerts?artist=Luna")
	get(engine, "/faq") // unrouted here; exercises the engine anyway
	second := get(engine, "/concert/0")

	if first.Body.String() != second.Body.String() {
		t.Error("concert entry changed between unrelated requests")
	}
}

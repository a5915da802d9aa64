package comments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"sonicseats/internal/shared/storage"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newCommentEngine(t *testing.T) (*gin.Engine, *storage.Store) {
	t.Helper()

	store := storage.New(filepath.Join(t.TempDir(), "comments.json"))
	controller := NewController(NewService(NewRepository(store)))
	engine := gin.New()
	SetupCommentRoutes(engine.Group(""), controller)
	return engine, store
}

func postContact(engine *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSubmitCommentCreatesFileWhenAbsent(t *testing.T) {
	t.Parallel()
	engine, store := newCommentEngine(t)

	form := url.Values{}
	form.Set("category", "feedback")
	form.Set("description", "Great site!")
	form.Set("email", "visitor@example.com")

	w := postContact(engine, form)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %q)", w.Code, w.Body.String())
	}
	if got, want := w.Body.String(), "Request to submit comment successfully received!"; got != want {
		t.Errorf("body: got %q, want %q", got, want)
	}

	var saved []Comment
	if err := store.Read(&saved); err != nil {
		t.Fatalf("comments file not created: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("saved comments: got %d, want 1", len(saved))
	}
	c := saved[0]
	if c.Category != "feedback" || c.Description != "Great site!" || c.Email != "visitor@example.com" {
		t.Errorf("saved comment: got %+v", c)
	}
	if c.Name != "" || c.Phone != "" {
		t.Errorf("unset optional fields must stay empty: got %+v", c)
	}
}

func TestSubmitCommentOmitsEmptyOptionalFields(t *testing.T) {
	t.Parallel()
	engine, store := newCommentEngine(t)

	form := url.Values{}
	form.Set("category", "question")
	form.Set("description", "When do doors open?")
	if w := postContact(engine, form); w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"name", "phone", "email"} {
		if strings.Contains(string(data), `"`+field+`"`) {
			t.Errorf("document contains unset field %q:\n%s", field, data)
		}
	}
}

func TestSubmitCommentMissingRequiredFields(t *testing.T) {
	t.Parallel()
	engine, store := newCommentEngine(t)

	form := url.Values{}
	form.Set("category", "feedback")

	w := postContact(engine, form)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
	if got, want := w.Body.String(), "Category and description are both required parameters."; got != want {
		t.Errorf("body: got %q, want %q", got, want)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("rejected submission must not create the comments file")
	}
}

func TestSubmitCommentAppends(t *testing.T) {
	t.Parallel()
	engine, store := newCommentEngine(t)

	if err := store.Write([]Comment{{Category: "feedback", Description: "existing"}}); err != nil {
		t.Fatal(err)
	}

	form := url.Values{}
	form.Set("category", "complaint")
	form.Set("description", "Line was long.")
	if w := postContact(engine, form); w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}

	var saved []Comment
	if err := store.Read(&saved); err != nil {
		t.Fatal(err)
	}
	if len(saved) != 2 || saved[0].Description != "existing" || saved[1].Category != "complaint" {
		t.Errorf("appended comments: got %+v", saved)
	}
}

func TestGetComments(t *testing.T) {
	t.Parallel()
	engine, store := newCommentEngine(t)

	if err := store.Write([]Comment{{Category: "feedback", Description: "existing"}}); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/comments", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var got []Comment
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response not a comment array: %v", err)
	}
	if len(got) != 1 || got[0].Description != "existing" {
		t.Errorf("comments: got %+v", got)
	}
}

func TestGetCommentsStorageFailure(t *testing.T) {
	t.Parallel()
	engine, _ := newCommentEngine(t)

	// Listing, unlike submission, does not initialize a missing document
	req := httptest.NewRequest(http.MethodGet, "/comments", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", w.Code)
	}
}

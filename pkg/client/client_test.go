package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	token := testToken(t, "admin@bookstore.com", []string{"Administrator"}, time.Hour)

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]Author{{ID: "1", FirstName: "Ada", LastName: "Lovelace"}})
	}))
	defer srv.Close()

	store := NewMemoryTokenStore()
	_ = store.Save(token)

	c, err := New(srv.URL, store)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	authors, err := c.Authors(context.Background())
	if err != nil {
		t.Fatalf("authors failed: %v", err)
	}
	if len(authors) != 1 || authors[0].LastName != "Lovelace" {
		t.Fatalf("unexpected authors: %+v", authors)
	}
	if gotAuth != "Bearer "+token {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_AnonymousSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]Book{})
	}))
	defer srv.Close()

	c, err := New(srv.URL, NewMemoryTokenStore())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := c.Books(context.Background()); err != nil {
		t.Fatalf("books failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("anonymous request must not carry an Authorization header, got %q", gotAuth)
	}
}

func TestClient_ForbiddenMapsToErrForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, NewMemoryTokenStore())
	if _, err := c.CreateAuthor(context.Background(), AuthorInput{FirstName: "Ada", LastName: "Lovelace"}); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestClient_NotFoundMapsToErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, NewMemoryTokenStore())
	if _, err := c.Book(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_UnauthorizedInvalidatesSession(t *testing.T) {
	token := testToken(t, "admin@bookstore.com", []string{"Administrator"}, time.Hour)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := NewMemoryTokenStore()
	_ = store.Save(token)

	c, err := New(srv.URL, store)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if !c.Session().Current().Authenticated {
		t.Fatalf("expected restored authenticated session before the call")
	}

	if _, err := c.Authors(context.Background()); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if c.Session().Current().Authenticated {
		t.Fatalf("observed 401 must drop the session")
	}
	if persisted, _ := store.Load(); persisted != "" {
		t.Fatalf("observed 401 must clear the persisted token")
	}
}

func TestClient_DeleteHandlesNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, NewMemoryTokenStore())
	if err := c.DeleteBook(context.Background(), "42"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}

func TestClient_Me(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/me" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(Identity{ID: "user-1", Email: "admin@bookstore.com", Roles: []string{"Administrator"}})
	}))
	defer srv.Close()

	c, _ := New(srv.URL, NewMemoryTokenStore())
	me, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if me.Email != "admin@bookstore.com" || len(me.Roles) != 1 {
		t.Fatalf("unexpected identity: %+v", me)
	}
}

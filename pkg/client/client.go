// Package client is the Go client for the bookstore API. It owns the
// client-side session state machine (login, logout, registration, durable
// token storage) and typed wrappers over the catalog endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Author mirrors the API's author representation.
type Author struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio,omitempty"`
}

// Book mirrors the API's book representation.
type Book struct {
	ID       string  `json:"id"`
	AuthorID string  `json:"author_id"`
	Title    string  `json:"title"`
	Year     int     `json:"year,omitempty"`
	ISBN     string  `json:"isbn"`
	Summary  string  `json:"summary,omitempty"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// AuthorInput carries the fields accepted by author create/update calls.
type AuthorInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio,omitempty"`
}

// BookInput carries the fields accepted by book create/update calls.
type BookInput struct {
	AuthorID string  `json:"author_id"`
	Title    string  `json:"title"`
	Year     int     `json:"year,omitempty"`
	ISBN     string  `json:"isbn"`
	Summary  string  `json:"summary,omitempty"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// Identity mirrors the /api/me response.
type Identity struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// Client wraps a Session with typed catalog calls. Requests attach the
// session's bearer token when one is held; an observed 401 invalidates the
// session so the UI falls back to anonymous.
type Client struct {
	baseURL string
	session *Session
	http    *http.Client
}

// New builds a Client and its Session over the given token store.
func New(baseURL string, store TokenStore) (*Client, error) {
	httpClient := &http.Client{Timeout: 15 * time.Second}
	session, err := NewSession(baseURL, store, httpClient)
	if err != nil {
		return nil, err
	}
	return &Client{baseURL: baseURL, session: session, http: httpClient}, nil
}

// Session exposes the underlying session state machine.
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) Authors(ctx context.Context) ([]Author, error) {
	var out []Author
	err := c.do(ctx, http.MethodGet, "/api/authors", nil, &out)
	return out, err
}

func (c *Client) Author(ctx context.Context, id string) (*Author, error) {
	var out Author
	if err := c.do(ctx, http.MethodGet, "/api/authors/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAuthor(ctx context.Context, input AuthorInput) (*Author, error) {
	var out Author
	if err := c.do(ctx, http.MethodPost, "/api/authors", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAuthor(ctx context.Context, id string, input AuthorInput) (*Author, error) {
	var out Author
	if err := c.do(ctx, http.MethodPut, "/api/authors/"+id, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAuthor(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/authors/"+id, nil, nil)
}

func (c *Client) Books(ctx context.Context) ([]Book, error) {
	var out []Book
	err := c.do(ctx, http.MethodGet, "/api/books", nil, &out)
	return out, err
}

func (c *Client) Book(ctx context.Context, id string) (*Book, error) {
	var out Book
	if err := c.do(ctx, http.MethodGet, "/api/books/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBook(ctx context.Context, input BookInput) (*Book, error) {
	var out Book
	if err := c.do(ctx, http.MethodPost, "/api/books", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBook(ctx context.Context, id string, input BookInput) (*Book, error) {
	var out Book
	if err := c.do(ctx, http.MethodPut, "/api/books/"+id, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/books/"+id, nil, nil)
}

func (c *Client) Me(ctx context.Context) (*Identity, error) {
	var out Identity
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if state := c.session.Current(); state.Authenticated {
		req.Header.Set("Authorization", "Bearer "+state.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// The server rejected the token; the session must not keep it.
		c.session.Invalidate()
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: %s", method, path, readError(resp))
	}

	if dest == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

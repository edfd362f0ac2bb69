package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// CreateAuthorInput carries the fields accepted when creating an author.
type CreateAuthorInput struct {
	FirstName string
	LastName  string
	Bio       string
}

// CreateBookInput carries the fields accepted when creating a book.
type CreateBookInput struct {
	AuthorID string
	Title    string
	Year     int
	ISBN     string
	Summary  string
	Image    string
	Price    float64
}

// AuthorService exposes catalog operations on authors.
type AuthorService interface {
	List(ctx context.Context) ([]domain.Author, error)
	Get(ctx context.Context, id string) (*domain.Author, error)
	Create(ctx context.Context, input CreateAuthorInput) (*domain.Author, error)
	Update(ctx context.Context, id string, input CreateAuthorInput) (*domain.Author, error)
	Delete(ctx context.Context, id string) error
}

// BookService exposes catalog operations on books.
type BookService interface {
	List(ctx context.Context) ([]domain.Book, error)
	Get(ctx context.Context, id string) (*domain.Book, error)
	Create(ctx context.Context, input CreateBookInput) (*domain.Book, error)
	Update(ctx context.Context, id string, input CreateBookInput) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
}

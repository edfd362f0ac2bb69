package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// AuthorRepository is the persistence boundary for authors.
type AuthorRepository interface {
	FindAll(ctx context.Context) ([]domain.Author, error)
	FindByID(ctx context.Context, id string) (*domain.Author, error)
	Create(ctx context.Context, author *domain.Author) (*domain.Author, error)
	Update(ctx context.Context, author *domain.Author) error
	Delete(ctx context.Context, id string) error
}

// BookRepository is the persistence boundary for books.
type BookRepository interface {
	FindAll(ctx context.Context) ([]domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id string) error
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

const cacheKeyBooks = "catalog:books"

// BookService implements catalog operations on books. Create and Update verify
// the referenced author exists before persisting.
type BookService struct {
	repo    ports.BookRepository
	authors ports.AuthorRepository
	cache   ports.CatalogCache
	logger  zerolog.Logger
}

func NewBookService(repo ports.BookRepository, authors ports.AuthorRepository, cache ports.CatalogCache, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, authors: authors, cache: cache, logger: logger}
}

func (s *BookService) List(ctx context.Context) ([]domain.Book, error) {
	if s.cache != nil {
		var cached []domain.Book
		found, err := s.cache.Get(ctx, cacheKeyBooks, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Msg("cache read failed")
		} else if found {
			return cached, nil
		}
	}

	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyBooks, books); err != nil {
			s.logger.Warn().Err(err).Msg("cache write failed")
		}
	}
	return books, nil
}

func (s *BookService) Get(ctx context.Context, id string) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookService) Create(ctx context.Context, input ports.CreateBookInput) (*domain.Book, error) {
	if _, err := s.authors.FindByID(ctx, input.AuthorID); err != nil {
		return nil, err
	}

	book := &domain.Book{
		AuthorID: input.AuthorID,
		Title:    input.Title,
		Year:     input.Year,
		ISBN:     input.ISBN,
		Summary:  input.Summary,
		Image:    input.Image,
		Price:    input.Price,
	}
	created, err := s.repo.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("book_id", created.ID).Str("title", created.Title).Msg("book created")
	return created, nil
}

func (s *BookService) Update(ctx context.Context, id string, input ports.CreateBookInput) (*domain.Book, error) {
	if _, err := s.authors.FindByID(ctx, input.AuthorID); err != nil {
		return nil, err
	}

	book := &domain.Book{
		ID:       id,
		AuthorID: input.AuthorID,
		Title:    input.Title,
		Year:     input.Year,
		ISBN:     input.ISBN,
		Summary:  input.Summary,
		Image:    input.Image,
		Price:    input.Price,
	}
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("book_id", id).Msg("book updated")
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("book_id", id).Msg("book deleted")
	return nil
}

func (s *BookService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheKeyBooks); err != nil {
		s.logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

const cacheKeyAuthors = "catalog:authors"

// AuthorService implements catalog operations on authors with a read-through
// cache on the list endpoint.
type AuthorService struct {
	repo   ports.AuthorRepository
	cache  ports.CatalogCache
	logger zerolog.Logger
}

func NewAuthorService(repo ports.AuthorRepository, cache ports.CatalogCache, logger zerolog.Logger) *AuthorService {
	return &AuthorService{repo: repo, cache: cache, logger: logger}
}

func (s *AuthorService) List(ctx context.Context) ([]domain.Author, error) {
	var cached []domain.Author
	if found, err := s.cacheGet(ctx, cacheKeyAuthors, &cached); err == nil && found {
		return cached, nil
	}

	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyAuthors, authors)
	return authors, nil
}

func (s *AuthorService) Get(ctx context.Context, id string) (*domain.Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AuthorService) Create(ctx context.Context, input ports.CreateAuthorInput) (*domain.Author, error) {
	author := &domain.Author{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Bio:       input.Bio,
	}
	created, err := s.repo.Create(ctx, author)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("author_id", created.ID).Msg("author created")
	return created, nil
}

func (s *AuthorService) Update(ctx context.Context, id string, input ports.CreateAuthorInput) (*domain.Author, error) {
	author := &domain.Author{
		ID:        id,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Bio:       input.Bio,
	}
	if err := s.repo.Update(ctx, author); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("author_id", id).Msg("author updated")
	return author, nil
}

func (s *AuthorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("author_id", id).Msg("author deleted")
	return nil
}

// Cache failures are logged and otherwise ignored; the repository remains the
// source of truth.
func (s *AuthorService) cacheGet(ctx context.Context, key string, dest any) (bool, error) {
	if s.cache == nil {
		return false, nil
	}
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return false, err
	}
	return found, nil
}

func (s *AuthorService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (s *AuthorService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	// Books embed author references, so author mutations clear both keys.
	if err := s.cache.Invalidate(ctx, cacheKeyAuthors, cacheKeyBooks); err != nil {
		s.logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}

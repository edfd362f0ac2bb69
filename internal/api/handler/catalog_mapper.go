package handler

import (
	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// --- Request → Service input ---

func toAuthorInput(req authorRequest) ports.CreateAuthorInput {
	return ports.CreateAuthorInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	}
}

func toBookInput(req bookRequest) ports.CreateBookInput {
	return ports.CreateBookInput{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Year:     req.Year,
		ISBN:     req.ISBN,
		Summary:  req.Summary,
		Image:    req.Image,
		Price:    req.Price,
	}
}

// --- Domain → Response ---

func toAuthorResponse(a domain.Author) authorResponse {
	return authorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
	}
}

func toAuthorResponses(authors []domain.Author) []authorResponse {
	out := make([]authorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, toAuthorResponse(a))
	}
	return out
}

func toBookResponse(b domain.Book) bookResponse {
	return bookResponse{
		ID:       b.ID,
		AuthorID: b.AuthorID,
		Title:    b.Title,
		Year:     b.Year,
		ISBN:     b.ISBN,
		Summary:  b.Summary,
		Image:    b.Image,
		Price:    b.Price,
	}
}

func toBookResponses(books []domain.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// BookHandler handles HTTP requests for book operations.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /api/books.
//
// @Summary      List all books
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponses(books))
}

// Get handles GET /api/books/:id.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  bookResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponse(*book))
}

// Create handles POST /api/books. Requires the Administrator role.
//
// @Summary      Create a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookRequest  true  "Book details"
// @Success      201   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.service.Create(c.Request().Context(), toBookInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBookResponse(*book))
}

// Update handles PUT /api/books/:id. Requires the Administrator role.
//
// @Summary      Update a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Book id"
// @Param        body  body      bookRequest  true  "Book details"
// @Success      200   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.service.Update(c.Request().Context(), c.Param("id"), toBookInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponse(*book))
}

// Delete handles DELETE /api/books/:id. Requires the Administrator role.
//
// @Summary      Delete a book
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  string  true  "Book id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

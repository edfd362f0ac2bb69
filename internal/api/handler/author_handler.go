package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// AuthorHandler handles HTTP requests for author operations. Authorization is
// enforced by the route middleware; handlers assume an admitted request.
type AuthorHandler struct {
	service ports.AuthorService
}

func NewAuthorHandler(service ports.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// List handles GET /api/authors.
//
// @Summary      List all authors
// @Tags         authors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   authorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/authors [get]
func (h *AuthorHandler) List(c echo.Context) error {
	authors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthorResponses(authors))
}

// Get handles GET /api/authors/:id.
//
// @Summary      Get an author by id
// @Tags         authors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Author id"
// @Success      200  {object}  authorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/authors/{id} [get]
func (h *AuthorHandler) Get(c echo.Context) error {
	author, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthorResponse(*author))
}

// Create handles POST /api/authors. Requires the Administrator role.
//
// @Summary      Create an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      authorRequest  true  "Author details"
// @Success      201   {object}  authorResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/authors [post]
func (h *AuthorHandler) Create(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	author, err := h.service.Create(c.Request().Context(), toAuthorInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAuthorResponse(*author))
}

// Update handles PUT /api/authors/:id. Requires the Administrator role.
//
// @Summary      Update an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Author id"
// @Param        body  body      authorRequest  true  "Author details"
// @Success      200   {object}  authorResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/authors/{id} [put]
func (h *AuthorHandler) Update(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	author, err := h.service.Update(c.Request().Context(), c.Param("id"), toAuthorInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthorResponse(*author))
}

// Delete handles DELETE /api/authors/:id. Requires the Administrator role.
//
// @Summary      Delete an author
// @Tags         authors
// @Security     BearerAuth
// @Param        id  path  string  true  "Author id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/authors/{id} [delete]
func (h *AuthorHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type authorRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Bio       string `json:"bio,omitempty"`
}

type bookRequest struct {
	AuthorID string  `json:"author_id" validate:"required"`
	Title    string  `json:"title"     validate:"required"`
	Year     int     `json:"year,omitempty"`
	ISBN     string  `json:"isbn"      validate:"required"`
	Summary  string  `json:"summary,omitempty"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}

// Response-only types owned by the transport layer. Intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type authorResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio,omitempty"`
}

type bookResponse struct {
	ID       string  `json:"id"`
	AuthorID string  `json:"author_id"`
	Title    string  `json:"title"`
	Year     int     `json:"year,omitempty"`
	ISBN     string  `json:"isbn"`
	Summary  string  `json:"summary,omitempty"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

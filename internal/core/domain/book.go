package domain

// Book is a catalog book record. AuthorID must reference an existing Author.
type Book struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	AuthorID string  `json:"author_id" bson:"author_id"`
	Title    string  `json:"title" bson:"title"`
	Year     int     `json:"year,omitempty" bson:"year,omitempty"`
	ISBN     string  `json:"isbn" bson:"isbn"`
	Summary  string  `json:"summary,omitempty" bson:"summary,omitempty"`
	Image    string  `json:"image,omitempty" bson:"image,omitempty"`
	Price    float64 `json:"price,omitempty" bson:"price,omitempty"`
}

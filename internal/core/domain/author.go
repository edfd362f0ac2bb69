package domain

// Author is a catalog author record.
type Author struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`
	Bio       string `json:"bio,omitempty" bson:"bio,omitempty"`
}

package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

const authorsCollection = "authors"

type AuthorRepository struct {
	coll *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{coll: db.Collection(authorsCollection)}
}

type mongoAuthor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	Bio       string             `bson:"bio,omitempty"`
}

func (ma mongoAuthor) toDomain() domain.Author {
	return domain.Author{
		ID:        ma.ID.Hex(),
		FirstName: ma.FirstName,
		LastName:  ma.LastName,
		Bio:       ma.Bio,
	}
}

// FindAll returns every author ordered by last name, then first name.
func (r *AuthorRepository) FindAll(ctx context.Context) ([]domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	defer cur.Close(ctx)

	authors := make([]domain.Author, 0)
	for cur.Next(ctx) {
		var ma mongoAuthor
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode author: %w", err)
		}
		authors = append(authors, ma.toDomain())
	}
	return authors, cur.Err()
}

func (r *AuthorRepository) FindByID(ctx context.Context, id string) (*domain.Author, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAuthorNotFound
	}

	var ma mongoAuthor
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}
	author := ma.toDomain()
	return &author, nil
}

func (r *AuthorRepository) Create(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	doc := mongoAuthor{
		FirstName: author.FirstName,
		LastName:  author.LastName,
		Bio:       author.Bio,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert author: %w", err)
	}

	created := *author
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AuthorRepository) Update(ctx context.Context, author *domain.Author) error {
	oid, err := primitive.ObjectIDFromHex(author.ID)
	if err != nil {
		return domain.ErrAuthorNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"first_name": author.FirstName,
			"last_name":  author.LastName,
			"bio":        author.Bio,
		}},
	)
	if err != nil {
		return fmt.Errorf("update author: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAuthorNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}

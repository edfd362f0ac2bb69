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

const booksCollection = "books"

type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{coll: db.Collection(booksCollection)}
}

type mongoBook struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID string             `bson:"author_id"`
	Title    string             `bson:"title"`
	Year     int                `bson:"year,omitempty"`
	ISBN     string             `bson:"isbn"`
	Summary  string             `bson:"summary,omitempty"`
	Image    string             `bson:"image,omitempty"`
	Price    float64            `bson:"price,omitempty"`
}

func (mb mongoBook) toDomain() domain.Book {
	return domain.Book{
		ID:       mb.ID.Hex(),
		AuthorID: mb.AuthorID,
		Title:    mb.Title,
		Year:     mb.Year,
		ISBN:     mb.ISBN,
		Summary:  mb.Summary,
		Image:    mb.Image,
		Price:    mb.Price,
	}
}

func (r *BookRepository) FindAll(ctx context.Context) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer cur.Close(ctx)

	books := make([]domain.Book, 0)
	for cur.Next(ctx) {
		var mb mongoBook
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode book: %w", err)
		}
		books = append(books, mb.toDomain())
	}
	return books, cur.Err()
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}

	var mb mongoBook
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	book := mb.toDomain()
	return &book, nil
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	doc := mongoBook{
		AuthorID: book.AuthorID,
		Title:    book.Title,
		Year:     book.Year,
		ISBN:     book.ISBN,
		Summary:  book.Summary,
		Image:    book.Image,
		Price:    book.Price,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}

	created := *book
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *BookRepository) Update(ctx context.Context, book *domain.Book) error {
	oid, err := primitive.ObjectIDFromHex(book.ID)
	if err != nil {
		return domain.ErrBookNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"author_id": book.AuthorID,
			"title":     book.Title,
			"year":      book.Year,
			"isbn":      book.ISBN,
			"summary":   book.Summary,
			"image":     book.Image,
			"price":     book.Price,
		}},
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

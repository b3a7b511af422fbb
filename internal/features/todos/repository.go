package todos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/xyz-asif/azul/pkg/errors"
)

// Store is the persistence boundary for todos. FindByID reports absence
// as (nil, nil). Malformed ids yield apperrors.ErrInvalidID.
type Store interface {
	Save(ctx context.Context, todo *Todo) error
	FindByID(ctx context.Context, id string) (*Todo, error)
	// FindAll orders by due date, latest first; todos without one come last.
	FindAll(ctx context.Context) ([]Todo, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
}

const collectionName = "todos"

// Repository is the MongoDB-backed Store.
type Repository struct {
	collection *mongo.Collection
}

var _ Store = (*Repository)(nil)

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(collectionName)}
}

// EnsureIndexes creates the index backing the list ordering.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "dueDate", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create todo indexes: %w", err)
	}
	return nil
}

// Save inserts todo when it has no id yet, otherwise replaces the stored
// document. The generated id is written back to todo.
func (r *Repository) Save(ctx context.Context, todo *Todo) error {
	now := time.Now().UTC()
	todo.UpdatedAt = now

	if todo.ID.IsZero() {
		todo.CreatedAt = now
		result, err := r.collection.InsertOne(ctx, todo)
		if err != nil {
			return fmt.Errorf("insert todo: %w", err)
		}
		todo.ID = result.InsertedID.(primitive.ObjectID)
		return nil
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": todo.ID}, todo)
	if err != nil {
		return fmt.Errorf("replace todo %s: %w", todo.ID.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("todo %s: %w", todo.ID.Hex(), apperrors.ErrNotFound)
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Todo, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var todo Todo
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find todo %s: %w", id, err)
	}

	return &todo, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]Todo, error) {
	// Missing dueDate sorts below any date, so descending puts it last.
	opts := options.Find().SetSort(bson.D{
		{Key: "dueDate", Value: -1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer cursor.Close(ctx)

	var todos []Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}

	if todos == nil {
		todos = []Todo{}
	}

	return todos, nil
}

func (r *Repository) ExistsByID(ctx context.Context, id string) (bool, error) {
	objectID, err := parseID(id)
	if err != nil {
		return false, err
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objectID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count todo %s: %w", id, err)
	}
	return count > 0, nil
}

// DeleteByID removes the document; deleting an absent id is not an error.
func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	objectID, err := parseID(id)
	if err != nil {
		return err
	}

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID}); err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("todo id %q: %w", id, apperrors.ErrInvalidID)
	}
	return objectID, nil
}

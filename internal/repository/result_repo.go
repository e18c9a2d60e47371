package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"capsdiag/internal/model"
)

// ResultRepo handles MongoDB operations for completed diagnoses
type ResultRepo interface {
	Create(ctx context.Context, result *model.Result) (string, error)
	GetByID(ctx context.Context, id string) (*model.Result, error)
	ListRecent(ctx context.Context, limit int64) ([]*model.Result, error)
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("results"),
	}
}

func (r *resultRepo) Create(ctx context.Context, result *model.Result) (string, error) {
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}

	res, err := r.collection.InsertOne(ctx, result)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	result.ID = oid.Hex()
	return result.ID, nil
}

// GetByID returns nil when no result has that ID, including malformed IDs
func (r *resultRepo) GetByID(ctx context.Context, id string) (*model.Result, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var result model.Result
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	result.ID = id
	return &result, nil
}

func (r *resultRepo) ListRecent(ctx context.Context, limit int64) ([]*model.Result, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *resultRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Result, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]*model.Result, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/mongodb"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(mongodb.ContactsCollection)}
}

func (r *MongoRepository) Insert(ctx context.Context, m *domain.Message) error {
	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return mongodb.Translate(err)
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context, f domain.ListFilter, p pagination.Params) ([]domain.Message, int64, error) {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(p.Skip()))
	if p.Limit > 0 {
		opts.SetLimit(int64(p.Limit))
	}
	cur, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find messages: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Message, 0, 16)
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("decode messages: %w", err)
	}
	return out, total, nil
}

func (r *MongoRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string, at time.Time) (*domain.Message, error) {
	var m domain.Message
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": at}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		return nil, mongodb.Translate(err)
	}
	return &m, nil
}

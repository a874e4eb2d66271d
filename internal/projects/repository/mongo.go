package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/mongodb"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(mongodb.ProjectsCollection)}
}

var publicSort = bson.D{{Key: "priority", Value: -1}, {Key: "createdAt", Value: -1}}

func mongoFilter(f domain.ListFilter) bson.M {
	q := bson.M{}
	if f.PublishedOnly {
		q["isPublished"] = true
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.FeaturedOnly {
		q["featured"] = true
	}
	if f.Search != "" {
		q["$text"] = bson.M{"$search": f.Search}
	}
	if f.Exclude != nil {
		q["_id"] = bson.M{"$ne": *f.Exclude}
	}
	return q
}

func (r *MongoRepository) List(ctx context.Context, f domain.ListFilter, p pagination.Params) ([]domain.Project, int64, error) {
	q := mongoFilter(f)

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	opts := options.Find().SetSort(publicSort).SetSkip(int64(p.Skip()))
	if p.Limit > 0 {
		opts.SetLimit(int64(p.Limit))
	}
	cur, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find projects: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Project, 0, 16)
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("decode projects: %w", err)
	}
	return out, total, nil
}

func (r *MongoRepository) findOne(ctx context.Context, q bson.M, publishedOnly bool) (*domain.Project, error) {
	if publishedOnly {
		q["isPublished"] = true
	}
	var p domain.Project
	if err := r.coll.FindOne(ctx, q).Decode(&p); err != nil {
		return nil, mongodb.Translate(err)
	}
	return &p, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id primitive.ObjectID, publishedOnly bool) (*domain.Project, error) {
	return r.findOne(ctx, bson.M{"_id": id}, publishedOnly)
}

func (r *MongoRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Project, error) {
	return r.findOne(ctx, bson.M{"slug": slug}, publishedOnly)
}

func (r *MongoRepository) Insert(ctx context.Context, p *domain.Project) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return mongodb.Translate(err)
	}
	return nil
}

func (r *MongoRepository) Replace(ctx context.Context, p *domain.Project) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return mongodb.Translate(err)
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return res.DeletedCount > 0, nil
}

package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/mongodb"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(mongodb.SkillsCollection)}
}

func (r *MongoRepository) List(ctx context.Context, f domain.ListFilter, s domain.Sort) ([]domain.Skill, error) {
	q := bson.M{}
	if f.VisibleOnly {
		q["isVisible"] = true
	}
	if f.Category != "" {
		_, key := domain.Key("", f.Category)
		q["categoryKey"] = key
	}
	dir := 1
	if s.Desc {
		dir = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: s.Field, Value: dir}})

	cur, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("find skills: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Skill, 0, 32)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return out, nil
}

func (r *MongoRepository) Categories(ctx context.Context) ([]string, error) {
	raw, err := r.coll.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	values := lo.FilterMap(raw, func(v any, _ int) (string, bool) {
		s, ok := v.(string)
		return s, ok
	})
	sort.Strings(values)
	return values, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id primitive.ObjectID, visibleOnly bool) (*domain.Skill, error) {
	q := bson.M{"_id": id}
	if visibleOnly {
		q["isVisible"] = true
	}
	var s domain.Skill
	if err := r.coll.FindOne(ctx, q).Decode(&s); err != nil {
		return nil, mongodb.Translate(err)
	}
	return &s, nil
}

func (r *MongoRepository) ExistsPair(ctx context.Context, name, category string, exclude *primitive.ObjectID) (bool, error) {
	nameKey, categoryKey := domain.Key(name, category)
	q := bson.M{"nameKey": nameKey, "categoryKey": categoryKey}
	if exclude != nil {
		q["_id"] = bson.M{"$ne": *exclude}
	}
	n, err := r.coll.CountDocuments(ctx, q, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count skills: %w", err)
	}
	return n > 0, nil
}

func (r *MongoRepository) Insert(ctx context.Context, s *domain.Skill) error {
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return mongodb.Translate(err)
	}
	return nil
}

func (r *MongoRepository) InsertMany(ctx context.Context, skills []*domain.Skill) (map[int]error, error) {
	docs := make([]any, len(skills))
	for i, s := range skills {
		docs[i] = s
	}
	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err == nil {
		return map[int]error{}, nil
	}
	if failed, ok := mongodb.BulkFailures(err); ok {
		return failed, nil
	}
	return nil, fmt.Errorf("insert skills: %w", err)
}

func (r *MongoRepository) Replace(ctx context.Context, s *domain.Skill) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
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
		return false, fmt.Errorf("delete skill: %w", err)
	}
	return res.DeletedCount > 0, nil
}

package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique and query indexes every repository relies on.
// Unique indexes are what turns concurrent duplicate writes into conflicts.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		ProjectsCollection: {
			{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "shortDescription", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "technologies", Value: "text"},
			}},
			{Keys: bson.D{
				{Key: "isPublished", Value: 1},
				{Key: "priority", Value: -1},
				{Key: "createdAt", Value: -1},
			}},
		},
		SkillsCollection: {
			{
				Keys:    bson.D{{Key: "nameKey", Value: 1}, {Key: "categoryKey", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "isVisible", Value: 1}, {Key: "order", Value: 1}}},
		},
		ContactsCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

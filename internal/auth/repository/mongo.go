package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/mongodb"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(mongodb.UsersCollection)}
}

func (r *MongoRepository) findOne(ctx context.Context, q bson.M) (*domain.User, error) {
	var u domain.User
	if err := r.coll.FindOne(ctx, q).Decode(&u); err != nil {
		return nil, mongodb.Translate(err)
	}
	return &u, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

func (r *MongoRepository) Insert(ctx context.Context, u *domain.User) error {
	_, err := r.coll.InsertOne(ctx, u)
	return mongodb.Translate(err)
}

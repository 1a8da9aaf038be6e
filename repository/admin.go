package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"llcart/models"
)

type AdminRepository interface {
	Insert(ctx context.Context, admin *models.Admin) (primitive.ObjectID, error)
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
}

type MongoAdminRepository struct {
	collection *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{collection: db.Collection(AdminsCollection)}
}

func (r *MongoAdminRepository) Insert(ctx context.Context, admin *models.Admin) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert admin: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoAdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"llcart/models"
)

// EmailRepository archives sent mail for auditing.
type EmailRepository interface {
	Insert(ctx context.Context, details *models.EmailDetails) error
}

type MongoEmailRepository struct {
	collection *mongo.Collection
}

func NewEmailRepository(db *mongo.Database) *MongoEmailRepository {
	return &MongoEmailRepository{collection: db.Collection(EmailsCollection)}
}

func (r *MongoEmailRepository) Insert(ctx context.Context, details *models.EmailDetails) error {
	if _, err := r.collection.InsertOne(ctx, details); err != nil {
		return fmt.Errorf("failed to archive email: %w", err)
	}
	return nil
}

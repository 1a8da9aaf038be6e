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

type AddressRepository interface {
	Insert(ctx context.Context, address *models.Address) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Address, error)
	FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]models.Address, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteByBuyer(ctx context.Context, buyerID primitive.ObjectID) error
}

type MongoAddressRepository struct {
	collection *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *MongoAddressRepository {
	return &MongoAddressRepository{collection: db.Collection(AddressesCollection)}
}

func (r *MongoAddressRepository) Insert(ctx context.Context, address *models.Address) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, address)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert address: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoAddressRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Address, error) {
	var address models.Address
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&address)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	return &address, nil
}

func (r *MongoAddressRepository) FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]models.Address, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"buyer_id": buyerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, fmt.Errorf("failed to read addresses: %w", err)
	}
	return addresses, nil
}

func (r *MongoAddressRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}

func (r *MongoAddressRepository) DeleteByBuyer(ctx context.Context, buyerID primitive.ObjectID) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"buyer_id": buyerID}); err != nil {
		return fmt.Errorf("failed to delete buyer addresses: %w", err)
	}
	return nil
}

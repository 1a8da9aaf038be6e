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

type SellerRepository interface {
	Insert(ctx context.Context, seller *models.Seller) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Seller, error)
	FindByUsername(ctx context.Context, username string) (*models.Seller, error)
	FindByEmail(ctx context.Context, email string) (*models.Seller, error)
	FindByResetToken(ctx context.Context, token string) (*models.Seller, error)
	FindByStatus(ctx context.Context, status string) ([]models.Seller, error)
	FindAll(ctx context.Context) ([]models.Seller, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	UpdateProfile(ctx context.Context, seller *models.Seller) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type MongoSellerRepository struct {
	collection *mongo.Collection
}

func NewSellerRepository(db *mongo.Database) *MongoSellerRepository {
	return &MongoSellerRepository{collection: db.Collection(SellersCollection)}
}

func (r *MongoSellerRepository) Insert(ctx context.Context, seller *models.Seller) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, seller)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert seller: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoSellerRepository) findOne(ctx context.Context, filter bson.M) (*models.Seller, error) {
	var seller models.Seller
	err := r.collection.FindOne(ctx, filter).Decode(&seller)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find seller: %w", err)
	}
	return &seller, nil
}

func (r *MongoSellerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Seller, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoSellerRepository) FindByUsername(ctx context.Context, username string) (*models.Seller, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoSellerRepository) FindByEmail(ctx context.Context, email string) (*models.Seller, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoSellerRepository) FindByResetToken(ctx context.Context, token string) (*models.Seller, error) {
	return r.findOne(ctx, bson.M{"reset_token": token})
}

func (r *MongoSellerRepository) findMany(ctx context.Context, filter bson.M) ([]models.Seller, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}
	defer cursor.Close(ctx)

	var sellers []models.Seller
	if err := cursor.All(ctx, &sellers); err != nil {
		return nil, fmt.Errorf("failed to read sellers: %w", err)
	}
	return sellers, nil
}

func (r *MongoSellerRepository) FindByStatus(ctx context.Context, status string) ([]models.Seller, error) {
	return r.findMany(ctx, bson.M{"status": status})
}

func (r *MongoSellerRepository) FindAll(ctx context.Context) ([]models.Seller, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoSellerRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count sellers: %w", err)
	}
	return count, nil
}

func (r *MongoSellerRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update seller status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoSellerRepository) UpdateProfile(ctx context.Context, seller *models.Seller) error {
	update := bson.M{"$set": bson.M{
		"name":   seller.Name,
		"email":  seller.Email,
		"mobile": seller.Mobile,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": seller.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update seller profile: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoSellerRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, token string) error {
	update := bson.M{"$set": bson.M{"reset_token": token}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to set seller reset token: %w", err)
	}
	return nil
}

func (r *MongoSellerRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{"$set": bson.M{"password": passwordHash, "reset_token": ""}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to update seller password: %w", err)
	}
	return nil
}

func (r *MongoSellerRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete seller: %w", err)
	}
	return nil
}

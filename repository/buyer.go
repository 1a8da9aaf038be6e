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

type BuyerRepository interface {
	Insert(ctx context.Context, buyer *models.Buyer) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Buyer, error)
	FindByEmail(ctx context.Context, email string) (*models.Buyer, error)
	FindByVerificationToken(ctx context.Context, token string) (*models.Buyer, error)
	FindByResetToken(ctx context.Context, token string) (*models.Buyer, error)
	FindAll(ctx context.Context) ([]models.Buyer, error)
	Count(ctx context.Context) (int64, error)
	MarkVerified(ctx context.Context, id primitive.ObjectID) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type MongoBuyerRepository struct {
	collection *mongo.Collection
}

func NewBuyerRepository(db *mongo.Database) *MongoBuyerRepository {
	return &MongoBuyerRepository{collection: db.Collection(BuyersCollection)}
}

func (r *MongoBuyerRepository) Insert(ctx context.Context, buyer *models.Buyer) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, buyer)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert buyer: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoBuyerRepository) findOne(ctx context.Context, filter bson.M) (*models.Buyer, error) {
	var buyer models.Buyer
	err := r.collection.FindOne(ctx, filter).Decode(&buyer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find buyer: %w", err)
	}
	return &buyer, nil
}

func (r *MongoBuyerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Buyer, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoBuyerRepository) FindByEmail(ctx context.Context, email string) (*models.Buyer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoBuyerRepository) FindByVerificationToken(ctx context.Context, token string) (*models.Buyer, error) {
	return r.findOne(ctx, bson.M{"verification_token": token})
}

func (r *MongoBuyerRepository) FindByResetToken(ctx context.Context, token string) (*models.Buyer, error) {
	return r.findOne(ctx, bson.M{"reset_token": token})
}

func (r *MongoBuyerRepository) FindAll(ctx context.Context) ([]models.Buyer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buyers: %w", err)
	}
	defer cursor.Close(ctx)

	var buyers []models.Buyer
	if err := cursor.All(ctx, &buyers); err != nil {
		return nil, fmt.Errorf("failed to read buyers: %w", err)
	}
	return buyers, nil
}

func (r *MongoBuyerRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count buyers: %w", err)
	}
	return count, nil
}

func (r *MongoBuyerRepository) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"is_verified": true, "verification_token": ""}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to mark buyer verified: %w", err)
	}
	return nil
}

func (r *MongoBuyerRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, token string) error {
	update := bson.M{"$set": bson.M{"reset_token": token}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to set buyer reset token: %w", err)
	}
	return nil
}

func (r *MongoBuyerRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{"$set": bson.M{"password": passwordHash, "reset_token": ""}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to update buyer password: %w", err)
	}
	return nil
}

func (r *MongoBuyerRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete buyer: %w", err)
	}
	return nil
}

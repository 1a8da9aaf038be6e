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

type ProductRepository interface {
	Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]models.Product, error)
	FindBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Count(ctx context.Context) (int64, error)
	CountBySeller(ctx context.Context, sellerID primitive.ObjectID) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{collection: db.Collection(ProductsCollection)}
}

func (r *MongoProductRepository) Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert product: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (r *MongoProductRepository) findMany(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoProductRepository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return r.findMany(ctx, bson.M{"category": category})
}

func (r *MongoProductRepository) FindBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error) {
	return r.findMany(ctx, bson.M{"seller_id": sellerID})
}

func (r *MongoProductRepository) Update(ctx context.Context, product *models.Product) error {
	update := bson.M{"$set": bson.M{
		"category":        product.Category,
		"name":            product.Name,
		"description":     product.Description,
		"cost":            product.Cost,
		"image_url":       product.ImageURL,
		"image_public_id": product.ImagePublicID,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *MongoProductRepository) CountBySeller(ctx context.Context, sellerID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"seller_id": sellerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count seller products: %w", err)
	}
	return count, nil
}

func (r *MongoProductRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

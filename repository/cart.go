package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"llcart/models"
)

// CartRepository persists cart lines. The store guarantees at most one
// line per (buyer, product) pair: Upsert increments or inserts in a
// single atomic operation.
type CartRepository interface {
	Upsert(ctx context.Context, buyerID, productID primitive.ObjectID, delta int) (*models.Cart, error)
	SetQuantity(ctx context.Context, buyerID, productID primitive.ObjectID, quantity int) (*models.Cart, error)
	FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]models.Cart, error)
	CountByBuyer(ctx context.Context, buyerID primitive.ObjectID) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteByBuyer(ctx context.Context, buyerID primitive.ObjectID) error
	DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error
}

type MongoCartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{collection: db.Collection(CartsCollection)}
}

// EnsureIndexes creates the unique compound index backing the
// one-line-per-(buyer, product) invariant.
func (r *MongoCartRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "buyer_id", Value: 1}, {Key: "product_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create cart index: %w", err)
	}
	return nil
}

// Upsert atomically increments the quantity of the line for
// (buyerID, productID), inserting the line if it does not exist yet.
func (r *MongoCartRepository) Upsert(ctx context.Context, buyerID, productID primitive.ObjectID, delta int) (*models.Cart, error) {
	filter := bson.M{"buyer_id": buyerID, "product_id": productID}
	update := bson.M{"$inc": bson.M{"quantity": delta}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var line models.Cart
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&line); err != nil {
		return nil, fmt.Errorf("failed to upsert cart line: %w", err)
	}
	return &line, nil
}

// SetQuantity replaces the quantity of an existing line. Returns
// ErrNotFound without writing when no line exists for the pair.
func (r *MongoCartRepository) SetQuantity(ctx context.Context, buyerID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	filter := bson.M{"buyer_id": buyerID, "product_id": productID}
	update := bson.M{"$set": bson.M{"quantity": quantity}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var line models.Cart
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&line)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update cart quantity: %w", err)
	}
	return &line, nil
}

func (r *MongoCartRepository) FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]models.Cart, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"buyer_id": buyerID})
	if err != nil {
		return nil, fmt.Errorf("failed to find cart lines: %w", err)
	}
	defer cursor.Close(ctx)

	var lines []models.Cart
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, fmt.Errorf("failed to read cart lines: %w", err)
	}
	return lines, nil
}

func (r *MongoCartRepository) CountByBuyer(ctx context.Context, buyerID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"buyer_id": buyerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count cart lines: %w", err)
	}
	return count, nil
}

// DeleteByID removes one line. Deleting an absent line is a no-op.
func (r *MongoCartRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}
	return nil
}

// DeleteByBuyer removes every line for a buyer. Clearing an empty cart
// is a no-op.
func (r *MongoCartRepository) DeleteByBuyer(ctx context.Context, buyerID primitive.ObjectID) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"buyer_id": buyerID}); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// DeleteByProduct removes every line referencing a product, used when
// the product itself is deleted.
func (r *MongoCartRepository) DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"product_id": productID}); err != nil {
		return fmt.Errorf("failed to delete cart lines for product: %w", err)
	}
	return nil
}

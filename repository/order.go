package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"llcart/models"
)

// Date bucket formats for sales rollups, in Mongo $dateToString syntax.
const (
	DailyBucketFormat   = "%Y-%m-%d"
	MonthlyBucketFormat = "%Y-%m"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]models.Order, error)
	FindBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.Order, error)
	FindByPaymentID(ctx context.Context, paymentID string) (*models.Order, error)
	Count(ctx context.Context) (int64, error)
	CountBySeller(ctx context.Context, sellerID primitive.ObjectID) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	TotalRevenueBySeller(ctx context.Context, sellerID primitive.ObjectID) (float64, error)
	SalesSince(ctx context.Context, since time.Time, bucketFormat string) ([]models.SalesBucket, error)
	SalesBySellerSince(ctx context.Context, sellerID primitive.ObjectID, since time.Time, bucketFormat string) ([]models.SalesBucket, error)
}

type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Collection(OrdersCollection)}
}

func (r *MongoOrderRepository) Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert order: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoOrderRepository) findMany(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}
	return orders, nil
}

func (r *MongoOrderRepository) FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]models.Order, error) {
	return r.findMany(ctx, bson.M{"buyer_id": buyerID})
}

func (r *MongoOrderRepository) FindBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.Order, error) {
	return r.findMany(ctx, bson.M{"seller_id": sellerID})
}

func (r *MongoOrderRepository) FindByPaymentID(ctx context.Context, paymentID string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"razorpay_payment_id": paymentID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by payment id: %w", err)
	}
	return &order, nil
}

func (r *MongoOrderRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *MongoOrderRepository) CountBySeller(ctx context.Context, sellerID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"seller_id": sellerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count seller orders: %w", err)
	}
	return count, nil
}

func (r *MongoOrderRepository) totalRevenue(ctx context.Context, match bson.M) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to read revenue aggregation: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Revenue, nil
}

func (r *MongoOrderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	return r.totalRevenue(ctx, bson.M{})
}

func (r *MongoOrderRepository) TotalRevenueBySeller(ctx context.Context, sellerID primitive.ObjectID) (float64, error) {
	return r.totalRevenue(ctx, bson.M{"seller_id": sellerID})
}

func (r *MongoOrderRepository) salesSince(ctx context.Context, match bson.M, bucketFormat string) ([]models.SalesBucket, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": bucketFormat,
				"date":   "$order_date",
			}},
			"orderCount": bson.M{"$sum": 1},
			"revenue":    bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":        0,
			"period":     "$_id",
			"orderCount": 1,
			"revenue":    1,
		}}},
		{{Key: "$sort", Value: bson.M{"period": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []models.SalesBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to read sales aggregation: %w", err)
	}
	return buckets, nil
}

func (r *MongoOrderRepository) SalesSince(ctx context.Context, since time.Time, bucketFormat string) ([]models.SalesBucket, error) {
	return r.salesSince(ctx, bson.M{"order_date": bson.M{"$gte": since}}, bucketFormat)
}

func (r *MongoOrderRepository) SalesBySellerSince(ctx context.Context, sellerID primitive.ObjectID, since time.Time, bucketFormat string) ([]models.SalesBucket, error) {
	match := bson.M{
		"seller_id":  sellerID,
		"order_date": bson.M{"$gte": since},
	}
	return r.salesSince(ctx, match, bucketFormat)
}

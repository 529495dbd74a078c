package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/norvalex/pizza-form/models"
)

// OrderRepository defines data access for composed Order documents.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	Update(ctx context.Context, id primitive.ObjectID, order *models.Order) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
}

// MongoOrderRepository implements OrderRepository on a mongo collection.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates an OrderRepository backed by the
// "orders" collection of db.
func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoOrderRepository{collection: db.Collection("orders")}
}

func (r *MongoOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "email", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Create persists the assembled aggregate as a single document. The
// insert is atomic, so a failed write leaves nothing behind.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return order, nil
}

func (r *MongoOrderRepository) Update(ctx context.Context, id primitive.ObjectID, order *models.Order) (*models.Order, error) {
	order.ID = id
	replaceOptions := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated models.Order
	err := r.collection.FindOneAndReplace(ctx, bson.M{"_id": id}, order, replaceOptions).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var deleted models.Order
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

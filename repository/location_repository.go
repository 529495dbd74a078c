package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/norvalex/pizza-form/models"
)

// LocationRepository defines data access for Location documents.
type LocationRepository interface {
	FindAll(ctx context.Context) ([]models.Location, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Location, error)
	Create(ctx context.Context, location *models.Location) (*models.Location, error)
	Update(ctx context.Context, id primitive.ObjectID, location *models.Location) (*models.Location, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Location, error)
}

// MongoLocationRepository implements LocationRepository on a mongo
// collection.
type MongoLocationRepository struct {
	collection *mongo.Collection
}

// NewMongoLocationRepository creates a LocationRepository backed by the
// "locations" collection of db.
func NewMongoLocationRepository(db *mongo.Database) LocationRepository {
	return &MongoLocationRepository{collection: db.Collection("locations")}
}

func (r *MongoLocationRepository) FindAll(ctx context.Context) ([]models.Location, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "label", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	locations := []models.Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *MongoLocationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Location, error) {
	var location models.Location
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *MongoLocationRepository) Create(ctx context.Context, location *models.Location) (*models.Location, error) {
	result, err := r.collection.InsertOne(ctx, location)
	if err != nil {
		return nil, err
	}
	location.ID = result.InsertedID.(primitive.ObjectID)
	return location, nil
}

// Update replaces the document and returns the new version.
func (r *MongoLocationRepository) Update(ctx context.Context, id primitive.ObjectID, location *models.Location) (*models.Location, error) {
	location.ID = id
	replaceOptions := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated models.Location
	err := r.collection.FindOneAndReplace(ctx, bson.M{"_id": id}, location, replaceOptions).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the document and returns what was deleted.
func (r *MongoLocationRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Location, error) {
	var deleted models.Location
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

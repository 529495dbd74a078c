package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/norvalex/pizza-form/models"
)

// TermRepository defines data access for Term documents.
type TermRepository interface {
	FindAll(ctx context.Context) ([]models.Term, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Term, error)
	Create(ctx context.Context, term *models.Term) (*models.Term, error)
	Update(ctx context.Context, id primitive.ObjectID, term *models.Term) (*models.Term, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Term, error)
}

// MongoTermRepository implements TermRepository on a mongo collection.
type MongoTermRepository struct {
	collection *mongo.Collection
}

// NewMongoTermRepository creates a TermRepository backed by the "terms"
// collection of db.
func NewMongoTermRepository(db *mongo.Database) TermRepository {
	return &MongoTermRepository{collection: db.Collection("terms")}
}

func (r *MongoTermRepository) FindAll(ctx context.Context) ([]models.Term, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "label", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	terms := []models.Term{}
	if err := cursor.All(ctx, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *MongoTermRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Term, error) {
	var term models.Term
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&term); err != nil {
		return nil, err
	}
	return &term, nil
}

func (r *MongoTermRepository) Create(ctx context.Context, term *models.Term) (*models.Term, error) {
	result, err := r.collection.InsertOne(ctx, term)
	if err != nil {
		return nil, err
	}
	term.ID = result.InsertedID.(primitive.ObjectID)
	return term, nil
}

func (r *MongoTermRepository) Update(ctx context.Context, id primitive.ObjectID, term *models.Term) (*models.Term, error) {
	term.ID = id
	replaceOptions := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated models.Term
	err := r.collection.FindOneAndReplace(ctx, bson.M{"_id": id}, term, replaceOptions).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoTermRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Term, error) {
	var deleted models.Term
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

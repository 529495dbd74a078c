package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/norvalex/pizza-form/models"
)

// PersonRepository defines data access for Person documents.
type PersonRepository interface {
	FindAll(ctx context.Context) ([]models.Person, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Person, error)
	Create(ctx context.Context, person *models.Person) (*models.Person, error)
	Update(ctx context.Context, id primitive.ObjectID, person *models.Person) (*models.Person, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Person, error)
}

// MongoPersonRepository implements PersonRepository on a mongo
// collection.
type MongoPersonRepository struct {
	collection *mongo.Collection
}

// NewMongoPersonRepository creates a PersonRepository backed by the
// "persons" collection of db.
func NewMongoPersonRepository(db *mongo.Database) PersonRepository {
	return &MongoPersonRepository{collection: db.Collection("persons")}
}

func (r *MongoPersonRepository) FindAll(ctx context.Context) ([]models.Person, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	persons := []models.Person{}
	if err := cursor.All(ctx, &persons); err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *MongoPersonRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Person, error) {
	var person models.Person
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *MongoPersonRepository) Create(ctx context.Context, person *models.Person) (*models.Person, error) {
	result, err := r.collection.InsertOne(ctx, person)
	if err != nil {
		return nil, err
	}
	person.ID = result.InsertedID.(primitive.ObjectID)
	return person, nil
}

func (r *MongoPersonRepository) Update(ctx context.Context, id primitive.ObjectID, person *models.Person) (*models.Person, error) {
	person.ID = id
	replaceOptions := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated models.Person
	err := r.collection.FindOneAndReplace(ctx, bson.M{"_id": id}, person, replaceOptions).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoPersonRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Person, error) {
	var deleted models.Person
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

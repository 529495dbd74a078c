package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/norvalex/pizza-form/models"
)

// TenantRepository defines data access for Tenant documents.
type TenantRepository interface {
	FindAll(ctx context.Context) ([]models.Tenant, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tenant, error)
	Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error)
	Update(ctx context.Context, id primitive.ObjectID, tenant *models.Tenant) (*models.Tenant, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Tenant, error)
}

// MongoTenantRepository implements TenantRepository on a mongo
// collection.
type MongoTenantRepository struct {
	collection *mongo.Collection
}

// NewMongoTenantRepository creates a TenantRepository backed by the
// "tenants" collection of db.
func NewMongoTenantRepository(db *mongo.Database) TenantRepository {
	return &MongoTenantRepository{collection: db.Collection("tenants")}
}

func (r *MongoTenantRepository) FindAll(ctx context.Context) ([]models.Tenant, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tenants := []models.Tenant{}
	if err := cursor.All(ctx, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *MongoTenantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *MongoTenantRepository) Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error) {
	result, err := r.collection.InsertOne(ctx, tenant)
	if err != nil {
		return nil, err
	}
	tenant.ID = result.InsertedID.(primitive.ObjectID)
	return tenant, nil
}

func (r *MongoTenantRepository) Update(ctx context.Context, id primitive.ObjectID, tenant *models.Tenant) (*models.Tenant, error) {
	tenant.ID = id
	replaceOptions := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated models.Tenant
	err := r.collection.FindOneAndReplace(ctx, bson.M{"_id": id}, tenant, replaceOptions).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoTenantRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Tenant, error) {
	var deleted models.Tenant
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

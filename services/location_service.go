package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/norvalex/pizza-form/models"
	"github.com/norvalex/pizza-form/repository"
)

// LocationService is plain CRUD over Location records.
type LocationService interface {
	ListLocations(ctx context.Context) ([]models.Location, *ServiceError)
	GetLocation(ctx context.Context, id primitive.ObjectID) (*models.Location, *ServiceError)
	CreateLocation(ctx context.Context, req *models.LocationRequest) (*models.Location, *ServiceError)
	UpdateLocation(ctx context.Context, id primitive.ObjectID, req *models.LocationRequest) (*models.Location, *ServiceError)
	DeleteLocation(ctx context.Context, id primitive.ObjectID) (*models.Location, *ServiceError)
}

type locationServiceImpl struct {
	locations repository.LocationRepository
	logger    *zap.Logger
}

// NewLocationService creates a LocationService.
func NewLocationService(locations repository.LocationRepository, logger *zap.Logger) LocationService {
	return &locationServiceImpl{locations: locations, logger: logger}
}

func (s *locationServiceImpl) ListLocations(ctx context.Context) ([]models.Location, *ServiceError) {
	locations, err := s.locations.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list locations", zap.Error(err))
		return nil, errStore("Failed to fetch locations")
	}
	return locations, nil
}

func (s *locationServiceImpl) GetLocation(ctx context.Context, id primitive.ObjectID) (*models.Location, *ServiceError) {
	location, err := s.locations.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Location")
	}
	if err != nil {
		s.logger.Error("Failed to fetch location", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to fetch location")
	}
	return location, nil
}

func (s *locationServiceImpl) CreateLocation(ctx context.Context, req *models.LocationRequest) (*models.Location, *ServiceError) {
	location := &models.Location{Label: req.Label, Classes: req.Classes}
	created, err := s.locations.Create(ctx, location)
	if err != nil {
		s.logger.Error("Failed to create location", zap.Error(err))
		return nil, errStore("Failed to create location")
	}
	s.logger.Info("Location created", zap.String("id", created.ID.Hex()), zap.String("label", created.Label))
	return created, nil
}

func (s *locationServiceImpl) UpdateLocation(ctx context.Context, id primitive.ObjectID, req *models.LocationRequest) (*models.Location, *ServiceError) {
	location := &models.Location{Label: req.Label, Classes: req.Classes}
	updated, err := s.locations.Update(ctx, id, location)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Location")
	}
	if err != nil {
		s.logger.Error("Failed to update location", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to update location")
	}
	return updated, nil
}

func (s *locationServiceImpl) DeleteLocation(ctx context.Context, id primitive.ObjectID) (*models.Location, *ServiceError) {
	deleted, err := s.locations.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Location")
	}
	if err != nil {
		s.logger.Error("Failed to delete location", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to delete location")
	}
	return deleted, nil
}

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

// PersonService is plain CRUD over Person records.
type PersonService interface {
	ListPersons(ctx context.Context) ([]models.Person, *ServiceError)
	GetPerson(ctx context.Context, id primitive.ObjectID) (*models.Person, *ServiceError)
	CreatePerson(ctx context.Context, req *models.PersonRequest) (*models.Person, *ServiceError)
	UpdatePerson(ctx context.Context, id primitive.ObjectID, req *models.PersonRequest) (*models.Person, *ServiceError)
	DeletePerson(ctx context.Context, id primitive.ObjectID) (*models.Person, *ServiceError)
}

type personServiceImpl struct {
	persons repository.PersonRepository
	logger  *zap.Logger
}

// NewPersonService creates a PersonService.
func NewPersonService(persons repository.PersonRepository, logger *zap.Logger) PersonService {
	return &personServiceImpl{persons: persons, logger: logger}
}

func (s *personServiceImpl) ListPersons(ctx context.Context) ([]models.Person, *ServiceError) {
	persons, err := s.persons.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list persons", zap.Error(err))
		return nil, errStore("Failed to fetch persons")
	}
	return persons, nil
}

func (s *personServiceImpl) GetPerson(ctx context.Context, id primitive.ObjectID) (*models.Person, *ServiceError) {
	person, err := s.persons.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Person")
	}
	if err != nil {
		s.logger.Error("Failed to fetch person", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to fetch person")
	}
	return person, nil
}

func (s *personServiceImpl) CreatePerson(ctx context.Context, req *models.PersonRequest) (*models.Person, *ServiceError) {
	person := newPerson(req)
	created, err := s.persons.Create(ctx, person)
	if err != nil {
		s.logger.Error("Failed to create person", zap.Error(err))
		return nil, errStore("Failed to create person")
	}
	s.logger.Info("Person created", zap.String("id", created.ID.Hex()))
	return created, nil
}

func (s *personServiceImpl) UpdatePerson(ctx context.Context, id primitive.ObjectID, req *models.PersonRequest) (*models.Person, *ServiceError) {
	person := newPerson(req)
	updated, err := s.persons.Update(ctx, id, person)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Person")
	}
	if err != nil {
		s.logger.Error("Failed to update person", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to update person")
	}
	return updated, nil
}

func (s *personServiceImpl) DeletePerson(ctx context.Context, id primitive.ObjectID) (*models.Person, *ServiceError) {
	deleted, err := s.persons.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Person")
	}
	if err != nil {
		s.logger.Error("Failed to delete person", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to delete person")
	}
	return deleted, nil
}

func newPerson(req *models.PersonRequest) *models.Person {
	return &models.Person{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Location:       req.Location,
		Class:          req.Class,
		NumberOfSlices: *req.NumberOfSlices,
	}
}

package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/norvalex/pizza-form/models"
	"github.com/norvalex/pizza-form/repository"
)

// dateLayout is the calendar-day format accepted for term dates.
const dateLayout = "2006-01-02"

// TermService composes Term records: location ids are resolved and
// embedded as frozen snapshots at creation time.
type TermService interface {
	ListTerms(ctx context.Context) ([]models.TermResponse, *ServiceError)
	GetTerm(ctx context.Context, id primitive.ObjectID) (*models.TermResponse, *ServiceError)
	CreateTerm(ctx context.Context, req *models.TermRequest) (*models.TermResponse, *ServiceError)
	UpdateTerm(ctx context.Context, id primitive.ObjectID, req *models.TermRequest) (*models.TermResponse, *ServiceError)
	DeleteTerm(ctx context.Context, id primitive.ObjectID) (*models.TermResponse, *ServiceError)
}

type termServiceImpl struct {
	terms     repository.TermRepository
	locations repository.LocationRepository
	logger    *zap.Logger
}

// NewTermService creates a TermService resolving location references
// against the given repository.
func NewTermService(terms repository.TermRepository, locations repository.LocationRepository, logger *zap.Logger) TermService {
	return &termServiceImpl{terms: terms, locations: locations, logger: logger}
}

func (s *termServiceImpl) ListTerms(ctx context.Context) ([]models.TermResponse, *ServiceError) {
	terms, err := s.terms.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list terms", zap.Error(err))
		return nil, errStore("Failed to fetch terms")
	}

	responses := make([]models.TermResponse, 0, len(terms))
	for i := range terms {
		responses = append(responses, *models.NewTermResponse(&terms[i]))
	}
	return responses, nil
}

func (s *termServiceImpl) GetTerm(ctx context.Context, id primitive.ObjectID) (*models.TermResponse, *ServiceError) {
	term, err := s.terms.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Term")
	}
	if err != nil {
		s.logger.Error("Failed to fetch term", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to fetch term")
	}
	return models.NewTermResponse(term), nil
}

func (s *termServiceImpl) CreateTerm(ctx context.Context, req *models.TermRequest) (*models.TermResponse, *ServiceError) {
	term, svcErr := s.compose(ctx, req)
	if svcErr != nil {
		return nil, svcErr
	}

	created, err := s.terms.Create(ctx, term)
	if err != nil {
		s.logger.Error("Failed to create term", zap.Error(err))
		return nil, errStore("Failed to create term")
	}

	s.logger.Info("Term created", zap.String("id", created.ID.Hex()), zap.String("label", created.Label))
	return models.NewTermResponse(created), nil
}

func (s *termServiceImpl) UpdateTerm(ctx context.Context, id primitive.ObjectID, req *models.TermRequest) (*models.TermResponse, *ServiceError) {
	term, svcErr := s.compose(ctx, req)
	if svcErr != nil {
		return nil, svcErr
	}

	updated, err := s.terms.Update(ctx, id, term)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Term")
	}
	if err != nil {
		s.logger.Error("Failed to update term", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to update term")
	}
	return models.NewTermResponse(updated), nil
}

func (s *termServiceImpl) DeleteTerm(ctx context.Context, id primitive.ObjectID) (*models.TermResponse, *ServiceError) {
	deleted, err := s.terms.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Term")
	}
	if err != nil {
		s.logger.Error("Failed to delete term", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to delete term")
	}
	return models.NewTermResponse(deleted), nil
}

// compose parses the dates and resolves every location id into a frozen
// snapshot. Lookups run sequentially so the first broken reference, in
// input order, decides the failure.
func (s *termServiceImpl) compose(ctx context.Context, req *models.TermRequest) (*models.Term, *ServiceError) {
	dates := make([]time.Time, 0, len(req.Dates))
	for _, raw := range req.Dates {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, &ServiceError{StatusCode: 400, Message: "Date format is YYYY-MM-DD"}
		}
		dates = append(dates, date)
	}

	snapshots := make([]models.LocationSnapshot, 0, len(req.Locations))
	for _, raw := range req.Locations {
		locationID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, errInvalidID("location")
		}
		location, err := s.locations.FindByID(ctx, locationID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errBrokenReference("Location")
		}
		if err != nil {
			s.logger.Error("Failed to resolve location", zap.String("locationId", raw), zap.Error(err))
			return nil, errStore("Failed to resolve location")
		}
		snapshots = append(snapshots, location.Snapshot())
	}

	return &models.Term{
		Label:         req.Label,
		PricePerSlice: *req.PricePerSlice,
		Dates:         dates,
		Locations:     snapshots,
	}, nil
}

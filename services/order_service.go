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

// OrderService composes Order aggregates from caller-supplied ids and
// serves them back with fresh derived values.
type OrderService interface {
	ListOrders(ctx context.Context) ([]models.OrderResponse, *ServiceError)
	GetOrder(ctx context.Context, id primitive.ObjectID) (*models.OrderResponse, *ServiceError)
	CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, *ServiceError)
	UpdateOrder(ctx context.Context, id primitive.ObjectID, req *models.OrderRequest) (*models.OrderResponse, *ServiceError)
	DeleteOrder(ctx context.Context, id primitive.ObjectID) (*models.OrderResponse, *ServiceError)
}

type orderServiceImpl struct {
	orders  repository.OrderRepository
	terms   repository.TermRepository
	persons repository.PersonRepository
	logger  *zap.Logger
}

// NewOrderService creates an OrderService resolving term and person
// references against the given repositories.
func NewOrderService(
	orders repository.OrderRepository,
	terms repository.TermRepository,
	persons repository.PersonRepository,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{orders: orders, terms: terms, persons: persons, logger: logger}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]models.OrderResponse, *ServiceError) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, errStore("Failed to fetch orders")
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *models.NewOrderResponse(&orders[i]))
	}
	return responses, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.OrderResponse, *ServiceError) {
	order, err := s.orders.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Order")
	}
	if err != nil {
		s.logger.Error("Failed to fetch order", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to fetch order")
	}
	return models.NewOrderResponse(order), nil
}

// CreateOrder resolves the term and every person, snapshots them into a
// new aggregate, attaches a freshly generated payment reference and
// persists the whole document in one write. A broken reference aborts
// the composition with nothing committed.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, *ServiceError) {
	order, svcErr := s.compose(ctx, req)
	if svcErr != nil {
		return nil, svcErr
	}

	reference, err := NewPaymentReference()
	if err != nil {
		s.logger.Error("Failed to generate payment reference", zap.Error(err))
		return nil, errStore("Failed to create order")
	}
	order.PaymentReference = reference

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, errStore("Failed to create order")
	}

	s.logger.Info("Order created",
		zap.String("id", created.ID.Hex()),
		zap.String("paymentReference", created.PaymentReference),
		zap.Int("persons", len(created.Persons)),
	)
	return models.NewOrderResponse(created), nil
}

// UpdateOrder re-runs the full resolution against the current term and
// person records and replaces the embedded snapshots. The payment
// reference generated at creation is preserved so it stays stable for
// the lifetime of the order.
func (s *orderServiceImpl) UpdateOrder(ctx context.Context, id primitive.ObjectID, req *models.OrderRequest) (*models.OrderResponse, *ServiceError) {
	existing, err := s.orders.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Order")
	}
	if err != nil {
		s.logger.Error("Failed to fetch order", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to update order")
	}

	order, svcErr := s.compose(ctx, req)
	if svcErr != nil {
		return nil, svcErr
	}
	order.PaymentReference = existing.PaymentReference

	updated, err := s.orders.Update(ctx, id, order)
	if err != nil {
		s.logger.Error("Failed to update order", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to update order")
	}
	return models.NewOrderResponse(updated), nil
}

func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id primitive.ObjectID) (*models.OrderResponse, *ServiceError) {
	deleted, err := s.orders.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Order")
	}
	if err != nil {
		s.logger.Error("Failed to delete order", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to delete order")
	}
	return models.NewOrderResponse(deleted), nil
}

// compose resolves the request ids and builds the unpersisted aggregate.
// Person lookups run sequentially so the first broken reference, in
// input order, decides the failure. Duplicate person ids are allowed
// and preserved.
func (s *orderServiceImpl) compose(ctx context.Context, req *models.OrderRequest) (*models.Order, *ServiceError) {
	termID, err := primitive.ObjectIDFromHex(req.TermID)
	if err != nil {
		return nil, errInvalidID("term")
	}
	term, err := s.terms.FindByID(ctx, termID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errBrokenReference("Term")
	}
	if err != nil {
		s.logger.Error("Failed to resolve term", zap.String("termId", req.TermID), zap.Error(err))
		return nil, errStore("Failed to resolve term")
	}

	persons := make([]models.Person, 0, len(req.Persons))
	for _, raw := range req.Persons {
		personID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, errInvalidID("person")
		}
		person, err := s.persons.FindByID(ctx, personID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errBrokenReference("Person")
		}
		if err != nil {
			s.logger.Error("Failed to resolve person", zap.String("personId", raw), zap.Error(err))
			return nil, errStore("Failed to resolve person")
		}
		persons = append(persons, *person)
	}

	return &models.Order{
		Email:   req.Email,
		Persons: persons,
		Term:    term.Snapshot(),
	}, nil
}

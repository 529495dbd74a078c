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

// TenantService is plain CRUD over Tenant records.
type TenantService interface {
	ListTenants(ctx context.Context) ([]models.Tenant, *ServiceError)
	GetTenant(ctx context.Context, id primitive.ObjectID) (*models.Tenant, *ServiceError)
	CreateTenant(ctx context.Context, req *models.TenantRequest) (*models.Tenant, *ServiceError)
	UpdateTenant(ctx context.Context, id primitive.ObjectID, req *models.TenantRequest) (*models.Tenant, *ServiceError)
	DeleteTenant(ctx context.Context, id primitive.ObjectID) (*models.Tenant, *ServiceError)
}

type tenantServiceImpl struct {
	tenants repository.TenantRepository
	logger  *zap.Logger
}

// NewTenantService creates a TenantService.
func NewTenantService(tenants repository.TenantRepository, logger *zap.Logger) TenantService {
	return &tenantServiceImpl{tenants: tenants, logger: logger}
}

func (s *tenantServiceImpl) ListTenants(ctx context.Context) ([]models.Tenant, *ServiceError) {
	tenants, err := s.tenants.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list tenants", zap.Error(err))
		return nil, errStore("Failed to fetch tenants")
	}
	return tenants, nil
}

func (s *tenantServiceImpl) GetTenant(ctx context.Context, id primitive.ObjectID) (*models.Tenant, *ServiceError) {
	tenant, err := s.tenants.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Tenant")
	}
	if err != nil {
		s.logger.Error("Failed to fetch tenant", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to fetch tenant")
	}
	return tenant, nil
}

func (s *tenantServiceImpl) CreateTenant(ctx context.Context, req *models.TenantRequest) (*models.Tenant, *ServiceError) {
	tenant := newTenant(req)
	created, err := s.tenants.Create(ctx, tenant)
	if err != nil {
		s.logger.Error("Failed to create tenant", zap.Error(err))
		return nil, errStore("Failed to create tenant")
	}
	s.logger.Info("Tenant created", zap.String("id", created.ID.Hex()))
	return created, nil
}

func (s *tenantServiceImpl) UpdateTenant(ctx context.Context, id primitive.ObjectID, req *models.TenantRequest) (*models.Tenant, *ServiceError) {
	tenant := newTenant(req)
	updated, err := s.tenants.Update(ctx, id, tenant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Tenant")
	}
	if err != nil {
		s.logger.Error("Failed to update tenant", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to update tenant")
	}
	return updated, nil
}

func (s *tenantServiceImpl) DeleteTenant(ctx context.Context, id primitive.ObjectID) (*models.Tenant, *ServiceError) {
	deleted, err := s.tenants.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound("Tenant")
	}
	if err != nil {
		s.logger.Error("Failed to delete tenant", zap.String("id", id.Hex()), zap.Error(err))
		return nil, errStore("Failed to delete tenant")
	}
	return deleted, nil
}

func newTenant(req *models.TenantRequest) *models.Tenant {
	return &models.Tenant{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}

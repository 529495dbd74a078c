package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/norvalex/pizza-form/models"
	"github.com/norvalex/pizza-form/repository"
)

// AuthService registers accounts and exchanges credentials for signed
// tokens.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, *ServiceError)
	Login(ctx context.Context, req *models.LoginRequest) (string, *ServiceError)
}

type authServiceImpl struct {
	users     repository.UserRepository
	jwtSecret []byte
	logger    *zap.Logger
}

// NewAuthService creates an AuthService signing tokens with jwtSecret.
func NewAuthService(users repository.UserRepository, jwtSecret string, logger *zap.Logger) AuthService {
	return &authServiceImpl{users: users, jwtSecret: []byte(jwtSecret), logger: logger}
}

func (s *authServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, *ServiceError) {
	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "User already registered"}
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, errStore("Failed to register user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errStore("Failed to register user")
	}

	user := &models.User{Name: req.Name, Email: req.Email, Password: string(hash)}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, errStore("Failed to register user")
	}

	s.logger.Info("User registered", zap.String("id", created.ID.Hex()))
	return created, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (string, *ServiceError) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid email or password"}
	}
	if err != nil {
		s.logger.Error("Failed to look up user", zap.Error(err))
		return "", errStore("Failed to log in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid email or password"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return "", errStore("Failed to log in")
	}
	return token, nil
}

// generateToken signs a 24h HMAC token carrying the user id and admin
// flag.
func (s *authServiceImpl) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"isAdmin": user.IsAdmin,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"retail-store/internal/data/entity"
	"retail-store/internal/data/repository"
	"retail-store/internal/dto/request"
	"retail-store/internal/dto/response"
	"retail-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. One login namespace covers administrators and customers
	user, err := s.repo.AttemptSignIn(ctx, req.Username, req.Password)
	if err != nil {
		s.log.Error("Failed to sign in", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to sign in")
	}
	if user == nil {
		s.log.Warn("Invalid credentials", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 3. Create session
	session, err := s.createSession(ctx, user.GetID())
	if err != nil {
		s.log.Error("Failed to create session",
			zap.Error(err), zap.String("user_id", user.GetID().String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.GetID().String()),
		zap.String("username", user.GetUsername()))

	return s.convertAuthResponse(user, session), nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Resolve the chosen default location, if any
	var defaultLocation *entity.Location
	if req.DefaultLocationID != nil {
		var err error
		defaultLocation, err = s.repo.Location.FindByID(ctx, *req.DefaultLocationID)
		if err != nil {
			s.log.Error("Failed to resolve default location",
				zap.Error(err), zap.String("location_id", req.DefaultLocationID.String()))
			return nil, fmt.Errorf("failed to resolve location")
		}
		if defaultLocation == nil {
			return nil, fmt.Errorf("location not found")
		}
	}

	// 3. Create customer entity
	now := time.Now()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:        req.Username,
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		DefaultLocation: defaultLocation,
	}

	// 4. Guarded insert: false means the username is taken
	ok, err := s.repo.AttemptAddCustomer(ctx, customer)
	if err != nil {
		s.log.Error("Failed to create customer", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to create account")
	}
	if !ok {
		s.log.Warn("Username already taken", zap.String("username", req.Username))
		return nil, fmt.Errorf("username already taken")
	}

	// 5. Auto login after register
	session, err := s.createSession(ctx, customer.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", customer.ID.String()))
		// Continue without session
	}

	s.log.Info("Customer registered",
		zap.String("user_id", customer.ID.String()),
		zap.String("username", customer.Username))

	return s.convertAuthResponse(customer, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	// 1. Parse token
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.String("token", token), zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	// 2. Revoke session
	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err), zap.String("token", token))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out", zap.String("token", token))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *authService) convertAuthResponse(user entity.User, session *entity.Session) *response.AuthResponse {
	resp := &response.AuthResponse{
		UserID:   user.GetID().String(),
		Username: user.GetUsername(),
		Role:     response.RoleCustomer,
	}
	if _, isAdmin := user.(*entity.Administrator); isAdmin {
		resp.Role = response.RoleAdministrator
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}

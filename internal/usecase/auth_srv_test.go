package usecase

import (
	"context"
	"testing"
	"time"

	"retail-store/internal/data/entity"
	"retail-store/internal/data/repository"
	"retail-store/internal/dto/request"
	"retail-store/internal/dto/response"
	"retail-store/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type AuthServiceSuite struct {
	suite.Suite
	repo    *repository.Repository
	service AuthService
	ctx     context.Context
}

func (s *AuthServiceSuite) SetupTest() {
	s.repo = repository.NewMemoryRepository()
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	s.service = NewAuthService(s.repo, config, zap.NewNop())
	s.ctx = context.Background()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) seedAdministrator(username, password string) *entity.Administrator {
	admin := &entity.Administrator{
		Username:    username,
		Password:    password,
		FirstName:   "Admin",
		LastName:    "User",
		AccessLevel: entity.AccessLevelEdit,
	}
	admin.ID = uuid.New()
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	s.Require().NoError(s.repo.Administrator.Create(s.ctx, admin))
	return admin
}

func (s *AuthServiceSuite) register(username string) *response.AuthResponse {
	resp, err := s.service.Register(s.ctx, &request.RegisterRequest{
		Username:  username,
		Password:  "SuperSecret1",
		FirstName: "First",
		LastName:  "Last",
	})
	s.Require().NoError(err)
	return resp
}

// TestRegister verifies customer signup, duplicate handling, and the
// optional default location.
func (s *AuthServiceSuite) TestRegister() {
	s.Run("registers and auto-logs-in", func() {
		resp := s.register("newuser1")
		s.Equal(response.RoleCustomer, resp.Role)
		s.NotEmpty(resp.Token)
		s.True(resp.ExpiresAt.After(time.Now()))

		session, err := s.repo.Session.FindValidSession(s.ctx, resp.Token)
		s.Require().NoError(err)
		s.Require().NotNil(session)
	})

	s.Run("rejects a taken username", func() {
		s.register("takenname")

		_, err := s.service.Register(s.ctx, &request.RegisterRequest{
			Username:  "takenname",
			Password:  "SuperSecret1",
			FirstName: "First",
			LastName:  "Last",
		})
		s.Require().Error(err)
		s.Contains(err.Error(), "already taken")
	})

	s.Run("rejects a username held by an administrator", func() {
		s.seedAdministrator("adminname", "pw")

		_, err := s.service.Register(s.ctx, &request.RegisterRequest{
			Username:  "adminname",
			Password:  "SuperSecret1",
			FirstName: "First",
			LastName:  "Last",
		})
		s.Require().Error(err)
		s.Contains(err.Error(), "already taken")
	})

	s.Run("stores the chosen default location", func() {
		location := &entity.Location{Name: "Location 1"}
		location.ID = uuid.New()
		s.Require().NoError(s.repo.Location.Create(s.ctx, location))

		resp, err := s.service.Register(s.ctx, &request.RegisterRequest{
			Username:          "locateduser",
			Password:          "SuperSecret1",
			FirstName:         "First",
			LastName:          "Last",
			DefaultLocationID: &location.ID,
		})
		s.Require().NoError(err)

		customer, err := s.repo.Customer.FindByID(s.ctx, uuid.MustParse(resp.UserID))
		s.Require().NoError(err)
		s.Require().NotNil(customer.DefaultLocation)
		s.Equal(location.ID, customer.DefaultLocation.ID)
	})

	s.Run("rejects an unknown default location", func() {
		missing := uuid.New()
		_, err := s.service.Register(s.ctx, &request.RegisterRequest{
			Username:          "lostuser1",
			Password:          "SuperSecret1",
			FirstName:         "First",
			LastName:          "Last",
			DefaultLocationID: &missing,
		})
		s.Require().Error(err)
		s.Contains(err.Error(), "not found")
	})

	s.Run("rejects invalid input", func() {
		_, err := s.service.Register(s.ctx, &request.RegisterRequest{
			Username:  "x", // too short
			Password:  "short",
			FirstName: "First",
			LastName:  "Last",
		})
		s.Require().Error(err)
		s.Contains(err.Error(), "validation failed")
	})
}

// TestLogin verifies the shared login namespace and role reporting.
func (s *AuthServiceSuite) TestLogin() {
	s.seedAdministrator("admin", "cLev3rPas$word")
	s.register("customer1")

	s.Run("administrator login reports the administrator role", func() {
		resp, err := s.service.Login(s.ctx, &request.LoginRequest{
			Username: "admin",
			Password: "cLev3rPas$word",
		})
		s.Require().NoError(err)
		s.Equal(response.RoleAdministrator, resp.Role)
		s.NotEmpty(resp.Token)
	})

	s.Run("customer login reports the customer role", func() {
		resp, err := s.service.Login(s.ctx, &request.LoginRequest{
			Username: "customer1",
			Password: "SuperSecret1",
		})
		s.Require().NoError(err)
		s.Equal(response.RoleCustomer, resp.Role)
	})

	s.Run("wrong password is rejected", func() {
		_, err := s.service.Login(s.ctx, &request.LoginRequest{
			Username: "admin",
			Password: "wrong",
		})
		s.Require().Error(err)
		s.Contains(err.Error(), "invalid credentials")
	})

	s.Run("unknown username is rejected the same way", func() {
		_, err := s.service.Login(s.ctx, &request.LoginRequest{
			Username: "nobody",
			Password: "whatever",
		})
		s.Require().Error(err)
		s.Contains(err.Error(), "invalid credentials")
	})
}

// TestLogout verifies session revocation through the service.
func (s *AuthServiceSuite) TestLogout() {
	resp := s.register("customer1")

	s.Run("revokes the session", func() {
		s.Require().NoError(s.service.Logout(s.ctx, resp.Token))

		session, err := s.repo.Session.FindValidSession(s.ctx, resp.Token)
		s.Require().NoError(err)
		s.Nil(session)
	})

	s.Run("rejects a malformed token", func() {
		err := s.service.Logout(s.ctx, "not-a-uuid")
		s.Require().Error(err)
		s.Contains(err.Error(), "invalid token format")
	})
}

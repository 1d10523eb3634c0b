package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"retail-store/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RepositorySuite struct {
	suite.Suite
	repo *Repository
	ctx  context.Context
}

func (s *RepositorySuite) SetupTest() {
	s.repo = NewMemoryRepository()
	s.ctx = context.Background()
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) newAdministrator(username, password string) *entity.Administrator {
	return &entity.Administrator{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:    username,
		Password:    password,
		FirstName:   "Admin",
		LastName:    "User",
		AccessLevel: entity.AccessLevelEdit,
	}
}

func (s *RepositorySuite) newCustomer(username, password string) *entity.Customer {
	return &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:  username,
		Password:  password,
		FirstName: "Some",
		LastName:  "Customer",
	}
}

func (s *RepositorySuite) newLocation(name string) *entity.Location {
	location := &entity.Location{Name: name}
	location.ID = uuid.New()
	location.CreatedAt = time.Now()
	location.UpdatedAt = location.CreatedAt
	return location
}

// TestAttemptSignIn verifies exact-match credential checks across both
// account collections.
func (s *RepositorySuite) TestAttemptSignIn() {
	admin := s.newAdministrator("admin", "cLev3rPas$word")
	customer := s.newCustomer("customer1", "CustomerPass99")
	s.Require().NoError(s.repo.Administrator.Create(s.ctx, admin))
	s.Require().NoError(s.repo.Customer.Create(s.ctx, customer))

	s.Run("matches an administrator", func() {
		user, err := s.repo.AttemptSignIn(s.ctx, "admin", "cLev3rPas$word")
		s.Require().NoError(err)
		s.Require().NotNil(user)
		s.Equal(admin.ID, user.GetID())
		s.IsType(&entity.Administrator{}, user)
	})

	s.Run("matches a customer", func() {
		user, err := s.repo.AttemptSignIn(s.ctx, "customer1", "CustomerPass99")
		s.Require().NoError(err)
		s.Require().NotNil(user)
		s.Equal(customer.ID, user.GetID())
		s.IsType(&entity.Customer{}, user)
	})

	s.Run("wrong password yields absence, not an error", func() {
		user, err := s.repo.AttemptSignIn(s.ctx, "admin", "wrong")
		s.Require().NoError(err)
		s.Nil(user)
	})

	s.Run("username is case sensitive", func() {
		user, err := s.repo.AttemptSignIn(s.ctx, "Admin", "cLev3rPas$word")
		s.Require().NoError(err)
		s.Nil(user)
	})

	s.Run("unknown username yields absence", func() {
		user, err := s.repo.AttemptSignIn(s.ctx, "nobody", "whatever")
		s.Require().NoError(err)
		s.Nil(user)
	})
}

// TestUsernameExists verifies the shared login namespace: a name taken by
// either collection is taken for both.
func (s *RepositorySuite) TestUsernameExists() {
	s.Require().NoError(s.repo.Administrator.Create(s.ctx, s.newAdministrator("admin", "pw")))
	s.Require().NoError(s.repo.Customer.Create(s.ctx, s.newCustomer("customer1", "pw")))

	s.Run("administrator name is taken", func() {
		taken, err := s.repo.UsernameExists(s.ctx, "admin")
		s.Require().NoError(err)
		s.True(taken)
	})

	s.Run("customer name is taken", func() {
		taken, err := s.repo.UsernameExists(s.ctx, "customer1")
		s.Require().NoError(err)
		s.True(taken)
	})

	s.Run("fresh name is free", func() {
		taken, err := s.repo.UsernameExists(s.ctx, "newuser")
		s.Require().NoError(err)
		s.False(taken)
	})
}

// TestAttemptAddCustomer verifies the guarded insert and its duplicate
// handling.
func (s *RepositorySuite) TestAttemptAddCustomer() {
	s.Run("inserts when the username is free", func() {
		customer := s.newCustomer("freshname", "pw")
		ok, err := s.repo.AttemptAddCustomer(s.ctx, customer)
		s.Require().NoError(err)
		s.True(ok)

		found, err := s.repo.Customer.FindByID(s.ctx, customer.ID)
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal("freshname", found.Username)
	})

	s.Run("rejects a username held by a customer", func() {
		s.Require().NoError(s.repo.Customer.Create(s.ctx, s.newCustomer("heldname", "pw")))

		dup := s.newCustomer("heldname", "other")
		ok, err := s.repo.AttemptAddCustomer(s.ctx, dup)
		s.Require().NoError(err)
		s.False(ok)

		found, err := s.repo.Customer.FindByID(s.ctx, dup.ID)
		s.Require().NoError(err)
		s.Nil(found)
	})

	s.Run("rejects a username held by an administrator", func() {
		s.Require().NoError(s.repo.Administrator.Create(s.ctx, s.newAdministrator("adminname", "pw")))

		dup := s.newCustomer("adminname", "other")
		ok, err := s.repo.AttemptAddCustomer(s.ctx, dup)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("concurrent inserts of the same username admit exactly one", func() {
		const attempts = 16
		var wg sync.WaitGroup
		results := make(chan bool, attempts)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := s.repo.AttemptAddCustomer(s.ctx, s.newCustomer("racedname", "pw"))
				s.NoError(err)
				results <- ok
			}()
		}
		wg.Wait()
		close(results)

		admitted := 0
		for ok := range results {
			if ok {
				admitted++
			}
		}
		s.Equal(1, admitted)
	})
}

// TestUserRoleChecks verifies the id-based membership probes.
func (s *RepositorySuite) TestUserRoleChecks() {
	admin := s.newAdministrator("admin", "pw")
	customer := s.newCustomer("customer1", "pw")
	s.Require().NoError(s.repo.Administrator.Create(s.ctx, admin))
	s.Require().NoError(s.repo.Customer.Create(s.ctx, customer))

	isCustomer, err := s.repo.UserIsCustomer(s.ctx, customer.ID)
	s.Require().NoError(err)
	s.True(isCustomer)

	isCustomer, err = s.repo.UserIsCustomer(s.ctx, admin.ID)
	s.Require().NoError(err)
	s.False(isCustomer)

	isAdmin, err := s.repo.UserIsAdministrator(s.ctx, admin.ID)
	s.Require().NoError(err)
	s.True(isAdmin)

	isAdmin, err = s.repo.UserIsAdministrator(s.ctx, uuid.New())
	s.Require().NoError(err)
	s.False(isAdmin)
}

// TestDefaultLocation verifies the earliest-created rule.
func (s *RepositorySuite) TestDefaultLocation() {
	s.Run("empty store has no default", func() {
		location, err := s.repo.DefaultLocation(s.ctx)
		s.Require().NoError(err)
		s.Nil(location)
	})

	s.Run("first created wins regardless of name order", func() {
		second := s.newLocation("Location 2")
		first := s.newLocation("Location 1")
		s.Require().NoError(s.repo.Location.Create(s.ctx, second))
		s.Require().NoError(s.repo.Location.Create(s.ctx, first))

		location, err := s.repo.DefaultLocation(s.ctx)
		s.Require().NoError(err)
		s.Require().NotNil(location)
		s.Equal(second.ID, location.ID)
	})
}

// TestSessions verifies token validation and revocation.
func (s *RepositorySuite) TestSessions() {
	newSession := func(expiresAt time.Time) *entity.Session {
		return &entity.Session{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			UserID:     uuid.New(),
			Token:      uuid.New(),
			ExpiresAt:  expiresAt,
		}
	}

	s.Run("finds a live session", func() {
		session := newSession(time.Now().Add(time.Hour))
		s.Require().NoError(s.repo.Session.Create(s.ctx, session))

		found, err := s.repo.Session.FindValidSession(s.ctx, session.Token.String())
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal(session.UserID, found.UserID)
	})

	s.Run("expired session is invalid", func() {
		session := newSession(time.Now().Add(-time.Minute))
		s.Require().NoError(s.repo.Session.Create(s.ctx, session))

		found, err := s.repo.Session.FindValidSession(s.ctx, session.Token.String())
		s.Require().NoError(err)
		s.Nil(found)
	})

	s.Run("revoked session is invalid and cannot be revoked twice", func() {
		session := newSession(time.Now().Add(time.Hour))
		s.Require().NoError(s.repo.Session.Create(s.ctx, session))
		s.Require().NoError(s.repo.Session.Revoke(s.ctx, session.Token.String()))

		found, err := s.repo.Session.FindValidSession(s.ctx, session.Token.String())
		s.Require().NoError(err)
		s.Nil(found)

		s.Error(s.repo.Session.Revoke(s.ctx, session.Token.String()))
	})

	s.Run("revoking all user sessions leaves other users alone", func() {
		userID := uuid.New()
		mine := newSession(time.Now().Add(time.Hour))
		mine.UserID = userID
		other := newSession(time.Now().Add(time.Hour))
		s.Require().NoError(s.repo.Session.Create(s.ctx, mine))
		s.Require().NoError(s.repo.Session.Create(s.ctx, other))

		s.Require().NoError(s.repo.Session.RevokeAllUserSessions(s.ctx, userID))

		found, err := s.repo.Session.FindValidSession(s.ctx, mine.Token.String())
		s.Require().NoError(err)
		s.Nil(found)

		found, err = s.repo.Session.FindValidSession(s.ctx, other.Token.String())
		s.Require().NoError(err)
		s.NotNil(found)
	})
}

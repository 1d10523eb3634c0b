package repository

import (
	"context"
	"errors"

	"retail-store/internal/data/entity"
	"retail-store/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository struct {
	Administrator AdministratorRepository
	Customer      CustomerRepository
	Product       ProductRepository
	Location      LocationRepository
	Inventory     InventoryRepository
	Order         OrderRepository
	OrderLine     OrderLineRepository
	Session       SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Administrator: NewAdministratorRepository(db, log),
		Customer:      NewCustomerRepository(db, log),
		Product:       NewProductRepository(db, log),
		Location:      NewLocationRepository(db, log),
		Inventory:     NewInventoryRepository(db, log),
		Order:         NewOrderRepository(db, log),
		OrderLine:     NewOrderLineRepository(db, log),
		Session:       NewSessionRepository(db, log),
	}
}

// AttemptSignIn searches administrators first, then customers, for an exact
// case-sensitive username and password match. Both collections share one
// login namespace. A miss is (nil, nil), never an error.
func (r *Repository) AttemptSignIn(ctx context.Context, username, password string) (entity.User, error) {
	admin, err := r.Administrator.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin != nil && admin.Password == password {
		return admin, nil
	}

	customer, err := r.Customer.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if customer != nil && customer.Password == password {
		return customer, nil
	}

	return nil, nil
}

// UsernameExists reports whether the username is taken by any administrator
// or customer.
func (r *Repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	taken, err := r.Administrator.ExistsByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if taken {
		return true, nil
	}
	return r.Customer.ExistsByUsername(ctx, username)
}

// AttemptAddCustomer inserts the customer only if its username is free at
// check time. Check-then-insert is not atomic across callers; the store's
// uniqueness constraint is the backstop, and a constraint rejection is
// reported the same way as a failed check.
func (r *Repository) AttemptAddCustomer(ctx context.Context, customer *entity.Customer) (bool, error) {
	exists, err := r.UsernameExists(ctx, customer.Username)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if err := r.Customer.Create(ctx, customer); err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UserIsCustomer reports whether the id belongs to a persisted customer.
func (r *Repository) UserIsCustomer(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.Customer.ExistsByID(ctx, id)
}

// UserIsAdministrator reports whether the id belongs to a persisted
// administrator.
func (r *Repository) UserIsAdministrator(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.Administrator.ExistsByID(ctx, id)
}

// DefaultLocation returns the store's designated fallback location, used to
// repair customers that lack one.
func (r *Repository) DefaultLocation(ctx context.Context) (*entity.Location, error) {
	return r.Location.FindDefault(ctx)
}

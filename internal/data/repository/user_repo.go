package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"retail-store/internal/data/entity"
	"retail-store/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type AdministratorRepository interface {
	Create(ctx context.Context, admin *entity.Administrator) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Administrator, error)
	FindByUsername(ctx context.Context, username string) (*entity.Administrator, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByUsername(ctx context.Context, username string) (*entity.Customer, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type administratorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdministratorRepository(db database.PgxIface, log *zap.Logger) AdministratorRepository {
	return &administratorRepository{
		db:  db,
		log: log.With(zap.String("repository", "administrator")),
	}
}

// Create inserts a new administrator record into the database
func (ar *administratorRepository) Create(ctx context.Context, admin *entity.Administrator) error {
	query := `
		INSERT INTO administrators (id, username, password, first_name, last_name,
		                            access_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ar.db.Exec(ctx, query,
		admin.ID,
		admin.Username,
		admin.Password,
		admin.FirstName,
		admin.LastName,
		admin.AccessLevel,
		admin.CreatedAt,
		admin.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		ar.log.Error("Failed to create administrator",
			zap.Error(err),
			zap.String("username", admin.Username),
		)
		return fmt.Errorf("create administrator %s: %w", admin.Username, err)
	}

	return nil
}

func (ar *administratorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Administrator, error) {
	query := `
		SELECT id, username, password, first_name, last_name, access_level,
		       created_at, updated_at
		FROM administrators
		WHERE id = $1
	`

	var admin entity.Administrator
	err := ar.db.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Password,
		&admin.FirstName,
		&admin.LastName,
		&admin.AccessLevel,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find administrator by ID",
			zap.Error(err),
			zap.String("administrator_id", id.String()),
		)
		return nil, fmt.Errorf("find administrator by ID %s: %w", id.String(), err)
	}

	return &admin, nil
}

func (ar *administratorRepository) FindByUsername(ctx context.Context, username string) (*entity.Administrator, error) {
	query := `
		SELECT id, username, password, first_name, last_name, access_level,
		       created_at, updated_at
		FROM administrators
		WHERE username = $1
	`

	var admin entity.Administrator
	err := ar.db.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Password,
		&admin.FirstName,
		&admin.LastName,
		&admin.AccessLevel,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find administrator by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find administrator by username %s: %w", username, err)
	}

	return &admin, nil
}

func (ar *administratorRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM administrators WHERE id = $1)`

	var exists bool
	if err := ar.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		ar.log.Error("Failed to check administrator existence",
			zap.Error(err),
			zap.String("administrator_id", id.String()),
		)
		return false, fmt.Errorf("check administrator %s: %w", id.String(), err)
	}

	return exists, nil
}

func (ar *administratorRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM administrators WHERE username = $1)`

	var exists bool
	if err := ar.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		ar.log.Error("Failed to check administrator username",
			zap.Error(err),
			zap.String("username", username),
		)
		return false, fmt.Errorf("check administrator username %s: %w", username, err)
	}

	return exists, nil
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

// Create inserts a new customer record into the database
func (cr *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, username, password, first_name, last_name,
		                       default_location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	var defaultLocationID *uuid.UUID
	if customer.DefaultLocation != nil {
		defaultLocationID = &customer.DefaultLocation.ID
	}

	_, err := cr.db.Exec(ctx, query,
		customer.ID,
		customer.Username,
		customer.Password,
		customer.FirstName,
		customer.LastName,
		defaultLocationID,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		cr.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("username", customer.Username),
		)
		return fmt.Errorf("create customer %s: %w", customer.Username, err)
	}

	return nil
}

func (cr *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := customerSelect + ` WHERE c.id = $1`

	customer, err := scanCustomer(cr.db.QueryRow(ctx, query, id))
	if err != nil {
		cr.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return customer, nil
}

func (cr *customerRepository) FindByUsername(ctx context.Context, username string) (*entity.Customer, error) {
	query := customerSelect + ` WHERE c.username = $1`

	customer, err := scanCustomer(cr.db.QueryRow(ctx, query, username))
	if err != nil {
		cr.log.Error("Failed to find customer by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find customer by username %s: %w", username, err)
	}

	return customer, nil
}

func (cr *customerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`

	var exists bool
	if err := cr.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		cr.log.Error("Failed to check customer existence",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return false, fmt.Errorf("check customer %s: %w", id.String(), err)
	}

	return exists, nil
}

func (cr *customerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE username = $1)`

	var exists bool
	if err := cr.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		cr.log.Error("Failed to check customer username",
			zap.Error(err),
			zap.String("username", username),
		)
		return false, fmt.Errorf("check customer username %s: %w", username, err)
	}

	return exists, nil
}

// customerSelect joins the default location so the reference comes back
// materialized. The join is LEFT because the location may be unset.
const customerSelect = `
	SELECT c.id, c.username, c.password, c.first_name, c.last_name,
	       c.created_at, c.updated_at,
	       l.id, l.name, l.created_at, l.updated_at
	FROM customers c
	LEFT JOIN locations l ON l.id = c.default_location_id
`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var customer entity.Customer
	var locID *uuid.UUID
	var locName *string
	var locCreatedAt, locUpdatedAt *time.Time

	err := row.Scan(
		&customer.ID,
		&customer.Username,
		&customer.Password,
		&customer.FirstName,
		&customer.LastName,
		&customer.CreatedAt,
		&customer.UpdatedAt,
		&locID,
		&locName,
		&locCreatedAt,
		&locUpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if locID != nil {
		customer.DefaultLocation = &entity.Location{
			Base: entity.Base{
				ID:        *locID,
				CreatedAt: *locCreatedAt,
				UpdatedAt: *locUpdatedAt,
			},
			Name: *locName,
		}
	}

	return &customer, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

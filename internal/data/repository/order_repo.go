package repository

import (
	"context"
	"fmt"
	"time"

	"retail-store/internal/data/entity"
	"retail-store/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
}

type OrderLineRepository interface {
	Create(ctx context.Context, line *entity.OrderLine) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderLine, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderLine, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (or *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_date, completed, customer_id,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var customerID *uuid.UUID
	if order.Customer != nil {
		customerID = &order.Customer.ID
	}

	_, err := or.db.Exec(ctx, query,
		order.ID,
		order.OrderDate,
		order.Completed,
		customerID,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		or.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return fmt.Errorf("create order %s: %w", order.ID.String(), err)
	}

	return nil
}

// orderSelect joins the customer reference; LEFT because guest orders carry
// none.
const orderSelect = `
	SELECT o.id, o.order_date, o.completed, o.created_at, o.updated_at,
	       c.id, c.username, c.password, c.first_name, c.last_name,
	       c.created_at, c.updated_at
	FROM orders o
	LEFT JOIN customers c ON c.id = o.customer_id
`

func (or *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := orderSelect + ` WHERE o.id = $1`

	order, err := scanOrder(or.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		or.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return order, nil
}

func (or *orderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	query := orderSelect + ` WHERE o.customer_id = $1 ORDER BY o.order_date DESC`

	rows, err := or.db.Query(ctx, query, customerID)
	if err != nil {
		or.log.Error("Failed to get orders by customer",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find orders by customer %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			or.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (or *orderRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE orders
		SET completed = TRUE, updated_at = NOW()
		WHERE id = $1
	`

	result, err := or.db.Exec(ctx, query, id)
	if err != nil {
		or.log.Error("Failed to mark order completed",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("mark order %s completed: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	return nil
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	var order entity.Order
	var custID *uuid.UUID
	var custUsername, custPassword, custFirstName, custLastName *string
	var custCreatedAt, custUpdatedAt *time.Time

	err := row.Scan(
		&order.ID,
		&order.OrderDate,
		&order.Completed,
		&order.CreatedAt,
		&order.UpdatedAt,
		&custID,
		&custUsername,
		&custPassword,
		&custFirstName,
		&custLastName,
		&custCreatedAt,
		&custUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if custID != nil {
		order.Customer = &entity.Customer{
			Base: entity.Base{
				ID:        *custID,
				CreatedAt: *custCreatedAt,
				UpdatedAt: *custUpdatedAt,
			},
			Username:  *custUsername,
			Password:  *custPassword,
			FirstName: *custFirstName,
			LastName:  *custLastName,
		}
	}

	return &order, nil
}

type orderLineRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderLineRepository(db database.PgxIface, log *zap.Logger) OrderLineRepository {
	return &orderLineRepository{
		db:  db,
		log: log.With(zap.String("repository", "order_line")),
	}
}

func (olr *orderLineRepository) Create(ctx context.Context, line *entity.OrderLine) error {
	query := `
		INSERT INTO order_lines (id, quantity, order_id, inventory_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	var orderID, inventoryID *uuid.UUID
	if line.Order != nil {
		orderID = &line.Order.ID
	}
	if line.Inventory != nil {
		inventoryID = &line.Inventory.ID
	}

	_, err := olr.db.Exec(ctx, query,
		line.ID,
		line.Quantity,
		orderID,
		inventoryID,
		line.CreatedAt,
	)

	if err != nil {
		olr.log.Error("Failed to create order line",
			zap.Error(err),
			zap.String("order_line_id", line.ID.String()),
		)
		return fmt.Errorf("create order line %s: %w", line.ID.String(), err)
	}

	return nil
}

// orderLineSelect materializes the order and, when still present, the
// inventory with its product and location. Inventory may have been removed
// after the line was written, hence LEFT.
const orderLineSelect = `
	SELECT ol.id, ol.quantity, ol.created_at,
	       o.id, o.order_date, o.completed, o.created_at, o.updated_at,
	       i.id, i.quantity, i.created_at, i.updated_at,
	       p.id, p.name, p.price, p.description, p.created_at, p.updated_at,
	       l.id, l.name, l.created_at, l.updated_at
	FROM order_lines ol
	JOIN orders o ON o.id = ol.order_id
	LEFT JOIN inventories i ON i.id = ol.inventory_id
	LEFT JOIN products p ON p.id = i.product_id
	LEFT JOIN locations l ON l.id = i.location_id
`

func (olr *orderLineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderLine, error) {
	query := orderLineSelect + ` WHERE ol.id = $1`

	line, err := scanOrderLine(olr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		olr.log.Error("Failed to find order line by ID",
			zap.Error(err),
			zap.String("order_line_id", id.String()),
		)
		return nil, fmt.Errorf("find order line by ID %s: %w", id.String(), err)
	}

	return line, nil
}

func (olr *orderLineRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderLine, error) {
	query := orderLineSelect + ` WHERE ol.order_id = $1 ORDER BY ol.created_at`

	rows, err := olr.db.Query(ctx, query, orderID)
	if err != nil {
		olr.log.Error("Failed to get order lines",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find order lines for order %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var lines []*entity.OrderLine
	for rows.Next() {
		line, err := scanOrderLine(rows)
		if err != nil {
			olr.log.Error("Failed to scan order line row", zap.Error(err))
			return nil, fmt.Errorf("scan order line row: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		olr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order line rows: %w", err)
	}

	return lines, nil
}

func scanOrderLine(row rowScanner) (*entity.OrderLine, error) {
	var line entity.OrderLine
	var order entity.Order

	var invID *uuid.UUID
	var invQuantity *int
	var invCreatedAt, invUpdatedAt *time.Time
	var prodID *uuid.UUID
	var prodName, prodDescription *string
	var prodPrice *decimal.Decimal
	var prodCreatedAt, prodUpdatedAt *time.Time
	var locID *uuid.UUID
	var locName *string
	var locCreatedAt, locUpdatedAt *time.Time

	err := row.Scan(
		&line.ID,
		&line.Quantity,
		&line.CreatedAt,
		&order.ID,
		&order.OrderDate,
		&order.Completed,
		&order.CreatedAt,
		&order.UpdatedAt,
		&invID,
		&invQuantity,
		&invCreatedAt,
		&invUpdatedAt,
		&prodID,
		&prodName,
		&prodPrice,
		&prodDescription,
		&prodCreatedAt,
		&prodUpdatedAt,
		&locID,
		&locName,
		&locCreatedAt,
		&locUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	line.Order = &order

	if invID != nil {
		inventory := &entity.Inventory{
			Base: entity.Base{
				ID:        *invID,
				CreatedAt: *invCreatedAt,
				UpdatedAt: *invUpdatedAt,
			},
			Quantity: *invQuantity,
		}
		if prodID != nil {
			inventory.Product = &entity.Product{
				Base: entity.Base{
					ID:        *prodID,
					CreatedAt: *prodCreatedAt,
					UpdatedAt: *prodUpdatedAt,
				},
				Name:        *prodName,
				Price:       *prodPrice,
				Description: *prodDescription,
			}
		}
		if locID != nil {
			inventory.Location = &entity.Location{
				Base: entity.Base{
					ID:        *locID,
					CreatedAt: *locCreatedAt,
					UpdatedAt: *locUpdatedAt,
				},
				Name: *locName,
			}
		}
		line.Inventory = inventory
	}

	return &line, nil
}

package repository

import (
	"context"
	"fmt"

	"retail-store/internal/data/entity"
	"retail-store/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InventoryRepository interface {
	Create(ctx context.Context, inventory *entity.Inventory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)
	FindByLocationID(ctx context.Context, locationID uuid.UUID) ([]*entity.Inventory, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
}

type inventoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInventoryRepository(db database.PgxIface, log *zap.Logger) InventoryRepository {
	return &inventoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "inventory")),
	}
}

func (ir *inventoryRepository) Create(ctx context.Context, inventory *entity.Inventory) error {
	query := `
		INSERT INTO inventories (id, quantity, product_id, location_id,
		                         created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := ir.db.Exec(ctx, query,
		inventory.ID,
		inventory.Quantity,
		inventory.Product.ID,
		inventory.Location.ID,
		inventory.CreatedAt,
		inventory.UpdatedAt,
	)

	if err != nil {
		ir.log.Error("Failed to create inventory",
			zap.Error(err),
			zap.String("inventory_id", inventory.ID.String()),
		)
		return fmt.Errorf("create inventory %s: %w", inventory.ID.String(), err)
	}

	return nil
}

// inventorySelect materializes the product and location references with the
// record. Both are required at creation, so the joins are INNER.
const inventorySelect = `
	SELECT i.id, i.quantity, i.created_at, i.updated_at,
	       p.id, p.name, p.price, p.description, p.created_at, p.updated_at,
	       l.id, l.name, l.created_at, l.updated_at
	FROM inventories i
	JOIN products p ON p.id = i.product_id
	JOIN locations l ON l.id = i.location_id
`

func (ir *inventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	query := inventorySelect + ` WHERE i.id = $1`

	inventory, err := scanInventory(ir.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ir.log.Error("Failed to find inventory by ID",
			zap.Error(err),
			zap.String("inventory_id", id.String()),
		)
		return nil, fmt.Errorf("find inventory by ID %s: %w", id.String(), err)
	}

	return inventory, nil
}

func (ir *inventoryRepository) FindByLocationID(ctx context.Context, locationID uuid.UUID) ([]*entity.Inventory, error) {
	query := inventorySelect + ` WHERE i.location_id = $1 ORDER BY p.name`

	rows, err := ir.db.Query(ctx, query, locationID)
	if err != nil {
		ir.log.Error("Failed to get inventories by location",
			zap.Error(err),
			zap.String("location_id", locationID.String()),
		)
		return nil, fmt.Errorf("find inventories by location %s: %w", locationID.String(), err)
	}
	defer rows.Close()

	var inventories []*entity.Inventory
	for rows.Next() {
		inventory, err := scanInventory(rows)
		if err != nil {
			ir.log.Error("Failed to scan inventory row", zap.Error(err))
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		inventories = append(inventories, inventory)
	}

	if err := rows.Err(); err != nil {
		ir.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate inventory rows: %w", err)
	}

	return inventories, nil
}

func (ir *inventoryRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	query := `
		UPDATE inventories
		SET quantity = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := ir.db.Exec(ctx, query, id, quantity)
	if err != nil {
		ir.log.Error("Failed to update inventory quantity",
			zap.Error(err),
			zap.String("inventory_id", id.String()),
		)
		return fmt.Errorf("update inventory %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("inventory %s not found", id.String())
	}

	return nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInventory(row rowScanner) (*entity.Inventory, error) {
	var inventory entity.Inventory
	var product entity.Product
	var location entity.Location

	err := row.Scan(
		&inventory.ID,
		&inventory.Quantity,
		&inventory.CreatedAt,
		&inventory.UpdatedAt,
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Description,
		&product.CreatedAt,
		&product.UpdatedAt,
		&location.ID,
		&location.Name,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	inventory.Product = &product
	inventory.Location = &location
	return &inventory, nil
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"retail-store/internal/data/repository"
	"retail-store/internal/dto/viewmodel"
	"retail-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InventoryService interface {
	GetInventoryByID(ctx context.Context, id uuid.UUID) (*viewmodel.Inventory, error)
	GetInventoriesByLocation(ctx context.Context, locationID uuid.UUID) ([]viewmodel.Inventory, error)
	CreateInventory(ctx context.Context, view *viewmodel.Inventory) (*viewmodel.Inventory, error)
	AdjustQuantity(ctx context.Context, id uuid.UUID, quantity int) (*viewmodel.Inventory, error)
}

type inventoryService struct {
	repo   *repository.Repository
	mapper Mapper
	log    *zap.Logger
}

func NewInventoryService(
	repo *repository.Repository,
	mapper Mapper,
	log *zap.Logger,
) InventoryService {
	return &inventoryService{
		repo:   repo,
		mapper: mapper,
		log:    log.With(zap.String("service", "inventory")),
	}
}

func (s *inventoryService) GetInventoryByID(ctx context.Context, id uuid.UUID) (*viewmodel.Inventory, error) {
	inventory, err := s.repo.Inventory.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get inventory", zap.Error(err), zap.String("inventory_id", id.String()))
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	if inventory == nil {
		return nil, fmt.Errorf("inventory not found")
	}

	return s.mapper.ToInventoryView(inventory), nil
}

func (s *inventoryService) GetInventoriesByLocation(ctx context.Context, locationID uuid.UUID) ([]viewmodel.Inventory, error) {
	// 1. Make sure the location exists before listing its stock
	location, err := s.repo.Location.FindByID(ctx, locationID)
	if err != nil {
		s.log.Error("Failed to get location", zap.Error(err), zap.String("location_id", locationID.String()))
		return nil, fmt.Errorf("get location: %w", err)
	}
	if location == nil {
		return nil, fmt.Errorf("location not found")
	}

	// 2. List the inventories held at the location
	inventories, err := s.repo.Inventory.FindByLocationID(ctx, locationID)
	if err != nil {
		s.log.Error("Failed to get inventories", zap.Error(err), zap.String("location_id", locationID.String()))
		return nil, fmt.Errorf("get inventories: %w", err)
	}

	views := make([]viewmodel.Inventory, len(inventories))
	for i, inventory := range inventories {
		views[i] = *s.mapper.ToInventoryView(inventory)
	}
	return views, nil
}

func (s *inventoryService) CreateInventory(ctx context.Context, view *viewmodel.Inventory) (*viewmodel.Inventory, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(view); len(errs) > 0 {
		s.log.Warn("Create inventory validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Resolve references; a stock record without both ends is useless,
	// so creation is stricter than the conversion itself
	inventory, err := s.mapper.ToInventory(ctx, view)
	if err != nil {
		return nil, err
	}
	if inventory.Product == nil {
		return nil, fmt.Errorf("product not found")
	}
	if inventory.Location == nil {
		return nil, fmt.Errorf("location not found")
	}

	// 3. Persist
	if inventory.ID == uuid.Nil {
		inventory.ID = uuid.New()
	}
	now := time.Now()
	inventory.CreatedAt = now
	inventory.UpdatedAt = now

	if err := s.repo.Inventory.Create(ctx, inventory); err != nil {
		s.log.Error("Failed to create inventory", zap.Error(err))
		return nil, fmt.Errorf("failed to create inventory")
	}

	s.log.Info("Inventory created",
		zap.String("inventory_id", inventory.ID.String()),
		zap.String("product_id", inventory.Product.ID.String()),
		zap.String("location_id", inventory.Location.ID.String()))

	return s.mapper.ToInventoryView(inventory), nil
}

func (s *inventoryService) AdjustQuantity(ctx context.Context, id uuid.UUID, quantity int) (*viewmodel.Inventory, error) {
	// 1. Validate input
	if quantity < 0 {
		return nil, fmt.Errorf("validation failed: quantity must not be negative")
	}

	// 2. Check existence
	inventory, err := s.repo.Inventory.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get inventory", zap.Error(err), zap.String("inventory_id", id.String()))
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	if inventory == nil {
		return nil, fmt.Errorf("inventory not found")
	}

	// 3. Apply the new quantity
	if err := s.repo.Inventory.UpdateQuantity(ctx, id, quantity); err != nil {
		s.log.Error("Failed to update inventory quantity", zap.Error(err), zap.String("inventory_id", id.String()))
		return nil, fmt.Errorf("failed to update inventory")
	}
	inventory.Quantity = quantity
	inventory.UpdatedAt = time.Now()

	s.log.Info("Inventory quantity updated",
		zap.String("inventory_id", id.String()),
		zap.Int("quantity", quantity))

	return s.mapper.ToInventoryView(inventory), nil
}

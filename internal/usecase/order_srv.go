package usecase

import (
	"context"
	"fmt"
	"time"

	"retail-store/internal/data/entity"
	"retail-store/internal/data/repository"
	"retail-store/internal/dto/request"
	"retail-store/internal/dto/response"
	"retail-store/internal/dto/viewmodel"
	"retail-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	GetOrderByID(ctx context.Context, id uuid.UUID) (*response.OrderResponse, error)
	GetOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]response.OrderResponse, error)
	CreateOrder(ctx context.Context, req *request.OrderRequest) (*response.OrderResponse, error)
	CompleteOrder(ctx context.Context, id uuid.UUID) (*response.OrderResponse, error)
}

type orderService struct {
	repo   *repository.Repository
	mapper Mapper
	log    *zap.Logger
}

func NewOrderService(
	repo *repository.Repository,
	mapper Mapper,
	log *zap.Logger,
) OrderService {
	return &orderService{
		repo:   repo,
		mapper: mapper,
		log:    log.With(zap.String("service", "order")),
	}
}

func (s *orderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	return s.convertOrderResponse(ctx, order)
}

func (s *orderService) GetOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]response.OrderResponse, error) {
	// 1. Make sure the customer exists
	exists, err := s.repo.Customer.ExistsByID(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to check customer", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("customer not found")
	}

	// 2. List the customer's orders with their lines
	orders, err := s.repo.Order.FindByCustomerID(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to get orders", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("get orders: %w", err)
	}

	responses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		resp, err := s.convertOrderResponse(ctx, order)
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}
	return responses, nil
}

func (s *orderService) CreateOrder(ctx context.Context, req *request.OrderRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Resolve the customer when the order is not a guest order
	var customer *entity.Customer
	if req.CustomerID != nil {
		var err error
		customer, err = s.repo.Customer.FindByID(ctx, *req.CustomerID)
		if err != nil {
			s.log.Error("Failed to get customer", zap.Error(err), zap.String("customer_id", req.CustomerID.String()))
			return nil, fmt.Errorf("get customer: %w", err)
		}
		if customer == nil {
			return nil, fmt.Errorf("customer not found")
		}
	}

	// 3. Every line must point at live stock before anything is written
	inventories := make([]*entity.Inventory, len(req.Lines))
	for i, line := range req.Lines {
		inventory, err := s.repo.Inventory.FindByID(ctx, line.InventoryID)
		if err != nil {
			s.log.Error("Failed to get inventory", zap.Error(err), zap.String("inventory_id", line.InventoryID.String()))
			return nil, fmt.Errorf("get inventory: %w", err)
		}
		if inventory == nil {
			return nil, fmt.Errorf("inventory not found")
		}
		inventories[i] = inventory
	}

	// 4. Persist the order
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrderDate: time.Now(),
		Completed: false,
		Customer:  customer,
	}
	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order", zap.Error(err))
		return nil, fmt.Errorf("failed to create order")
	}

	// 5. Persist its lines
	for i, lineReq := range req.Lines {
		line := &entity.OrderLine{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			Quantity:  lineReq.Quantity,
			Order:     order,
			Inventory: inventories[i],
		}
		if err := s.repo.OrderLine.Create(ctx, line); err != nil {
			s.log.Error("Failed to create order line", zap.Error(err), zap.String("order_id", order.ID.String()))
			return nil, fmt.Errorf("failed to create order line")
		}
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.Int("lines", len(req.Lines)),
		zap.Bool("guest", customer == nil))

	return s.convertOrderResponse(ctx, order)
}

func (s *orderService) CompleteOrder(ctx context.Context, id uuid.UUID) (*response.OrderResponse, error) {
	// 1. Check existence
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}
	if order.Completed {
		return nil, fmt.Errorf("order already completed")
	}

	// 2. Mark it completed
	if err := s.repo.Order.MarkCompleted(ctx, id); err != nil {
		s.log.Error("Failed to complete order", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("failed to complete order")
	}
	order.Completed = true

	s.log.Info("Order completed", zap.String("order_id", id.String()))

	return s.convertOrderResponse(ctx, order)
}

// convertOrderResponse loads the order's lines and folds them into a response.
// Lines whose inventory has since disappeared still appear, just without the
// product display fields.
func (s *orderService) convertOrderResponse(ctx context.Context, order *entity.Order) (*response.OrderResponse, error) {
	lines, err := s.repo.OrderLine.FindByOrderID(ctx, order.ID)
	if err != nil {
		s.log.Error("Failed to get order lines", zap.Error(err), zap.String("order_id", order.ID.String()))
		return nil, fmt.Errorf("get order lines: %w", err)
	}

	views := make([]viewmodel.OrderLine, 0, len(lines))
	for _, line := range lines {
		view, err := s.mapper.ToOrderLineView(ctx, line)
		if err != nil {
			return nil, err
		}
		if view != nil {
			views = append(views, *view)
		}
	}

	resp := &response.OrderResponse{
		OrderID:   order.ID,
		OrderDate: order.OrderDate,
		Completed: order.Completed,
		Lines:     views,
	}
	if order.Customer != nil {
		customerID := order.Customer.ID
		resp.CustomerID = &customerID
	}
	return resp, nil
}

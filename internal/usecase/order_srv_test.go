package usecase

import (
	"context"
	"testing"
	"time"

	"retail-store/internal/data/entity"
	"retail-store/internal/data/repository"
	"retail-store/internal/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type OrderServiceSuite struct {
	suite.Suite
	repo    *repository.Repository
	service OrderService
	ctx     context.Context

	location  *entity.Location
	product   *entity.Product
	inventory *entity.Inventory
}

func (s *OrderServiceSuite) SetupTest() {
	s.repo = repository.NewMemoryRepository()
	s.service = NewOrderService(s.repo, NewMapper(s.repo, zap.NewNop()), zap.NewNop())
	s.ctx = context.Background()

	s.location = &entity.Location{Name: "Location 1"}
	s.location.ID = uuid.New()
	s.Require().NoError(s.repo.Location.Create(s.ctx, s.location))

	s.product = &entity.Product{
		Name:        "Product 1",
		Price:       decimal.RequireFromString("1.00"),
		Description: "First product",
	}
	s.product.ID = uuid.New()
	s.Require().NoError(s.repo.Product.Create(s.ctx, s.product))

	s.inventory = &entity.Inventory{
		Quantity: 10,
		Product:  s.product,
		Location: s.location,
	}
	s.inventory.ID = uuid.New()
	s.Require().NoError(s.repo.Inventory.Create(s.ctx, s.inventory))
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceSuite))
}

func (s *OrderServiceSuite) seedCustomer(username string) *entity.Customer {
	customer := &entity.Customer{
		Username:  username,
		Password:  "pw",
		FirstName: "First",
		LastName:  "Last",
	}
	customer.ID = uuid.New()
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	s.Require().NoError(s.repo.Customer.Create(s.ctx, customer))
	return customer
}

// TestCreateOrder covers guest and customer checkouts plus line totals.
func (s *OrderServiceSuite) TestCreateOrder() {
	s.Run("guest order carries no customer", func() {
		resp, err := s.service.CreateOrder(s.ctx, &request.OrderRequest{
			Lines: []request.OrderLineRequest{
				{InventoryID: s.inventory.ID, Quantity: 2},
			},
		})
		s.Require().NoError(err)
		s.Nil(resp.CustomerID)
		s.Require().Len(resp.Lines, 1)
		s.Equal("Product 1", resp.Lines[0].ProductName)
		s.Equal("Location 1", resp.Lines[0].StoreName)
		s.True(resp.Lines[0].TotalPrice.Equal(decimal.RequireFromString("2.00")))
	})

	s.Run("customer order binds to the customer", func() {
		customer := s.seedCustomer("buyer1")
		resp, err := s.service.CreateOrder(s.ctx, &request.OrderRequest{
			CustomerID: &customer.ID,
			Lines: []request.OrderLineRequest{
				{InventoryID: s.inventory.ID, Quantity: 1},
			},
		})
		s.Require().NoError(err)
		s.Require().NotNil(resp.CustomerID)
		s.Equal(customer.ID, *resp.CustomerID)
	})

	s.Run("unknown customer is rejected", func() {
		missing := uuid.New()
		_, err := s.service.CreateOrder(s.ctx, &request.OrderRequest{
			CustomerID: &missing,
			Lines: []request.OrderLineRequest{
				{InventoryID: s.inventory.ID, Quantity: 1},
			},
		})
		s.Require().Error(err)
		s.Contains(err.Error(), "customer not found")
	})

	s.Run("unknown inventory is rejected before anything is written", func() {
		_, err := s.service.CreateOrder(s.ctx, &request.OrderRequest{
			Lines: []request.OrderLineRequest{
				{InventoryID: uuid.New(), Quantity: 1},
			},
		})
		s.Require().Error(err)
		s.Contains(err.Error(), "inventory not found")
	})

	s.Run("an order needs at least one line", func() {
		_, err := s.service.CreateOrder(s.ctx, &request.OrderRequest{})
		s.Require().Error(err)
		s.Contains(err.Error(), "validation failed")
	})
}

// TestGetOrders verifies lookups and the customer history listing.
func (s *OrderServiceSuite) TestGetOrders() {
	customer := s.seedCustomer("buyer1")
	created, err := s.service.CreateOrder(s.ctx, &request.OrderRequest{
		CustomerID: &customer.ID,
		Lines: []request.OrderLineRequest{
			{InventoryID: s.inventory.ID, Quantity: 3},
		},
	})
	s.Require().NoError(err)

	s.Run("finds an order with its lines", func() {
		resp, err := s.service.GetOrderByID(s.ctx, created.OrderID)
		s.Require().NoError(err)
		s.Require().Len(resp.Lines, 1)
		s.True(resp.Lines[0].TotalPrice.Equal(decimal.RequireFromString("3.00")))
	})

	s.Run("unknown order reports not found", func() {
		_, err := s.service.GetOrderByID(s.ctx, uuid.New())
		s.Require().Error(err)
		s.Contains(err.Error(), "not found")
	})

	s.Run("lists the customer's orders", func() {
		orders, err := s.service.GetOrdersByCustomer(s.ctx, customer.ID)
		s.Require().NoError(err)
		s.Require().Len(orders, 1)
		s.Equal(created.OrderID, orders[0].OrderID)
	})

	s.Run("unknown customer reports not found", func() {
		_, err := s.service.GetOrdersByCustomer(s.ctx, uuid.New())
		s.Require().Error(err)
		s.Contains(err.Error(), "not found")
	})
}

// TestCompleteOrder verifies the completion transition.
func (s *OrderServiceSuite) TestCompleteOrder() {
	created, err := s.service.CreateOrder(s.ctx, &request.OrderRequest{
		Lines: []request.OrderLineRequest{
			{InventoryID: s.inventory.ID, Quantity: 1},
		},
	})
	s.Require().NoError(err)

	resp, err := s.service.CompleteOrder(s.ctx, created.OrderID)
	s.Require().NoError(err)
	s.True(resp.Completed)

	_, err = s.service.CompleteOrder(s.ctx, created.OrderID)
	s.Require().Error(err)
	s.Contains(err.Error(), "already completed")
}

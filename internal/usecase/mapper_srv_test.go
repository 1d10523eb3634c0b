package usecase

import (
	"context"
	"testing"
	"time"

	"retail-store/internal/data/entity"
	"retail-store/internal/data/repository"
	"retail-store/internal/dto/viewmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type MapperSuite struct {
	suite.Suite
	repo   *repository.Repository
	mapper Mapper
	ctx    context.Context
}

func (s *MapperSuite) SetupTest() {
	s.repo = repository.NewMemoryRepository()
	s.mapper = NewMapper(s.repo, zap.NewNop())
	s.ctx = context.Background()
}

func TestMapperSuite(t *testing.T) {
	suite.Run(t, new(MapperSuite))
}

func (s *MapperSuite) createLocation(name string) *entity.Location {
	location := &entity.Location{Name: name}
	location.ID = uuid.New()
	location.CreatedAt = time.Now()
	location.UpdatedAt = location.CreatedAt
	s.Require().NoError(s.repo.Location.Create(s.ctx, location))
	return location
}

func (s *MapperSuite) createProduct(name, price string) *entity.Product {
	product := &entity.Product{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Description: name + " description",
	}
	product.ID = uuid.New()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	s.Require().NoError(s.repo.Product.Create(s.ctx, product))
	return product
}

func (s *MapperSuite) createInventory(product *entity.Product, location *entity.Location, quantity int) *entity.Inventory {
	inventory := &entity.Inventory{
		Quantity: quantity,
		Product:  product,
		Location: location,
	}
	inventory.ID = uuid.New()
	inventory.CreatedAt = time.Now()
	inventory.UpdatedAt = inventory.CreatedAt
	s.Require().NoError(s.repo.Inventory.Create(s.ctx, inventory))
	return inventory
}

// TestNilInputs verifies that every conversion short-circuits on nil.
func (s *MapperSuite) TestNilInputs() {
	s.Nil(s.mapper.ToAdministratorView(nil))
	s.Nil(s.mapper.ToAdministrator(nil))
	s.Nil(s.mapper.ToProductView(nil))
	s.Nil(s.mapper.ToProduct(nil))
	s.Nil(s.mapper.ToLocationView(nil))
	s.Nil(s.mapper.ToLocation(nil))
	s.Nil(s.mapper.ToInventoryView(nil))

	customer, err := s.mapper.ToCustomerView(s.ctx, nil)
	s.Require().NoError(err)
	s.Nil(customer)

	inventory, err := s.mapper.ToInventory(s.ctx, nil)
	s.Require().NoError(err)
	s.Nil(inventory)

	lineView, err := s.mapper.ToOrderLineView(s.ctx, nil)
	s.Require().NoError(err)
	s.Nil(lineView)

	line, err := s.mapper.ToOrderLine(s.ctx, nil)
	s.Require().NoError(err)
	s.Nil(line)
}

// TestAdministratorRoundTrip verifies the pure field copies in both
// directions.
func (s *MapperSuite) TestAdministratorRoundTrip() {
	admin := &entity.Administrator{
		Username:    "admin",
		Password:    "cLev3rPas$word",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		AccessLevel: entity.AccessLevelEdit,
	}
	admin.ID = uuid.New()

	view := s.mapper.ToAdministratorView(admin)
	s.Require().NotNil(view)
	s.Equal(admin.ID, view.UserID)
	s.Equal("admin", view.Username)
	s.Equal(entity.AccessLevelEdit, view.AccessLevel)

	back := s.mapper.ToAdministrator(view)
	s.Require().NotNil(back)
	s.Equal(admin.ID, back.ID)
	s.Equal(admin.Username, back.Username)
	s.Equal(admin.Password, back.Password)
	s.Equal(admin.AccessLevel, back.AccessLevel)
}

// TestProductAndLocationRoundTrips covers the remaining pure conversions.
func (s *MapperSuite) TestProductAndLocationRoundTrips() {
	product := &entity.Product{
		Name:        "Product 1",
		Price:       decimal.RequireFromString("1.00"),
		Description: "First product",
	}
	product.ID = uuid.New()

	productView := s.mapper.ToProductView(product)
	s.Require().NotNil(productView)
	s.Equal(product.ID, productView.ProductID)
	s.True(productView.Price.Equal(decimal.RequireFromString("1.00")))

	productBack := s.mapper.ToProduct(productView)
	s.Equal(product.ID, productBack.ID)
	s.Equal(product.Name, productBack.Name)
	s.True(product.Price.Equal(productBack.Price))

	location := &entity.Location{Name: "Location 1"}
	location.ID = uuid.New()

	locationView := s.mapper.ToLocationView(location)
	s.Require().NotNil(locationView)
	s.Equal(location.ID, locationView.LocationID)
	s.Equal("Location 1", locationView.Name)

	locationBack := s.mapper.ToLocation(locationView)
	s.Equal(location.ID, locationBack.ID)
	s.Equal(location.Name, locationBack.Name)
}

// TestCustomerView verifies flattening and the default-location display
// fallback.
func (s *MapperSuite) TestCustomerView() {
	fallback := s.createLocation("Location 1")
	chosen := s.createLocation("Location 2")

	s.Run("uses the customer's own location", func() {
		customer := &entity.Customer{
			Username:        "customer1",
			Password:        "pw",
			FirstName:       "First",
			LastName:        "Last",
			DefaultLocation: chosen,
		}
		customer.ID = uuid.New()

		view, err := s.mapper.ToCustomerView(s.ctx, customer)
		s.Require().NoError(err)
		s.Equal(chosen.ID, view.DefaultLocationID)
		s.Equal("Location 2", view.DefaultStoreName)
	})

	s.Run("falls back to the store default without mutating the input", func() {
		customer := &entity.Customer{
			Username:  "customer2",
			Password:  "pw",
			FirstName: "First",
			LastName:  "Last",
		}
		customer.ID = uuid.New()

		view, err := s.mapper.ToCustomerView(s.ctx, customer)
		s.Require().NoError(err)
		s.Equal(fallback.ID, view.DefaultLocationID)
		s.Equal("Location 1", view.DefaultStoreName)
		s.Nil(customer.DefaultLocation)
	})

	s.Run("no location anywhere leaves the display fields empty", func() {
		empty := repository.NewMemoryRepository()
		bare := NewMapper(empty, zap.NewNop())

		customer := &entity.Customer{Username: "customer3"}
		customer.ID = uuid.New()

		view, err := bare.ToCustomerView(s.ctx, customer)
		s.Require().NoError(err)
		s.Equal(uuid.Nil, view.DefaultLocationID)
		s.Empty(view.DefaultStoreName)
	})
}

// TestToCustomer verifies lenient reference resolution.
func (s *MapperSuite) TestToCustomer() {
	location := s.createLocation("Location 1")

	s.Run("resolves a live location", func() {
		view := &viewmodel.Customer{
			UserID:            uuid.New(),
			Username:          "customer1",
			DefaultLocationID: location.ID,
		}
		customer, err := s.mapper.ToCustomer(s.ctx, view)
		s.Require().NoError(err)
		s.Require().NotNil(customer.DefaultLocation)
		s.Equal(location.ID, customer.DefaultLocation.ID)
	})

	s.Run("a dangling identifier leaves the reference unset", func() {
		view := &viewmodel.Customer{
			UserID:            uuid.New(),
			Username:          "customer2",
			DefaultLocationID: uuid.New(),
		}
		customer, err := s.mapper.ToCustomer(s.ctx, view)
		s.Require().NoError(err)
		s.Nil(customer.DefaultLocation)
	})
}

// TestRepairDefaultLocation verifies the one mutating path.
func (s *MapperSuite) TestRepairDefaultLocation() {
	fallback := s.createLocation("Location 1")

	customer := &entity.Customer{Username: "customer1"}
	customer.ID = uuid.New()

	s.Require().NoError(s.mapper.RepairDefaultLocation(s.ctx, customer))
	s.Require().NotNil(customer.DefaultLocation)
	s.Equal(fallback.ID, customer.DefaultLocation.ID)

	// A set location is left alone
	other := s.createLocation("Location 2")
	customer.DefaultLocation = other
	s.Require().NoError(s.mapper.RepairDefaultLocation(s.ctx, customer))
	s.Equal(other.ID, customer.DefaultLocation.ID)
}

// TestInventoryView verifies flattening with denormalized display copies.
func (s *MapperSuite) TestInventoryView() {
	location := s.createLocation("Location 1")
	product := s.createProduct("Product 1", "1.00")
	inventory := s.createInventory(product, location, 2)

	view := s.mapper.ToInventoryView(inventory)
	s.Require().NotNil(view)
	s.Equal(inventory.ID, view.InventoryID)
	s.Equal(2, view.Quantity)
	s.Equal(product.ID, view.ProductID)
	s.Equal("Product 1", view.ProductName)
	s.True(view.Price.Equal(decimal.RequireFromString("1.00")))
	s.Equal(location.ID, view.LocationID)
	s.Equal("Location 1", view.LocationName)

	s.Run("unset references leave display fields zero-valued", func() {
		detached := &entity.Inventory{Quantity: 5}
		detached.ID = uuid.New()

		view := s.mapper.ToInventoryView(detached)
		s.Require().NotNil(view)
		s.Equal(5, view.Quantity)
		s.Equal(uuid.Nil, view.ProductID)
		s.Empty(view.ProductName)
		s.Empty(view.LocationName)
	})
}

// TestToInventory verifies independent lenient resolution of both
// references.
func (s *MapperSuite) TestToInventory() {
	location := s.createLocation("Location 1")
	product := s.createProduct("Product 1", "1.00")

	s.Run("both references resolve", func() {
		view := &viewmodel.Inventory{
			InventoryID: uuid.New(),
			Quantity:    3,
			ProductID:   product.ID,
			LocationID:  location.ID,
		}
		inventory, err := s.mapper.ToInventory(s.ctx, view)
		s.Require().NoError(err)
		s.Require().NotNil(inventory.Product)
		s.Require().NotNil(inventory.Location)
		s.Equal(3, inventory.Quantity)
	})

	s.Run("a dangling product leaves only that reference unset", func() {
		view := &viewmodel.Inventory{
			InventoryID: uuid.New(),
			Quantity:    3,
			ProductID:   uuid.New(),
			LocationID:  location.ID,
		}
		inventory, err := s.mapper.ToInventory(s.ctx, view)
		s.Require().NoError(err)
		s.Nil(inventory.Product)
		s.Require().NotNil(inventory.Location)
	})
}

// TestOrderLineView verifies the derived total and graceful handling of
// missing references.
func (s *MapperSuite) TestOrderLineView() {
	location := s.createLocation("Location 1")
	product := s.createProduct("Product 1", "1.00")
	inventory := s.createInventory(product, location, 10)

	order := &entity.Order{OrderDate: time.Now()}
	order.ID = uuid.New()
	s.Require().NoError(s.repo.Order.Create(s.ctx, order))

	s.Run("computes the total from the current price", func() {
		line := &entity.OrderLine{
			Quantity:  2,
			Order:     order,
			Inventory: inventory,
		}
		line.ID = uuid.New()

		view, err := s.mapper.ToOrderLineView(s.ctx, line)
		s.Require().NoError(err)
		s.Equal(order.ID, view.OrderID)
		s.Equal(inventory.ID, view.InventoryID)
		s.Equal("Product 1", view.ProductName)
		s.Equal("Location 1", view.StoreName)
		s.True(view.Price.Equal(decimal.RequireFromString("1.00")))
		s.True(view.TotalPrice.Equal(decimal.RequireFromString("2.00")))
	})

	s.Run("total follows a price change", func() {
		product.Price = decimal.RequireFromString("1.50")
		s.Require().NoError(s.repo.Product.Update(s.ctx, product))

		line := &entity.OrderLine{Quantity: 2, Order: order, Inventory: inventory}
		line.ID = uuid.New()

		view, err := s.mapper.ToOrderLineView(s.ctx, line)
		s.Require().NoError(err)
		s.True(view.TotalPrice.Equal(decimal.RequireFromString("3.00")))
	})

	s.Run("a line without an order keeps its other fields", func() {
		line := &entity.OrderLine{Quantity: 1, Inventory: inventory}
		line.ID = uuid.New()

		view, err := s.mapper.ToOrderLineView(s.ctx, line)
		s.Require().NoError(err)
		s.Equal(uuid.Nil, view.OrderID)
		s.Equal(inventory.ID, view.InventoryID)
	})

	s.Run("vanished inventory omits the display fields", func() {
		gone := &entity.Inventory{Quantity: 1, Product: product, Location: location}
		gone.ID = uuid.New() // never persisted

		line := &entity.OrderLine{Quantity: 4, Order: order, Inventory: gone}
		line.ID = uuid.New()

		view, err := s.mapper.ToOrderLineView(s.ctx, line)
		s.Require().NoError(err)
		s.Equal(order.ID, view.OrderID)
		s.Equal(uuid.Nil, view.InventoryID)
		s.Empty(view.ProductName)
		s.True(view.TotalPrice.IsZero())
	})
}

// TestToOrderLine verifies independent resolution of order and inventory.
func (s *MapperSuite) TestToOrderLine() {
	location := s.createLocation("Location 1")
	product := s.createProduct("Product 1", "1.00")
	inventory := s.createInventory(product, location, 10)

	order := &entity.Order{OrderDate: time.Now()}
	order.ID = uuid.New()
	s.Require().NoError(s.repo.Order.Create(s.ctx, order))

	s.Run("both references resolve", func() {
		view := &viewmodel.OrderLine{
			OrderLineID: uuid.New(),
			Quantity:    2,
			OrderID:     order.ID,
			InventoryID: inventory.ID,
		}
		line, err := s.mapper.ToOrderLine(s.ctx, view)
		s.Require().NoError(err)
		s.Require().NotNil(line.Order)
		s.Require().NotNil(line.Inventory)
		s.Equal(2, line.Quantity)
	})

	s.Run("a dangling order still resolves the inventory", func() {
		view := &viewmodel.OrderLine{
			OrderLineID: uuid.New(),
			Quantity:    2,
			OrderID:     uuid.New(),
			InventoryID: inventory.ID,
		}
		line, err := s.mapper.ToOrderLine(s.ctx, view)
		s.Require().NoError(err)
		s.Nil(line.Order)
		s.Require().NotNil(line.Inventory)
	})
}

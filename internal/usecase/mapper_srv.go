package usecase

import (
	"context"
	"fmt"

	"retail-store/internal/data/entity"
	"retail-store/internal/data/repository"
	"retail-store/internal/dto/viewmodel"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Mapper converts between persisted entities and their flat view models.
// Outbound conversions flatten references into identifiers plus denormalized
// display copies; inbound conversions resolve identifiers back into live
// references through the repository.
//
// Resolution failures degrade, they never abort: a reference that does not
// resolve is left unset on the entity, and display fields whose source is
// missing are left zero-valued on the view. Returned errors only report
// repository faults. Conversions are side-effect free; callers that want an
// unset customer default location persisted run RepairDefaultLocation first.
type Mapper interface {
	ToAdministratorView(admin *entity.Administrator) *viewmodel.Administrator
	ToAdministrator(view *viewmodel.Administrator) *entity.Administrator
	ToCustomerView(ctx context.Context, customer *entity.Customer) (*viewmodel.Customer, error)
	ToCustomer(ctx context.Context, view *viewmodel.Customer) (*entity.Customer, error)
	RepairDefaultLocation(ctx context.Context, customer *entity.Customer) error
	ToProductView(product *entity.Product) *viewmodel.Product
	ToProduct(view *viewmodel.Product) *entity.Product
	ToLocationView(location *entity.Location) *viewmodel.Location
	ToLocation(view *viewmodel.Location) *entity.Location
	ToInventoryView(inventory *entity.Inventory) *viewmodel.Inventory
	ToInventory(ctx context.Context, view *viewmodel.Inventory) (*entity.Inventory, error)
	ToOrderLineView(ctx context.Context, line *entity.OrderLine) (*viewmodel.OrderLine, error)
	ToOrderLine(ctx context.Context, view *viewmodel.OrderLine) (*entity.OrderLine, error)
}

type mapper struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMapper(repo *repository.Repository, log *zap.Logger) Mapper {
	return &mapper{
		repo: repo,
		log:  log.With(zap.String("service", "mapper")),
	}
}

// ToAdministratorView is a plain field copy; it needs no repository.
func (m *mapper) ToAdministratorView(admin *entity.Administrator) *viewmodel.Administrator {
	if admin == nil {
		return nil
	}
	return &viewmodel.Administrator{
		UserID:      admin.ID,
		Username:    admin.Username,
		Password:    admin.Password,
		FirstName:   admin.FirstName,
		LastName:    admin.LastName,
		AccessLevel: admin.AccessLevel,
	}
}

func (m *mapper) ToAdministrator(view *viewmodel.Administrator) *entity.Administrator {
	if view == nil {
		return nil
	}
	admin := &entity.Administrator{
		Username:    view.Username,
		Password:    view.Password,
		FirstName:   view.FirstName,
		LastName:    view.LastName,
		AccessLevel: view.AccessLevel,
	}
	admin.ID = view.UserID
	return admin
}

// ToCustomerView flattens the customer. A customer without a default
// location is displayed with the store's default one; the input is not
// mutated.
func (m *mapper) ToCustomerView(ctx context.Context, customer *entity.Customer) (*viewmodel.Customer, error) {
	if customer == nil {
		return nil, nil
	}

	view := &viewmodel.Customer{
		UserID:    customer.ID,
		Username:  customer.Username,
		Password:  customer.Password,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
	}

	location := customer.DefaultLocation
	if location == nil {
		var err error
		location, err = m.repo.DefaultLocation(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve default location: %w", err)
		}
	}
	if location != nil {
		view.DefaultLocationID = location.ID
		view.DefaultStoreName = location.Name
	}

	return view, nil
}

func (m *mapper) ToCustomer(ctx context.Context, view *viewmodel.Customer) (*entity.Customer, error) {
	if view == nil {
		return nil, nil
	}

	customer := &entity.Customer{
		Username:  view.Username,
		Password:  view.Password,
		FirstName: view.FirstName,
		LastName:  view.LastName,
	}
	customer.ID = view.UserID

	location, err := m.repo.Location.FindByID(ctx, view.DefaultLocationID)
	if err != nil {
		return nil, fmt.Errorf("resolve location %s: %w", view.DefaultLocationID.String(), err)
	}
	if location == nil {
		m.log.Warn("Default location did not resolve",
			zap.String("location_id", view.DefaultLocationID.String()),
			zap.String("username", view.Username),
		)
	}
	customer.DefaultLocation = location

	return customer, nil
}

// RepairDefaultLocation backfills an unset default location on the entity
// itself. This is the only mutating path; conversions stay pure.
func (m *mapper) RepairDefaultLocation(ctx context.Context, customer *entity.Customer) error {
	if customer == nil || customer.DefaultLocation != nil {
		return nil
	}

	location, err := m.repo.DefaultLocation(ctx)
	if err != nil {
		return fmt.Errorf("resolve default location: %w", err)
	}
	customer.DefaultLocation = location
	return nil
}

func (m *mapper) ToProductView(product *entity.Product) *viewmodel.Product {
	if product == nil {
		return nil
	}
	return &viewmodel.Product{
		ProductID:   product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
	}
}

func (m *mapper) ToProduct(view *viewmodel.Product) *entity.Product {
	if view == nil {
		return nil
	}
	product := &entity.Product{
		Name:        view.Name,
		Price:       view.Price,
		Description: view.Description,
	}
	product.ID = view.ProductID
	return product
}

func (m *mapper) ToLocationView(location *entity.Location) *viewmodel.Location {
	if location == nil {
		return nil
	}
	return &viewmodel.Location{
		LocationID: location.ID,
		Name:       location.Name,
	}
}

func (m *mapper) ToLocation(view *viewmodel.Location) *entity.Location {
	if view == nil {
		return nil
	}
	location := &entity.Location{
		Name: view.Name,
	}
	location.ID = view.LocationID
	return location
}

// ToInventoryView flattens the already-materialized product and location
// references; it does not re-fetch them. An unset reference leaves its
// display fields zero-valued.
func (m *mapper) ToInventoryView(inventory *entity.Inventory) *viewmodel.Inventory {
	if inventory == nil {
		return nil
	}

	view := &viewmodel.Inventory{
		InventoryID: inventory.ID,
		Quantity:    inventory.Quantity,
	}
	if product := inventory.Product; product != nil {
		view.ProductID = product.ID
		view.ProductName = product.Name
		view.Price = product.Price
		view.Description = product.Description
	}
	if location := inventory.Location; location != nil {
		view.LocationID = location.ID
		view.LocationName = location.Name
	}

	return view
}

func (m *mapper) ToInventory(ctx context.Context, view *viewmodel.Inventory) (*entity.Inventory, error) {
	if view == nil {
		return nil, nil
	}

	inventory := &entity.Inventory{
		Quantity: view.Quantity,
	}
	inventory.ID = view.InventoryID

	product, err := m.repo.Product.FindByID(ctx, view.ProductID)
	if err != nil {
		return nil, fmt.Errorf("resolve product %s: %w", view.ProductID.String(), err)
	}
	location, err := m.repo.Location.FindByID(ctx, view.LocationID)
	if err != nil {
		return nil, fmt.Errorf("resolve location %s: %w", view.LocationID.String(), err)
	}
	inventory.Product = product
	inventory.Location = location

	return inventory, nil
}

// ToOrderLineView flattens the line and re-resolves its inventory through
// the repository to confirm it still exists. When it does not, the view
// keeps identifiers and quantity but omits the inventory-derived display
// fields.
func (m *mapper) ToOrderLineView(ctx context.Context, line *entity.OrderLine) (*viewmodel.OrderLine, error) {
	if line == nil {
		return nil, nil
	}

	view := &viewmodel.OrderLine{
		OrderLineID: line.ID,
		Quantity:    line.Quantity,
	}
	if line.Order != nil {
		view.OrderID = line.Order.ID
	}
	if line.Inventory == nil {
		return view, nil
	}

	inventory, err := m.repo.Inventory.FindByID(ctx, line.Inventory.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve inventory %s: %w", line.Inventory.ID.String(), err)
	}
	if inventory == nil {
		return view, nil
	}

	view.InventoryID = line.Inventory.ID
	if product := inventory.Product; product != nil {
		view.Price = product.Price
		view.ProductName = product.Name
		view.TotalPrice = product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
	}
	if location := inventory.Location; location != nil {
		view.StoreName = location.Name
	}

	return view, nil
}

// ToOrderLine rebuilds a line from its view. The order and inventory are
// resolved independently; each is assigned only when its lookup succeeds,
// so a missing reference yields a partial line rather than a failure.
func (m *mapper) ToOrderLine(ctx context.Context, view *viewmodel.OrderLine) (*entity.OrderLine, error) {
	if view == nil {
		return nil, nil
	}

	line := &entity.OrderLine{
		Quantity: view.Quantity,
	}
	line.ID = view.OrderLineID

	inventory, err := m.repo.Inventory.FindByID(ctx, view.InventoryID)
	if err != nil {
		return nil, fmt.Errorf("resolve inventory %s: %w", view.InventoryID.String(), err)
	}
	order, err := m.repo.Order.FindByID(ctx, view.OrderID)
	if err != nil {
		return nil, fmt.Errorf("resolve order %s: %w", view.OrderID.String(), err)
	}
	if inventory != nil {
		line.Inventory = inventory
	}
	if order != nil {
		line.Order = order
	}

	return line, nil
}

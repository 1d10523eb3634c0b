package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"retail-store/internal/data/entity"

	"github.com/google/uuid"
)

// In-memory implementations of the repository interfaces. They back the unit
// tests and any wiring that runs without postgres, and intentionally favor
// clarity over performance. The shared username set plays the role of the
// database uniqueness constraint: it is checked and claimed under one lock,
// so concurrent creations with the same username cannot both succeed.
type memoryState struct {
	mu          sync.RWMutex
	admins      map[uuid.UUID]*entity.Administrator
	customers   map[uuid.UUID]*entity.Customer
	products    map[uuid.UUID]*entity.Product
	locations   []*entity.Location
	inventories map[uuid.UUID]*entity.Inventory
	orders      map[uuid.UUID]*entity.Order
	orderLines  map[uuid.UUID]*entity.OrderLine
	sessions    map[string]*entity.Session
	usernames   map[string]struct{}
}

// NewMemoryRepository builds a Repository over in-memory collections.
func NewMemoryRepository() *Repository {
	st := &memoryState{
		admins:      make(map[uuid.UUID]*entity.Administrator),
		customers:   make(map[uuid.UUID]*entity.Customer),
		products:    make(map[uuid.UUID]*entity.Product),
		inventories: make(map[uuid.UUID]*entity.Inventory),
		orders:      make(map[uuid.UUID]*entity.Order),
		orderLines:  make(map[uuid.UUID]*entity.OrderLine),
		sessions:    make(map[string]*entity.Session),
		usernames:   make(map[string]struct{}),
	}
	return &Repository{
		Administrator: &memoryAdministratorRepository{st},
		Customer:      &memoryCustomerRepository{st},
		Product:       &memoryProductRepository{st},
		Location:      &memoryLocationRepository{st},
		Inventory:     &memoryInventoryRepository{st},
		Order:         &memoryOrderRepository{st},
		OrderLine:     &memoryOrderLineRepository{st},
		Session:       &memorySessionRepository{st},
	}
}

type memoryAdministratorRepository struct{ st *memoryState }

func (m *memoryAdministratorRepository) Create(_ context.Context, admin *entity.Administrator) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	if _, taken := m.st.usernames[admin.Username]; taken {
		return ErrDuplicateUsername
	}
	m.st.admins[admin.ID] = admin
	m.st.usernames[admin.Username] = struct{}{}
	return nil
}

func (m *memoryAdministratorRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Administrator, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	return m.st.admins[id], nil
}

func (m *memoryAdministratorRepository) FindByUsername(_ context.Context, username string) (*entity.Administrator, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	for _, admin := range m.st.admins {
		if admin.Username == username {
			return admin, nil
		}
	}
	return nil, nil
}

func (m *memoryAdministratorRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	_, ok := m.st.admins[id]
	return ok, nil
}

func (m *memoryAdministratorRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	for _, admin := range m.st.admins {
		if admin.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type memoryCustomerRepository struct{ st *memoryState }

func (m *memoryCustomerRepository) Create(_ context.Context, customer *entity.Customer) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	if _, taken := m.st.usernames[customer.Username]; taken {
		return ErrDuplicateUsername
	}
	m.st.customers[customer.ID] = customer
	m.st.usernames[customer.Username] = struct{}{}
	return nil
}

func (m *memoryCustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	return m.st.customers[id], nil
}

func (m *memoryCustomerRepository) FindByUsername(_ context.Context, username string) (*entity.Customer, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	for _, customer := range m.st.customers {
		if customer.Username == username {
			return customer, nil
		}
	}
	return nil, nil
}

func (m *memoryCustomerRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	_, ok := m.st.customers[id]
	return ok, nil
}

func (m *memoryCustomerRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	for _, customer := range m.st.customers {
		if customer.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type memoryProductRepository struct{ st *memoryState }

func (m *memoryProductRepository) Create(_ context.Context, product *entity.Product) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	m.st.products[product.ID] = product
	return nil
}

func (m *memoryProductRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	return m.st.products[id], nil
}

func (m *memoryProductRepository) FindAll(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	products := make([]*entity.Product, 0, len(m.st.products))
	for _, product := range m.st.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	if offset >= len(products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(products) {
		end = len(products)
	}
	return products[offset:end], nil
}

func (m *memoryProductRepository) CountAll(_ context.Context) (int64, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	return int64(len(m.st.products)), nil
}

func (m *memoryProductRepository) Update(_ context.Context, product *entity.Product) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	if _, ok := m.st.products[product.ID]; !ok {
		return errNotPersisted("product", product.ID)
	}
	m.st.products[product.ID] = product
	return nil
}

type memoryLocationRepository struct{ st *memoryState }

func (m *memoryLocationRepository) Create(_ context.Context, location *entity.Location) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	m.st.locations = append(m.st.locations, location)
	return nil
}

func (m *memoryLocationRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Location, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	for _, location := range m.st.locations {
		if location.ID == id {
			return location, nil
		}
	}
	return nil, nil
}

func (m *memoryLocationRepository) FindAll(_ context.Context) ([]*entity.Location, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	locations := make([]*entity.Location, len(m.st.locations))
	copy(locations, m.st.locations)
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Name < locations[j].Name
	})
	return locations, nil
}

// FindDefault returns the first-created location, matching the postgres
// implementation's earliest-created rule.
func (m *memoryLocationRepository) FindDefault(_ context.Context) (*entity.Location, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	if len(m.st.locations) == 0 {
		return nil, nil
	}
	return m.st.locations[0], nil
}

type memoryInventoryRepository struct{ st *memoryState }

func (m *memoryInventoryRepository) Create(_ context.Context, inventory *entity.Inventory) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	m.st.inventories[inventory.ID] = inventory
	return nil
}

func (m *memoryInventoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Inventory, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	return m.st.inventories[id], nil
}

func (m *memoryInventoryRepository) FindByLocationID(_ context.Context, locationID uuid.UUID) ([]*entity.Inventory, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	var inventories []*entity.Inventory
	for _, inventory := range m.st.inventories {
		if inventory.Location != nil && inventory.Location.ID == locationID {
			inventories = append(inventories, inventory)
		}
	}
	sort.Slice(inventories, func(i, j int) bool {
		return inventories[i].Product.Name < inventories[j].Product.Name
	})
	return inventories, nil
}

func (m *memoryInventoryRepository) UpdateQuantity(_ context.Context, id uuid.UUID, quantity int) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	inventory, ok := m.st.inventories[id]
	if !ok {
		return errNotPersisted("inventory", id)
	}
	inventory.Quantity = quantity
	inventory.UpdatedAt = time.Now()
	return nil
}

type memoryOrderRepository struct{ st *memoryState }

func (m *memoryOrderRepository) Create(_ context.Context, order *entity.Order) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	m.st.orders[order.ID] = order
	return nil
}

func (m *memoryOrderRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	return m.st.orders[id], nil
}

func (m *memoryOrderRepository) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	var orders []*entity.Order
	for _, order := range m.st.orders {
		if order.Customer != nil && order.Customer.ID == customerID {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}

func (m *memoryOrderRepository) MarkCompleted(_ context.Context, id uuid.UUID) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	order, ok := m.st.orders[id]
	if !ok {
		return errNotPersisted("order", id)
	}
	order.Completed = true
	order.UpdatedAt = time.Now()
	return nil
}

type memoryOrderLineRepository struct{ st *memoryState }

func (m *memoryOrderLineRepository) Create(_ context.Context, line *entity.OrderLine) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	m.st.orderLines[line.ID] = line
	return nil
}

func (m *memoryOrderLineRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.OrderLine, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	return m.st.orderLines[id], nil
}

func (m *memoryOrderLineRepository) FindByOrderID(_ context.Context, orderID uuid.UUID) ([]*entity.OrderLine, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	var lines []*entity.OrderLine
	for _, line := range m.st.orderLines {
		if line.Order != nil && line.Order.ID == orderID {
			lines = append(lines, line)
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].CreatedAt.Before(lines[j].CreatedAt)
	})
	return lines, nil
}

type memorySessionRepository struct{ st *memoryState }

func (m *memorySessionRepository) Create(_ context.Context, session *entity.Session) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	m.st.sessions[session.Token.String()] = session
	return nil
}

func (m *memorySessionRepository) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()
	session, ok := m.st.sessions[token]
	if !ok || session.RevokedAt != nil || !session.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (m *memorySessionRepository) Revoke(_ context.Context, token string) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	session, ok := m.st.sessions[token]
	if !ok || session.RevokedAt != nil {
		return errSessionRevoked
	}
	now := time.Now()
	session.RevokedAt = &now
	return nil
}

func (m *memorySessionRepository) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	now := time.Now()
	for _, session := range m.st.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}

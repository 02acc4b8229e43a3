package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodexpress/pkg/models"
	"foodexpress/storage"
)

// In-memory storage fakes, mutex-guarded so concurrency tests can hammer
// them from many goroutines.

type mockStorage struct {
	items   *mockItemRepo
	drivers *mockDriverRepo
	orders  *mockOrderRepo
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		items:   &mockItemRepo{},
		drivers: &mockDriverRepo{},
		orders:  newMockOrderRepo(),
	}
}

func (m *mockStorage) Item() storage.IItemStorage     { return m.items }
func (m *mockStorage) Driver() storage.IDriverStorage { return m.drivers }
func (m *mockStorage) Order() storage.IOrderStorage   { return m.orders }
func (m *mockStorage) Auth() storage.IAuthStorage     { return nil }
func (m *mockStorage) Close()                         {}
func (m *mockStorage) GetPool() *pgxpool.Pool         { return nil }

type mockItemRepo struct {
	mu      sync.Mutex
	catalog []models.Item
	err     error
}

func (m *mockItemRepo) GetItemsData(ctx context.Context, ids []int64) ([]models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []models.Item
	for _, it := range m.catalog {
		if wanted[it.ID] {
			out = append(out, it)
		}
	}
	return out, nil
}

type mockDriverRepo struct {
	mu       sync.Mutex
	drivers  []*models.Driver
	released []int64
}

func (m *mockDriverRepo) GetAvailableDrivers(ctx context.Context) ([]*models.Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Driver
	for _, d := range m.drivers {
		if d.Status == models.DriverStatusAvailable {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDriverRepo) ClaimAvailableDriver(ctx context.Context) (*models.Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.drivers {
		if d.Status == models.DriverStatusAvailable {
			d.Status = models.DriverStatusDelivering
			claimed := *d
			return &claimed, nil
		}
	}
	return nil, models.ErrNoDriverAvailable
}

func (m *mockDriverRepo) SetStatus(ctx context.Context, status string, driverID int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.drivers {
		if d.ID == driverID {
			d.Status = status
			if status == models.DriverStatusAvailable {
				m.released = append(m.released, driverID)
			}
			return status, nil
		}
	}
	return "", errors.New("driver not found")
}

func (m *mockDriverRepo) SetStatusByUser(ctx context.Context, status string, userID int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.drivers {
		if d.UserID == userID {
			d.Status = status
			return status, nil
		}
	}
	return "", errors.New("driver not found")
}

func (m *mockDriverRepo) Register(ctx context.Context, userID int64) (*models.Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := &models.Driver{
		ID:     int64(len(m.drivers) + 1),
		UserID: userID,
		Status: models.DriverStatusUnavailable,
	}
	m.drivers = append(m.drivers, d)
	return d, nil
}

type mockOrderRepo struct {
	mu        sync.Mutex
	nextID    int64
	orders    map[int64]*models.Order
	items     map[int64][]models.OrderItem
	createErr error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{
		nextID: 1,
		orders: make(map[int64]*models.Order),
		items:  make(map[int64][]models.OrderItem),
	}
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.Order, items []models.OrderItem) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return 0, m.createErr
	}
	order.ID = m.nextID
	m.nextID++
	order.CreatedAt = time.Now()
	stored := *order
	m.orders[order.ID] = &stored
	for i := range items {
		items[i].OrderID = order.ID
	}
	m.items[order.ID] = items
	return order.ID, nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) GetUserOrders(ctx context.Context, userID int64) ([]*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) GetOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.items[orderID]
	out := make([]models.OrderItem, len(items))
	copy(out, items)
	return out, nil
}

func (m *mockOrderRepo) SetDeliveryStatus(ctx context.Context, status string, orderID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return errors.New("order not found")
	}
	o.DeliveryStatus = status
	return nil
}

func (m *mockOrderRepo) MarkDueDelivered(ctx context.Context, now time.Time) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []int64
	for _, o := range m.orders {
		if o.DeliveryStatus == models.OrderStatusPending && !o.DeliveryAt.After(now) {
			o.DeliveryStatus = models.OrderStatusDelivered
			ids = append(ids, o.ID)
		}
	}
	return ids, nil
}

func (m *mockOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

type mockRoute struct {
	info models.RoadInfo
	err  error
}

func (m *mockRoute) GetRoadInfo(ctx context.Context, destination string) (models.RoadInfo, error) {
	if m.err != nil {
		return models.RoadInfo{}, m.err
	}
	return m.info, nil
}

type mockIdem struct {
	mu       sync.Mutex
	reserved map[string]bool
}

func newMockIdem() *mockIdem {
	return &mockIdem{reserved: make(map[string]bool)}
}

func (m *mockIdem) Reserve(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reserved[key] {
		return false, nil
	}
	m.reserved[key] = true
	return true, nil
}

func (m *mockIdem) Release(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.reserved, key)
	return nil
}

type mockNotifier struct {
	mu        sync.Mutex
	created   []int64
	delivered []int64
}

func (m *mockNotifier) OrderCreated(order *models.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, order.ID)
}

func (m *mockNotifier) OrderDelivered(orderID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delivered = append(m.delivered, orderID)
}

func (m *mockNotifier) deliveredCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.delivered)
}

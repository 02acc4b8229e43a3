package storage

import (
	"context"
	"time"

	"foodexpress/pkg/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type IStorage interface {
	Item() IItemStorage
	Driver() IDriverStorage
	Order() IOrderStorage
	Auth() IAuthStorage
	Close()
	GetPool() *pgxpool.Pool
}

type IItemStorage interface {
	GetItemsData(ctx context.Context, ids []int64) ([]models.Item, error)
}

type IDriverStorage interface {
	GetAvailableDrivers(ctx context.Context) ([]*models.Driver, error)
	// ClaimAvailableDriver atomically picks the first available driver and
	// marks it delivering. Returns models.ErrNoDriverAvailable when the
	// pool is empty.
	ClaimAvailableDriver(ctx context.Context) (*models.Driver, error)
	SetStatus(ctx context.Context, status string, driverID int64) (string, error)
	SetStatusByUser(ctx context.Context, status string, userID int64) (string, error)
	Register(ctx context.Context, userID int64) (*models.Driver, error)
}

type IOrderStorage interface {
	// Create persists the order row and all its item rows in one
	// transaction and returns the new order id.
	Create(ctx context.Context, order *models.Order, items []models.OrderItem) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	GetUserOrders(ctx context.Context, userID int64) ([]*models.Order, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error)
	SetDeliveryStatus(ctx context.Context, status string, orderID int64) error
	// MarkDueDelivered flips every pending order whose delivery_at has
	// passed to delivered and returns the affected ids.
	MarkDueDelivered(ctx context.Context, now time.Time) ([]int64, error)
}

type IAuthStorage interface {
	GetUserIDByToken(ctx context.Context, token string) (int64, error)
}

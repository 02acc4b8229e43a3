package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodexpress/pkg/logger"
	"foodexpress/pkg/models"
	"foodexpress/storage"
)

type orderRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewOrderRepo(db *pgxpool.Pool, log logger.ILogger) storage.IOrderStorage {
	return &orderRepo{db: db, log: log}
}

// Create writes the order row and its item rows in one transaction, so a
// failure partway leaves no orphaned order behind.
func (r *orderRepo) Create(ctx context.Context, order *models.Order, items []models.OrderItem) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (user_id, driver_id, order_total, delivery_status, delivery_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_id, created_at
	`
	err = tx.QueryRow(ctx, query,
		order.UserID,
		order.DriverID,
		order.TotalPrice,
		order.DeliveryStatus,
		order.DeliveryAt,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		r.log.Error("failed to create order", logger.Error(err))
		return 0, err
	}

	for _, item := range items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, item_id, quantity, item_price)
			VALUES ($1, $2, $3, $4)`,
			order.ID, item.ItemID, item.Quantity, item.ItemPrice,
		)
		if err != nil {
			r.log.Error("failed to create order item",
				logger.Int64("order_id", order.ID),
				logger.Int64("item_id", item.ItemID),
				logger.Error(err))
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	query := `
		SELECT order_id, user_id, driver_id, order_total, delivery_status, delivery_at, created_at
		FROM orders
		WHERE order_id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.DriverID,
		&order.TotalPrice,
		&order.DeliveryStatus,
		&order.DeliveryAt,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to get order by id", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) GetUserOrders(ctx context.Context, userID int64) ([]*models.Order, error) {
	query := `
		SELECT order_id, user_id, driver_id, order_total, delivery_status, delivery_at, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to get user orders", logger.Int64("user_id", userID), logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.ID, &o.UserID, &o.DriverID, &o.TotalPrice, &o.DeliveryStatus, &o.DeliveryAt, &o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

func (r *orderRepo) GetOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	query := `
		SELECT order_id, item_id, quantity, item_price
		FROM order_items
		WHERE order_id = $1
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("failed to get order items", logger.Int64("order_id", orderID), logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.OrderID, &it.ItemID, &it.Quantity, &it.ItemPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *orderRepo) SetDeliveryStatus(ctx context.Context, status string, orderID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE orders SET delivery_status = $1 WHERE order_id = $2`, status, orderID)
	if err != nil {
		r.log.Error("failed to set delivery status", logger.Int64("order_id", orderID), logger.Error(err))
	}
	return err
}

func (r *orderRepo) MarkDueDelivered(ctx context.Context, now time.Time) ([]int64, error) {
	query := `
		UPDATE orders SET delivery_status = 'delivered'
		WHERE delivery_status = 'pending' AND delivery_at <= $1
		RETURNING order_id
	`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		r.log.Error("failed to mark due orders delivered", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

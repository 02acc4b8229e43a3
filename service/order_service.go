package service

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata" // the restaurant zone must resolve even without a system tz database

	"foodexpress/config"
	"foodexpress/pkg/clock"
	"foodexpress/pkg/logger"
	"foodexpress/pkg/models"
	"foodexpress/pkg/notify"
	"foodexpress/storage"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, lines []models.OrderLine, address, idempotencyKey string) (int64, error)
	GetOrder(ctx context.Context, orderID, userID int64) (*models.Order, error)
	GetUserOrders(ctx context.Context, userID int64) ([]*models.Order, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error)
}

type orderService struct {
	orders   storage.IOrderStorage
	items    storage.IItemStorage
	drivers  storage.IDriverStorage
	route    RouteEstimator
	idem     IdempotencyStore
	notifier notify.Notifier
	clk      clock.Clock
	loc      *time.Location
	rate     float64
	log      logger.ILogger
}

func NewOrderService(cfg config.Config, stg storage.IStorage, route RouteEstimator, idem IdempotencyStore, notifier notify.Notifier, clk clock.Clock, log logger.ILogger) OrderService {
	loc, err := time.LoadLocation(cfg.RestaurantTZ)
	if err != nil {
		log.Warning("unknown restaurant time zone, falling back to UTC", logger.String("tz", cfg.RestaurantTZ))
		loc = time.UTC
	}
	return &orderService{
		orders:   stg.Order(),
		items:    stg.Item(),
		drivers:  stg.Driver(),
		route:    route,
		idem:     idem,
		notifier: notifier,
		clk:      clk,
		loc:      loc,
		rate:     cfg.DeliveryRatePerMinute,
		log:      log,
	}
}

// CreateOrder prices the cart, estimates the delivery time, claims a driver
// and persists the order with its lines. The delivery deadline is stored on
// the order row; the sweeper completes the order once it passes.
func (s *orderService) CreateOrder(ctx context.Context, userID int64, lines []models.OrderLine, address, idempotencyKey string) (int64, error) {
	if idempotencyKey != "" && s.idem != nil {
		ok, err := s.idem.Reserve(ctx, idempotencyKey)
		if err != nil {
			return 0, fmt.Errorf("error creating order: idempotency check: %w", err)
		}
		if !ok {
			return 0, fmt.Errorf("error creating order: %w", models.ErrDuplicateRequest)
		}
	}

	orderID, err := s.createOrder(ctx, userID, lines, address)
	if err != nil {
		if idempotencyKey != "" && s.idem != nil {
			// Free the key so the client may retry the same request.
			if relErr := s.idem.Release(context.WithoutCancel(ctx), idempotencyKey); relErr != nil {
				s.log.Warning("failed to release idempotency key", logger.Error(relErr))
			}
		}
		return 0, err
	}
	return orderID, nil
}

func (s *orderService) createOrder(ctx context.Context, userID int64, lines []models.OrderLine, address string) (int64, error) {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}

	catalog, err := s.items.GetItemsData(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("error creating order: %w", err)
	}

	totals := calculateTotals(lines, catalog)

	road, err := s.route.GetRoadInfo(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("error creating order: %w", err)
	}

	deliveryCost := float64(road.TimeToDriveMinutes) * s.rate
	totalPrice := totals.ItemsSubtotal + deliveryCost
	totalTime := totals.TotalPreparationTime + road.TimeToDriveMinutes
	deliveryAt := s.clk.Now().Add(time.Duration(totalTime) * time.Minute)

	driver, err := s.drivers.ClaimAvailableDriver(ctx)
	if err != nil {
		return 0, fmt.Errorf("error creating order: %w", err)
	}

	prices := make(map[int64]float64, len(catalog))
	for _, item := range catalog {
		prices[item.ID] = item.Price
	}

	orderItems := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		price, ok := prices[line.ItemID]
		if !ok {
			continue
		}
		orderItems = append(orderItems, models.OrderItem{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			ItemPrice: price,
		})
	}

	order := &models.Order{
		UserID:         userID,
		DriverID:       driver.ID,
		TotalPrice:     totalPrice,
		DeliveryStatus: models.OrderStatusPending,
		DeliveryAt:     deliveryAt,
	}

	orderID, err := s.orders.Create(ctx, order, orderItems)
	if err != nil {
		// The order did not land, give the driver back.
		if _, relErr := s.drivers.SetStatus(context.WithoutCancel(ctx), models.DriverStatusAvailable, driver.ID); relErr != nil {
			s.log.Error("failed to release driver after order failure",
				logger.Int64("driver_id", driver.ID), logger.Error(relErr))
		}
		return 0, fmt.Errorf("error creating order: %w", err)
	}

	s.log.Info("order created",
		logger.Int64("order_id", orderID),
		logger.Int64("driver_id", driver.ID),
		logger.Float64("total", totalPrice),
		logger.Int("total_minutes", totalTime),
		logger.Float64("distance_km", road.DistanceKm))

	order.DeliveryTime = s.formatDeliveryTime(order.DeliveryAt)
	go s.notifier.OrderCreated(order)

	return orderID, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID, userID int64) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("error fetching order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("error fetching order: %w", models.ErrOrderNotFound)
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("error fetching order: %w", models.ErrForbidden)
	}
	order.DeliveryTime = s.formatDeliveryTime(order.DeliveryAt)
	return order, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID int64) ([]*models.Order, error) {
	orders, err := s.orders.GetUserOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching user orders: %w", err)
	}
	for _, o := range orders {
		o.DeliveryTime = s.formatDeliveryTime(o.DeliveryAt)
	}
	return orders, nil
}

func (s *orderService) GetOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	items, err := s.orders.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("error fetching order items: %w", err)
	}
	return items, nil
}

func (s *orderService) formatDeliveryTime(t time.Time) string {
	return t.In(s.loc).Format("15:04")
}

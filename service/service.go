package service

import (
	"context"

	"foodexpress/config"
	"foodexpress/pkg/clock"
	"foodexpress/pkg/logger"
	"foodexpress/pkg/models"
	"foodexpress/pkg/notify"
	"foodexpress/storage"
)

// RouteEstimator reports drive distance and duration to a delivery address.
type RouteEstimator interface {
	GetRoadInfo(ctx context.Context, destination string) (models.RoadInfo, error)
}

// IdempotencyStore guards order creation against double submits.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type IServiceManager interface {
	Order() OrderService
	Driver() DriverService
}

type service struct {
	orderService  OrderService
	driverService DriverService
}

func New(cfg config.Config, stg storage.IStorage, route RouteEstimator, idem IdempotencyStore, notifier notify.Notifier, clk clock.Clock, log logger.ILogger) IServiceManager {
	return &service{
		orderService:  NewOrderService(cfg, stg, route, idem, notifier, clk, log),
		driverService: NewDriverService(stg, log),
	}
}

func (s *service) Order() OrderService {
	return s.orderService
}

func (s *service) Driver() DriverService {
	return s.driverService
}

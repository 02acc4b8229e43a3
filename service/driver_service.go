package service

import (
	"context"
	"fmt"

	"foodexpress/pkg/logger"
	"foodexpress/pkg/models"
	"foodexpress/storage"
)

type DriverService interface {
	Register(ctx context.Context, userID int64) (*models.Driver, error)
	ChangeStatus(ctx context.Context, status string, userID int64) (string, error)
	GetAvailableDrivers(ctx context.Context) ([]*models.Driver, error)
}

type driverService struct {
	stg storage.IDriverStorage
	log logger.ILogger
}

func NewDriverService(stg storage.IStorage, log logger.ILogger) DriverService {
	return &driverService{
		stg: stg.Driver(),
		log: log,
	}
}

func (s *driverService) Register(ctx context.Context, userID int64) (*models.Driver, error) {
	driver, err := s.stg.Register(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error registering driver: %w", err)
	}
	s.log.Info("driver registered", logger.Int64("driver_id", driver.ID), logger.Int64("user_id", userID))
	return driver, nil
}

func (s *driverService) ChangeStatus(ctx context.Context, status string, userID int64) (string, error) {
	newStatus, err := s.stg.SetStatusByUser(ctx, status, userID)
	if err != nil {
		return "", fmt.Errorf("error changing driver status: %w", err)
	}
	return newStatus, nil
}

func (s *driverService) GetAvailableDrivers(ctx context.Context) ([]*models.Driver, error) {
	return s.stg.GetAvailableDrivers(ctx)
}

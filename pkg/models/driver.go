package models

import "time"

const (
	DriverStatusAvailable   = "available"
	DriverStatusDelivering  = "delivering"
	DriverStatusUnavailable = "unavailable"
)

type Driver struct {
	ID        int64     `json:"driver_id"`
	UserID    int64     `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

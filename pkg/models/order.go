package models

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
	OrderStatusCanceled   = "canceled"
)

type Order struct {
	ID             int64     `json:"order_id"`
	UserID         int64     `json:"user_id"`
	DriverID       int64     `json:"driver_id"`
	TotalPrice     float64   `json:"order_total"`
	DeliveryStatus string    `json:"delivery_status"`
	DeliveryAt     time.Time `json:"delivery_at"`
	// DeliveryTime is DeliveryAt rendered as HH:mm in the restaurant's
	// time zone. Display only, filled at read time.
	DeliveryTime string    `json:"delivery_time"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderItem snapshots quantity and unit price of one order line at the
// moment the order was placed.
type OrderItem struct {
	OrderID   int64   `json:"order_id"`
	ItemID    int64   `json:"item_id"`
	Quantity  int     `json:"quantity"`
	ItemPrice float64 `json:"item_price"`
}

// RoadInfo is what the route estimator reports for a delivery address.
type RoadInfo struct {
	DistanceKm         float64 `json:"distance_km"`
	TimeToDriveMinutes int     `json:"time_to_drive_minutes"`
}

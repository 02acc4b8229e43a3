package models

// Item is a read-only catalog record. Price and preparation time are
// snapshotted into order lines at order time and never re-read.
type Item struct {
	ID              int64   `json:"item_id"`
	Price           float64 `json:"price"`
	PreparationTime int     `json:"preparation_time"`
}

// OrderLine is one requested position of a new order.
type OrderLine struct {
	ItemID   int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

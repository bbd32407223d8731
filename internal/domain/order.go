package domain

import "time"

type Order struct {
	ID          uint
	Name        string
	PhoneNumber string
	Email       string
	Address     string
	City        string
	State       string
	Status      string
	TotalPrice  int
	CreatedAt   time.Time
}

const (
	OrderStatusPlaced    = "PLACED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusDelivered = "DELIVERED"
)

type OrderItem struct {
	ID           uint
	OrderID      uint
	MenuID       int
	Quantity     int
	PricePerItem int
}

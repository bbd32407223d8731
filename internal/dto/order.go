package dto

// OrderRequest is the POST /orders body. Prices and names are deliberately
// absent from the items: the backend reprices every item by menu_id and is
// the sole authority on what an order costs.
type OrderRequest struct {
	Name        string          `json:"name"`
	PhoneNumber string          `json:"phone_number"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Items       []OrderItemBody `json:"items"`
}

type OrderItemBody struct {
	MenuID   int `json:"menu_id"`
	Quantity int `json:"quantity"`
}

type OrderResponse struct {
	Message string `json:"message"`
	OrderID uint   `json:"order_id"`
}

// OrderDetail is the GET /orders/{orderID} response: the order header plus
// its priced items.
type OrderDetail struct {
	OrderID     uint              `json:"order_id"`
	Name        string            `json:"name"`
	PhoneNumber string            `json:"phone_number"`
	Email       string            `json:"email"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	State       string            `json:"state"`
	Status      string            `json:"status"`
	TotalPrice  int               `json:"total_price"`
	Items       []OrderDetailItem `json:"items"`
}

type OrderDetailItem struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	PricePerItem   int    `json:"price_per_item"`
	TotalItemPrice int    `json:"total_item_price"`
}

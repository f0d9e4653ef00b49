package models

type Order struct {
	ID              int         `json:"id"`
	DeliveryAddress string      `json:"delivery_address"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items"`
}

// OrderItem is the enriched line-item shape returned by the API,
// joined against the product catalog.
type OrderItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// AdminOrder extends the user-facing order with requester identity,
// as shown in the admin order listing.
type AdminOrder struct {
	ID              int         `json:"id"`
	UserFullName    string      `json:"user_full_name"`
	UserEmail       string      `json:"user_email"`
	DeliveryAddress string      `json:"delivery_address"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items"`
}

// AdminOrderRow is a single row of the flattened admin join, before
// rows are grouped by order id.
type AdminOrderRow struct {
	OrderID         int
	UserFullName    string
	UserEmail       string
	ProductName     string
	Quantity        int
	DeliveryAddress string
	Status          string
}

type CreateOrderRequest struct {
	Items           []CreateOrderItem `json:"items"`
	DeliveryAddress string            `json:"delivery_address"`
}

type CreateOrderItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

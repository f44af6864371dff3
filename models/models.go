package models

import (
	"time"
)

// Customer is the customer record persisted in Postgres.
type Customer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Email   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Phone   string `gorm:"type:varchar(10);not null" json:"phone"`
	Address string `gorm:"type:varchar(100);not null" json:"address"`
}

// CustomerAccount holds the login credentials tied to exactly one customer.
// Password is a bcrypt hash, never the raw value.
type CustomerAccount struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Username   string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"type:varchar(100);not null" json:"-"`
}

// Product is a catalog item with a live price and stock count.
type Product struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"type:varchar(100);not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
	Stock int     `gorm:"not null;default:0" json:"stock"`
}

// Order is the order header. OrderItems are created together with the
// header in one transaction and are immutable afterwards.
type Order struct {
	ID                   uint        `gorm:"primaryKey" json:"id"`
	CustomerID           uint        `gorm:"not null;index" json:"customer_id"`
	Customer             *Customer   `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	OrderDate            time.Time   `gorm:"type:date;not null" json:"order_date"`
	ExpectedDeliveryDate time.Time   `gorm:"type:date" json:"expected_delivery_date"`
	TotalPrice           float64     `gorm:"not null" json:"total_price"`
	OrderItems           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
}

// OrderItem is one line item of an order. Price is the unit price
// snapshotted at order time, independent of later product price changes.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"-"`
	OrderID   uint     `gorm:"not null;index" json:"-"`
	ProductID uint     `gorm:"not null" json:"product_id"`
	Product   *Product `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Price     float64  `gorm:"not null" json:"price"`
}

// CreateCustomerRequest is the payload for POST /customers. A customer and
// its account are always created together.
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required,min=1"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,len=10,numeric"`
	Address  string `json:"address" binding:"required,min=1"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateCustomerRequest is the payload for PUT /customers/:id.
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=1"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,len=10,numeric"`
	Address string `json:"address" binding:"required,min=1"`
}

// CreateAccountRequest is the payload for POST /customer_accounts.
type CreateAccountRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	Username   string `json:"username" binding:"required,min=3"`
	Password   string `json:"password" binding:"required,min=6"`
}

// UpdateAccountRequest is the payload for PUT /customer_accounts/:id.
type UpdateAccountRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

// ProductRequest is the payload for creating or updating a product.
// Price and Stock are pointers so that explicit zero values pass the
// required check; an omitted field is rejected rather than zeroed.
type ProductRequest struct {
	Name  string   `json:"name" binding:"required,min=1"`
	Price *float64 `json:"price" binding:"required,gte=0"`
	Stock *int     `json:"stock" binding:"required,gte=0"`
}

// OrderItemRequest is one requested line item of an order.
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// PlaceOrderRequest is the payload for POST /orders.
type PlaceOrderRequest struct {
	CustomerID uint               `json:"customer_id" binding:"required"`
	OrderDate  string             `json:"order_date" binding:"required,datetime=2006-01-02"`
	OrderItems []OrderItemRequest `json:"order_items" binding:"required,min=1,dive"`
}

// CustomerResponse lists exactly the customer fields exposed over HTTP.
type CustomerResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// AccountResponse exposes an account without its password hash.
type AccountResponse struct {
	ID         uint   `json:"id"`
	CustomerID uint   `json:"customer_id"`
	Username   string `json:"username"`
}

// ProductResponse lists exactly the product fields exposed over HTTP.
type ProductResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// OrderItemResponse is one line item within an order response.
type OrderItemResponse struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderResponse is the order header, optionally merged with its line items
// for composite reads. Dates render as YYYY-MM-DD.
type OrderResponse struct {
	ID                   uint                `json:"id"`
	CustomerID           uint                `json:"customer_id"`
	OrderDate            string              `json:"order_date"`
	ExpectedDeliveryDate string              `json:"expected_delivery_date"`
	TotalPrice           float64             `json:"total_price"`
	OrderItems           []OrderItemResponse `json:"order_items,omitempty"`
}

// NewCustomerResponse builds a CustomerResponse from a Customer.
func NewCustomerResponse(c *Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}

// NewAccountResponse builds an AccountResponse from a CustomerAccount.
func NewAccountResponse(a *CustomerAccount) AccountResponse {
	return AccountResponse{ID: a.ID, CustomerID: a.CustomerID, Username: a.Username}
}

// NewProductResponse builds a ProductResponse from a Product.
func NewProductResponse(p *Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
}

// NewOrderResponse builds an OrderResponse from an Order header. When
// withItems is true the line items are included as a composite record.
func NewOrderResponse(o *Order, withItems bool) OrderResponse {
	resp := OrderResponse{
		ID:                   o.ID,
		CustomerID:           o.CustomerID,
		OrderDate:            o.OrderDate.Format(time.DateOnly),
		ExpectedDeliveryDate: o.ExpectedDeliveryDate.Format(time.DateOnly),
		TotalPrice:           o.TotalPrice,
	}
	if withItems {
		items := make([]OrderItemResponse, 0, len(o.OrderItems))
		for _, it := range o.OrderItems {
			items = append(items, OrderItemResponse{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
		}
		resp.OrderItems = items
	}
	return resp
}

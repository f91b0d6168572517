// internal/domain/models.go
package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

// User is whoever the auth collaborator says is signed in. The role is
// trusted as given; there is no session or token re-validation here.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  Role   `json:"role"`
}

// Product is catalog-owned and immutable from the storefront's point of
// view. Prices are whole rupees. OriginalPrice is zero for products that
// were never discounted.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"original_price,omitempty"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	Images        []string `json:"images,omitempty"`
	Description   string   `json:"description"`
	VendorID      string   `json:"vendor_id"`
	VendorName    string   `json:"vendor_name"`
	Market        string   `json:"market"`
	InStock       bool     `json:"in_stock"`
}

type Vendor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OwnerName      string `json:"owner_name"`
	Phone          string `json:"phone"`
	Market         string `json:"market"`
	Approved       bool   `json:"approved"`
	CommissionRate int64  `json:"commission_rate"`
	TotalSales     int64  `json:"total_sales"`
	ProductsCount  int64  `json:"products_count"`
}

// Address is the shipping destination collected at checkout. Every field
// is required; checkout rejects an order when any of them is blank.
type Address struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

// OrderItem is a frozen copy of a cart line taken at checkout. Catalog
// price changes after that instant never touch it.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
	Image     string `json:"image,omitempty"`
}

// Order is immutable after creation except for Status, which only ever
// moves forward through the fulfilment sequence.
type Order struct {
	ID              string      `json:"id"`
	CreatedAt       time.Time   `json:"created_at"`
	Status          OrderStatus `json:"status"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shipping_address"`
	Total           int64       `json:"total"`
}

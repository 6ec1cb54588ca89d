package transport

import (
	"github.com/shopspring/decimal"
)

// FieldError identifies the first request field that failed validation. The
// API boundary renders it as a 400 body of the form {message, field}.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ProductFilter carries the optional catalog listing filters. All present
// filters are ANDed; absence of all of them returns the full catalog
// newest-first.
type ProductFilter struct {
	Category string
	Search   string
	Brand    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     string
}

type CreateProductRequest struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	StockStatus    string            `json:"stock_status"`
	Category       string            `json:"category"`
	SubCategory    string            `json:"sub_category"`
	Brand          string            `json:"brand"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	IsFeatured     bool              `json:"is_featured"`
}

type CreateOrderItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	Items           []CreateOrderItem `json:"items"`
	DeliveryMethod  string            `json:"delivery_method"`
	DeliveryAddress string            `json:"delivery_address"`
	PaymentMethod   string            `json:"payment_method"`
}

type CreateReviewRequest struct {
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	ImageURL string `json:"image_url"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

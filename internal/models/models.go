package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             uint              `gorm:"primaryKey;autoIncrement"             json:"id"`
	Name           string            `gorm:"not null"                             json:"name"`
	Description    string            `gorm:"not null"                             json:"description"`
	Price          decimal.Decimal   `gorm:"type:decimal(10,2);not null"          json:"price"`
	StockStatus    StockStatus       `gorm:"type:varchar(20);default:'in_stock'"  json:"stock_status"`
	Category       string            `gorm:"not null;index"                       json:"category"`
	SubCategory    string            `json:"sub_category"`
	Brand          string            `gorm:"not null;index"                       json:"brand"`
	Images         []string          `gorm:"serializer:json"                      json:"images"`
	Specifications map[string]string `gorm:"serializer:json"                      json:"specifications"`
	IsFeatured     bool              `gorm:"default:false"                        json:"is_featured"`
	CreatedAt      time.Time         `json:"created_at"`
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"             json:"id"`
	Username     string    `gorm:"unique;not null"                      json:"username"`
	PasswordHash string    `gorm:"not null"                             json:"-"`
	Role         Role      `gorm:"type:varchar(20);default:'customer'"  json:"role"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
}

type Order struct {
	ID              uint            `gorm:"primaryKey;autoIncrement"            json:"id"`
	UserID          uint            `gorm:"index;not null"                      json:"user_id"`
	Status          OrderStatus     `gorm:"type:varchar(20);default:'pending'"  json:"status"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"         json:"total_amount"`
	PaymentMethod   PaymentMethod   `gorm:"type:varchar(20);not null"           json:"payment_method"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);default:'pending'"  json:"payment_status"`
	DeliveryMethod  DeliveryMethod  `gorm:"type:varchar(20);not null"           json:"delivery_method"`
	DeliveryAddress string          `gorm:"not null"                            json:"delivery_address"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"                  json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem.Price is the per-unit price snapshot taken at order creation.
// Later catalog price changes never alter historical orders.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	OrderID   uint            `gorm:"index;not null"              json:"order_id"`
	ProductID uint            `gorm:"not null"                    json:"product_id"`
	Quantity  uint            `gorm:"check:quantity>0"            json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Product   *Product        `gorm:"foreignKey:ProductID"        json:"product,omitempty"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null"           json:"product_id"`
	UserID    uint      `gorm:"not null"                 json:"user_id"`
	Rating    int       `gorm:"not null"                 json:"rating"`
	Comment   string    `json:"comment"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewWithAuthor is the read shape for review listings: the review row
// joined with the submitting user's display name.
type ReviewWithAuthor struct {
	Review
	Username string `json:"username"`
}

package models

type StockStatus string

const (
	StockInStock      StockStatus = "in_stock"
	StockLimitedStock StockStatus = "limited_stock"
	StockOutOfStock   StockStatus = "out_of_stock"
)

func (s StockStatus) IsValid() bool {
	switch s {
	case StockInStock, StockLimitedStock, StockOutOfStock:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPacked         OrderStatus = "packed"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPacked, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCOD   PaymentMethod = "cod"
	PaymentBkash PaymentMethod = "bkash"
	PaymentNagad PaymentMethod = "nagad"
	PaymentBank  PaymentMethod = "bank"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCOD, PaymentBkash, PaymentNagad, PaymentBank:
		return true
	}
	return false
}

type DeliveryMethod string

const (
	DeliveryHome        DeliveryMethod = "home"
	DeliveryStorePickup DeliveryMethod = "store_pickup"
)

func (m DeliveryMethod) IsValid() bool {
	switch m {
	case DeliveryHome, DeliveryStorePickup:
		return true
	}
	return false
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	}
	return false
}

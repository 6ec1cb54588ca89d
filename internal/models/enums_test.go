package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockStatusIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    StockStatus
		valid bool
	}{
		{StockInStock, true},
		{StockLimitedStock, true},
		{StockOutOfStock, true},
		{StockStatus(""), false},
		{StockStatus("backordered"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.in.IsValid(), "stock status %q", tt.in)
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderPacked, OrderOutForDelivery, OrderDelivered, OrderCancelled} {
		assert.True(t, s.IsValid(), "order status %q", s)
	}
	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestPaymentAndDeliveryEnums(t *testing.T) {
	t.Parallel()

	for _, m := range []PaymentMethod{PaymentCOD, PaymentBkash, PaymentNagad, PaymentBank} {
		assert.True(t, m.IsValid(), "payment method %q", m)
	}
	assert.False(t, PaymentMethod("paypal").IsValid())

	assert.True(t, DeliveryHome.IsValid())
	assert.True(t, DeliveryStorePickup.IsValid())
	assert.False(t, DeliveryMethod("drone").IsValid())

	for _, s := range []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed} {
		assert.True(t, s.IsValid(), "payment status %q", s)
	}
	assert.False(t, PaymentStatus("refunded").IsValid())

	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleCustomer.IsValid())
	assert.False(t, Role("owner").IsValid())
}

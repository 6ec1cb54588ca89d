package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/soundline/storefront/internal/events"
	"github.com/soundline/storefront/internal/logging"
	"github.com/soundline/storefront/internal/models"
	"github.com/soundline/storefront/internal/repo"
	"github.com/soundline/storefront/internal/transport"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer

	// StrictItems turns an unresolvable product id into a validation failure
	// instead of silently dropping the line.
	StrictItems bool
}

// CreateOrder turns a cart-shaped request into a persisted order. Each
// product's price is read once and that value feeds both the total and the
// item snapshot, so a concurrent catalog price change cannot be observed
// twice within one order.
func (svc *OrderService) CreateOrder(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fieldError("items", "items must not be empty")
	}
	for i := range req.Items {
		if req.Items[i].ProductID == 0 {
			return nil, fieldError(fmt.Sprintf("items.%d.product_id", i), "product_id is required")
		}
		if req.Items[i].Quantity <= 0 {
			return nil, fieldError(fmt.Sprintf("items.%d.quantity", i), "quantity must be a positive integer")
		}
	}
	deliveryMethod := models.DeliveryMethod(req.DeliveryMethod)
	if !deliveryMethod.IsValid() {
		return nil, fieldError("delivery_method", "unknown delivery method")
	}
	if req.DeliveryAddress == "" {
		return nil, fieldError("delivery_address", "delivery_address is required")
	}
	paymentMethod := models.PaymentMethod(req.PaymentMethod)
	if !paymentMethod.IsValid() {
		return nil, fieldError("payment_method", "unknown payment method")
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(req.Items))

	for i := range req.Items {
		prod, err := svc.Repo.GetProduct(ctx, req.Items[i].ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if svc.StrictItems {
				return nil, fieldError(fmt.Sprintf("items.%d.product_id", i), "unknown product")
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		qty := uint(req.Items[i].Quantity)
		total = total.Add(prod.Price.Mul(decimal.NewFromInt(int64(qty))))
		items = append(items, models.OrderItem{
			ProductID: prod.ID,
			Quantity:  qty,
			Price:     prod.Price,
		})
	}

	order := &models.Order{
		UserID:          userID,
		Status:          models.OrderPending,
		TotalAmount:     total,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   models.PaymentPending,
		DeliveryMethod:  deliveryMethod,
		DeliveryAddress: req.DeliveryAddress,
	}

	if _, err := svc.Repo.CreateOrder(ctx, order, items); err != nil {
		return nil, err
	}

	l := logging.FromContext(ctx)
	if err := svc.Producer.Publish(ctx, events.TopicOrders, order.ID, map[string]any{
		"type":     "order_created",
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.TotalAmount.String(),
	}); err != nil {
		l.Warn("order_event_error", "order_id", order.ID, "error", err)
	}

	return order, nil
}

func (svc *OrderService) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return svc.Repo.ListOrders(ctx, userID)
}

// GetOrder enforces ownership: callers may only read their own orders.
func (svc *OrderService) GetOrder(ctx context.Context, callerID, orderID uint) (*models.Order, error) {
	order, err := svc.Repo.GetOrder(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.UserID != callerID {
		return nil, ErrForbidden
	}
	return order, nil
}

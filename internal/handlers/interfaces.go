package handlers

import (
	"context"

	"github.com/avoronova/servicedesk/internal/payment"
	"github.com/avoronova/servicedesk/internal/types"
)

type Store interface {
	CreateOrder(ctx context.Context, customerName string, serviceType string, address string) (types.Order, error)
	GetOrder(ctx context.Context, orderID int) (types.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, newStatus types.Status) error
	MarkOrderPaid(ctx context.Context, orderID int, amountCents int64, chargeID string) error
}

type Notifier interface {
	NotifyStatusUpdate(phone string, email string, status types.Status) []error
}

type ChargeClient interface {
	CreateCharge(amountCents int64, source string, description string) (*payment.Charge, error)
}

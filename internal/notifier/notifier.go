package notifier

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// OrderConfirmation is what a customer is told once an order commits.
type OrderConfirmation struct {
	OrderID      uint
	CustomerName string
	Email        string
	Phone        string
	TotalAmount  decimal.Decimal
}

type Notifier interface {
	NotifyOrderCreated(ctx context.Context, oc OrderConfirmation) error
}

// Multi fans a confirmation out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) NotifyOrderCreated(ctx context.Context, oc OrderConfirmation) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyOrderCreated(ctx, oc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type Noop struct{}

func (Noop) NotifyOrderCreated(context.Context, OrderConfirmation) error { return nil }

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Keoroanthony/go-crm/internal/models"
	"github.com/Keoroanthony/go-crm/internal/notifier"
)

type OrderInput struct {
	CustomerID uint
	ProductIDs []uint
	// OrderDate defaults to the creation time when nil.
	OrderDate *time.Time
}

type OrderResult struct {
	Order   *models.Order
	Message string
}

func (s *CreationService) CreateOrder(ctx context.Context, in OrderInput) (OrderResult, error) {
	var res OrderResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, in.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				res.Message = MsgInvalidCustomer
				return nil
			}
			return err
		}

		var products []models.Product
		if len(in.ProductIDs) > 0 {
			if err := tx.Where("id IN ?", in.ProductIDs).Order("id").Find(&products).Error; err != nil {
				return err
			}
		}

		// repeated ids resolve to fewer products than requested
		if len(products) != len(in.ProductIDs) {
			res.Message = MsgInvalidProductIDs
			return nil
		}
		if len(products) == 0 {
			res.Message = MsgNoProducts
			return nil
		}

		orderDate := s.now()
		if in.OrderDate != nil {
			orderDate = *in.OrderDate
		}
		orderDate = orderDate.UTC()

		order := models.Order{
			CustomerID:  customer.ID,
			Products:    products,
			OrderDate:   orderDate,
			TotalAmount: sumPrices(products),
		}

		// products already exist; only the join rows are written
		if err := tx.Omit("Customer", "Products.*").Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Preload("Customer").Preload("Products", orderByID("products")).First(&order, order.ID).Error; err != nil {
			return err
		}

		res = OrderResult{Order: &order, Message: MsgOrderCreated}
		return nil
	})
	if err != nil {
		return OrderResult{}, fmt.Errorf("failed to create order: %w", err)
	}

	if res.Order != nil {
		s.notifyOrderCreated(ctx, res.Order)
	}

	return res, nil
}

// notifyOrderCreated runs after commit; a failed notification never fails
// the order.
func (s *CreationService) notifyOrderCreated(ctx context.Context, order *models.Order) {
	oc := notifier.OrderConfirmation{
		OrderID:      order.ID,
		CustomerName: order.Customer.Name,
		Email:        order.Customer.Email,
		TotalAmount:  order.TotalAmount,
	}
	if order.Customer.Phone != nil {
		oc.Phone = *order.Customer.Phone
	}

	if err := s.notifier.NotifyOrderCreated(ctx, oc); err != nil {
		log.Printf("Failed to notify customer %d about order %d: %v", order.CustomerID, order.ID, err)
	}
}

func sumPrices(products []models.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}

func orderByID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id")
	}
}

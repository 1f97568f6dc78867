package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Keoroanthony/go-crm/internal/models"
)

func (s *QueryService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := s.db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *QueryService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListOrders returns every order with its customer and products loaded.
func (s *QueryService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Products", orderByID("products")).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// AverageProductPrice is rounded to cents and zero for an empty catalogue.
func (s *QueryService) AverageProductPrice(ctx context.Context) (decimal.Decimal, error) {
	var avg decimal.Decimal
	err := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("COALESCE(AVG(price), 0)").
		Row().
		Scan(&avg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to average product prices: %w", err)
	}
	return avg.Round(2), nil
}

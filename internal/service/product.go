package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Keoroanthony/go-crm/internal/models"
)

type ProductInput struct {
	Name  string
	Price decimal.Decimal
	Stock *int
}

// CreateProduct fails with validation.ErrInvalidInput on a non-positive price,
// negative stock or blank name.
func (s *CreationService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	stock, err := s.validator.ValidateProduct(in.Name, in.Price, in.Stock)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		Name:  in.Name,
		Price: in.Price,
		Stock: stock,
	}

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

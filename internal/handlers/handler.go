package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Keoroanthony/go-crm/internal/models"
	"github.com/Keoroanthony/go-crm/internal/service"
)

// Creator is implemented by *service.CreationService.
type Creator interface {
	CreateCustomer(ctx context.Context, in service.CustomerInput) (service.CustomerResult, error)
	BulkCreateCustomers(ctx context.Context, inputs []service.CustomerInput) (service.BulkResult, error)
	CreateProduct(ctx context.Context, in service.ProductInput) (*models.Product, error)
	CreateOrder(ctx context.Context, in service.OrderInput) (service.OrderResult, error)
}

// Querier is implemented by *service.QueryService.
type Querier interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	AverageProductPrice(ctx context.Context) (decimal.Decimal, error)
}

type Handler struct {
	creator Creator
	querier Querier
}

func New(creator Creator, querier Querier) *Handler {
	return &Handler{creator: creator, querier: querier}
}

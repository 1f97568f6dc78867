package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keoroanthony/go-crm/internal/models"
	"github.com/Keoroanthony/go-crm/internal/service"
)

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("totals product prices and defaults the date", func(t *testing.T) {
		creation, _, testDB, rec := newServices(t)
		customer := seedCustomer(t, testDB, "Alice", "alice@example.com")
		p1 := seedProduct(t, testDB, "P1", "10.00")
		p2 := seedProduct(t, testDB, "P2", "5.50")

		before := time.Now()
		res, err := creation.CreateOrder(ctx, service.OrderInput{
			CustomerID: customer.ID,
			ProductIDs: []uint{p1.ID, p2.ID},
		})
		require.NoError(t, err)
		require.NotNil(t, res.Order)

		assert.Equal(t, service.MsgOrderCreated, res.Message)
		assert.True(t, res.Order.TotalAmount.Equal(decimal.RequireFromString("15.50")), res.Order.TotalAmount.String())
		assert.WithinDuration(t, before, res.Order.OrderDate, 5*time.Second)
		assert.Equal(t, customer.ID, res.Order.Customer.ID)
		require.Len(t, res.Order.Products, 2)
		assert.Equal(t, p1.ID, res.Order.Products[0].ID)
		assert.Equal(t, p2.ID, res.Order.Products[1].ID)

		require.Len(t, rec.sent, 1)
		assert.Equal(t, res.Order.ID, rec.sent[0].OrderID)
		assert.Equal(t, "alice@example.com", rec.sent[0].Email)
	})

	t.Run("keeps a caller supplied date", func(t *testing.T) {
		creation, _, testDB, _ := newServices(t)
		customer := seedCustomer(t, testDB, "Alice", "alice@example.com")
		p1 := seedProduct(t, testDB, "P1", "2.00")

		when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		res, err := creation.CreateOrder(ctx, service.OrderInput{
			CustomerID: customer.ID,
			ProductIDs: []uint{p1.ID},
			OrderDate:  &when,
		})
		require.NoError(t, err)
		require.NotNil(t, res.Order)
		assert.True(t, when.Equal(res.Order.OrderDate))
	})

	t.Run("unknown customer", func(t *testing.T) {
		creation, _, testDB, rec := newServices(t)
		p1 := seedProduct(t, testDB, "P1", "2.00")

		res, err := creation.CreateOrder(ctx, service.OrderInput{CustomerID: 999, ProductIDs: []uint{p1.ID}})
		require.NoError(t, err)
		assert.Nil(t, res.Order)
		assert.Equal(t, service.MsgInvalidCustomer, res.Message)
		assert.Empty(t, rec.sent)
	})

	t.Run("unknown product", func(t *testing.T) {
		creation, _, testDB, _ := newServices(t)
		customer := seedCustomer(t, testDB, "Alice", "alice@example.com")
		p1 := seedProduct(t, testDB, "P1", "2.00")

		res, err := creation.CreateOrder(ctx, service.OrderInput{CustomerID: customer.ID, ProductIDs: []uint{p1.ID, 999}})
		require.NoError(t, err)
		assert.Nil(t, res.Order)
		assert.Equal(t, service.MsgInvalidProductIDs, res.Message)

		var count int64
		testDB.Model(&models.Order{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("repeated product id", func(t *testing.T) {
		creation, _, testDB, _ := newServices(t)
		customer := seedCustomer(t, testDB, "Alice", "alice@example.com")
		p1 := seedProduct(t, testDB, "P1", "2.00")

		res, err := creation.CreateOrder(ctx, service.OrderInput{CustomerID: customer.ID, ProductIDs: []uint{p1.ID, p1.ID}})
		require.NoError(t, err)
		assert.Equal(t, service.MsgInvalidProductIDs, res.Message)
	})

	t.Run("no products", func(t *testing.T) {
		creation, _, testDB, _ := newServices(t)
		customer := seedCustomer(t, testDB, "Alice", "alice@example.com")

		res, err := creation.CreateOrder(ctx, service.OrderInput{CustomerID: customer.ID, ProductIDs: []uint{}})
		require.NoError(t, err)
		assert.Nil(t, res.Order)
		assert.Equal(t, service.MsgNoProducts, res.Message)
	})

	t.Run("total is not re-derived after a price change", func(t *testing.T) {
		creation, query, testDB, _ := newServices(t)
		customer := seedCustomer(t, testDB, "Alice", "alice@example.com")
		p1 := seedProduct(t, testDB, "P1", "10.00")

		res, err := creation.CreateOrder(ctx, service.OrderInput{CustomerID: customer.ID, ProductIDs: []uint{p1.ID}})
		require.NoError(t, err)
		require.NotNil(t, res.Order)

		require.NoError(t, testDB.Model(&p1).Update("price", decimal.RequireFromString("99.00")).Error)

		orders, err := query.ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.True(t, orders[0].TotalAmount.Equal(decimal.RequireFromString("10")))
	})

	t.Run("notification failure does not fail the order", func(t *testing.T) {
		creation, _, testDB, rec := newServices(t)
		rec.err = errors.New("sms gateway down")
		customer := seedCustomer(t, testDB, "Alice", "alice@example.com")
		p1 := seedProduct(t, testDB, "P1", "1.00")

		res, err := creation.CreateOrder(ctx, service.OrderInput{CustomerID: customer.ID, ProductIDs: []uint{p1.ID}})
		require.NoError(t, err)
		require.NotNil(t, res.Order)
		assert.Len(t, rec.sent, 1)
	})
}

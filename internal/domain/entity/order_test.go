package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartSubtotal(t *testing.T) {
	items := []*CartItem{
		{Quantity: 2, Product: &Product{Price: decimal.RequireFromString("3500")}},
		{Quantity: 1, Product: &Product{Price: decimal.RequireFromString("8000")}},
	}

	assert.True(t, CartSubtotal(items).Equal(decimal.RequireFromString("15000")))
}

func TestCartSubtotal_Empty(t *testing.T) {
	assert.True(t, CartSubtotal(nil).IsZero())
}

func TestCartItem_LineTotal_ProductNotLoaded(t *testing.T) {
	item := &CartItem{Quantity: 3}

	assert.True(t, item.LineTotal().IsZero())
}

func TestOrder_Subtotal(t *testing.T) {
	order := &Order{
		TotalAmount:    decimal.RequireFromString("54000"),
		DiscountAmount: decimal.RequireFromString("6000"),
	}

	assert.True(t, order.Subtotal().Equal(decimal.RequireFromString("60000")))
}

func TestOrder_ContainsProduct(t *testing.T) {
	productID := uuid.New()
	order := &Order{
		Items: []*OrderItem{
			{ProductID: uuid.New()},
			{ProductID: productID},
		},
	}

	assert.True(t, order.ContainsProduct(productID))
	assert.False(t, order.ContainsProduct(uuid.New()))
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := &OrderItem{
		Quantity: 4,
		Price:    decimal.RequireFromString("2500"),
	}

	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("10000")))
}

func TestProduct_InStock(t *testing.T) {
	product := &Product{Stock: 5}

	assert.True(t, product.InStock(5))
	assert.False(t, product.InStock(6))
}

func TestPromoCode_IsExhausted(t *testing.T) {
	limit := 3
	code := &PromoCode{UsageLimit: &limit, UsedCount: 2}
	assert.False(t, code.IsExhausted())

	code.UsedCount = 3
	assert.True(t, code.IsExhausted())

	code.UsageLimit = nil
	assert.False(t, code.IsExhausted())
}

package promo

import (
	"testing"
	"time"

	"sayur/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fixedPromo(value, minimum string) *entity.PromoCode {
	return &entity.PromoCode{
		Code:          "SAYUR50K",
		Type:          entity.PromoTypeFixed,
		Value:         decimal.RequireFromString(value),
		MinimumAmount: decimal.RequireFromString(minimum),
		IsActive:      true,
	}
}

func percentagePromo(value, minimum string) *entity.PromoCode {
	return &entity.PromoCode{
		Code:          "WELCOME10",
		Type:          entity.PromoTypePercentage,
		Value:         decimal.RequireFromString(value),
		MinimumAmount: decimal.RequireFromString(minimum),
		IsActive:      true,
	}
}

func TestEvaluate_NilCode(t *testing.T) {
	result := Evaluate(nil, decimal.RequireFromString("15000"), time.Now())

	assert.Equal(t, EligibilityNotFound, result.Eligibility)
	assert.True(t, result.Discount.IsZero())
}

func TestEvaluate_FixedBelowMinimum(t *testing.T) {
	// Cart of {3500 x2, 8000 x1} = 15000 against a 5000-off code with a
	// 30000 minimum spend: ineligible, checkout proceeds at full price.
	code := fixedPromo("5000", "30000")
	subtotal := decimal.RequireFromString("15000")

	result := Evaluate(code, subtotal, time.Now())

	assert.Equal(t, EligibilityBelowMinimum, result.Eligibility)
	assert.True(t, result.Discount.IsZero())
}

func TestEvaluate_FixedApplied(t *testing.T) {
	code := fixedPromo("5000", "30000")
	subtotal := decimal.RequireFromString("45000")

	result := Evaluate(code, subtotal, time.Now())

	assert.Equal(t, EligibilityApplied, result.Eligibility)
	assert.True(t, result.Discount.Equal(decimal.RequireFromString("5000")))
}

func TestEvaluate_PercentageApplied(t *testing.T) {
	code := percentagePromo("10", "50000")
	subtotal := decimal.RequireFromString("60000")

	result := Evaluate(code, subtotal, time.Now())

	assert.Equal(t, EligibilityApplied, result.Eligibility)
	assert.True(t, result.Discount.Equal(decimal.RequireFromString("6000")),
		"expected 6000, got %s", result.Discount)
}

func TestEvaluate_PercentageOfLargeSubtotal(t *testing.T) {
	code := percentagePromo("10", "0")
	subtotal := decimal.RequireFromString("100000")

	result := Evaluate(code, subtotal, time.Now())

	assert.True(t, result.Discount.Equal(decimal.RequireFromString("10000")))
}

func TestEvaluate_Expired(t *testing.T) {
	expiry := time.Now().Add(-time.Hour)
	code := fixedPromo("5000", "0")
	code.ExpiresAt = &expiry

	result := Evaluate(code, decimal.RequireFromString("45000"), time.Now())

	assert.Equal(t, EligibilityExpired, result.Eligibility)
	assert.True(t, result.Discount.IsZero())
}

func TestEvaluate_NotYetExpired(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	code := fixedPromo("5000", "0")
	code.ExpiresAt = &expiry

	result := Evaluate(code, decimal.RequireFromString("45000"), time.Now())

	assert.Equal(t, EligibilityApplied, result.Eligibility)
}

func TestEvaluate_Inactive(t *testing.T) {
	code := fixedPromo("5000", "0")
	code.IsActive = false

	result := Evaluate(code, decimal.RequireFromString("45000"), time.Now())

	assert.Equal(t, EligibilityInactive, result.Eligibility)
	assert.True(t, result.Discount.IsZero())
}

func TestEvaluate_Exhausted(t *testing.T) {
	limit := 100
	code := fixedPromo("5000", "0")
	code.UsageLimit = &limit
	code.UsedCount = 100

	result := Evaluate(code, decimal.RequireFromString("45000"), time.Now())

	assert.Equal(t, EligibilityExhausted, result.Eligibility)
	assert.True(t, result.Discount.IsZero())
}

func TestEvaluate_UnlimitedUsage(t *testing.T) {
	code := fixedPromo("5000", "0")
	code.UsedCount = 1000000

	result := Evaluate(code, decimal.RequireFromString("45000"), time.Now())

	assert.Equal(t, EligibilityApplied, result.Eligibility)
}

func TestEvaluate_DiscountClampedToSubtotal(t *testing.T) {
	// A fixed discount larger than the cart never produces a negative total.
	code := fixedPromo("50000", "0")
	subtotal := decimal.RequireFromString("12000")

	result := Evaluate(code, subtotal, time.Now())

	assert.Equal(t, EligibilityApplied, result.Eligibility)
	assert.True(t, result.Discount.Equal(subtotal))
}

func TestEvaluate_NegativeValueClampedToZero(t *testing.T) {
	code := fixedPromo("-100", "0")

	result := Evaluate(code, decimal.RequireFromString("12000"), time.Now())

	assert.False(t, result.Discount.IsNegative())
}

func TestEvaluate_UnknownTypeGrantsNothing(t *testing.T) {
	code := fixedPromo("5000", "0")
	code.Type = entity.PromoType("buy_one_get_one")

	result := Evaluate(code, decimal.RequireFromString("45000"), time.Now())

	assert.NotEqual(t, EligibilityApplied, result.Eligibility)
	assert.True(t, result.Discount.IsZero())
}

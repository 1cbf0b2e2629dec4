// Package promo computes checkout discounts for promo codes.
package promo

import (
	"time"

	"sayur/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Eligibility explains the outcome of evaluating a promo code against a subtotal.
type Eligibility string

const (
	// EligibilityApplied means the code is valid and a discount was computed.
	EligibilityApplied Eligibility = "applied"
	// EligibilityNotFound means no active code matched the given string.
	EligibilityNotFound Eligibility = "not_found"
	// EligibilityExpired means the code has passed its expiry.
	EligibilityExpired Eligibility = "expired"
	// EligibilityInactive means the code has been switched off.
	EligibilityInactive Eligibility = "inactive"
	// EligibilityBelowMinimum means the subtotal is under the code's minimum amount.
	EligibilityBelowMinimum Eligibility = "below_minimum"
	// EligibilityExhausted means the code's usage limit has been reached.
	EligibilityExhausted Eligibility = "exhausted"
)

// Result is the outcome of a promo evaluation. Discount is always >= 0 and
// <= the subtotal it was evaluated against; it is zero for every non-applied
// eligibility.
type Result struct {
	Discount    decimal.Decimal
	Eligibility Eligibility
}

var oneHundred = decimal.NewFromInt(100)

// Evaluate computes the discount a promo code grants against a subtotal at a
// given time. A nil code means lookup already failed; every ineligible path
// degrades to a zero discount rather than an error, so checkout can proceed at
// full price.
func Evaluate(code *entity.PromoCode, subtotal decimal.Decimal, now time.Time) Result {
	if code == nil {
		return Result{Discount: decimal.Zero, Eligibility: EligibilityNotFound}
	}
	if !code.IsActive {
		return Result{Discount: decimal.Zero, Eligibility: EligibilityInactive}
	}
	if code.IsExpired(now) {
		return Result{Discount: decimal.Zero, Eligibility: EligibilityExpired}
	}
	if subtotal.LessThan(code.MinimumAmount) {
		return Result{Discount: decimal.Zero, Eligibility: EligibilityBelowMinimum}
	}
	if code.IsExhausted() {
		return Result{Discount: decimal.Zero, Eligibility: EligibilityExhausted}
	}

	var discount decimal.Decimal
	switch code.Type {
	case entity.PromoTypePercentage:
		discount = subtotal.Mul(code.Value).Div(oneHundred)
	case entity.PromoTypeFixed:
		discount = code.Value
	default:
		return Result{Discount: decimal.Zero, Eligibility: EligibilityNotFound}
	}

	// A discount never exceeds the subtotal it applies to.
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	return Result{Discount: discount, Eligibility: EligibilityApplied}
}

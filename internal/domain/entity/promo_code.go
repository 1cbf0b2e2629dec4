// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromoType represents the kind of discount a promo code grants.
type PromoType string

const (
	// PromoTypePercentage discounts a percentage of the cart subtotal.
	PromoTypePercentage PromoType = "percentage"
	// PromoTypeFixed discounts a fixed amount.
	PromoTypeFixed PromoType = "fixed"
)

// String returns the string representation of the PromoType.
func (t PromoType) String() string {
	return string(t)
}

// IsValid checks if the PromoType is a valid value.
func (t PromoType) IsValid() bool {
	switch t {
	case PromoTypePercentage, PromoTypeFixed:
		return true
	default:
		return false
	}
}

// PromoCode is a discount token with eligibility rules.
type PromoCode struct {
	ID            uuid.UUID       `json:"id"`             // The Global Unique Identifier (GUID) for the promo code.
	Code          string          `json:"code"`           // The unique code string users enter at checkout. Matched exactly as stored.
	Name          string          `json:"name"`           // Human-readable campaign name.
	Description   string          `json:"description"`    // Campaign description.
	Type          PromoType       `json:"type"`           // Whether Value is a percentage or a fixed amount.
	Value         decimal.Decimal `json:"value"`          // Percentage (0-100) or fixed discount amount, per Type.
	MinimumAmount decimal.Decimal `json:"minimum_amount"` // Minimum cart subtotal required for eligibility.
	UsageLimit    *int            `json:"usage_limit"`    // Maximum number of redemptions; nil means unlimited.
	UsedCount     int             `json:"used_count"`     // Number of completed checkouts that applied this code.
	ExpiresAt     *time.Time      `json:"expires_at"`     // Expiry timestamp; nil means no expiry.
	IsActive      bool            `json:"is_active"`      // Inactive codes are never applied.
	CreatedAt     time.Time       `json:"created_at"`     // Timestamp of when the code was created.
	UpdatedAt     time.Time       `json:"updated_at"`     // Timestamp of the last modification.
}

// IsExpired reports whether the code has passed its expiry at the given time.
func (p *PromoCode) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}

// IsExhausted reports whether the usage limit has been reached.
func (p *PromoCode) IsExhausted() bool {
	return p.UsageLimit != nil && p.UsedCount >= *p.UsageLimit
}

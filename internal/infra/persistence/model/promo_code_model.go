package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromoCodeModel mirrors the 'promo_codes' table.
type PromoCodeModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code          string          `gorm:"type:varchar(50);unique;not null"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:text"`
	Type          string          `gorm:"type:varchar(20);not null"`
	Value         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	MinimumAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	UsageLimit    *int
	UsedCount     int `gorm:"not null;default:0"`
	ExpiresAt     *time.Time `gorm:"index"`
	IsActive      bool       `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromoCodeModel) TableName() string {
	return "promo_codes"
}

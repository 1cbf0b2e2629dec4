// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CategoryModel mirrors the 'categories' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Slug        string    `gorm:"type:varchar(120);unique;not null"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []*ProductModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CategoryID   uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name         string                      `gorm:"type:varchar(255);not null"`
	Slug         string                      `gorm:"type:varchar(280);unique;not null"`
	Description  string                      `gorm:"type:text"`
	Price        decimal.Decimal             `gorm:"type:numeric(10,2);not null"`
	Stock        int                         `gorm:"not null;default:0;check:stock >= 0"`
	Images       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Rating       float64                     `gorm:"type:numeric(2,1);not null;default:0"`
	TotalReviews int                         `gorm:"not null;default:0"`
	SoldCount    int                         `gorm:"not null;default:0;index"`
	IsActive     bool                        `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

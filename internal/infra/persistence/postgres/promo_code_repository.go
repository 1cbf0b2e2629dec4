package postgres

import (
	"context"

	"sayur/internal/domain/entity"
	domainerrors "sayur/internal/domain/errors"
	"sayur/internal/domain/repository"
	"sayur/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promoCodeRepository implements the repository.PromoCodeRepository interface.
type promoCodeRepository struct {
	db *gorm.DB
}

// NewPromoCodeRepository is the constructor for promoCodeRepository.
func NewPromoCodeRepository(db *gorm.DB) repository.PromoCodeRepository {
	return &promoCodeRepository{
		db: db,
	}
}

// FindActiveByCode retrieves an active promo code by its exact code string.
func (repo *promoCodeRepository) FindActiveByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	var promoM model.PromoCodeModel

	if err := repo.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&promoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromoCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo code")
	}

	return toPromoCodeDomain(&promoM), nil
}

// IncrementUsage atomically increments used_count. The WHERE guard keeps the
// increment from passing the usage limit under concurrent checkouts.
func (repo *promoCodeRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", id).
		Update("used_count", gorm.Expr("used_count + 1"))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment promo code usage")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromoUsageExceeded
	}

	return nil
}

// --- Mapper Functions ---

// toPromoCodeDomain converts a GORM PromoCodeModel to a domain PromoCode entity.
func toPromoCodeDomain(data *model.PromoCodeModel) *entity.PromoCode {
	if data == nil {
		return nil
	}

	return &entity.PromoCode{
		ID:            data.ID,
		Code:          data.Code,
		Name:          data.Name,
		Description:   data.Description,
		Type:          entity.PromoType(data.Type),
		Value:         data.Value,
		MinimumAmount: data.MinimumAmount,
		UsageLimit:    data.UsageLimit,
		UsedCount:     data.UsedCount,
		ExpiresAt:     data.ExpiresAt,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its line items in a single insert.
// A unique violation on the order number surfaces as ErrDuplicateOrderNumber
// so the caller can regenerate and retry.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := toOrderModel(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
		order.Items[i].CreatedAt = itemM.CreatedAt
	}

	return nil
}

// FindByID retrieves a single order with its items and their products loaded.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves a page of the user's orders, newest first, with the
// total order count.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID, page, perPage int) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	if page < 1 {
		page = 1
	}

	var orderModels []*model.OrderModel
	if err := query.
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// UpdateStatus transitions an order to a new fulfilment status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Product:   toProductDomain(itemM.Product),
			Quantity:  itemM.Quantity,
			Price:     itemM.Price,
			CreatedAt: itemM.CreatedAt,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		UserID:          data.UserID,
		Status:          entity.OrderStatus(data.Status),
		TotalAmount:     data.TotalAmount,
		DiscountAmount:  data.DiscountAmount,
		PromoCode:       data.PromoCode,
		ShippingAddress: data.ShippingAddress,
		Notes:           data.Notes,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toOrderModel converts a domain Order entity to a GORM OrderModel.
func toOrderModel(data *entity.Order) *model.OrderModel {
	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &model.OrderItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &model.OrderModel{
		OrderNumber:     data.OrderNumber,
		UserID:          data.UserID,
		Status:          data.Status.String(),
		TotalAmount:     data.TotalAmount,
		DiscountAmount:  data.DiscountAmount,
		PromoCode:       data.PromoCode,
		ShippingAddress: data.ShippingAddress,
		Notes:           data.Notes,
		Items:           items,
	}
}

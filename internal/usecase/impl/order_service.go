package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sayur/config"
	deliveryctx "sayur/internal/delivery/context"
	"sayur/internal/domain/constants"
	"sayur/internal/domain/entity"
	domainerrors "sayur/internal/domain/errors"
	"sayur/internal/domain/ordernum"
	"sayur/internal/domain/promo"
	"sayur/internal/domain/repository"
	"sayur/internal/domain/service"
	"sayur/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	cache     service.ProductCache
	cfg       *config.CheckoutConfig
	logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	cache service.ProductCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
		cache:     cache,
		cfg:       cfg.Checkout,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliveryctx.GetLoggerOrDefault(ctx, s.logger)
}

// Checkout converts the user's cart into an order within one transaction:
// stock is decremented per item, an eligible promo code is applied and its
// usage consumed, the order is written with price snapshots, and the cart is
// cleared. Any failure rolls back the whole transaction. An ineligible promo
// code degrades to a zero discount instead of failing the checkout.
//
// Order number collisions abort the transaction; the whole checkout is
// retried with a fresh number up to the configured attempt bound.
func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	var order *entity.Order

	for attempt := 0; attempt < s.cfg.OrderNumberAttempts; attempt++ {
		orderNumber, err := ordernum.Generate(s.cfg.OrderNumberPrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to generate order number: %w", err)
		}

		order, err = s.checkoutOnce(ctx, userID, input, orderNumber)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateOrderNumber) {
				s.log(ctx).Warn("order number collision, retrying",
					slog.String("order_number", orderNumber),
					slog.Int("attempt", attempt+1),
				)

				continue
			}

			return nil, err
		}

		s.afterCheckout(ctx, order)

		return order, nil
	}

	return nil, domainerrors.ErrOrderNumberExhausted
}

// checkoutOnce runs a single checkout transaction with a fixed order number.
func (s *orderService) checkoutOnce(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput, orderNumber string) (*entity.Order, error) {
	var order *entity.Order

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		productRepo := repoFactory.NewProductRepository()
		promoRepo := repoFactory.NewPromoCodeRepository()
		orderRepo := repoFactory.NewOrderRepository()

		items, err := cartRepo.FindByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if len(items) == 0 {
			return domainerrors.ErrCartEmpty
		}

		// Decrement stock per line. The conditional update fails when stock
		// ran out between browsing and checkout.
		for _, item := range items {
			if item.Product == nil || !item.Product.IsActive {
				return domainerrors.ErrProductNotFound
			}

			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WithDetails(
						fmt.Sprintf("only %d of %s available", item.Product.Stock, item.Product.Name))
				}

				return fmt.Errorf("failed to decrement stock: %w", err)
			}
		}

		subtotal := entity.CartSubtotal(items)

		discount, appliedCode, err := s.applyPromo(ctx, promoRepo, input.PromoCode, subtotal)
		if err != nil {
			return err
		}

		orderItems := make([]*entity.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, &entity.OrderItem{
				ProductID: item.ProductID,
				Product:   item.Product,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
			})
		}

		order = &entity.Order{
			OrderNumber:     orderNumber,
			UserID:          userID,
			Status:          entity.OrderStatusPending,
			TotalAmount:     subtotal.Sub(discount),
			DiscountAmount:  discount,
			PromoCode:       appliedCode,
			ShippingAddress: input.ShippingAddress,
			Notes:           input.Notes,
			Items:           orderItems,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		if err := cartRepo.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// applyPromo evaluates an optional promo code inside the checkout transaction
// and consumes one redemption when eligible. Every ineligible outcome,
// including losing the race on the last redemption, degrades to a zero
// discount so the checkout proceeds at full price.
func (s *orderService) applyPromo(ctx context.Context, promoRepo repository.PromoCodeRepository, code string, subtotal decimal.Decimal) (decimal.Decimal, *string, error) {
	if code == "" {
		return decimal.Zero, nil, nil
	}

	promoCode, err := promoRepo.FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrPromoCodeNotFound) {
			return decimal.Zero, nil, nil
		}

		return decimal.Zero, nil, fmt.Errorf("failed to find promo code: %w", err)
	}

	result := promo.Evaluate(promoCode, subtotal, time.Now())
	if result.Eligibility != promo.EligibilityApplied {
		s.log(ctx).Info("promo code ineligible at checkout",
			slog.String("code", code),
			slog.String("eligibility", string(result.Eligibility)),
		)

		return decimal.Zero, nil, nil
	}

	if err := promoRepo.IncrementUsage(ctx, promoCode.ID); err != nil {
		if errors.Is(err, repository.ErrPromoUsageExceeded) {
			return decimal.Zero, nil, nil
		}

		return decimal.Zero, nil, fmt.Errorf("failed to consume promo code: %w", err)
	}

	applied := promoCode.Code

	return result.Discount, &applied, nil
}

// afterCheckout runs the post-commit side effects: the order-created event and
// catalog cache invalidation. Both are best effort; the order already exists.
func (s *orderService) afterCheckout(ctx context.Context, order *entity.Order) {
	event := &service.OrderCreatedEvent{
		RequestID:      deliveryctx.GetRequestIDFromContext(ctx),
		OrderID:        order.ID.String(),
		OrderNumber:    order.OrderNumber,
		UserID:         order.UserID.String(),
		TotalAmount:    order.TotalAmount.String(),
		DiscountAmount: order.DiscountAmount.String(),
		Items:          make([]service.OrderItemEvent, 0, len(order.Items)),
	}
	if order.PromoCode != nil {
		event.PromoCode = *order.PromoCode
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, service.OrderItemEvent{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
		})
	}

	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		s.log(ctx).Error("failed to publish order created event",
			slog.String("order_number", order.OrderNumber),
			slog.Any("error", err),
		)
	}

	// Stock and sold counts changed, so cached catalog payloads are stale.
	keys := make([]string, 0, len(order.Items)+1)
	keys = append(keys, constants.CacheKeyHome)
	for _, item := range order.Items {
		if item.Product != nil {
			keys = append(keys, constants.CacheKeyProductPrefix+item.Product.Slug)
		}
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.log(ctx).Warn("failed to invalidate catalog cache",
			slog.String("order_number", order.OrderNumber),
			slog.Any("error", err),
		)
	}
}

// ListOrders retrieves a page of the user's orders, newest first.
func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, page, perPage int) (*usecase.OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxOrderPageSize {
		perPage = defaultOrderPageSize
	}

	orders, total, err := s.orderRepo.FindByUser(ctx, userID, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &usecase.OrderPage{
		Orders:  orders,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// GetOrder retrieves a single order owned by the user. A foreign order is
// reported as not found rather than forbidden.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ConfirmOrder transitions a pending order to confirmed.
func (s *orderService) ConfirmOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return fmt.Errorf("failed to find order: %w", err)
	}

	// Confirmation only applies to freshly placed orders; replayed events on
	// an already-progressed order are a no-op.
	if order.Status != entity.OrderStatusPending {
		return nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusConfirmed); err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}

	return nil
}

const (
	defaultOrderPageSize = 10
	maxOrderPageSize     = 50
)

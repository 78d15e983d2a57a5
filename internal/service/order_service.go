package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IOrderEventProducer 訂單事件發布，下游(通知、報表)自行消費
type IOrderEventProducer interface {
	ProduceOrderPlaced(ctx context.Context, order *model.Order) error
	ProduceOrderStatusChanged(ctx context.Context, orderID string, from, to model.OrderStatus) error
}

// PlaceOrderInput 結帳輸入，宣告式驗證在任何persistence呼叫前執行
type PlaceOrderInput struct {
	Items []model.OrderItemInput `validate:"required,min=1,dive"`
	Total decimal.Decimal
}

type IOrderService interface {
	PlaceOrder(ctx context.Context, userID string, input PlaceOrderInput) (*model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error)
	ListOrders(ctx context.Context, limit, offset int, filter db.OrderFilter) ([]model.Order, error)
	CountOrders(ctx context.Context, filter db.OrderFilter) (int64, error)
	CountActiveOrders(ctx context.Context) (int64, error)
	UpdateOrderStatus(ctx context.Context, orderID string, next model.OrderStatus) (*model.Order, error)
}

type OrderService struct {
	orderRepo   db.IOrderRepository
	productRepo db.IProductRepository
	producer    IOrderEventProducer
	validate    *validator.Validate
	logger      *slog.Logger
}

// producer可以是nil(例如測試)，事件發布是best-effort，不影響交易結果
func NewOrderService(orderRepo db.IOrderRepository, productRepo db.IProductRepository, producer IOrderEventProducer, logger *slog.Logger) *OrderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		producer:    producer,
		validate:    validator.New(),
		logger:      logger,
	}
}

func validationFields(err error) map[string]string {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = "failed " + fe.Tag() + " validation"
		}
	}
	return fields
}

// PlaceOrder 驗證 -> 重算總額 -> 同一交易內條件扣庫存+建單
// 總額一律以db內的價格重算，不信任client傳來的total
func (o *OrderService) PlaceOrder(ctx context.Context, userID string, input PlaceOrderInput) (*model.Order, error) {
	if err := o.validate.Struct(input); err != nil {
		return nil, apperr.NewValidation("invalid order", validationFields(err))
	}
	if input.Total.IsNegative() {
		return nil, apperr.NewValidation("invalid order", map[string]string{"total": "total must not be negative"})
	}

	order := &model.Order{
		OrderID: uuid.New().String(),
		UserID:  userID,
		Status:  model.OrderStatusPending,
	}

	err := o.orderRepo.Transaction(ctx, func(tx *gorm.DB) error {
		computed := decimal.NewFromInt(0)
		for _, item := range input.Items {
			product, err := o.productRepo.GetProductByID(ctx, item.ProductID)
			if err != nil {
				return apperr.FromStorage(err, "failed to load product")
			}
			if product == nil {
				return apperr.Newf(apperr.NotFound, "product %d not found", item.ProductID)
			}

			// 條件式扣庫存，兩個結帳搶同一批低庫存商品時只有一個會成功
			if err := o.productRepo.DeductStock(ctx, tx, item.ProductID, item.Qte); err != nil {
				if errors.Is(err, db.ErrInsufficientStock) {
					return apperr.NewValidation("insufficient stock", map[string]string{
						"items": "not enough stock for product " + product.Name,
					})
				}
				return apperr.FromStorage(err, "failed to deduct stock")
			}

			computed = computed.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Qte))))
			order.Items = append(order.Items, model.OrderItem{
				OrderID:   order.OrderID,
				ProductID: item.ProductID,
				Qte:       item.Qte,
				Price:     product.Price,
			})
		}

		if !computed.Equal(input.Total) {
			return apperr.NewValidation("order total mismatch", map[string]string{
				"total": "claimed total does not match current prices",
			})
		}
		order.Total = computed

		if err := o.orderRepo.CreateOrderTx(ctx, tx, order); err != nil {
			return apperr.FromStorage(err, "failed to create order")
		}
		return nil
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperr.FromStorage(err, "order transaction failed")
	}

	if o.producer != nil {
		if err := o.producer.ProduceOrderPlaced(ctx, order); err != nil {
			o.logger.Error("failed to publish order placed event",
				slog.String("order_id", order.OrderID), slog.Any("err", err))
		}
	}

	return order, nil
}

func (o *OrderService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to get order")
	}
	if order == nil {
		return nil, apperr.Newf(apperr.NotFound, "order %s not found", orderID)
	}
	return order, nil
}

func (o *OrderService) GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := o.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to list user orders")
	}
	return orders, nil
}

func (o *OrderService) ListOrders(ctx context.Context, limit, offset int, filter db.OrderFilter) ([]model.Order, error) {
	orders, err := o.orderRepo.ListOrders(ctx, limit, offset, filter)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to list orders")
	}
	return orders, nil
}

func (o *OrderService) CountOrders(ctx context.Context, filter db.OrderFilter) (int64, error) {
	total, err := o.orderRepo.CountOrders(ctx, filter)
	if err != nil {
		return 0, apperr.FromStorage(err, "failed to count orders")
	}
	return total, nil
}

func (o *OrderService) CountActiveOrders(ctx context.Context) (int64, error) {
	total, err := o.orderRepo.CountActiveOrders(ctx)
	if err != nil {
		return 0, apperr.FromStorage(err, "failed to count active orders")
	}
	return total, nil
}

// UpdateOrderStatus 只有合法轉移表內的狀態變化會被接受
func (o *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, next model.OrderStatus) (*model.Order, error) {
	order, err := o.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, apperr.NewValidation("illegal status transition", map[string]string{
			"status": string(order.Status) + " cannot transition to " + string(next),
		})
	}

	if err := o.orderRepo.UpdateOrderStatus(ctx, orderID, next); err != nil {
		return nil, apperr.FromStorage(err, "failed to update order status")
	}

	if o.producer != nil {
		if err := o.producer.ProduceOrderStatusChanged(ctx, orderID, order.Status, next); err != nil {
			o.logger.Error("failed to publish order status event",
				slog.String("order_id", orderID), slog.Any("err", err))
		}
	}

	from := order.Status
	order.Status = next
	order.UpdatedAt = time.Now().UTC()
	o.logger.Info("order status updated",
		slog.String("order_id", orderID),
		slog.String("from", string(from)),
		slog.String("to", string(next)))
	return order, nil
}

var _ IOrderService = (*OrderService)(nil)

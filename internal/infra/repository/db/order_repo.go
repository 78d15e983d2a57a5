package db

import (
	"context"
	"errors"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"gorm.io/gorm"
)

// 購物車階段只會寫入redis，db只有確定送出的訂單
type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create - 在既有交易內創建訂單與訂單項目
func (s *OrderRepo) CreateOrderTx(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

// Create - 創建訂單(自帶交易)
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

// Transaction - 開一個交易給service層組合扣庫存+建單
func (s *OrderRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

// Read - 根據ID查詢訂單，不存在回傳 (nil, nil)
func (s *OrderRepo) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("Items").First(&order, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 根據用戶ID查詢訂單
func (s *OrderRepo) GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Read - 條件查詢訂單(admin)
func (s *OrderRepo) ListOrders(ctx context.Context, limit, offset int, filter OrderFilter) ([]model.Order, error) {
	var orders []model.Order
	q := filter.apply(s.db.WithContext(ctx).Model(&model.Order{})).Preload("Items").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	err := q.Find(&orders).Error
	return orders, err
}

// Read - 條件計數
func (s *OrderRepo) CountOrders(ctx context.Context, filter OrderFilter) (int64, error) {
	var total int64
	err := filter.apply(s.db.WithContext(ctx).Model(&model.Order{})).Count(&total).Error
	return total, err
}

// Read - 進行中訂單數(未到終態)
func (s *OrderRepo) CountActiveOrders(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Order{}).
		Where("status IN ?", []model.OrderStatus{
			model.OrderStatusPending,
			model.OrderStatusConfirmed,
			model.OrderStatusShipped,
		}).Count(&total).Error
	return total, err
}

// Update - 更新訂單狀態
func (s *OrderRepo) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	res := s.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

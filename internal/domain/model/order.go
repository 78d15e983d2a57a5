package model

import (
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusReturned  OrderStatus = "RETURNED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// 合法的狀態轉移表，只有管理員可以推進訂單狀態
var OrderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {OrderStatusReturned, OrderStatusCompleted},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range OrderStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// 訂單沒有刪除入口，只有軟生命週期(狀態轉移)
type Order struct {
	BaseModel
	OrderID string          `gorm:"primaryKey;type:uuid"`
	UserID  string          `gorm:"not null;type:uuid;index"`                       // 外鍵，關聯到 User
	Status  OrderStatus     `gorm:"not null;type:varchar(20)"`
	Total   decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Items   []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
}

// 訂單項目，創建後不可變，Price為下單當下的快照價格
type OrderItem struct {
	BaseModel
	OrderItemID uint            `gorm:"primaryKey"`
	OrderID     string          `gorm:"not null;type:uuid;index"`
	ProductID   uint            `gorm:"not null;index"`
	Qte         int             `gorm:"not null;check:qte >= 1"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
}

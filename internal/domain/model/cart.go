package model

import (
	"github.com/shopspring/decimal"
)

// 購物車階段只存在於cart store(記憶體+redis快照)，不會寫入db
// QteInStock為加入購物車當下的庫存快照
type CartLineItem struct {
	ProductID  uint            `json:"product_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	QteInStock int             `json:"qte_in_stock"`
	Qte        int             `json:"qte"`
}

// 送出訂單用的輸入，只需要productID與數量，價格一律以db為準
type OrderItemInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	Qte       int  `json:"qte" validate:"required,gte=1"`
}

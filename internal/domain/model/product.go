package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	ProductID   uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null;type:varchar(100)"`
	Description string          `gorm:"not null;type:text"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	QteInStock  int             `gorm:"not null;type:int;check:qte_in_stock >= 0"`
	CategoryID  uint            `gorm:"not null;index"` // 外鍵，關聯到 Category
	ImageURL    string          `gorm:"type:varchar(255)"`
	OrderItems  []OrderItem     `gorm:"foreignKey:ProductID"`
}

package model

type Category struct {
	BaseModel
	CategoryID uint      `gorm:"primaryKey"`
	Name       string    `gorm:"not null;type:varchar(100);unique"`
	Products   []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"` // 有商品時禁止刪除
}

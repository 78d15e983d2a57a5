package db

import (
	"time"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilter 商品查詢條件，zero value代表不過濾
type ProductFilter struct {
	Search      string // name/description 不分大小寫子字串
	InStockOnly bool
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	CategoryID  *uint
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	SortBy      string // product sort 白名單欄位
	SortDir     string // asc | desc
}

// sort白名單，防止任意欄位注入order by
var productSortFields = map[string]string{
	"name":       "name",
	"price":      "price",
	"createdAt":  "created_at",
	"qteInStock": "qte_in_stock",
}

// apply 把條件套到query上，排序未指定時不保證順序
func (f ProductFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if f.InStockOnly {
		q = q.Where("qte_in_stock > 0")
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.CreatedFrom != nil {
		q = q.Where("created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		q = q.Where("created_at <= ?", *f.CreatedTo)
	}
	return q
}

func (f ProductFilter) order(q *gorm.DB) *gorm.DB {
	col, ok := productSortFields[f.SortBy]
	if !ok {
		return q
	}
	dir := "ASC"
	if f.SortDir == "desc" {
		dir = "DESC"
	}
	return q.Order(col + " " + dir)
}

type CategoryFilter struct {
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

func (f CategoryFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Search != "" {
		q = q.Where("name ILIKE ?", "%"+f.Search+"%")
	}
	if f.CreatedFrom != nil {
		q = q.Where("created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		q = q.Where("created_at <= ?", *f.CreatedTo)
	}
	return q
}

type OrderFilter struct {
	UserID      string
	Status      model.OrderStatus
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

func (f OrderFilter) apply(q *gorm.DB) *gorm.DB {
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CreatedFrom != nil {
		q = q.Where("created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		q = q.Where("created_at <= ?", *f.CreatedTo)
	}
	return q
}

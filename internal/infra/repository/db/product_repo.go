package db

import (
	"context"
	"errors"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品，不存在回傳 (nil, nil)，由service層決定要不要當錯誤
func (s *ProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 條件分頁查詢商品
// 未指定sort時不保證順序
func (s *ProductRepo) ListProducts(ctx context.Context, limit, offset int, filter ProductFilter) ([]model.Product, error) {
	var products []model.Product
	q := filter.apply(s.db.WithContext(ctx).Model(&model.Product{}))
	q = filter.order(q)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	err := q.Find(&products).Error
	return products, err
}

// Read - 條件計數
func (s *ProductRepo) CountProducts(ctx context.Context, filter ProductFilter) (int64, error) {
	var total int64
	err := filter.apply(s.db.WithContext(ctx).Model(&model.Product{})).Count(&total).Error
	return total, err
}

// Read - 有庫存商品數
func (s *ProductRepo) CountAvailableProducts(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Product{}).Where("qte_in_stock > 0").Count(&total).Error
	return total, err
}

// Update - 更新商品
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// Delete - 軟刪除商品
func (s *ProductRepo) DeleteProduct(ctx context.Context, productID uint) error {
	res := s.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeductStock - 條件式扣庫存，防止兩個結帳同時成功造成超賣
// 庫存不足時一列都不會更新，回傳 ErrInsufficientStock
func (s *ProductRepo) DeductStock(ctx context.Context, tx *gorm.DB, productID uint, qte int) error {
	if tx == nil {
		tx = s.db.DB
	}
	res := tx.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ? AND qte_in_stock >= ?", productID, qte).
		UpdateColumn("qte_in_stock", gorm.Expr("qte_in_stock - ?", qte))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// AddStock - 補庫存
func (s *ProductRepo) AddStock(ctx context.Context, productID uint, qte int) error {
	return s.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", productID).
		UpdateColumn("qte_in_stock", gorm.Expr("qte_in_stock + ?", qte)).Error
}

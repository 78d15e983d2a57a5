package db

import (
	"context"
	"errors"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *DbDao
}

func NewCategoryRepo(db *DbDao) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create - 創建分類，名稱唯一，重複由db unique constraint擋下
func (s *CategoryRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

// Read - 根據ID查詢分類，不存在回傳 (nil, nil)
func (s *CategoryRepo) GetCategoryByID(ctx context.Context, categoryID uint) (*model.Category, error) {
	var category model.Category
	err := s.db.WithContext(ctx).First(&category, "category_id = ?", categoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Read - 查詢所有分類，預設依建立時間新到舊
func (s *CategoryRepo) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&categories).Error
	return categories, err
}

// Read - 取前head筆精選分類
func (s *CategoryRepo) GetFeaturedCategories(ctx context.Context, head int) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(head).Find(&categories).Error
	return categories, err
}

// Read - 條件計數
func (s *CategoryRepo) CountCategories(ctx context.Context, filter CategoryFilter) (int64, error) {
	var total int64
	err := filter.apply(s.db.WithContext(ctx).Model(&model.Category{})).Count(&total).Error
	return total, err
}

// Update - 更新分類
func (s *CategoryRepo) UpdateCategory(ctx context.Context, category *model.Category) error {
	return s.db.WithContext(ctx).Save(category).Error
}

// CountProductsInCategory - 分類下的商品數，刪除前檢查用
func (s *CategoryRepo) CountProductsInCategory(ctx context.Context, categoryID uint) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Product{}).Where("category_id = ?", categoryID).Count(&total).Error
	return total, err
}

// Delete - 硬刪除分類，有商品參照時由外鍵RESTRICT擋下
func (s *CategoryRepo) DeleteCategory(ctx context.Context, categoryID uint) error {
	res := s.db.WithContext(ctx).Unscoped().Where("category_id = ?", categoryID).Delete(&model.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

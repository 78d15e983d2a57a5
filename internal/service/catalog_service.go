package service

import (
	"context"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/repository/db"
)

type ICatalogService interface {
	ListProducts(ctx context.Context, limit, offset int, filter db.ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	CountProducts(ctx context.Context, filter db.ProductFilter) (int64, error)
	CountAvailableProducts(ctx context.Context) (int64, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID uint) (*model.Product, error)

	ListCategories(ctx context.Context) ([]model.Category, error)
	FeaturedCategories(ctx context.Context, head int) ([]model.Category, error)
	GetCategory(ctx context.Context, categoryID uint) (*model.Category, error)
	CountFilteredCategories(ctx context.Context, filter db.CategoryFilter) (int64, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	UpdateCategory(ctx context.Context, categoryID uint, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint) (*model.Category, error)
}

type CatalogService struct {
	productRepo  db.IProductRepository
	categoryRepo db.ICategoryRepository
}

func NewCatalogService(productRepo db.IProductRepository, categoryRepo db.ICategoryRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// ListProducts 條件分頁查詢，未指定sort時不保證順序
func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int, filter db.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, limit, offset, filter)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to list products")
	}
	return products, nil
}

// GetProduct repo層不存在回傳nil，這裡轉成NotFound
func (s *CatalogService) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to get product")
	}
	if product == nil {
		return nil, apperr.Newf(apperr.NotFound, "product %d not found", productID)
	}
	return product, nil
}

func (s *CatalogService) CountProducts(ctx context.Context, filter db.ProductFilter) (int64, error) {
	total, err := s.productRepo.CountProducts(ctx, filter)
	if err != nil {
		return 0, apperr.FromStorage(err, "failed to count products")
	}
	return total, nil
}

func (s *CatalogService) CountAvailableProducts(ctx context.Context) (int64, error) {
	total, err := s.productRepo.CountAvailableProducts(ctx)
	if err != nil {
		return 0, apperr.FromStorage(err, "failed to count available products")
	}
	return total, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	fields := map[string]string{}
	if product.Name == "" {
		fields["name"] = "name is required"
	}
	if product.Price.IsNegative() {
		fields["price"] = "price must not be negative"
	}
	if product.QteInStock < 0 {
		fields["qteInStock"] = "stock must not be negative"
	}
	if len(fields) > 0 {
		return nil, apperr.NewValidation("invalid product", fields)
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, product.CategoryID)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to get category")
	}
	if category == nil {
		return nil, apperr.Newf(apperr.NotFound, "category %d not found", product.CategoryID)
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, apperr.FromStorage(err, "failed to create product")
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	existing, err := s.GetProduct(ctx, product.ProductID)
	if err != nil {
		return nil, err
	}
	product.CreatedAt = existing.CreatedAt

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, apperr.FromStorage(err, "failed to update product")
	}
	return product, nil
}

// DeleteProduct 回傳被刪除的商品
func (s *CatalogService) DeleteProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return nil, apperr.FromStorage(err, "failed to delete product")
	}
	return product, nil
}

// ListCategories 預設依建立時間新到舊
func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to list categories")
	}
	return categories, nil
}

func (s *CatalogService) FeaturedCategories(ctx context.Context, head int) ([]model.Category, error) {
	if head <= 0 {
		head = 4
	}
	categories, err := s.categoryRepo.GetFeaturedCategories(ctx, head)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to list featured categories")
	}
	return categories, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, categoryID uint) (*model.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to get category")
	}
	if category == nil {
		return nil, apperr.Newf(apperr.NotFound, "category %d not found", categoryID)
	}
	return category, nil
}

func (s *CatalogService) CountFilteredCategories(ctx context.Context, filter db.CategoryFilter) (int64, error) {
	total, err := s.categoryRepo.CountCategories(ctx, filter)
	if err != nil {
		return 0, apperr.FromStorage(err, "failed to count categories")
	}
	return total, nil
}

// CreateCategory 名稱唯一，重複時db unique constraint會映射成AlreadyExists
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if name == "" {
		return nil, apperr.NewValidation("invalid category", map[string]string{"name": "name is required"})
	}
	category := &model.Category{Name: name}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, apperr.FromStorage(err, "failed to create category")
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, categoryID uint, name string) (*model.Category, error) {
	category, err := s.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperr.NewValidation("invalid category", map[string]string{"name": "name is required"})
	}
	category.Name = name
	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return nil, apperr.FromStorage(err, "failed to update category")
	}
	return category, nil
}

// DeleteCategory 有商品參照時回傳InUse，成功時回傳被刪除的分類
func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID uint) (*model.Category, error) {
	category, err := s.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	inUse, err := s.categoryRepo.CountProductsInCategory(ctx, categoryID)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to check category usage")
	}
	if inUse > 0 {
		return nil, apperr.Newf(apperr.InUse, "category %d still has %d products", categoryID, inUse)
	}

	// 併發下商品可能在檢查後才掛上來，外鍵RESTRICT是最後防線
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return nil, apperr.FromStorage(err, "failed to delete category")
	}
	return category, nil
}

var _ ICatalogService = (*CatalogService)(nil)

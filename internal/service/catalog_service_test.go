package service

import (
	"context"
	"testing"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupCatalogService() (*CatalogService, *fakeProductRepo, *fakeCategoryRepo) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	return NewCatalogService(productRepo, categoryRepo), productRepo, categoryRepo
}

func TestGetProduct_NotFound(t *testing.T) {
	svc, _, _ := setupCatalogService()
	_, err := svc.GetProduct(context.Background(), 42)
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	svc, _, _ := setupCatalogService()
	_, err := svc.CreateProduct(context.Background(), &model.Product{
		Name:       "Boots",
		Price:      decimal.NewFromInt(50),
		QteInStock: 3,
		CategoryID: 9,
	})
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestCreateProduct_Validation(t *testing.T) {
	svc, _, categoryRepo := setupCatalogService()
	ctx := context.Background()
	categoryRepo.CreateCategory(ctx, &model.Category{Name: "Shoes"})

	_, err := svc.CreateProduct(ctx, &model.Product{
		Name:       "",
		Price:      decimal.NewFromInt(-1),
		CategoryID: 1,
	})
	require.Equal(t, apperr.ValidationFailed, apperr.KindOf(err))
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Contains(t, appErr.Fields, "name")
	require.Contains(t, appErr.Fields, "price")
}

func TestCreateCategory_Duplicate(t *testing.T) {
	svc, _, _ := setupCatalogService()
	ctx := context.Background()

	first, err := svc.CreateCategory(ctx, "Shoes")
	require.NoError(t, err)
	require.NotZero(t, first.CategoryID)

	// 同名第二次必須是AlreadyExists
	_, err = svc.CreateCategory(ctx, "Shoes")
	require.Equal(t, apperr.AlreadyExists, apperr.KindOf(err))
}

func TestDeleteCategory_InUse(t *testing.T) {
	svc, _, categoryRepo := setupCatalogService()
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "Shoes")
	require.NoError(t, err)
	categoryRepo.inCategory[category.CategoryID] = 2

	_, err = svc.DeleteCategory(ctx, category.CategoryID)
	require.Equal(t, apperr.InUse, apperr.KindOf(err))
}

func TestDeleteCategory_ReturnsDeletedRow(t *testing.T) {
	svc, _, _ := setupCatalogService()
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "Hats")
	require.NoError(t, err)

	deleted, err := svc.DeleteCategory(ctx, category.CategoryID)
	require.NoError(t, err)
	require.Equal(t, "Hats", deleted.Name)

	_, err = svc.GetCategory(ctx, category.CategoryID)
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestDeleteProduct_ReturnsDeletedRow(t *testing.T) {
	svc, productRepo, categoryRepo := setupCatalogService()
	ctx := context.Background()
	categoryRepo.CreateCategory(ctx, &model.Category{Name: "Shoes"})
	seedProduct(productRepo, 1, 10, 5)

	deleted, err := svc.DeleteProduct(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint(1), deleted.ProductID)

	_, err = svc.GetProduct(ctx, 1)
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

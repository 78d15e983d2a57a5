package service

import (
	"context"
	"testing"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupOrderService() (*OrderService, *fakeProductRepo, *fakeOrderRepo, *fakeProducer) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	producer := &fakeProducer{}
	svc := NewOrderService(orderRepo, productRepo, producer, nil)
	return svc, productRepo, orderRepo, producer
}

func seedProduct(repo *fakeProductRepo, id uint, price int64, stock int) {
	repo.CreateProduct(context.Background(), &model.Product{
		ProductID:  id,
		Name:       "product",
		Price:      decimal.NewFromInt(price),
		QteInStock: stock,
		CategoryID: 1,
	})
}

func TestPlaceOrder_Success(t *testing.T) {
	svc, productRepo, _, producer := setupOrderService()
	seedProduct(productRepo, 1, 10, 5)
	seedProduct(productRepo, 2, 25, 2)
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, "u1", PlaceOrderInput{
		Items: []model.OrderItemInput{
			{ProductID: 1, Qte: 2},
			{ProductID: 2, Qte: 1},
		},
		Total: decimal.NewFromInt(45),
	})
	require.NoError(t, err)
	require.NotEmpty(t, order.OrderID)
	require.Equal(t, model.OrderStatusPending, order.Status)
	require.True(t, order.Total.Equal(decimal.NewFromInt(45)))
	require.Len(t, order.Items, 2)
	// 價格快照來自db，不是client
	require.True(t, order.Items[0].Price.Equal(decimal.NewFromInt(10)))

	// 庫存已扣
	p1, _ := productRepo.GetProductByID(ctx, 1)
	require.Equal(t, 3, p1.QteInStock)

	// 事件已發布
	require.Equal(t, []string{order.OrderID}, producer.placed)
}

func TestPlaceOrder_EmptyItems(t *testing.T) {
	svc, _, _, _ := setupOrderService()

	_, err := svc.PlaceOrder(context.Background(), "u1", PlaceOrderInput{
		Items: nil,
		Total: decimal.Zero,
	})
	require.Error(t, err)
	require.Equal(t, apperr.ValidationFailed, apperr.KindOf(err))
}

func TestPlaceOrder_NegativeQte(t *testing.T) {
	svc, productRepo, _, _ := setupOrderService()
	seedProduct(productRepo, 1, 10, 5)

	_, err := svc.PlaceOrder(context.Background(), "u1", PlaceOrderInput{
		Items: []model.OrderItemInput{{ProductID: 1, Qte: -1}},
		Total: decimal.NewFromInt(10),
	})
	require.Equal(t, apperr.ValidationFailed, apperr.KindOf(err))
}

func TestPlaceOrder_NegativeTotal(t *testing.T) {
	svc, productRepo, _, _ := setupOrderService()
	seedProduct(productRepo, 1, 10, 5)

	_, err := svc.PlaceOrder(context.Background(), "u1", PlaceOrderInput{
		Items: []model.OrderItemInput{{ProductID: 1, Qte: 1}},
		Total: decimal.NewFromInt(-10),
	})
	require.Equal(t, apperr.ValidationFailed, apperr.KindOf(err))
}

func TestPlaceOrder_TotalMismatch(t *testing.T) {
	svc, productRepo, orderRepo, _ := setupOrderService()
	seedProduct(productRepo, 1, 10, 5)

	// client聲稱的總額跟db價格重算不符，必須拒絕
	_, err := svc.PlaceOrder(context.Background(), "u1", PlaceOrderInput{
		Items: []model.OrderItemInput{{ProductID: 1, Qte: 2}},
		Total: decimal.NewFromInt(1),
	})
	require.Equal(t, apperr.ValidationFailed, apperr.KindOf(err))
	require.Empty(t, orderRepo.orders)
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	svc, _, _, _ := setupOrderService()

	_, err := svc.PlaceOrder(context.Background(), "u1", PlaceOrderInput{
		Items: []model.OrderItemInput{{ProductID: 999, Qte: 1}},
		Total: decimal.NewFromInt(10),
	})
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	svc, productRepo, orderRepo, _ := setupOrderService()
	seedProduct(productRepo, 1, 10, 1)

	_, err := svc.PlaceOrder(context.Background(), "u1", PlaceOrderInput{
		Items: []model.OrderItemInput{{ProductID: 1, Qte: 3}},
		Total: decimal.NewFromInt(30),
	})
	require.Equal(t, apperr.ValidationFailed, apperr.KindOf(err))
	require.Empty(t, orderRepo.orders)
}

func TestUpdateOrderStatus_LegalTransition(t *testing.T) {
	svc, productRepo, _, producer := setupOrderService()
	seedProduct(productRepo, 1, 10, 5)
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, "u1", PlaceOrderInput{
		Items: []model.OrderItemInput{{ProductID: 1, Qte: 1}},
		Total: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(ctx, order.OrderID, model.OrderStatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusConfirmed, updated.Status)
	require.Len(t, producer.statusChanges, 1)
}

func TestUpdateOrderStatus_IllegalTransition(t *testing.T) {
	svc, productRepo, _, _ := setupOrderService()
	seedProduct(productRepo, 1, 10, 5)
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, "u1", PlaceOrderInput{
		Items: []model.OrderItemInput{{ProductID: 1, Qte: 1}},
		Total: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	// PENDING不能直接到SHIPPED
	_, err = svc.UpdateOrderStatus(ctx, order.OrderID, model.OrderStatusShipped)
	require.Equal(t, apperr.ValidationFailed, apperr.KindOf(err))
}

func TestUpdateOrderStatus_UnknownOrder(t *testing.T) {
	svc, _, _, _ := setupOrderService()
	_, err := svc.UpdateOrderStatus(context.Background(), "missing", model.OrderStatusConfirmed)
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestGetOrder_NotFound(t *testing.T) {
	svc, _, _, _ := setupOrderService()
	_, err := svc.GetOrder(context.Background(), "missing")
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

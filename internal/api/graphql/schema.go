package graphql

import (
	"errors"
	"log/slog"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/mrAbdou/ZenithShop-sub002/internal/cart"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/repository/db"
	"github.com/mrAbdou/ZenithShop-sub002/internal/service"
	"github.com/mrAbdou/ZenithShop-sub002/internal/service/authz"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Resolver 聚合graphql層需要的所有service
type Resolver struct {
	Catalog service.ICatalogService
	Orders  service.IOrderService
	Users   service.IUserService
	Cart    *cart.Store
	Logger  *slog.Logger
}

func NewResolver(catalog service.ICatalogService, orders service.IOrderService, users service.IUserService, cartStore *cart.Store, logger *slog.Logger) *Resolver {
	return &Resolver{
		Catalog: catalog,
		Orders:  orders,
		Users:   users,
		Cart:    cartStore,
		Logger:  logger,
	}
}

// gate 在resolver本體前統一跑授權表，通過才回傳session
func (r *Resolver) gate(p graphql.ResolveParams, op authz.Operation) (*authz.Session, error) {
	session := authz.FromContext(p.Context)
	if err := authz.Authorize(session, op); err != nil {
		return nil, wrapErr(err)
	}
	return session, nil
}

func intArg(p graphql.ResolveParams, name string, def int) int {
	if v, ok := p.Args[name].(int); ok {
		return v
	}
	return def
}

func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

// pageArgs limit/offset 基本防呆，limit超過上限就截斷
func pageArgs(p graphql.ResolveParams) (int, int) {
	limit := intArg(p, "limit", defaultPageSize)
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := intArg(p, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func parseProductFilter(arg interface{}) db.ProductFilter {
	var f db.ProductFilter
	m, ok := arg.(map[string]interface{})
	if !ok {
		return f
	}
	if v, ok := m["search"].(string); ok {
		f.Search = v
	}
	if v, ok := m["inStockOnly"].(bool); ok {
		f.InStockOnly = v
	}
	if v, ok := m["minPrice"].(float64); ok {
		d := decimal.NewFromFloat(v)
		f.MinPrice = &d
	}
	if v, ok := m["maxPrice"].(float64); ok {
		d := decimal.NewFromFloat(v)
		f.MaxPrice = &d
	}
	if v, ok := m["categoryId"].(int); ok {
		id := uint(v)
		f.CategoryID = &id
	}
	if v, ok := m["createdFrom"].(time.Time); ok {
		f.CreatedFrom = &v
	}
	if v, ok := m["createdTo"].(time.Time); ok {
		f.CreatedTo = &v
	}
	if v, ok := m["sortBy"].(string); ok {
		f.SortBy = v
	}
	if v, ok := m["sortDirection"].(string); ok {
		f.SortDir = v
	}
	return f
}

func parseCategoryFilter(arg interface{}) db.CategoryFilter {
	var f db.CategoryFilter
	m, ok := arg.(map[string]interface{})
	if !ok {
		return f
	}
	if v, ok := m["search"].(string); ok {
		f.Search = v
	}
	if v, ok := m["createdFrom"].(time.Time); ok {
		f.CreatedFrom = &v
	}
	if v, ok := m["createdTo"].(time.Time); ok {
		f.CreatedTo = &v
	}
	return f
}

func parseOrderFilter(arg interface{}) db.OrderFilter {
	var f db.OrderFilter
	m, ok := arg.(map[string]interface{})
	if !ok {
		return f
	}
	if v, ok := m["userId"].(string); ok {
		f.UserID = v
	}
	if v, ok := m["status"].(string); ok {
		f.Status = model.OrderStatus(v)
	}
	if v, ok := m["createdFrom"].(time.Time); ok {
		f.CreatedFrom = &v
	}
	if v, ok := m["createdTo"].(time.Time); ok {
		f.CreatedTo = &v
	}
	return f
}

// listProducts products/paginatedProducts/infiniteProducts 共用的resolver本體
// 三個query只差在client端的快取策略，server端語意相同
func (r *Resolver) listProducts(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.gate(p, authz.OpProducts); err != nil {
		return nil, err
	}
	limit, offset := pageArgs(p)
	products, err := r.Catalog.ListProducts(p.Context, limit, offset, parseProductFilter(p.Args["filter"]))
	if err != nil {
		return nil, wrapErr(err)
	}
	return products, nil
}

func (r *Resolver) queryFields() graphql.Fields {
	productListArgs := graphql.FieldConfigArgument{
		"limit":  &graphql.ArgumentConfig{Type: graphql.Int},
		"offset": &graphql.ArgumentConfig{Type: graphql.Int},
		"filter": &graphql.ArgumentConfig{Type: productFilterInput},
	}

	return graphql.Fields{
		"products": &graphql.Field{
			Type:    graphql.NewList(graphql.NewNonNull(productType)),
			Args:    productListArgs,
			Resolve: r.listProducts,
		},
		"paginatedProducts": &graphql.Field{
			Type:    graphql.NewList(graphql.NewNonNull(productType)),
			Args:    productListArgs,
			Resolve: r.listProducts,
		},
		"infiniteProducts": &graphql.Field{
			Type:    graphql.NewList(graphql.NewNonNull(productType)),
			Args:    productListArgs,
			Resolve: r.listProducts,
		},
		"product": &graphql.Field{
			Type: productType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpProduct); err != nil {
					return nil, err
				}
				product, err := r.Catalog.GetProduct(p.Context, uint(intArg(p, "id", 0)))
				if err != nil {
					return nil, wrapErr(err)
				}
				return *product, nil
			},
		},
		"productsCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Args: graphql.FieldConfigArgument{
				"filter": &graphql.ArgumentConfig{Type: productFilterInput},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpProductsCount); err != nil {
					return nil, err
				}
				count, err := r.Catalog.CountProducts(p.Context, parseProductFilter(p.Args["filter"]))
				if err != nil {
					return nil, wrapErr(err)
				}
				return int(count), nil
			},
		},
		"availableProductsCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpAvailableProductsCount); err != nil {
					return nil, err
				}
				count, err := r.Catalog.CountAvailableProducts(p.Context)
				if err != nil {
					return nil, wrapErr(err)
				}
				return int(count), nil
			},
		},
		"categories": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(categoryType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpCategories); err != nil {
					return nil, err
				}
				categories, err := r.Catalog.ListCategories(p.Context)
				if err != nil {
					return nil, wrapErr(err)
				}
				return categories, nil
			},
		},
		"featuredCategories": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(categoryType)),
			Args: graphql.FieldConfigArgument{
				"head": &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpFeaturedCategories); err != nil {
					return nil, err
				}
				categories, err := r.Catalog.FeaturedCategories(p.Context, intArg(p, "head", 4))
				if err != nil {
					return nil, wrapErr(err)
				}
				return categories, nil
			},
		},
		"category": &graphql.Field{
			Type: categoryType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpCategory); err != nil {
					return nil, err
				}
				category, err := r.Catalog.GetCategory(p.Context, uint(intArg(p, "id", 0)))
				if err != nil {
					return nil, wrapErr(err)
				}
				return *category, nil
			},
		},
		"countFilteredCategories": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Args: graphql.FieldConfigArgument{
				"filter": &graphql.ArgumentConfig{Type: categoryFilterInput},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpCountFilteredCategories); err != nil {
					return nil, err
				}
				count, err := r.Catalog.CountFilteredCategories(p.Context, parseCategoryFilter(p.Args["filter"]))
				if err != nil {
					return nil, wrapErr(err)
				}
				return int(count), nil
			},
		},
		"orders": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(orderType)),
			Args: graphql.FieldConfigArgument{
				"limit":  &graphql.ArgumentConfig{Type: graphql.Int},
				"offset": &graphql.ArgumentConfig{Type: graphql.Int},
				"filter": &graphql.ArgumentConfig{Type: orderFilterInput},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpOrders); err != nil {
					return nil, err
				}
				limit, offset := pageArgs(p)
				orders, err := r.Orders.ListOrders(p.Context, limit, offset, parseOrderFilter(p.Args["filter"]))
				if err != nil {
					return nil, wrapErr(err)
				}
				return orders, nil
			},
		},
		"order": &graphql.Field{
			Type: orderType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				session, err := r.gate(p, authz.OpOrder)
				if err != nil {
					return nil, err
				}
				order, err := r.Orders.GetOrder(p.Context, stringArg(p, "id"))
				if err != nil {
					return nil, wrapErr(err)
				}
				// 查到訂單後才做擁有權檢查，admin放行
				if err := authz.RequireOwner(session, order.UserID); err != nil {
					return nil, wrapErr(err)
				}
				return *order, nil
			},
		},
		"myOrders": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(orderType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				session, err := r.gate(p, authz.OpMyOrders)
				if err != nil {
					return nil, err
				}
				orders, err := r.Orders.GetOrdersByUserID(p.Context, session.UserID)
				if err != nil {
					return nil, wrapErr(err)
				}
				return orders, nil
			},
		},
		"ordersCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Args: graphql.FieldConfigArgument{
				"filter": &graphql.ArgumentConfig{Type: orderFilterInput},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpOrdersCount); err != nil {
					return nil, err
				}
				count, err := r.Orders.CountOrders(p.Context, parseOrderFilter(p.Args["filter"]))
				if err != nil {
					return nil, wrapErr(err)
				}
				return int(count), nil
			},
		},
		"activeOrdersCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpActiveOrdersCount); err != nil {
					return nil, err
				}
				count, err := r.Orders.CountActiveOrders(p.Context)
				if err != nil {
					return nil, wrapErr(err)
				}
				return int(count), nil
			},
		},
		"users": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(userType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpUsers); err != nil {
					return nil, err
				}
				users, err := r.Users.ListUsers(p.Context)
				if err != nil {
					return nil, wrapErr(err)
				}
				return users, nil
			},
		},
		"user": &graphql.Field{
			Type: userType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpUser); err != nil {
					return nil, err
				}
				user, err := r.Users.GetUser(p.Context, stringArg(p, "id"))
				if err != nil {
					return nil, wrapErr(err)
				}
				return *user, nil
			},
		},
		"usersCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpUsersCount); err != nil {
					return nil, err
				}
				count, err := r.Users.CountUsers(p.Context)
				if err != nil {
					return nil, wrapErr(err)
				}
				return int(count), nil
			},
		},
		"customersCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpCustomersCount); err != nil {
					return nil, err
				}
				count, err := r.Users.CountCustomers(p.Context)
				if err != nil {
					return nil, wrapErr(err)
				}
				return int(count), nil
			},
		},
		"cart": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(cartLineItemType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				session, err := r.gate(p, authz.OpCart)
				if err != nil {
					return nil, err
				}
				items, err := r.Cart.Get(p.Context, session.UserID)
				if err != nil {
					return nil, wrapErr(err)
				}
				return items, nil
			},
		},
	}
}

func (r *Resolver) mutationFields() graphql.Fields {
	return graphql.Fields{
		"addNewProduct": &graphql.Field{
			Type: productType,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpAddNewProduct); err != nil {
					return nil, err
				}
				product, err := r.Catalog.CreateProduct(p.Context, productFromInput(p.Args["input"]))
				if err != nil {
					return nil, wrapErr(err)
				}
				return *product, nil
			},
		},
		"updateProduct": &graphql.Field{
			Type: productType,
			Args: graphql.FieldConfigArgument{
				"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpUpdateProduct); err != nil {
					return nil, err
				}
				product := productFromInput(p.Args["input"])
				product.ProductID = uint(intArg(p, "id", 0))
				updated, err := r.Catalog.UpdateProduct(p.Context, product)
				if err != nil {
					return nil, wrapErr(err)
				}
				return *updated, nil
			},
		},
		"deleteProduct": &graphql.Field{
			Type: productType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpDeleteProduct); err != nil {
					return nil, err
				}
				deleted, err := r.Catalog.DeleteProduct(p.Context, uint(intArg(p, "id", 0)))
				if err != nil {
					return nil, wrapErr(err)
				}
				return *deleted, nil
			},
		},
		"createCategory": &graphql.Field{
			Type: categoryType,
			Args: graphql.FieldConfigArgument{
				"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpCreateCategory); err != nil {
					return nil, err
				}
				category, err := r.Catalog.CreateCategory(p.Context, stringArg(p, "name"))
				if err != nil {
					return nil, wrapErr(err)
				}
				return *category, nil
			},
		},
		"updateCategory": &graphql.Field{
			Type: categoryType,
			Args: graphql.FieldConfigArgument{
				"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpUpdateCategory); err != nil {
					return nil, err
				}
				category, err := r.Catalog.UpdateCategory(p.Context, uint(intArg(p, "id", 0)), stringArg(p, "name"))
				if err != nil {
					return nil, wrapErr(err)
				}
				return *category, nil
			},
		},
		"deleteCategory": &graphql.Field{
			Type: categoryType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpDeleteCategory); err != nil {
					return nil, err
				}
				deleted, err := r.Catalog.DeleteCategory(p.Context, uint(intArg(p, "id", 0)))
				if err != nil {
					return nil, wrapErr(err)
				}
				return *deleted, nil
			},
		},
		"addOrder": &graphql.Field{
			Type: orderType,
			Args: graphql.FieldConfigArgument{
				"items": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemInput)))},
				"total": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				session, err := r.gate(p, authz.OpAddOrder)
				if err != nil {
					return nil, err
				}
				input := service.PlaceOrderInput{
					Items: orderItemsFromArgs(p.Args["items"]),
					Total: decimal.NewFromFloat(p.Args["total"].(float64)),
				}
				order, err := r.Orders.PlaceOrder(p.Context, session.UserID, input)
				if err != nil {
					return nil, wrapErr(err)
				}
				// 下單成功後清掉server端購物車，失敗只記log不影響訂單
				if err := r.Cart.Clear(p.Context, session.UserID); err != nil {
					r.Logger.Error("clear cart after order failed",
						"user_id", session.UserID, "order_id", order.OrderID, "err", err)
				}
				return *order, nil
			},
		},
		"updateOrderStatus": &graphql.Field{
			Type: orderType,
			Args: graphql.FieldConfigArgument{
				"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpUpdateOrderStatus); err != nil {
					return nil, err
				}
				order, err := r.Orders.UpdateOrderStatus(p.Context, stringArg(p, "id"), model.OrderStatus(stringArg(p, "status")))
				if err != nil {
					return nil, wrapErr(err)
				}
				return *order, nil
			},
		},
		"signUp": &graphql.Field{
			Type: userType,
			Args: graphql.FieldConfigArgument{
				"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpSignUp); err != nil {
					return nil, err
				}
				user, err := r.Users.Register(p.Context, service.RegisterInput{
					Name:     stringArg(p, "name"),
					Email:    stringArg(p, "email"),
					Password: stringArg(p, "password"),
				})
				if err != nil {
					return nil, wrapErr(err)
				}
				return *user, nil
			},
		},
		"signIn": &graphql.Field{
			Type: sessionPayloadType,
			Args: graphql.FieldConfigArgument{
				"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := r.gate(p, authz.OpSignIn); err != nil {
					return nil, err
				}
				token, user, err := r.Users.Login(p.Context, stringArg(p, "email"), stringArg(p, "password"))
				if err != nil {
					return nil, wrapErr(err)
				}
				return sessionPayload{Token: token, User: *user}, nil
			},
		},
		"signOut": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				session, err := r.gate(p, authz.OpSignOut)
				if err != nil {
					return nil, err
				}
				if err := r.Users.Logout(p.Context, session.SessionID); err != nil {
					return nil, wrapErr(err)
				}
				return true, nil
			},
		},
		"completeSignUp": &graphql.Field{
			Type: userType,
			Args: graphql.FieldConfigArgument{
				"phoneNumber": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"address":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				session, err := r.gate(p, authz.OpCompleteSignUp)
				if err != nil {
					return nil, err
				}
				user, err := r.Users.CompleteSignUp(p.Context, session.UserID, stringArg(p, "phoneNumber"), stringArg(p, "address"))
				if err != nil {
					return nil, wrapErr(err)
				}
				return *user, nil
			},
		},
		"updateCustomerProfile": &graphql.Field{
			Type: userType,
			Args: graphql.FieldConfigArgument{
				"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"phoneNumber": &graphql.ArgumentConfig{Type: graphql.String},
				"address":     &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				session, err := r.gate(p, authz.OpUpdateCustomerProfile)
				if err != nil {
					return nil, err
				}
				user, err := r.Users.UpdateCustomerProfile(p.Context, session.UserID,
					stringArg(p, "name"), stringArg(p, "phoneNumber"), stringArg(p, "address"))
				if err != nil {
					return nil, wrapErr(err)
				}
				return *user, nil
			},
		},
		"deleteCustomerProfile": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				session, err := r.gate(p, authz.OpDeleteCustomerProfile)
				if err != nil {
					return nil, err
				}
				if err := r.Users.DeleteCustomerProfile(p.Context, session.UserID); err != nil {
					return nil, wrapErr(err)
				}
				if err := r.Cart.Clear(p.Context, session.UserID); err != nil {
					r.Logger.Error("clear cart after profile delete failed", "user_id", session.UserID, "err", err)
				}
				return true, nil
			},
		},
		"addToCart": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(cartLineItemType)),
			Args: graphql.FieldConfigArgument{
				"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				session, err := r.gate(p, authz.OpAddToCart)
				if err != nil {
					return nil, err
				}
				product, err := r.Catalog.GetProduct(p.Context, uint(intArg(p, "productId", 0)))
				if err != nil {
					return nil, wrapErr(err)
				}
				if err := r.Cart.Add(p.Context, session.UserID, product); err != nil {
					if errors.Is(err, cart.ErrInsufficientStock) {
						return nil, wrapErr(apperr.NewValidation("insufficient stock",
							map[string]string{"productId": "requested quantity exceeds available stock"}))
					}
					return nil, wrapErr(err)
				}
				items, err := r.Cart.Get(p.Context, session.UserID)
				if err != nil {
					return nil, wrapErr(err)
				}
				return items, nil
			},
		},
		"removeFromCart": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(cartLineItemType)),
			Args: graphql.FieldConfigArgument{
				"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				session, err := r.gate(p, authz.OpRemoveFromCart)
				if err != nil {
					return nil, err
				}
				if err := r.Cart.Remove(p.Context, session.UserID, uint(intArg(p, "productId", 0))); err != nil {
					return nil, wrapErr(err)
				}
				items, err := r.Cart.Get(p.Context, session.UserID)
				if err != nil {
					return nil, wrapErr(err)
				}
				return items, nil
			},
		},
		"clearCart": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				session, err := r.gate(p, authz.OpClearCart)
				if err != nil {
					return nil, err
				}
				if err := r.Cart.Clear(p.Context, session.UserID); err != nil {
					return nil, wrapErr(err)
				}
				return true, nil
			},
		},
	}
}

func productFromInput(arg interface{}) *model.Product {
	product := &model.Product{}
	m, ok := arg.(map[string]interface{})
	if !ok {
		return product
	}
	if v, ok := m["name"].(string); ok {
		product.Name = v
	}
	if v, ok := m["description"].(string); ok {
		product.Description = v
	}
	if v, ok := m["price"].(float64); ok {
		product.Price = decimal.NewFromFloat(v)
	}
	if v, ok := m["qteInStock"].(int); ok {
		product.QteInStock = v
	}
	if v, ok := m["categoryId"].(int); ok {
		product.CategoryID = uint(v)
	}
	if v, ok := m["imageUrl"].(string); ok {
		product.ImageURL = v
	}
	return product
}

func orderItemsFromArgs(arg interface{}) []model.OrderItemInput {
	raw, ok := arg.([]interface{})
	if !ok {
		return nil
	}
	items := make([]model.OrderItemInput, 0, len(raw))
	for _, it := range raw {
		m, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		item := model.OrderItemInput{}
		if v, ok := m["productId"].(int); ok {
			item.ProductID = uint(v)
		}
		if v, ok := m["qte"].(int); ok {
			item.Qte = v
		}
		items = append(items, item)
	}
	return items
}

// NewSchema 組出完整的executable schema
func (r *Resolver) NewSchema() (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: r.queryFields(),
		}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Mutation",
			Fields: r.mutationFields(),
		}),
	})
}

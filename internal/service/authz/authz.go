// Package authz 集中式角色閘門
// 每個對外操作在這裡宣告需要的角色，resolver dispatch前先過這一關
package authz

import (
	"context"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
)

// Session 已驗證的請求身份，由middleware放進request context
type Session struct {
	SessionID string
	UserID    string
	Role      model.UserRole
	UserName  string
	UserEmail string
}

type Requirement int

const (
	Public        Requirement = iota // 不需要session
	CustomerOnly                     // 需要CUSTOMER角色
	AdminOnly                        // 需要ADMIN角色
	Authenticated                    // 需要session，擁有權由resolver用RequireOwner補查
)

type Operation string

const (
	// catalog 公開讀取
	OpProducts                Operation = "products"
	OpProduct                 Operation = "product"
	OpProductsCount           Operation = "productsCount"
	OpAvailableProductsCount  Operation = "availableProductsCount"
	OpCategories              Operation = "categories"
	OpFeaturedCategories      Operation = "featuredCategories"
	OpCategory                Operation = "category"
	OpCountFilteredCategories Operation = "countFilteredCategories"

	// orders
	OpOrders            Operation = "orders"
	OpOrder             Operation = "order"
	OpMyOrders          Operation = "myOrders"
	OpOrdersCount       Operation = "ordersCount"
	OpActiveOrdersCount Operation = "activeOrdersCount"
	OpAddOrder          Operation = "addOrder"
	OpUpdateOrderStatus Operation = "updateOrderStatus"

	// users
	OpUsers                 Operation = "users"
	OpUser                  Operation = "user"
	OpUsersCount            Operation = "usersCount"
	OpCustomersCount        Operation = "customersCount"
	OpCompleteSignUp        Operation = "completeSignUp"
	OpUpdateCustomerProfile Operation = "updateCustomerProfile"
	OpDeleteCustomerProfile Operation = "deleteCustomerProfile"

	// admin catalog CRUD
	OpAddNewProduct  Operation = "addNewProduct"
	OpUpdateProduct  Operation = "updateProduct"
	OpDeleteProduct  Operation = "deleteProduct"
	OpCreateCategory Operation = "createCategory"
	OpUpdateCategory Operation = "updateCategory"
	OpDeleteCategory Operation = "deleteCategory"

	// auth
	OpSignUp  Operation = "signUp"
	OpSignIn  Operation = "signIn"
	OpSignOut Operation = "signOut"

	// cart
	OpCart           Operation = "cart"
	OpAddToCart      Operation = "addToCart"
	OpRemoveFromCart Operation = "removeFromCart"
	OpClearCart      Operation = "clearCart"
)

// 操作 -> 所需角色 的宣告表，取代散落在各resolver的動態檢查
var policies = map[Operation]Requirement{
	OpProducts:                Public,
	OpProduct:                 Public,
	OpProductsCount:           Public,
	OpAvailableProductsCount:  Public,
	OpCategories:              Public,
	OpFeaturedCategories:      Public,
	OpCategory:                Public,
	OpCountFilteredCategories: AdminOnly,

	OpOrders:            AdminOnly,
	OpOrder:             Authenticated, // 擁有者或admin，resolver補查
	OpMyOrders:          CustomerOnly,
	OpOrdersCount:       AdminOnly,
	OpActiveOrdersCount: AdminOnly,
	OpAddOrder:          CustomerOnly,
	OpUpdateOrderStatus: AdminOnly,

	OpUsers:                 AdminOnly,
	OpUser:                  AdminOnly,
	OpUsersCount:            AdminOnly,
	OpCustomersCount:        AdminOnly,
	OpCompleteSignUp:        Authenticated,
	OpUpdateCustomerProfile: CustomerOnly,
	OpDeleteCustomerProfile: CustomerOnly,

	OpAddNewProduct:  AdminOnly,
	OpUpdateProduct:  AdminOnly,
	OpDeleteProduct:  AdminOnly,
	OpCreateCategory: AdminOnly,
	OpUpdateCategory: AdminOnly,
	OpDeleteCategory: AdminOnly,

	OpSignUp:  Public,
	OpSignIn:  Public,
	OpSignOut: Authenticated,

	OpCart:           CustomerOnly,
	OpAddToCart:      CustomerOnly,
	OpRemoveFromCart: CustomerOnly,
	OpClearCart:      CustomerOnly,
}

// Authorize 在任何persistence呼叫前同步執行
// 未宣告的操作一律拒絕
func Authorize(session *Session, op Operation) error {
	req, ok := policies[op]
	if !ok {
		return apperr.Newf(apperr.Unauthorized, "operation %s is not allowed", op)
	}

	switch req {
	case Public:
		return nil
	case Authenticated:
		if session == nil {
			return apperr.New(apperr.Unauthorized, "authentication required")
		}
		return nil
	case CustomerOnly:
		if session == nil {
			return apperr.New(apperr.Unauthorized, "authentication required")
		}
		if session.Role != model.RoleCustomer {
			return apperr.New(apperr.Unauthorized, "customer role required")
		}
		return nil
	case AdminOnly:
		if session == nil {
			return apperr.New(apperr.Unauthorized, "authentication required")
		}
		if session.Role != model.RoleAdmin {
			return apperr.New(apperr.Unauthorized, "admin role required")
		}
		return nil
	}
	return apperr.New(apperr.Unauthorized, "unknown requirement")
}

// RequireOwner 資源層級的擁有權檢查，admin一律放行
// 已認證但非擁有者 -> AccessDenied(和Unauthorized區分開)
func RequireOwner(session *Session, resourceOwnerID string) error {
	if session == nil {
		return apperr.New(apperr.Unauthorized, "authentication required")
	}
	if session.Role == model.RoleAdmin {
		return nil
	}
	if session.UserID != resourceOwnerID {
		return apperr.New(apperr.AccessDenied, "not the owner of this resource")
	}
	return nil
}

type sessionCtxKey struct{}

func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

// FromContext 取出session，匿名請求回傳nil
func FromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(sessionCtxKey{}).(*Session)
	return session
}

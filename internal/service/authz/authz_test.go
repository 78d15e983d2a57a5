package authz

import (
	"testing"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/stretchr/testify/require"
)

var (
	anonymous *Session
	customer  = &Session{SessionID: "s1", UserID: "u1", Role: model.RoleCustomer}
	admin     = &Session{SessionID: "s2", UserID: "a1", Role: model.RoleAdmin}
)

func TestAuthorize_RuleTable(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		op      Operation
		want    apperr.Kind // "" 代表放行
	}{
		{"public catalog read, anonymous", anonymous, OpProducts, ""},
		{"public catalog read, customer", customer, OpProduct, ""},
		{"category count needs admin", customer, OpCountFilteredCategories, apperr.Unauthorized},
		{"category count, admin ok", admin, OpCountFilteredCategories, ""},

		{"place order needs customer", anonymous, OpAddOrder, apperr.Unauthorized},
		{"place order by admin rejected", admin, OpAddOrder, apperr.Unauthorized},
		{"place order by customer ok", customer, OpAddOrder, ""},
		{"my orders by customer ok", customer, OpMyOrders, ""},
		{"my orders by admin rejected", admin, OpMyOrders, apperr.Unauthorized},

		{"list all orders admin only", customer, OpOrders, apperr.Unauthorized},
		{"list all orders, admin ok", admin, OpOrders, ""},
		{"users view admin only", customer, OpUsers, apperr.Unauthorized},
		{"order view needs session", anonymous, OpOrder, apperr.Unauthorized},
		{"order view with session passes gate", customer, OpOrder, ""},

		{"product create admin only", customer, OpAddNewProduct, apperr.Unauthorized},
		{"product delete admin only", anonymous, OpDeleteProduct, apperr.Unauthorized},
		{"category create, admin ok", admin, OpCreateCategory, ""},
		{"order status change admin only", customer, OpUpdateOrderStatus, apperr.Unauthorized},

		{"cart needs customer", anonymous, OpCart, apperr.Unauthorized},
		{"cart, customer ok", customer, OpAddToCart, ""},

		{"unknown operation rejected", admin, Operation("dropTables"), apperr.Unauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.session, tt.op)
			if tt.want == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, tt.want, apperr.KindOf(err))
		})
	}
}

func TestRequireOwner(t *testing.T) {
	// 擁有者放行
	require.NoError(t, RequireOwner(customer, "u1"))
	// admin一律放行
	require.NoError(t, RequireOwner(admin, "u1"))
	// 已認證但非擁有者 -> AccessDenied，不是Unauthorized
	err := RequireOwner(customer, "someone-else")
	require.Equal(t, apperr.AccessDenied, apperr.KindOf(err))
	// 沒有session -> Unauthorized
	err = RequireOwner(anonymous, "u1")
	require.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}

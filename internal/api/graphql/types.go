package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
)

// gorm entity沒有json tag，欄位一律用明確的resolver取值
// 金額在wire上用Float表示，內部一律decimal

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.Product).ProductID), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Product).Name, nil
			},
		},
		"description": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Product).Description, nil
			},
		},
		"price": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Product).Price.InexactFloat64(), nil
			},
		},
		"qteInStock": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Product).QteInStock, nil
			},
		},
		"categoryId": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.Product).CategoryID), nil
			},
		},
		"imageUrl": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Product).ImageURL, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Product).CreatedAt, nil
			},
		},
	},
})

var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.Category).CategoryID), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Category).Name, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Category).CreatedAt, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Category).UpdatedAt, nil
			},
		},
	},
})

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.OrderItem).OrderItemID), nil
			},
		},
		"orderId": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.OrderItem).OrderID, nil
			},
		},
		"productId": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.OrderItem).ProductID), nil
			},
		},
		"qte": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.OrderItem).Qte, nil
			},
		},
		"price": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.OrderItem).Price.InexactFloat64(), nil
			},
		},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Order).OrderID, nil
			},
		},
		"userId": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Order).UserID, nil
			},
		},
		"status": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(model.Order).Status), nil
			},
		},
		"total": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Order).Total.InexactFloat64(), nil
			},
		},
		"items": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(orderItemType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Order).Items, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Order).CreatedAt, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Order).UpdatedAt, nil
			},
		},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.User).UserID, nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.User).UserName, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.User).UserEmail, nil
			},
		},
		"role": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(model.User).Role), nil
			},
		},
		"phoneNumber": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.User).UserPhone, nil
			},
		},
		"address": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.User).UserAddress, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.User).CreatedAt, nil
			},
		},
	},
})

var cartLineItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CartLineItem",
	Fields: graphql.Fields{
		"productId": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.CartLineItem).ProductID), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.CartLineItem).Name, nil
			},
		},
		"price": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.CartLineItem).Price.InexactFloat64(), nil
			},
		},
		"qteInStock": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.CartLineItem).QteInStock, nil
			},
		},
		"qte": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.CartLineItem).Qte, nil
			},
		},
	},
})

var sessionPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SessionPayload",
	Fields: graphql.Fields{
		"token": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(sessionPayload).Token, nil
			},
		},
		"user": &graphql.Field{
			Type: graphql.NewNonNull(userType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(sessionPayload).User, nil
			},
		},
	},
})

type sessionPayload struct {
	Token string
	User  model.User
}

var productFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductFilter",
	Fields: graphql.InputObjectConfigFieldMap{
		"search":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"inStockOnly":   &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"minPrice":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"maxPrice":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"categoryId":    &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"createdFrom":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"createdTo":     &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"sortBy":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"sortDirection": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var categoryFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CategoryFilter",
	Fields: graphql.InputObjectConfigFieldMap{
		"search":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"createdFrom": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"createdTo":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var orderFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderFilter",
	Fields: graphql.InputObjectConfigFieldMap{
		"userId":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"createdFrom": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"createdTo":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var orderItemInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"productId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"qte":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var productInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"price":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"qteInStock":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"categoryId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"imageUrl":    &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

package db

import (
	"context"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"gorm.io/gorm"
)

// UnifiedDB 統一的資料庫介面
type UnifiedDB interface {
	// 基礎操作
	GetDB() *gorm.DB
	InitMigrate() error

	IProductRepository
	ICategoryRepository
	IOrderRepository
	IUserRepository
}

// IProductRepository Product 相關操作介面
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, productID uint) (*model.Product, error)
	ListProducts(ctx context.Context, limit, offset int, filter ProductFilter) ([]model.Product, error)
	CountProducts(ctx context.Context, filter ProductFilter) (int64, error)
	CountAvailableProducts(ctx context.Context) (int64, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, productID uint) error
	DeductStock(ctx context.Context, tx *gorm.DB, productID uint, qte int) error
	AddStock(ctx context.Context, productID uint, qte int) error
}

// ICategoryRepository Category 相關操作介面
type ICategoryRepository interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategoryByID(ctx context.Context, categoryID uint) (*model.Category, error)
	GetAllCategories(ctx context.Context) ([]model.Category, error)
	GetFeaturedCategories(ctx context.Context, head int) ([]model.Category, error)
	CountCategories(ctx context.Context, filter CategoryFilter) (int64, error)
	CountProductsInCategory(ctx context.Context, categoryID uint) (int64, error)
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, categoryID uint) error
}

// IOrderRepository Order 相關操作介面
type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	CreateOrderTx(ctx context.Context, tx *gorm.DB, order *model.Order) error
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	GetOrderByID(ctx context.Context, orderID string) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error)
	ListOrders(ctx context.Context, limit, offset int, filter OrderFilter) ([]model.Order, error)
	CountOrders(ctx context.Context, filter OrderFilter) (int64, error)
	CountActiveOrders(ctx context.Context) (int64, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}

// IUserRepository User 相關操作介面
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	CountUsers(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, userID string) error
}

// UnifiedDBImpl 統一資料庫實現
type UnifiedDBImpl struct {
	db    *gorm.DB
	dbDao *DbDao
	*ProductRepo
	*CategoryRepo
	*OrderRepo
	*UserRepo
}

// NewUnifiedDB 創建新的統一資料庫實例
func NewUnifiedDB(db *gorm.DB) *UnifiedDBImpl {
	dbDao := NewDbDao(db)
	return &UnifiedDBImpl{
		db:           db,
		dbDao:        dbDao,
		ProductRepo:  NewProductRepo(dbDao),
		CategoryRepo: NewCategoryRepo(dbDao),
		OrderRepo:    NewOrderRepo(dbDao),
		UserRepo:     NewUserRepo(dbDao),
	}
}

func (u *UnifiedDBImpl) InitMigrate() error {
	return u.dbDao.InitMigrate()
}

// GetDB 獲取資料庫連接
func (u *UnifiedDBImpl) GetDB() *gorm.DB {
	return u.db
}

var _ UnifiedDB = (*UnifiedDBImpl)(nil)

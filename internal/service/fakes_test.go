package service

import (
	"context"
	"sort"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/repository/db"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/repository/redis_repo"
	"gorm.io/gorm"
)

// 測試用in-memory假repo，照db package的repo介面逐一實作

type fakeProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*model.Product{}, nextID: 1}
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, p *model.Product) error {
	if p.ProductID == 0 {
		p.ProductID = f.nextID
		f.nextID++
	}
	cp := *p
	f.products[p.ProductID] = &cp
	return nil
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) ListProducts(ctx context.Context, limit, offset int, filter db.ProductFilter) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (f *fakeProductRepo) CountProducts(ctx context.Context, filter db.ProductFilter) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) CountAvailableProducts(ctx context.Context) (int64, error) {
	var n int64
	for _, p := range f.products {
		if p.QteInStock > 0 {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, p *model.Product) error {
	cp := *p
	f.products[p.ProductID] = &cp
	return nil
}

func (f *fakeProductRepo) DeleteProduct(ctx context.Context, id uint) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) DeductStock(ctx context.Context, tx *gorm.DB, id uint, qte int) error {
	p, ok := f.products[id]
	if !ok || p.QteInStock < qte {
		return db.ErrInsufficientStock
	}
	p.QteInStock -= qte
	return nil
}

func (f *fakeProductRepo) AddStock(ctx context.Context, id uint, qte int) error {
	if p, ok := f.products[id]; ok {
		p.QteInStock += qte
	}
	return nil
}

var _ db.IProductRepository = (*fakeProductRepo)(nil)

type fakeCategoryRepo struct {
	categories map[uint]*model.Category
	inCategory map[uint]int64 // categoryID -> product count
	nextID     uint
	createErr  error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uint]*model.Category{}, inCategory: map[uint]int64{}, nextID: 1}
}

func (f *fakeCategoryRepo) CreateCategory(ctx context.Context, c *model.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.categories {
		if existing.Name == c.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	c.CategoryID = f.nextID
	f.nextID++
	cp := *c
	f.categories[c.CategoryID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetCategoryByID(ctx context.Context, id uint) (*model.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	for _, c := range f.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCategoryRepo) GetFeaturedCategories(ctx context.Context, head int) ([]model.Category, error) {
	all, _ := f.GetAllCategories(ctx)
	if len(all) > head {
		all = all[:head]
	}
	return all, nil
}

func (f *fakeCategoryRepo) CountCategories(ctx context.Context, filter db.CategoryFilter) (int64, error) {
	return int64(len(f.categories)), nil
}

func (f *fakeCategoryRepo) CountProductsInCategory(ctx context.Context, id uint) (int64, error) {
	return f.inCategory[id], nil
}

func (f *fakeCategoryRepo) UpdateCategory(ctx context.Context, c *model.Category) error {
	cp := *c
	f.categories[c.CategoryID] = &cp
	return nil
}

func (f *fakeCategoryRepo) DeleteCategory(ctx context.Context, id uint) error {
	delete(f.categories, id)
	return nil
}

var _ db.ICategoryRepository = (*fakeCategoryRepo)(nil)

type fakeOrderRepo struct {
	orders map[string]*model.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*model.Order{}}
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, o *model.Order) error {
	cp := *o
	f.orders[o.OrderID] = &cp
	return nil
}

func (f *fakeOrderRepo) CreateOrderTx(ctx context.Context, tx *gorm.DB, o *model.Order) error {
	return f.CreateOrder(ctx, o)
}

func (f *fakeOrderRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListOrders(ctx context.Context, limit, offset int, filter db.OrderFilter) ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) CountOrders(ctx context.Context, filter db.OrderFilter) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) CountActiveOrders(ctx context.Context) (int64, error) {
	var n int64
	for _, o := range f.orders {
		switch o.Status {
		case model.OrderStatusPending, model.OrderStatusConfirmed, model.OrderStatusShipped:
			n++
		}
	}
	return n, nil
}

func (f *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

var _ db.IOrderRepository = (*fakeOrderRepo)(nil)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	for _, existing := range f.users {
		if existing.UserEmail == u.UserEmail {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	cp := *u
	f.users[u.UserID] = &cp
	return u, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.UserEmail == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAllUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == model.RoleCustomer {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, u *model.User) error {
	cp := *u
	f.users[u.UserID] = &cp
	return nil
}

func (f *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

var _ db.IUserRepository = (*fakeUserRepo)(nil)

type fakeSessionStore struct {
	sessions map[string]*redis_repo.UserSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*redis_repo.UserSession{}}
}

func (f *fakeSessionStore) CreateSession(ctx context.Context, s *redis_repo.UserSession) error {
	cp := *s
	f.sessions[s.SessionID] = &cp
	return nil
}

func (f *fakeSessionStore) GetSession(ctx context.Context, id string) (*redis_repo.UserSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, redis_repo.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionStore) DeleteSession(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

var _ ISessionStore = (*fakeSessionStore)(nil)

type fakeProducer struct {
	placed        []string
	statusChanges []string
}

func (f *fakeProducer) ProduceOrderPlaced(ctx context.Context, order *model.Order) error {
	f.placed = append(f.placed, order.OrderID)
	return nil
}

func (f *fakeProducer) ProduceOrderStatusChanged(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	f.statusChanges = append(f.statusChanges, orderID+":"+string(from)+"->"+string(to))
	return nil
}

var _ IOrderEventProducer = (*fakeProducer)(nil)

// Package cart 維護每個用戶的購物車行項目集合
// 集合本體在記憶體，每次變動後整份覆寫到Snapshotter，重啟後可還原
package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
)

var ErrInsufficientStock = errors.New("quantity exceeds stock on hand")

// Snapshotter 購物車的持久化後端
// 測試用memory實作，正式環境用redis快照
type Snapshotter interface {
	Save(ctx context.Context, ownerID string, items []model.CartLineItem) error
	Load(ctx context.Context, ownerID string) ([]model.CartLineItem, bool, error)
	Delete(ctx context.Context, ownerID string) error
}

type Store struct {
	mu       sync.Mutex
	carts    map[string][]model.CartLineItem
	snapshot Snapshotter
}

func NewStore(snapshot Snapshotter) *Store {
	return &Store{
		carts:    make(map[string][]model.CartLineItem),
		snapshot: snapshot,
	}
}

// load 第一次存取時從快照還原，快照不存在就用當前(空)集合初始化快照
func (s *Store) load(ctx context.Context, ownerID string) ([]model.CartLineItem, error) {
	if items, ok := s.carts[ownerID]; ok {
		return items, nil
	}
	items, ok, err := s.snapshot.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		items = []model.CartLineItem{}
		if err := s.snapshot.Save(ctx, ownerID, items); err != nil {
			return nil, err
		}
	}
	s.carts[ownerID] = items
	return items, nil
}

// Get 回傳集合的複本，呼叫端只能讀
func (s *Store) Get(ctx context.Context, ownerID string) ([]model.CartLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]model.CartLineItem, len(items))
	copy(out, items)
	return out, nil
}

// Add 已存在的行項目數量+1，否則新增一筆qte=1
// 數量以加入當下的庫存快照為上限，超過回傳 ErrInsufficientStock
func (s *Store) Add(ctx context.Context, ownerID string, product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, ownerID)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].ProductID == product.ProductID {
			if items[i].Qte+1 > items[i].QteInStock {
				return ErrInsufficientStock
			}
			items[i].Qte++
			found = true
			break
		}
	}
	if !found {
		if product.QteInStock < 1 {
			return ErrInsufficientStock
		}
		items = append(items, model.CartLineItem{
			ProductID:  product.ProductID,
			Name:       product.Name,
			Price:      product.Price,
			QteInStock: product.QteInStock,
			Qte:        1,
		})
	}

	s.carts[ownerID] = items
	return s.snapshot.Save(ctx, ownerID, items)
}

// Remove 數量大於1時-1，等於1時整筆移除，不在購物車內則為no-op
func (s *Store) Remove(ctx context.Context, ownerID string, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, ownerID)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		if items[i].Qte > 1 {
			items[i].Qte--
		} else {
			items = append(items[:i], items[i+1:]...)
		}
		break
	}

	s.carts[ownerID] = items
	return s.snapshot.Save(ctx, ownerID, items)
}

// Clear 清空購物車(訂單完成後呼叫)
func (s *Store) Clear(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := []model.CartLineItem{}
	s.carts[ownerID] = items
	return s.snapshot.Save(ctx, ownerID, items)
}

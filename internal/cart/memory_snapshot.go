package cart

import (
	"context"
	"sync"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
)

// MemorySnapshot 記憶體版的Snapshotter，單元測試用
type MemorySnapshot struct {
	mu    sync.Mutex
	store map[string][]model.CartLineItem
}

func NewMemorySnapshot() *MemorySnapshot {
	return &MemorySnapshot{store: make(map[string][]model.CartLineItem)}
}

func (m *MemorySnapshot) Save(ctx context.Context, ownerID string, items []model.CartLineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]model.CartLineItem, len(items))
	copy(cp, items)
	m.store[ownerID] = cp
	return nil
}

func (m *MemorySnapshot) Load(ctx context.Context, ownerID string) ([]model.CartLineItem, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.store[ownerID]
	if !ok {
		return nil, false, nil
	}
	cp := make([]model.CartLineItem, len(items))
	copy(cp, items)
	return cp, true, nil
}

func (m *MemorySnapshot) Delete(ctx context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, ownerID)
	return nil
}

var _ Snapshotter = (*MemorySnapshot)(nil)

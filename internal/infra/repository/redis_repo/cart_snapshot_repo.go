package redis_repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mrAbdou/ZenithShop-sub002/internal/cart"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

var _ cart.Snapshotter = (*CartSnapshotRepo)(nil)

// 固定的key前綴，一個用戶一份購物車快照
const cartKeyPrefix = "storefront:cart"

// CartSnapshotRepo 購物車的持久化快照
// 每次變動整份覆寫，讀取時整份還原
type CartSnapshotRepo struct {
	cartCache *redis.Client
}

func NewCartSnapshotRepo(cartCache *redis.Client) *CartSnapshotRepo {
	return &CartSnapshotRepo{cartCache: cartCache}
}

func generateCartKey(ownerID string) string {
	return fmt.Sprintf("%s:%s", cartKeyPrefix, ownerID)
}

// Save 覆寫整份快照
func (r *CartSnapshotRepo) Save(ctx context.Context, ownerID string, items []model.CartLineItem) error {
	if items == nil {
		items = []model.CartLineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}
	if err := r.cartCache.Set(ctx, generateCartKey(ownerID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

// Load 讀取快照，不存在時回傳 (nil, false, nil)
func (r *CartSnapshotRepo) Load(ctx context.Context, ownerID string) ([]model.CartLineItem, bool, error) {
	data, err := r.cartCache.Get(ctx, generateCartKey(ownerID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var items []model.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("invalid cart snapshot: %w", err)
	}
	return items, true, nil
}

// Delete 移除快照(訂單完成後清空購物車)
func (r *CartSnapshotRepo) Delete(ctx context.Context, ownerID string) error {
	if err := r.cartCache.Del(ctx, generateCartKey(ownerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}

// File: internal/catalogcache/catalog_cache.go
package catalogcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gms-admin/internal/game"
	"gms-admin/internal/pkg/log"
	"gms-admin/internal/pkg/redis"
)

const (
	itemNameKeyPrefix  = "gms:catalog:item_name:"
	equipTplKeyPrefix  = "gms:catalog:equip_tpl:"
	defaultCatalogTTL  = 24 * time.Hour
	catalogLookupLimit = 2 * time.Second
)

// CachedCatalog 在内存档案之上叠加一层 Redis 缓存。
// 先查 Redis，未命中时回源到底层档案并回填。
// Redis 不可用时直接走底层档案，不影响发放流程。
type CachedCatalog struct {
	source game.ItemProvider
	rdb    *redis.Client
	ttl    time.Duration
}

// NewCachedCatalog 创建带缓存的物品档案，rdb 允许为 nil
func NewCachedCatalog(source game.ItemProvider, rdb *redis.Client) *CachedCatalog {
	return &CachedCatalog{
		source: source,
		rdb:    rdb,
		ttl:    defaultCatalogTTL,
	}
}

// ItemName 按物品 ID 查询显示名称
func (c *CachedCatalog) ItemName(itemID int) (string, bool) {
	if c.rdb == nil {
		return c.source.ItemName(itemID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogLookupLimit)
	defer cancel()

	key := fmt.Sprintf("%s%d", itemNameKeyPrefix, itemID)
	if name, err := c.rdb.GetString(ctx, key); err == nil {
		return name, true
	} else if !redis.IsNil(err) {
		log.Debug("物品名称缓存读取失败", log.Int("item_id", itemID), log.String("error", err.Error()))
	}

	name, ok := c.source.ItemName(itemID)
	if !ok {
		return "", false
	}
	if err := c.rdb.SetWithTTL(ctx, key, name, c.ttl); err != nil {
		log.Debug("物品名称缓存回填失败", log.Int("item_id", itemID), log.String("error", err.Error()))
	}
	return name, true
}

// EquipTemplate 按物品 ID 查询装备模板
func (c *CachedCatalog) EquipTemplate(itemID int) (*game.EquipTemplate, bool) {
	if c.rdb == nil {
		return c.source.EquipTemplate(itemID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogLookupLimit)
	defer cancel()

	key := fmt.Sprintf("%s%d", equipTplKeyPrefix, itemID)
	if raw, err := c.rdb.GetString(ctx, key); err == nil {
		var tpl game.EquipTemplate
		if jsonErr := json.Unmarshal([]byte(raw), &tpl); jsonErr == nil {
			return &tpl, true
		}
		// 缓存内容损坏，删掉后回源
		_ = c.rdb.DeleteKey(ctx, key)
	} else if !redis.IsNil(err) {
		log.Debug("装备模板缓存读取失败", log.Int("item_id", itemID), log.String("error", err.Error()))
	}

	tpl, ok := c.source.EquipTemplate(itemID)
	if !ok {
		return nil, false
	}
	if raw, err := json.Marshal(tpl); err == nil {
		if setErr := c.rdb.SetWithTTL(ctx, key, string(raw), c.ttl); setErr != nil {
			log.Debug("装备模板缓存回填失败", log.Int("item_id", itemID), log.String("error", setErr.Error()))
		}
	}
	return tpl, true
}

// Invalidate 清除指定物品的缓存条目，档案热更后调用
func (c *CachedCatalog) Invalidate(ctx context.Context, itemID int) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.DeleteKey(ctx,
		fmt.Sprintf("%s%d", itemNameKeyPrefix, itemID),
		fmt.Sprintf("%s%d", equipTplKeyPrefix, itemID),
	)
}

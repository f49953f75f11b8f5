// File: internal/game/catalog.go
package game

import "sync"

// EquipTemplate 装备模板，决定一个物品 ID 能否作为装备实例化
type EquipTemplate struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Slot     string `json:"slot"`      // 装备部位
	ReqLevel int    `json:"req_level"` // 穿戴等级
}

// ItemProvider 物品/装备数据档案的查询契约。
// 查不到即视为物品不存在，发放前置校验依赖这一语义。
type ItemProvider interface {
	// ItemName 按物品 ID 查询显示名称
	ItemName(itemID int) (string, bool)

	// EquipTemplate 按物品 ID 查询装备模板
	EquipTemplate(itemID int) (*EquipTemplate, bool)
}

// StaticCatalog 内存物品档案，启动时由游戏数据装载
type StaticCatalog struct {
	mu     sync.RWMutex
	names  map[int]string
	equips map[int]*EquipTemplate
}

// NewStaticCatalog 创建空档案
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		names:  make(map[int]string),
		equips: make(map[int]*EquipTemplate),
	}
}

// RegisterItem 登记一个物品名称
func (c *StaticCatalog) RegisterItem(itemID int, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[itemID] = name
}

// RegisterEquip 登记一个装备模板（同时登记名称）
func (c *StaticCatalog) RegisterEquip(template *EquipTemplate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[template.ItemID] = template.Name
	c.equips[template.ItemID] = template
}

// ItemName 按物品 ID 查询显示名称
func (c *StaticCatalog) ItemName(itemID int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.names[itemID]
	return name, ok
}

// EquipTemplate 按物品 ID 查询装备模板
func (c *StaticCatalog) EquipTemplate(itemID int) (*EquipTemplate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tpl, ok := c.equips[itemID]
	return tpl, ok
}

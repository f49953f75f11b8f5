// File: internal/game/inventory.go
package game

import (
	"fmt"
	"sync"
	"time"
)

// DefaultInventorySlots 背包默认格数
const DefaultInventorySlots = 96

// Item 背包中的一条物品记录
type Item struct {
	ItemID     int
	Quantity   int
	Pet        *Pet      // 宠物绑定，普通物品为 nil
	Expiration time.Time // 零值表示永久
}

// Equip 背包中的一件装备实例
type Equip struct {
	ItemID     int
	Stats      EquipStats
	Expiration time.Time // 零值表示永久
}

// Inventory 角色背包。物品与装备分开存放，插入操作并发安全。
type Inventory struct {
	mu     sync.Mutex
	slots  int
	items  []*Item
	equips []*Equip
}

// NewInventory 创建指定格数的背包
func NewInventory(slots int) *Inventory {
	if slots <= 0 {
		slots = DefaultInventorySlots
	}
	return &Inventory{slots: slots}
}

// AddItem 插入一条物品记录
func (inv *Inventory) AddItem(item *Item) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if len(inv.items)+len(inv.equips) >= inv.slots {
		return fmt.Errorf("背包已满")
	}
	inv.items = append(inv.items, item)
	return nil
}

// AddEquip 插入一件装备实例
func (inv *Inventory) AddEquip(equip *Equip) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if len(inv.items)+len(inv.equips) >= inv.slots {
		return fmt.Errorf("背包已满")
	}
	inv.equips = append(inv.equips, equip)
	return nil
}

// Items 返回物品记录快照
func (inv *Inventory) Items() []*Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Equips 返回装备实例快照
func (inv *Inventory) Equips() []*Equip {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make([]*Equip, len(inv.equips))
	copy(out, inv.equips)
	return out
}

// CountOf 返回指定物品的总数量
func (inv *Inventory) CountOf(itemID int) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	total := 0
	for _, it := range inv.items {
		if it.ItemID == itemID {
			total += it.Quantity
		}
	}
	return total
}

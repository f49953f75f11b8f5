// File: internal/game/character.go
package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gms-admin/internal/pkg/log"
	"gms-admin/internal/pkg/notify"
)

// MinGMLevelToHide 隐身操作要求的最低 GM 等级
const MinGMLevelToHide = 3

// Session 角色的在线会话通道。消息推送尽力而为，会话可能随时关闭。
type Session interface {
	Send(text string) error
	UpdateStat(stat Stat, value int) error
}

// Character 在线角色实体，实现 Player 契约。
// 各状态变更内部持锁，同一角色可被多个线程并发操作。
type Character struct {
	id      int
	name    string
	worldID int

	mu      sync.Mutex
	mesos   int64
	exp     int64
	fame    int
	gmLevel int
	hidden  bool

	cashShop  *CashShop
	inventory *Inventory
	session   Session
}

// NewCharacter 创建在线角色
func NewCharacter(id int, name string, worldID int, session Session) *Character {
	return &Character{
		id:        id,
		name:      name,
		worldID:   worldID,
		cashShop:  NewCashShop(),
		inventory: NewInventory(DefaultInventorySlots),
		session:   session,
	}
}

func (c *Character) ID() int      { return c.id }
func (c *Character) Name() string { return c.name }
func (c *Character) WorldID() int { return c.worldID }

// CashShop 返回角色的商城余额账本
func (c *Character) CashShop() *CashShop { return c.cashShop }

// Inventory 返回角色背包
func (c *Character) Inventory() *Inventory { return c.inventory }

// GainCash 增加指定类型的点券余额
func (c *Character) GainCash(cashType CashType, amount int) error {
	c.cashShop.GainCash(cashType, amount)
	return nil
}

// GainMesos 增加金币
func (c *Character) GainMesos(amount int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mesos += int64(amount)
	return nil
}

// GainExp 增加经验
func (c *Character) GainExp(amount int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exp += int64(amount)
	return nil
}

// AddItem 向背包插入物品
func (c *Character) AddItem(itemID, quantity int, pet *Pet, expiration time.Time) error {
	return c.inventory.AddItem(&Item{
		ItemID:     itemID,
		Quantity:   quantity,
		Pet:        pet,
		Expiration: expiration,
	})
}

// GainEquip 按自定义属性实例化装备并放入背包
func (c *Character) GainEquip(itemID int, stats EquipStats) error {
	var expiration time.Time
	if stats.Expire > 0 {
		expiration = time.Now().Add(time.Duration(stats.Expire) * time.Minute)
	}
	return c.inventory.AddEquip(&Equip{
		ItemID:     itemID,
		Stats:      stats,
		Expiration: expiration,
	})
}

// SetGMLevel 设置 GM 等级
func (c *Character) SetGMLevel(level int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gmLevel = level
	return nil
}

// GMLevel 返回当前 GM 等级
func (c *Character) GMLevel() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gmLevel
}

// Hide 切换隐身状态。等级不足时拒绝切换，
// 因此调级与隐身的先后顺序由调用方保证。
func (c *Character) Hide(hidden bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hidden == hidden {
		return nil
	}
	if c.gmLevel < MinGMLevelToHide {
		return fmt.Errorf("GM 等级 %d 不足，无法切换隐身", c.gmLevel)
	}
	c.hidden = hidden
	return nil
}

// Hidden 返回当前隐身状态
func (c *Character) Hidden() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hidden
}

// SetFame 设置人气值
func (c *Character) SetFame(fame int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fame = fame
	return nil
}

// Fame 返回当前人气值
func (c *Character) Fame() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fame
}

// Mesos 返回当前金币数
func (c *Character) Mesos() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mesos
}

// Exp 返回当前经验值
func (c *Character) Exp() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exp
}

// UpdateSingleStat 将单项属性的新值推送到会话
func (c *Character) UpdateSingleStat(stat Stat, value int) {
	if c.session == nil {
		return
	}
	if err := c.session.UpdateStat(stat, value); err != nil {
		log.Debug("属性推送失败", log.Int("character_id", c.id), log.Any("error", err))
	}
}

// Message 向角色会话发送文本消息，尽力而为
func (c *Character) Message(text string) {
	if c.session == nil {
		return
	}
	if err := c.session.Send(text); err != nil {
		log.Debug("会话消息发送失败", log.Int("character_id", c.id), log.Any("error", err))
	}
}

// NatsSession 通过 NATS 把会话消息转发给游戏网关
type NatsSession struct {
	worldID     int
	characterID int
}

// NewNatsSession 创建 NATS 会话通道
func NewNatsSession(worldID, characterID int) *NatsSession {
	return &NatsSession{worldID: worldID, characterID: characterID}
}

// Send 发布文本消息
func (s *NatsSession) Send(text string) error {
	return notify.PublishSessionMessage(context.Background(), s.worldID, s.characterID, text)
}

// UpdateStat 发布单项属性变更
func (s *NatsSession) UpdateStat(stat Stat, value int) error {
	return notify.PublishStatUpdate(context.Background(), s.worldID, s.characterID, string(stat), value)
}

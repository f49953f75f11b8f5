// File: internal/game/player.go
package game

import "time"

// Stat 单项属性标识，用于向会话推送属性变更
type Stat string

const (
	StatFame Stat = "fame"
)

// EquipStats 自定义装备属性包
type EquipStats struct {
	Str         int
	Dex         int
	Int         int
	Luk         int
	HP          int
	MP          int
	PAtk        int
	MAtk        int
	PDef        int
	MDef        int
	Acc         int
	Avoid       int
	Hands       int
	Speed       int
	Jump        int
	UpgradeSlot int
	Expire      int // 有效期，分钟，0 表示永久
}

// Player 是发放调度器依赖的角色操作契约。
// 每个方法对应一种资源状态变更，由在线角色实体实现；
// 变更内部自行保证并发安全，调度器不加锁。
type Player interface {
	ID() int
	Name() string
	WorldID() int

	// GainCash 增加指定类型的点券余额
	GainCash(cashType CashType, amount int) error

	// GainMesos 增加金币
	GainMesos(amount int) error

	// GainExp 增加经验
	GainExp(amount int) error

	// AddItem 向背包插入物品；pet 非空时绑定宠物并带过期时间
	AddItem(itemID, quantity int, pet *Pet, expiration time.Time) error

	// GainEquip 按自定义属性实例化一件装备并放入背包
	GainEquip(itemID int, stats EquipStats) error

	// SetGMLevel 设置 GM 等级
	SetGMLevel(level int) error

	// Hide 切换隐身状态，需要足够的 GM 等级
	Hide(hidden bool) error

	// SetFame 设置人气值
	SetFame(fame int) error

	// UpdateSingleStat 将单项属性的新值推送到会话
	UpdateSingleStat(stat Stat, value int)

	// Message 向角色会话发送文本消息，尽力而为
	Message(text string)
}

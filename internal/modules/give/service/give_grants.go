package service

import (
	"context"
	"fmt"
	"time"

	"gms-admin/internal/game"
	"gms-admin/internal/pkg/xerrors"
	"gms-admin/internal/repository/entity"
)

// resourceGrant 一次发放动作的类型化表示。
// 扁平请求在 buildGrant 阶段转换成具体实现，之后只保留与该类型相关的字段。
type resourceGrant interface {
	// name 指标与审计中使用的类型名
	name() string

	// broadcastable 是否允许全服发放
	broadcastable() bool

	// describe 审计日志中的明细描述
	describe() string

	// apply 对单个角色执行状态变更并推送通知；broadcast 决定通知措辞
	apply(ctx context.Context, svc *GiveService, chr game.Player, broadcast bool) error
}

// cashGrant 点券类发放
type cashGrant struct {
	cashType game.CashType
	quantity int
}

func (g *cashGrant) name() string        { return "cash" }
func (g *cashGrant) broadcastable() bool { return true }

func (g *cashGrant) describe() string {
	return fmt.Sprintf("%d %s", g.quantity, g.cashType.Name())
}

func (g *cashGrant) apply(ctx context.Context, svc *GiveService, chr game.Player, broadcast bool) error {
	if err := chr.GainCash(g.cashType, g.quantity); err != nil {
		return err
	}
	chr.Message(fmt.Sprintf("%s %d %s", broadcastPrefix(broadcast), g.quantity, g.cashType.Name()))
	return nil
}

// mesoGrant 金币发放
type mesoGrant struct {
	quantity int
}

func (g *mesoGrant) name() string        { return "mesos" }
func (g *mesoGrant) broadcastable() bool { return true }
func (g *mesoGrant) describe() string    { return fmt.Sprintf("%d 金币", g.quantity) }

func (g *mesoGrant) apply(ctx context.Context, svc *GiveService, chr game.Player, broadcast bool) error {
	if err := chr.GainMesos(g.quantity); err != nil {
		return err
	}
	chr.Message(fmt.Sprintf("%s %d 金币", broadcastPrefix(broadcast), g.quantity))
	return nil
}

// expGrant 经验发放
type expGrant struct {
	quantity int
}

func (g *expGrant) name() string        { return "exp" }
func (g *expGrant) broadcastable() bool { return true }
func (g *expGrant) describe() string    { return fmt.Sprintf("%d 经验", g.quantity) }

func (g *expGrant) apply(ctx context.Context, svc *GiveService, chr game.Player, broadcast bool) error {
	if err := chr.GainExp(g.quantity); err != nil {
		return err
	}
	chr.Message(fmt.Sprintf("%s %d 经验", broadcastPrefix(broadcast), g.quantity))
	return nil
}

// itemGrant 物品发放。宠物物品在构造阶段已实例化宠物并计算过期时间。
type itemGrant struct {
	itemID   int
	itemName string
	quantity int

	pet        *game.Pet
	expiration time.Time
}

func (g *itemGrant) name() string        { return "item" }
func (g *itemGrant) broadcastable() bool { return true }

func (g *itemGrant) describe() string {
	if g.pet != nil {
		return fmt.Sprintf("%d 天 [%d] %s", g.quantity, g.itemID, g.itemName)
	}
	return fmt.Sprintf("%d 个 [%d] %s", g.quantity, g.itemID, g.itemName)
}

func (g *itemGrant) apply(ctx context.Context, svc *GiveService, chr game.Player, broadcast bool) error {
	if g.pet != nil {
		if err := chr.AddItem(g.itemID, 1, g.pet, g.expiration); err != nil {
			return err
		}
		chr.Message(fmt.Sprintf("%s %d 天 %s", broadcastPrefix(broadcast), g.quantity, g.itemName))
		return nil
	}
	if err := chr.AddItem(g.itemID, g.quantity, nil, time.Time{}); err != nil {
		return err
	}
	chr.Message(fmt.Sprintf("%s %d 个 %s", broadcastPrefix(broadcast), g.quantity, g.itemName))
	return nil
}

// equipGrant 自定义装备发放
type equipGrant struct {
	itemID   int
	itemName string
	stats    game.EquipStats
}

func (g *equipGrant) name() string        { return "equip" }
func (g *equipGrant) broadcastable() bool { return true }

func (g *equipGrant) describe() string {
	st := g.stats
	return fmt.Sprintf("自定义装备 [%d] %s 力量：%d 敏捷：%d 智力：%d 运气：%d HP：%d MP：%d 物攻：%d 魔攻：%d 物防：%d 魔防：%d 命中：%d 回避：%d 手技：%d 移速：%d 跳跃：%d 升级次数：%d 有效期：%d 分钟",
		g.itemID, g.itemName,
		st.Str, st.Dex, st.Int, st.Luk, st.HP, st.MP,
		st.PAtk, st.MAtk, st.PDef, st.MDef,
		st.Acc, st.Avoid, st.Hands, st.Speed, st.Jump,
		st.UpgradeSlot, st.Expire)
}

func (g *equipGrant) apply(ctx context.Context, svc *GiveService, chr game.Player, broadcast bool) error {
	if err := chr.GainEquip(g.itemID, g.stats); err != nil {
		return err
	}
	if broadcast {
		chr.Message(fmt.Sprintf("管理员给全服发放了自定义装备 [%d] %s", g.itemID, g.itemName))
	} else {
		chr.Message(fmt.Sprintf("管理员给玩家 [%d] %s 发放了自定义装备 [%d] %s",
			chr.ID(), chr.Name(), g.itemID, g.itemName))
	}
	return nil
}

// rateGrant 角色倍率调整，仅支持单发
type rateGrant struct {
	rateType RateType
	rate     float64
}

func (g *rateGrant) name() string        { return "rate" }
func (g *rateGrant) broadcastable() bool { return false }

func (g *rateGrant) describe() string {
	return fmt.Sprintf("%s 调整为：%s", g.rateType, formatRate(g.rate))
}

func (g *rateGrant) apply(ctx context.Context, svc *GiveService, chr game.Player, broadcast bool) error {
	if svc.extendValueRepo == nil {
		return xerrors.FromCode(xerrors.CodeDatabaseError)
	}
	record := entity.NewCharacterRate(chr.ID(), string(g.rateType), g.rate)
	if err := svc.extendValueRepo.Upsert(ctx, record); err != nil {
		return err
	}
	chr.Message(fmt.Sprintf("管理员将您的 %s 调整为：%s", g.rateType, formatRate(g.rate)))
	return nil
}

// gmGrant GM 等级调整，仅支持单发。
// 隐身切换需要足够的 GM 等级，降级前必须先取消隐身，
// 升级后才能进入隐身，顺序不能颠倒。
type gmGrant struct {
	level int
}

func (g *gmGrant) name() string        { return "gm" }
func (g *gmGrant) broadcastable() bool { return false }
func (g *gmGrant) describe() string    { return fmt.Sprintf("GM等级 调整为：%d", g.level) }

func (g *gmGrant) apply(ctx context.Context, svc *GiveService, chr game.Player, broadcast bool) error {
	if g.level < game.MinGMLevelToHide {
		if err := chr.Hide(false); err != nil {
			return err
		}
		if err := chr.SetGMLevel(g.level); err != nil {
			return err
		}
	} else {
		if err := chr.SetGMLevel(g.level); err != nil {
			return err
		}
		if err := chr.Hide(true); err != nil {
			return err
		}
	}
	chr.Message(fmt.Sprintf("管理员将您的 GM等级 调整为：%d", g.level))
	return nil
}

// fameGrant 人气调整，仅支持单发
type fameGrant struct {
	fame int
}

func (g *fameGrant) name() string        { return "fame" }
func (g *fameGrant) broadcastable() bool { return false }
func (g *fameGrant) describe() string    { return fmt.Sprintf("人气 调整为：%d", g.fame) }

func (g *fameGrant) apply(ctx context.Context, svc *GiveService, chr game.Player, broadcast bool) error {
	if err := chr.SetFame(g.fame); err != nil {
		return err
	}
	chr.UpdateSingleStat(game.StatFame, g.fame)
	chr.Message(fmt.Sprintf("管理员将您的 人气 调整为：%d", g.fame))
	return nil
}

package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordSession 记录推送到会话的消息与属性变更
type recordSession struct {
	sent    []string
	stats   map[Stat]int
	sendErr error
}

func newRecordSession() *recordSession {
	return &recordSession{stats: make(map[Stat]int)}
}

func (s *recordSession) Send(text string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, text)
	return nil
}

func (s *recordSession) UpdateStat(stat Stat, value int) error {
	s.stats[stat] = value
	return nil
}

func TestCharacterGainResources(t *testing.T) {
	chr := NewCharacter(100, "月下城主", 0, newRecordSession())

	require.NoError(t, chr.GainMesos(1000))
	require.NoError(t, chr.GainMesos(500))
	assert.Equal(t, int64(1500), chr.Mesos())

	require.NoError(t, chr.GainExp(99999))
	assert.Equal(t, int64(99999), chr.Exp())

	require.NoError(t, chr.GainCash(NxCredit, 300))
	require.NoError(t, chr.GainCash(MaplePoint, 200))
	assert.Equal(t, 300, chr.CashShop().Balance(NxCredit))
	assert.Equal(t, 200, chr.CashShop().Balance(MaplePoint))
	assert.Equal(t, 0, chr.CashShop().Balance(NxPrepaid))
}

func TestCharacterNegativeAmountsAreDeltas(t *testing.T) {
	chr := NewCharacter(100, "月下城主", 0, nil)

	require.NoError(t, chr.GainMesos(1000))
	require.NoError(t, chr.GainMesos(-300))
	assert.Equal(t, int64(700), chr.Mesos())
}

func TestCharacterHideRequiresGMLevel(t *testing.T) {
	chr := NewCharacter(100, "月下城主", 0, nil)

	// 普通玩家不能切换隐身
	require.Error(t, chr.Hide(true))
	assert.False(t, chr.Hidden())

	// 隐身状态不变时不检查等级
	require.NoError(t, chr.Hide(false))

	require.NoError(t, chr.SetGMLevel(MinGMLevelToHide))
	require.NoError(t, chr.Hide(true))
	assert.True(t, chr.Hidden())

	// 隐身中的角色降级前必须先取消隐身
	require.NoError(t, chr.Hide(false))
	require.NoError(t, chr.SetGMLevel(1))
	assert.False(t, chr.Hidden())
	assert.Equal(t, 1, chr.GMLevel())
}

func TestCharacterFame(t *testing.T) {
	session := newRecordSession()
	chr := NewCharacter(100, "月下城主", 0, session)

	require.NoError(t, chr.SetFame(777))
	assert.Equal(t, 777, chr.Fame())

	chr.UpdateSingleStat(StatFame, 777)
	assert.Equal(t, 777, session.stats[StatFame])
}

func TestCharacterMessage(t *testing.T) {
	session := newRecordSession()
	chr := NewCharacter(100, "月下城主", 0, session)

	chr.Message("管理员给您发放了 100 金币")
	require.Len(t, session.sent, 1)
	assert.Equal(t, "管理员给您发放了 100 金币", session.sent[0])
}

func TestCharacterMessageWithoutSession(t *testing.T) {
	chr := NewCharacter(100, "月下城主", 0, nil)

	// 无会话时静默丢弃，不 panic
	chr.Message("测试")
	chr.UpdateSingleStat(StatFame, 1)
}

func TestCharacterAddItemAndEquip(t *testing.T) {
	chr := NewCharacter(100, "月下城主", 0, nil)

	require.NoError(t, chr.AddItem(2000000, 25, nil, time.Time{}))
	assert.Equal(t, 25, chr.Inventory().CountOf(2000000))

	require.NoError(t, chr.GainEquip(1302000, EquipStats{Str: 10, PAtk: 120}))
	equips := chr.Inventory().Equips()
	require.Len(t, equips, 1)
	assert.Equal(t, 1302000, equips[0].ItemID)
	assert.Equal(t, 10, equips[0].Stats.Str)
	assert.True(t, equips[0].Expiration.IsZero())
}

func TestCharacterEquipExpire(t *testing.T) {
	chr := NewCharacter(100, "月下城主", 0, nil)

	require.NoError(t, chr.GainEquip(1302000, EquipStats{Expire: 60}))
	equips := chr.Inventory().Equips()
	require.Len(t, equips, 1)
	assert.False(t, equips[0].Expiration.IsZero())
}

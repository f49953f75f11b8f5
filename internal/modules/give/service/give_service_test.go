package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gms-admin/internal/game"
	"gms-admin/internal/modules/give/dto"
	"gms-admin/internal/pkg/xerrors"
	"gms-admin/internal/repository/entity"
)

// fakePlayer 记录每次状态变更调用，支持按方法注入失败
type fakePlayer struct {
	id      int
	name    string
	worldID int

	calls    []string
	messages []string
	failOn   map[string]error

	lastPet        *game.Pet
	lastExpiration time.Time
	lastStats      game.EquipStats
}

func newFakePlayer(id int, name string, worldID int) *fakePlayer {
	return &fakePlayer{id: id, name: name, worldID: worldID, failOn: map[string]error{}}
}

func (p *fakePlayer) record(call string) error {
	p.calls = append(p.calls, call)
	if err, ok := p.failOn[call]; ok {
		return err
	}
	return nil
}

func (p *fakePlayer) ID() int      { return p.id }
func (p *fakePlayer) Name() string { return p.name }
func (p *fakePlayer) WorldID() int { return p.worldID }

func (p *fakePlayer) GainCash(cashType game.CashType, amount int) error {
	return p.record(fmt.Sprintf("GainCash(%d,%d)", cashType, amount))
}

func (p *fakePlayer) GainMesos(amount int) error {
	return p.record(fmt.Sprintf("GainMesos(%d)", amount))
}

func (p *fakePlayer) GainExp(amount int) error {
	return p.record(fmt.Sprintf("GainExp(%d)", amount))
}

func (p *fakePlayer) AddItem(itemID, quantity int, pet *game.Pet, expiration time.Time) error {
	p.lastPet = pet
	p.lastExpiration = expiration
	return p.record(fmt.Sprintf("AddItem(%d,%d)", itemID, quantity))
}

func (p *fakePlayer) GainEquip(itemID int, stats game.EquipStats) error {
	p.lastStats = stats
	return p.record(fmt.Sprintf("GainEquip(%d)", itemID))
}

func (p *fakePlayer) SetGMLevel(level int) error {
	return p.record(fmt.Sprintf("SetGMLevel(%d)", level))
}

func (p *fakePlayer) Hide(hidden bool) error {
	return p.record(fmt.Sprintf("Hide(%t)", hidden))
}

func (p *fakePlayer) SetFame(fame int) error {
	return p.record(fmt.Sprintf("SetFame(%d)", fame))
}

func (p *fakePlayer) UpdateSingleStat(stat game.Stat, value int) {
	p.calls = append(p.calls, fmt.Sprintf("UpdateSingleStat(%s,%d)", stat, value))
}

func (p *fakePlayer) Message(text string) {
	p.messages = append(p.messages, text)
}

// fakeRegistry 固定成员的在线角色目录
type fakeRegistry struct {
	players []*fakePlayer
}

func (r *fakeRegistry) FindCharacter(worldID, characterID int) (game.Player, bool) {
	for _, p := range r.players {
		if p.worldID == worldID && p.id == characterID {
			return p, true
		}
	}
	return nil, false
}

func (r *fakeRegistry) AllOnlineCharacters() []game.Player {
	out := make([]game.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	return out
}

// fakeExtendValueRepo 内存扩展属性仓储
type fakeExtendValueRepo struct {
	upserts   []*entity.ExtendValueDO
	upsertErr error
}

func (f *fakeExtendValueRepo) Upsert(_ context.Context, value *entity.ExtendValueDO) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, value)
	return nil
}

func (f *fakeExtendValueRepo) GetByKey(_ context.Context, extendID, extendName string) (*entity.ExtendValueDO, error) {
	for _, v := range f.upserts {
		if v.ExtendID == extendID && v.ExtendName == extendName {
			return v, nil
		}
	}
	return nil, errors.New("不存在")
}

func (f *fakeExtendValueRepo) ListByExtendID(_ context.Context, extendID string) ([]*entity.ExtendValueDO, error) {
	var out []*entity.ExtendValueDO
	for _, v := range f.upserts {
		if v.ExtendID == extendID {
			out = append(out, v)
		}
	}
	return out, nil
}

func newTestCatalog() *game.StaticCatalog {
	catalog := game.NewStaticCatalog()
	catalog.RegisterItem(2000000, "红色药水")
	catalog.RegisterItem(5000000, "小白猫") // 宠物
	catalog.RegisterEquip(&game.EquipTemplate{ItemID: 1302000, Name: "单手剑", Slot: "weapon", ReqLevel: 10})
	return catalog
}

func newTestService(registry game.Registry, repo *fakeExtendValueRepo) *GiveService {
	var svc *GiveService
	if repo == nil {
		svc = NewGiveService(registry, newTestCatalog(), nil)
	} else {
		svc = NewGiveService(registry, newTestCatalog(), repo)
	}
	return svc
}

func intPtr(v int) *int { return &v }

func appErrCode(t *testing.T, err error) xerrors.ErrorCode {
	t.Helper()
	var appErr *xerrors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestGiveSingleTargetValidation(t *testing.T) {
	registry := &fakeRegistry{players: []*fakePlayer{newFakePlayer(100, "月下城主", 0)}}
	svc := newTestService(registry, nil)

	tests := []struct {
		name     string
		req      *dto.GiveResourceRequest
		wantCode xerrors.ErrorCode
	}{
		{
			name:     "缺少大区",
			req:      &dto.GiveResourceRequest{PlayerID: 100, Type: dto.GiveTypeMesos, Quantity: 10},
			wantCode: xerrors.CodeWorldNotFound,
		},
		{
			name:     "大区为负",
			req:      &dto.GiveResourceRequest{WorldID: intPtr(-1), PlayerID: 100, Type: dto.GiveTypeMesos, Quantity: 10},
			wantCode: xerrors.CodeWorldNotFound,
		},
		{
			name:     "玩家为负",
			req:      &dto.GiveResourceRequest{WorldID: intPtr(0), PlayerID: -5, Type: dto.GiveTypeMesos, Quantity: 10},
			wantCode: xerrors.CodeWorldNotFound,
		},
		{
			name:     "玩家不在线",
			req:      &dto.GiveResourceRequest{WorldID: intPtr(0), PlayerID: 999, Type: dto.GiveTypeMesos, Quantity: 10},
			wantCode: xerrors.CodeTargetOffline,
		},
		{
			name:     "大区不存在",
			req:      &dto.GiveResourceRequest{WorldID: intPtr(7), PlayerID: 100, Type: dto.GiveTypeMesos, Quantity: 10},
			wantCode: xerrors.CodeTargetOffline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Give(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, tt.wantCode, appErrCode(t, err))
		})
	}
}

func TestGiveMesosToSinglePlayer(t *testing.T) {
	player := newFakePlayer(100, "月下城主", 0)
	registry := &fakeRegistry{players: []*fakePlayer{player}}
	svc := newTestService(registry, nil)

	resp, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		WorldID: intPtr(0), PlayerID: 100, Type: dto.GiveTypeMesos, Quantity: 50000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Granted)
	assert.Equal(t, "single", resp.Scope)
	assert.Equal(t, []string{"GainMesos(50000)"}, player.calls)
	require.Len(t, player.messages, 1)
	assert.Equal(t, "管理员给您发放了 50000 金币", player.messages[0])
}

func TestGiveCashTypes(t *testing.T) {
	tests := []struct {
		giveType int
		wantCall string
	}{
		{dto.GiveTypeNxCredit, fmt.Sprintf("GainCash(%d,300)", game.NxCredit)},
		{dto.GiveTypeNxPrepaid, fmt.Sprintf("GainCash(%d,300)", game.NxPrepaid)},
		{dto.GiveTypeMaplePoint, fmt.Sprintf("GainCash(%d,300)", game.MaplePoint)},
	}

	for _, tt := range tests {
		player := newFakePlayer(100, "月下城主", 0)
		registry := &fakeRegistry{players: []*fakePlayer{player}}
		svc := newTestService(registry, nil)

		_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
			WorldID: intPtr(0), PlayerID: 100, Type: tt.giveType, Quantity: 300,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{tt.wantCall}, player.calls)
	}
}

func TestGiveUnknownItemHasNoSideEffects(t *testing.T) {
	player := newFakePlayer(100, "月下城主", 0)
	registry := &fakeRegistry{players: []*fakePlayer{player}}
	svc := newTestService(registry, nil)

	resp, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		WorldID: intPtr(0), PlayerID: 100, Type: dto.GiveTypeItem, ID: 4999999, Quantity: 10,
	})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, xerrors.CodeItemNotFound, appErrCode(t, err))
	assert.Empty(t, player.calls)
	assert.Empty(t, player.messages)
}

func TestGiveRegularItem(t *testing.T) {
	player := newFakePlayer(100, "月下城主", 0)
	registry := &fakeRegistry{players: []*fakePlayer{player}}
	svc := newTestService(registry, nil)

	_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		WorldID: intPtr(0), PlayerID: 100, Type: dto.GiveTypeItem, ID: 2000000, Quantity: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"AddItem(2000000,25)"}, player.calls)
	assert.Nil(t, player.lastPet)
	require.Len(t, player.messages, 1)
	assert.Equal(t, "管理员给您发放了 25 个 红色药水", player.messages[0])
}

func TestGivePetItemExpiration(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		quantity int
		wantDays int
	}{
		{"数量为零按一天", 0, 1},
		{"数量为负按一天", -3, 1},
		{"七天", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := newFakePlayer(100, "月下城主", 0)
			registry := &fakeRegistry{players: []*fakePlayer{player}}
			svc := newTestService(registry, nil)
			svc.now = func() time.Time { return base }

			_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
				WorldID: intPtr(0), PlayerID: 100, Type: dto.GiveTypeItem, ID: 5000000, Quantity: tt.quantity,
			})
			require.NoError(t, err)

			// 宠物始终按一只入包，数量解释为天数
			assert.Equal(t, []string{"AddItem(5000000,1)"}, player.calls)
			require.NotNil(t, player.lastPet)
			assert.Equal(t, 5000000, player.lastPet.ItemID)
			assert.Equal(t, "小白猫", player.lastPet.Name)

			wantExpire := base.Add(time.Duration(tt.wantDays) * 24 * time.Hour)
			assert.True(t, player.lastExpiration.Equal(wantExpire))
			assert.True(t, player.lastPet.Expiration.Equal(wantExpire))
		})
	}
}

func TestGiveBroadcastSharesOnePet(t *testing.T) {
	players := []*fakePlayer{
		newFakePlayer(100, "甲", 0),
		newFakePlayer(101, "乙", 0),
		newFakePlayer(200, "丙", 1),
	}
	registry := &fakeRegistry{players: players}
	svc := newTestService(registry, nil)

	resp, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		PlayerID: 0, Type: dto.GiveTypeItem, ID: 5000000, Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Granted)

	// 一次请求只实例化一只宠物，所有目标拿到同一实例
	require.NotNil(t, players[0].lastPet)
	assert.Same(t, players[0].lastPet, players[1].lastPet)
	assert.Same(t, players[0].lastPet, players[2].lastPet)
}

func TestGiveEquip(t *testing.T) {
	player := newFakePlayer(100, "月下城主", 0)
	registry := &fakeRegistry{players: []*fakePlayer{player}}
	svc := newTestService(registry, nil)

	_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		WorldID: intPtr(0), PlayerID: 100, Type: dto.GiveTypeEquip, ID: 1302000,
		Str: 10, Dex: 5, PAtk: 120, UpgradeSlot: 7, Expire: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"GainEquip(1302000)"}, player.calls)
	assert.Equal(t, 10, player.lastStats.Str)
	assert.Equal(t, 5, player.lastStats.Dex)
	assert.Equal(t, 120, player.lastStats.PAtk)
	assert.Equal(t, 7, player.lastStats.UpgradeSlot)
	assert.Equal(t, 60, player.lastStats.Expire)
	// 单发时通知按玩家点名
	assert.Equal(t, []string{"管理员给玩家 [100] 月下城主 发放了自定义装备 [1302000] 单手剑"}, player.messages)
}

func TestGiveBroadcastEquipMessage(t *testing.T) {
	players := []*fakePlayer{
		newFakePlayer(100, "月下城主", 0),
		newFakePlayer(200, "夜行者", 1),
	}
	registry := &fakeRegistry{players: players}
	svc := newTestService(registry, nil)

	resp, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		PlayerID: 0, Type: dto.GiveTypeEquip, ID: 1302000, Str: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Granted)
	for _, p := range players {
		assert.Equal(t, []string{"管理员给全服发放了自定义装备 [1302000] 单手剑"}, p.messages)
	}
}

func TestGiveEquipWithoutTemplate(t *testing.T) {
	player := newFakePlayer(100, "月下城主", 0)
	registry := &fakeRegistry{players: []*fakePlayer{player}}
	svc := newTestService(registry, nil)

	// 2000000 有名称但没有装备模板，不能作为装备发放
	_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		WorldID: intPtr(0), PlayerID: 100, Type: dto.GiveTypeEquip, ID: 2000000,
	})
	require.Error(t, err)
	assert.Equal(t, xerrors.CodeEquipNotFound, appErrCode(t, err))
	assert.Empty(t, player.calls)
}

func TestGiveRateUpsert(t *testing.T) {
	player := newFakePlayer(42, "月下城主", 0)
	registry := &fakeRegistry{players: []*fakePlayer{player}}
	repo := &fakeExtendValueRepo{}
	svc := newTestService(registry, repo)

	_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		WorldID: intPtr(0), PlayerID: 42, Type: dto.GiveTypeExpRate, Rate: 2.5,
	})
	require.NoError(t, err)

	require.Len(t, repo.upserts, 1)
	record := repo.upserts[0]
	assert.Equal(t, "42", record.ExtendID)
	assert.Equal(t, entity.ExtendTypeCharacter, record.ExtendType)
	assert.Equal(t, "expRate", record.ExtendName)
	assert.Equal(t, "2.5", record.ExtendValue)

	require.Len(t, player.messages, 1)
	assert.Equal(t, "管理员将您的 expRate 调整为：2.5", player.messages[0])
}

func TestGiveRateTypes(t *testing.T) {
	tests := []struct {
		giveType int
		wantName string
	}{
		{dto.GiveTypeExpRate, "expRate"},
		{dto.GiveTypeMesoRate, "mesoRate"},
		{dto.GiveTypeDropRate, "dropRate"},
		{dto.GiveTypeBossRate, "bossRate"},
	}

	for _, tt := range tests {
		player := newFakePlayer(42, "月下城主", 0)
		registry := &fakeRegistry{players: []*fakePlayer{player}}
		repo := &fakeExtendValueRepo{}
		svc := newTestService(registry, repo)

		_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
			WorldID: intPtr(0), PlayerID: 42, Type: tt.giveType, Rate: 4,
		})
		require.NoError(t, err)
		require.Len(t, repo.upserts, 1)
		assert.Equal(t, tt.wantName, repo.upserts[0].ExtendName)
		assert.Equal(t, "4", repo.upserts[0].ExtendValue)
	}
}

func TestGiveRateRepoFailure(t *testing.T) {
	player := newFakePlayer(42, "月下城主", 0)
	registry := &fakeRegistry{players: []*fakePlayer{player}}
	repo := &fakeExtendValueRepo{upsertErr: errors.New("连接中断")}
	svc := newTestService(registry, repo)

	_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		WorldID: intPtr(0), PlayerID: 42, Type: dto.GiveTypeExpRate, Rate: 2,
	})
	require.Error(t, err)
	assert.Equal(t, xerrors.CodeMutationRejected, appErrCode(t, err))
	assert.Empty(t, player.messages)
}

func TestGiveGMLevelOrdering(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		wantCalls []string
	}{
		{
			name:  "低等级先取消隐身再调级",
			level: 2,
			wantCalls: []string{
				"Hide(false)",
				"SetGMLevel(2)",
			},
		},
		{
			name:  "高等级先调级再隐身",
			level: 3,
			wantCalls: []string{
				"SetGMLevel(3)",
				"Hide(true)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := newFakePlayer(100, "月下城主", 0)
			registry := &fakeRegistry{players: []*fakePlayer{player}}
			svc := newTestService(registry, nil)

			_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
				WorldID: intPtr(0), PlayerID: 100, Type: dto.GiveTypeGM, Quantity: tt.level,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCalls, player.calls)
		})
	}
}

func TestGiveFame(t *testing.T) {
	player := newFakePlayer(100, "月下城主", 0)
	registry := &fakeRegistry{players: []*fakePlayer{player}}
	svc := newTestService(registry, nil)

	_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		WorldID: intPtr(0), PlayerID: 100, Type: dto.GiveTypeFame, Quantity: 777,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"SetFame(777)", "UpdateSingleStat(fame,777)"}, player.calls)
	require.Len(t, player.messages, 1)
	assert.Equal(t, "管理员将您的 人气 调整为：777", player.messages[0])
}

func TestGiveBroadcastMesos(t *testing.T) {
	players := []*fakePlayer{
		newFakePlayer(100, "甲", 0),
		newFakePlayer(101, "乙", 0),
		newFakePlayer(200, "丙", 1),
	}
	registry := &fakeRegistry{players: players}
	svc := newTestService(registry, nil)

	resp, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		PlayerID: 0, Type: dto.GiveTypeMesos, Quantity: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Granted)
	assert.Equal(t, "broadcast", resp.Scope)
	for _, p := range players {
		assert.Equal(t, []string{"GainMesos(1000)"}, p.calls)
		require.Len(t, p.messages, 1)
		assert.Equal(t, "管理员给全服发放了 1000 金币", p.messages[0])
	}
}

func TestGiveBroadcastSkipsFailedTarget(t *testing.T) {
	ok1 := newFakePlayer(100, "甲", 0)
	bad := newFakePlayer(101, "乙", 0)
	bad.failOn["GainMesos(1000)"] = errors.New("会话已关闭")
	ok2 := newFakePlayer(200, "丙", 1)

	registry := &fakeRegistry{players: []*fakePlayer{ok1, bad, ok2}}
	svc := newTestService(registry, nil)

	resp, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		PlayerID: 0, Type: dto.GiveTypeMesos, Quantity: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Granted)

	// 失败的角色被跳过，其余角色不受影响
	assert.Len(t, ok1.messages, 1)
	assert.Empty(t, bad.messages)
	assert.Len(t, ok2.messages, 1)
}

func TestGiveBroadcastRejectsSingleOnlyTypes(t *testing.T) {
	players := []*fakePlayer{newFakePlayer(100, "甲", 0)}
	registry := &fakeRegistry{players: players}
	repo := &fakeExtendValueRepo{}
	svc := newTestService(registry, repo)

	tests := []struct {
		name string
		req  *dto.GiveResourceRequest
	}{
		{"倍率", &dto.GiveResourceRequest{PlayerID: 0, Type: dto.GiveTypeExpRate, Rate: 2}},
		{"GM等级", &dto.GiveResourceRequest{PlayerID: 0, Type: dto.GiveTypeGM, Quantity: 3}},
		{"人气", &dto.GiveResourceRequest{PlayerID: 0, Type: dto.GiveTypeFame, Quantity: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Give(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, xerrors.CodeGiveTypeInvalid, appErrCode(t, err))
			assert.Empty(t, players[0].calls)
		})
	}
}

func TestGiveBroadcastUnknownItemFailsFast(t *testing.T) {
	players := []*fakePlayer{newFakePlayer(100, "甲", 0), newFakePlayer(101, "乙", 0)}
	registry := &fakeRegistry{players: players}
	svc := newTestService(registry, nil)

	_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		PlayerID: 0, Type: dto.GiveTypeItem, ID: 4999999, Quantity: 1,
	})
	require.Error(t, err)
	assert.Equal(t, xerrors.CodeItemNotFound, appErrCode(t, err))
	for _, p := range players {
		assert.Empty(t, p.calls)
	}
}

func TestGiveRateWithoutDatabase(t *testing.T) {
	player := newFakePlayer(42, "月下城主", 0)
	registry := &fakeRegistry{players: []*fakePlayer{player}}
	svc := newTestService(registry, nil)

	_, err := svc.Give(context.Background(), &dto.GiveResourceRequest{
		WorldID: intPtr(0), PlayerID: 42, Type: dto.GiveTypeExpRate, Rate: 2,
	})
	require.Error(t, err)
	assert.Equal(t, xerrors.CodeDatabaseError, appErrCode(t, err))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "2", formatRate(2))
	assert.Equal(t, "2.5", formatRate(2.5))
	assert.Equal(t, "0.75", formatRate(0.75))
}

package service

import (
	"context"
	"strconv"
	"time"

	"gms-admin/internal/game"
	"gms-admin/internal/modules/give/dto"
	"gms-admin/internal/pkg/log"
	"gms-admin/internal/pkg/metrics"
	"gms-admin/internal/pkg/xerrors"
	"gms-admin/internal/repository/interfaces"
)

// RateType 角色倍率类型，闭合集合
type RateType string

const (
	RateExp  RateType = "expRate"
	RateMeso RateType = "mesoRate"
	RateDrop RateType = "dropRate"
	RateBoss RateType = "bossRate"
)

// GiveService 后台资源发放调度器。
// 解析发放范围（单个角色或全服），做类型相关的前置校验，
// 对每个目标执行状态变更，并负责会话通知与审计日志。
type GiveService struct {
	registry        game.Registry
	catalog         game.ItemProvider
	extendValueRepo interfaces.ExtendValueRepository

	logger  log.Logger
	metrics *metrics.GiveMetrics
	now     func() time.Time
}

// NewGiveService 创建发放调度器
func NewGiveService(registry game.Registry, catalog game.ItemProvider, extendValueRepo interfaces.ExtendValueRepository) *GiveService {
	return &GiveService{
		registry:        registry,
		catalog:         catalog,
		extendValueRepo: extendValueRepo,
		logger:          log.GetLogger().With("service", "give"),
		metrics:         metrics.DefaultGiveMetrics,
		now:             time.Now,
	}
}

// Give 执行一次发放请求
func (s *GiveService) Give(ctx context.Context, req *dto.GiveResourceRequest) (*dto.GiveResourceResponse, error) {
	if req.PlayerID == 0 {
		return s.giveAllOnline(ctx, req)
	}
	return s.giveOne(ctx, req)
}

// giveOne 对单个在线角色发放
func (s *GiveService) giveOne(ctx context.Context, req *dto.GiveResourceRequest) (*dto.GiveResourceResponse, error) {
	if req.WorldID == nil || *req.WorldID < 0 || req.PlayerID < 1 {
		return nil, xerrors.FromCode(xerrors.CodeWorldNotFound)
	}
	chr, ok := s.registry.FindCharacter(*req.WorldID, req.PlayerID)
	if !ok {
		return nil, xerrors.NewTargetOfflineError(*req.WorldID, req.PlayerID)
	}

	g, err := s.buildGrant(req)
	if err != nil {
		s.metrics.RecordGive(giveTypeLabel(req.Type), "single", false, "")
		return nil, err
	}

	if err := g.apply(ctx, s, chr, false); err != nil {
		s.metrics.RecordGive(g.name(), "single", false, "")
		return nil, xerrors.Wrap(err, xerrors.CodeMutationRejected, "角色状态变更被拒绝")
	}

	s.logger.InfoContext(ctx, "管理员在后台给玩家发放资源",
		log.String("give_type", g.name()),
		log.Int("world_id", *req.WorldID),
		log.Int("character_id", chr.ID()),
		log.String("character_name", chr.Name()),
		log.String("detail", g.describe()),
	)
	s.metrics.RecordGive(g.name(), "single", true, "")
	s.metrics.RecordGiveTargets(g.name(), 1, "")

	return &dto.GiveResourceResponse{Granted: 1, Scope: "single"}, nil
}

// giveAllOnline 对所有大区的全部在线角色发放。
// 前置校验（物品/装备是否存在）只做一次；
// 迭代过程中单个角色的失败只记录并跳过，不中断其余角色。
func (s *GiveService) giveAllOnline(ctx context.Context, req *dto.GiveResourceRequest) (*dto.GiveResourceResponse, error) {
	g, err := s.buildGrant(req)
	if err != nil {
		s.metrics.RecordGive(giveTypeLabel(req.Type), "broadcast", false, "")
		return nil, err
	}
	if !g.broadcastable() {
		s.metrics.RecordGive(g.name(), "broadcast", false, "")
		return nil, xerrors.FromCode(xerrors.CodeGiveTypeInvalid).
			WithMetadata("give_type", g.name()).
			WithMetadata("reason", "仅支持对单个玩家发放")
	}

	targets := s.registry.AllOnlineCharacters()
	granted := 0
	for _, chr := range targets {
		if err := g.apply(ctx, s, chr, true); err != nil {
			s.logger.WarnContext(ctx, "全服发放跳过角色",
				log.String("give_type", g.name()),
				log.Int("character_id", chr.ID()),
				log.Any("error", err),
			)
			s.metrics.RecordBroadcastSkip(g.name(), "mutation_failed", "")
			continue
		}
		granted++
	}

	// 全服发放只落一条汇总审计，避免日志洪泛
	s.logger.InfoContext(ctx, "管理员在后台给全服发放资源",
		log.String("give_type", g.name()),
		log.String("detail", g.describe()),
		log.Int("granted", granted),
		log.Int("online", len(targets)),
	)
	s.metrics.RecordGive(g.name(), "broadcast", true, "")
	s.metrics.RecordGiveTargets(g.name(), granted, "")

	return &dto.GiveResourceResponse{Granted: granted, Scope: "broadcast"}, nil
}

// buildGrant 把扁平请求转换为带类型的发放动作，并完成类型相关的前置校验
func (s *GiveService) buildGrant(req *dto.GiveResourceRequest) (resourceGrant, error) {
	switch req.Type {
	case dto.GiveTypeNxCredit, dto.GiveTypeNxPrepaid, dto.GiveTypeMaplePoint:
		cashType := game.NxCredit
		switch req.Type {
		case dto.GiveTypeNxPrepaid:
			cashType = game.NxPrepaid
		case dto.GiveTypeMaplePoint:
			cashType = game.MaplePoint
		}
		return &cashGrant{cashType: cashType, quantity: req.Quantity}, nil

	case dto.GiveTypeMesos:
		return &mesoGrant{quantity: req.Quantity}, nil

	case dto.GiveTypeExp:
		return &expGrant{quantity: req.Quantity}, nil

	case dto.GiveTypeItem:
		name, ok := s.catalog.ItemName(req.ID)
		if !ok {
			return nil, xerrors.NewItemNotFoundError(req.ID)
		}
		g := &itemGrant{itemID: req.ID, itemName: name, quantity: req.Quantity}
		if game.IsPetItem(req.ID) {
			// 宠物按天数发放，至少一天；整个请求只实例化一只宠物
			days := req.Quantity
			if days < 1 {
				days = 1
			}
			g.expiration = s.now().Add(time.Duration(days) * 24 * time.Hour)
			g.pet = game.NewPet(req.ID, name, g.expiration)
		}
		return g, nil

	case dto.GiveTypeEquip:
		name, ok := s.catalog.ItemName(req.ID)
		if !ok {
			return nil, xerrors.NewEquipNotFoundError(req.ID)
		}
		if _, ok := s.catalog.EquipTemplate(req.ID); !ok {
			return nil, xerrors.NewEquipNotFoundError(req.ID)
		}
		return &equipGrant{
			itemID:   req.ID,
			itemName: name,
			stats: game.EquipStats{
				Str:         req.Str,
				Dex:         req.Dex,
				Int:         req.Int,
				Luk:         req.Luk,
				HP:          req.HP,
				MP:          req.MP,
				PAtk:        req.PAtk,
				MAtk:        req.MAtk,
				PDef:        req.PDef,
				MDef:        req.MDef,
				Acc:         req.Acc,
				Avoid:       req.Avoid,
				Hands:       req.Hands,
				Speed:       req.Speed,
				Jump:        req.Jump,
				UpgradeSlot: req.UpgradeSlot,
				Expire:      req.Expire,
			},
		}, nil

	case dto.GiveTypeExpRate, dto.GiveTypeMesoRate, dto.GiveTypeDropRate, dto.GiveTypeBossRate:
		rateType := RateExp
		switch req.Type {
		case dto.GiveTypeMesoRate:
			rateType = RateMeso
		case dto.GiveTypeDropRate:
			rateType = RateDrop
		case dto.GiveTypeBossRate:
			rateType = RateBoss
		}
		return &rateGrant{rateType: rateType, rate: req.Rate}, nil

	case dto.GiveTypeGM:
		return &gmGrant{level: req.Quantity}, nil

	case dto.GiveTypeFame:
		return &fameGrant{fame: req.Quantity}, nil

	default:
		return nil, xerrors.FromCode(xerrors.CodeGiveTypeInvalid).
			WithMetadata("type", req.Type)
	}
}

// giveTypeLabel 请求尚未解析成功时用于指标标签的类型名
func giveTypeLabel(giveType int) string {
	switch giveType {
	case dto.GiveTypeNxCredit, dto.GiveTypeNxPrepaid, dto.GiveTypeMaplePoint:
		return "cash"
	case dto.GiveTypeMesos:
		return "mesos"
	case dto.GiveTypeExp:
		return "exp"
	case dto.GiveTypeItem:
		return "item"
	case dto.GiveTypeEquip:
		return "equip"
	case dto.GiveTypeExpRate, dto.GiveTypeMesoRate, dto.GiveTypeDropRate, dto.GiveTypeBossRate:
		return "rate"
	case dto.GiveTypeGM:
		return "gm"
	case dto.GiveTypeFame:
		return "fame"
	default:
		return "unknown"
	}
}

// formatRate 倍率的显示格式，去掉多余的小数位
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// broadcastPrefix 按范围选择通知措辞
func broadcastPrefix(broadcast bool) string {
	if broadcast {
		return "管理员给全服发放了"
	}
	return "管理员给您发放了"
}

package dto

// 发放类型取值，与后台表单一一对应
const (
	GiveTypeNxCredit   = 0  // 点券
	GiveTypeNxPrepaid  = 1  // 信用点券
	GiveTypeMaplePoint = 2  // 抵用券
	GiveTypeMesos      = 3  // 金币
	GiveTypeExp        = 4  // 经验
	GiveTypeItem       = 5  // 物品
	GiveTypeEquip      = 6  // 自定义装备
	GiveTypeExpRate    = 7  // 经验倍率
	GiveTypeMesoRate   = 8  // 金币倍率
	GiveTypeDropRate   = 9  // 掉落倍率
	GiveTypeBossRate   = 10 // BOSS 倍率
	GiveTypeGM         = 11 // GM 等级
	GiveTypeFame       = 12 // 人气
)

// GiveResourceRequest 后台资源发放请求
// player_id 为 0 表示对所有大区的全部在线角色发放
type GiveResourceRequest struct {
	WorldID  *int `json:"world_id" validate:"omitempty,min=0"` // 单发时必填
	PlayerID int  `json:"player_id" validate:"min=0"`
	Type     int  `json:"type" validate:"min=0,max=12"`
	Quantity int  `json:"quantity"` // 数量 / 天数 / GM 等级 / 人气值，按类型解释
	ID       int  `json:"id" validate:"omitempty,item_id"` // 物品或装备 ID（类型 5、6）

	Rate float64 `json:"rate" validate:"omitempty,rate_value"` // 倍率（类型 7-10）

	// 自定义装备属性（类型 6）
	Str         int `json:"str"`
	Dex         int `json:"dex"`
	Int         int `json:"int"`
	Luk         int `json:"luk"`
	HP          int `json:"hp"`
	MP          int `json:"mp"`
	PAtk        int `json:"p_atk"`
	MAtk        int `json:"m_atk"`
	PDef        int `json:"p_def"`
	MDef        int `json:"m_def"`
	Acc         int `json:"acc"`
	Avoid       int `json:"avoid"`
	Hands       int `json:"hands"`
	Speed       int `json:"speed"`
	Jump        int `json:"jump"`
	UpgradeSlot int `json:"upgrade_slot"`
	Expire      int `json:"expire"` // 有效期，分钟
}

// GiveResourceResponse 发放结果
type GiveResourceResponse struct {
	Granted int    `json:"granted"` // 实际发放到的角色数
	Scope   string `json:"scope"`   // single / broadcast
}

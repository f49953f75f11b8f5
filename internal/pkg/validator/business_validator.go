package validator

import (
	"github.com/go-playground/validator/v10"
)

// 物品 ID 的合法区间。客户端档案中物品与装备编号均为七位数，
// 首位标识大类（1 装备，2 消耗品，5 现金道具等）。
const (
	minItemID = 1000000
	maxItemID = 5999999
)

// 倍率上限，防止后台误填出夸张数值
const maxRateValue = 1000

// registerGiveRules 注册资源发放相关的自定义验证标签
func registerGiveRules(v *validator.Validate) {
	v.RegisterValidation("item_id", validateItemID)
	v.RegisterValidation("rate_value", validateRateValue)
}

// validateItemID 验证物品或装备 ID 是否落在合法编号区间
func validateItemID(fl validator.FieldLevel) bool {
	id := fl.Field().Int()
	return id >= minItemID && id <= maxItemID
}

// validateRateValue 验证倍率取值，必须为正且不超过上限
func validateRateValue(fl validator.FieldLevel) bool {
	rate := fl.Field().Float()
	return rate > 0 && rate <= maxRateValue
}

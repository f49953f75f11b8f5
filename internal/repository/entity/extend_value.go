// File: internal/repository/entity/extend_value.go
package entity

import (
	"strconv"

	"github.com/aarondl/null/v8"
)

// 扩展属性归属类型
const (
	ExtendTypeCharacter = "character"
)

// ExtendValueDO 角色扩展属性记录（倍率等），按 (extend_id, extend_name) 唯一。
// 由后台写入，游戏内系统读取。
type ExtendValueDO struct {
	ID          string      `boil:"id" json:"id"`
	ExtendID    string      `boil:"extend_id" json:"extend_id"`       // 归属对象 ID（角色 ID）
	ExtendType  string      `boil:"extend_type" json:"extend_type"`   // 归属对象类型
	ExtendName  string      `boil:"extend_name" json:"extend_name"`   // 属性名（expRate 等）
	ExtendValue string      `boil:"extend_value" json:"extend_value"` // 属性值，字符串存储
	CreatedAt   null.Time   `boil:"created_at" json:"created_at,omitempty"`
	UpdatedAt   null.Time   `boil:"updated_at" json:"updated_at,omitempty"`
}

// NewCharacterRate 构造一条角色倍率记录
func NewCharacterRate(characterID int, rateType string, rate float64) *ExtendValueDO {
	return &ExtendValueDO{
		ExtendID:    strconv.Itoa(characterID),
		ExtendType:  ExtendTypeCharacter,
		ExtendName:  rateType,
		ExtendValue: strconv.FormatFloat(rate, 'f', -1, 64),
	}
}

// RateValue 将属性值解析为浮点倍率
func (e *ExtendValueDO) RateValue() (float64, error) {
	return strconv.ParseFloat(e.ExtendValue, 64)
}

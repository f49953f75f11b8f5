package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type giveForm struct {
	ItemID int     `validate:"omitempty,item_id"`
	Rate   float64 `validate:"omitempty,rate_value"`
	Type   int     `validate:"min=0,max=12"`
}

func TestValidateGiveRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&giveForm{ItemID: 2000000, Rate: 2.5, Type: 5}))
	// 零值字段跳过校验
	assert.NoError(t, v.Validate(&giveForm{Type: 3}))

	assert.Error(t, v.Validate(&giveForm{ItemID: 999}))
	assert.Error(t, v.Validate(&giveForm{ItemID: 6000000}))
	assert.Error(t, v.Validate(&giveForm{Rate: -1}))
	assert.Error(t, v.Validate(&giveForm{Rate: 1001}))
	assert.Error(t, v.Validate(&giveForm{Type: 13}))
}

func TestTranslateValidationError(t *testing.T) {
	v := New()

	err := v.Validate(&giveForm{ItemID: 999})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不是合法的物品编号")

	err = v.Validate(&giveForm{Rate: 1001})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "必须为正数")

	assert.Equal(t, "", TranslateValidationError(nil))
}

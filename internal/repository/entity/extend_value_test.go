package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCharacterRate(t *testing.T) {
	record := NewCharacterRate(42, "expRate", 2.5)

	assert.Equal(t, "42", record.ExtendID)
	assert.Equal(t, ExtendTypeCharacter, record.ExtendType)
	assert.Equal(t, "expRate", record.ExtendName)
	assert.Equal(t, "2.5", record.ExtendValue)

	rate, err := record.RateValue()
	require.NoError(t, err)
	assert.Equal(t, 2.5, rate)
}

func TestRateValueFormatting(t *testing.T) {
	// 整数倍率不带小数位
	assert.Equal(t, "4", NewCharacterRate(1, "mesoRate", 4).ExtendValue)
	assert.Equal(t, "0.75", NewCharacterRate(1, "dropRate", 0.75).ExtendValue)
}

func TestRateValueInvalid(t *testing.T) {
	record := &ExtendValueDO{ExtendValue: "abc"}
	_, err := record.RateValue()
	require.Error(t, err)
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerFindCharacter(t *testing.T) {
	server := NewServer()
	server.AddWorld(0).PlayerStorage().Register(NewCharacter(100, "甲", 0, nil))
	server.AddWorld(1).PlayerStorage().Register(NewCharacter(200, "乙", 1, nil))

	chr, ok := server.FindCharacter(0, 100)
	require.True(t, ok)
	assert.Equal(t, "甲", chr.Name())

	// 角色 ID 正确但大区不匹配
	_, ok = server.FindCharacter(1, 100)
	assert.False(t, ok)

	_, ok = server.FindCharacter(9, 100)
	assert.False(t, ok)
}

func TestServerUnregister(t *testing.T) {
	server := NewServer()
	world := server.AddWorld(0)
	world.PlayerStorage().Register(NewCharacter(100, "甲", 0, nil))
	require.Equal(t, 1, server.OnlineCount())

	world.PlayerStorage().Unregister(100)
	_, ok := server.FindCharacter(0, 100)
	assert.False(t, ok)
	assert.Equal(t, 0, server.OnlineCount())
}

func TestServerAllOnlineCharactersOrderedByWorld(t *testing.T) {
	server := NewServer()
	server.AddWorld(2).PlayerStorage().Register(NewCharacter(300, "丙", 2, nil))
	server.AddWorld(0).PlayerStorage().Register(NewCharacter(100, "甲", 0, nil))
	server.AddWorld(1).PlayerStorage().Register(NewCharacter(200, "乙", 1, nil))

	all := server.AllOnlineCharacters()
	require.Len(t, all, 3)
	assert.Equal(t, 0, all[0].WorldID())
	assert.Equal(t, 1, all[1].WorldID())
	assert.Equal(t, 2, all[2].WorldID())
}

func TestServerAddWorldIdempotent(t *testing.T) {
	server := NewServer()
	a := server.AddWorld(0)
	a.PlayerStorage().Register(NewCharacter(100, "甲", 0, nil))

	// 重复注册同一大区返回已有实例
	b := server.AddWorld(0)
	assert.Equal(t, 1, b.PlayerStorage().Count())
}

func TestServerOnlineCount(t *testing.T) {
	server := NewServer()
	assert.Equal(t, 0, server.OnlineCount())

	server.AddWorld(0).PlayerStorage().Register(NewCharacter(100, "甲", 0, nil))
	server.AddWorld(0).PlayerStorage().Register(NewCharacter(101, "乙", 0, nil))
	server.AddWorld(1).PlayerStorage().Register(NewCharacter(200, "丙", 1, nil))
	assert.Equal(t, 3, server.OnlineCount())
}

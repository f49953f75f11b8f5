package presence

import (
	"encoding/json"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gms-admin/internal/game"
)

func deliver(t *testing.T, s *Subscriber, event SessionEvent) {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	s.handle(&nats.Msg{Subject: SubjectSessionPresence, Data: data})
}

func TestSubscriberOnlineOffline(t *testing.T) {
	server := game.NewServer()
	s := NewSubscriber(server)

	deliver(t, s, SessionEvent{Event: EventOnline, WorldID: 0, CharacterID: 100, Name: "月下城主"})

	chr, ok := server.FindCharacter(0, 100)
	require.True(t, ok)
	assert.Equal(t, "月下城主", chr.Name())
	assert.Equal(t, 1, server.OnlineCount())

	deliver(t, s, SessionEvent{Event: EventOffline, WorldID: 0, CharacterID: 100})

	_, ok = server.FindCharacter(0, 100)
	assert.False(t, ok)
	assert.Equal(t, 0, server.OnlineCount())
}

func TestSubscriberRestoresGMLevel(t *testing.T) {
	server := game.NewServer()
	s := NewSubscriber(server)

	deliver(t, s, SessionEvent{Event: EventOnline, WorldID: 1, CharacterID: 7, Name: "巡查员", GMLevel: 3})

	player, ok := server.FindCharacter(1, 7)
	require.True(t, ok)
	chr, ok := player.(*game.Character)
	require.True(t, ok)
	assert.Equal(t, 3, chr.GMLevel())
}

func TestSubscriberIgnoresMalformedEvents(t *testing.T) {
	server := game.NewServer()
	s := NewSubscriber(server)

	s.handle(&nats.Msg{Subject: SubjectSessionPresence, Data: []byte("{not json")})
	s.handle(&nats.Msg{Subject: SubjectSessionPresence, Data: []byte(`{"event":"restart"}`)})

	// 下线事件指向不存在的大区时不应崩溃
	deliver(t, s, SessionEvent{Event: EventOffline, WorldID: 9, CharacterID: 1})

	assert.Equal(t, 0, server.OnlineCount())
}

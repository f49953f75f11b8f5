// File: internal/game/presence/subscriber.go
package presence

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"gms-admin/internal/game"
	"gms-admin/internal/pkg/log"
)

// 游戏网关发布的会话事件主题
const SubjectSessionPresence = "session.presence"

// 会话事件类型
const (
	EventOnline  = "online"
	EventOffline = "offline"
)

// SessionEvent 游戏网关发布的角色上下线事件
type SessionEvent struct {
	Event       string `json:"event"`
	WorldID     int    `json:"world_id"`
	CharacterID int    `json:"character_id"`
	Name        string `json:"name"`
	GMLevel     int    `json:"gm_level"`
}

// Subscriber 订阅会话事件并维护在线角色目录
type Subscriber struct {
	server *game.Server
	sub    *nats.Subscription
}

// NewSubscriber 创建订阅器
func NewSubscriber(server *game.Server) *Subscriber {
	return &Subscriber{server: server}
}

// Start 开始订阅，事件乱序或重复到达时目录以最后一次为准
func (s *Subscriber) Start(conn *nats.Conn) error {
	sub, err := conn.Subscribe(SubjectSessionPresence, s.handle)
	if err != nil {
		return err
	}
	s.sub = sub
	log.Info("会话事件订阅已启动", log.String("subject", SubjectSessionPresence))
	return nil
}

// Stop 取消订阅
func (s *Subscriber) Stop() {
	if s.sub != nil {
		if err := s.sub.Unsubscribe(); err != nil {
			log.Warn("取消会话事件订阅失败", log.String("error", err.Error()))
		}
		s.sub = nil
	}
}

func (s *Subscriber) handle(msg *nats.Msg) {
	var event SessionEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		log.Warn("会话事件解析失败", log.String("error", err.Error()))
		return
	}

	switch event.Event {
	case EventOnline:
		world := s.server.AddWorld(event.WorldID)
		session := game.NewNatsSession(event.WorldID, event.CharacterID)
		chr := game.NewCharacter(event.CharacterID, event.Name, event.WorldID, session)
		if event.GMLevel > 0 {
			if err := chr.SetGMLevel(event.GMLevel); err != nil {
				log.Warn("恢复 GM 等级失败",
					log.Int("character_id", event.CharacterID),
					log.String("error", err.Error()),
				)
			}
		}
		world.PlayerStorage().Register(chr)
		log.Debug("角色上线",
			log.Int("world_id", event.WorldID),
			log.Int("character_id", event.CharacterID),
		)

	case EventOffline:
		if world, ok := s.server.World(event.WorldID); ok {
			world.PlayerStorage().Unregister(event.CharacterID)
		}
		log.Debug("角色下线",
			log.Int("world_id", event.WorldID),
			log.Int("character_id", event.CharacterID),
		)

	default:
		log.Warn("未知会话事件类型", log.String("event", event.Event))
	}
}

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
)

// SubjectStatUpdate 单项属性变更的发布主题
const SubjectStatUpdate = "session.stat"

// SessionSubject 返回角色会话消息的 NATS 主题
func SessionSubject(worldID, characterID int) string {
	return fmt.Sprintf("session.%d.%d.message", worldID, characterID)
}

var (
	ncMu sync.RWMutex
	nc   *nats.Conn
)

// SetNatsConn 设置全局 NATS 连接（由 main 提供）
func SetNatsConn(conn *nats.Conn) {
	ncMu.Lock()
	defer ncMu.Unlock()
	nc = conn
}

// SessionMessage 推送给在线角色会话的文本消息
type SessionMessage struct {
	WorldID     int    `json:"world_id"`
	CharacterID int    `json:"character_id"`
	Text        string `json:"text"`
}

// PublishSessionMessage 向指定角色的会话通道发布文本消息
// 会话可能刚刚关闭，发布失败不视为业务错误
func PublishSessionMessage(ctx context.Context, worldID, characterID int, text string) error {
	ncMu.RLock()
	conn := nc
	ncMu.RUnlock()
	if conn == nil {
		return nil // 没有连接时静默降级
	}
	data, err := json.Marshal(SessionMessage{
		WorldID:     worldID,
		CharacterID: characterID,
		Text:        text,
	})
	if err != nil {
		return fmt.Errorf("marshal session message failed: %w", err)
	}
	return conn.Publish(SessionSubject(worldID, characterID), data)
}

// PublishStatUpdate 发布单项属性变更（人气等），由游戏网关换算成客户端封包
func PublishStatUpdate(ctx context.Context, worldID, characterID int, stat string, value int) error {
	ncMu.RLock()
	conn := nc
	ncMu.RUnlock()
	if conn == nil {
		return nil
	}
	payload := map[string]any{
		"world_id":     worldID,
		"character_id": characterID,
		"stat":         stat,
		"value":        value,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal stat update failed: %w", err)
	}
	return conn.Publish(SubjectStatUpdate, data)
}

// File: internal/game/registry.go
package game

import (
	"sort"
	"sync"
)

// Registry 在线角色目录。发放调度器只读：点查或全量枚举。
// 成员随连接状态实时变化，枚举结果是调用时刻的快照。
type Registry interface {
	// FindCharacter 按大区和角色 ID 查找在线角色
	FindCharacter(worldID, characterID int) (Player, bool)

	// AllOnlineCharacters 枚举所有大区的全部在线角色（快照）
	AllOnlineCharacters() []Player
}

// PlayerStorage 单个大区的在线角色表
type PlayerStorage struct {
	mu         sync.RWMutex
	characters map[int]*Character
}

// NewPlayerStorage 创建空角色表
func NewPlayerStorage() *PlayerStorage {
	return &PlayerStorage{characters: make(map[int]*Character)}
}

// Register 角色上线
func (ps *PlayerStorage) Register(chr *Character) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.characters[chr.ID()] = chr
}

// Unregister 角色下线
func (ps *PlayerStorage) Unregister(characterID int) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	delete(ps.characters, characterID)
}

// GetCharacterByID 按 ID 查找在线角色
func (ps *PlayerStorage) GetCharacterByID(characterID int) (*Character, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	chr, ok := ps.characters[characterID]
	return chr, ok
}

// AllCharacters 返回当前在线角色的快照
func (ps *PlayerStorage) AllCharacters() []*Character {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	out := make([]*Character, 0, len(ps.characters))
	for _, chr := range ps.characters {
		out = append(out, chr)
	}
	return out
}

// Count 返回在线角色数
func (ps *PlayerStorage) Count() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return len(ps.characters)
}

// World 一个隔离的角色大区
type World struct {
	id      int
	storage *PlayerStorage
}

// NewWorld 创建大区
func NewWorld(id int) *World {
	return &World{id: id, storage: NewPlayerStorage()}
}

// ID 返回大区 ID
func (w *World) ID() int { return w.id }

// PlayerStorage 返回大区的在线角色表
func (w *World) PlayerStorage() *PlayerStorage { return w.storage }

// Server 所有大区的在线角色目录，实现 Registry。
// 作为依赖注入进发放调度器，测试中可用内存假目录替换。
type Server struct {
	mu     sync.RWMutex
	worlds map[int]*World
}

// NewServer 创建空目录
func NewServer() *Server {
	return &Server{worlds: make(map[int]*World)}
}

// AddWorld 注册一个大区
func (s *Server) AddWorld(id int) *World {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.worlds[id]; ok {
		return w
	}
	w := NewWorld(id)
	s.worlds[id] = w
	return w
}

// World 返回指定大区
func (s *Server) World(id int) (*World, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.worlds[id]
	return w, ok
}

// FindCharacter 按大区和角色 ID 查找在线角色
func (s *Server) FindCharacter(worldID, characterID int) (Player, bool) {
	w, ok := s.World(worldID)
	if !ok {
		return nil, false
	}
	chr, ok := w.PlayerStorage().GetCharacterByID(characterID)
	if !ok {
		return nil, false
	}
	return chr, true
}

// AllOnlineCharacters 枚举所有大区的全部在线角色
func (s *Server) AllOnlineCharacters() []Player {
	s.mu.RLock()
	ids := make([]int, 0, len(s.worlds))
	for id := range s.worlds {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Ints(ids)

	var out []Player
	for _, id := range ids {
		w, ok := s.World(id)
		if !ok {
			continue
		}
		for _, chr := range w.PlayerStorage().AllCharacters() {
			out = append(out, chr)
		}
	}
	return out
}

// OnlineCount 返回全服在线角色数
func (s *Server) OnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, w := range s.worlds {
		total += w.PlayerStorage().Count()
	}
	return total
}

// File: internal/game/cashshop.go
package game

import "sync"

// CashType 点券类型
type CashType int

const (
	NxCredit   CashType = 1 // 点券
	MaplePoint CashType = 2 // 抵用券
	NxPrepaid  CashType = 4 // 信用点券
)

// Name 返回点券类型的显示名称
func (t CashType) Name() string {
	switch t {
	case NxCredit:
		return "点券"
	case MaplePoint:
		return "抵用券"
	default:
		return "信用点券"
	}
}

// CashShop 角色的商城余额账本
type CashShop struct {
	mu       sync.Mutex
	balances map[CashType]int
}

// NewCashShop 创建空余额账本
func NewCashShop() *CashShop {
	return &CashShop{balances: make(map[CashType]int)}
}

// GainCash 原子地增加指定类型的余额
func (cs *CashShop) GainCash(cashType CashType, amount int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.balances[cashType] += amount
}

// Balance 返回指定类型的当前余额
func (cs *CashShop) Balance(cashType CashType) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.balances[cashType]
}

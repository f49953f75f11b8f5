package nats

import (
	"context"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// HealthChecker NATS 连接健康检查器，结果供 /health 路由汇报
type HealthChecker struct {
	conn      *nats.Conn
	isHealthy bool
	mutex     sync.RWMutex
	stopCh    chan struct{}
	interval  time.Duration
}

// NewHealthChecker 创建健康检查器
func NewHealthChecker(conn *nats.Conn, checkInterval time.Duration) *HealthChecker {
	if checkInterval <= 0 {
		checkInterval = 10 * time.Second
	}

	return &HealthChecker{
		conn:      conn,
		isHealthy: true,
		stopCh:    make(chan struct{}),
		interval:  checkInterval,
	}
}

// Start 启动健康检查，阻塞直到 ctx 取消或 Stop 被调用
func (hc *HealthChecker) Start(ctx context.Context) {
	ticker := time.NewTicker(hc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-hc.stopCh:
			return
		case <-ticker.C:
			hc.checkHealth()
		}
	}
}

// Stop 停止健康检查
func (hc *HealthChecker) Stop() {
	close(hc.stopCh)
}

// IsHealthy 返回最近一次检查的结果
func (hc *HealthChecker) IsHealthy() bool {
	hc.mutex.RLock()
	defer hc.mutex.RUnlock()
	return hc.isHealthy
}

func (hc *HealthChecker) checkHealth() {
	healthy := hc.conn.IsConnected() && !hc.conn.IsClosed()

	hc.mutex.Lock()
	hc.isHealthy = healthy
	hc.mutex.Unlock()
}

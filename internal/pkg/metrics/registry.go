package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registererMu sync.RWMutex
	registerer   prometheus.Registerer = prometheus.DefaultRegisterer
)

// SetRegisterer 替换全局 Registerer，传 nil 恢复默认值
func SetRegisterer(r prometheus.Registerer) {
	if r == nil {
		r = prometheus.DefaultRegisterer
	}
	registererMu.Lock()
	registerer = r
	registererMu.Unlock()
}

// GetRegisterer 返回当前的 Registerer
func GetRegisterer() prometheus.Registerer {
	registererMu.RLock()
	defer registererMu.RUnlock()
	return registerer
}

// WithRegisterer 在指定 Registerer 下执行 fn，完成后恢复原值。
// 测试中用独立 Registry 避免指标重复注册。
func WithRegisterer(r prometheus.Registerer, fn func()) {
	registererMu.Lock()
	previous := registerer
	registererMu.Unlock()

	SetRegisterer(r)
	defer SetRegisterer(previous)

	if fn != nil {
		fn()
	}
}

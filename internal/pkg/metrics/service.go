package metrics

import "sync"

const defaultServiceName = "unknown"

var (
	serviceNameMu sync.RWMutex
	serviceName   = defaultServiceName
)

// SetServiceName 配置服务名称，作为所有指标的 service 标签
func SetServiceName(name string) {
	if name == "" {
		name = defaultServiceName
	}
	serviceNameMu.Lock()
	serviceName = name
	serviceNameMu.Unlock()
}

// GetServiceName 返回当前配置的服务名称
func GetServiceName() string {
	serviceNameMu.RLock()
	defer serviceNameMu.RUnlock()
	return serviceName
}

func normalizeServiceName(name string) string {
	if name == "" {
		return GetServiceName()
	}
	return name
}

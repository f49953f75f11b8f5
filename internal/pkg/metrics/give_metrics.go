// File: internal/pkg/metrics/give_metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GiveMetrics 后台资源发放指标收集器
type GiveMetrics struct {
	// 发放操作总数（按发放类型、范围、结果分组）
	GivesTotal *prometheus.CounterVec

	// 实际发放到的角色总数
	GiveTargetsTotal *prometheus.CounterVec

	// 全服发放过程中跳过的角色数（离线、状态变更被拒等）
	BroadcastSkipsTotal *prometheus.CounterVec

	// 当前在线角色数（Gauge 类型，可增可减）
	OnlinePlayers *prometheus.GaugeVec
}

var (
	// DefaultGiveMetrics 默认的发放指标实例
	DefaultGiveMetrics *GiveMetrics
)

// init 初始化默认指标
func init() {
	DefaultGiveMetrics = NewGiveMetrics("gms")
}

// NewGiveMetrics 创建新的发放指标收集器
func NewGiveMetrics(namespace string) *GiveMetrics {
	return NewGiveMetricsWithRegistry(namespace, GetRegisterer())
}

// NewGiveMetricsWithRegistry 创建新的发放指标收集器（使用自定义注册表）
func NewGiveMetricsWithRegistry(namespace string, registerer prometheus.Registerer) *GiveMetrics {
	factory := promauto.With(registerer)

	return &GiveMetrics{
		GivesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "admin",
				Name:      "gives_total",
				Help:      "Total number of admin give operations by type, scope and result",
			},
			[]string{"give_type", "scope", "result", "service"},
		),

		GiveTargetsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "admin",
				Name:      "give_targets_total",
				Help:      "Total number of characters that received a grant",
			},
			[]string{"give_type", "service"},
		),

		BroadcastSkipsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "admin",
				Name:      "broadcast_skips_total",
				Help:      "Characters skipped during a server-wide grant",
			},
			[]string{"give_type", "reason", "service"},
		),

		OnlinePlayers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "game",
				Name:      "online_players",
				Help:      "Current number of online characters across all worlds",
			},
			[]string{"service"},
		),
	}
}

// RecordGive 记录一次发放操作
func (m *GiveMetrics) RecordGive(giveType, scope string, success bool, service string) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.GivesTotal.WithLabelValues(giveType, scope, result, normalizeServiceName(service)).Inc()
}

// RecordGiveTargets 记录实际收到发放的角色数
func (m *GiveMetrics) RecordGiveTargets(giveType string, count int, service string) {
	if count <= 0 {
		return
	}
	m.GiveTargetsTotal.WithLabelValues(giveType, normalizeServiceName(service)).Add(float64(count))
}

// RecordBroadcastSkip 记录全服发放中被跳过的角色
func (m *GiveMetrics) RecordBroadcastSkip(giveType, reason, service string) {
	m.BroadcastSkipsTotal.WithLabelValues(giveType, reason, normalizeServiceName(service)).Inc()
}

// SetOnlinePlayers 更新在线角色数
func (m *GiveMetrics) SetOnlinePlayers(count int, service string) {
	m.OnlinePlayers.WithLabelValues(normalizeServiceName(service)).Set(float64(count))
}

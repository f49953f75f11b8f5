// File: internal/game/tasks/presence_task.go
package tasks

import (
	"github.com/robfig/cron/v3"

	"gms-admin/internal/game"
	"gms-admin/internal/pkg/log"
	"gms-admin/internal/pkg/metrics"
)

// PresenceSampler 周期采样全服在线人数并更新指标
type PresenceSampler struct {
	server  *game.Server
	cron    *cron.Cron
	service string
}

// NewPresenceSampler 创建在线人数采样任务
func NewPresenceSampler(server *game.Server) *PresenceSampler {
	return &PresenceSampler{
		server:  server,
		cron:    cron.New(cron.WithSeconds()),
		service: metrics.GetServiceName(),
	}
}

// Start 启动采样，每 30 秒一次
func (p *PresenceSampler) Start() error {
	if _, err := p.cron.AddFunc("*/30 * * * * *", p.sample); err != nil {
		return err
	}
	// 启动时先刷一次，避免指标在第一个周期前为空
	p.sample()
	p.cron.Start()
	log.Info("在线人数采样任务已启动")
	return nil
}

// Stop 停止采样，等待进行中的任务结束
func (p *PresenceSampler) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	log.Info("在线人数采样任务已停止")
}

func (p *PresenceSampler) sample() {
	count := p.server.OnlineCount()
	metrics.DefaultGiveMetrics.SetOnlinePlayers(count, p.service)
	log.Debug("在线人数采样", log.Int("online", count))
}

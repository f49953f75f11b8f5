package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	docs "gms-admin/docs/admin"
	"gms-admin/internal/modules/give"
	"gms-admin/internal/pkg/config"
	"gms-admin/internal/pkg/log"
)

// @title           GMS Give Admin API
// @version         1.0
// @description     游戏管理后台资源发放 API

// @host      localhost
// @BasePath  /api/v1

func main() {
	cfg := config.LoadAdminServerConfig()

	level := slog.LevelInfo
	if cfg.Environment == "development" {
		level = slog.LevelDebug
	}
	log.Init(level, cfg.Environment)

	log.Info("配置装载完成", log.Any("config", config.SanitizeConfigForLog(map[string]any{
		"http_addr":    cfg.HTTPAddr,
		"environment":  cfg.Environment,
		"database_url": cfg.DatabaseURL,
		"nats_address": cfg.NatsAddr,
		"redis_host":   cfg.RedisHost,
		"catalog_path": cfg.CatalogPath,
	})))

	// Swagger 跟随当前请求来源
	docs.SwaggerInfo.Host = ""
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	module := give.NewModule(cfg)
	if err := module.Init(); err != nil {
		log.Error("模块初始化失败", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- module.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("收到退出信号", log.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP 服务异常退出", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	module.Shutdown(ctx)
}

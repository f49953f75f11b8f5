package give

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gms-admin/internal/catalogcache"
	"gms-admin/internal/game"
	"gms-admin/internal/game/presence"
	"gms-admin/internal/game/tasks"
	custommiddleware "gms-admin/internal/middleware"
	"gms-admin/internal/modules/give/handler"
	"gms-admin/internal/modules/give/service"
	"gms-admin/internal/pkg/config"
	"gms-admin/internal/pkg/log"
	"gms-admin/internal/pkg/metrics"
	natshealth "gms-admin/internal/pkg/nats"
	"gms-admin/internal/pkg/notify"
	"gms-admin/internal/pkg/redis"
	"gms-admin/internal/pkg/response"
	"gms-admin/internal/pkg/security"
	"gms-admin/internal/pkg/trace"
	"gms-admin/internal/pkg/validator"
	"gms-admin/internal/repository/impl"
	"gms-admin/internal/repository/interfaces"

	_ "gms-admin/docs/admin" // Swagger 生成的文档

	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Module 资源发放后台模块，聚合 HTTP 服务与全部外部依赖
type Module struct {
	cfg         config.AdminServerConfig
	db          *sql.DB
	rdb         *redis.Client
	nc          *nats.Conn
	natsHealth  *natshealth.HealthChecker
	server      *game.Server
	subscriber  *presence.Subscriber
	sampler     *tasks.PresenceSampler
	httpServer  *echo.Echo
	giveHandler *handler.GiveHandler
	respWriter  response.Writer

	cancelHealth context.CancelFunc
}

// NewModule 创建模块
func NewModule(cfg config.AdminServerConfig) *Module {
	return &Module{
		cfg:        cfg,
		server:     game.NewServer(),
		respWriter: response.NewWriter(),
	}
}

// Registry 返回在线角色目录，便于测试环境预置角色
func (m *Module) Registry() *game.Server {
	return m.server
}

// Init 初始化全部依赖，失败的可选依赖降级为禁用
func (m *Module) Init() error {
	metrics.SetServiceName("give-admin")

	if err := m.initDatabase(); err != nil {
		return fmt.Errorf("数据库初始化失败: %w", err)
	}
	m.initRedis()
	if err := m.initNats(); err != nil {
		return fmt.Errorf("NATS 初始化失败: %w", err)
	}
	m.initHTTPServer()
	m.initHandlers()
	m.setupRoutes()
	return nil
}

// initDatabase 连接扩展属性库，DATABASE_URL 为空时禁用倍率发放
func (m *Module) initDatabase() error {
	if m.cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL 未配置，倍率发放不可用")
		return nil
	}

	db, err := sql.Open("postgres", m.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	m.db = db
	log.Info("数据库连接成功")
	return nil
}

// initRedis 连接物品名称缓存，失败时降级为直查内存档案
func (m *Module) initRedis() {
	if m.cfg.RedisHost == "" {
		return
	}

	rdb, err := redis.NewClient(redis.Config{
		Host:     m.cfg.RedisHost,
		Port:     m.cfg.RedisPort,
		Password: m.cfg.RedisPassword,
		DB:       m.cfg.RedisDB,
	}, "")
	if err != nil {
		log.Warn("Redis 连接失败，物品档案缓存禁用", log.String("error", err.Error()))
		return
	}
	m.rdb = rdb
	log.Info("Redis 连接成功")
}

// initNats 连接会话消息通道并订阅上下线事件
func (m *Module) initNats() error {
	if m.cfg.NatsAddr == "" {
		log.Warn("NATS_ADDRESS 未配置，会话通知与在线目录同步不可用")
		return nil
	}

	nc, err := nats.Connect("nats://"+m.cfg.NatsAddr,
		nats.MaxReconnects(10),
		nats.ReconnectWait(1*time.Second),
	)
	if err != nil {
		return err
	}
	m.nc = nc
	notify.SetNatsConn(nc)

	m.subscriber = presence.NewSubscriber(m.server)
	if err := m.subscriber.Start(nc); err != nil {
		return err
	}

	m.natsHealth = natshealth.NewHealthChecker(nc, 0)
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelHealth = cancel
	go m.natsHealth.Start(ctx)

	log.Info("NATS 连接成功", log.String("address", m.cfg.NatsAddr))
	return nil
}

// initHTTPServer 初始化 HTTP 服务与中间件链
func (m *Module) initHTTPServer() {
	m.httpServer = echo.New()
	m.httpServer.HideBanner = true
	m.httpServer.HidePort = true
	m.httpServer.Validator = validator.New()

	logger := log.GetLogger()

	// 中间件顺序：TraceID 最先，错误处理在日志之后
	m.httpServer.Use(trace.Middleware())

	loggingConfig := custommiddleware.DefaultLoggingConfig()
	if m.cfg.Environment == "development" {
		loggingConfig.DetailedLog = true
		loggingConfig.LogRequestBody = true
	}
	m.httpServer.Use(custommiddleware.LoggingMiddlewareWithConfig(logger, loggingConfig))

	m.httpServer.Use(custommiddleware.RecoveryMiddleware(m.respWriter, logger))
	m.httpServer.Use(custommiddleware.ErrorMiddleware(m.respWriter, logger))
	m.httpServer.Use(security.CORSMiddleware())
}

// initHandlers 装配物品档案、仓储与发放服务
func (m *Module) initHandlers() {
	catalog := game.ItemProvider(m.loadCatalog())
	if m.rdb != nil {
		catalog = catalogcache.NewCachedCatalog(catalog, m.rdb)
	}

	var extendValueRepo interfaces.ExtendValueRepository
	if m.db != nil {
		extendValueRepo = impl.NewExtendValueRepository(m.db)
	}

	giveService := service.NewGiveService(m.server, catalog, extendValueRepo)
	m.giveHandler = handler.NewGiveHandler(giveService, m.respWriter)
}

// loadCatalog 装载物品档案，文件缺失或损坏时回退为空档案
func (m *Module) loadCatalog() *game.StaticCatalog {
	if m.cfg.CatalogPath == "" {
		log.Warn("CATALOG_PATH 未配置，物品档案为空")
		return game.NewStaticCatalog()
	}

	catalog, err := game.LoadCatalogFile(m.cfg.CatalogPath)
	if err != nil {
		log.Error("物品档案装载失败", err, log.String("path", m.cfg.CatalogPath))
		return game.NewStaticCatalog()
	}
	return catalog
}

// setupRoutes 挂载路由
func (m *Module) setupRoutes() {
	v1 := m.httpServer.Group("/api/v1")
	admin := v1.Group("/admin")
	m.giveHandler.RegisterRoutes(admin)

	// Swagger UI
	m.httpServer.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health check
	m.httpServer.GET("/health", func(c echo.Context) error {
		status := "ok"
		if m.natsHealth != nil && !m.natsHealth.IsHealthy() {
			status = "degraded"
		}
		return c.JSON(200, map[string]interface{}{
			"status": status,
			"module": "give",
			"online": m.server.OnlineCount(),
		})
	})

	// Prometheus metrics endpoint
	m.httpServer.GET("/metrics", metrics.EchoHandler())
}

// Start 启动在线人数采样与 HTTP 服务，阻塞直到服务退出
func (m *Module) Start() error {
	m.sampler = tasks.NewPresenceSampler(m.server)
	if err := m.sampler.Start(); err != nil {
		return fmt.Errorf("采样任务启动失败: %w", err)
	}

	log.Info("HTTP 服务启动", log.String("addr", m.cfg.HTTPAddr))
	return m.httpServer.Start(m.cfg.HTTPAddr)
}

// Shutdown 有序释放全部资源
func (m *Module) Shutdown(ctx context.Context) {
	if m.httpServer != nil {
		if err := m.httpServer.Shutdown(ctx); err != nil {
			log.Warn("HTTP 服务关闭失败", log.String("error", err.Error()))
		}
	}
	if m.sampler != nil {
		m.sampler.Stop()
	}
	if m.subscriber != nil {
		m.subscriber.Stop()
	}
	if m.cancelHealth != nil {
		m.cancelHealth()
	}
	if m.nc != nil {
		notify.SetNatsConn(nil)
		m.nc.Close()
	}
	if m.rdb != nil {
		if err := m.rdb.Close(); err != nil {
			log.Warn("Redis 关闭失败", log.String("error", err.Error()))
		}
	}
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			log.Warn("数据库关闭失败", log.String("error", err.Error()))
		}
	}
	log.Info("模块已停止")
}

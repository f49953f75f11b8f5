package config

import (
	"os"
	"strconv"
	"strings"
)

// GetEnvOrDefault 获取环境变量，如果不存在则返回默认值
// 这是配置加载的核心函数：环境变量 > 默认值
func GetEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvIntOrDefault 获取整型环境变量，解析失败时返回默认值
func GetEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// MustGetEnv 获取环境变量，如果不存在则 panic
// 用于必须配置的敏感信息（如数据库密码）
func MustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic("环境变量 " + key + " 未设置，但它是必需的")
	}
	return value
}

// AdminServerConfig admin-server 进程配置
type AdminServerConfig struct {
	HTTPAddr      string // HTTP 监听地址
	Environment   string // development / production
	DatabaseURL   string // 扩展属性库（倍率等）
	CatalogPath   string // 物品档案 JSON 文件，空则档案为空
	NatsAddr      string // 会话消息通道，空则禁用
	RedisHost     string // 物品名称缓存，空则禁用
	RedisPort     int
	RedisPassword string
	RedisDB       int
}

// LoadAdminServerConfig 从环境变量装配 admin-server 配置
func LoadAdminServerConfig() AdminServerConfig {
	return AdminServerConfig{
		HTTPAddr:      GetEnvOrDefault("HTTP_ADDR", ":8080"),
		Environment:   GetEnvOrDefault("APP_ENV", "development"),
		DatabaseURL:   GetEnvOrDefault("DATABASE_URL", ""),
		CatalogPath:   GetEnvOrDefault("CATALOG_PATH", ""),
		NatsAddr:      GetEnvOrDefault("NATS_ADDRESS", ""),
		RedisHost:     GetEnvOrDefault("REDIS_HOST", ""),
		RedisPort:     GetEnvIntOrDefault("REDIS_PORT", 6379),
		RedisPassword: GetEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvIntOrDefault("REDIS_DB", 0),
	}
}

// SanitizeConfigForLog 清理配置中的敏感信息，用于日志输出
// 安全最佳实践：不要在日志中输出密码、密钥等敏感信息
func SanitizeConfigForLog(config map[string]any) map[string]any {
	sanitized := make(map[string]any)
	for k, v := range config {
		// 隐藏敏感字段
		if isSensitiveKey(k) {
			sanitized[k] = "***REDACTED***"
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

// isSensitiveKey 判断是否是敏感配置项
func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	sensitiveKeywords := []string{
		"password", "secret", "token", "key", "auth",
		"credential", "private", "url",
	}

	for _, keyword := range sensitiveKeywords {
		if strings.Contains(lowerKey, keyword) {
			return true
		}
	}
	return false
}

// File: internal/pkg/trace/middleware.go
package trace

import (
	"github.com/labstack/echo/v4"
)

// Middleware Echo 中间件 - 自动提取或生成 TraceID 并存储到 context
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := ExtractFromHeader(c.Request().Header)

			ctx := WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))

			// 回写到响应头，方便客户端追踪
			c.Response().Header().Set("X-Trace-Id", traceID)

			return next(c)
		}
	}
}

package response

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gms-admin/internal/pkg/xerrors"
)

// EmptyData 是一个用于在 API 成功响应中表示“无数据”的结构体。
// 使用一个具体的空结构体，比直接返回 nil 或 interface{} 更类型安全、意图更明确。
type EmptyData struct{}

// APIResponse 是一个通用的API响应结构体
type APIResponse struct {
	Code      int    `json:"code"`               // 业务响应码
	Message   string `json:"message"`            // 响应消息
	Data      any    `json:"data,omitempty"`     // 响应数据，成功时返回
	Error     string `json:"error,omitempty"`    // 错误详情，失败时返回
	Timestamp int64  `json:"timestamp"`          // Unix时间戳
	TraceId   string `json:"trace_id,omitempty"` // 请求追踪ID
}

// Writer 统一的响应写入接口，handler 通过它输出 APIResponse
type Writer interface {
	WriteSuccess(ctx context.Context, w http.ResponseWriter, data any) error
	WriteError(ctx context.Context, w http.ResponseWriter, err error) error
	WriteJSON(ctx context.Context, w http.ResponseWriter, data any, statusCode int) error
}

type jsonWriter struct{}

// NewWriter 创建默认的 JSON 响应写入器
func NewWriter() Writer {
	return &jsonWriter{}
}

// WriteSuccess 写入成功响应
func (jw *jsonWriter) WriteSuccess(ctx context.Context, w http.ResponseWriter, data any) error {
	resp := &APIResponse{
		Code:      xerrors.CodeSuccess.ToInt(),
		Message:   xerrors.CodeSuccess.Message(),
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	return writeJSON(w, http.StatusOK, resp)
}

// WriteError 写入失败响应，AppError 会映射为对应的业务码和HTTP状态码
func (jw *jsonWriter) WriteError(ctx context.Context, w http.ResponseWriter, err error) error {
	appErr := xerrors.Wrap(err, xerrors.CodeInternalError, "内部服务错误")

	resp := &APIResponse{
		Code:      appErr.Code.ToInt(),
		Message:   appErr.Message,
		Timestamp: time.Now().Unix(),
	}
	if appErr.Err != nil {
		resp.Error = appErr.Err.Error()
	}
	if appErr.Context != nil {
		resp.TraceId = appErr.Context.TraceID
	}
	return writeJSON(w, xerrors.GetHTTPStatus(appErr.Code), resp)
}

// WriteJSON 直接写入任意数据(跳过 APIResponse 包装)
func (jw *jsonWriter) WriteJSON(ctx context.Context, w http.ResponseWriter, data any, statusCode int) error {
	return writeJSON(w, statusCode, data)
}

// writeJSON 统一了所有API的输出方式
func writeJSON(w http.ResponseWriter, statusCode int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode) // 写入HTTP状态码

	// 将响应结构体序列化为JSON并写入响应体
	return json.NewEncoder(w).Encode(body)
}

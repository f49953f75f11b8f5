// File: internal/pkg/xerrors/codes.go
package xerrors

import "fmt"

// ErrorCode 错误码类型（类型安全）
type ErrorCode int

// IsValid 检查错误码是否在预定义列表中
func (c ErrorCode) IsValid() bool {
	_, exists := codeMessages[c]
	return exists
}

// String 返回错误码的字符串表示
func (c ErrorCode) String() string {
	if msg, ok := codeMessages[c]; ok {
		return fmt.Sprintf("%d (%s)", c, msg)
	}
	return fmt.Sprintf("%d (未定义的错误码)", c)
}

// Message 返回错误码对应的消息
func (c ErrorCode) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return "未知错误"
}

// ToInt 转换为 int（用于 JSON 序列化等场景）
func (c ErrorCode) ToInt() int {
	return int(c)
}

// -----------------------------------------------------------------------------
// 业务错误码统一定义
// 按模块或领域对错误码进行分段，便于管理。
// -----------------------------------------------------------------------------
const (
	// 1xxxxx: 通用错误码
	CodeSuccess           ErrorCode = 100000 // 操作成功
	CodeInternalError     ErrorCode = 100001 // 内部服务错误
	CodeInvalidParams     ErrorCode = 100002 // 参数错误
	CodeInvalidRequest    ErrorCode = 100003 // 请求格式错误
	CodeResourceNotFound  ErrorCode = 100404 // 资源不存在
	CodeDuplicateResource ErrorCode = 100409 // 资源已存在

	// 3xxxxx: 权限相关错误码
	CodePermissionDenied ErrorCode = 300001 // 权限不足

	// 6xxxxx: 业务逻辑错误码
	CodeBusinessLogicError  ErrorCode = 600001 // 业务逻辑错误
	CodeOperationNotAllowed ErrorCode = 600003 // 操作不被允许

	// 7xxxxx: 外部服务错误码
	CodeExternalServiceError ErrorCode = 700001 // 外部服务错误
	CodeDatabaseError        ErrorCode = 700003 // 数据库错误
	CodeCacheError           ErrorCode = 700004 // 缓存服务错误
	CodeMessageQueueError    ErrorCode = 700005 // 消息队列错误

	// 8xxxxx: 游戏业务错误码
	// 资源发放相关 (83xxxx)
	CodeWorldNotFound    ErrorCode = 830001 // 大区不存在
	CodeTargetOffline    ErrorCode = 830002 // 玩家已离线或不存在
	CodeItemNotFound     ErrorCode = 830003 // 物品不存在
	CodeEquipNotFound    ErrorCode = 830004 // 装备不存在
	CodeGiveTypeInvalid  ErrorCode = 830005 // 发放类型无效
	CodeMutationRejected ErrorCode = 830006 // 角色状态变更被拒绝
)

// -----------------------------------------------------------------------------
// HTTP 状态码常量定义
// -----------------------------------------------------------------------------
const (
	HTTPStatusOK = 200 // 请求成功

	HTTPStatusBadRequest = 400 // 错误请求
	HTTPStatusForbidden  = 403 // 禁止访问
	HTTPStatusNotFound   = 404 // 资源未找到
	HTTPStatusConflict   = 409 // 资源冲突

	HTTPStatusInternalServerError = 500 // 内部服务器错误
	HTTPStatusServiceUnavailable  = 503 // 服务不可用
)

// -----------------------------------------------------------------------------
// 错误消息映射
// -----------------------------------------------------------------------------
var codeMessages = map[ErrorCode]string{
	CodeSuccess:           "操作成功",
	CodeInternalError:     "内部服务错误",
	CodeInvalidParams:     "参数错误",
	CodeInvalidRequest:    "请求格式错误",
	CodeResourceNotFound:  "资源不存在",
	CodeDuplicateResource: "资源已存在",

	CodePermissionDenied: "权限不足",

	CodeBusinessLogicError:  "业务逻辑错误",
	CodeOperationNotAllowed: "操作不被允许",

	CodeExternalServiceError: "外部服务错误",
	CodeDatabaseError:        "数据库错误",
	CodeCacheError:           "缓存服务错误",
	CodeMessageQueueError:    "消息队列错误",

	// 发放业务错误消息
	CodeWorldNotFound:    "大区 ID 或者 玩家 ID 不正确",
	CodeTargetOffline:    "玩家已离线",
	CodeItemNotFound:     "物品不存在",
	CodeEquipNotFound:    "装备不存在",
	CodeGiveTypeInvalid:  "发放类型无效",
	CodeMutationRejected: "角色状态变更被拒绝",
}

// GetHTTPStatus 根据业务错误码获取HTTP状态码
func GetHTTPStatus(code ErrorCode) int {
	switch {
	case code == CodeSuccess:
		return HTTPStatusOK
	case code >= 300000 && code < 400000:
		return HTTPStatusForbidden
	case code == CodeResourceNotFound:
		return HTTPStatusNotFound
	case code == CodeDuplicateResource:
		return HTTPStatusConflict
	case code == CodeInvalidParams || code == CodeInvalidRequest:
		return HTTPStatusBadRequest
	case code >= 600000 && code < 700000:
		return HTTPStatusBadRequest
	case code >= 700000 && code < 800000:
		return HTTPStatusServiceUnavailable
	case code >= 800000 && code < 900000:
		return HTTPStatusBadRequest
	default:
		return HTTPStatusInternalServerError
	}
}

// 辅助函数
// getCategoryByCode 根据错误码获取分类
func getCategoryByCode(code ErrorCode) string {
	switch {
	case code >= 100000 && code < 200000:
		return "system"
	case code >= 300000 && code < 400000:
		return "authorization"
	case code >= 600000 && code < 700000:
		return "business"
	case code >= 700000 && code < 800000:
		return "external"
	case code >= 800000 && code < 900000:
		return "game"
	default:
		return "unknown"
	}
}

// getLevelByCode 根据错误码获取级别
func getLevelByCode(code ErrorCode) ErrorLevel {
	switch {
	case code == CodeSuccess:
		return LevelInfo
	case code >= 100001 && code <= 100003: // 参数错误等
		return LevelWarn
	case code >= 700001 && code < 800000: // 外部服务错误
		return LevelCritical
	case code >= 830001 && code <= 830005: // 发放前置校验失败
		return LevelWarn
	default:
		return LevelError
	}
}

// isRetryableByCode 根据错误码判断是否可重试
func isRetryableByCode(code ErrorCode) bool {
	retryableCodes := map[ErrorCode]bool{
		CodeInternalError:        true,
		CodeExternalServiceError: true,
		CodeDatabaseError:        true,
		CodeCacheError:           true,
		CodeMessageQueueError:    true,
	}
	return retryableCodes[code]
}

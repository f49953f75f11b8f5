package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator 包装 go-playground validator 供 Echo 使用，
// 并注册发放相关的业务规则
type CustomValidator struct {
	validator *validator.Validate
}

// Validate 实现 echo.Validator 接口，错误消息已翻译为中文
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, TranslateValidationError(err))
	}
	return nil
}

// New 创建验证器实例
func New() echo.Validator {
	v := validator.New()
	registerGiveRules(v)
	return &CustomValidator{validator: v}
}

package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TranslateValidationError 将 validator 验证错误翻译为中文消息，
// 多个字段出错时只返回第一条
func TranslateValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return err.Error()
	}

	return translateFieldError(validationErrs[0])
}

func translateFieldError(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s 不能为空", field)
	case "min":
		return fmt.Sprintf("%s 不能小于 %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s 不能大于 %s", field, fe.Param())
	case "item_id":
		return fmt.Sprintf("%s 不是合法的物品编号", field)
	case "rate_value":
		return fmt.Sprintf("%s 必须为正数且不超过 1000", field)
	default:
		return fmt.Sprintf("%s 格式不正确", field)
	}
}

package rule

import (
	"sync"

	"github.com/bingooh/b-go-precheck/precheck"
	"github.com/go-playground/validator/v10"
)

// 结构体校验标签，如：`validate:"notnilorempty"`
// nil指针字段由validator直接判定为校验失败，不会调用校验函数
const (
	TagNotNil        = `notnil`
	TagNotNilOrEmpty = `notnilorempty`
)

var (
	defaultValidator     *validator.Validate
	defaultValidatorOnce sync.Once
)

// RegisterValidations 注册校验标签，gin可使用binding.Validator.Engine()获取validator
func RegisterValidations(v *validator.Validate) error {
	precheck.ParamNotNil(v, `v`)

	if err := v.RegisterValidation(TagNotNil, validateNotNil); err != nil {
		return err
	}

	return v.RegisterValidation(TagNotNilOrEmpty, validateNotNilOrEmpty)
}

func NewValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}

	return v
}

// DefaultValidator 已注册校验标签的validator，并发安全
func DefaultValidator() *validator.Validate {
	defaultValidatorOnce.Do(func() {
		defaultValidator = NewValidator()
	})

	return defaultValidator
}

// ValidateStruct 使用DefaultValidator()校验结构体
func ValidateStruct(s interface{}) error {
	return DefaultValidator().Struct(s)
}

func validateNotNil(fl validator.FieldLevel) bool {
	f := fl.Field()
	if !f.IsValid() || !f.CanInterface() {
		return false
	}

	return !precheck.IsNil(f.Interface())
}

// 字段类型不支持空值检查将崩溃，与validator处理错误标签的方式一致
func validateNotNilOrEmpty(fl validator.FieldLevel) bool {
	f := fl.Field()
	if !f.IsValid() || !f.CanInterface() {
		return false
	}

	return !precheck.IsNilOrEmpty(f.Interface())
}

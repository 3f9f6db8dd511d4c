package rule

import (
	"strconv"

	"github.com/bingooh/b-go-precheck/precheck"
	"github.com/bingooh/b-go-precheck/util"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrCode 校验错误码，http中间件将其解析为400响应
var ErrCode = strconv.Itoa(util.ErrCodeIllegalArg)

var (
	ErrNotNil        = validation.NewError(ErrCode, precheck.MsgNotNil)
	ErrNotNilOrEmpty = validation.NewError(ErrCode, precheck.MsgNotNilOrEmpty)
	ErrExpression    = validation.NewError(ErrCode, precheck.MsgExpression)
)

var (
	// NotNil 值不能为nil
	NotNil = NilRule{err: ErrNotNil}

	// NotNilOrEmpty 值不能为nil或空值，值的类型必须支持空值检查，见precheck.IsNilOrEmpty()
	NotNilOrEmpty = NilRule{checkEmpty: true, err: ErrNotNilOrEmpty}
)

type NilRule struct {
	checkEmpty bool
	err        validation.Error
}

func (r NilRule) Validate(value interface{}) error {
	if !r.checkEmpty {
		if precheck.IsNil(value) {
			return r.err
		}

		return nil
	}

	if !precheck.CanCheckEmpty(value) {
		return validation.NewInternalError(precheck.CheckNotNilOrEmpty(value))
	}

	if precheck.IsNilOrEmpty(value) {
		return r.err
	}

	return nil
}

// Error 返回使用自定义错误消息的规则
func (r NilRule) Error(message string) NilRule {
	r.err = r.err.SetMessage(message)
	return r
}

// ErrorObject 返回使用自定义错误对象的规则，可指定错误码
func (r NilRule) ErrorObject(err validation.Error) NilRule {
	r.err = err
	return r
}

// ExpressionRule 使用函数校验值
type ExpressionRule struct {
	fn  func(value interface{}) bool
	err validation.Error
}

func Expression(fn func(value interface{}) bool) ExpressionRule {
	return ExpressionRule{fn: precheck.ParamNotNil(fn, `fn`), err: ErrExpression}
}

func (r ExpressionRule) Validate(value interface{}) error {
	if r.fn(value) {
		return nil
	}

	return r.err
}

func (r ExpressionRule) Error(message string) ExpressionRule {
	r.err = r.err.SetMessage(message)
	return r
}

func (r ExpressionRule) ErrorObject(err validation.Error) ExpressionRule {
	r.err = err
	return r
}

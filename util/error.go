package util

import (
	"errors"
	"fmt"
	"net/http"
)

// 错误码，自定义业务错误码建议使用6位数，前3位可表示http响应状态码
const (
	ErrCodeUnknown      int = -1
	ErrCodeOK           int = 0
	ErrCodeNil          int = 1
	ErrCodeInternal     int = 2
	ErrCodeAssertFail   int = 3
	ErrCodeIllegalArg   int = 4 //检查参数失败，见precheck.Error
	ErrCodeIllegalState int = 5
	ErrCodeTimeout      int = 9
	ErrCodeCanceled     int = 11
	ErrCodeAborted      int = 12
	ErrCodeNotFound     int = 13
)

// Coder 携带错误码的错误
type Coder interface {
	Code() int
}

// BizError 业务错误，错误消息格式：(code)msg->cause
type BizError struct {
	code  int
	msg   string
	cause error
}

// NewBizError args参数格式同Sprintf()
func NewBizError(code int, args ...interface{}) *BizError {
	cause, rest := SplitCause(args)
	msg := JoinCause(fmt.Sprintf(`(%v)%v`, code, sprintf(rest...)), cause)

	return &BizError{code: code, msg: msg, cause: cause}
}

func NewInternalError(args ...interface{}) *BizError {
	return NewBizError(ErrCodeInternal, args...)
}

func NewIllegalArgError(args ...interface{}) *BizError {
	return NewBizError(ErrCodeIllegalArg, args...)
}

func (e *BizError) Error() string {
	if e == nil {
		return ``
	}

	return e.msg
}

func (e *BizError) Code() int {
	if e == nil {
		return ErrCodeOK
	}

	return e.code
}

func (e *BizError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// AsBizError 注：如果err为nil *BizError，则返回值nil,true
func AsBizError(err error) (*BizError, bool) {
	var e *BizError

	ok := errors.As(err, &e)
	return e, ok
}

// ToBizError 转换为*BizError，不会返回nil。实现Coder的错误保留错误码
func ToBizError(err error) *BizError {
	if e, ok := AsBizError(err); ok && e != nil {
		return e
	}

	switch c, ok := AsCoder(err); {
	case err == nil:
		return NewBizError(ErrCodeOK)
	case ok:
		return NewBizError(c.Code(), err.Error())
	default:
		return NewBizError(ErrCodeUnknown, err.Error())
	}
}

// AsCoder 查找错误链上第1个实现Coder的错误，*BizError优先
func AsCoder(err error) (Coder, bool) {
	if e, ok := AsBizError(err); ok {
		return e, true
	}

	var c Coder
	ok := errors.As(err, &c)
	return c, ok
}

// GetBizErrCode err为nil返回ErrCodeOK，未实现Coder返回ErrCodeUnknown
func GetBizErrCode(err error) int {
	if err == nil {
		return ErrCodeOK
	}

	if c, ok := AsCoder(err); ok {
		return c.Code()
	}

	return ErrCodeUnknown
}

func HasErrCode(err error, code int) bool {
	return GetBizErrCode(err) == code
}

func IsIllegalArgErr(err error) bool {
	return HasErrCode(err, ErrCodeIllegalArg)
}

// http.StatusPreconditionFailed用于检查http请求头，不适合业务错误
var codeHttpStatusMap = map[int]int{
	ErrCodeIllegalArg:   http.StatusBadRequest,
	ErrCodeAssertFail:   http.StatusBadRequest,
	ErrCodeIllegalState: http.StatusTooEarly,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeOK:           http.StatusOK,
}

func ToHttpStatus(bizErrCode int, defaultHttpStatus int) int {
	if v, ok := codeHttpStatusMap[bizErrCode]; ok {
		return v
	}

	return defaultHttpStatus
}

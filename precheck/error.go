package precheck

import (
	"errors"

	"github.com/bingooh/b-go-precheck/util"
)

// ErrIllegalArg 所有检查失败的错误都满足errors.Is(err,ErrIllegalArg)
var ErrIllegalArg = errors.New(`illegal argument`)

// Error 检查失败错误，Error()直接返回错误消息，不添加错误码前缀
type Error struct {
	msg   string
	cause error
}

// NewError args参数格式：msg / format,args... / err / err,format,args...
// 如果msg为nil或空白字符串，则使用默认消息`error message is empty!`
func NewError(args ...interface{}) *Error {
	cause, rest := util.SplitCause(args)

	var msg string
	switch {
	case len(rest) > 0:
		msg = Format(rest[0], rest[1:]...)
	case cause == nil:
		msg = MsgEmpty
	}

	return &Error{msg: util.JoinCause(msg, cause), cause: cause}
}

// 无参数则使用默认消息dv
func newFailure(dv string, args ...interface{}) *Error {
	if len(args) == 0 {
		return &Error{msg: dv}
	}

	return NewError(args...)
}

func (e *Error) Error() string {
	if e == nil {
		return ``
	}

	return e.msg
}

func (e *Error) Code() int {
	return util.ErrCodeIllegalArg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

func (e *Error) Is(target error) bool {
	return target == ErrIllegalArg
}

// AsError 注：如果err为nil *Error，则返回值nil,true
func AsError(err error) (*Error, bool) {
	var e *Error

	ok := errors.As(err, &e)
	return e, ok
}

func IsIllegalArgErr(err error) bool {
	_, ok := AsError(err)
	return ok
}

// Try 执行fn，如果fn因检查失败而崩溃，则返回对应错误。其他崩溃将继续抛出
func Try(fn func()) (err error) {
	defer Recover(&err)

	fn()
	return nil
}

// Recover 必须使用defer直接调用，如：defer precheck.Recover(&err)
// 仅捕获检查失败的崩溃，并赋值给errp，其他崩溃将继续抛出
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	err, ok := r.(error)
	if !ok || !IsIllegalArgErr(err) {
		panic(r)
	}

	if errp != nil {
		*errp = err
	}
}

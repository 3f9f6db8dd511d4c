// Package precheck 参数检查，用于在函数入口处快速失败
//
// 所有检查函数失败时抛出*Error，即panic(*Error)，可使用Try()/Recover()转换为错误
// 可选参数args格式：无 / msg / format,args... / err,format,args...
//   - 无：使用各函数的默认错误消息
//   - msg：直接使用此消息，不做格式化
//   - format,args...：使用fmt.Sprintf()格式化
//   - err,...：err作为错误原因，错误消息格式为：msg->err
package precheck

import (
	"fmt"

	"github.com/bingooh/b-go-precheck/_reflect"
)

// NotNil 检查v不为nil并返回v，默认错误消息：must not be null!
func NotNil[T any](v T, args ...interface{}) T {
	if _reflect.IsNil(v) {
		panic(newFailure(MsgNotNil, args...))
	}

	return v
}

// NotNilOrEmpty 检查v不为nil且不为空并返回v，默认错误消息：must not be null or empty!
// v的类型必须支持空值检查，见IsNilOrEmpty()
func NotNilOrEmpty[T any](v T, args ...interface{}) T {
	if IsNilOrEmpty(v) {
		panic(newFailure(MsgNotNilOrEmpty, args...))
	}

	return v
}

// ParamNotNil 错误消息：parameter 'name' must not be null!
func ParamNotNil[T any](v T, name string) T {
	if _reflect.IsNil(v) {
		panic(&Error{msg: fmt.Sprintf(TplParamNotNil, name)})
	}

	return v
}

// ParamNotNilOrEmpty 错误消息：parameter 'name' must not be null or empty
func ParamNotNilOrEmpty[T any](v T, name string) T {
	if IsNilOrEmpty(v) {
		panic(&Error{msg: fmt.Sprintf(TplParamNotNilOrEmpty, name)})
	}

	return v
}

// Expression 检查表达式为true，默认错误消息：expression not valid!
func Expression(ok bool, args ...interface{}) {
	if !ok {
		panic(newFailure(MsgExpression, args...))
	}
}

// IsNil 是否为nil，包括nil指针/map/slice/chan/func
func IsNil(v interface{}) bool {
	return _reflect.IsNil(v)
}

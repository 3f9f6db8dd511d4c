package util

import (
	"errors"
	"fmt"

	"github.com/bingooh/b-go-precheck/_reflect"
)

// SplitCause 拆分参数args为错误原因和消息参数，参数格式：err / format,args... / err,format,args...
// 第1个参数为nil错误则丢弃
func SplitCause(args []interface{}) (cause error, rest []interface{}) {
	if len(args) == 0 {
		return nil, args
	}

	err, ok := args[0].(error)
	if !ok {
		return nil, args
	}

	if _reflect.IsNil(err) {
		return nil, args[1:]
	}

	return err, args[1:]
}

// JoinCause 错误消息格式：msg->cause，msg为空则返回cause.Error()
func JoinCause(msg string, cause error) string {
	switch {
	case cause == nil:
		return msg
	case msg == ``:
		return cause.Error()
	default:
		return msg + `->` + cause.Error()
	}
}

// Format 格式化消息模板，无参数则直接返回模板
// 超出占位符数量的参数将被忽略，不会输出%!(EXTRA ...)
func Format(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}

	if n, ok := countVerbs(format); ok && n < len(args) {
		args = args[:n]
	}

	return fmt.Sprintf(format, args...)
}

// 统计占位符消耗的参数数量，%%不计入，宽度/精度为*也消耗参数
// 使用显式参数索引如%[1]d，则返回false
func countVerbs(format string) (int, bool) {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}

		for i++; i < len(format); i++ {
			c := format[i]
			if c == '[' {
				return 0, false
			}

			if c == '*' {
				n++
				continue
			}

			if !isVerbFlag(c) {
				break
			}
		}

		if i < len(format) && format[i] != '%' {
			n++
		}
	}

	return n, true
}

func isVerbFlag(c byte) bool {
	switch c {
	case '+', '-', '#', ' ', '.':
		return true
	default:
		return c >= '0' && c <= '9'
	}
}

// 第1个参数为消息模板，非字符串使用fmt.Sprint()转换
func sprintf(args ...interface{}) string {
	if len(args) == 0 {
		return ``
	}

	format, ok := args[0].(string)
	if !ok {
		format = fmt.Sprint(args[0])
	}

	return Format(format, args[1:]...)
}

// Sprintf 参数args格式：err或format,args...或err,format,args...
func Sprintf(args ...interface{}) string {
	cause, rest := SplitCause(args)
	return JoinCause(sprintf(rest...), cause)
}

// Errorf 参数格式同Sprintf，如果第1个参数为err，则返回的错误包装此err
func Errorf(args ...interface{}) error {
	cause, rest := SplitCause(args)
	msg := sprintf(rest...)

	switch {
	case cause == nil:
		return errors.New(msg)
	case msg == ``:
		return cause
	default:
		return fmt.Errorf(`%v->%w`, msg, cause)
	}
}

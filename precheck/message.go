package precheck

import (
	"fmt"

	"github.com/bingooh/b-go-precheck/_reflect"
	"github.com/bingooh/b-go-precheck/_string"
	"github.com/bingooh/b-go-precheck/util"
)

// 默认错误消息，调用方可能依赖消息内容，不要修改
const (
	MsgEmpty         = `error message is empty!`
	MsgNotNil        = `must not be null!`
	MsgNotNilOrEmpty = `must not be null or empty!`
	MsgExpression    = `expression not valid!`
	MsgUncheckable   = `parameter must be type Object`

	TplParamNotNil        = `parameter '%s' must not be null!`
	TplParamNotNilOrEmpty = `parameter '%s' must not be null or empty`
)

// Message 转换msg为字符串，如果msg为nil或空白字符串，则返回`error message is empty!`
func Message(msg interface{}) string {
	if _reflect.IsNil(msg) {
		return MsgEmpty
	}

	s, ok := msg.(string)
	if !ok {
		s = fmt.Sprint(msg)
	}

	if _string.Empty(s) {
		return MsgEmpty
	}

	return s
}

// Format 格式化消息模板，参数按顺序替换模板里的占位符，多余的参数将被忽略
// 如：Format(`the value of %s is %d`, `parameter`, 1) => `the value of parameter is 1`
func Format(msg interface{}, args ...interface{}) string {
	tpl := Message(msg)
	if tpl == MsgEmpty {
		return tpl
	}

	return util.Format(tpl, args...)
}

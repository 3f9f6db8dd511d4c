package http

import (
	"github.com/bingooh/b-go-precheck/conf"
	"github.com/bingooh/b-go-precheck/precheck"
)

// MWErrorHandlerOption 错误处理中间件配置，默认配置文件conf/http_err
type MWErrorHandlerOption struct {
	EnableLog400Err                   bool   //是否输出400错误的日志
	DisableParseHttpStatusFromErrCode bool   //是否禁止从错误码里抽取前3位作为http响应状态码
	RspErrField                       string //错误对象对应的响应字段名称，默认不使用
}

func (o *MWErrorHandlerOption) MustNormalize() *MWErrorHandlerOption {
	return precheck.NotNil(o, `option为空`)
}

func NewMWErrorHandlerOptionFromCfgFile(file string) (*MWErrorHandlerOption, error) {
	o := &MWErrorHandlerOption{}
	if err := conf.Load(o, file); err != nil {
		return nil, err
	}

	return o, nil
}

func MustNewMWErrorHandlerOptionFromCfgFile(file string) *MWErrorHandlerOption {
	o, err := NewMWErrorHandlerOptionFromCfgFile(file)
	precheck.NotNil(o, err, `加载错误处理中间件配置出错[file=%v]`, file)
	return o
}

package http

import (
	"net/http"

	"github.com/bingooh/b-go-precheck/_string"
	"github.com/bingooh/b-go-precheck/precheck"
	"github.com/bingooh/b-go-precheck/util"
	"github.com/go-resty/resty/v2"
)

type ClientOption struct {
	HostURL    string //服务端URL
	Debug      bool   //是否启用调试模式
	AuthToken  string //验证token
	AuthScheme string //验证方式，默认bearer
}

func (o *ClientOption) MustNormalize() *ClientOption {
	return precheck.NotNil(o, `option为空`)
}

// MustNewClient 创建客户端，错误响应将被解析为*Error，见ToError()
func MustNewClient(option *ClientOption) *resty.Client {
	o := option.MustNormalize()

	c := resty.New().
		SetLogger(newLogger(`client`).Sugar()).
		SetDebug(o.Debug).
		SetHostURL(o.HostURL).
		SetError(&Error{})

	if !_string.Empty(o.AuthToken) {
		c.SetAuthToken(o.AuthToken)
	}

	if !_string.Empty(o.AuthScheme) {
		c.SetAuthScheme(o.AuthScheme)
	}

	return c
}

// ToError 转换请求结果为错误，如：err:=ToError(client.R().Get(url))
// 如果响应不是成功响应，且响应体不是*Error，则返回使用响应状态码的*Error
func ToError(rsp *resty.Response, err error) error {
	if err != nil {
		return err
	}

	if rsp == nil || rsp.IsSuccess() {
		return nil
	}

	if e, ok := rsp.Error().(*Error); ok && e != nil && e.status != 0 {
		return e
	}

	status := rsp.StatusCode()
	return NewError(status, util.ErrCodeUnknown, _string.FirstNotEmpty(rsp.String(), http.StatusText(status)))
}

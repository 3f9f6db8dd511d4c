package http_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/bingooh/b-go-precheck/http"
	"github.com/bingooh/b-go-precheck/precheck"
	"github.com/bingooh/b-go-precheck/rule"
	"github.com/bingooh/b-go-precheck/util"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type User struct {
	Name string `json:"name" binding:"notnilorempty"`
	Age  int    `json:"age"`
}

func init() {
	gin.SetMode(gin.TestMode)
	http.MustRegisterBindingValidations()
}

func newRouter(handler *http.MWErrorHandler) *gin.Engine {
	r := gin.New()
	r.Use(http.MWLogger())
	r.NoRoute(http.NoRouteHandler())
	r.Use(handler.Handle)

	r.GET(`/hi`, func(c *gin.Context) {
		name := precheck.ParamNotNilOrEmpty(c.Query(`name`), `name`) //400
		c.JSON(200, `hi,`+name)
	})

	r.GET(`/err`, func(c *gin.Context) {
		v := c.Query(`v`)
		switch v {
		case `e1`:
			c.Error(errors.New(v)) //500
		case `e2`:
			c.Error(precheck.CheckExpression(false, `v[%v] is invalid`, v)) //400
		case `e3`:
			c.Error(util.NewIllegalArgError(`参数错误`)) //400
		case `e4`:
			c.Error(http.NewError(429, 429001, `请求太频繁`)) //429
		case `e5`:
			c.Error(errors.New(v))
			c.Abort() //200，需自行发送响应
		case `panic`:
			panic(`故意崩溃`) //500
		}
	})

	r.POST(`/user`, func(c *gin.Context) {
		user := &User{}
		if err := c.ShouldBindJSON(user); err != nil {
			c.Error(err)
			return
		}

		if err := validation.ValidateStruct(user,
			validation.Field(&user.Age, rule.Expression(func(v interface{}) bool {
				return v.(int) > 0
			}).Error(`年龄必须大于0`)),
		); err != nil {
			c.Error(err)
			return
		}

		c.JSON(200, user)
	})

	return r
}

func newClient(t *testing.T, handler *http.MWErrorHandler) *resty.Client {
	server := httptest.NewServer(newRouter(handler))
	t.Cleanup(server.Close)

	return http.MustNewClient(&http.ClientOption{HostURL: server.URL})
}

func TestPrecheckPanic(t *testing.T) {
	r := require.New(t)
	client := newClient(t, http.NewMWErrorHandler())

	var rs string
	rsp, err := client.R().SetQueryParam(`name`, `b`).SetResult(&rs).Get(`hi`)
	r.NoError(err)
	r.Equal(200, rsp.StatusCode())
	r.Equal(`hi,b`, rs)

	httpErr := &http.Error{}
	rsp, err = client.R().SetError(httpErr).Get(`hi`)
	r.NoError(err)
	r.Equal(400, rsp.StatusCode())
	r.Equal(400, httpErr.Status())
	r.Equal(util.ErrCodeIllegalArg, httpErr.Code())
	r.Equal(`parameter 'name' must not be null or empty`, httpErr.Msg())
}

func TestErrHandler(t *testing.T) {
	r := require.New(t)
	client := newClient(t, http.NewMWErrorHandler())

	send := func(v string, expectStatus, expectCode int, expectMsg string) {
		httpErr := &http.Error{}
		rsp, err := client.R().SetQueryParam(`v`, v).SetError(httpErr).Get(`err`)
		r.NoError(err)
		r.Equal(expectStatus, rsp.StatusCode(), v)

		if expectStatus == 200 {
			return
		}

		r.Equal(expectCode, httpErr.Code(), v)
		r.Equal(expectMsg, httpErr.Msg(), v)
	}

	send(`e1`, 500, util.ErrCodeUnknown, `e1`)
	send(`e2`, 400, util.ErrCodeIllegalArg, `v[e2] is invalid`)
	send(`e3`, 400, util.ErrCodeIllegalArg, `(4)参数错误`)
	send(`e4`, 429, 429001, `请求太频繁`)
	send(`e5`, 200, 0, ``)
	send(`panic`, 500, util.ErrCodeUnknown, `服务器崩溃->故意崩溃`)

	//handler没有发送响应，默认返回200
	send(`nil`, 200, 0, ``)
}

func TestValidateErrHandler(t *testing.T) {
	r := require.New(t)
	client := newClient(t, http.NewMWErrorHandler())

	send := func(tag string, user *User, expectStatus, expectCode int) *http.Error {
		httpErr := &http.Error{}
		rsp, err := client.R().SetBody(user).SetError(httpErr).Post(`user`)
		r.NoError(err)
		r.Equal(expectStatus, rsp.StatusCode(), tag)

		if expectStatus != 200 {
			r.Equal(expectCode, httpErr.Code(), tag)
		}

		return httpErr
	}

	//binding校验失败
	send(`NoName`, &User{Age: 1}, 400, util.ErrCodeUnknown)
	send(`BlankName`, &User{Name: ` `, Age: 1}, 200, 0) //空白字符串不是空值

	//ozzo校验失败，错误码为rule.ErrCode
	e := send(`NoAge`, &User{Name: `b`}, 400, util.ErrCodeIllegalArg)
	r.Equal(`age: 年龄必须大于0.`, e.Msg())

	send(`OK`, &User{Name: `b`, Age: 10}, 200, 0)
}

func TestRspErrField(t *testing.T) {
	r := require.New(t)

	option := http.MustNewMWErrorHandlerOptionFromCfgFile(`./testdata/http_err`)
	r.True(option.EnableLog400Err)
	r.False(option.DisableParseHttpStatusFromErrCode)
	r.Equal(`err`, option.RspErrField)

	client := newClient(t, http.NewMWErrorHandlerFromOption(option))

	rs := &struct {
		Err *http.Error `json:"err"`
	}{}

	rsp, err := client.R().SetError(rs).Get(`hi`)
	r.NoError(err)
	r.Equal(400, rsp.StatusCode())
	r.NotNil(rs.Err)
	r.Equal(`parameter 'name' must not be null or empty`, rs.Err.Msg())

	r.Panics(func() { http.MustNewMWErrorHandlerOptionFromCfgFile(`./testdata/not_exist`) })
	r.Panics(func() { http.NewMWErrorHandlerFromOption(nil) })
}

func TestError(t *testing.T) {
	r := require.New(t)

	cause := precheck.NewError(`name is empty`)
	e := http.NewPrecheckError(cause)
	r.Equal(400, e.Status())
	r.Equal(util.ErrCodeIllegalArg, e.Code())
	r.Equal(`name is empty`, e.Error())
	r.True(errors.Is(e, precheck.ErrIllegalArg))

	data, err := e.MarshalJSON()
	r.NoError(err)
	r.JSONEq(`{"status":400,"code":4,"msg":"name is empty"}`, string(data))

	e2 := &http.Error{}
	r.NoError(e2.UnmarshalJSON(data))
	r.Equal(e.Status(), e2.Status())
	r.Equal(e.Msg(), e2.Msg())

	e3 := http.New500Error(util.ErrCodeInternal, errors.New(`e3`), `出错了`)
	r.Equal(`出错了->e3`, e3.Error())

	var e4 *http.Error
	r.True(e4.OK())
	r.True(http.IsError(e3))
}

func TestClient(t *testing.T) {
	r := require.New(t)
	client := newClient(t, http.NewMWErrorHandler())

	r.NoError(http.ToError(client.R().SetQueryParam(`name`, `b`).Get(`hi`)))

	//客户端默认解析错误响应为*http.Error
	err := http.ToError(client.R().Get(`hi`))
	e, ok := http.AsError(err)
	r.True(ok)
	r.Equal(400, e.Status())
	r.Equal(util.ErrCodeIllegalArg, e.Code())
	r.Equal(`parameter 'name' must not be null or empty`, e.Msg())

	err = http.ToError(client.R().Get(`not_exist`))
	e, ok = http.AsError(err)
	r.True(ok)
	r.Equal(404, e.Status())
	r.Equal(util.ErrCodeNotFound, e.Code())

	r.Panics(func() { http.MustNewClient(nil) })
}

package http

import (
	"net/http"
	"runtime/debug"
	"sort"
	"strconv"

	"github.com/bingooh/b-go-precheck/precheck"
	"github.com/bingooh/b-go-precheck/slog"
	"github.com/bingooh/b-go-precheck/util"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// MWErrorHandlerToHttpErrHook 回调函数，解析错误对象为http.Error
type MWErrorHandlerToHttpErrHook func(ctx *gin.Context, handler *MWErrorHandler) *Error

// MWErrorHandlerSendRspHook 回调函数，发送错误响应
type MWErrorHandlerSendRspHook func(ctx *gin.Context, handler *MWErrorHandler, err *Error)

// MWErrorHandler 错误处理中间件
// handler可直接调用precheck检查参数，检查失败的崩溃或错误都将转换为400响应
type MWErrorHandler struct {
	logger                            *zap.Logger
	toHttpErrHook                     MWErrorHandlerToHttpErrHook
	sendRspHook                       MWErrorHandlerSendRspHook
	rspErrField                       string //错误对象对应的响应字段名称
	enableLog400Err                   bool   //是否输出400错误的日志
	disableParseHttpStatusFromErrCode bool   //是否从错误码里抽取前3位作为http响应状态码。注意：仅解析至少为4位数的错误码
}

func NewMWErrorHandler() *MWErrorHandler {
	return &MWErrorHandler{
		logger: newLogger(`MWErrorHandler`),
	}
}

func NewMWErrorHandlerFromOption(option *MWErrorHandlerOption) *MWErrorHandler {
	o := option.MustNormalize()

	return NewMWErrorHandler().
		EnableLog400Err(o.EnableLog400Err).
		DisableParseHttpStatusFromErrCode(o.DisableParseHttpStatusFromErrCode).
		WithRspErrField(o.RspErrField)
}

func MustNewMWErrorHandlerFromCfgFile(file string) *MWErrorHandler {
	return NewMWErrorHandlerFromOption(MustNewMWErrorHandlerOptionFromCfgFile(file))
}

func (h *MWErrorHandler) EnableLog400Err(enable bool) *MWErrorHandler {
	h.enableLog400Err = enable
	return h
}

func (h *MWErrorHandler) DisableParseHttpStatusFromErrCode(disable bool) *MWErrorHandler {
	h.disableParseHttpStatusFromErrCode = disable
	return h
}

func (h *MWErrorHandler) WithRspErrField(field string) *MWErrorHandler {
	h.rspErrField = field
	return h
}

func (h *MWErrorHandler) WithSendRspHook(fn MWErrorHandlerSendRspHook) *MWErrorHandler {
	h.sendRspHook = fn
	return h
}

func (h *MWErrorHandler) WithToHttpErrHook(fn MWErrorHandlerToHttpErrHook) *MWErrorHandler {
	h.toHttpErrHook = fn
	return h
}

func (h *MWErrorHandler) sendErrRsp(c *gin.Context, httpErr *Error, isPanicErr bool) {
	if httpErr == nil {
		return
	}

	if h.enableLog400Err || httpErr.Status() > http.StatusBadRequest {
		fields := []zap.Field{
			zap.Int(`code`, httpErr.Code()), zap.Int(`status`, httpErr.Status()),
			zap.String(`method`, c.Request.Method), zap.String(`url`, c.Request.URL.String()),
		}

		if precheck.IsIllegalArgErr(httpErr.Unwrap()) {
			fields = append(fields, slog.NewPrecheckFields(httpErr.Unwrap())...)
		} else {
			fields = append(fields, zap.Error(httpErr))
		}

		if isPanicErr && httpErr.Status() > http.StatusBadRequest {
			fields = append(fields, zap.ByteString(`stack`, debug.Stack()))
		}

		h.logger.Error(`http请求出错`, fields...)
	}

	if h.sendRspHook != nil {
		h.sendRspHook(c, h, httpErr)
		return
	}

	if len(h.rspErrField) == 0 {
		c.JSON(httpErr.status, httpErr)
		return
	}

	c.JSON(httpErr.status, gin.H{h.rspErrField: httpErr})
}

// Handle 处理请求
func (h *MWErrorHandler) Handle(c *gin.Context) {
	defer util.OnExit(func(err error) {
		if err != nil {
			h.sendErrRsp(c, h.panicToHttpErr(err), true)
			return
		}

		if !c.IsAborted() && len(c.Errors) > 0 {
			//如果handler调用过c.Abort()，即handler自行发送响应，则不处理错误
			h.sendErrRsp(c, h.ToHttpErr(c), false)
		}
	})

	c.Next()
}

func (h *MWErrorHandler) panicToHttpErr(err error) *Error {
	if precheck.IsIllegalArgErr(err) {
		return NewPrecheckError(err)
	}

	return New500Error(util.GetBizErrCode(err), err, `服务器崩溃`)
}

// IsValidationErr 是否为验证错误，包括检查失败错误
func (h *MWErrorHandler) IsValidationErr(err error) bool {
	if e, ok := err.(*gin.Error); ok {
		if e.Type == gin.ErrorTypeBind {
			//调用c.MustBind()会返回此错误类型
			return true
		}

		err = e.Err //获取cause
	}

	if precheck.IsIllegalArgErr(err) {
		return true
	}

	switch err.(type) {
	case validator.ValidationErrors, validation.Errors, validation.Error:
		return true
	default:
		return false
	}
}

func (h *MWErrorHandler) ToHttpErrCode(err error) int {
	if e, ok := err.(*gin.Error); ok {
		err = e.Err
	}

	//只取第1个错误，按字段名称排序
	if errs, ok := err.(validation.Errors); ok && len(errs) > 0 {
		keys := make([]string, 0, len(errs))
		for k := range errs {
			keys = append(keys, k)
		}

		sort.Strings(keys)
		err = errs[keys[0]]
	}

	if e, ok := err.(validation.Error); ok {
		if code, ee := strconv.Atoi(e.Code()); ee == nil {
			return code
		}
	}

	return util.GetBizErrCode(err)
}

func (h *MWErrorHandler) ToHttpErrStatus(code int) int {
	if code < 1000 || h.disableParseHttpStatusFromErrCode {
		return util.ToHttpStatus(code, http.StatusInternalServerError)
	}

	v := strconv.Itoa(code)[:3]
	s, _ := strconv.Atoi(v)
	return s
}

func (h *MWErrorHandler) ToHttpErr(c *gin.Context) *Error {
	if len(c.Errors) == 0 {
		return nil
	}

	if h.toHttpErrHook != nil {
		return h.toHttpErrHook(c, h)
	}

	err := c.Errors.Last()
	if e, ok := AsError(err.Err); ok {
		return e
	}

	if e, ok := precheck.AsError(err.Err); ok {
		return NewPrecheckError(e)
	}

	code := h.ToHttpErrCode(err)
	if h.IsValidationErr(err) {
		return New400Error(code, err.Error())
	}

	return NewError(h.ToHttpErrStatus(code), code, err.Error())
}

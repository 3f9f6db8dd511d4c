package rpc

import (
	"context"

	"github.com/bingooh/b-go-precheck/conf"
	"github.com/bingooh/b-go-precheck/precheck"
	"github.com/bingooh/b-go-precheck/slog"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// MWErrorOption 错误处理中间件配置，默认配置文件conf/rpc_err
type MWErrorOption struct {
	LogPrecheckErr bool //是否输出服务端检查失败错误的日志
}

func NewMWErrorOptionFromCfgFile(file string) (*MWErrorOption, error) {
	o := &MWErrorOption{}
	if err := conf.Load(o, file); err != nil {
		return nil, err
	}

	return o, nil
}

// MWError 错误处理中间件，用于转换接口返回的错误对象
type MWError struct {
	logger         *zap.Logger
	onHandle       MWErrorOnHandle
	logPrecheckErr bool
}

// MWErrorOnHandle 拦截器回调函数，用于转换接口返回的错误
// 接口返回的错误对象，默认将转换为：
// - 服务端拦截器：转换为status.Error，检查失败错误转换为codes.InvalidArgument
// - 客户端拦截器：转换为util.BizError
type MWErrorOnHandle func(ctx context.Context, method string, isFromServer bool, cause error) error

func defaultMWErrorOnHandle(ctx context.Context, method string, isFromServer bool, cause error) error {
	if isFromServer {
		return ToRpcErr(cause)
	}

	return ToBizErr(cause)
}

func NewMWError() *MWError {
	return NewMWErrorWithHandler(nil)
}

func NewMWErrorWithHandler(fn MWErrorOnHandle) *MWError {
	if fn == nil {
		fn = defaultMWErrorOnHandle
	}

	return &MWError{logger: newLogger(`MWError`), onHandle: fn}
}

func NewMWErrorFromOption(option *MWErrorOption) *MWError {
	o := precheck.NotNil(option, `option为空`)
	return NewMWError().LogPrecheckErr(o.LogPrecheckErr)
}

func (s *MWError) LogPrecheckErr(enable bool) *MWError {
	s.logPrecheckErr = enable
	return s
}

func (s *MWError) WithLogger(logger *zap.Logger) *MWError {
	s.logger = precheck.ParamNotNil(logger, `logger`)
	return s
}

func (s *MWError) handle(ctx context.Context, method string, isFromServer bool, cause error) error {
	if isFromServer && s.logPrecheckErr && precheck.IsIllegalArgErr(cause) {
		fields := append([]zap.Field{zap.String(`method`, method)}, slog.NewPrecheckFields(cause)...)
		s.logger.Warn(`检查参数失败`, fields...)
	}

	return s.onHandle(ctx, method, isFromServer, cause)
}

func (s *MWError) NewUnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) (err error) {
		if err = invoker(ctx, method, req, reply, cc, opts...); err != nil {
			err = s.handle(ctx, method, false, err)
		}
		return
	}
}

// NewStreamClientInterceptor 服务端返回的错误需等到读取第1个消息时才能获取，此拦截器仅转换创建流的错误
func (s *MWError) NewStreamClientInterceptor() grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (cs grpc.ClientStream, err error) {
		if cs, err = streamer(ctx, desc, cc, method, opts...); err != nil {
			err = s.handle(ctx, method, false, err)
		}

		return
	}
}

func (s *MWError) NewUnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		if resp, err = handler(ctx, req); err != nil {
			err = s.handle(ctx, info.FullMethod, true, err)
		}
		return
	}
}

func (s *MWError) NewStreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		if err = handler(srv, ss); err != nil {
			err = s.handle(ss.Context(), info.FullMethod, true, err)
		}
		return
	}
}

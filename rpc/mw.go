package rpc

import (
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type MW interface {
	NewUnaryClientInterceptor() grpc.UnaryClientInterceptor
	NewStreamClientInterceptor() grpc.StreamClientInterceptor
	NewUnaryServerInterceptor() grpc.UnaryServerInterceptor
	NewStreamServerInterceptor() grpc.StreamServerInterceptor
}

var _ MW = (*MWError)(nil)

// NewPrecheckUnaryServerInterceptor 组合日志/错误处理/崩溃恢复拦截器，handler可直接调用precheck检查参数
// 拦截器顺序：日志->错误处理->崩溃恢复，日志拦截器可获取最终的错误码
// 检查失败的崩溃交由mw转换，mw为nil则使用NewMWError()
func NewPrecheckUnaryServerInterceptor(logger *zap.Logger, mw *MWError) grpc.UnaryServerInterceptor {
	return grpc_middleware.ChainUnaryServer(
		LogUnaryServerInterceptor(logger),
		orDefaultMWError(mw).NewUnaryServerInterceptor(),
		grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPrecheckErr)),
	)
}

func NewPrecheckStreamServerInterceptor(logger *zap.Logger, mw *MWError) grpc.StreamServerInterceptor {
	return grpc_middleware.ChainStreamServer(
		LogStreamServerInterceptor(logger),
		orDefaultMWError(mw).NewStreamServerInterceptor(),
		grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPrecheckErr)),
	)
}

// NewPrecheckServerOptions 用于grpc.NewServer()
func NewPrecheckServerOptions(logger *zap.Logger, mw *MWError) []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.UnaryInterceptor(NewPrecheckUnaryServerInterceptor(logger, mw)),
		grpc.StreamInterceptor(NewPrecheckStreamServerInterceptor(logger, mw)),
	}
}

func orDefaultMWError(mw *MWError) *MWError {
	if mw == nil {
		return NewMWError()
	}

	return mw
}

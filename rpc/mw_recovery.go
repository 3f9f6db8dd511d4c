package rpc

import (
	"runtime/debug"

	"github.com/bingooh/b-go-precheck/precheck"
	"github.com/bingooh/b-go-precheck/slog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoveryHandler 检查失败的崩溃转换为codes.InvalidArgument，其他崩溃转换为codes.Internal
func RecoveryHandler(p interface{}) error {
	err := recoverPrecheckErr(p)
	if precheck.IsIllegalArgErr(err) {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return err
}

// 检查失败的崩溃返回*precheck.Error，由外层MWError转换和输出日志
func recoverPrecheckErr(p interface{}) error {
	if err, ok := p.(error); ok && precheck.IsIllegalArgErr(err) {
		newLogger(`recovery`).Debug(`检查参数失败`, slog.NewPrecheckFields(err)...)
		return err
	}

	newLogger(`recovery`).Error(`服务器崩溃`, zap.Any(`panic`, p), zap.ByteString(`stack`, debug.Stack()))
	return status.Errorf(codes.Internal, `%v`, p)
}

func RecoveryUnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(RecoveryHandler))
}

func RecoveryStreamServerInterceptor() grpc.StreamServerInterceptor {
	return grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(RecoveryHandler))
}

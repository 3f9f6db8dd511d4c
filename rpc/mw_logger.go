package rpc

import (
	"github.com/bingooh/b-go-precheck/slog"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
)

func newLogger(tag string) *zap.Logger {
	return slog.NewLogger(`rpc`, tag)
}

// NewGRPCLogger 创建用于输出grpc日志的日志器，默认读取conf/log_grpc配置文件，如无则调用slog.NewLogger()
func NewGRPCLogger(tag string) *zap.Logger {
	if logger, err := slog.NewLoggerFromCfgFile(`log_grpc`); err == nil {
		return logger.With(slog.NewTagField(`grpc`, tag))
	}

	return slog.NewLogger(`grpc`, tag)
}

// CodeToLogLevel 错误码到日志级别，参数错误属于调用方错误，使用Warn级别
func CodeToLogLevel(code codes.Code) zapcore.Level {
	switch code {
	case codes.OK:
		return zapcore.InfoLevel
	case codes.InvalidArgument, codes.FailedPrecondition, codes.Canceled, codes.Unknown, codes.DeadlineExceeded:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// LogUnaryServerInterceptor 服务端日志拦截器
func LogUnaryServerInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return grpc_zap.UnaryServerInterceptor(logger, grpc_zap.WithLevels(CodeToLogLevel))
}

func LogStreamServerInterceptor(logger *zap.Logger) grpc.StreamServerInterceptor {
	return grpc_zap.StreamServerInterceptor(logger, grpc_zap.WithLevels(CodeToLogLevel))
}

// LogUnaryClientInterceptor 客户端日志拦截器
func LogUnaryClientInterceptor(logger *zap.Logger) grpc.UnaryClientInterceptor {
	return grpc_zap.UnaryClientInterceptor(logger, grpc_zap.WithLevels(CodeToLogLevel))
}

package slog

import (
	"github.com/bingooh/b-go-precheck/precheck"
	"go.uber.org/zap"
)

const (
	LogPrecheckFieldName = `precheck`
	LogCauseFieldName    = `cause`
)

// NewPrecheckFields 检查失败错误的日志字段，err不是检查失败错误则返回zap.Error(err)
func NewPrecheckFields(err error) []zap.Field {
	e, ok := precheck.AsError(err)
	if !ok || e == nil {
		return []zap.Field{zap.Error(err)}
	}

	fields := []zap.Field{zap.String(LogPrecheckFieldName, e.Error())}
	if cause := e.Unwrap(); cause != nil {
		fields = append(fields, zap.NamedError(LogCauseFieldName, cause))
	}

	return fields
}

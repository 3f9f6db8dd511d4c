package slog_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bingooh/b-go-precheck/precheck"
	"github.com/bingooh/b-go-precheck/slog"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSlog(t *testing.T) {
	logger := slog.NewLogger(`test`)
	logger.Debug(`debug`)
	logger.Info(`info`)
	logger.Warn(`warn`)
	logger.Error(`err`, zap.Error(errors.New(`this is err`)))
}

func TestLoggerFromCfgFile(t *testing.T) {
	r := require.New(t)

	fp := filepath.Join(t.TempDir(), `app.log`)
	t.Setenv(`BPC_TEST_LOG_FILE`, fp)

	cfg, err := slog.NewConfFromFile(`./testdata/log`)
	r.NoError(err)
	r.Equal(zapcore.WarnLevel, cfg.Level)
	r.Equal(fp, cfg.LogFilePath)

	logger := slog.NewLoggerFromCfg(*cfg).With(slog.NewTagField(`test`, `file`))
	logger.Info(`info`) //低于日志级别，不输出
	logger.Warn(`warn`)
	r.NoError(logger.Sync())

	data, err := os.ReadFile(fp)
	r.NoError(err)

	content := string(data)
	r.False(strings.Contains(content, `"msg":"info"`))
	r.True(strings.Contains(content, `"msg":"warn"`))
	r.True(strings.Contains(content, `"tag":"test.file"`))

	_, err = slog.NewLoggerFromCfgFile(`./testdata/not_exist`)
	r.Error(err)
}

func TestRootLogger(t *testing.T) {
	r := require.New(t)

	old := slog.RootLogger()
	defer slog.InitRootLogger(old)

	core, logs := observer.New(zapcore.InfoLevel)
	slog.InitRootLogger(zap.New(core))

	slog.NewLogger(`a`, `b`).Info(`hello`)
	r.Equal(1, logs.Len())
	r.Equal(`a.b`, logs.All()[0].ContextMap()[slog.LogTagFieldName])

	r.PanicsWithError(`parameter 'logger' must not be null!`, func() { slog.InitRootLogger(nil) })
}

func TestPrecheckFields(t *testing.T) {
	r := require.New(t)

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	cause := errors.New(`cause`)
	err := precheck.CheckExpression(false, cause, `age is invalid`)
	logger.Warn(`precheck`, slog.NewPrecheckFields(err)...)
	logger.Warn(`other`, slog.NewPrecheckFields(cause)...)

	entries := logs.All()
	r.Len(entries, 2)

	m := entries[0].ContextMap()
	r.Equal(`age is invalid->cause`, m[slog.LogPrecheckFieldName])
	r.Equal(`cause`, m[slog.LogCauseFieldName])

	m = entries[1].ContextMap()
	r.Equal(`cause`, m[`error`])
	r.NotContains(m, slog.LogPrecheckFieldName)
}

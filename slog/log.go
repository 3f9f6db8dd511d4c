package slog

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/bingooh/b-go-precheck/conf"
	"github.com/bingooh/b-go-precheck/precheck"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var rootLogger atomic.Value

func init() {
	rootLogger.Store(NewDebugLogger(``, zapcore.DebugLevel))
}

func NewTagField(tags ...string) zap.Field {
	return zap.String(LogTagFieldName, strings.Join(tags, `.`))
}

func NewConfFromFile(cfgFilePath string) (*Conf, error) {
	cfg := &Conf{}
	if err := conf.Load(cfg, cfgFilePath); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newEncoder(cfg Conf) zapcore.Encoder {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	if !cfg.DisableColor && cfg.Encoding != `json` {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if !cfg.EnableShortCaller {
		encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	}

	if cfg.Encoding == `json` {
		return zapcore.NewJSONEncoder(encoderCfg)
	}

	return zapcore.NewConsoleEncoder(encoderCfg)
}

// lumberjack.Logger自带锁，控制台输出需使用zapcore.Lock()
func newWriteSyncer(cfg Conf) zapcore.WriteSyncer {
	var writers []zapcore.WriteSyncer

	if cfg.WriteToConsole {
		writers = append(writers, zapcore.Lock(os.Stdout))
	}

	if cfg.WriteToLogFile {
		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFilePath,
			MaxSize:    cfg.LogFileMaxSize,
			MaxBackups: cfg.LogFileMaxBackups,
			MaxAge:     cfg.LogFileMaxAge,
			Compress:   cfg.CompressLogFile,
		}))
	}

	return zapcore.NewMultiWriteSyncer(writers...)
}

func NewLoggerFromCfg(cfg Conf) *zap.Logger {
	cfg = cfg.Normalize()
	level := zap.NewAtomicLevelAt(cfg.Level)

	var options []zap.Option
	if cfg.Debug {
		options = append(options, zap.Development())
	}

	if !cfg.DisableCaller {
		options = append(options, zap.AddCaller(), zap.AddCallerSkip(cfg.CallerSkip))
	}

	if cfg.EnableStackTrace {
		options = append(options, zap.AddStacktrace(level))
	}

	core := zapcore.NewCore(newEncoder(cfg), newWriteSyncer(cfg), level)
	return zap.New(core, options...)
}

func NewLoggerFromCfgFile(cfgFilePath string) (*zap.Logger, error) {
	cfg, err := NewConfFromFile(cfgFilePath)
	if err != nil {
		return nil, err
	}

	return NewLoggerFromCfg(*cfg), nil
}

func RootLogger() *zap.Logger {
	return rootLogger.Load().(*zap.Logger)
}

// InitRootLogger 使用自定义的rootLogger
func InitRootLogger(logger *zap.Logger) {
	rootLogger.Store(precheck.ParamNotNil(logger, `logger`))
}

func InitRootLoggerFromCfg(cfg Conf) {
	InitRootLogger(NewLoggerFromCfg(cfg))
}

// MustInitDefaultRootLogger 初始化默认日志组件，读取conf/log配置文件，如无则输出到控制台
func MustInitDefaultRootLogger() {
	cfg, err := NewConfFromFile(LogConfFileName)
	if err != nil {
		cfg = &Conf{WriteToConsole: true}
		log.Printf("读取默认日志配置文件出错,将使用默认日志配置[%v]\n", err)
	}

	InitRootLoggerFromCfg(*cfg)
}

// Flush 清空缓存的日志，此方法应在主程序退出前调用
func Flush() error {
	return RootLogger().Sync()
}

func NewLogger(tags ...string) *zap.Logger {
	return RootLogger().With(NewTagField(tags...))
}

// NewDebugLogger 用于调试的日志器
func NewDebugLogger(tag string, level zapcore.Level) *zap.Logger {
	c := zap.NewDevelopmentConfig()

	c.Level = zap.NewAtomicLevelAt(level)
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeCaller = zapcore.FullCallerEncoder
	c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := c.Build()
	if err != nil {
		panic(fmt.Errorf(`create debug logger err[%v]`, err))
	}

	if tag == "" {
		return logger
	}

	return logger.With(NewTagField(tag))
}

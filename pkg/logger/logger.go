package logger

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger writes JSON logs to fileSyncer and stderr. Unknown levels fall back to info.
func NewLogger(serviceName string, logLevel string, fileSyncer zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil || logLevel == "" {
		level = zap.InfoLevel
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.NewMultiWriteSyncer(
		fileSyncer, zapcore.Lock(os.Stderr)), level)
	return zap.New(core, zap.AddCaller()).With(zap.String("service.name", serviceName))
}

// ReloadOnSignal reopens the log file every time the process receives SIGHUP (logrotate).
// The returned function stops listening.
func ReloadOnSignal(logger *zap.Logger, ws *ReopenableWriteSyncer) func() {
	c := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			select {
			case <-c:
				logger.Info("receive logrotate SIGHUP, reloading log file")
				if e := ws.Reload(); e != nil {
					logger.Error("failed to reload log file", zap.Error(e))
				} else {
					logger.Info("successfully reloaded log file")
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(c)
		close(done)
	}
}

package facade

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewRotatingLogger builds a *zap.Logger that writes JSON-encoded entries
// to a size/age-rotated file, grounded on the pack's
// wilsonricardopereirasilveira-grid-trading-btc-binance/internal/logger/logger.go
// (lumberjack.Logger fields) adapted to zap's WriteSyncer contract instead
// of slog's Handler, since this module's ambient logging stack is zap
// throughout (rest.Configuration.Logger, streaming's worker logger).
//
// This is an optional sink: callers content with stderr logging should
// just build a *zap.Logger themselves (zap.NewProduction(), etc.) and set
// Configuration.Logger directly; NewRotatingLogger exists for the common
// case of a long-running streaming process that wants its observability
// output (state transitions, reconnect attempts, dropped frames) on disk.
func NewRotatingLogger(path string, maxSizeMB, maxBackups, maxAgeDays int) *zap.Logger {
	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(sink), zapcore.InfoLevel)
	return zap.New(core)
}

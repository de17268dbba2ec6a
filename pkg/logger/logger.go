// Package logger provides a structured, levelled logger built on log/slog.
//
// WithCtx returns a logger with the request ID already attached, so every
// log line from a handler is correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("payment verified", "order_id", id)
//	// → time=... level=INFO msg="payment verified" request_id=a1b2c3d4 order_id=17
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/chitralaya/chitralaya/config"
)

var (
	L         *slog.Logger
	mongoSink *MongoHandler
)

func baseHandler() slog.Handler {
	if config.IsProduction() {
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		return slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	return slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
}

func init() {
	L = slog.New(baseHandler())
	slog.SetDefault(L)
}

// AttachMongoSink tees log records into MongoDB alongside stdout.
func AttachMongoSink(uri, db string) error {
	h, err := NewMongoHandler(uri, db, "logs")
	if err != nil {
		return err
	}
	mongoSink = h
	SetHandler(NewMultiHandler(baseHandler(), h))
	return nil
}

// CloseSinks flushes and closes the Mongo sink during shutdown.
func CloseSinks() {
	if mongoSink != nil {
		mongoSink.Close()
		mongoSink = nil
	}
}

// SetHandler swaps the active handler. Used at boot when the MongoDB log
// sink is configured.
func SetHandler(h slog.Handler) {
	L = slog.New(h)
	slog.SetDefault(L)
}

// ctxKey stores the per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the request-scoped logger injected by the Logger
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a request-scoped *slog.Logger into ctx. Called by the
// Logger middleware; application code rarely needs it.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }

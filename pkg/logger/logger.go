// Package logger provides a structured, levelled logger built on log/slog.
//
// The key extension over plain slog is WithCtx: it creates a logger with the
// request ID already attached, so every log line from a handler is
// automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order created", "order_id", o.ID, "total", o.TotalAmount)
//	// time=... level=INFO msg="order created" request_id=a1b2c3d4 order_id=7 total=48.96
//
// An optional MongoDB audit sink can be fanned in with EnableAudit; every
// record then lands both on stdout and in the audit collection.
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/bizdesk/config"
)

var L *slog.Logger

// audit is the mongo sink, when enabled.
var audit *MongoHandler

func init() {
	L = slog.New(baseHandler())
	slog.SetDefault(L)
}

func baseHandler() slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	switch config.AppEnv() {
	case "production", "prod":
		opts.Level = slog.LevelInfo
		return slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	default:
		return slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
	}
}

// EnableAudit attaches a MongoDB audit sink. Every subsequent record is sent
// to stdout and, asynchronously, to the given collection. Call CloseAudit on
// shutdown to flush.
func EnableAudit(uri, db, collection string) error {
	mh, err := NewMongoHandler(uri, db, collection)
	if err != nil {
		return err
	}
	audit = mh
	L = slog.New(NewMultiHandler(baseHandler(), mh))
	slog.SetDefault(L)
	return nil
}

// CloseAudit flushes and disconnects the audit sink, if one was enabled.
func CloseAudit() {
	if audit != nil {
		audit.Close()
		audit = nil
	}
}

// ─────────────────────────────────────────────
// Context-aware logger
// ─────────────────────────────────────────────

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the *slog.Logger stored in ctx by the Logger middleware,
// pre-tagged with the request_id. If none is present the base logger is
// returned unchanged.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware; application code rarely needs it.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }

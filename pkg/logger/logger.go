// Package logger is the process-wide structured logger.
//
// Call sites pass a message followed by alternating key/value pairs:
//
//	logger.Info("Server starting", "address", addr)
//	logger.Error("Failed to load competitors", "hotel_id", id, "error", err)
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	log = newLogger("production", os.Stderr)
}

// Init configures the global logger for the given environment. Development
// gets a console writer at debug level, everything else JSON at info level.
// LOG_LEVEL overrides the level in both cases.
func Init(env string) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(env, os.Stderr)
}

// SetOutput redirects the global logger, mainly for tests.
func SetOutput(env string, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(env, w)
}

func newLogger(env string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.MessageFieldName = "message"

	level := zerolog.InfoLevel
	out := w
	if isDevelopment(env) {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	if lv := os.Getenv("LOG_LEVEL"); lv != "" {
		level = parseLevel(lv)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func isDevelopment(env string) bool {
	switch strings.ToLower(env) {
	case "development", "dev", "local":
		return true
	}
	return false
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func Debug(msg string, keyvals ...any) {
	emit(current().Debug(), msg, keyvals)
}

func Info(msg string, keyvals ...any) {
	emit(current().Info(), msg, keyvals)
}

func Warn(msg string, keyvals ...any) {
	emit(current().Warn(), msg, keyvals)
}

func Error(msg string, keyvals ...any) {
	emit(current().Error(), msg, keyvals)
}

// Fatal logs and exits the process.
func Fatal(msg string, keyvals ...any) {
	emit(current().Fatal(), msg, keyvals)
}

// emit attaches key/value pairs to the event. A value without a string key
// (for example a bare error) is logged under "error" or "arg<N>".
func emit(ev *zerolog.Event, msg string, keyvals []any) {
	if ev == nil {
		return
	}
	for i := 0; i < len(keyvals); i++ {
		key, ok := keyvals[i].(string)
		if !ok || i == len(keyvals)-1 {
			v := keyvals[i]
			if err, isErr := v.(error); isErr {
				ev = ev.AnErr("error", err)
			} else {
				ev = ev.Interface(fmt.Sprintf("arg%d", i), v)
			}
			continue
		}
		ev = addField(ev, key, keyvals[i+1])
		i++
	}
	ev.Msg(msg)
}

func addField(ev *zerolog.Event, key string, val any) *zerolog.Event {
	switch v := val.(type) {
	case error:
		return ev.AnErr(key, v)
	case string:
		return ev.Str(key, v)
	case int:
		return ev.Int(key, v)
	case int64:
		return ev.Int64(key, v)
	case uint:
		return ev.Uint(key, v)
	case uint64:
		return ev.Uint64(key, v)
	case float64:
		return ev.Float64(key, v)
	case bool:
		return ev.Bool(key, v)
	case time.Duration:
		return ev.Dur(key, v)
	case time.Time:
		return ev.Time(key, v)
	default:
		return ev.Interface(key, v)
	}
}

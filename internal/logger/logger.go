// Package logger wraps zerolog.Logger with the constructors and the Echo
// request logging middleware used by the service.
package logger

import (
	"io"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// New returns a JSON logger writing to stdout at info level, or debug level
// when debug is set.
func New(role string, debug bool) *Logger {
	return NewWithWriter(os.Stdout, role, debug)
}

// NewWithWriter is New with an explicit output.
func NewWithWriter(w io.Writer, role string, debug bool) *Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	l := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()
	return &Logger{l}
}

// Nop discards all output.  Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// RequestLogger logs one line per request.  Handler errors are passed to the
// Echo error handler first so the logged status matches what the client got.
func RequestLogger(l *Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			var ev *zerolog.Event
			if v.Error != nil {
				ev = l.Error().Err(v.Error)
			} else {
				ev = l.Info()
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP)
			if v.RequestID != "" {
				ev.Str("request_id", v.RequestID)
			}
			ev.Msg("request")
			return nil
		},
	})
}

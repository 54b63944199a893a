package patch

import (
	"fmt"
	"log/slog"

	"github.com/rs/zerolog"
)

// Logger is the interface treepatch uses for structured logging.
//
// Implementations treat attrs as alternating key-value pairs, following the
// log/slog convention:
//
//	logger.Debug("applied patch", "index", 3, "op", "add", "path", "/pets/-")
//
// # Usage with log/slog
//
//	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	a := applier.New()
//	a.Logger = patch.NewSlogAdapter(slog.New(handler))
//
// # Usage with zerolog
//
//	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	state, err := applier.Apply(base, patches, applier.WithLogger(patch.NewZerologAdapter(zl)))
type Logger interface {
	// Debug logs at debug level.
	Debug(msg string, attrs ...any)

	// Info logs at info level.
	Info(msg string, attrs ...any)

	// Warn logs at warn level.
	Warn(msg string, attrs ...any)

	// Error logs at error level.
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to every log.
	With(attrs ...any) Logger
}

// NopLogger is a no-op logger that discards all output.
// It is the default logger used when no logger is configured.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger.
func (NopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger.
func (NopLogger) Error(_ string, _ ...any) {}

// With implements Logger.
func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter from a *slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (s *SlogAdapter) Debug(msg string, attrs ...any) {
	s.logger.Debug(msg, attrs...)
}

// Info implements Logger.
func (s *SlogAdapter) Info(msg string, attrs ...any) {
	s.logger.Info(msg, attrs...)
}

// Warn implements Logger.
func (s *SlogAdapter) Warn(msg string, attrs ...any) {
	s.logger.Warn(msg, attrs...)
}

// Error implements Logger.
func (s *SlogAdapter) Error(msg string, attrs ...any) {
	s.logger.Error(msg, attrs...)
}

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

// ZerologAdapter wraps a zerolog.Logger to implement the Logger interface.
// Attribute keys that are not strings are formatted with fmt.Sprint; a
// trailing key without a value is logged under "!BADKEY", as slog does.
// Error values are logged by their message.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new ZerologAdapter.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Debug implements Logger.
func (z *ZerologAdapter) Debug(msg string, attrs ...any) {
	withAttrs(z.logger.Debug(), attrs).Msg(msg)
}

// Info implements Logger.
func (z *ZerologAdapter) Info(msg string, attrs ...any) {
	withAttrs(z.logger.Info(), attrs).Msg(msg)
}

// Warn implements Logger.
func (z *ZerologAdapter) Warn(msg string, attrs ...any) {
	withAttrs(z.logger.Warn(), attrs).Msg(msg)
}

// Error implements Logger.
func (z *ZerologAdapter) Error(msg string, attrs ...any) {
	withAttrs(z.logger.Error(), attrs).Msg(msg)
}

// With implements Logger.
func (z *ZerologAdapter) With(attrs ...any) Logger {
	ctx := z.logger.With()
	for i := 0; i < len(attrs); i += 2 {
		key, val := attrPair(attrs, i)
		if err, ok := val.(error); ok {
			ctx = ctx.AnErr(key, err)
			continue
		}
		ctx = ctx.Interface(key, val)
	}
	return &ZerologAdapter{logger: ctx.Logger()}
}

var _ Logger = (*ZerologAdapter)(nil)

// withAttrs adds key-value pairs to e. A nil event (level disabled) is
// returned unchanged.
func withAttrs(e *zerolog.Event, attrs []any) *zerolog.Event {
	if e == nil {
		return nil
	}
	for i := 0; i < len(attrs); i += 2 {
		key, val := attrPair(attrs, i)
		if err, ok := val.(error); ok {
			e = e.AnErr(key, err)
			continue
		}
		e = e.Interface(key, val)
	}
	return e
}

func attrPair(attrs []any, i int) (string, any) {
	if i+1 >= len(attrs) {
		return "!BADKEY", attrs[i]
	}
	key, ok := attrs[i].(string)
	if !ok {
		key = fmt.Sprint(attrs[i])
	}
	return key, attrs[i+1]
}

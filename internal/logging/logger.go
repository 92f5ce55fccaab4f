package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Field is a single structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Dur creates a duration field.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates a field with the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging surface the engine components write to.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// New returns a Logger writing structured records to w through zerolog.
func New(w io.Writer) Logger {
	return &zerologLogger{l: zerolog.New(w).With().Timestamp().Logger()}
}

// NewWithLevel is New with an explicit minimum level.
func NewWithLevel(w io.Writer, level zerolog.Level) Logger {
	return &zerologLogger{l: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &zerologLogger{l: zerolog.Nop()}
}

type zerologLogger struct {
	l zerolog.Logger
}

func (z *zerologLogger) Debug(msg string, fields ...Field) { emit(z.l.Debug(), msg, fields) }
func (z *zerologLogger) Info(msg string, fields ...Field)  { emit(z.l.Info(), msg, fields) }
func (z *zerologLogger) Warn(msg string, fields ...Field)  { emit(z.l.Warn(), msg, fields) }
func (z *zerologLogger) Error(msg string, fields ...Field) { emit(z.l.Error(), msg, fields) }

// emit appends fields to a zerolog event with their native types so the
// JSON output keeps numbers as numbers.
func emit(e *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case time.Duration:
			e = e.Dur(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	e.Msg(msg)
}

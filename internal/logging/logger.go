// Package logging provides the logging abstraction used across the converter.
// Components depend on the Logger interface; logrus sits behind LogrusAdapter.
package logging

// Logger is the structured logger handed to parsers, the ledger core and the commands.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger carrying err as a field.
	WithError(err error) Logger

	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger

	// Fatal logs and exits the process.
	Fatal(msg string, fields ...Field)
	Fatalf(msg string, args ...interface{})
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Package log provides a named, colored logger used by every component of the
// application.
package log

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-solver/config"
)

var ErrNilWriter = errors.New("logger writer is nil")

// Logger prefixes every line with a colored component name and a colored level tag.
type Logger struct {
	name   string
	color  string
	logger *log.Logger
}

// New creates a Logger for the named component writing to w.
func New(name, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		name:   name,
		color:  color,
		logger: log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.logger.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.name, config.ColorReset, levelColor, level, config.LogColorReset, msg)
}

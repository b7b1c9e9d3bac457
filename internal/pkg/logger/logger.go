// Package logger provides the CLI's structured logging. Output is gated
// behind the NOCTALIA_DEBUG verbose flag so normal runs stay quiet; the
// lipgloss banners are the user-facing surface.
package logger

import (
	"log"
)

// StdLogger writes leveled lines through the standard log package.
type StdLogger struct {
	verbose bool
}

// NewStd builds a logger. With verbose false every method is a no-op.
func NewStd(verbose bool) *StdLogger {
	return &StdLogger{verbose: verbose}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	log.Println("[DEBUG]", msg, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	log.Println("[INFO]", msg, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	log.Println("[WARN]", msg, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	log.Println("[ERROR]", msg, err, fields)
}

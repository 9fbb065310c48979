package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger struct {
	verbose bool
	logger  *log.Logger
	out     io.Writer
}

func New(verbose bool) *Logger {
	return NewWithWriter(verbose, os.Stdout)
}

// NewWithWriter routes all output to w. Tests use this to capture output.
func NewWithWriter(verbose bool, w io.Writer) *Logger {
	return &Logger{
		verbose: verbose,
		logger:  log.New(w, "", log.LstdFlags),
		out:     w,
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logger.Printf("[INFO] "+format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbose {
		l.logger.Printf("[DEBUG] "+format, args...)
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logger.Printf("[ERROR] "+format, args...)
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.logger.Printf("[FATAL] "+format, args...)
	os.Exit(1)
}

func (l *Logger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format, args...)
}

func (l *Logger) Println(v ...interface{}) {
	fmt.Fprintln(l.out, v...)
}

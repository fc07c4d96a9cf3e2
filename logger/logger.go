// Package logger provides logging APIs for debugging the resolution and
// generation pipeline. Output is discarded unless a writer is set.
package logger

import (
	"io"
	"log"
)

var defaultLogger = log.New(io.Discard, "protogen: ", 0)

// SetOutput enables logging to w.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// Reset discards logging output again.
func Reset() {
	defaultLogger.SetOutput(io.Discard)
	defaultLogger.SetPrefix("protogen: ")
}

// SetPrefix changes the prefix of each log line.
func SetPrefix(p string) {
	defaultLogger.SetPrefix(p)
}

func Println(v ...interface{}) {
	defaultLogger.Println(v...)
}

func Printf(format string, v ...interface{}) {
	defaultLogger.Printf(format, v...)
}

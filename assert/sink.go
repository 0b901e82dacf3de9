package assert

import (
	"fmt"
	"io"
	"os"
)

// Sink receives formatted diagnostics for Warning-level failures.
//
// Implementations must be safe for concurrent use; the evaluator may be
// invoked from any goroutine. The zap subpackage provides a structured
// logging adapter; WriterSink covers plain io.Writer destinations.
type Sink interface {
	Emit(message string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(message string)

// Emit calls f with the diagnostic text.
func (f SinkFunc) Emit(message string) {
	f(message)
}

// WriterSink emits diagnostics to an io.Writer, one per line.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing to w. A nil writer falls back to
// stderr.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes the diagnostic followed by a newline. Write errors are
// dropped; diagnostics are best-effort output, never a failure source.
func (s *WriterSink) Emit(message string) {
	if s == nil || s.w == nil {
		fmt.Fprintln(os.Stderr, message)
		return
	}

	fmt.Fprintln(s.w, message)
}

// emit delivers a diagnostic to the sink, falling back to stderr when no
// sink was injected so that failures are never silently lost.
func emit(sink Sink, message string) {
	if sink != nil {
		sink.Emit(message)
		return
	}

	fmt.Fprintln(os.Stderr, message)
}

package zap

import (
	"go.uber.org/zap"

	"github.com/yanngdev/armory/assert"
)

// Sink adapts a zap logger to the assert.Sink interface. Warning-level
// assertion diagnostics are emitted at zap's Warn level.
type Sink struct {
	logger *zap.Logger
}

// Compile-time assertion: *Sink implements assert.Sink.
var _ assert.Sink = (*Sink)(nil)

// NewSink creates a Sink backed by logger.
func NewSink(logger *zap.Logger) *Sink {
	return &Sink{logger: logger}
}

// NewDevelopmentSink creates a Sink backed by a zap development logger,
// suitable for local runs where assertions are compiled in.
func NewDevelopmentSink() (*Sink, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	return NewSink(logger), nil
}

func (s *Sink) must() *zap.Logger {
	if s == nil || s.logger == nil {
		return zap.NewNop()
	}

	return s.logger
}

// Emit implements assert.Sink.
func (s *Sink) Emit(message string) {
	s.must().Warn(message)
}

// Sync flushes buffered diagnostics.
func (s *Sink) Sync() error {
	return s.must().Sync()
}

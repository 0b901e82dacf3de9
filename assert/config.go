package assert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Environment variables read by FromEnv.
const (
	// EnvLevel names the threshold setting. Recognized values are the
	// case-exact level names; an unset or empty value disables all
	// assertions.
	EnvLevel = "ARMORY_ASSERT_LEVEL"

	// EnvQuit names the termination flag. When set to a true boolean value,
	// a failed Error-level assertion requests host termination before the
	// failure propagates.
	EnvQuit = "ARMORY_ASSERT_QUIT"
)

// ErrInvalidQuitFlag is the sentinel error for a malformed termination
// flag value.
var ErrInvalidQuitFlag = errors.New("not a valid quit-on-assertion flag")

// Config carries the threshold and the injected collaborators for an
// Evaluator.
//
// The zero value disables nothing: a zero Threshold is LevelWarning, the
// most verbose setting. Use FromEnv or an explicit Threshold to express the
// intended verbosity.
type Config struct {
	// Threshold is the minimum severity an assertion site needs to be
	// active.
	Threshold Level

	// QuitOnFailure requests host termination via Stopper before an
	// Error-level failure propagates.
	QuitOnFailure bool

	// Sink receives Warning-level diagnostics. Nil falls back to stderr.
	Sink Sink

	// Stopper is the host termination hook. Nil disables the termination
	// request even when QuitOnFailure is set.
	Stopper Stopper
}

// FromEnv builds a Config from the process environment.
//
// An absent level means assertions are disabled; any other unrecognized
// value is a configuration error that callers must treat as fatal at
// startup. The quit flag accepts strconv.ParseBool syntax and defaults to
// false when absent.
func FromEnv() (Config, error) {
	cfg := Config{}

	level, err := ParseLevel(os.Getenv(EnvLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvLevel, err)
	}

	cfg.Threshold = level

	if raw := os.Getenv(EnvQuit); raw != "" {
		quit, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w: %q", EnvQuit, ErrInvalidQuitFlag, raw)
		}

		cfg.QuitOnFailure = quit
	}

	return cfg, nil
}

// defaultEvaluator is the process-wide evaluator behind the package-level
// assertion surface. It is installed once at startup and read-only
// thereafter.
var (
	defaultEvaluator *Evaluator
	defaultMu        sync.RWMutex
)

// Configure installs the process-wide default evaluator used by the
// package-level Warning and Error functions.
//
// It should be called once during startup, before any assertion site is
// evaluated. Subsequent calls are no-ops; the first configuration wins.
//
// Example:
//
//	cfg, err := assert.FromEnv()
//	if err != nil {
//		log.Fatalf("assertion config: %v", err)
//	}
//	assert.Configure(cfg)
func Configure(cfg Config) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultEvaluator != nil {
		return // Already configured
	}

	defaultEvaluator = New(context.Background(), cfg)
}

// Default returns the process-wide evaluator. When Configure has not been
// called it returns a fallback whose threshold is the compiled threshold,
// so the package-level surface honors the build tags out of the box.
func Default() *Evaluator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	if defaultEvaluator != nil {
		return defaultEvaluator
	}

	return fallbackEvaluator
}

// fallbackEvaluator backs Default before Configure runs: compiled
// threshold, stderr sink, no termination hook.
var fallbackEvaluator = New(context.Background(), Config{Threshold: CompiledThreshold})

// ResetDefault clears the process-wide evaluator so Configure can run
// again. This is primarily intended for testing to ensure test isolation.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultEvaluator = nil
}

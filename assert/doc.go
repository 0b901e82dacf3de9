// Package assert provides severity-leveled assertions whose disabled sites
// cost nothing at run time.
//
// An assertion site declares a severity level (Warning or Error), a boolean
// condition wrapped in a thunk, a textual rendering of that condition, and
// an optional message. A site is active when its level is at or above the
// configured threshold; an inactive site never evaluates its condition or
// message.
//
// # Severity Levels
//
// Levels are totally ordered: LevelWarning < LevelError <
// LevelNoAssertions. LevelNoAssertions is a threshold sentinel meaning
// "assertions disabled" and is never a valid site level; the API only
// exposes Warning and Error entry points.
//
//   - Warning: a failure is reported to the injected sink and execution
//     continues.
//   - Error: a failure produces a *FailureError for the caller to
//     propagate, optionally requesting host termination first.
//
// # Compile-Time Elision
//
// The package-level Warning and Error functions gate on CompiledThreshold,
// a constant selected by build tags:
//
//	(no tag)              all sites compiled out (the default)
//	-tags assert_error    Error-level sites compiled in
//	-tags assert_warning  all sites compiled in
//
// Below the compiled threshold the constant comparison makes the entire
// site dead code, so disabled assertions contribute zero cycles and zero
// binary size. This is the central performance guarantee: ship without
// tags and every package-level site vanishes.
//
// # Usage
//
// Configure the process-wide evaluator once at startup:
//
//	cfg, err := assert.FromEnv()
//	if err != nil {
//		log.Fatalf("assertion config: %v", err)
//	}
//	assert.Configure(cfg)
//
// Then declare sites where invariants must hold:
//
//	assert.Warning(func() bool { return speed >= 0 }, "speed >= 0")
//
//	if err := assert.Error(func() bool { return len < cap }, "len < cap", "bound check"); err != nil {
//		return err
//	}
//
// The condition thunk is evaluated at most once and only when the site is
// active; the diagnostic is constructed only when the condition is false.
// The failure text has a fixed layout consumers may pattern-match on:
//
//	Failed assertion:
//		Message: bound check
//		Expression: (len < cap)
//
// # Evaluator Instances
//
// Hosts that prefer dependency injection over the package-level surface can
// construct evaluators directly. Instances gate at run time by their
// configured threshold and carry their own sink and termination hook:
//
//	e := assert.New(ctx, assert.Config{
//		Threshold:     assert.LevelError,
//		QuitOnFailure: true,
//		Sink:          sink,
//		Stopper:       stopper,
//	})
//
// # Failure Propagation
//
// Error-level failures are ordinary errors: this package never recovers
// them, and errors.Is(err, assert.ErrAssertionFailed) identifies them.
// When QuitOnFailure is set the Stopper is invoked exactly once before the
// error is returned; the request is best-effort and propagation proceeds
// regardless.
//
// # Observability
//
// When the evaluator's context carries a recording OpenTelemetry span,
// failures are attached to it as assertion.failed span events with the
// expression, message, and source location.
package assert

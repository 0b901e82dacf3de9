package assert

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// failureSpanEventName is the event name recorded on the active span when an
// assertion fails.
const failureSpanEventName = "assertion.failed"

// FailureError represents a failed assertion.
//
// Error returns the diagnostic with a fixed layout that consumers may
// pattern-match on; source location is carried separately and never injected
// into the diagnostic text.
type FailureError struct {
	Expression string
	Message    string
	File       string
	Line       int
}

// Error returns the diagnostic text:
//
//	Failed assertion:
//		Message: <message>        (only when a message was given)
//		Expression: (<expression>)
func (f *FailureError) Error() string {
	if f == nil {
		return ErrAssertionFailed.Error()
	}

	var sb strings.Builder

	sb.WriteString("Failed assertion:")

	if f.Message != "" {
		sb.WriteString("\n\tMessage: ")
		sb.WriteString(f.Message)
	}

	sb.WriteString("\n\tExpression: (")
	sb.WriteString(f.Expression)
	sb.WriteString(")")

	return sb.String()
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (f *FailureError) Unwrap() error {
	return ErrAssertionFailed
}

// Location returns the "file:line" of the failed call site, or an empty
// string when the location could not be resolved.
func (f *FailureError) Location() string {
	if f == nil || f.File == "" {
		return ""
	}

	return f.File + ":" + strconv.Itoa(f.Line)
}

// Evaluator checks assertion sites against a configured threshold and
// performs the level-specific failure action.
//
// An Evaluator is immutable after construction and safe for concurrent use:
// evaluation is a synchronous check with no shared mutable state. A nil
// *Evaluator treats every site as inactive.
type Evaluator struct {
	ctx       context.Context
	threshold Level
	quit      bool
	sink      Sink
	stopper   Stopper
}

// New creates an Evaluator from cfg. The context is used only to correlate
// failure events with an active trace span.
//
//nolint:contextcheck // Intentionally creates a fallback context when nil is passed
func New(ctx context.Context, cfg Config) *Evaluator {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Evaluator{
		ctx:       ctx,
		threshold: cfg.Threshold,
		quit:      cfg.QuitOnFailure,
		sink:      cfg.Sink,
		stopper:   cfg.Stopper,
	}
}

// Threshold returns the evaluator's configured threshold. A nil evaluator
// reports LevelNoAssertions.
func (e *Evaluator) Threshold() Level {
	if e == nil {
		return LevelNoAssertions
	}

	return e.threshold
}

// Warning evaluates a Warning-level assertion site.
//
// When the site is inactive the condition is never invoked. On failure the
// diagnostic is emitted to the sink (stderr when no sink was injected) and
// execution continues; the call always returns normally.
//
// expr is the textual rendering of the condition, used only in the
// diagnostic. An optional message may be supplied as the final argument.
//
// Example:
//
//	e.Warning(func() bool { return x > 0 }, "x > 0")
func (e *Evaluator) Warning(cond func() bool, expr string, msg ...string) {
	if f := e.eval(LevelWarning, cond, expr, optionalMessage(msg)); f != nil {
		emit(e.sink, f.Error())
	}
}

// Error evaluates an Error-level assertion site.
//
// When the site is inactive or the condition holds, Error returns nil with
// zero side effects. On failure it returns a *FailureError carrying the
// diagnostic and source location; callers are expected to propagate it. If
// the quit flag is set, the termination hook is invoked exactly once before
// the error is returned. The request is best-effort: propagation proceeds
// whether or not the host honors it.
//
// Example:
//
//	if err := e.Error(func() bool { return len < cap }, "len < cap", "bound check"); err != nil {
//		return err
//	}
func (e *Evaluator) Error(cond func() bool, expr string, msg ...string) error {
	f := e.eval(LevelError, cond, expr, optionalMessage(msg))
	if f == nil {
		return nil
	}

	if e.quit && e.stopper != nil {
		e.stopper.Stop()
	}

	return f
}

// callerSkip ascends from eval past its single wrapper frame to the user's
// assertion call site. Both the Evaluator methods and the package-level
// wrappers sit exactly one frame above eval.
const callerSkip = 2

// eval gates the site on the threshold, runs the condition, and on failure
// constructs the diagnostic and records it on the active span. The success
// path constructs nothing.
func (e *Evaluator) eval(site Level, cond func() bool, expr, msg string) *FailureError {
	if e == nil || !IsActive(site, e.threshold) {
		return nil
	}

	if cond() {
		return nil
	}

	f := &FailureError{
		Expression: expr,
		Message:    msg,
	}

	if _, file, line, ok := runtime.Caller(callerSkip); ok {
		f.File = file
		f.Line = line
	}

	recordFailureToSpan(e.ctx, site, f)

	return f
}

// optionalMessage unwraps the variadic optional message argument.
func optionalMessage(msg []string) string {
	if len(msg) > 0 {
		return msg[0]
	}

	return ""
}

// recordFailureToSpan attaches the failure to the active span, if any, so
// assertion failures correlate with distributed traces.
func recordFailureToSpan(ctx context.Context, site Level, f *FailureError) {
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("assertion.level", site.String()),
		attribute.String("assertion.expression", f.Expression),
	}

	if f.Message != "" {
		attrs = append(attrs, attribute.String("assertion.message", f.Message))
	}

	if loc := f.Location(); loc != "" {
		attrs = append(attrs, attribute.String("assertion.location", loc))
	}

	span.AddEvent(failureSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("%w: (%s)", ErrAssertionFailed, f.Expression))
	span.SetStatus(codes.Error, failureStatusMessage(site, f))
}

func failureStatusMessage(site Level, f *FailureError) string {
	if loc := f.Location(); loc != "" {
		return fmt.Sprintf("%s assertion failed at %s", site.String(), loc)
	}

	return site.String() + " assertion failed"
}

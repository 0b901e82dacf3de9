package assert

// Package-level assertion surface.
//
// These wrappers gate on CompiledThreshold with a constant comparison, so
// sites below the compiled threshold are dead code the compiler removes
// entirely: condition thunk, message, and any side effects they would have
// had are absent from the artifact. Active sites delegate to the
// process-wide evaluator installed by Configure.

// Warning declares a Warning-level assertion site against the process-wide
// evaluator. Compiled out entirely unless the assert_warning build tag is
// set.
func Warning(cond func() bool, expr string, msg ...string) {
	if LevelWarning < CompiledThreshold {
		return
	}

	e := Default()
	if f := e.eval(LevelWarning, cond, expr, optionalMessage(msg)); f != nil {
		emit(e.sink, f.Error())
	}
}

// Error declares an Error-level assertion site against the process-wide
// evaluator. Compiled down to a nil return unless the assert_warning or
// assert_error build tag is set.
func Error(cond func() bool, expr string, msg ...string) error {
	if LevelError < CompiledThreshold {
		return nil
	}

	e := Default()

	f := e.eval(LevelError, cond, expr, optionalMessage(msg))
	if f == nil {
		return nil
	}

	if e.quit && e.stopper != nil {
		e.stopper.Stop()
	}

	return f
}

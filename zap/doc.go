// Package zap adapts go.uber.org/zap to the assert.Sink interface.
//
// Hosts that already log through zap can route Warning-level assertion
// diagnostics into their structured logs:
//
//	sink := armoryzap.NewSink(logger)
//	assert.Configure(assert.Config{Threshold: assert.LevelWarning, Sink: sink})
package zap

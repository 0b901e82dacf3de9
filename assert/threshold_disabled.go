//go:build !assert_warning && !assert_error

package assert

// CompiledThreshold is the build-selected threshold for the package-level
// assertion surface. Without an assert build tag every site is compiled
// out: the default favors safety of the shipped binary over verbosity.
const CompiledThreshold = LevelNoAssertions

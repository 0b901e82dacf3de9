//go:build assert_error && !assert_warning

package assert

// CompiledThreshold is the build-selected threshold for the package-level
// assertion surface. The assert_error tag compiles in Error-level sites
// only; Warning-level sites are elided.
const CompiledThreshold = LevelError

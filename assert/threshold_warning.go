//go:build assert_warning

package assert

// CompiledThreshold is the build-selected threshold for the package-level
// assertion surface. The assert_warning tag compiles in every site; it
// wins over assert_error when both tags are set.
const CompiledThreshold = LevelWarning

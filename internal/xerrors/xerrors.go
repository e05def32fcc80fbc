// Package xerrors is a collection of error plumbing shared by the bwtzip
// packages that signal errors (bitstream, bwt and pipeline).
//
// For performance reasons, the core transforms lack strong error checking
// and require that the caller ensure strict invariants are kept; the few
// checks that do exist (BWT's origin-pointer bounds check, for example)
// panic with an Error value and are recovered at the package's public
// entry point via Recover.
package xerrors

import (
	"fmt"
	"runtime"
)

// Error is the wrapper type for errors specific to this module.
type Error string

func (e Error) Error() string { return string(e) }

// Recover turns a panic carrying an Error (or any error) into a returned
// error. Runtime errors (nil dereferences, index-out-of-range, and so on)
// are re-panicked since they indicate a bug rather than malformed input.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case Error:
		*err = ex
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// Panicf raises a panic carrying an Error built from format and args.
func Panicf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf(format, args...)))
}

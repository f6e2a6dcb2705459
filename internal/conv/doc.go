// Package conv provides checked integer conversions for encoded block headers.
//
// Block headers store counts and sizes as uint32. Converting a Go int into a
// header field, or a header field back into an int used for allocation, goes
// through these helpers so that oversized inputs fail instead of wrapping.
package conv

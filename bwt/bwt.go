// Package bwt implements the Burrows-Wheeler Transform and its inverse.
//
// Encode drives package suffixarray to build the sorted-rotations matrix
// of the input and emits its last column. Decode inverts the transform
// via LF-mapping, computed with a counting sort exactly as
// bzip2.decodeBWT does in the teacher — only encodeBWT differs, since
// the teacher leans on SA-IS (via a C port) where this package uses the
// DC3 suffix array construction from package suffixarray.
package bwt

import "github.com/bbeck/bwtzip/internal/xerrors"
import "github.com/bbeck/bwtzip/suffixarray"

// Sentinel is the byte value appended to the input before transformation.
// It must not appear in the input; Encode refuses inputs that contain it
// rather than silently corrupting them (see spec's "unique smallest byte"
// discussion: this implementation picks the refuse strategy over an
// escape scheme).
const Sentinel = 0x00

const (
	// ErrInputContainsSentinel is returned by Encode when the input
	// already contains the sentinel byte.
	ErrInputContainsSentinel = xerrors.Error("bwt: input contains the sentinel byte 0x00")

	// ErrCorruptStream is returned by Decode when the origin index is
	// out of range for the supplied last column.
	ErrCorruptStream = xerrors.Error("bwt: corrupt stream: invalid origin index")
)

// Encode computes the Burrows-Wheeler Transform of input. It returns the
// last column L (of length len(input)+1, including the transformed
// sentinel) and the origin index: the row of the conceptual sorted-
// rotations matrix equal to the sentinel-terminated input.
func Encode(input []byte) (last []byte, origin int, err error) {
	defer xerrors.Recover(&err)

	for _, b := range input {
		if b == Sentinel {
			panic(ErrInputContainsSentinel)
		}
	}

	t := make([]byte, len(input)+1)
	copy(t, input)
	t[len(input)] = Sentinel
	n := len(t)

	sa := suffixarray.Compute(t)

	last = make([]byte, n)
	for i, p := range sa {
		if p == 0 {
			origin = i
			last[i] = t[n-1]
		} else {
			last[i] = t[p-1]
		}
	}
	return last, origin, nil
}

// Decode inverts Encode: given the last column and origin index it
// returned, Decode reconstructs the original input (with the trailing
// sentinel stripped).
func Decode(last []byte, origin int) (output []byte, err error) {
	defer xerrors.Recover(&err)

	n := len(last)
	if n == 0 || origin < 0 || origin >= n {
		panic(ErrCorruptStream)
	}

	// LF-mapping: queue the positions where each symbol occurs in L (in
	// left-to-right scan order), then walk F — L's bytes sorted
	// ascending, which we never materialize explicitly — one symbol
	// block at a time, assigning each slot the next queued L-position
	// for that symbol.
	var counts [256]int
	for _, b := range last {
		counts[b]++
	}
	var starts [256]int
	for i, sum := 1, 0; i < 256; i++ {
		sum += counts[i-1]
		starts[i] = sum
	}

	queues := make([][]int, 256)
	for i, b := range last {
		queues[b] = append(queues[b], i)
	}

	leftShift := make([]int, n)
	qpos := make([]int, 256)
	for sym := 0; sym < 256; sym++ {
		for k := starts[sym]; k < starts[sym]+counts[sym]; k++ {
			leftShift[k] = queues[sym][qpos[sym]]
			qpos[sym]++
		}
	}

	t := make([]byte, n)
	idx := origin
	for i := 0; i < n; i++ {
		idx = leftShift[idx]
		t[i] = last[idx]
	}

	if t[n-1] != Sentinel {
		panic(ErrCorruptStream)
	}
	return t[:n-1], nil
}

// Package mtf implements the plain Move-To-Front transform over the
// 256-byte alphabet that sits between the BWT and LZW stages of the
// bwtzip pipeline.
//
// This is the bzip2 moveToFront codec in the teacher with the
// run-length-encoding augmentation removed: bwtzip's pipeline feeds MTF's
// output straight to LZW, which already exploits runs of repeated codes
// via its own dictionary, so there's nothing for an RLE stage to buy here
// and every output byte corresponds to exactly one input byte.
package mtf

// Transform holds the 256-entry move-to-front symbol list. The zero value
// is not ready to use; call Reset (or use New) before Encode/Decode.
type Transform struct {
	dict [256]byte
}

// New returns a Transform with its symbol list initialized to
// [0, 1, ..., 255].
func New() *Transform {
	t := new(Transform)
	t.Reset()
	return t
}

// Reset reinitializes the symbol list to [0, 1, ..., 255]. Every Encode
// and Decode call must start from this state, per the pipeline's
// call-scoped lifetime for MTF state.
func (t *Transform) Reset() {
	for i := range t.dict {
		t.dict[i] = byte(i)
	}
}

// Encode runs the move-to-front transform over src, returning a
// freshly-allocated buffer of the same length: each output byte is the
// current rank of the corresponding input byte in the symbol list, after
// which that byte is promoted to the front.
func (t *Transform) Encode(src []byte) []byte {
	dict := &t.dict
	dst := make([]byte, len(src))
	for i, val := range src {
		var idx uint8
		for di, dv := range dict {
			if dv == val {
				idx = uint8(di)
				break
			}
		}
		copy(dict[1:], dict[:idx])
		dict[0] = val
		dst[i] = idx
	}
	return dst
}

// Decode inverts Encode: each input byte is a rank into the symbol list,
// looked up to recover the original value, which is then promoted to the
// front exactly as Encode would have.
func (t *Transform) Decode(src []byte) []byte {
	dict := &t.dict
	dst := make([]byte, len(src))
	for i, idx := range src {
		val := dict[idx]
		copy(dict[1:], dict[:idx])
		dict[0] = val
		dst[i] = val
	}
	return dst
}

// Package lzw implements a variable-width LZW dictionary coder whose code
// width grows with the dictionary rather than being fixed or transmitted
// in the stream. It is the terminal stage of the bwtzip pipeline, sitting
// atop package bitstream the way bzip2's Huffman stage sits atop its own
// bit writer in the teacher.
package lzw

import (
	"math/bits"

	"github.com/bbeck/bwtzip/bitstream"
)

// codeWidth returns the number of bits needed to address m distinct
// codes: max(1, ceil(log2(m))).
func codeWidth(m int) int {
	w := bits.Len(uint(m - 1))
	if w < 1 {
		w = 1
	}
	return w
}

// Encode compresses src into a bit-packed stream of growing-width codes.
// The dictionary starts with the 256 single-byte strings and grows by one
// entry per emitted code (other than the final, trailing one); no code
// width is ever written to the stream — Decode recomputes it the same
// way from dictionary size alone.
func Encode(src []byte) []byte {
	bs := bitstream.New()
	if len(src) == 0 {
		return bs.Bytes()
	}

	dict := make(map[string]uint32, 512)
	for i := 0; i < 256; i++ {
		dict[string([]byte{byte(i)})] = uint32(i)
	}
	nextCode := uint32(256)

	cur := string(src[:1])
	for _, c := range src[1:] {
		ext := cur + string([]byte{c})
		if _, ok := dict[ext]; ok {
			cur = ext
			continue
		}
		width := codeWidth(len(dict) + 1)
		bs.AppendBits(uint64(dict[cur]), width)
		dict[ext] = nextCode
		nextCode++
		cur = string([]byte{c})
	}
	width := codeWidth(len(dict) + 1)
	bs.AppendBits(uint64(dict[cur]), width)
	return bs.Bytes()
}

// Decode inverts Encode. src is the raw byte-packed stream; trailing bits
// that fall short of a full code are zero padding and are ignored.
//
// The decoder dictionary mirrors the encoder's one-entry-per-code growth
// exactly, including for the very first code: each decoded string is
// immediately recorded as a provisional dictionary entry (reserving the
// code the encoder would have assigned it), and that entry is completed
// one step later by appending the first byte of the following decoded
// string — matching the encoder's insertion order bit for bit, and giving
// the classic KwKwK case (decoding a code equal to the entry reserved on
// the previous step, before it's completed) its usual handling: output
// the previous string extended by its own first byte.
func Decode(src []byte) []byte {
	dict := make([][]byte, 256, 512)
	for i := 0; i < 256; i++ {
		dict[i] = []byte{byte(i)}
	}

	bs := bitstream.FromBytes(src, 8*len(src))
	total := bs.LenBits()

	out := make([]byte, 0, len(src))
	var prev []byte
	pendingCode := -1
	pos := 0

	for {
		width := codeWidth(len(dict) + 1)
		if pos+width > total {
			break
		}
		idx := int(bs.Slice(pos, width).ToUint32())
		pos += width

		var entry []byte
		if pendingCode >= 0 && idx == pendingCode {
			entry = append(append([]byte(nil), prev...), prev[0])
		} else {
			entry = dict[idx]
		}

		if pendingCode >= 0 {
			completed := append(append([]byte(nil), prev...), entry[0])
			dict[pendingCode] = completed
		}
		pendingCode = len(dict)
		dict = append(dict, entry)

		out = append(out, entry...)
		prev = entry
	}
	return out
}

// Package bitstream implements a bit-level append/read buffer used by the
// BWT and LZW stages of the bwtzip pipeline to pack and unpack
// variable-width integers.
//
// Bits are packed MSB-first: bit 0 of the stream occupies bit 7 of byte 0.
// This convention is load-bearing — every stage that reads a bitstream
// produced by another stage must agree on it, or every output byte flips.
package bitstream

import "github.com/bbeck/bwtzip/internal/xerrors"

const (
	errWidth  = xerrors.Error("bitstream: value does not fit in requested width")
	errBounds = xerrors.Error("bitstream: slice out of range")
)

// BitStream is an ordered sequence of bits backed by a byte buffer. The
// zero value is an empty stream ready to use.
type BitStream struct {
	buf   []byte
	nbits int
}

// New returns an empty BitStream.
func New() *BitStream {
	return new(BitStream)
}

// FromBytes reconstructs a BitStream from a byte buffer and the number of
// meaningful bits within it, as produced by Bytes. The bit count is not
// recoverable from buf alone — the caller must supply it from context
// (a stage header, a terminator, or similar), per the BitStream data model.
func FromBytes(buf []byte, nbits int) *BitStream {
	if nbits < 0 || nbits > 8*len(buf) {
		xerrors.Panicf("bitstream: nbits %d out of range for %d bytes", nbits, len(buf))
	}
	bs := &BitStream{buf: append([]byte(nil), buf...), nbits: nbits}
	bs.clearTail()
	return bs
}

// LenBits reports the number of meaningful bits in the stream.
func (bs *BitStream) LenBits() int { return bs.nbits }

// LenBytes reports ceil(LenBits()/8).
func (bs *BitStream) LenBytes() int { return (bs.nbits + 7) / 8 }

// AppendBit appends a single bit, taking the low bit of b.
func (bs *BitStream) AppendBit(b byte) {
	byteIdx := bs.nbits / 8
	if byteIdx == len(bs.buf) {
		bs.buf = append(bs.buf, 0)
	}
	if b&1 != 0 {
		bs.buf[byteIdx] |= 1 << uint(7-bs.nbits%8)
	}
	bs.nbits++
}

// AppendBits appends the low k bits of v, MSB first.
func (bs *BitStream) AppendBits(v uint64, k int) {
	for i := k - 1; i >= 0; i-- {
		bs.AppendBit(byte(v >> uint(i)))
	}
}

// AppendUint8 appends all 8 bits of v, MSB first.
func (bs *BitStream) AppendUint8(v uint8) { bs.AppendBits(uint64(v), 8) }

// AppendUint16 appends all 16 bits of v, MSB first.
func (bs *BitStream) AppendUint16(v uint16) { bs.AppendBits(uint64(v), 16) }

// AppendUint32 appends all 32 bits of v, MSB first.
func (bs *BitStream) AppendUint32(v uint32) { bs.AppendBits(uint64(v), 32) }

// PopBack removes the last k bits from the stream.
func (bs *BitStream) PopBack(k int) {
	if k > bs.nbits {
		xerrors.Panicf("bitstream: pop_back(%d) exceeds length %d", k, bs.nbits)
	}
	bs.nbits -= k
	bs.buf = bs.buf[:bs.LenBytes()]
	bs.clearTail()
}

// clearTail zeroes the padding bits beyond nbits in the final byte.
func (bs *BitStream) clearTail() {
	if bs.nbits%8 == 0 {
		return
	}
	last := bs.nbits / 8
	mask := byte(0xff) << uint(8-bs.nbits%8)
	bs.buf[last] &= mask
}

// BitAt returns the bit at logical position i as 0 or 1.
func (bs *BitStream) BitAt(i int) byte {
	if i < 0 || i >= bs.nbits {
		xerrors.Panicf("bitstream: bit_at(%d) out of range [0,%d)", i, bs.nbits)
	}
	return (bs.buf[i/8] >> uint(7-i%8)) & 1
}

// Slice returns a new, independent BitStream holding the k bits starting
// at logical position i.
func (bs *BitStream) Slice(i, k int) *BitStream {
	if i < 0 || k < 0 || i+k > bs.nbits {
		panic(errBounds)
	}
	out := New()
	for j := 0; j < k; j++ {
		out.AppendBit(bs.BitAt(i + j))
	}
	return out
}

// toUint interprets the stream's contents MSB-first as an unsigned
// integer, requiring the stream to hold at most width bits.
func (bs *BitStream) toUint(width int) uint64 {
	if bs.nbits > width {
		panic(errWidth)
	}
	var v uint64
	for i := 0; i < bs.nbits; i++ {
		v = v<<1 | uint64(bs.BitAt(i))
	}
	return v
}

// ToUint8 interprets the stream (at most 8 bits) as a big-endian unsigned integer.
func (bs *BitStream) ToUint8() uint8 { return uint8(bs.toUint(8)) }

// ToUint16 interprets the stream (at most 16 bits) as a big-endian unsigned integer.
func (bs *BitStream) ToUint16() uint16 { return uint16(bs.toUint(16)) }

// ToUint32 interprets the stream (at most 32 bits) as a big-endian unsigned integer.
func (bs *BitStream) ToUint32() uint32 { return uint32(bs.toUint(32)) }

// Bits returns every bit in the stream, in order, as a freshly allocated slice.
func (bs *BitStream) Bits() []byte {
	out := make([]byte, bs.nbits)
	for i := range out {
		out[i] = bs.BitAt(i)
	}
	return out
}

// Bytes returns the stream's backing buffer for file I/O. Tail bits beyond
// LenBits() in the final byte are zero.
func (bs *BitStream) Bytes() []byte {
	return append([]byte(nil), bs.buf...)
}

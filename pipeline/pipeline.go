// Package pipeline orchestrates the three codec stages — BWT, MTF, and
// LZW — into the file-to-file compress and decompress operations the CLI
// front-end drives.
package pipeline

import (
	"encoding/binary"
	"os"

	"github.com/bbeck/bwtzip/bwt"
	"github.com/bbeck/bwtzip/internal/xerrors"
	"github.com/bbeck/bwtzip/lzw"
	"github.com/bbeck/bwtzip/mtf"
)

// originPrefixLen is the width of the big-endian origin-index header
// prepended to the BWT stage's output (see the file-format table this
// package implements).
const originPrefixLen = 4

// ErrTruncatedStream is returned by Decompress when the BWT-stage blob
// recovered from the compressed file is too short to hold its origin
// prefix.
const ErrTruncatedStream = xerrors.Error("pipeline: truncated stream: missing BWT origin prefix")

// StageName identifies one of the three pipeline stages, for use with a
// PathFunc.
type StageName string

const (
	StageBWT StageName = "bwt"
	StageMTF StageName = "mtf"
	StageLZW StageName = "lzw"
)

// PathFunc maps a stage name to the file path its output should be
// written to. It lets a caller retain every intermediate file under a
// distinct name; the default behavior (a nil PathFunc) reuses dst for
// every stage, matching the reference pipeline's single-file transport.
type PathFunc func(stage StageName) string

func resolvePath(pathFor PathFunc, dst string, stage StageName) string {
	if pathFor == nil {
		return dst
	}
	return pathFor(stage)
}

// writeStage removes path if present, then writes data to it — this
// package never appends to or truncates an existing destination file in
// place, since every stage reads its input fully into memory before
// writing any output.
func writeStage(path string, data []byte) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PackOrigin prepends the 4-byte big-endian origin-index header to a BWT
// last column, producing the blob the file-format table in spec.md §6
// calls the "after BWT stage" intermediate. Exported so other whole-buffer
// consumers of the BWT+MTF+LZW wire format (see internal/bench) share this
// framing instead of re-deriving it.
func PackOrigin(origin int, last []byte) []byte {
	blob := make([]byte, originPrefixLen+len(last))
	binary.BigEndian.PutUint32(blob[:originPrefixLen], uint32(origin))
	copy(blob[originPrefixLen:], last)
	return blob
}

// UnpackOrigin splits a blob produced by PackOrigin back into its origin
// index and BWT last column, returning ErrTruncatedStream if blob is too
// short to hold the header.
func UnpackOrigin(blob []byte) (origin int, last []byte, err error) {
	if len(blob) < originPrefixLen {
		return 0, nil, ErrTruncatedStream
	}
	origin = int(binary.BigEndian.Uint32(blob[:originPrefixLen]))
	return origin, blob[originPrefixLen:], nil
}

// Compress runs BWT encode, then MTF encode, then LZW encode, reading src
// and writing the final compressed bytes to dst.
func Compress(src, dst string) error {
	return CompressTo(src, dst, nil)
}

// CompressTo is Compress, but writes each stage's output to the path
// pathFor returns for that stage instead of always overwriting dst. The
// final compressed bytes are written to dst as well.
func CompressTo(src, dst string, pathFor PathFunc) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	last, origin, err := bwt.Encode(input)
	if err != nil {
		return err
	}
	bwtBlob := PackOrigin(origin, last)
	if err := writeStage(resolvePath(pathFor, dst, StageBWT), bwtBlob); err != nil {
		return err
	}

	mtfBlob := mtf.New().Encode(bwtBlob)
	if err := writeStage(resolvePath(pathFor, dst, StageMTF), mtfBlob); err != nil {
		return err
	}

	lzwBlob := lzw.Encode(mtfBlob)
	if lzwPath := resolvePath(pathFor, dst, StageLZW); lzwPath != dst {
		if err := writeStage(lzwPath, lzwBlob); err != nil {
			return err
		}
	}
	return writeStage(dst, lzwBlob)
}

// Decompress runs LZW decode, then MTF decode, then BWT decode, reading
// src and writing the recovered original bytes to dst.
func Decompress(src, dst string) error {
	return DecompressFrom(src, dst, nil)
}

// DecompressFrom is Decompress, but writes each stage's output to the
// path pathFor returns for that stage instead of always overwriting dst.
// The stage name passed to pathFor identifies which encode stage's
// output the decoded blob matches, not which decode step produced it.
func DecompressFrom(src, dst string, pathFor PathFunc) error {
	compressed, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	mtfBlob := lzw.Decode(compressed)
	if err := writeStage(resolvePath(pathFor, dst, StageMTF), mtfBlob); err != nil {
		return err
	}

	bwtBlob := mtf.New().Decode(mtfBlob)
	if err := writeStage(resolvePath(pathFor, dst, StageBWT), bwtBlob); err != nil {
		return err
	}

	origin, last, err := UnpackOrigin(bwtBlob)
	if err != nil {
		return err
	}
	output, err := bwt.Decode(last, origin)
	if err != nil {
		return err
	}
	return writeStage(dst, output)
}

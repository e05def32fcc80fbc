// Package bench compares bwtzip's compression ratio against a handful of
// other codecs on the same input; throughput is not measured. It exists purely
// as a diagnostic for cmd/bwtzip's -bench flag and is not part of the
// core pipeline.
//
// The registry pattern (registerEncoder/registerDecoder, keyed by name)
// follows internal/benchmark in the teacher. That package compares
// streaming io.Writer-wrapped codecs; bwtzip's own pipeline has no
// streaming API (the core loads entire files into memory by design), so
// this registry is whole-buffer rather than io.Writer-based, and every
// entry — including the third-party ones — is adapted to that shape.
package bench

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/cpuid/v2"
	"github.com/ulikunitz/xz"

	"github.com/bbeck/bwtzip/bwt"
	"github.com/bbeck/bwtzip/lzw"
	"github.com/bbeck/bwtzip/mtf"
	"github.com/bbeck/bwtzip/pipeline"
)

// Codec is a registered whole-buffer compressor/decompressor pair.
type Codec struct {
	Name       string
	Compress   func(src []byte) ([]byte, error)
	Decompress func(src []byte) ([]byte, error)
}

var registry = make(map[string]Codec)

func register(c Codec) { registry[c.Name] = c }

// Codecs returns every registered codec, including bwtzip itself.
func Codecs() []Codec {
	out := make([]Codec, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	return out
}

// Lookup returns the named codec and whether it was found.
func Lookup(name string) (Codec, bool) {
	c, ok := registry[name]
	return c, ok
}

func init() {
	register(Codec{
		Name: "bwtzip",
		Compress: func(src []byte) ([]byte, error) {
			last, origin, err := bwt.Encode(src)
			if err != nil {
				return nil, err
			}
			blob := mtf.New().Encode(pipeline.PackOrigin(origin, last))
			return lzw.Encode(blob), nil
		},
		Decompress: func(src []byte) ([]byte, error) {
			blob := mtf.New().Decode(lzw.Decode(src))
			origin, last, err := pipeline.UnpackOrigin(blob)
			if err != nil {
				return nil, err
			}
			return bwt.Decode(last, origin)
		},
	})

	register(Codec{
		Name: "flate",
		Compress: func(src []byte) ([]byte, error) {
			var buf bytes.Buffer
			zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
			if err != nil {
				return nil, err
			}
			if _, err := zw.Write(src); err != nil {
				return nil, err
			}
			if err := zw.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		Decompress: func(src []byte) ([]byte, error) {
			zr := flate.NewReader(bytes.NewReader(src))
			defer zr.Close()
			return io.ReadAll(zr)
		},
	})

	register(Codec{
		Name: "zstd",
		Compress: func(src []byte) ([]byte, error) {
			zw, err := zstd.NewWriter(nil)
			if err != nil {
				return nil, err
			}
			defer zw.Close()
			return zw.EncodeAll(src, nil), nil
		},
		Decompress: func(src []byte) ([]byte, error) {
			zr, err := zstd.NewReader(nil)
			if err != nil {
				return nil, err
			}
			defer zr.Close()
			return zr.DecodeAll(src, nil)
		},
	})

	register(Codec{
		Name: "xz",
		Compress: func(src []byte) ([]byte, error) {
			var buf bytes.Buffer
			zw, err := xz.NewWriter(&buf)
			if err != nil {
				return nil, err
			}
			if _, err := zw.Write(src); err != nil {
				return nil, err
			}
			if err := zw.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		Decompress: func(src []byte) ([]byte, error) {
			zr, err := xz.NewReader(bytes.NewReader(src))
			if err != nil {
				return nil, err
			}
			return io.ReadAll(zr)
		},
	})
}

// CPUSummary reports the CPU brand name and vendor cpuid detected, printed
// alongside the -bench ratio report. It does not list CPU feature flags.
func CPUSummary() string {
	return cpuid.CPU.BrandName + " (" + cpuid.CPU.VendorString + ")"
}

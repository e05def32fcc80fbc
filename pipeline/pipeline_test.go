package pipeline

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func roundTrip(t *testing.T, data []byte) {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "input")
	compressed := filepath.Join(dir, "compressed")
	output := filepath.Join(dir, "output")

	if err := os.WriteFile(src, data, 0644); err != nil {
		t.Fatalf("WriteFile(src): %v", err)
	}
	if err := Compress(src, compressed); err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if err := Decompress(compressed, output); err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile(output): %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("round-trip mismatch: got %d bytes, want %d bytes", len(got), len(data))
	}
}

func TestRoundTripEmpty(t *testing.T) {
	roundTrip(t, nil)
}

func TestRoundTripSingleByte(t *testing.T) {
	roundTrip(t, []byte("a"))
}

func TestRoundTripText(t *testing.T) {
	roundTrip(t, []byte("ABRACADABRA"))
	roundTrip(t, []byte("aaaaaa"))
	roundTrip(t, []byte("the quick brown fox jumps over the lazy dog"))
}

func TestRoundTripRandom64KiB(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	buf := make([]byte, 64<<10)
	for i := range buf {
		buf[i] = byte(1 + rng.Intn(255)) // [1,255]: avoid the BWT sentinel
	}
	roundTrip(t, buf)
}

func TestCompressSamePathReusableAcrossStages(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input")
	work := filepath.Join(dir, "work") // reused for every stage's output

	data := []byte("ABRACADABRA")
	if err := os.WriteFile(src, data, 0644); err != nil {
		t.Fatalf("WriteFile(src): %v", err)
	}
	if err := Compress(src, work); err != nil {
		t.Fatalf("Compress: %v", err)
	}

	out := filepath.Join(dir, "output")
	if err := Decompress(work, out); err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile(out): %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("round-trip via reused path mismatch: got %q, want %q", got, data)
	}
}

func TestCompressToKeepsIntermediates(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input")
	if err := os.WriteFile(src, []byte("banana"), 0644); err != nil {
		t.Fatalf("WriteFile(src): %v", err)
	}

	pathFor := func(stage StageName) string {
		return filepath.Join(dir, string(stage)+".intermediate")
	}
	dst := filepath.Join(dir, "compressed")
	if err := CompressTo(src, dst, pathFor); err != nil {
		t.Fatalf("CompressTo: %v", err)
	}

	for _, stage := range []StageName{StageBWT, StageMTF, StageLZW} {
		if _, err := os.Stat(pathFor(stage)); err != nil {
			t.Errorf("intermediate file for stage %q missing: %v", stage, err)
		}
	}
}

func TestDecompressMissingOriginPrefix(t *testing.T) {
	// An empty file is not a valid compressed stream: even the empty
	// input compresses to a nonzero-length file, since BWT always emits
	// at least its sentinel byte plus the 4-byte origin prefix.
	dir := t.TempDir()
	src := filepath.Join(dir, "empty-compressed")
	if err := os.WriteFile(src, nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	dst := filepath.Join(dir, "output")
	if err := Decompress(src, dst); err != ErrTruncatedStream {
		t.Errorf("Decompress(empty file): err = %v, want %v", err, ErrTruncatedStream)
	}
}

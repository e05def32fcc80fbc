package lzw

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bbeck/bwtzip/bitstream"
)

func TestCodeWidth(t *testing.T) {
	var vectors = []struct {
		m    int
		want int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{256, 8},
		{257, 9},
		{512, 9},
		{513, 10},
	}
	for _, v := range vectors {
		if got := codeWidth(v.m); got != v.want {
			t.Errorf("codeWidth(%d) = %d, want %d", v.m, got, v.want)
		}
	}
}

// TestEncodeWidthTrace verifies the exact code/width sequence the design
// notes call out for "ABRACADABRA" and "aaaaaa": every code in both
// traces is 9 bits wide, since neither input grows the dictionary past
// 512 entries.
func TestEncodeWidthTrace(t *testing.T) {
	var vectors = []struct {
		input string
		codes []uint32
		width int
	}{
		{"ABRACADABRA", []uint32{65, 66, 82, 65, 67, 65, 68, 256, 258}, 9},
		{"aaaaaa", []uint32{97, 256, 257}, 9},
	}
	for _, v := range vectors {
		want := bitstream.New()
		for _, c := range v.codes {
			want.AppendBits(uint64(c), v.width)
		}
		got := Encode([]byte(v.input))
		if diff := cmp.Diff(want.Bytes(), got); diff != "" {
			t.Errorf("Encode(%q) mismatch (-want +got):\n%s", v.input, diff)
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	if got := Encode(nil); len(got) != 0 {
		t.Errorf("Encode(nil) = %v, want empty", got)
	}
}

func TestDecodeEmpty(t *testing.T) {
	if got := Decode(nil); len(got) != 0 {
		t.Errorf("Decode(nil) = %v, want empty", got)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"aaaaaa",
		"ABRACADABRA",
		"banana",
		"Hello, world!",
		"mississippi",
		"SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES",
	}
	for _, in := range inputs {
		enc := Encode([]byte(in))
		dec := Decode(enc)
		if diff := cmp.Diff([]byte(in), dec); diff != "" {
			t.Errorf("round-trip(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	buf := make([]byte, 20000)
	for i := range buf {
		buf[i] = byte(rng.Intn(256))
	}
	enc := Encode(buf)
	dec := Decode(enc)
	if !bytes.Equal(buf, dec) {
		t.Errorf("round-trip mismatch on random input")
	}
}

func TestRoundTripRepeatedRuns(t *testing.T) {
	// Exercises the dictionary growing past 512 entries (854 by the end),
	// across the 9-to-10-bit width boundary, via long, highly repetitive
	// input.
	buf := bytes.Repeat([]byte("abcabcabcabc"), 5000)
	enc := Encode(buf)
	dec := Decode(enc)
	if !bytes.Equal(buf, dec) {
		t.Errorf("round-trip mismatch on repeated-run input")
	}
}

package suffixarray

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// bruteForceSA computes the suffix array the naive O(n^2 log n) way, used
// only to cross-check Compute on small/random inputs.
func bruteForceSA(t []byte) []int {
	n := len(t)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(t[sa[i]:], t[sa[j]:]) < 0
	})
	return sa
}

func TestComputeKnownVectors(t *testing.T) {
	var vectors = []struct {
		input string
		want  []int
	}{
		{"", []int{}},
		{"a", []int{0}},
		{"banana", []int{5, 3, 1, 0, 4, 2}},
	}
	for _, v := range vectors {
		got := Compute([]byte(v.input))
		if diff := cmp.Diff(v.want, got); diff != "" {
			t.Errorf("Compute(%q) mismatch (-want +got):\n%s", v.input, diff)
		}
	}
}

func TestComputeAgainstBruteForce(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"aa",
		"aaa",
		"ab",
		"aba",
		"abracadabra",
		"mississippi",
		"SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES",
		"Hello, world!",
	}
	for _, in := range inputs {
		t := t
		got := Compute([]byte(in))
		want := bruteForceSA([]byte(in))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Compute(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestComputeIsPermutationAndSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(200)
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(rng.Intn(256))
		}
		sa := Compute(buf)
		if len(sa) != n {
			t.Fatalf("trial %d: len(SA) = %d, want %d", trial, len(sa), n)
		}
		seen := make([]bool, n)
		for _, i := range sa {
			if i < 0 || i >= n || seen[i] {
				t.Fatalf("trial %d: SA is not a permutation of [0,%d): %v", trial, n, sa)
			}
			seen[i] = true
		}
		for i := 0; i+1 < n; i++ {
			if bytes.Compare(buf[sa[i]:], buf[sa[i+1]:]) >= 0 {
				t.Fatalf("trial %d: suffixes not strictly increasing at rank %d: %q", trial, i, buf)
			}
		}
	}
}

func TestComputeRepeatedBytes(t *testing.T) {
	buf := bytes.Repeat([]byte{'x'}, 500)
	sa := Compute(buf)
	want := bruteForceSA(buf)
	if diff := cmp.Diff(want, sa); diff != "" {
		t.Errorf("Compute(repeated x) mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeContainsZeroByte(t *testing.T) {
	buf := []byte{0x00, 'a', 0x00, 'b', 0x00}
	sa := Compute(buf)
	want := bruteForceSA(buf)
	if diff := cmp.Diff(want, sa); diff != "" {
		t.Errorf("Compute(with NUL bytes) mismatch (-want +got):\n%s", diff)
	}
}

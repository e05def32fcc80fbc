// Package suffixarray computes the suffix array of a byte sequence in
// O(n) time using the DC3 (skew) algorithm of Kärkkäinen and Sanders. The
// result drives the BWT stage of the bwtzip pipeline (see package bwt);
// the teacher's own bzip2.encodeBWT instead leans on a C port of Yuta
// Mori's SA-IS, but the two constructions solve the same problem and the
// BWT code above it is agnostic to which one produced SA.
//
// DC3 partitions suffix positions by index modulo 3. The "sample"
// suffixes (mod 1 and mod 2) are sorted by a radix sort on their first
// three characters, renamed to a rank alphabet, and — if any two ranks
// collided — sorted again by recursing on the renamed sequence. The
// "non-sample" (mod 0) suffixes are then radix sorted using the
// now-unique sample ranks as a secondary key, and the two sorted streams
// are merged in one linear pass.
package suffixarray

// Compute returns the suffix array of t: the permutation SA of
// 0..len(t)-1 such that t[SA[i]:] < t[SA[j]:] lexicographically whenever
// i < j.
func Compute(t []byte) []int {
	n := len(t)
	if n == 0 {
		return []int{}
	}

	// dc3 requires a single character, smaller than every other, as the
	// final real symbol of its input (this is what lets its internal
	// mod-0/mod-12 merge terminate correctly rather than comparing past
	// the end of the string). Shift the byte alphabet up by one so real
	// symbols occupy [1,256] — even if t contains a literal 0x00 — and
	// append one synthetic 0 as that terminal sentinel. Three more
	// zeros pad the buffer so every lookahead the algorithm performs
	// stays in bounds.
	m := n + 1
	s := make([]int, m+3)
	for i, b := range t {
		s[i] = int(b) + 1
	}
	sa := make([]int, m)
	dc3(s, sa, m, 257)

	// sa[0] is always the sentinel's own suffix (the globally smallest);
	// drop it to recover the suffix array of t itself.
	return sa[1:]
}

func leq2(a1, a2, b1, b2 int) bool {
	return a1 < b1 || (a1 == b1 && a2 <= b2)
}

func leq3(a1, a2, a3, b1, b2, b3 int) bool {
	return a1 < b1 || (a1 == b1 && leq2(a2, a3, b2, b3))
}

// radixPass stably sorts the n indices in a into b by the key
// r[a[i]+offset], an integer in [0, K].
func radixPass(a, b, r []int, offset, n, K int) {
	count := make([]int, K+1)
	for i := 0; i < n; i++ {
		count[r[a[i]+offset]]++
	}
	for i, sum := 0, 0; i <= K; i++ {
		count[i], sum = sum, sum+count[i]
	}
	for i := 0; i < n; i++ {
		key := r[a[i]+offset]
		b[count[key]] = a[i]
		count[key]++
	}
}

// dc3 writes the suffix array of s[0:n] into SA. s must be padded with
// three trailing zero sentinels (len(s) >= n+3), and every value in
// s[0:n] must lie in [1, K], except that the last one may be the 0
// terminal sentinel Compute appends.
func dc3(s, SA []int, n, K int) {
	n0 := (n + 2) / 3
	n1 := (n + 1) / 3
	n2 := n / 3
	n02 := n0 + n2

	s12 := make([]int, n02+3)
	SA12 := make([]int, n02+3)
	s0 := make([]int, n0)
	SA0 := make([]int, n0)

	// S12 holds the starting positions of the mod-1 and mod-2 suffixes,
	// in index order.
	for i, j := 0, 0; i < n+(n0-n1); i++ {
		if i%3 != 0 {
			s12[j] = i
			j++
		}
	}

	// Sort S12 by the triple (T[i], T[i+1], T[i+2]) via three radix passes.
	radixPass(s12, SA12, s, 2, n02, K)
	radixPass(SA12, s12, s, 1, n02, K)
	radixPass(s12, SA12, s, 0, n02, K)

	// Assign lexicographic names to the sorted triples; a tie between
	// adjacent triples produces a repeated name.
	name := 0
	c0, c1, c2 := -1, -1, -1
	for i := 0; i < n02; i++ {
		if s[SA12[i]] != c0 || s[SA12[i]+1] != c1 || s[SA12[i]+2] != c2 {
			name++
			c0, c1, c2 = s[SA12[i]], s[SA12[i]+1], s[SA12[i]+2]
		}
		if SA12[i]%3 == 1 {
			s12[SA12[i]/3] = name
		} else {
			s12[SA12[i]/3+n0] = name
		}
	}

	if name < n02 {
		// Names collided: recurse on the renamed sample to finish sorting it.
		dc3(s12, SA12, n02, name)
		for i := 0; i < n02; i++ {
			s12[SA12[i]] = i + 1
		}
	} else {
		// Names are already a permutation of 1..n02: read off SA12 directly.
		for i := 0; i < n02; i++ {
			SA12[s12[i]-1] = i
		}
	}

	// Radix sort the mod-0 suffixes by their single leading character,
	// using the sample's rank as an implicit secondary key: s0 is filled in
	// SA12 (rank) order, and the stable pass preserves that order on ties.
	for i, j := 0, 0; i < n02; i++ {
		if SA12[i] < n0 {
			s0[j] = 3 * SA12[i]
			j++
		}
	}
	radixPass(s0, SA0, s, 0, n0, K)

	// Merge the sorted sample stream (SA12) and the sorted mod-0 stream (SA0).
	getSamplePos := func(t int) int {
		if SA12[t] < n0 {
			return SA12[t]*3 + 1
		}
		return (SA12[t]-n0)*3 + 2
	}
	p, t, k := 0, n0-n1, 0
	for k < n {
		i := getSamplePos(t)
		j := SA0[p]

		var sampleIsSmaller bool
		if SA12[t] < n0 { // i is a mod-1 suffix: compare (T[i], rank(i+1)).
			sampleIsSmaller = leq2(s[i], s12[SA12[t]+n0], s[j], s12[j/3])
		} else { // i is a mod-2 suffix: compare (T[i], T[i+1], rank(i+2)).
			sampleIsSmaller = leq3(s[i], s[i+1], s12[SA12[t]-n0+1], s[j], s[j+1], s12[j/3+n0])
		}

		if sampleIsSmaller {
			SA[k] = i
			k++
			t++
			if t == n02 { // Sample stream exhausted: drain the rest of SA0.
				for p < n0 {
					SA[k] = SA0[p]
					p++
					k++
				}
			}
		} else {
			SA[k] = j
			k++
			p++
			if p == n0 { // Mod-0 stream exhausted: drain the rest of SA12.
				for t < n02 {
					SA[k] = getSamplePos(t)
					t++
					k++
				}
			}
		}
	}
}

package zx0

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"
)

func TestPrefixIndex_ShortBuffers(t *testing.T) {
	var x prefixIndex
	for _, buf := range [][]byte{nil, {}, {0x41}} {
		x.initialize(buf)
		if len(x.positions) != 0 {
			t.Fatalf("buf of %d bytes: expected empty index, got %d positions", len(buf), len(x.positions))
		}
	}
}

func TestPrefixIndex_KnownOccurrences(t *testing.T) {
	buf := []byte("abcabcab")
	var x prefixIndex
	x.initialize(buf)

	cases := []struct {
		pair string
		want []int32
	}{
		{"ab", []int32{0, 3, 6}},
		{"bc", []int32{1, 4}},
		{"ca", []int32{2, 5}},
		{"zz", nil},
	}

	for _, tc := range cases {
		p := int(tc.pair[0]) | int(tc.pair[1])<<8
		got := x.occurrences(p)
		if len(got) != len(tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.pair, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%q: got %v, want %v", tc.pair, got, tc.want)
			}
		}
	}
}

func TestPrefixIndex_CoversEveryPositionSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	buf := make([]byte, 2048)
	for i := range buf {
		buf[i] = byte(rng.Intn(7)) // small alphabet forces crowded buckets
	}

	var x prefixIndex
	x.initialize(buf)

	if got, want := len(x.positions), len(buf)-1; got != want {
		t.Fatalf("indexed %d positions, want %d", got, want)
	}

	seen := make([]bool, len(buf)-1)
	for p := 0; p < prefixCount; p++ {
		occ := x.occurrences(p)
		if !sort.SliceIsSorted(occ, func(i, j int) bool { return occ[i] < occ[j] }) {
			t.Fatalf("bucket %#04x not sorted: %v", p, occ)
		}

		for _, pos := range occ {
			if prefixAt(buf, int(pos)) != p {
				t.Fatalf("position %d filed under %#04x but has prefix %#04x", pos, p, prefixAt(buf, int(pos)))
			}
			if seen[pos] {
				t.Fatalf("position %d filed twice", pos)
			}
			seen[pos] = true
		}
	}

	for i, ok := range seen {
		if !ok {
			t.Fatalf("position %d missing from the index", i)
		}
	}
}

func TestPrefixIndex_ReinitializeClearsOldState(t *testing.T) {
	var x prefixIndex
	x.initialize(bytes.Repeat([]byte("xy"), 100))

	x.initialize([]byte("ab"))
	if got := x.occurrences(int('x') | int('y')<<8); len(got) != 0 {
		t.Fatalf("stale bucket survived reinitialize: %v", got)
	}
	if got := x.occurrences(int('a') | int('b')<<8); len(got) != 1 || got[0] != 0 {
		t.Fatalf("fresh bucket wrong: %v", got)
	}
}

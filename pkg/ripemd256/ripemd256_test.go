package ripemd256

import (
	"encoding/hex"
	"io"
	"strings"
	"testing"
)

// Vectors from the RIPEMD page of the original authors
// (Bosselaers, "The RIPEMD-160 page", test values for RIPEMD-256).
var vectors = []struct {
	in  string
	out string
}{
	{"", "02ba4c4e5f8ecd1877fc52d64d30e37a2d9774fb1e5d026380ae0168e3c5522d"},
	{"a", "f9333e45d857f5d90a91bab70a1eba0cfb1be4b0783c9acfcd883a9134692925"},
	{"abc", "afbd6e228b9d8cbbcef5ca2d03e6dba10ac0bc7dcbe4680e1e42d2e975459b65"},
	{"message digest", "87e971759a1ce47a514d5c914c392c9018c7c46bc14465554afcdf54a5070c0e"},
	{"abcdefghijklmnopqrstuvwxyz", "649d3034751ea216776bf9a18acc81bc7896118a5197968782dd1fd97d8d5133"},
}

func TestVectors(t *testing.T) {
	for _, tv := range vectors {
		d := New()
		io.WriteString(d, tv.in)

		if got := hex.EncodeToString(d.Sum(nil)); got != tv.out {
			t.Errorf("RIPEMD-256(%q) = %s, want %s", tv.in, got, tv.out)
		}
	}
}

func TestSplitWrites(t *testing.T) {
	in := "message digest"
	want := "87e971759a1ce47a514d5c914c392c9018c7c46bc14465554afcdf54a5070c0e"

	for split := 0; split <= len(in); split++ {
		d := New()
		io.WriteString(d, in[:split])
		io.WriteString(d, in[split:])

		if got := hex.EncodeToString(d.Sum(nil)); got != want {
			t.Errorf("split at %d: got %s, want %s", split, got, want)
		}
	}
}

func TestSumDoesNotAdvanceState(t *testing.T) {
	d := New()
	io.WriteString(d, "abc")

	first := hex.EncodeToString(d.Sum(nil))
	second := hex.EncodeToString(d.Sum(nil))

	if first != second {
		t.Errorf("Sum mutated digest state: %s != %s", first, second)
	}
}

func TestLongInput(t *testing.T) {
	// Exercises the multi-block path and the length-overflow padding branch
	// (input tail straddles the 56-byte padding boundary).
	in := strings.Repeat("1234567890", 8)
	want := "06fdcc7a409548aaf91368c06a6275b553e3f099bf0ea4edfd6778df89a890dd"

	sum := Sum256([]byte(in))
	if got := hex.EncodeToString(sum[:]); got != want {
		t.Errorf("RIPEMD-256(%q) = %s, want %s", in, got, want)
	}
}

// Copyright 2018 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plc

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func mustNew(tt *testing.T, runs []Run) PLC {
	tt.Helper()
	x, err := New(runs)
	if err != nil {
		tt.Fatalf("New: %v", err)
	}
	return x
}

func TestNewRejectsInvalidForms(tt *testing.T) {
	testCases := []struct {
		name string
		runs []Run
	}{
		{"empty", nil},
		{"value too large", []Run{{Value: 1000, Count: big.NewInt(1)}}},
		{"negative value", []Run{{Value: -1, Count: big.NewInt(1)}}},
		{"zero count", []Run{{Value: 5, Count: big.NewInt(0)}}},
		{"adjacent equal values", []Run{{Value: 7, Count: big.NewInt(2)}, {Value: 7, Count: big.NewInt(3)}}},
		{"leading zero run not alone", []Run{{Value: 0, Count: big.NewInt(1)}, {Value: 5, Count: big.NewInt(1)}}},
		{"repeated zero run", []Run{{Value: 0, Count: big.NewInt(2)}}},
	}
	for _, tc := range testCases {
		tt.Run(tc.name, func(tt *testing.T) {
			if _, err := New(tc.runs); err == nil {
				tt.Fatalf("New(%v): got nil error, want non-nil", tc.runs)
			}
		})
	}
}

func TestZeroIsZero(tt *testing.T) {
	if !Zero().IsZero() {
		tt.Fatalf("Zero().IsZero(): got false, want true")
	}
	if got := Zero().PeriodCount(); got.Cmp(big.NewInt(1)) != 0 {
		tt.Fatalf("Zero().PeriodCount(): got %v, want 1", got)
	}
}

func TestPeriodCount(tt *testing.T) {
	x := mustNew(tt, []Run{{Value: 373, Count: big.NewInt(12)}, {Value: 0, Count: big.NewInt(3)}})
	if got, want := x.PeriodCount(), big.NewInt(15); got.Cmp(want) != 0 {
		tt.Fatalf("PeriodCount: got %v, want %v", got, want)
	}
}

func TestEqual(tt *testing.T) {
	a := mustNew(tt, []Run{{Value: 9, Count: big.NewInt(2)}})
	b := mustNew(tt, []Run{{Value: 9, Count: big.NewInt(2)}})
	c := mustNew(tt, []Run{{Value: 9, Count: big.NewInt(3)}})
	if !a.Equal(b) {
		tt.Fatalf("Equal(a, b): got false, want true")
	}
	if a.Equal(c) {
		tt.Fatalf("Equal(a, c): got true, want false")
	}
}

func TestLessOrdersByPeriodCountThenDigits(tt *testing.T) {
	short := mustNew(tt, []Run{{Value: 999, Count: big.NewInt(1)}})
	long := mustNew(tt, []Run{{Value: 1, Count: big.NewInt(2)}})
	if !short.Less(long) {
		tt.Fatalf("short.Less(long): got false, want true (fewer digits is smaller regardless of digit values)")
	}
	smallDigit := mustNew(tt, []Run{{Value: 1, Count: big.NewInt(2)}})
	bigDigit := mustNew(tt, []Run{{Value: 2, Count: big.NewInt(2)}})
	if !smallDigit.Less(bigDigit) {
		tt.Fatalf("smallDigit.Less(bigDigit): got false, want true")
	}
	if smallDigit.Less(smallDigit) {
		tt.Fatalf("smallDigit.Less(smallDigit): got true, want false")
	}
}

func TestFromBigIntRoundTrip(tt *testing.T) {
	testCases := []int64{0, 1, 999, 1000, 1001, 373373373, 4, 5, 3, 6, 11, 23, 323}
	for _, n := range testCases {
		x, err := FromBigInt(big.NewInt(n))
		if err != nil {
			tt.Fatalf("FromBigInt(%d): %v", n, err)
		}
		got, err := x.BigInt()
		if err != nil {
			tt.Fatalf("BigInt() after FromBigInt(%d): %v", n, err)
		}
		if got.Cmp(big.NewInt(n)) != 0 {
			tt.Fatalf("round trip of %d: got %v", n, got)
		}
	}
}

func TestToNotationSpotValues(tt *testing.T) {
	testCases := []struct {
		name string
		runs []Run
		want string
	}{
		{"zero", []Run{{Value: 0, Count: big.NewInt(1)}}, "0"},
		{"single period", []Run{{Value: 323, Count: big.NewInt(1)}}, "323"},
		{"singleton periods only", []Run{
			{Value: 123, Count: big.NewInt(1)},
			{Value: 456, Count: big.NewInt(1)},
			{Value: 789, Count: big.NewInt(1)},
		}, "123456789"},
		{"repeated run", []Run{{Value: 373, Count: big.NewInt(12)}, {Value: 0, Count: big.NewInt(1)}}, "[373]{12}000"},
		{"padded leading run", []Run{{Value: 1, Count: big.NewInt(5)}, {Value: 103, Count: big.NewInt(1)}}, "[001]{5}103"},
		{"mixed", []Run{
			{Value: 1, Count: big.NewInt(1)},
			{Value: 103, Count: big.NewInt(1)},
			{Value: 323, Count: big.NewInt(1)},
			{Value: 373, Count: big.NewInt(8)},
		}, "1103323[373]{8}"},
	}
	for _, tc := range testCases {
		tt.Run(tc.name, func(tt *testing.T) {
			x := mustNew(tt, tc.runs)
			if got := ToNotation(x); got != tc.want {
				tt.Fatalf("ToNotation: got %q, want %q", got, tc.want)
			}
			round, err := FromNotation(tc.want)
			if err != nil {
				tt.Fatalf("FromNotation(%q): %v", tc.want, err)
			}
			if !round.Equal(x) {
				tt.Fatalf("FromNotation(%q): got %v, want %v", tc.want, round, x)
			}
		})
	}
}

// TestFromNotationAcceptsLooseSpellings covers decodings ToNotation never
// emits but the grammar allows: singleton periods spelled digit by digit
// coalesce with their neighbors, and a zero-padded leading group is read
// the same as its unpadded form.
func TestFromNotationAcceptsLooseSpellings(tt *testing.T) {
	testCases := []struct {
		in   string
		want []Run
	}{
		{"373373", []Run{{Value: 373, Count: big.NewInt(2)}}},
		{"[373]{2}373", []Run{{Value: 373, Count: big.NewInt(3)}}},
		{"001373", []Run{{Value: 1, Count: big.NewInt(1)}, {Value: 373, Count: big.NewInt(1)}}},
		{"1104", []Run{{Value: 1, Count: big.NewInt(1)}, {Value: 104, Count: big.NewInt(1)}}},
	}
	for _, tc := range testCases {
		got, err := FromNotation(tc.in)
		if err != nil {
			tt.Fatalf("FromNotation(%q): %v", tc.in, err)
		}
		if want := mustNew(tt, tc.want); !got.Equal(want) {
			tt.Fatalf("FromNotation(%q): got %v, want %v", tc.in, got, want)
		}
	}
}

func TestFromNotationRejectsGarbage(tt *testing.T) {
	testCases := []string{
		"",
		"abc",
		"[373]",
		"[373]{}",
		"[373]{0}",
		"[373]{-2}",
		"[37]{2}",
		"[1000]{1}",
		"{2}",
		"[373]{2}12",
		"373[5]{2}",
		"0373",
		"5*1",
	}
	for _, s := range testCases {
		if _, err := FromNotation(s); err == nil {
			tt.Fatalf("FromNotation(%q): got nil error, want non-nil", s)
		}
	}
}

// TestFromBigIntDigitRuns checks that FromBigInt groups consecutive equal
// base-1000 digits into a single run instead of one run per digit.
func TestFromBigIntDigitRuns(tt *testing.T) {
	// 7_007_007 in base 1000 is the digits [7, 7, 7], one run of length 3.
	x, err := FromBigInt(big.NewInt(7007007))
	if err != nil {
		tt.Fatalf("FromBigInt: %v", err)
	}
	want := []Run{{Value: 7, Count: big.NewInt(3)}}
	if diff := cmp.Diff(want, x.Runs(), cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })); diff != "" {
		tt.Fatalf("Runs() mismatch (-want +got):\n%s", diff)
	}
}

// TestRapidFromBigIntBigIntRoundTrip property-tests that converting a
// non-negative integer to a PLC and back recovers the original value, for
// arbitrary-sized (but materializable) inputs.
func TestRapidFromBigIntBigIntRoundTrip(tt *testing.T) {
	rapid.Check(tt, func(t *rapid.T) {
		bitLen := rapid.IntRange(0, 4096).Draw(t, "bitLen")
		n := new(big.Int).Lsh(big.NewInt(1), uint(bitLen))
		n.Sub(n, big.NewInt(1))
		offset := rapid.Int64Range(0, 1<<30).Draw(t, "offset")
		n.Add(n, big.NewInt(offset))

		x, err := FromBigInt(n)
		if err != nil {
			t.Fatalf("FromBigInt: %v", err)
		}
		got, err := x.BigInt()
		if err != nil {
			t.Fatalf("BigInt: %v", err)
		}
		if got.Cmp(n) != 0 {
			t.Fatalf("round trip mismatch: got %v, want %v", got, n)
		}
	})
}

// TestRapidNotationRoundTrip property-tests that ToNotation/FromNotation
// round-trip any canonical PLC built from a random run list.
func TestRapidNotationRoundTrip(tt *testing.T) {
	rapid.Check(tt, func(t *rapid.T) {
		numRuns := rapid.IntRange(1, 8).Draw(t, "numRuns")
		runs := make([]Run, 0, numRuns)
		lastValue := int32(-1)
		for i := 0; i < numRuns; i++ {
			v := int32(rapid.IntRange(0, 999).Draw(t, "value"))
			if v == lastValue {
				continue
			}
			if v == 0 && i != 0 {
				continue
			}
			lastValue = v
			c := big.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(t, "count"))
			runs = append(runs, Run{Value: v, Count: c})
		}
		if len(runs) == 0 {
			return
		}
		x, err := New(runs)
		if err != nil {
			t.Skip("non-canonical draw")
		}
		got, err := FromNotation(ToNotation(x))
		if err != nil {
			t.Fatalf("FromNotation(ToNotation(x)): %v", err)
		}
		if !got.Equal(x) {
			t.Fatalf("notation round trip mismatch: got %v, want %v", got, x)
		}
	})
}

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

// ----------------

// Package occurrence counts how many times a given base-1000 digit
// appears across all base-1000 digits of all integers in a half-open
// range, where the range bounds are period-list compressions (plc.PLC)
// and therefore may themselves be far too large to enumerate one integer
// at a time.
//
// The standard digit-occurrence algorithm (count occurrences of digit d
// among 0..z-1 by walking z's own digits from most to least significant,
// tracking a prefix and a suffix term at each position) is lifted from
// per-digit iteration to per-run closed-form arithmetic: a run of the
// bound's own period list, of period value v repeated r times, is folded
// in one step using the base-1000 repunit identity (1000^m - 1) / 999
// instead of r individual position updates.
//
// This package depends on plc and the standard math/big package.
package occurrence

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/wechsler-chains/fourchain/plc"
)

// ErrOutOfRange is returned when the digit argument d is not in [0, 1000).
var ErrOutOfRange = errors.New("occurrence: digit out of range")

// ErrBoundTooWide is returned when a range bound has more periods than the
// per-run folding can index. The bounds this module's length computations
// pass are zillion-index-scale integers of at most a few dozen periods, so
// the limit is never approached in practice; refusing wider bounds keeps
// the fixed-width position arithmetic below well defined.
var ErrBoundTooWide = errors.New("occurrence: bound has too many periods")

var (
	oneThousand  = big.NewInt(1000)
	oneThousand1 = big.NewInt(999)
	bigOne       = big.NewInt(1)
)

func pow1000(exp uint64) *big.Int {
	return new(big.Int).Exp(oneThousand, new(big.Int).SetUint64(exp), nil)
}

// repunit1000 returns (1000^exp - 1) / 999, the base-1000 value of exp
// consecutive periods all equal to 1.
func repunit1000(exp uint64) *big.Int {
	if exp == 0 {
		return new(big.Int)
	}
	num := new(big.Int).Sub(pow1000(exp), bigOne)
	return new(big.Int).Quo(num, oneThousand1)
}

func indicator(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// valueOf converts a (possibly empty) run slice to a *big.Int, one
// closed-form multiply-and-add per run. Callers in this package only ever
// do this for the part of a bound strictly above or strictly below one of
// the bound's own runs; such a slice may begin with a zero run (the
// truncation of a bound whose interior has zero periods), which is why
// this does not round-trip through a canonical PLC.
func valueOf(runs []plc.Run) *big.Int {
	out := new(big.Int)
	for _, r := range runs {
		n := r.Count.Uint64()
		out.Mul(out, pow1000(n))
		out.Add(out, new(big.Int).Mul(big.NewInt(int64(r.Value)), repunit1000(n)))
	}
	return out
}

// OPlus returns O(d, 0, z): the number of times digit d appears among all
// base-1000 digits of all integers in [0, z).
func OPlus(d int, z plc.PLC) (*big.Int, error) {
	if d < 0 || d >= 1000 {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, d)
	}
	if z.IsZero() {
		return new(big.Int), nil
	}
	if !z.PeriodCount().IsUint64() {
		return nil, fmt.Errorf("%w: %v", ErrBoundTooWide, z.PeriodCount())
	}

	runs := z.Runs()
	total := new(big.Int)
	pLo := new(big.Int) // least-significant position of the run currently being folded in

	// runs is most-significant first; walk from the least significant
	// run (the end of the slice) toward the most significant so pLo
	// accumulates correctly.
	for i := len(runs) - 1; i >= 0; i-- {
		run := runs[i]
		above := valueOf(runs[:i])
		below := valueOf(runs[i+1:])

		r := run.Count.Uint64()
		v := int64(run.Value)
		pLoExp := pLo.Uint64()

		bPLo := pow1000(pLoExp)
		bRm1 := pow1000(r - 1)
		repR := repunit1000(r)

		// Term1: sum over the run's r positions of b^p * floor(z/b^(p+1)).
		term1Inner := new(big.Int).Mul(above, new(big.Int).SetUint64(r))
		term1Inner.Mul(term1Inner, bRm1)
		vTimesRest := new(big.Int).Mul(big.NewInt(v), new(big.Int).Sub(new(big.Int).Mul(new(big.Int).SetUint64(r), bRm1), repR))
		vTimesRest = new(big.Int).Quo(vTimesRest, oneThousand1)
		term1Inner.Add(term1Inner, vTimesRest)
		term1 := new(big.Int).Mul(bPLo, term1Inner)

		// Term2: sum over the run's r positions of b^p * ([v>d] - [d=0]).
		factor2 := indicator(v > int64(d)) - indicator(d == 0)
		term2 := new(big.Int).Mul(bPLo, repR)
		term2.Mul(term2, big.NewInt(factor2))

		// Term3: sum over the run's r positions of (z mod b^p) * [v=d].
		var term3 *big.Int
		if v == int64(d) {
			rBelow := new(big.Int).Mul(new(big.Int).SetUint64(r), below)
			vRest := new(big.Int).Mul(big.NewInt(v), new(big.Int).Sub(repR, new(big.Int).SetUint64(r)))
			vRest = new(big.Int).Quo(vRest, oneThousand1)
			vRest.Mul(vRest, bPLo)
			term3 = new(big.Int).Add(rBelow, vRest)
		} else {
			term3 = new(big.Int)
		}

		total.Add(total, term1)
		total.Add(total, term2)
		total.Add(total, term3)

		pLo.Add(pLo, run.Count)
	}

	if d == 0 {
		total.Add(total, bigOne)
	}
	return total, nil
}

// O returns the number of times digit d appears across all base-1000
// digits of all integers in the half-open interval [a, z).
func O(d int, a, z plc.PLC) (*big.Int, error) {
	if d < 0 || d >= 1000 {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, d)
	}
	if !a.Less(z) {
		return new(big.Int), nil
	}
	zPlus, err := OPlus(d, z)
	if err != nil {
		return nil, err
	}
	aPlus, err := OPlus(d, a)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Sub(zPlus, aPlus), nil
}

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

// Package lin finds letter-inefficient numbers (LINs): for a target
// letter-length, the smallest positive integer whose English spelling has
// exactly that many letters.
//
// Small targets are served from a table. Larger targets are located in
// two phases: an exponential-then-binary search over how many leading
// periods of value 373 (the period whose spelling packs the most letters
// per period, "three hundred seventy-three") are needed to reach or pass
// the target, followed by a refinement that trades a prefix of those
// periods for 001 periods and a two-period window chosen from a fixed
// offset table to close the exact gap, keeping the period count.
//
// This package depends on plc, lexicon, length, and math/big.
package lin

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/wechsler-chains/fourchain/lexicon"
	"github.com/wechsler-chains/fourchain/length"
	"github.com/wechsler-chains/fourchain/plc"
)

// ErrUnreachableLength is returned when F is called with a target length
// below 3: no positive integer's spelling is that short.
var ErrUnreachableLength = errors.New("lin: unreachable length")

var (
	bigOne         = big.NewInt(1)
	bigTwo         = big.NewInt(2)
	bigTwentyOne   = big.NewInt(21)
	repeatedPeriod = int32(373)
)

// pair is one (value, count) entry used while assembling a result PLC;
// count may be zero, meaning the entry is omitted.
type pair struct {
	value int32
	count *big.Int
}

// buildRuns coalesces a list of (value, count) pairs, most significant
// first, into a canonical run list: zero-count pairs are dropped, and
// adjacent pairs sharing a value are merged, exactly as F's Phase 2
// construction requires when m-1, n-m-1, y, or z land on a shared value.
func buildRuns(pairs []pair) (plc.PLC, error) {
	var runs []plc.Run
	for _, p := range pairs {
		if p.count == nil || p.count.Sign() <= 0 {
			continue
		}
		if len(runs) > 0 && runs[len(runs)-1].Value == p.value {
			runs[len(runs)-1].Count.Add(runs[len(runs)-1].Count, p.count)
			continue
		}
		runs = append(runs, plc.Run{Value: p.value, Count: new(big.Int).Set(p.count)})
	}
	if len(runs) == 0 {
		return plc.Zero(), nil
	}
	return plc.New(runs)
}

// eRepeated returns the PLC [(373, n)], the integer formed by n
// consecutive periods of value 373.
func eRepeated(n *big.Int) (plc.PLC, error) {
	return plc.New([]plc.Run{{Value: repeatedPeriod, Count: new(big.Int).Set(n)}})
}

func lengthOfE(n *big.Int) (*big.Int, error) {
	e, err := eRepeated(n)
	if err != nil {
		return nil, err
	}
	return length.L(e)
}

// ceilDiv21 returns ceil(x / 21) for a non-negative x.
func ceilDiv21(x *big.Int) *big.Int {
	sum := new(big.Int).Add(x, new(big.Int).Sub(bigTwentyOne, bigOne))
	return sum.Quo(sum, bigTwentyOne)
}

// findRepeatCount locates the unique n with L(E_{n-1}) < target <= L(E_n),
// via exponential doubling followed by binary search.
func findRepeatCount(target *big.Int) (*big.Int, error) {
	n := big.NewInt(1)
	prev := big.NewInt(0)
	for {
		ln, err := lengthOfE(n)
		if err != nil {
			return nil, err
		}
		if ln.Cmp(target) >= 0 {
			break
		}
		prev.Set(n)
		n = new(big.Int).Mul(n, bigTwo)
	}

	lo, hi := prev, n
	for new(big.Int).Sub(hi, lo).Cmp(bigOne) > 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Quo(mid, bigTwo)
		lm, err := lengthOfE(mid)
		if err != nil {
			return nil, err
		}
		if lm.Cmp(target) >= 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}

// F returns the smallest positive integer whose spelling has exactly
// target letters, as a PLC. target is a letter-length, not a value to be
// spelled; for the late elements of a long chain it can itself be an
// enormous integer, so it is accepted as a *big.Int rather than an int.
func F(target *big.Int) (plc.PLC, error) {
	if target.Cmp(big.NewInt(3)) < 0 {
		return plc.PLC{}, fmt.Errorf("%w: %v", ErrUnreachableLength, target)
	}
	if target.Cmp(big.NewInt(24)) <= 0 {
		v, ok := lexicon.SmallLIN[int(target.Int64())]
		if !ok {
			return plc.PLC{}, fmt.Errorf("%w: %v", ErrUnreachableLength, target)
		}
		return plc.New([]plc.Run{{Value: v, Count: big.NewInt(1)}})
	}

	n, err := findRepeatCount(target)
	if err != nil {
		return plc.PLC{}, err
	}
	lEn, err := lengthOfE(n)
	if err != nil {
		return plc.PLC{}, err
	}
	if lEn.Cmp(target) == 0 {
		return eRepeated(n)
	}

	shortfall := new(big.Int).Sub(lEn, target)
	m := ceilDiv21(shortfall)

	nMinusM := new(big.Int).Sub(n, m)
	x0, err := buildRuns([]pair{
		{value: 1, count: m},
		{value: repeatedPeriod, count: nMinusM},
	})
	if err != nil {
		return plc.PLC{}, err
	}
	lx0, err := length.L(x0)
	if err != nil {
		return plc.PLC{}, err
	}
	d := new(big.Int).Sub(target, lx0)
	if d.Sign() == 0 {
		return x0, nil
	}
	if !d.IsInt64() {
		return plc.PLC{}, fmt.Errorf("lin: offset %v out of table range", d)
	}
	mMinusOne := new(big.Int).Sub(m, bigOne)

	if nMinusM.Sign() == 0 {
		// Every period was converted to 001, so there is no trailing 373
		// for the two-period transition window to land on (this only
		// happens when n = 2). The shortfall is closed by widening the
		// least significant period alone.
		v, ok := lexicon.SmallLIN[int(d.Int64())+lexicon.V[1]]
		if !ok {
			return plc.PLC{}, fmt.Errorf("lin: offset %v out of table range", d)
		}
		return buildRuns([]pair{
			{value: 1, count: mMinusOne},
			{value: v, count: bigOne},
		})
	}

	offset, ok := lexicon.OffsetTable[int(d.Int64())]
	if !ok {
		return plc.PLC{}, fmt.Errorf("lin: offset %v out of table range", d)
	}

	nMinusMMinusOne := new(big.Int).Sub(nMinusM, bigOne)
	return buildRuns([]pair{
		{value: 1, count: mMinusOne},
		{value: offset.Y, count: bigOne},
		{value: offset.Z, count: bigOne},
		{value: repeatedPeriod, count: nMinusMMinusOne},
	})
}

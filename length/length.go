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

// Package length computes the letter count of the English (Conway-Wechsler
// short-scale) spelling of a period-list-compressed integer, without ever
// producing the spelling itself.
//
// The count splits into two parts: L_V, the letters contributed by each
// period's own one-to-three-digit numeral, and L_N, the letters
// contributed by the "thousand"/"million"/"billion"/... scale word that
// follows each non-zero period except the units period. L_N is computed
// by re-using the occurrence package's digit-counting machinery one level
// removed: the zillion index of each period is itself an integer, and the
// scale word is, by construction, named the same way a number is spelled,
// just from table N instead of table V.
//
// This package depends on plc, lexicon, occurrence, and math/big.
package length

import (
	"math/big"

	"github.com/wechsler-chains/fourchain/lexicon"
	"github.com/wechsler-chains/fourchain/occurrence"
	"github.com/wechsler-chains/fourchain/plc"
)

// LV returns the period-value contribution to x's letter count: the sum,
// over x's runs, of V[value] * count.
func LV(x plc.PLC) *big.Int {
	total := new(big.Int)
	for _, r := range x.Runs() {
		contribution := new(big.Int).Mul(big.NewInt(int64(lexicon.V[r.Value])), r.Count)
		total.Add(total, contribution)
	}
	return total
}

// Z returns the zillion index of x: one less than its total period count.
func Z(x plc.PLC) *big.Int {
	p := x.PeriodCount()
	return new(big.Int).Sub(p, big.NewInt(1))
}

// LZ implements the L_Z(a, z) formula shared by L_N's main term and its
// zero-run corrections: the total scale-word letter count for zillion
// indices in the range described by a and z.
func LZ(a, z plc.PLC) (*big.Int, error) {
	aVal, err := a.BigInt()
	if err != nil {
		return nil, err
	}
	zVal, err := z.BigInt()
	if err != nil {
		return nil, err
	}

	diff := new(big.Int).Sub(zVal, aVal)
	total := new(big.Int).Mul(big.NewInt(2), diff)

	// The lone thousand word is a letter longer than the systematic
	// pattern's nillion; the bonus belongs to the range containing
	// index 0.
	if aVal.Sign() == 0 && zVal.Sign() > 0 {
		total.Add(total, big.NewInt(1))
	}

	for d := 0; d < 1000; d++ {
		count, err := occurrence.O(d, a, z)
		if err != nil {
			return nil, err
		}
		if count.Sign() == 0 {
			continue
		}
		term := new(big.Int).Mul(big.NewInt(int64(lexicon.N[d])), count)
		total.Add(total, term)
	}
	return total, nil
}

// LN returns the scale-word contribution to x's letter count.
func LN(x plc.PLC) (*big.Int, error) {
	zx, err := plc.FromBigInt(Z(x))
	if err != nil {
		return nil, err
	}
	total, err := LZ(plc.Zero(), zx)
	if err != nil {
		return nil, err
	}

	// The scale word at zillion index k is named by the integer k-1 in
	// LZ's enumeration, and index 0 (the units period) has no scale word
	// at all, so a zero run covering zillion indices [p, p+count)
	// suppresses the words named by the integers in [max(p-1,0), p+count-1).
	runs := x.Runs()
	pos := new(big.Int)
	for i := len(runs) - 1; i >= 0; i-- {
		r := runs[i]
		if r.Value == 0 {
			start := new(big.Int).Sub(pos, big.NewInt(1))
			if start.Sign() < 0 {
				start.SetInt64(0)
			}
			end := new(big.Int).Add(pos, r.Count)
			end.Sub(end, big.NewInt(1))
			pStart, err := plc.FromBigInt(start)
			if err != nil {
				return nil, err
			}
			pEnd, err := plc.FromBigInt(end)
			if err != nil {
				return nil, err
			}
			correction, err := LZ(pStart, pEnd)
			if err != nil {
				return nil, err
			}
			total.Sub(total, correction)
		}
		pos.Add(pos, r.Count)
	}
	return total, nil
}

// L returns the total letter count of x's spelling: L_V(x) + L_N(x).
func L(x plc.PLC) (*big.Int, error) {
	ln, err := LN(x)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(LV(x), ln), nil
}

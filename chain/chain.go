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

// Package chain assembles minimal four-chains: for each length, the first
// occurring sequence of positive integers where every term is the letter
// count of the next term's English spelling, ending at the fixed point 4.
//
// The sequence is stored fixed-point-outward: index 0 is always the PLC
// representing 4, and each later index holds the term whose letter count
// is the term before it. The first chain of a given length is, with two
// exceptions, a one-element extension of the first chain one shorter:
// the new last term is lin.F applied to the value of the current last
// term, since F's defining property L(F(l)) = l is exactly what the next
// link must satisfy. The exceptions are where that extension dies on a
// sterile value. Extending the length-3 chain (4, 5, 3) gives F(3) = 1,
// and no positive integer's name has just one letter, so nothing extends
// the length-4 chain in turn; the length-5 chain restarts from its own
// seed (4, 5, 3, 6, 11). From there the growth rule holds for every
// longer chain.
//
// This package depends on plc and lin.
package chain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/wechsler-chains/fourchain/lin"
	"github.com/wechsler-chains/fourchain/plc"
)

// ErrUnsupportedLength is returned when MinimalChain is asked for a chain
// shorter than three terms. The length-1 and length-2 "chains" are the
// degenerate sequences (4) and (4, 5); this package starts at the first
// length with a non-trivial seed.
var ErrUnsupportedLength = errors.New("chain: minimal chain length must be at least 3")

// The two irregular seeds, fixed-point-outward. Every other length grows
// from one of these by the F-extension rule; these two cannot, because
// the extension crossing them lands on the sterile values 1 and 2.
var (
	seed3 = [...]int64{4, 5, 3}
	seed5 = [...]int64{4, 5, 3, 6, 11}
)

func seed(values []int64) ([]plc.PLC, error) {
	out := make([]plc.PLC, len(values))
	for i, v := range values {
		x, err := plc.New([]plc.Run{{Value: int32(v), Count: big.NewInt(1)}})
		if err != nil {
			return nil, fmt.Errorf("chain: building seed term %d: %w", v, err)
		}
		out[i] = x
	}
	return out, nil
}

// MinimalChain returns the first n terms of the minimal four-chain,
// fixed-point-outward: result[0] is the PLC for 4, result[n-1] is the
// chain's outermost term (its largest term for n >= 5). n must be at
// least 3. For n >= 10 it returns an error: the ninth term has too many
// periods to be materialized as the next length target.
func MinimalChain(n int) ([]plc.PLC, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedLength, n)
	}
	values := seed3[:]
	if n >= len(seed5) {
		values = seed5[:]
	}
	chain, err := seed(values)
	if err != nil {
		return nil, err
	}
	for k := len(chain); k < n; k++ {
		last := chain[len(chain)-1]
		target, err := last.BigInt()
		if err != nil {
			return nil, fmt.Errorf("chain: term %d is too large to extend: %w", k-1, err)
		}
		next, err := lin.F(target)
		if err != nil {
			return nil, fmt.Errorf("chain: growing term %d: %w", k, err)
		}
		chain = append(chain, next)
	}
	return chain, nil
}

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

// Package fourchain locates the first (smallest) four-chain of a given
// target length: the sequence of positive integers where each term is
// the letter-count of the previous term's English spelling, terminating
// at the fixed point 4.
//
// This package is a thin facade over the packages that do the actual
// work -- plc, lexicon, occurrence, length, lin, and chain -- and exists
// to collect the module's public operations under a single import:
// ComputeLength, FindLIN, MinimalChain, PLCPeriodCount, PLCToNotation,
// and PLCFromNotation. Callers who only need one of the underlying
// packages are free to import it directly instead.
package fourchain

import (
	"math/big"

	"github.com/wechsler-chains/fourchain/chain"
	"github.com/wechsler-chains/fourchain/length"
	"github.com/wechsler-chains/fourchain/lin"
	"github.com/wechsler-chains/fourchain/plc"
)

// PLC is the period-list compression of an arbitrary-precision integer;
// see package plc for its construction, comparison, and conversion
// operations.
type PLC = plc.PLC

// ComputeLength returns the number of letters in x's English spelling,
// without ever producing the spelling itself.
func ComputeLength(x PLC) (*big.Int, error) {
	return length.L(x)
}

// FindLIN returns the smallest positive integer whose English spelling
// has exactly l letters, as a PLC. l may itself be an enormous integer
// when called on a late chain element.
func FindLIN(l *big.Int) (PLC, error) {
	return lin.F(l)
}

// MinimalChain returns the first n terms of the minimal four-chain,
// ordered from the fixed point 4 outward: result[0] is always 4, and
// result[n-1] is the chain's outermost term (its largest term for n >= 5).
// n must be at least 3; for n >= 10 it returns an error.
func MinimalChain(n int) ([]PLC, error) {
	return chain.MinimalChain(n)
}

// PLCPeriodCount returns the total number of base-1000 periods in x.
func PLCPeriodCount(x PLC) *big.Int {
	return x.PeriodCount()
}

// PLCToNotation encodes x as a compact, round-trippable string.
func PLCToNotation(x PLC) string {
	return plc.ToNotation(x)
}

// PLCFromNotation decodes a string produced by PLCToNotation back into a
// PLC.
func PLCFromNotation(s string) (PLC, error) {
	return plc.FromNotation(s)
}

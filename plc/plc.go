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

// Package plc provides period-list compression: a canonical representation
// of non-negative, arbitrary-precision integers as an ordered list of
// base-1000 digit runs, most significant first.
//
// A PLC never materializes the integer it represents as a sequence of
// digits. Instead it holds, for each run, the repeated base-1000 digit
// (period value, in [0 ..= 999]) and how many consecutive times it repeats
// (period count, held as a *big.Int since it can itself be astronomically
// large). This lets the package represent integers with far more digits
// than could ever be held in memory one digit at a time, so long as those
// digits fall into long runs of repetition.
//
// This package depends only on the standard math/big package.
package plc

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidRun is returned when a run's period value or period count falls
// outside its valid range.
var ErrInvalidRun = errors.New("plc: invalid run")

// ErrInvalidPLC is returned when a list of runs does not satisfy the
// canonical-form invariants (no adjacent equal-value runs, no leading zero
// run except the lone zero value).
var ErrInvalidPLC = errors.New("plc: invalid period list")

// ErrTooLargeToMaterialize is returned by BigInt when the PLC's period
// count is too large for its represented integer to ever be built digit by
// digit.
var ErrTooLargeToMaterialize = errors.New("plc: value has too many digits to materialize")

var (
	oneThousand = big.NewInt(1000)
	bigOne      = big.NewInt(1)
)

// maxMaterializableDigits bounds BigInt and FromBigInt's digit-by-digit
// work. A period count above this, summed across runs, means the caller is
// asking this package to do exactly what it exists to avoid: building an
// astronomically large integer one digit at a time.
const maxMaterializableDigits = 1 << 20

// Run is a single base-1000 digit repeated Count times.
type Run struct {
	// Value is the repeated base-1000 digit, in [0, 1000).
	Value int32
	// Count is the number of times Value repeats. It is always >= 1.
	Count *big.Int
}

func (r Run) valid() error {
	if r.Value < 0 || r.Value >= 1000 {
		return fmt.Errorf("%w: period value %d out of range", ErrInvalidRun, r.Value)
	}
	if r.Count == nil || r.Count.Sign() <= 0 {
		return fmt.Errorf("%w: period count must be positive", ErrInvalidRun)
	}
	return nil
}

// PLC is a period-list compression: Runs holds base-1000 digit runs, most
// significant first. The zero value of PLC is not valid; use Zero() or New.
type PLC struct {
	runs []Run
}

// Zero returns the PLC representing the integer 0.
func Zero() PLC {
	return PLC{runs: []Run{{Value: 0, Count: big.NewInt(1)}}}
}

// New builds a PLC from runs, most significant first, validating canonical
// form: every run must be individually valid, no two adjacent runs may
// share a period value (they would simply be one longer run), and a
// leading run of value 0 is only allowed as the single pair (0,1), the
// canonical representation of zero.
func New(runs []Run) (PLC, error) {
	if len(runs) == 0 {
		return PLC{}, fmt.Errorf("%w: empty run list", ErrInvalidPLC)
	}
	for i, r := range runs {
		if err := r.valid(); err != nil {
			return PLC{}, err
		}
		if i > 0 && runs[i-1].Value == r.Value {
			return PLC{}, fmt.Errorf("%w: adjacent runs %d and %d share period value %d", ErrInvalidPLC, i-1, i, r.Value)
		}
	}
	if runs[0].Value == 0 && (len(runs) != 1 || runs[0].Count.Cmp(bigOne) != 0) {
		return PLC{}, fmt.Errorf("%w: leading zero run is only valid as the lone zero value", ErrInvalidPLC)
	}
	out := make([]Run, len(runs))
	for i, r := range runs {
		out[i] = Run{Value: r.Value, Count: new(big.Int).Set(r.Count)}
	}
	return PLC{runs: out}, nil
}

// Runs returns a defensive copy of x's runs, most significant first.
func (x PLC) Runs() []Run {
	out := make([]Run, len(x.runs))
	for i, r := range x.runs {
		out[i] = Run{Value: r.Value, Count: new(big.Int).Set(r.Count)}
	}
	return out
}

// IsZero reports whether x represents the integer 0.
func (x PLC) IsZero() bool {
	return len(x.runs) == 1 && x.runs[0].Value == 0
}

// PeriodCount returns the total number of base-1000 digits x is made of:
// the sum, across all runs, of each run's Count.
func (x PLC) PeriodCount() *big.Int {
	total := new(big.Int)
	for _, r := range x.runs {
		total.Add(total, r.Count)
	}
	return total
}

// Equal reports whether x and y represent the same integer. Because PLC is
// always held in canonical form, this is a structural comparison.
func (x PLC) Equal(y PLC) bool {
	if len(x.runs) != len(y.runs) {
		return false
	}
	for i := range x.runs {
		if x.runs[i].Value != y.runs[i].Value {
			return false
		}
		if x.runs[i].Count.Cmp(y.runs[i].Count) != 0 {
			return false
		}
	}
	return true
}

// Less reports whether x represents a strictly smaller integer than y. It
// compares period counts first (more base-1000 digits means a larger
// integer, since neither PLC has leading zero runs beyond the zero value
// itself), then compares runs from most significant to least.
func (x PLC) Less(y PLC) bool {
	xp, yp := x.PeriodCount(), y.PeriodCount()
	if c := xp.Cmp(yp); c != 0 {
		return c < 0
	}
	i, j := 0, 0
	xOff, yOff := big.NewInt(0), big.NewInt(0)
	for i < len(x.runs) && j < len(y.runs) {
		xRem := new(big.Int).Sub(x.runs[i].Count, xOff)
		yRem := new(big.Int).Sub(y.runs[j].Count, yOff)
		if x.runs[i].Value != y.runs[j].Value {
			return x.runs[i].Value < y.runs[j].Value
		}
		switch xRem.Cmp(yRem) {
		case 0:
			i, j = i+1, j+1
			xOff, yOff = big.NewInt(0), big.NewInt(0)
		case -1:
			i++
			yOff.Add(yOff, xRem)
			xOff = big.NewInt(0)
		default:
			j++
			xOff.Add(xOff, yRem)
			yOff = big.NewInt(0)
		}
	}
	return false
}

// String returns a human-readable (not round-trippable; see ToNotation)
// rendering of x's runs.
func (x PLC) String() string {
	s := ""
	for i, r := range x.runs {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("(%d,%s)", r.Value, r.Count.String())
	}
	return s
}

// FromBigInt builds the PLC representation of a non-negative integer,
// grouping its base-1000 digits into runs. It refuses to run if x has more
// digits than maxMaterializableDigits, since that is precisely the regime
// this package exists to avoid materializing.
func FromBigInt(x *big.Int) (PLC, error) {
	if x.Sign() < 0 {
		return PLC{}, fmt.Errorf("%w: negative value", ErrInvalidPLC)
	}
	if x.Sign() == 0 {
		return Zero(), nil
	}

	digits := make([]int32, 0, 64)
	rem := new(big.Int).Set(x)
	q, m := new(big.Int), new(big.Int)
	for rem.Sign() != 0 {
		if len(digits) > maxMaterializableDigits {
			return PLC{}, fmt.Errorf("%w", ErrTooLargeToMaterialize)
		}
		q.QuoRem(rem, oneThousand, m)
		digits = append(digits, int32(m.Int64()))
		rem.Set(q)
	}
	// digits is least-significant-first; reverse into runs most-significant-first.
	var runs []Run
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if len(runs) > 0 && runs[len(runs)-1].Value == d {
			runs[len(runs)-1].Count.Add(runs[len(runs)-1].Count, bigOne)
			continue
		}
		runs = append(runs, Run{Value: d, Count: new(big.Int).Set(bigOne)})
	}
	return PLC{runs: runs}, nil
}

// BigInt converts x into a *big.Int, expanding every run into its
// constituent base-1000 digits. It returns ErrTooLargeToMaterialize if x's
// period count is too large to build digit by digit; callers operating on
// chain elements beyond the first few should never call this and should
// instead work with the PLC's runs directly.
func (x PLC) BigInt() (*big.Int, error) {
	total := x.PeriodCount()
	if !total.IsInt64() || total.Int64() > maxMaterializableDigits {
		return nil, fmt.Errorf("%w", ErrTooLargeToMaterialize)
	}
	out := new(big.Int)
	for _, r := range x.runs {
		n := r.Count.Int64()
		for i := int64(0); i < n; i++ {
			out.Mul(out, oneThousand)
			out.Add(out, big.NewInt(int64(r.Value)))
		}
	}
	return out, nil
}

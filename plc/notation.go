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
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ToNotation encodes x as a compact, round-trippable string. Runs are
// listed most significant first. A run that repeats is written as its
// zero-padded three-digit period value in square brackets followed by its
// repetition count in braces, "[vvv]{r}". A run that occurs just once is
// written as the bare three-digit value, and the leading run drops its
// leading zeros. For example, the runs (1,1) (103,1) (323,1) (373,8)
// encode as "1103323[373]{8}".
func ToNotation(x PLC) string {
	b := &strings.Builder{}
	for i, r := range x.runs {
		switch {
		case r.Count.Cmp(bigOne) != 0:
			fmt.Fprintf(b, "[%03d]{%s}", r.Value, r.Count.String())
		case i == 0:
			fmt.Fprintf(b, "%d", r.Value)
		default:
			fmt.Fprintf(b, "%03d", r.Value)
		}
	}
	return b.String()
}

// FromNotation decodes a string produced by ToNotation back into a PLC.
// It is lenient about spellings ToNotation itself never emits (a run of
// singleton periods written digit by digit, a zero-padded leading group)
// but validates canonical form exactly as New does.
func FromNotation(s string) (PLC, error) {
	if s == "" {
		return PLC{}, fmt.Errorf("%w: empty notation", ErrInvalidPLC)
	}
	var runs []Run
	appendPeriods := func(v int32, c *big.Int) {
		if len(runs) > 0 && runs[len(runs)-1].Value == v {
			runs[len(runs)-1].Count.Add(runs[len(runs)-1].Count, c)
			return
		}
		runs = append(runs, Run{Value: v, Count: new(big.Int).Set(c)})
	}

	for i := 0; i < len(s); {
		switch {
		case s[i] == '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return PLC{}, fmt.Errorf("%w: unterminated %q at offset %d", ErrInvalidPLC, "[", i)
			}
			j += i
			if j-i != 4 {
				return PLC{}, fmt.Errorf("%w: bracketed period value %q is not three digits", ErrInvalidPLC, s[i+1:j])
			}
			v, err := parsePeriodValue(s[i+1 : j])
			if err != nil {
				return PLC{}, err
			}
			if j+1 >= len(s) || s[j+1] != '{' {
				return PLC{}, fmt.Errorf("%w: run at offset %d has no repetition count", ErrInvalidPLC, i)
			}
			k := strings.IndexByte(s[j+1:], '}')
			if k < 0 {
				return PLC{}, fmt.Errorf("%w: unterminated %q at offset %d", ErrInvalidPLC, "{", j+1)
			}
			k += j + 1
			count, ok := new(big.Int).SetString(s[j+2:k], 10)
			if !ok || count.Sign() <= 0 {
				return PLC{}, fmt.Errorf("%w: bad repetition count %q", ErrInvalidPLC, s[j+2:k])
			}
			appendPeriods(v, count)
			i = k + 1

		case isDigit(s[i]):
			j := i
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			seg := s[i:j]
			if head := len(seg) % 3; head != 0 {
				// Only the leading group may be shorter than a full period.
				if i != 0 {
					return PLC{}, fmt.Errorf("%w: digit group %q is not whole periods", ErrInvalidPLC, seg)
				}
				v, err := parsePeriodValue(seg[:head])
				if err != nil {
					return PLC{}, err
				}
				appendPeriods(v, bigOne)
				seg = seg[head:]
			}
			for len(seg) > 0 {
				v, err := parsePeriodValue(seg[:3])
				if err != nil {
					return PLC{}, err
				}
				appendPeriods(v, bigOne)
				seg = seg[3:]
			}
			i = j

		default:
			return PLC{}, fmt.Errorf("%w: unexpected byte %q at offset %d", ErrInvalidPLC, s[i], i)
		}
	}
	return New(runs)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func parsePeriodValue(t string) (int32, error) {
	v, err := strconv.Atoi(t)
	if err != nil || v < 0 || v >= 1000 {
		return 0, fmt.Errorf("%w: bad period value %q", ErrInvalidPLC, t)
	}
	return int32(v), nil
}

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

package lexicon

// SmallLIN maps a letter-length in [3, 24] to the smallest period value v
// in [1, 999] with V[v] equal to that length: the smallest positive
// integer under 1000 whose English spelling has that many letters. It is
// derived from V at init time rather than hand-transcribed, so it can
// never silently drift out of agreement with V.
var SmallLIN = map[int]int32{}

func init() {
	for v := 1; v < 1000; v++ {
		length := V[v]
		if length < 3 || length > 24 {
			continue
		}
		if existing, ok := SmallLIN[length]; !ok || int32(v) < existing {
			SmallLIN[length] = int32(v)
		}
	}
}

// OffsetPair is a (y, z) pair from the LIN offset table T.
type OffsetPair struct {
	Y, Z int32
}

// OffsetTable is indexed by d in [1, 21] (see lin.go's Phase 2 refinement):
// OffsetTable[d] gives the two-period transition window (y, z) with
// V[y]+V[z] = 27+d.
var OffsetTable = map[int]OffsetPair{
	1:  {3, 323},
	2:  {3, 373},
	3:  {11, 373},
	4:  {13, 323},
	5:  {13, 373},
	6:  {17, 373},
	7:  {23, 323},
	8:  {23, 373},
	9:  {73, 373},
	10: {101, 373},
	11: {103, 323},
	12: {103, 373},
	13: {111, 373},
	14: {113, 323},
	15: {113, 373},
	16: {117, 373},
	17: {123, 323},
	18: {123, 373},
	19: {173, 373},
	20: {323, 373},
	21: {373, 373},
}

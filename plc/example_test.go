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

package plc_test

import (
	"fmt"
	"log"
	"math/big"

	"github.com/wechsler-chains/fourchain/plc"
)

// Example demonstrates building a PLC from a dense integer, round-tripping
// it through notation, and reading back its period count without ever
// materializing the integer a second time.
func Example() {
	x, err := plc.FromBigInt(big.NewInt(373373000))
	if err != nil {
		log.Fatalf("FromBigInt: %v", err)
	}

	fmt.Println(plc.ToNotation(x))
	fmt.Println(x.PeriodCount())

	round, err := plc.FromNotation(plc.ToNotation(x))
	if err != nil {
		log.Fatalf("FromNotation: %v", err)
	}
	fmt.Println(round.Equal(x))

	// Output:
	// [373]{2}000
	// 3
	// true
}

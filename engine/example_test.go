package engine_test

import (
	"fmt"

	"github.com/nodetree/boolrank/bignat"
	"github.com/nodetree/boolrank/engine"
)

// ExampleEngine_Unrank demonstrates the default 1-based ranking, reproducing
// the first eight expressions in canonical order.
func ExampleEngine_Unrank() {
	e, err := engine.Init(6)
	if err != nil {
		panic(err)
	}

	for i := 1; i <= 8; i++ {
		out, err := e.Unrank(bignat.FromInt(i))
		if err != nil {
			panic(err)
		}
		fmt.Printf("#%d: %s\n", i, out)
	}

	// Output:
	// #1: A
	// #2: NOT(A)
	// #3: AND(A,A)
	// #4: AND(A,B)
	// #5: OR(A,A)
	// #6: OR(A,B)
	// #7: XOR(A,A)
	// #8: XOR(A,B)
}

// ExampleEngine_Total shows how the total cardinality grows with the
// configured bound.
func ExampleEngine_Total() {
	e, err := engine.Init(3)
	if err != nil {
		panic(err)
	}
	fmt.Println(e.Total().Decimal())

	// Output:
	// 9
}

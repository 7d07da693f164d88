package matching_test

import (
	"fmt"

	"github.com/katalvlaran/eyesclosed/matching"
	"github.com/katalvlaran/eyesclosed/oracle"
)

// ExampleComputeWithOrder matches the path 0-1-2-3 with vertex 2 first.
func ExampleComputeWithOrder() {
	g, _ := oracle.NewGraph(4)
	_ = g.Connect(0, 1)
	_ = g.Connect(1, 2)
	_ = g.Connect(2, 3)

	m, err := matching.ComputeWithOrder(g, []int{2, 0, 1, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("pairs:", m.Pairs())
	fmt.Println("unmatched:", m.Unmatched())
	// Output:
	// pairs: [(2,1)]
	// unmatched: [0 3]
}

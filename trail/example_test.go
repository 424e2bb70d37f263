// SPDX-License-Identifier: MIT

package trail_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphkit/loader"
	"github.com/katalvlaran/graphkit/trail"
)

// ExampleFindMinTrail loads a small multigraph and prints its cheapest trail.
func ExampleFindMinTrail() {
	g, err := loader.Load(strings.NewReader(`
1 2 5.0
1 2 2.0
2 3 3.0
1 3 9.0
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tr, err := trail.FindMinTrail(g, 1, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(trail.Format(tr))
	// Output: 1 -[1: 2.0]-> 2 -[0: 3.0]-> 3  (total = 5.0)
}

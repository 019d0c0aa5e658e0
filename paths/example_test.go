package paths_test

import (
	"fmt"

	"github.com/katalvlaran/multipath/core"
	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/paths"
)

// ExampleEnumerate lists both routes of a tied diamond.
func ExampleEnumerate() {
	g := core.NewGraph()
	_, _ = g.AddEdge("s", "A", 1, core.WithEdgeID("sA"))
	_, _ = g.AddEdge("s", "B", 1, core.WithEdgeID("sB"))
	_, _ = g.AddEdge("A", "t", 2, core.WithEdgeID("At"))
	_, _ = g.AddEdge("B", "t", 2, core.WithEdgeID("Bt"))

	res, _ := dijkstra.ShortestPaths(g, "s")
	ps, err := paths.Enumerate(res.Labels, "s", "t")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range ps {
		fmt.Println(p, p.Edges, p.Distance)
	}
	// Output:
	// s → A → t [sA At] 3
	// s → B → t [sB Bt] 3
}

// ExampleCount sizes the edge-variant set before enumerating it.
func ExampleCount() {
	g := core.NewGraph()
	_, _ = g.AddEdge("s", "A", 2, core.WithEdgeID("x1"))
	_, _ = g.AddEdge("s", "A", 2, core.WithEdgeID("x2"))
	_, _ = g.AddEdge("A", "t", 1, core.WithEdgeID("y1"))
	_, _ = g.AddEdge("A", "t", 1, core.WithEdgeID("y2"))

	res, _ := dijkstra.ShortestPaths(g, "s")
	byVertex, _ := paths.Count(res.Labels, "s", "t")
	byEdge, _ := paths.Count(res.Labels, "s", "t", paths.WithPolicy(paths.PolicyEdgeVariants))
	fmt.Println(byVertex, byEdge)
	// Output: 1 4
}

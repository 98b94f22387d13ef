// Package kshortest_test provides a runnable example of alternative-path
// enumeration with the penalty heuristic.
package kshortest_test

import (
	"fmt"

	"github.com/licit-lab/mgraph/core"
	"github.com/licit-lab/mgraph/kshortest"
)

// ExampleKShortestPath enumerates three alternatives between 0 and 3,
// keeping only routes at most 10 length units longer than the primary one.
func ExampleKShortestPath() {
	g := core.NewOrientedGraph()
	for _, n := range []struct {
		id   string
		x, y float64
	}{{"0", 0, 0}, {"1", 1, 1}, {"2", 1, -1}, {"3", 2, 0}, {"4", 2, 1}} {
		g.AddNode(n.id, n.x, n.y)
	}
	g.AddLink("0_1", "0", "1", 1, map[string]float64{"time": 14})
	g.AddLink("1_3", "1", "3", 1, map[string]float64{"time": 12})
	g.AddLink("0_2", "0", "2", 1, map[string]float64{"time": 12})
	g.AddLink("2_3", "2", "3", 1, map[string]float64{"time": 12})
	g.AddLink("0_3", "0", "3", 1, map[string]float64{"time": 12})
	g.AddLink("0_4", "0", "4", 11, map[string]float64{"time": 3})
	g.AddLink("4_3", "4", "3", 11, map[string]float64{"time": 12})

	paths, err := kshortest.KShortestPath(g, "0", "3", "time", 0, 10, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Printf("%v cost=%g\n", p.Nodes, p.Cost)
	}
	// Output:
	// [0 3] cost=12
	// [0 2 3] cost=24
	// [0 1 3] cost=26
}

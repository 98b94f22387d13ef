// Package dijkstra_test verifies the kernel against the canonical square
// scenarios, the label filter, and the documented edge cases.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/licit-lab/mgraph/core"
	"github.com/licit-lab/mgraph/dijkstra"
)

// square builds the canonical four-node square:
//
//	0→1 time=12, 1→2 time=13, 0→3 time=12, 3→2 time=12.
func square(t *testing.T) *core.OrientedGraph {
	t.Helper()
	g := core.NewOrientedGraph()
	require.NoError(t, g.AddNode("0", 0, 0))
	require.NoError(t, g.AddNode("1", 1, 0))
	require.NoError(t, g.AddNode("2", 1, 1))
	require.NoError(t, g.AddNode("3", 0, 1))
	require.NoError(t, g.AddLink("0_1", "0", "1", 1, map[string]float64{"time": 12}))
	require.NoError(t, g.AddLink("1_2", "1", "2", 1, map[string]float64{"time": 13}))
	require.NoError(t, g.AddLink("0_3", "0", "3", 1, map[string]float64{"time": 12}))
	require.NoError(t, g.AddLink("3_2", "3", "2", 1, map[string]float64{"time": 12}))

	return g
}

// TestSquare is the baseline scenario: the southern route wins, 24 < 25.
func TestSquare(t *testing.T) {
	g := square(t)

	p, err := dijkstra.Dijkstra(g, "0", "2", "time")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "3", "2"}, p.Nodes)
	require.Equal(t, 24.0, p.Cost)

	// The returned path sums to the returned cost.
	sum, err := g.PathCost(p.Nodes, "time")
	require.NoError(t, err)
	require.Equal(t, p.Cost, sum)
}

// TestSquareWithTurnBan forbids the movement 0→3→2; the query reroutes
// through node 1 at cost 25.
func TestSquareWithTurnBan(t *testing.T) {
	g := square(t)
	n3, err := g.GetNode("3")
	require.NoError(t, err)
	n3.ForbidMovement("0", "2")

	p, err := dijkstra.Dijkstra(g, "0", "2", "time")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, p.Nodes)
	require.Equal(t, 25.0, p.Cost)

	// No consecutive triple (a,b,c) of the result violates a ban.
	for i := 0; i+2 < len(p.Nodes); i++ {
		b, err := g.GetNode(p.Nodes[i+1])
		require.NoError(t, err)
		for _, succ := range b.ExcludedMovements()[p.Nodes[i]] {
			require.NotEqual(t, succ, p.Nodes[i+2])
		}
	}
}

func TestLabelFilter(t *testing.T) {
	g := square(t)
	// The cheap southern approach becomes bus-only.
	l, err := g.GetLink("0_3")
	require.NoError(t, err)
	l.Label = "BUS"

	// Unfiltered: the bus link is still usable.
	p, err := dijkstra.Dijkstra(g, "0", "2", "time")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "3", "2"}, p.Nodes)

	// Restricting to car links hides it.
	p, err = dijkstra.Dijkstra(g, "0", "2", "time",
		dijkstra.WithAccessibleLabels(core.DefaultLinkLabel))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, p.Nodes)
	require.Equal(t, 25.0, p.Cost)

	// Every traversed link honours a non-empty filter.
	for i := 0; i+1 < len(p.Nodes); i++ {
		link, err := g.LinkBetween(p.Nodes[i], p.Nodes[i+1])
		require.NoError(t, err)
		require.Equal(t, core.DefaultLinkLabel, link.Label)
	}

	// Allowing both labels restores the cheap route.
	p, err = dijkstra.Dijkstra(g, "0", "2", "time",
		dijkstra.WithAccessibleLabels(core.DefaultLinkLabel, "BUS"))
	require.NoError(t, err)
	require.Equal(t, 24.0, p.Cost)
}

func TestSameOriginDestination(t *testing.T) {
	g := square(t)
	p, err := dijkstra.Dijkstra(g, "0", "0", "time")
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, p.Nodes)
	require.Zero(t, p.Cost)
}

func TestUnknownEndpoints(t *testing.T) {
	g := square(t)

	_, err := dijkstra.Dijkstra(g, "ghost", "2", "time")
	require.ErrorIs(t, err, core.ErrUnknownNode)

	_, err = dijkstra.Dijkstra(g, "0", "ghost", "time")
	require.ErrorIs(t, err, core.ErrUnknownNode)

	_, err = dijkstra.Dijkstra(nil, "0", "2", "time")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(g, "", "2", "time")
	require.ErrorIs(t, err, dijkstra.ErrEmptyEndpoint)
}

// TestNoPath: disconnection is a success that returns the NoPath value.
func TestNoPath(t *testing.T) {
	g := square(t)
	require.NoError(t, g.AddNode("island", 9, 9))

	p, err := dijkstra.Dijkstra(g, "0", "island", "time")
	require.NoError(t, err)
	require.True(t, p.Empty())
	require.True(t, math.IsInf(p.Cost, 1))
}

func TestUnknownCostDimension(t *testing.T) {
	g := square(t)
	_, err := dijkstra.Dijkstra(g, "0", "2", "co2")
	require.ErrorIs(t, err, core.ErrUnknownCostDimension)
}

// TestDeterministicTieBreak builds two equal-cost routes; the heap's
// lexicographic secondary key must always pick the same one.
func TestDeterministicTieBreak(t *testing.T) {
	g := core.NewOrientedGraph()
	require.NoError(t, g.AddNode("S", 0, 0))
	require.NoError(t, g.AddNode("A", 1, 1))
	require.NoError(t, g.AddNode("B", 1, -1))
	require.NoError(t, g.AddNode("T", 2, 0))
	costs := map[string]float64{"time": 5}
	require.NoError(t, g.AddLink("S_A", "S", "A", 1, costs))
	require.NoError(t, g.AddLink("S_B", "S", "B", 1, costs))
	require.NoError(t, g.AddLink("A_T", "A", "T", 1, costs))
	require.NoError(t, g.AddLink("B_T", "B", "T", 1, costs))

	first, err := dijkstra.Dijkstra(g, "S", "T", "time")
	require.NoError(t, err)
	// "A" < "B", so the A-route wins the tie every time.
	require.Equal(t, []string{"S", "A", "T"}, first.Nodes)

	for i := 0; i < 20; i++ {
		p, err := dijkstra.Dijkstra(g, "S", "T", "time")
		require.NoError(t, err)
		require.Equal(t, first.Nodes, p.Nodes)
		require.Equal(t, first.Cost, p.Cost)
	}
}

// TestKernelDoesNotMutate snapshots every cost map and re-checks it after
// a batch of queries.
func TestKernelDoesNotMutate(t *testing.T) {
	g := square(t)
	before := make(map[string]map[string]float64)
	for _, id := range g.LinkIDs() {
		l, err := g.GetLink(id)
		require.NoError(t, err)
		before[id] = l.Costs()
	}

	for _, od := range [][2]string{{"0", "2"}, {"1", "3"}, {"3", "0"}} {
		_, err := dijkstra.Dijkstra(g, od[0], od[1], "time")
		require.NoError(t, err)
	}

	for id, want := range before {
		l, err := g.GetLink(id)
		require.NoError(t, err)
		require.Equal(t, want, l.Costs())
	}
}

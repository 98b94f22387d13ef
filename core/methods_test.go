// Package core_test verifies graph construction, adjacency coherence,
// movement exclusions, cost access, and the documented failure modes.
package core_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/licit-lab/mgraph/core"
)

// square builds the four-node square used across the kernel tests:
// 0→1→2 and 0→3→2, all links carrying the "time" dimension.
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

func TestAddNodeValidation(t *testing.T) {
	g := core.NewOrientedGraph()
	require.NoError(t, g.AddNode("A", 0, 0))

	// Duplicate id is rejected.
	err := g.AddNode("A", 1, 1)
	require.ErrorIs(t, err, core.ErrDuplicateID)

	// Empty id is rejected.
	require.ErrorIs(t, g.AddNode("", 0, 0), core.ErrEmptyID)

	// Prebuilt nodes follow the same rules.
	require.ErrorIs(t, g.InsertNode(core.NewNode("A", 2, 2)), core.ErrDuplicateID)
	require.ErrorIs(t, g.InsertNode(nil), core.ErrEmptyID)
}

func TestAddLinkValidation(t *testing.T) {
	g := core.NewOrientedGraph()
	require.NoError(t, g.AddNode("A", 0, 0))
	require.NoError(t, g.AddNode("B", 1, 0))
	costs := map[string]float64{"time": 3}

	require.NoError(t, g.AddLink("AB", "A", "B", 1, costs))

	// Duplicate link id.
	require.ErrorIs(t, g.AddLink("AB", "B", "A", 1, costs), core.ErrDuplicateID)

	// Missing endpoints.
	require.ErrorIs(t, g.AddLink("AX", "A", "X", 1, costs), core.ErrUnknownNode)
	require.ErrorIs(t, g.AddLink("XA", "X", "A", 1, costs), core.ErrUnknownNode)

	// Empty cost map.
	require.ErrorIs(t, g.AddLink("BA", "B", "A", 1, nil), core.ErrEmptyCosts)
}

func TestAddLinkReplacesSamePair(t *testing.T) {
	g := core.NewOrientedGraph()
	require.NoError(t, g.AddNode("A", 0, 0))
	require.NoError(t, g.AddNode("B", 1, 0))
	require.NoError(t, g.AddLink("old", "A", "B", 1, map[string]float64{"time": 5}))
	require.NoError(t, g.AddLink("new", "A", "B", 2, map[string]float64{"time": 7}))

	// The prior link id is evicted from the catalog.
	_, err := g.GetLink("old")
	require.ErrorIs(t, err, core.ErrUnknownLink)
	require.Equal(t, 1, g.LinkCount())

	// Adjacency points at the replacement from both endpoints.
	a, err := g.GetNode("A")
	require.NoError(t, err)
	l, ok := a.Out("B")
	require.True(t, ok)
	require.Equal(t, "new", l.ID)

	b, err := g.GetNode("B")
	require.NoError(t, err)
	back, ok := b.In("A")
	require.True(t, ok)
	require.Equal(t, "new", back.ID)
}

// TestAdjacencyCoherence checks the structural invariant: every link is
// reachable through both endpoints' adjacency maps.
func TestAdjacencyCoherence(t *testing.T) {
	g := square(t)
	for _, id := range g.LinkIDs() {
		l, err := g.GetLink(id)
		require.NoError(t, err)

		up, err := g.GetNode(l.Upstream)
		require.NoError(t, err)
		forward, ok := up.Out(l.Downstream)
		require.True(t, ok)
		require.Same(t, l, forward)

		down, err := g.GetNode(l.Downstream)
		require.NoError(t, err)
		reverse, ok := down.In(l.Upstream)
		require.True(t, ok)
		require.Same(t, l, reverse)
	}
}

func TestExitsAndEntrances(t *testing.T) {
	g := square(t)

	// Node 0 has two exits, sorted by downstream id.
	n0, err := g.GetNode("0")
	require.NoError(t, err)
	exits := n0.Exits(core.DefaultPredecessor)
	require.Len(t, exits, 2)
	require.Equal(t, "1", exits[0].Downstream)
	require.Equal(t, "3", exits[1].Downstream)

	// Node 2 has two entrances.
	n2, err := g.GetNode("2")
	require.NoError(t, err)
	require.Len(t, n2.Entrances(core.DefaultPredecessor), 2)

	// Forbid 0→3→2: entering 3 from 0 may no longer continue to 2.
	n3, err := g.GetNode("3")
	require.NoError(t, err)
	n3.ForbidMovement("0", "2")

	require.Empty(t, n3.Exits("0"))
	// From any other predecessor the exit is still available.
	require.Len(t, n3.Exits(core.DefaultPredecessor), 1)
	require.Len(t, n3.Exits("1"), 1)

	// The empty predecessor is normalized to the origin sentinel.
	require.Len(t, n3.Exits(""), 1)

	// The dual direction: Entrances filters upstream neighbors that appear
	// in the predecessor's forbidden set.
	n3.ForbidMovement("back", "0")
	require.Empty(t, n3.Entrances("back"))
	require.Len(t, n3.Entrances(core.DefaultPredecessor), 1)
}

func TestExcludeMovementsOption(t *testing.T) {
	g := core.NewOrientedGraph()
	require.NoError(t, g.AddNode("P", 0, 0))
	require.NoError(t, g.AddNode("S", 1, 0))
	require.NoError(t, g.AddNode("B", 0, 1,
		core.WithNodeLabel("junction"),
		core.WithExcludeMovements(map[string][]string{"P": {"S"}}),
	))
	require.NoError(t, g.AddLink("BS", "B", "S", 1, map[string]float64{"time": 1}))

	b, err := g.GetNode("B")
	require.NoError(t, err)
	require.Equal(t, "junction", b.Label)
	require.Empty(t, b.Exits("P"))
	require.Len(t, b.Exits(core.DefaultPredecessor), 1)
	require.Equal(t, map[string][]string{"P": {"S"}}, b.ExcludedMovements())
}

func TestCostAccess(t *testing.T) {
	l := core.NewLink("AB", "A", "B", 2.5, map[string]float64{"time": 4, "length": 2.5})

	v, err := l.Cost("time")
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	// Unknown dimensions fail fast instead of defaulting to zero.
	_, err = l.Cost("co2")
	require.ErrorIs(t, err, core.ErrUnknownCostDimension)
	require.False(t, l.HasCost("co2"))

	require.Equal(t, []string{"length", "time"}, l.CostDimensions())

	// Costs returns a snapshot decoupled from later mutation.
	snap := l.Costs()
	l.ScaleCosts(10)
	v, err = l.Cost("time")
	require.NoError(t, err)
	require.Equal(t, 40.0, v)
	require.Equal(t, 4.0, snap["time"])

	// SetCosts restores the snapshot exactly.
	l.SetCosts(snap)
	require.Equal(t, snap, l.Costs())

	l.SetCost("co2", 0.3)
	require.True(t, l.HasCost("co2"))
}

func TestPathLengthAndCost(t *testing.T) {
	g := square(t)

	length, err := g.PathLength([]string{"0", "3", "2"})
	require.NoError(t, err)
	require.Equal(t, 2.0, length)

	cost, err := g.PathCost([]string{"0", "3", "2"}, "time")
	require.NoError(t, err)
	require.Equal(t, 24.0, cost)

	// Degenerate paths cost nothing.
	cost, err = g.PathCost([]string{"0"}, "time")
	require.NoError(t, err)
	require.Zero(t, cost)

	// A sequence that traces no link is an error.
	_, err = g.PathCost([]string{"0", "2"}, "time")
	require.ErrorIs(t, err, core.ErrUnknownLink)

	_, err = g.PathLength([]string{"0", "ghost"})
	require.ErrorIs(t, err, core.ErrUnknownLink)
}

func TestPathCostValue(t *testing.T) {
	none := core.NoPath()
	require.True(t, none.Empty())
	require.True(t, math.IsInf(none.Cost, 1))

	p := core.PathCost{Nodes: []string{"0", "1"}, Cost: 12}
	q := core.PathCost{Nodes: []string{"0", "1"}, Cost: 99}
	require.True(t, p.SameNodes(q))
	require.False(t, p.SameNodes(none))
	require.False(t, p.SameNodes(core.PathCost{Nodes: []string{"0", "2"}}))
}

func TestDumps(t *testing.T) {
	g := square(t)

	var nodes strings.Builder
	g.DumpNodes(&nodes)
	require.Contains(t, nodes.String(), "Node(0, [0, 0])")

	var links strings.Builder
	g.DumpLinks(&links)
	require.Contains(t, links.String(), "Link(0_1, 0, 1)")

	require.Equal(t, "OrientedGraph(4 nodes, 4 links)", g.String())
}

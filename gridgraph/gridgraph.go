// Package gridgraph: the Manhattan generator.
//
// Interior node (i,j) is named strconv.Itoa(i*n+j) and sits at position
// (i·ℓ, j·ℓ), so i indexes columns west to east and j rows south to
// north. Compass arrays attach WEST to column 0,
// EAST to column n−1, NORTH to row n−1, SOUTH to row 0.
package gridgraph

import (
	"errors"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/licit-lab/mgraph/core"
)

// Sentinel errors for the generator.
var (
	// ErrBadDimension indicates a grid dimension below one.
	ErrBadDimension = errors.New("gridgraph: dimension must be at least 1")

	// ErrBadLength indicates a non-positive or non-finite link length.
	ErrBadLength = errors.New("gridgraph: link length must be positive and finite")
)

// CostDimension is the single cost dimension carried by every generated
// link.
const CostDimension = "length"

// Options collects generator tunables.
type Options struct {
	// Logger receives a one-line build summary; nop by default.
	Logger *zap.Logger
}

// Option customizes a Manhattan call.
type Option func(*Options)

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("gridgraph: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// Manhattan builds the n×n benchmark grid with link length ℓ.
//
// Interior nodes are four-connected with a link in each direction; the four
// compass boundary arrays sit one ℓ outside the grid and connect
// bidirectionally to their grid-edge nodes. Link ids are "up_down" from the
// endpoint ids; every link costs map is {"length": ℓ}.
//
// Complexity: O(n²) time and memory.
func Manhattan(n int, linkLength float64, opts ...Option) (*core.OrientedGraph, error) {
	if n < 1 {
		return nil, ErrBadDimension
	}
	if linkLength <= 0 || math.IsInf(linkLength, 1) || math.IsNaN(linkLength) {
		return nil, ErrBadLength
	}
	cfg := Options{Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.NewOrientedGraph()

	// Interior nodes.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			id := strconv.Itoa(i*n + j)
			if err := g.AddNode(id, float64(i)*linkLength, float64(j)*linkLength); err != nil {
				return nil, err
			}
		}
	}

	// Interior links: each cell connects to its four neighbors, one
	// directed link per direction.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ind := i*n + j
			if j < n-1 {
				if err := addLink(g, ind, ind+1, linkLength); err != nil {
					return nil, err
				}
			}
			if j > 0 {
				if err := addLink(g, ind, ind-1, linkLength); err != nil {
					return nil, err
				}
			}
			if i < n-1 {
				if err := addLink(g, ind, ind+n, linkLength); err != nil {
					return nil, err
				}
			}
			if i > 0 {
				if err := addLink(g, ind, ind-n, linkLength); err != nil {
					return nil, err
				}
			}
		}
	}

	// Compass boundaries: WEST along column 0, EAST along column n−1,
	// NORTH along row n−1, SOUTH along row 0.
	for c := 0; c < n; c++ {
		boundaries := []struct {
			id       string
			interior int
			x, y     float64
		}{
			{"WEST_" + strconv.Itoa(c), c, -linkLength, float64(c) * linkLength},
			{"EAST_" + strconv.Itoa(c), n*(n-1) + c, float64(n) * linkLength, float64(c) * linkLength},
			{"NORTH_" + strconv.Itoa(c), c*n + n - 1, float64(c) * linkLength, float64(n) * linkLength},
			{"SOUTH_" + strconv.Itoa(c), c * n, float64(c) * linkLength, -linkLength},
		}
		for _, b := range boundaries {
			if err := g.AddNode(b.id, b.x, b.y); err != nil {
				return nil, err
			}
			interior := strconv.Itoa(b.interior)
			costs := map[string]float64{CostDimension: linkLength}
			if err := g.AddLink(b.id+"_"+interior, b.id, interior, linkLength, costs); err != nil {
				return nil, err
			}
			if err := g.AddLink(interior+"_"+b.id, interior, b.id, linkLength, costs); err != nil {
				return nil, err
			}
		}
	}

	cfg.Logger.Debug("manhattan grid built",
		zap.Int("n", n),
		zap.Float64("link_length", linkLength),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("links", g.LinkCount()))

	return g, nil
}

// addLink wires one interior link named after its endpoint indices.
func addLink(g *core.OrientedGraph, up, down int, linkLength float64) error {
	upID, downID := strconv.Itoa(up), strconv.Itoa(down)

	return g.AddLink(upID+"_"+downID, upID, downID, linkLength,
		map[string]float64{CostDimension: linkLength})
}

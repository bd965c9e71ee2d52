package hexmap

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Shape is the role of a path tile.
type Shape int

const (
	ShapeCastle Shape = iota
	ShapeSimple
	ShapeFork
	ShapeDeadEnd
	ShapeGoblinCamp
	ShapeCross
	ShapeStar
	ShapeCrossroads
)

// AllShapes lists every shape in declaration order.
var AllShapes = []Shape{
	ShapeCastle, ShapeSimple, ShapeFork, ShapeDeadEnd,
	ShapeGoblinCamp, ShapeCross, ShapeStar, ShapeCrossroads,
}

var shapeNames = map[Shape]string{
	ShapeCastle:     "Castle",
	ShapeSimple:     "Simple",
	ShapeFork:       "Fork",
	ShapeDeadEnd:    "DeadEnd",
	ShapeGoblinCamp: "GoblinCamp",
	ShapeCross:      "Cross",
	ShapeStar:       "Star",
	ShapeCrossroads: "Crossroads",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Connections returns how many edges a tile of this shape connects.
func (s Shape) Connections() int {
	switch s {
	case ShapeCastle, ShapeDeadEnd:
		return 1
	case ShapeSimple, ShapeGoblinCamp:
		return 2
	case ShapeFork:
		return 3
	case ShapeCross:
		return 4
	case ShapeStar:
		return 5
	case ShapeCrossroads:
		return 6
	}
	return 0
}

// EdgeSet is a set of edges 0..5 stored as a bit mask. Iteration is always in
// ascending edge order.
type EdgeSet uint8

const allEdges EdgeSet = 1<<EdgeCount - 1

// Edges builds a set from edge indices; indices are normalised modulo 6.
func Edges(edges ...int) EdgeSet {
	var s EdgeSet
	for _, e := range edges {
		s = s.With(e)
	}
	return s
}

// Has reports whether edge is in the set.
func (s EdgeSet) Has(edge int) bool {
	return s&(1<<NormalizeEdge(edge)) != 0
}

// With returns the set plus edge.
func (s EdgeSet) With(edge int) EdgeSet {
	return s | 1<<NormalizeEdge(edge)
}

// Without returns the set minus edge.
func (s EdgeSet) Without(edge int) EdgeSet {
	return s &^ (1 << NormalizeEdge(edge))
}

// Len returns the number of edges in the set.
func (s EdgeSet) Len() int {
	return bits.OnesCount8(uint8(s & allEdges))
}

// Slice returns the edges in ascending order.
func (s EdgeSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for e := 0; e < EdgeCount; e++ {
		if s.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

// Rotate turns every edge by steps (counter-clockwise for positive steps).
func (s EdgeSet) Rotate(steps int) EdgeSet {
	var out EdgeSet
	for _, e := range s.Slice() {
		out = out.With(e + steps)
	}
	return out
}

func (s EdgeSet) String() string {
	parts := make([]string, 0, s.Len())
	for _, e := range s.Slice() {
		parts = append(parts, fmt.Sprint(e))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// ErrEdgeCount is returned when a tile's edge set does not fit its shape.
var ErrEdgeCount = errors.New("edge count does not match shape")

// Tile is one placed piece of path.
type Tile struct {
	Hex   Hex
	Shape Shape
	Edges EdgeSet
}

// IsSpawnPoint reports whether enemies enter the network here.
func (t Tile) IsSpawnPoint() bool { return t.Shape == ShapeDeadEnd }

// IsCastle reports whether the tile is the network root.
func (t Tile) IsCastle() bool { return t.Shape == ShapeCastle }

// Validate checks the edge set against the shape's connection count.
func (t Tile) Validate() error {
	if want, got := t.Shape.Connections(), t.Edges.Len(); want != got {
		return fmt.Errorf("tile %v (%v) has %d edges, want %d: %w", t.Hex, t.Shape, got, want, ErrEdgeCount)
	}
	return nil
}

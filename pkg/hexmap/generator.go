package hexmap

import (
	"errors"
	"fmt"
)

// Rand is the random source used by generation. Passing the same seeded
// source through the same calls reproduces the same network.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// Segment weights for the starting path, in percent.
const (
	straightWeight = 60
	bendWeight     = 25
	forkWeight     = 15
)

// ErrNotDeadEnd is returned when expansion is asked for on a tile that is not
// a dead end.
var ErrNotDeadEnd = errors.New("tile is not a dead end")

// Generator builds and grows the path network.
type Generator struct {
	rng Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng Rand) *Generator {
	if rng == nil {
		panic("rng cannot be nil")
	}
	return &Generator{rng: rng}
}

// GenerateInitialCastle returns a network holding only the castle at the
// origin, with one exit picked uniformly.
func (g *Generator) GenerateInitialCastle() *Network {
	n := NewNetwork()
	_ = n.Set(Tile{Hex: Origin, Shape: ShapeCastle, Edges: Edges(g.rng.Intn(EdgeCount))})
	return n
}

// emptyOpenEdges returns the edges of placed tiles that point at empty ground.
func emptyOpenEdges(n *Network) []HalfEdge {
	var open []HalfEdge
	for _, t := range n.Tiles() {
		for _, e := range t.Edges.Slice() {
			if !n.Contains(t.Hex.Neighbor(e)) {
				open = append(open, HalfEdge{Hex: t.Hex, Edge: e})
			}
		}
	}
	return open
}

// exitsAgree reports whether every exit of edges (entry excluded) points at
// empty ground or at a tile that connects back.
func exitsAgree(n *Network, h Hex, entry int, edges EdgeSet) bool {
	for _, e := range edges.Without(entry).Slice() {
		if t, ok := n.Tile(h.Neighbor(e)); ok && !t.Edges.Has(OppositeEdge(e)) {
			return false
		}
	}
	return true
}

// GenerateStartingPath grows the network by up to count tiles. Each step
// attaches a straight, bend or fork segment to a random open edge; the last
// tile is capped as a dead end so the path has a spawn point. Generation
// stops early when there is no open edge left.
func (g *Generator) GenerateStartingPath(n *Network, count int) []Tile {
	var placed []Tile
	for i := 0; i < count; i++ {
		open := emptyOpenEdges(n)
		if len(open) == 0 {
			break
		}
		src := open[g.rng.Intn(len(open))]
		h := src.Target()
		entry := OppositeEdge(src.Edge)

		var t Tile
		if i == count-1 {
			t = Tile{Hex: h, Shape: ShapeDeadEnd, Edges: Edges(entry)}
		} else {
			t = g.rollSegment(n, h, entry)
		}
		_ = n.Set(t)
		placed = append(placed, t)
	}
	return placed
}

// rollSegment picks a segment entered through entry at h.
func (g *Generator) rollSegment(n *Network, h Hex, entry int) Tile {
	through := OppositeEdge(entry)
	straight := Tile{Hex: h, Shape: ShapeSimple, Edges: Edges(entry, through)}

	var t Tile
	switch roll := g.rng.Intn(straightWeight + bendWeight + forkWeight); {
	case roll < straightWeight:
		t = straight
	case roll < straightWeight+bendWeight:
		t = Tile{Hex: h, Shape: ShapeSimple, Edges: Edges(entry, through+g.side())}
	default:
		t = Tile{Hex: h, Shape: ShapeFork, Edges: Edges(entry, through, through+g.side())}
	}
	if exitsAgree(n, h, entry, t.Edges) {
		return t
	}
	if exitsAgree(n, h, entry, straight.Edges) {
		return straight
	}
	return Tile{Hex: h, Shape: ShapeDeadEnd, Edges: Edges(entry)}
}

// side returns -1 or +1.
func (g *Generator) side() int {
	return 2*g.rng.Intn(2) - 1
}

// ExpandFromDeadEnd turns the dead end at h into a through tile and grows a
// chain of at most maxDepth new tiles from it, ending in a new dead end.
// Each step forks with probability forkChance; a fork's side branch is
// capped by its own dead end. The returned tiles start with the converted
// tile. forked reports whether any fork was placed.
//
// New tiles only go where the hex is empty and no other tile points into it.
// If the dead end has no such side to grow into, nothing changes and no
// tiles are returned.
func (g *Generator) ExpandFromDeadEnd(n *Network, h Hex, maxDepth int, forkChance float64) (tiles []Tile, forked bool, err error) {
	start, ok := n.Tile(h)
	if !ok {
		return nil, false, fmt.Errorf("expand %v: %w", h, ErrNoTile)
	}
	if !start.IsSpawnPoint() {
		return nil, false, fmt.Errorf("expand %v (%v): %w", h, start.Shape, ErrNotDeadEnd)
	}
	if err := start.Validate(); err != nil {
		return nil, false, fmt.Errorf("expand %v: %w", h, err)
	}
	if maxDepth < 1 {
		maxDepth = 1
	}

	entry := start.Edges.Slice()[0]
	exit, ok := g.pickExit(n, h, entry)
	if !ok {
		return nil, false, nil
	}
	start.Shape = ShapeSimple
	start.Edges = Edges(entry, exit)
	_ = n.Set(start)
	tiles = append(tiles, start)

	cur, curEntry := h.Neighbor(exit), OppositeEdge(exit)
	for depth := 1; ; depth++ {
		if depth == maxDepth {
			tiles = append(tiles, g.place(n, Tile{Hex: cur, Shape: ShapeDeadEnd, Edges: Edges(curEntry)}))
			break
		}
		exit, ok := g.pickExit(n, cur, curEntry)
		if !ok {
			tiles = append(tiles, g.place(n, Tile{Hex: cur, Shape: ShapeDeadEnd, Edges: Edges(curEntry)}))
			break
		}
		t := Tile{Hex: cur, Shape: ShapeSimple, Edges: Edges(curEntry, exit)}
		var branch *Tile
		if g.rng.Float64() < forkChance {
			if side, ok := g.pickSide(n, cur, curEntry, exit); ok {
				t.Shape = ShapeFork
				t.Edges = t.Edges.With(side)
				branch = &Tile{Hex: cur.Neighbor(side), Shape: ShapeDeadEnd, Edges: Edges(OppositeEdge(side))}
				forked = true
			}
		}
		tiles = append(tiles, g.place(n, t))
		if branch != nil {
			tiles = append(tiles, g.place(n, *branch))
		}
		cur, curEntry = cur.Neighbor(exit), OppositeEdge(exit)
	}
	return tiles, forked, nil
}

func (g *Generator) place(n *Network, t Tile) Tile {
	_ = n.Set(t)
	return t
}

// freeExit reports whether a path may leave h through edge: the hex beyond
// must be empty and no other tile may already point into it, so growth never
// turns an existing open edge into a one-sided one.
func freeExit(n *Network, h Hex, edge int) bool {
	target := h.Neighbor(edge)
	if n.Contains(target) {
		return false
	}
	for e := 0; e < EdgeCount; e++ {
		nb := target.Neighbor(e)
		if nb == h {
			continue
		}
		if t, ok := n.Tile(nb); ok && t.Edges.Has(OppositeEdge(e)) {
			return false
		}
	}
	return true
}

// pickExit prefers going straight through and otherwise bends to a random
// free side adjacent to the straight exit.
func (g *Generator) pickExit(n *Network, h Hex, entry int) (int, bool) {
	through := OppositeEdge(entry)
	if freeExit(n, h, through) {
		return through, true
	}
	first := g.side()
	for _, off := range []int{first, -first} {
		if e := NormalizeEdge(through + off); freeExit(n, h, e) {
			return e, true
		}
	}
	return 0, false
}

// pickSide chooses a free fork branch next to exit, away from entry.
func (g *Generator) pickSide(n *Network, h Hex, entry, exit int) (int, bool) {
	first := g.side()
	for _, off := range []int{first, -first} {
		e := NormalizeEdge(exit + off)
		if e == entry {
			continue
		}
		if freeExit(n, h, e) {
			return e, true
		}
	}
	return 0, false
}

// GenerateHiddenSpawners picks up to count empty coordinates whose distance
// from the origin lies in [minDist, maxDist], at least two steps apart from
// each other. Candidates are shuffled and taken greedily.
func (g *Generator) GenerateHiddenSpawners(n *Network, count, minDist, maxDist int) []Hex {
	var candidates []Hex
	for d := minDist; d <= maxDist; d++ {
		for _, h := range Ring(Origin, d) {
			if !n.Contains(h) {
				candidates = append(candidates, h)
			}
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var picked []Hex
	for _, c := range candidates {
		if len(picked) >= count {
			break
		}
		if farFromAll(c, picked, 2) {
			picked = append(picked, c)
		}
	}
	return picked
}

func farFromAll(h Hex, others []Hex, minDist int) bool {
	for _, o := range others {
		if h.Distance(o) < minDist {
			return false
		}
	}
	return true
}

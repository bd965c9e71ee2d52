package hexmap

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTile is returned when an operation needs a tile that is not there.
	ErrNoTile = errors.New("no tile at coordinate")
	// ErrSecondCastle is returned when a castle would be added next to an existing one.
	ErrSecondCastle = errors.New("network already has a castle")
)

// TileView is read access to a set of tiles. Network implements it; the
// placement validator layers a single substituted tile on top of it when it
// simulates a replacement.
type TileView interface {
	Tile(h Hex) (Tile, bool)
}

// Network is the graph of placed path tiles, keyed by coordinate. Iteration
// follows insertion order so that seeded generation is reproducible.
//
// A Network is not safe for concurrent mutation. Queries (pathfinding,
// placement validation) must not run while it is being mutated.
type Network struct {
	tiles  map[Hex]Tile
	order  []Hex
	castle *Hex
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{tiles: make(map[Hex]Tile)}
}

// Tile returns the tile at h.
func (n *Network) Tile(h Hex) (Tile, bool) {
	t, ok := n.tiles[h]
	return t, ok
}

// Contains reports whether a tile occupies h.
func (n *Network) Contains(h Hex) bool {
	_, ok := n.tiles[h]
	return ok
}

// Len returns the number of tiles.
func (n *Network) Len() int {
	return len(n.tiles)
}

// Set inserts t, or replaces the tile at t.Hex keeping its position in the
// iteration order. A second castle is refused.
func (n *Network) Set(t Tile) error {
	if t.IsCastle() && n.castle != nil && *n.castle != t.Hex {
		return fmt.Errorf("castle at %v: %w", *n.castle, ErrSecondCastle)
	}
	old, exists := n.tiles[t.Hex]
	if !exists {
		n.order = append(n.order, t.Hex)
	} else if old.IsCastle() && !t.IsCastle() {
		n.castle = nil
	}
	n.tiles[t.Hex] = t
	if t.IsCastle() {
		h := t.Hex
		n.castle = &h
	}
	return nil
}

// Castle returns the castle tile.
func (n *Network) Castle() (Tile, bool) {
	if n.castle == nil {
		return Tile{}, false
	}
	return n.Tile(*n.castle)
}

// Tiles returns all tiles in insertion order.
func (n *Network) Tiles() []Tile {
	out := make([]Tile, 0, len(n.order))
	for _, h := range n.order {
		out = append(out, n.tiles[h])
	}
	return out
}

// SpawnPoints returns the dead-end tiles in insertion order.
func (n *Network) SpawnPoints() []Tile {
	var out []Tile
	for _, h := range n.order {
		if t := n.tiles[h]; t.IsSpawnPoint() {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns an independent copy.
func (n *Network) Clone() *Network {
	c := &Network{
		tiles: make(map[Hex]Tile, len(n.tiles)),
		order: append([]Hex(nil), n.order...),
	}
	for h, t := range n.tiles {
		c.tiles[h] = t
	}
	if n.castle != nil {
		h := *n.castle
		c.castle = &h
	}
	return c
}

// Linked reports whether the tile at h and its neighbour across edge both
// declare the connection. Only linked edges are traversable.
func Linked(view TileView, h Hex, edge int) bool {
	t, ok := view.Tile(h)
	if !ok || !t.Edges.Has(edge) {
		return false
	}
	nb, ok := view.Tile(h.Neighbor(edge))
	return ok && nb.Edges.Has(OppositeEdge(edge))
}

// HalfEdge is one side of a connection: a tile coordinate and one of its edges.
type HalfEdge struct {
	Hex  Hex
	Edge int
}

// Target returns the coordinate the edge points at.
func (e HalfEdge) Target() Hex {
	return e.Hex.Neighbor(e.Edge)
}

// OneSidedEdges returns the edges that point at an existing tile which does
// not declare the reverse edge.
func (n *Network) OneSidedEdges() []HalfEdge {
	var out []HalfEdge
	for _, t := range n.Tiles() {
		for _, e := range t.Edges.Slice() {
			if n.Contains(t.Hex.Neighbor(e)) && !Linked(n, t.Hex, e) {
				out = append(out, HalfEdge{Hex: t.Hex, Edge: e})
			}
		}
	}
	return out
}

// Validate checks the structural invariants: a single castle at the origin
// and edge sets that fit their shapes.
func (n *Network) Validate() error {
	castle, ok := n.Castle()
	if !ok {
		return errors.New("network has no castle")
	}
	if castle.Hex != Origin {
		return fmt.Errorf("castle at %v, want %v", castle.Hex, Origin)
	}
	var errs []error
	for _, t := range n.Tiles() {
		if err := t.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

package hexmap

import "github.com/zyedidia/generic/mapset"

// PlacementConstraints narrows where pieces may go.
type PlacementConstraints struct {
	// MaxDistance is the map boundary measured from the origin; 0 means no
	// boundary.
	MaxDistance int
	// NonReplaceable holds coordinates whose tiles must never be swapped
	// (mines and the like). The zero value is an empty set.
	NonReplaceable mapset.Set[Hex]
}

func (c PlacementConstraints) inBounds(h Hex) bool {
	return c.MaxDistance <= 0 || h.Distance(Origin) <= c.MaxDistance
}

// OpenEdge is an edge of a placed tile that new growth or a replacement can
// attach to.
type OpenEdge = HalfEdge

// PlacementOption is every valid orientation of a piece at one coordinate.
type PlacementOption struct {
	Hex      Hex
	Variants []RotationVariant
}

// Validator enumerates legal placements of path pieces.
type Validator struct {
	patterns map[Shape]RotationPattern
}

// NewValidator creates a validator with the given shape patterns. A nil map
// selects DefaultPatterns.
func NewValidator(patterns map[Shape]RotationPattern) *Validator {
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	return &Validator{patterns: patterns}
}

// OpenEdges returns every connected edge whose neighbour is empty or holds a
// replaceable tile, within bounds. The castle is never replaceable.
func (v *Validator) OpenEdges(n *Network, c PlacementConstraints) []OpenEdge {
	var open []OpenEdge
	for _, t := range n.Tiles() {
		for _, e := range t.Edges.Slice() {
			target := t.Hex.Neighbor(e)
			if !c.inBounds(target) {
				continue
			}
			if occupant, ok := n.Tile(target); ok {
				if occupant.IsCastle() || c.NonReplaceable.Has(target) {
					continue
				}
			}
			open = append(open, OpenEdge{Hex: t.Hex, Edge: e})
		}
	}
	return open
}

// CandidateVariants returns the orientations of shape entered through entry,
// before any validity filtering.
func (v *Validator) CandidateVariants(shape Shape, entry int) []RotationVariant {
	p, ok := v.patterns[shape]
	if !ok {
		return nil
	}
	return p.Variants(entry)
}

// ValidPlacements returns every coordinate where shape fits, with all valid
// orientations at each, in open-edge order. Nothing fitting is a normal
// outcome and yields an empty slice.
func (v *Validator) ValidPlacements(n *Network, shape Shape, c PlacementConstraints) []PlacementOption {
	options := []PlacementOption{}
	index := map[Hex]int{}
	for _, open := range v.OpenEdges(n, c) {
		target := open.Target()
		for _, rv := range v.CandidateVariants(shape, OppositeEdge(open.Edge)) {
			if !v.IsRotationValid(n, target, rv, c) {
				continue
			}
			i, seen := index[target]
			if !seen {
				i = len(options)
				index[target] = i
				options = append(options, PlacementOption{Hex: target})
			}
			if !containsEdges(options[i].Variants, rv.Edges) {
				options[i].Variants = append(options[i].Variants, rv)
			}
		}
	}
	return options
}

func containsEdges(variants []RotationVariant, edges EdgeSet) bool {
	for _, v := range variants {
		if v.Edges == edges {
			return true
		}
	}
	return false
}

// IsRotationValid reports whether rv may be placed at h. Every exit must
// stay inside the boundary and either point at empty ground or at a tile
// that already connects back. Replacing an existing tile must change its
// edges and must not cut anything off from the castle.
func (v *Validator) IsRotationValid(n *Network, h Hex, rv RotationVariant, c PlacementConstraints) bool {
	for _, e := range rv.Edges.Without(rv.Entry).Slice() {
		nb := h.Neighbor(e)
		if !c.inBounds(nb) {
			return false
		}
		if t, ok := n.Tile(nb); ok && !t.Edges.Has(OppositeEdge(e)) {
			return false
		}
	}
	existing, occupied := n.Tile(h)
	if !occupied {
		return true
	}
	if existing.IsCastle() || c.NonReplaceable.Has(h) {
		return false
	}
	if existing.Edges == rv.Edges {
		return false
	}
	return !v.WouldDisconnect(n, h, rv.Edges)
}

// WouldDisconnect reports whether giving the tile at h the edge set edges
// would leave some tile that is currently reachable from the castle
// unreachable (the replaced tile itself excepted).
//
// Dropping an edge that is not linked on both sides cannot disconnect
// anything, since traversal never used it; only when a linked edge is
// removed is the replacement simulated. The simulation reads through an
// overlay and never writes to n.
func (v *Validator) WouldDisconnect(n *Network, h Hex, edges EdgeSet) bool {
	existing, ok := n.Tile(h)
	if !ok {
		return false
	}
	removesLink := false
	for _, e := range (existing.Edges &^ edges).Slice() {
		if Linked(n, h, e) {
			removesLink = true
			break
		}
	}
	if !removesLink {
		return false
	}

	before := ReachableFromCastle(n)
	castle, _ := n.Castle()
	replaced := existing
	replaced.Edges = edges
	after := Reachable(overlay{base: n, tile: replaced}, castle.Hex)

	disconnected := false
	before.Each(func(r Hex) {
		if r != h && !after.Has(r) {
			disconnected = true
		}
	})
	return disconnected
}

// overlay is a view of base with one tile substituted.
type overlay struct {
	base TileView
	tile Tile
}

func (o overlay) Tile(h Hex) (Tile, bool) {
	if h == o.tile.Hex {
		return o.tile, true
	}
	return o.base.Tile(h)
}

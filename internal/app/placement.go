// internal/app/placement.go
package app

import (
	"fmt"

	"go-hex-defense/internal/event"
	"go-hex-defense/pkg/hexmap"
)

// Constraints returns the placement constraints in force: the map boundary
// and every mined tile.
func (s *Session) Constraints() hexmap.PlacementConstraints {
	return hexmap.PlacementConstraints{MaxDistance: s.opts.MaxDistance, NonReplaceable: s.locked}
}

// OpenEdges lists the edges new pieces can attach to.
func (s *Session) OpenEdges() []hexmap.OpenEdge {
	return s.validator.OpenEdges(s.Network, s.Constraints())
}

// Placements returns every legal coordinate and orientation for shape.
func (s *Session) Placements(shape hexmap.Shape) []hexmap.PlacementOption {
	return s.validator.ValidPlacements(s.Network, shape, s.Constraints())
}

// Place commits shape at h with the given edges. The variant is re-checked
// against the current network; anything the validator would not offer is
// refused with ErrIllegalPlacement and the network is left unchanged.
func (s *Session) Place(shape hexmap.Shape, h hexmap.Hex, edges hexmap.EdgeSet) error {
	if !s.offered(shape, h, edges) {
		s.logger.Info("placement rejected", "shape", shape, "hex", h, "edges", edges)
		return fmt.Errorf("%v %v at %v: %w", shape, edges, h, ErrIllegalPlacement)
	}

	tile := hexmap.Tile{Hex: h, Shape: shape, Edges: edges}
	previous, replaced := s.Network.Tile(h)
	if err := s.Network.Set(tile); err != nil {
		return fmt.Errorf("place %v: %w", h, err)
	}
	s.cover(tile)

	change := event.TileChange{Tile: tile}
	eventType := event.TilePlaced
	if replaced {
		change.Previous = &previous
		eventType = event.TileReplaced
	}
	s.logger.Info("placement committed", "shape", shape, "hex", h, "edges", edges, "replaced", replaced)
	s.EventDispatcher.Dispatch(event.Event{Type: eventType, Data: change})
	s.recomputePaths()
	return nil
}

func (s *Session) offered(shape hexmap.Shape, h hexmap.Hex, edges hexmap.EdgeSet) bool {
	for _, opt := range s.Placements(shape) {
		if opt.Hex != h {
			continue
		}
		for _, v := range opt.Variants {
			if v.Edges == edges {
				return true
			}
		}
	}
	return false
}

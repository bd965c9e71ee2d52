// internal/app/expansion.go
package app

import (
	"fmt"
	"math"

	"go-hex-defense/internal/event"
	"go-hex-defense/pkg/hexmap"
)

// ExpandDeadEnd grows the path from the dead end at h. The fork chance rises
// by ForkChanceStep after every expansion without a fork, up to
// ForkChanceCap, and drops back to ForkChanceBase once a fork appears.
//
// A dead end with no room to grow returns no tiles and no error.
func (s *Session) ExpandDeadEnd(h hexmap.Hex) ([]hexmap.Tile, error) {
	if s.locked.Has(h) {
		return nil, fmt.Errorf("expand %v: %w", h, ErrTileLocked)
	}
	tiles, forked, err := s.generator.ExpandFromDeadEnd(s.Network, h, s.opts.ExpandMaxDepth, s.forkChance)
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		s.logger.Info("dead end is boxed in", "hex", h)
		return nil, nil
	}
	// The first tile is the converted dead end itself.
	s.cover(tiles[1:]...)

	if forked {
		s.forkChance = s.opts.ForkChanceBase
	} else {
		s.forkChance = math.Min(s.opts.ForkChanceCap, s.forkChance+s.opts.ForkChanceStep)
	}
	s.logger.Info("dead end expanded",
		"hex", h,
		"tiles", len(tiles),
		"forked", forked,
		"next_fork_chance", s.forkChance,
	)
	s.EventDispatcher.Dispatch(event.Event{
		Type: event.DeadEndExpanded,
		Data: event.Expansion{From: h, Tiles: tiles, Forked: forked, ForkChance: s.forkChance},
	})
	s.recomputePaths()
	return tiles, nil
}

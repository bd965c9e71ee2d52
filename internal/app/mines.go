// internal/app/mines.go
package app

import (
	"fmt"

	"go-hex-defense/internal/event"
	"go-hex-defense/pkg/hexmap"
)

// BuildMine puts a mine on the path tile at h, tapping an adjacent ore patch.
// A mined tile can no longer be replaced or expanded. The richest adjacent
// patch is chosen; ties go to the lowest edge index.
func (s *Session) BuildMine(h hexmap.Hex) (hexmap.OrePatch, error) {
	tile, ok := s.Network.Tile(h)
	if !ok {
		return hexmap.OrePatch{}, fmt.Errorf("mine at %v: %w", h, hexmap.ErrNoTile)
	}
	if tile.IsCastle() || s.locked.Has(h) {
		return hexmap.OrePatch{}, fmt.Errorf("mine at %v: %w", h, ErrTileLocked)
	}

	var best hexmap.OrePatch
	found := false
	for _, nb := range h.AllPossibleNeighbors() {
		if p, ok := s.ores[nb]; ok && (!found || p.BaseYield > best.BaseYield) {
			best, found = p, true
		}
	}
	if !found {
		return hexmap.OrePatch{}, fmt.Errorf("mine at %v: %w", h, ErrNoOre)
	}

	s.locked.Put(h)
	s.mines[h] = best
	s.logger.Info("mine built", "hex", h, "ore", best.Kind, "yield", best.BaseYield)
	s.EventDispatcher.Dispatch(event.Event{
		Type: event.MineBuilt,
		Data: event.Mine{Tile: h, Ore: best},
	})
	return best, nil
}

// Mines returns each mined tile with the ore patch it taps.
func (s *Session) Mines() map[hexmap.Hex]hexmap.OrePatch {
	out := make(map[hexmap.Hex]hexmap.OrePatch, len(s.mines))
	for h, ore := range s.mines {
		out[h] = ore
	}
	return out
}

// IsLocked reports whether the tile at h carries a mine.
func (s *Session) IsLocked(h hexmap.Hex) bool {
	return s.locked.Has(h)
}

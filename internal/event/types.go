// internal/event/types.go
package event

import "go-hex-defense/pkg/hexmap"

const (
	TilePlaced      EventType = "TilePlaced"      // Тайл поставлен на пустую клетку
	TileReplaced    EventType = "TileReplaced"    // Тайл заменён
	DeadEndExpanded EventType = "DeadEndExpanded" // Тупик расширен
	PathsRecomputed EventType = "PathsRecomputed" // Пути от точек появления пересчитаны
	MineBuilt       EventType = "MineBuilt"       // Тайл заблокирован шахтой
)

// TileChange — данные TilePlaced и TileReplaced. Previous задан только при замене.
type TileChange struct {
	Tile     hexmap.Tile
	Previous *hexmap.Tile
}

// Expansion — данные DeadEndExpanded.
type Expansion struct {
	From       hexmap.Hex
	Tiles      []hexmap.Tile
	Forked     bool
	ForkChance float64 // шанс развилки для следующего расширения
}

// PathsUpdate — данные PathsRecomputed: маршрут от каждой точки появления до замка.
type PathsUpdate struct {
	Paths       map[hexmap.Hex][]hexmap.Vec3
	Unreachable []hexmap.Hex
}

// Mine — данные MineBuilt.
type Mine struct {
	Tile hexmap.Hex
	Ore  hexmap.OrePatch
}

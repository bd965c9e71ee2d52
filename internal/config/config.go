// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSize      = 26.0
	TileHeight   = 0.0
	MapRadius    = 12 // граница размещения, 0 — без границы

	StartingPathLength = 6
	ExpandMaxDepth     = 3

	// Шанс развилки при расширении тупика растёт после каждого расширения
	// без развилки и сбрасывается после развилки.
	ForkChanceBase = 0.2
	ForkChanceStep = 0.15
	ForkChanceCap  = 0.8

	HiddenSpawnerCount = 4
	HiddenSpawnerMin   = 7
	HiddenSpawnerMax   = 11

	OreMinDistance = 2
	OreMaxDistance = 11

	ClickDebounceTime = 150 // мс
	TextCharWidth     = 7
	TextOffsetY       = 4
	StrokeWidth       = 2.0
)

// OreZoneBoundaries — верхние границы зон руды по расстоянию от замка.
var OreZoneBoundaries = []int{4, 7, 11}

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridColor       = color.RGBA{45, 50, 65, 255}
	TileColor       = color.RGBA{70, 100, 120, 230}
	CastleColor     = color.RGBA{50, 205, 50, 255}
	DeadEndColor    = color.RGBA{220, 60, 60, 230}
	MineColor       = color.RGBA{255, 215, 0, 255}
	SpawnerColor    = color.RGBA{150, 70, 150, 160}
	CandidateColor  = color.RGBA{240, 240, 240, 90}
	SelectedColor   = color.RGBA{255, 255, 0, 160}
	SpokeColor      = color.RGBA{230, 230, 200, 255}
	PathColor       = color.RGBA{255, 255, 0, 128}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OreColors       = map[string]color.RGBA{
		"IRON":    {160, 160, 170, 255},
		"COPPER":  {200, 110, 50, 255},
		"CRYSTAL": {90, 200, 230, 255},
		"GOLD":    {250, 210, 60, 255},
	}
)

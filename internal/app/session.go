// internal/app/session.go
package app

import (
	"errors"
	"log/slog"
	"slices"

	"go-hex-defense/internal/config"
	"go-hex-defense/internal/defs"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/utils"
	"go-hex-defense/pkg/hexmap"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrIllegalPlacement is returned when a variant is committed that the
	// validator does not offer at that coordinate.
	ErrIllegalPlacement = errors.New("illegal placement")
	// ErrTileLocked is returned when a mined tile would be changed.
	ErrTileLocked = errors.New("tile is locked by a mine")
	// ErrNoOre is returned when a mine is built away from any ore patch.
	ErrNoOre = errors.New("no ore patch next to tile")
)

// Options configures a session. Start from DefaultOptions.
type Options struct {
	Seed               int64
	Layout             hexmap.Layout
	StartingPathLength int
	ExpandMaxDepth     int
	ForkChanceBase     float64
	ForkChanceStep     float64
	ForkChanceCap      float64
	SpawnerCount       int
	SpawnerMin         int
	SpawnerMax         int
	MaxDistance        int
	OreZones           []hexmap.OreZone
	Logger             *slog.Logger
}

// DefaultOptions returns the options the viewer starts with.
func DefaultOptions() Options {
	return Options{
		Layout:             hexmap.Layout{HexSize: config.HexSize, Height: config.TileHeight},
		StartingPathLength: config.StartingPathLength,
		ExpandMaxDepth:     config.ExpandMaxDepth,
		ForkChanceBase:     config.ForkChanceBase,
		ForkChanceStep:     config.ForkChanceStep,
		ForkChanceCap:      config.ForkChanceCap,
		SpawnerCount:       config.HiddenSpawnerCount,
		SpawnerMin:         config.HiddenSpawnerMin,
		SpawnerMax:         config.HiddenSpawnerMax,
		MaxDistance:        config.MapRadius,
		OreZones:           defs.DefaultOreZones(),
	}
}

// Session owns one path network and every collaborator that reads or grows
// it. It is not safe for concurrent use.
type Session struct {
	Network         *hexmap.Network
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher

	generator  *hexmap.Generator
	validator  *hexmap.Validator
	pathfinder *hexmap.PathFinder
	logger     *slog.Logger
	opts       Options

	spawners   []hexmap.Hex
	ores       map[hexmap.Hex]hexmap.OrePatch
	mines      map[hexmap.Hex]hexmap.OrePatch // mined tile -> tapped patch
	locked     mapset.Set[hexmap.Hex]
	forkChance float64
	paths      map[hexmap.Hex][]hexmap.Vec3
}

// NewSession builds the initial world: castle, starting path, hidden
// spawners and ore, then computes every spawn path.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rng := utils.NewPRNGService(opts.Seed)
	s := &Session{
		Rng:             rng,
		EventDispatcher: event.NewDispatcher(),
		generator:       hexmap.NewGenerator(rng),
		validator:       hexmap.NewValidator(nil),
		pathfinder:      hexmap.NewPathFinder(opts.Layout),
		logger:          logger,
		opts:            opts,
		mines:           make(map[hexmap.Hex]hexmap.OrePatch),
		locked:          mapset.New[hexmap.Hex](),
		forkChance:      opts.ForkChanceBase,
	}

	s.Network = s.generator.GenerateInitialCastle()
	s.generator.GenerateStartingPath(s.Network, opts.StartingPathLength)
	s.spawners = s.generator.GenerateHiddenSpawners(s.Network, opts.SpawnerCount, opts.SpawnerMin, opts.SpawnerMax)
	s.ores = s.generator.GenerateOrePatches(s.Network, s.oreParams())
	s.recomputePaths()

	s.logger.Info("session created",
		"seed", rng.Seed(),
		"tiles", s.Network.Len(),
		"spawn_points", len(s.Network.SpawnPoints()),
		"hidden_spawners", len(s.spawners),
		"ore_patches", len(s.ores),
	)
	return s
}

func (s *Session) oreParams() hexmap.OreParams {
	return hexmap.OreParams{
		MinDistance:          config.OreMinDistance,
		MaxDistance:          config.OreMaxDistance,
		ZoneBoundaries:       config.OreZoneBoundaries,
		Zones:                s.opts.OreZones,
		GuaranteeStartingOre: true,
		GuaranteedKind:       hexmap.OreIron,
		Spawners:             s.spawners,
	}
}

// Layout returns the world layout of waypoints and tile centres.
func (s *Session) Layout() hexmap.Layout {
	return s.opts.Layout
}

// HiddenSpawners returns the concealed spawner coordinates.
func (s *Session) HiddenSpawners() []hexmap.Hex {
	return append([]hexmap.Hex(nil), s.spawners...)
}

// OrePatches returns the ore still uncovered by path tiles.
func (s *Session) OrePatches() map[hexmap.Hex]hexmap.OrePatch {
	out := make(map[hexmap.Hex]hexmap.OrePatch, len(s.ores))
	for h, p := range s.ores {
		out[h] = p
	}
	return out
}

// ForkChance is the fork probability of the next dead-end expansion.
func (s *Session) ForkChance() float64 {
	return s.forkChance
}

// SpawnPaths returns a copy of the current waypoint list of every spawn
// point. Unreachable spawn points map to an empty list.
func (s *Session) SpawnPaths() map[hexmap.Hex][]hexmap.Vec3 {
	out := make(map[hexmap.Hex][]hexmap.Vec3, len(s.paths))
	for h, p := range s.paths {
		out[h] = append([]hexmap.Vec3{}, p...)
	}
	return out
}

// recomputePaths rebuilds the route from every dead end to the castle.
func (s *Session) recomputePaths() {
	paths := make(map[hexmap.Hex][]hexmap.Vec3)
	var unreachable []hexmap.Hex
	for _, sp := range s.Network.SpawnPoints() {
		p := s.pathfinder.FindPathToCastle(s.Network, sp.Hex)
		if len(p) == 0 {
			unreachable = append(unreachable, sp.Hex)
		}
		paths[sp.Hex] = p
	}
	s.paths = paths
	if len(unreachable) > 0 {
		s.logger.Warn("spawn points without a path", "count", len(unreachable), "hexes", unreachable)
	}
	s.logger.Debug("paths recomputed", "spawn_points", len(paths))
	s.EventDispatcher.Dispatch(event.Event{
		Type: event.PathsRecomputed,
		Data: event.PathsUpdate{Paths: paths, Unreachable: unreachable},
	})
}

// cover drops the ore patches and hidden spawners that new path tiles were
// laid over.
func (s *Session) cover(tiles ...hexmap.Tile) {
	for _, t := range tiles {
		if _, ok := s.ores[t.Hex]; ok {
			delete(s.ores, t.Hex)
			s.logger.Info("ore covered by path", "hex", t.Hex)
		}
		if i := slices.Index(s.spawners, t.Hex); i >= 0 {
			s.spawners = slices.Delete(s.spawners, i, i+1)
			s.logger.Info("hidden spawner covered by path", "hex", t.Hex)
		}
	}
}

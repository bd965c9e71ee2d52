// pkg/hexmap/ore_generation.go
package hexmap

import "github.com/zyedidia/generic/mapset"

// OreKind names a resource.
type OreKind string

const (
	OreIron    OreKind = "IRON"
	OreCopper  OreKind = "COPPER"
	OreCrystal OreKind = "CRYSTAL"
	OreGold    OreKind = "GOLD"
)

// OrePatch is a resource deposit next to the path. It is not part of the
// path graph.
type OrePatch struct {
	Hex       Hex
	Kind      OreKind
	BaseYield int
}

// OreZone is the quota for one distance band.
type OreZone struct {
	Count int       `json:"count"`
	Kinds []OreKind `json:"kinds"`
}

// OreParams configures GenerateOrePatches.
//
// Zone i covers distances from ZoneBoundaries[i-1]+1 (MinDistance for the
// first zone) up to ZoneBoundaries[i], never beyond MaxDistance. Zones holds
// the quota for each band; bands without a quota receive nothing.
type OreParams struct {
	MinDistance    int
	MaxDistance    int
	ZoneBoundaries []int
	Zones          []OreZone
	// GuaranteeStartingOre places one patch of GuaranteedKind in the first
	// zone next to an open edge of the path, if such a spot exists.
	GuaranteeStartingOre bool
	GuaranteedKind       OreKind
	// Spawners are excluded like occupied tiles.
	Spawners []Hex
}

// minOreSpacing is the distance at or under which a second patch is refused.
const minOreSpacing = 2

type oreZoneBand struct {
	min, max   int
	candidates []Hex
}

// GenerateOrePatches scatters ore on empty, non-spawner coordinates. Each
// patch yields 1 plus its distance past the start of its zone.
func (g *Generator) GenerateOrePatches(n *Network, p OreParams) map[Hex]OrePatch {
	patches := make(map[Hex]OrePatch)
	bands := oreBands(p)
	if len(bands) == 0 {
		return patches
	}

	blocked := mapset.New[Hex]()
	for _, s := range p.Spawners {
		blocked.Put(s)
	}
	for _, band := range bands {
		for d := band.min; d <= band.max; d++ {
			for _, h := range Ring(Origin, d) {
				if !n.Contains(h) && !blocked.Has(h) {
					band.candidates = append(band.candidates, h)
				}
			}
		}
	}

	var placed []Hex
	put := func(h Hex, kind OreKind, band *oreZoneBand) {
		patches[h] = OrePatch{Hex: h, Kind: kind, BaseYield: 1 + h.Distance(Origin) - band.min}
		placed = append(placed, h)
	}

	quota := make([]int, len(bands))
	for i := range bands {
		if i < len(p.Zones) {
			quota[i] = p.Zones[i].Count
		}
	}

	if p.GuaranteeStartingOre && p.GuaranteedKind != "" {
		if h, ok := g.startingOreSpot(n, bands[0].candidates); ok {
			put(h, p.GuaranteedKind, bands[0])
			quota[0]--
		}
	}

	for i, band := range bands {
		if i >= len(p.Zones) || len(p.Zones[i].Kinds) == 0 {
			continue
		}
		kinds := p.Zones[i].Kinds
		candidates := append([]Hex(nil), band.candidates...)
		g.rng.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})
		for _, h := range candidates {
			if quota[i] <= 0 {
				break
			}
			if _, taken := patches[h]; taken || !farFromAll(h, placed, minOreSpacing+1) {
				continue
			}
			put(h, kinds[g.rng.Intn(len(kinds))], band)
			quota[i]--
		}
	}
	return patches
}

func oreBands(p OreParams) []*oreZoneBand {
	var bands []*oreZoneBand
	lo := p.MinDistance
	for _, hi := range p.ZoneBoundaries {
		if hi > p.MaxDistance {
			hi = p.MaxDistance
		}
		// A band with hi < lo stays in place, empty, so quotas keep their index.
		bands = append(bands, &oreZoneBand{min: lo, max: hi})
		if hi+1 > lo {
			lo = hi + 1
		}
	}
	return bands
}

// startingOreSpot picks a first-zone candidate touching the empty target of an
// open path edge, without sitting on the target itself.
func (g *Generator) startingOreSpot(n *Network, candidates []Hex) (Hex, bool) {
	targets := mapset.New[Hex]()
	for _, e := range emptyOpenEdges(n) {
		targets.Put(e.Target())
	}
	var spots []Hex
	for _, h := range candidates {
		if targets.Has(h) {
			continue
		}
		for _, nb := range h.AllPossibleNeighbors() {
			if targets.Has(nb) {
				spots = append(spots, h)
				break
			}
		}
	}
	if len(spots) == 0 {
		return Hex{}, false
	}
	return spots[g.rng.Intn(len(spots))], true
}

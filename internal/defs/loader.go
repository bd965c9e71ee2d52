// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-hex-defense/pkg/hexmap"
)

// ErrNoZones is returned for a definitions file without any zone.
var ErrNoZones = errors.New("no ore zones defined")

// DefaultOreZones — квоты руды по зонам, если файл определений не задан.
// Чем дальше от замка, тем меньше месторождений и тем они ценнее.
func DefaultOreZones() []hexmap.OreZone {
	return []hexmap.OreZone{
		{Count: 3, Kinds: []hexmap.OreKind{hexmap.OreIron, hexmap.OreCopper}},
		{Count: 3, Kinds: []hexmap.OreKind{hexmap.OreCopper, hexmap.OreCrystal}},
		{Count: 2, Kinds: []hexmap.OreKind{hexmap.OreCrystal, hexmap.OreGold}},
	}
}

// LoadOreZones reads an ore zone table: a JSON array of {"count", "kinds"}
// objects, one per distance zone.
func LoadOreZones(path string) ([]hexmap.OreZone, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ore zone file: %w", err)
	}

	var zones []hexmap.OreZone
	if err := json.Unmarshal(file, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ore zones: %w", err)
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoZones)
	}
	for i, z := range zones {
		if z.Count < 0 {
			return nil, fmt.Errorf("zone %d: negative count %d", i, z.Count)
		}
		for _, k := range z.Kinds {
			switch k {
			case hexmap.OreIron, hexmap.OreCopper, hexmap.OreCrystal, hexmap.OreGold:
			default:
				return nil, fmt.Errorf("zone %d: unknown ore kind %q", i, k)
			}
		}
	}
	return zones, nil
}

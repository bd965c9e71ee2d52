// internal/state/selection.go
package state

import "go-hex-defense/pkg/hexmap"

// PlaceableShapes are the shapes bound to keys 1..7.
var PlaceableShapes = []hexmap.Shape{
	hexmap.ShapeSimple,
	hexmap.ShapeFork,
	hexmap.ShapeDeadEnd,
	hexmap.ShapeGoblinCamp,
	hexmap.ShapeCross,
	hexmap.ShapeStar,
	hexmap.ShapeCrossroads,
}

// Selection is the shape in hand and the rotation picked for it.
type Selection struct {
	Shape    hexmap.Shape
	Rotation int
}

// SelectKey switches to the shape bound to key n (1-based). Unknown keys are
// ignored.
func (s *Selection) SelectKey(n int) bool {
	if n < 1 || n > len(PlaceableShapes) {
		return false
	}
	s.Shape = PlaceableShapes[n-1]
	s.Rotation = 0
	return true
}

// Rotate advances to the next variant.
func (s *Selection) Rotate() {
	s.Rotation++
}

// Variant returns the variant of the option at h that the current rotation
// points at, and how many variants that option has.
func (s *Selection) Variant(options []hexmap.PlacementOption, h hexmap.Hex) (hexmap.RotationVariant, int, bool) {
	for _, opt := range options {
		if opt.Hex != h || len(opt.Variants) == 0 {
			continue
		}
		return opt.Variants[s.Rotation%len(opt.Variants)], len(opt.Variants), true
	}
	return hexmap.RotationVariant{}, 0, false
}

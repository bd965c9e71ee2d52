package state

import (
	"testing"

	"go-hex-defense/pkg/hexmap"
)

func TestSelectionKeys(t *testing.T) {
	var s Selection
	s.Rotation = 4
	if !s.SelectKey(2) || s.Shape != hexmap.ShapeFork || s.Rotation != 0 {
		t.Fatalf("after key 2: %+v", s)
	}
	if s.SelectKey(0) || s.SelectKey(8) {
		t.Fatal("out of range key accepted")
	}
	if s.Shape != hexmap.ShapeFork {
		t.Fatalf("ignored key changed the shape to %v", s.Shape)
	}
}

func TestSelectionVariantWraps(t *testing.T) {
	h := hexmap.Hex{Q: 2, R: 0}
	v := hexmap.NewValidator(nil)
	options := []hexmap.PlacementOption{
		{Hex: hexmap.Hex{Q: 9, R: 9}},
		{Hex: h, Variants: v.CandidateVariants(hexmap.ShapeSimple, 3)},
	}
	s := Selection{Shape: hexmap.ShapeSimple}
	first, n, ok := s.Variant(options, h)
	if !ok || n != 5 {
		t.Fatalf("Variant = %v, %d, %v", first, n, ok)
	}
	for i := 0; i < n; i++ {
		s.Rotate()
	}
	again, _, _ := s.Variant(options, h)
	if again != first {
		t.Errorf("after a full turn got %v, want %v", again, first)
	}
	if _, _, ok := s.Variant(options, hexmap.Hex{Q: 9, R: 9}); ok {
		t.Error("option without variants was offered")
	}
	if _, _, ok := s.Variant(options, hexmap.Origin); ok {
		t.Error("variant offered where nothing fits")
	}
}

package render

import (
	"image/color"
	"testing"

	"go-hex-defense/pkg/hexmap"
)

func TestScreenHexAtInvertsHexCenter(t *testing.T) {
	s := Screen{Layout: hexmap.Layout{HexSize: 26}, Width: 1200, Height: 900}
	for _, h := range hexmap.HexesInRange(hexmap.Origin, 6) {
		x, y := s.HexCenter(h)
		if got := s.HexAt(int(x), int(y)); got != h {
			t.Errorf("HexAt(HexCenter(%v)) = %v", h, got)
		}
	}
}

func TestScreenCentresOrigin(t *testing.T) {
	s := Screen{Layout: hexmap.Layout{HexSize: 10}, Width: 200, Height: 100}
	if x, y := s.HexCenter(hexmap.Origin); x != 100 || y != 50 {
		t.Fatalf("origin at (%v, %v)", x, y)
	}
}

func TestColorHelpers(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 20, A: 77}
	if got, want := DarkenColor(c), (color.RGBA{R: 100, G: 50, B: 10, A: 77}); got != want {
		t.Errorf("DarkenColor = %v, want %v", got, want)
	}
	if got, want := LightenColor(c, 80), (color.RGBA{R: 255, G: 180, B: 100, A: 77}); got != want {
		t.Errorf("LightenColor = %v, want %v", got, want)
	}
}

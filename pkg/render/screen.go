// pkg/render/screen.go
package render

import "go-hex-defense/pkg/hexmap"

// Screen maps the X/Z world plane onto screen pixels, with the origin hex at
// the centre of the window.
type Screen struct {
	Layout        hexmap.Layout
	Width, Height int
}

// ToScreen projects a world point.
func (s Screen) ToScreen(p hexmap.Vec3) (float32, float32) {
	return float32(p.X) + float32(s.Width)/2, float32(p.Z) + float32(s.Height)/2
}

// HexCenter returns the screen position of a hex centre.
func (s Screen) HexCenter(h hexmap.Hex) (float32, float32) {
	return s.ToScreen(s.Layout.ToWorld(h))
}

// HexAt returns the hex under a screen pixel.
func (s Screen) HexAt(x, y int) hexmap.Hex {
	return s.Layout.FromWorld(float64(x)-float64(s.Width)/2, float64(y)-float64(s.Height)/2)
}

// Corners returns the six screen corners of h.
func (s Screen) Corners(h hexmap.Hex) [6][2]float32 {
	var out [6][2]float32
	for i := range out {
		out[i][0], out[i][1] = s.ToScreen(s.Layout.Corner(h, i))
	}
	return out
}

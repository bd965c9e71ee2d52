// pkg/render/network_renderer.go
package render

import (
	"image/color"

	"go-hex-defense/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Scene is everything drawn in one frame.
type Scene struct {
	Network    *hexmap.Network
	Ores       map[hexmap.Hex]hexmap.OrePatch
	Spawners   []hexmap.Hex
	Mines      map[hexmap.Hex]hexmap.OrePatch
	Candidates []hexmap.PlacementOption
	Preview    *hexmap.Tile // выбранный вариант под курсором
	Paths      map[hexmap.Hex][]hexmap.Vec3
}

// NetworkRenderer draws the path network with ebiten.
type NetworkRenderer struct {
	screen     Screen
	colors     *NetworkColors
	gridRadius int
	fillImg    *ebiten.Image
	fillVs     []ebiten.Vertex
	fillIs     []uint16
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
	fontFace   font.Face
	gridImage  *ebiten.Image // предрендеренная сетка
}

func NewNetworkRenderer(screen Screen, colors *NetworkColors, gridRadius int) *NetworkRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &NetworkRenderer{
		screen:     screen,
		colors:     colors,
		gridRadius: gridRadius,
		fillImg:    fillImg,
		fillVs:     make([]ebiten.Vertex, 0, 18),
		fillIs:     make([]uint16, 0, 18),
		strokeVs:   make([]ebiten.Vertex, 0, 36),
		strokeIs:   make([]uint16, 0, 36),
		fontFace:   basicfont.Face7x13,
		gridImage:  ebiten.NewImage(screen.Width, screen.Height),
	}
	r.RenderGridImage()
	return r
}

// FontFace returns the face used for labels.
func (r *NetworkRenderer) FontFace() font.Face {
	return r.fontFace
}

// RenderGridImage рисует сетку в пределах границы карты один раз.
func (r *NetworkRenderer) RenderGridImage() {
	r.gridImage.Clear()
	r.gridImage.Fill(r.colors.Background)
	for _, h := range hexmap.HexesInRange(hexmap.Origin, r.gridRadius) {
		r.strokeHex(r.gridImage, h, r.colors.Grid, 1)
	}
}

// Draw renders the scene: grid, ore, hidden spawners, candidates, tiles,
// spokes and finally the spawn paths on top.
func (r *NetworkRenderer) Draw(dst *ebiten.Image, scene Scene) {
	dst.DrawImage(r.gridImage, nil)

	for h, ore := range scene.Ores {
		x, y := r.screen.HexCenter(h)
		vector.DrawFilledCircle(dst, x, y, float32(r.screen.Layout.HexSize)*0.35, r.colors.Ore[string(ore.Kind)], true)
	}
	for _, h := range scene.Spawners {
		r.strokeHex(dst, h, r.colors.Spawner, r.colors.StrokeWidth)
	}
	for _, opt := range scene.Candidates {
		r.fillHex(dst, opt.Hex, r.colors.Candidate)
	}

	if scene.Network != nil {
		for _, t := range scene.Network.Tiles() {
			r.drawTile(dst, t, r.tileColor(t), scene.Mines)
		}
	}
	if scene.Preview != nil {
		r.drawTile(dst, *scene.Preview, r.colors.Selected, nil)
	}

	for _, path := range scene.Paths {
		r.drawPath(dst, path)
	}
}

func (r *NetworkRenderer) tileColor(t hexmap.Tile) color.RGBA {
	switch {
	case t.IsCastle():
		return r.colors.Castle
	case t.IsSpawnPoint():
		return r.colors.DeadEnd
	}
	return r.colors.Tile
}

func (r *NetworkRenderer) drawTile(dst *ebiten.Image, t hexmap.Tile, fill color.RGBA, mines map[hexmap.Hex]hexmap.OrePatch) {
	r.fillHex(dst, t.Hex, fill)
	stroke := LightenColor(fill, 40)
	if _, mined := mines[t.Hex]; mined {
		stroke = r.colors.Mine
	}
	r.strokeHex(dst, t.Hex, stroke, r.colors.StrokeWidth)

	// Спицы от центра к серединам соединённых рёбер.
	cx, cy := r.screen.HexCenter(t.Hex)
	for _, e := range t.Edges.Slice() {
		mx, my := r.screen.ToScreen(r.screen.Layout.EdgeMidpoint(t.Hex, e))
		vector.StrokeLine(dst, cx, cy, mx, my, 3, r.colors.Spoke, true)
	}

	label := t.Shape.String()
	if t.IsCastle() || t.IsSpawnPoint() {
		bounds := text.BoundString(r.fontFace, label)
		text.Draw(dst, label, r.fontFace, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()+4, r.colors.Text)
	}
}

func (r *NetworkRenderer) drawPath(dst *ebiten.Image, path []hexmap.Vec3) {
	for i := 1; i < len(path); i++ {
		x0, y0 := r.screen.ToScreen(path[i-1])
		x1, y1 := r.screen.ToScreen(path[i])
		vector.StrokeLine(dst, x0, y0, x1, y1, 2, r.colors.Path, true)
	}
}

func (r *NetworkRenderer) hexPath(h hexmap.Hex) vector.Path {
	path := vector.Path{}
	for i, c := range r.screen.Corners(h) {
		if i == 0 {
			path.MoveTo(c[0], c[1])
		} else {
			path.LineTo(c[0], c[1])
		}
	}
	path.Close()
	return path
}

func (r *NetworkRenderer) fillHex(dst *ebiten.Image, h hexmap.Hex, c color.RGBA) {
	path := r.hexPath(h)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	colorVertices(r.fillVs, c)
	dst.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *NetworkRenderer) strokeHex(dst *ebiten.Image, h hexmap.Hex, c color.RGBA, width float32) {
	path := r.hexPath(h)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	colorVertices(r.strokeVs, c)
	dst.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func colorVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-hex-defense/internal/config"
	"go-hex-defense/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
)

// PanelInfo is the state shown in the panel.
type PanelInfo struct {
	Shape      hexmap.Shape
	Rotation   int // индекс варианта под курсором
	Variants   int
	Hovered    hexmap.Hex
	HoverTile  *hexmap.Tile
	HoverOre   *hexmap.OrePatch
	Locked     bool
	ForkChance float64
	Tiles      int
	Spawns     int
	Message    string
}

// Lines formats the panel text.
func (i PanelInfo) Lines() []string {
	lines := []string{
		fmt.Sprintf("[1-7] фигура: %v   [R] поворот: %d/%d   [E] расширить тупик   [M] шахта", i.Shape, i.Rotation+1, i.Variants),
		fmt.Sprintf("тайлов: %d   точек появления: %d   шанс развилки: %.0f%%", i.Tiles, i.Spawns, i.ForkChance*100),
	}
	hover := fmt.Sprintf("гекс %d,%d", i.Hovered.Q, i.Hovered.R)
	if i.HoverTile != nil {
		hover += fmt.Sprintf("   %v %v", i.HoverTile.Shape, i.HoverTile.Edges)
	}
	if i.Locked {
		hover += "   (шахта)"
	}
	if i.HoverOre != nil {
		hover += fmt.Sprintf("   руда %s x%d", i.HoverOre.Kind, i.HoverOre.BaseYield)
	}
	lines = append(lines, hover)
	if i.Message != "" {
		lines = append(lines, i.Message)
	}
	return lines
}

// InfoPanel — выезжающая снизу панель состояния.
type InfoPanel struct {
	IsVisible bool
	fontFace  font.Face
	currentY  float64
	targetY   float64
}

// NewInfoPanel creates a hidden panel.
func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) Show() {
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Toggle shows a hidden panel and hides a visible one.
func (p *InfoPanel) Toggle() {
	if p.targetY < config.ScreenHeight {
		p.Hide()
	} else {
		p.Show()
	}
}

// Update двигает панель к целевой позиции.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, info PanelInfo) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	for n, line := range info.Lines() {
		text.Draw(screen, line, p.fontFace, panelRect.Min.X+15, panelRect.Min.Y+20+n*lineHeight, config.TextLightColor)
	}
}

package ui

import (
	"strings"
	"testing"

	"go-hex-defense/pkg/hexmap"
)

func TestPanelInfoLines(t *testing.T) {
	tile := hexmap.Tile{Hex: hexmap.Hex{Q: 1, R: 0}, Shape: hexmap.ShapeSimple, Edges: hexmap.Edges(3, 0)}
	ore := hexmap.OrePatch{Hex: hexmap.Hex{Q: 2, R: 0}, Kind: hexmap.OreGold, BaseYield: 2}
	tests := []struct {
		name  string
		info  PanelInfo
		lines int
		want  string
	}{
		{"bare", PanelInfo{Shape: hexmap.ShapeFork, Variants: 10}, 3, "1/10"},
		{"hover tile", PanelInfo{Hovered: tile.Hex, HoverTile: &tile, Locked: true}, 3, "(шахта)"},
		{"ore and message", PanelInfo{HoverOre: &ore, Message: "нет места"}, 4, "GOLD x2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := tt.info.Lines()
			if len(lines) != tt.lines {
				t.Fatalf("got %d lines: %q", len(lines), lines)
			}
			if !strings.Contains(strings.Join(lines, "\n"), tt.want) {
				t.Errorf("%q not in %q", tt.want, lines)
			}
		})
	}
}

func TestInfoPanelSlides(t *testing.T) {
	p := NewInfoPanel(nil)
	p.Show()
	for i := 0; i < 100; i++ {
		p.Update()
	}
	if !p.IsVisible || p.currentY != p.targetY {
		t.Fatalf("panel did not settle open: y=%v target=%v", p.currentY, p.targetY)
	}
	p.Toggle()
	for i := 0; i < 100; i++ {
		p.Update()
	}
	if p.IsVisible {
		t.Fatal("panel still visible after hiding")
	}
}

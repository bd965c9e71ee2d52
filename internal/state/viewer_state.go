// internal/state/viewer_state.go
package state

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/ui"
	"go-hex-defense/pkg/hexmap"
	"go-hex-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ViewerState — интерактивный просмотр сети путей: выбор фигуры, поворот,
// размещение, расширение тупиков и постройка шахт.
type ViewerState struct {
	sm         *StateMachine
	session    *app.Session
	screen     render.Screen
	renderer   *render.NetworkRenderer
	infoPanel  *ui.InfoPanel
	selection  Selection
	candidates []hexmap.PlacementOption
	dirty      bool
	hovered    hexmap.Hex
	message    string

	lastClickTime time.Time
}

// NewViewerState builds the renderer around an existing session.
func NewViewerState(sm *StateMachine, session *app.Session) *ViewerState {
	screen := render.Screen{Layout: session.Layout(), Width: config.ScreenWidth, Height: config.ScreenHeight}
	colors := &render.NetworkColors{
		Background:  config.BackgroundColor,
		Grid:        config.GridColor,
		Tile:        config.TileColor,
		Castle:      config.CastleColor,
		DeadEnd:     config.DeadEndColor,
		Mine:        config.MineColor,
		Spawner:     config.SpawnerColor,
		Candidate:   config.CandidateColor,
		Selected:    config.SelectedColor,
		Spoke:       config.SpokeColor,
		Path:        config.PathColor,
		Text:        config.TextLightColor,
		Ore:         config.OreColors,
		StrokeWidth: config.StrokeWidth,
	}
	renderer := render.NewNetworkRenderer(screen, colors, config.MapRadius)

	v := &ViewerState{
		sm:        sm,
		session:   session,
		screen:    screen,
		renderer:  renderer,
		infoPanel: ui.NewInfoPanel(renderer.FontFace()),
		selection: Selection{Shape: hexmap.ShapeSimple},
		dirty:     true,
	}
	session.EventDispatcher.Subscribe(event.PathsRecomputed, v)
	session.EventDispatcher.Subscribe(event.MineBuilt, v)
	return v
}

// OnEvent marks the cached placements stale after every mutation, mines
// included since they lock a tile against replacement.
func (v *ViewerState) OnEvent(e event.Event) {
	switch e.Type {
	case event.PathsRecomputed, event.MineBuilt:
		v.dirty = true
	}
}

func (v *ViewerState) Enter() {
	v.infoPanel.Show()
}

func (v *ViewerState) Exit() {
	v.session.EventDispatcher.Unsubscribe(event.PathsRecomputed, v)
	v.session.EventDispatcher.Unsubscribe(event.MineBuilt, v)
}

func (v *ViewerState) refresh() {
	if v.dirty {
		v.candidates = v.session.Placements(v.selection.Shape)
		v.dirty = false
	}
}

func (v *ViewerState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	v.hovered = v.screen.HexAt(x, y)

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7} {
		if inpututil.IsKeyJustPressed(key) && v.selection.SelectKey(i+1) {
			v.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.selection.Rotate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.infoPanel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		v.expand()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		v.buildMine()
	}
	v.refresh()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		time.Since(v.lastClickTime) >= time.Duration(config.ClickDebounceTime)*time.Millisecond {
		v.place()
		v.lastClickTime = time.Now()
	}
	v.infoPanel.Update()
	return nil
}

func (v *ViewerState) place() {
	variant, _, ok := v.selection.Variant(v.candidates, v.hovered)
	if !ok {
		v.message = fmt.Sprintf("%v не помещается в %d,%d", v.selection.Shape, v.hovered.Q, v.hovered.R)
		return
	}
	if err := v.session.Place(v.selection.Shape, v.hovered, variant.Edges); err != nil {
		v.message = err.Error()
		slog.Warn("placement failed", "error", err)
		return
	}
	v.selection.Rotation = 0
	v.message = ""
}

func (v *ViewerState) expand() {
	tiles, err := v.session.ExpandDeadEnd(v.hovered)
	switch {
	case err != nil:
		v.message = err.Error()
	case len(tiles) == 0:
		v.message = "тупику некуда расти"
	default:
		v.message = fmt.Sprintf("путь вырос на %d тайлов", len(tiles)-1)
	}
}

func (v *ViewerState) buildMine() {
	ore, err := v.session.BuildMine(v.hovered)
	switch {
	case errors.Is(err, app.ErrNoOre):
		v.message = "рядом нет руды"
	case err != nil:
		v.message = err.Error()
	default:
		v.message = fmt.Sprintf("шахта: %s x%d", ore.Kind, ore.BaseYield)
	}
}

func (v *ViewerState) Draw(screen *ebiten.Image) {
	scene := render.Scene{
		Network:    v.session.Network,
		Ores:       v.session.OrePatches(),
		Spawners:   v.session.HiddenSpawners(),
		Mines:      v.session.Mines(),
		Candidates: v.candidates,
		Paths:      v.session.SpawnPaths(),
	}
	variant, count, ok := v.selection.Variant(v.candidates, v.hovered)
	if ok {
		scene.Preview = &hexmap.Tile{Hex: v.hovered, Shape: v.selection.Shape, Edges: variant.Edges}
	}
	v.renderer.Draw(screen, scene)

	info := ui.PanelInfo{
		Shape:      v.selection.Shape,
		Variants:   count,
		Hovered:    v.hovered,
		Locked:     v.session.IsLocked(v.hovered),
		ForkChance: v.session.ForkChance(),
		Tiles:      v.session.Network.Len(),
		Spawns:     len(v.session.Network.SpawnPoints()),
		Message:    v.message,
	}
	if count > 0 {
		info.Rotation = v.selection.Rotation % count
	}
	if t, ok := v.session.Network.Tile(v.hovered); ok {
		info.HoverTile = &t
	}
	if ore, ok := scene.Ores[v.hovered]; ok {
		info.HoverOre = &ore
	}
	v.infoPanel.Draw(screen, info)
}

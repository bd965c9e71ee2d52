package hexmap

import (
	"math"
	"reflect"
	"testing"
)

var testLayout = Layout{HexSize: 10}

// line builds castle -> (1,0) -> ... -> (length,0), ending in a dead end.
func line(length int) *Network {
	n := NewNetwork()
	_ = n.Set(Tile{Hex: Origin, Shape: ShapeCastle, Edges: Edges(0)})
	for q := 1; q < length; q++ {
		_ = n.Set(Tile{Hex: Hex{q, 0}, Shape: ShapeSimple, Edges: Edges(3, 0)})
	}
	_ = n.Set(Tile{Hex: Hex{length, 0}, Shape: ShapeDeadEnd, Edges: Edges(3)})
	return n
}

func near(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9 && math.Abs(a.Z-b.Z) < 1e-9
}

func TestFindPathToCastleWaypoints(t *testing.T) {
	n := line(3)
	pf := NewPathFinder(testLayout)

	chain := pf.FindTilePath(n, Hex{3, 0}, Tile.IsCastle)
	if want := []Hex{{3, 0}, {2, 0}, {1, 0}, {0, 0}}; !reflect.DeepEqual(chain, want) {
		t.Fatalf("tile path = %v, want %v", chain, want)
	}

	points := pf.FindPathToCastle(n, Hex{3, 0})
	if len(points) != 2*len(chain)-1 {
		t.Fatalf("got %d waypoints, want %d", len(points), 2*len(chain)-1)
	}
	if !near(points[0], testLayout.ToWorld(Hex{3, 0})) {
		t.Errorf("first waypoint %v is not the start centre", points[0])
	}
	if !near(points[len(points)-1], testLayout.ToWorld(Origin)) {
		t.Errorf("last waypoint %v is not the castle", points[len(points)-1])
	}
	for i := 1; i < len(chain); i++ {
		mid := points[2*i-1]
		want := testLayout.ToWorld(chain[i-1]).Lerp(testLayout.ToWorld(chain[i]), 0.5)
		if !near(mid, want) {
			t.Errorf("waypoint %d = %v, want edge midpoint %v", 2*i-1, mid, want)
		}
		if !near(points[2*i], testLayout.ToWorld(chain[i])) {
			t.Errorf("waypoint %d is not the centre of %v", 2*i, chain[i])
		}
	}
}

func TestFindPathStartIsTarget(t *testing.T) {
	n := line(2)
	points := NewPathFinder(testLayout).FindPathToCastle(n, Origin)
	if len(points) != 1 || !near(points[0], testLayout.ToWorld(Origin)) {
		t.Fatalf("path from castle to itself = %v", points)
	}
}

func TestFindPathNeverCrossesOneSidedEdge(t *testing.T) {
	n := line(2)
	// (0,1) points at the castle, but the castle does not point back.
	_ = n.Set(Tile{Hex: Hex{0, 1}, Shape: ShapeDeadEnd, Edges: Edges(2)})
	pf := NewPathFinder(testLayout)

	if got := pf.FindPathToCastle(n, Hex{0, 1}); len(got) != 0 {
		t.Fatalf("path crossed a one-sided edge: %v", got)
	}
	if ReachableFromCastle(n).Has(Hex{0, 1}) {
		t.Fatal("reachable set crossed a one-sided edge")
	}

	// Once the castle agrees, the same tile is reachable.
	_ = n.Set(Tile{Hex: Origin, Shape: ShapeCastle, Edges: Edges(0, 5)})
	if got := pf.FindPathToCastle(n, Hex{0, 1}); len(got) != 3 {
		t.Fatalf("expected a 3-point path once linked, got %v", got)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	n := line(2)
	_ = n.Set(Tile{Hex: Hex{5, 5}, Shape: ShapeDeadEnd, Edges: Edges(0)})
	pf := NewPathFinder(testLayout)
	if got := pf.FindPathToCastle(n, Hex{5, 5}); got == nil || len(got) != 0 {
		t.Errorf("unreachable path = %#v, want empty", got)
	}
	if got := pf.FindPathToCastle(n, Hex{9, 9}); len(got) != 0 {
		t.Errorf("path from empty hex = %v, want empty", got)
	}
}

func TestFindPathTo(t *testing.T) {
	n := line(4)
	pf := NewPathFinder(testLayout)
	points := pf.FindPathTo(n, Origin, Hex{2, 0})
	if len(points) != 5 {
		t.Fatalf("got %d waypoints, want 5", len(points))
	}
	if !near(points[4], testLayout.ToWorld(Hex{2, 0})) {
		t.Errorf("last waypoint %v is not the target", points[4])
	}
}

func TestFindPathPrefersShortest(t *testing.T) {
	// A ring around the castle's +q neighbour gives two routes from (2,-1):
	// direct through (1,0) and the long way round.
	n := NewNetwork()
	_ = n.Set(Tile{Hex: Origin, Shape: ShapeCastle, Edges: Edges(0)})
	_ = n.Set(Tile{Hex: Hex{1, 0}, Shape: ShapeStar, Edges: Edges(3, 0, 1, 2, 5)})
	_ = n.Set(Tile{Hex: Hex{2, -1}, Shape: ShapeSimple, Edges: Edges(4, 5)})
	_ = n.Set(Tile{Hex: Hex{2, 0}, Shape: ShapeSimple, Edges: Edges(3, 2)})
	chain := NewPathFinder(testLayout).FindTilePath(n, Hex{2, -1}, Tile.IsCastle)
	if len(chain) != 3 {
		t.Fatalf("chain %v is not a shortest path", chain)
	}
}

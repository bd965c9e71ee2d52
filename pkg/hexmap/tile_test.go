package hexmap

import (
	"errors"
	"reflect"
	"testing"
)

func TestEdgeSet(t *testing.T) {
	s := Edges(4, 1, 7, -2)
	if got, want := s.Slice(), []int{1, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Slice() = %v, want %v", got, want)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(-5) || s.Has(0) {
		t.Errorf("Has gives wrong membership for %v", s)
	}
	if s.With(0).Without(4) != Edges(0, 1) {
		t.Errorf("With/Without mismatch: %v", s.With(0).Without(4))
	}
	if s.Rotate(3) != Edges(4, 1) {
		t.Errorf("Rotate(3) = %v", s.Rotate(3))
	}
	if s.Rotate(1) != Edges(2, 5) {
		t.Errorf("Rotate(1) = %v", s.Rotate(1))
	}
	if got := s.String(); got != "{1,4}" {
		t.Errorf("String() = %q", got)
	}
}

func TestShapeConnections(t *testing.T) {
	want := map[Shape]int{
		ShapeCastle: 1, ShapeSimple: 2, ShapeFork: 3, ShapeDeadEnd: 1,
		ShapeGoblinCamp: 2, ShapeCross: 4, ShapeStar: 5, ShapeCrossroads: 6,
	}
	for _, s := range AllShapes {
		if got := s.Connections(); got != want[s] {
			t.Errorf("%v.Connections() = %d, want %d", s, got, want[s])
		}
	}
	if Shape(99).String() != "Shape(99)" {
		t.Errorf("unknown shape name = %q", Shape(99).String())
	}
}

func TestTileValidate(t *testing.T) {
	tests := []struct {
		name    string
		tile    Tile
		wantErr bool
	}{
		{"castle", Tile{Shape: ShapeCastle, Edges: Edges(2)}, false},
		{"fork", Tile{Shape: ShapeFork, Edges: Edges(0, 2, 4)}, false},
		{"fork missing edge", Tile{Shape: ShapeFork, Edges: Edges(0, 2)}, true},
		{"dead end with two edges", Tile{Shape: ShapeDeadEnd, Edges: Edges(0, 3)}, true},
		{"crossroads", Tile{Shape: ShapeCrossroads, Edges: allEdges}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tile.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrEdgeCount) {
				t.Errorf("error %v does not wrap ErrEdgeCount", err)
			}
		})
	}
	if !(Tile{Shape: ShapeDeadEnd}).IsSpawnPoint() || (Tile{Shape: ShapeGoblinCamp}).IsSpawnPoint() {
		t.Error("only dead ends are spawn points")
	}
}

package hexmap

import (
	"errors"
	"reflect"
	"testing"
)

func TestNetworkSetKeepsOrder(t *testing.T) {
	n := NewNetwork()
	a := Tile{Hex: Origin, Shape: ShapeCastle, Edges: Edges(0)}
	b := Tile{Hex: Hex{1, 0}, Shape: ShapeSimple, Edges: Edges(3, 0)}
	c := Tile{Hex: Hex{2, 0}, Shape: ShapeDeadEnd, Edges: Edges(3)}
	for _, tile := range []Tile{a, b, c} {
		if err := n.Set(tile); err != nil {
			t.Fatal(err)
		}
	}
	b.Shape = ShapeFork
	b.Edges = Edges(3, 0, 1)
	if err := n.Set(b); err != nil {
		t.Fatal(err)
	}
	got := n.Tiles()
	if want := []Tile{a, b, c}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Tiles() = %v, want %v", got, want)
	}
	if spawns := n.SpawnPoints(); len(spawns) != 1 || spawns[0] != c {
		t.Errorf("SpawnPoints() = %v", spawns)
	}
}

func TestNetworkSingleCastle(t *testing.T) {
	n := NewNetwork()
	if err := n.Set(Tile{Hex: Origin, Shape: ShapeCastle, Edges: Edges(1)}); err != nil {
		t.Fatal(err)
	}
	err := n.Set(Tile{Hex: Hex{3, 3}, Shape: ShapeCastle, Edges: Edges(1)})
	if !errors.Is(err, ErrSecondCastle) {
		t.Fatalf("second castle: err = %v", err)
	}
	if err := n.Set(Tile{Hex: Origin, Shape: ShapeCastle, Edges: Edges(4)}); err != nil {
		t.Fatalf("re-orienting the castle: %v", err)
	}
	if castle, _ := n.Castle(); castle.Edges != Edges(4) {
		t.Errorf("castle edges = %v", castle.Edges)
	}
	if err := n.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestNetworkValidate(t *testing.T) {
	n := NewNetwork()
	if err := n.Validate(); err == nil {
		t.Fatal("empty network must not validate")
	}
	_ = n.Set(Tile{Hex: Origin, Shape: ShapeCastle, Edges: Edges(0)})
	_ = n.Set(Tile{Hex: Hex{1, 0}, Shape: ShapeFork, Edges: Edges(3, 0)})
	if err := n.Validate(); !errors.Is(err, ErrEdgeCount) {
		t.Fatalf("Validate() = %v, want ErrEdgeCount", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	n := NewNetwork()
	_ = n.Set(Tile{Hex: Origin, Shape: ShapeCastle, Edges: Edges(0)})
	c := n.Clone()
	_ = c.Set(Tile{Hex: Hex{1, 0}, Shape: ShapeDeadEnd, Edges: Edges(3)})
	if n.Contains(Hex{1, 0}) || n.Len() != 1 {
		t.Fatal("mutating the clone changed the original")
	}
	if _, ok := c.Castle(); !ok {
		t.Fatal("clone lost its castle")
	}
}

func TestLinkedAndOneSidedEdges(t *testing.T) {
	n := NewNetwork()
	_ = n.Set(Tile{Hex: Origin, Shape: ShapeCastle, Edges: Edges(0)})
	_ = n.Set(Tile{Hex: Hex{1, 0}, Shape: ShapeSimple, Edges: Edges(3, 1)})
	// (2,-1) does not point back at (1,0).
	_ = n.Set(Tile{Hex: Hex{2, -1}, Shape: ShapeDeadEnd, Edges: Edges(0)})

	if !Linked(n, Origin, 0) || !Linked(n, Hex{1, 0}, 3) {
		t.Error("castle link not detected")
	}
	if Linked(n, Hex{1, 0}, 1) {
		t.Error("one-sided edge reported as linked")
	}
	want := []HalfEdge{{Hex: Hex{1, 0}, Edge: 1}}
	if got := n.OneSidedEdges(); !reflect.DeepEqual(got, want) {
		t.Errorf("OneSidedEdges() = %v, want %v", got, want)
	}
}

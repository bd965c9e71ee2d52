package hexmap

// RotationVariant is one orientation of a piece: the edge it is entered
// through and the full set of edges it connects.
type RotationVariant struct {
	Entry int
	Edges EdgeSet
}

// RotationPattern enumerates the orientations a piece may take once its entry
// edge is fixed. All offsets are counted counter-clockwise from the entry.
//
// The set of patterns is closed: the interface is sealed and every
// implementation lives in this file.
type RotationPattern interface {
	Variants(entry int) []RotationVariant
	pattern()
}

type (
	// StraightPattern connects the entry to the opposite edge.
	StraightPattern struct{}
	// BendPattern connects the entry to any one other edge.
	BendPattern struct{}
	// SimplePattern is Straight followed by the bends that do not duplicate it,
	// so the first variant offered is always the straight one.
	SimplePattern struct{}
	// ForkPattern connects the entry to any two other edges.
	ForkPattern struct{}
	// DeadEndPattern connects the entry only.
	DeadEndPattern struct{}
	// CrossPattern keeps entry and opposite and adds two of the four side edges.
	CrossPattern struct{}
	// StarPattern connects every edge except one non-entry edge.
	StarPattern struct{}
	// CrossroadsPattern connects all six edges.
	CrossroadsPattern struct{}
)

func (StraightPattern) pattern()   {}
func (BendPattern) pattern()       {}
func (SimplePattern) pattern()     {}
func (ForkPattern) pattern()       {}
func (DeadEndPattern) pattern()    {}
func (CrossPattern) pattern()      {}
func (StarPattern) pattern()       {}
func (CrossroadsPattern) pattern() {}

func variant(entry int, offsets ...int) RotationVariant {
	entry = NormalizeEdge(entry)
	edges := Edges(entry)
	for _, off := range offsets {
		edges = edges.With(entry + off)
	}
	return RotationVariant{Entry: entry, Edges: edges}
}

func (StraightPattern) Variants(entry int) []RotationVariant {
	return []RotationVariant{variant(entry, 3)}
}

func (BendPattern) Variants(entry int) []RotationVariant {
	out := make([]RotationVariant, 0, 5)
	for off := 1; off < EdgeCount; off++ {
		out = append(out, variant(entry, off))
	}
	return out
}

func (SimplePattern) Variants(entry int) []RotationVariant {
	out := StraightPattern{}.Variants(entry)
	for _, v := range (BendPattern{}).Variants(entry) {
		if v.Edges != out[0].Edges {
			out = append(out, v)
		}
	}
	return out
}

func (ForkPattern) Variants(entry int) []RotationVariant {
	out := make([]RotationVariant, 0, 10)
	for a := 1; a < EdgeCount; a++ {
		for b := a + 1; b < EdgeCount; b++ {
			out = append(out, variant(entry, a, b))
		}
	}
	return out
}

func (DeadEndPattern) Variants(entry int) []RotationVariant {
	return []RotationVariant{variant(entry)}
}

func (CrossPattern) Variants(entry int) []RotationVariant {
	sides := []int{1, 2, 4, 5}
	out := make([]RotationVariant, 0, 6)
	for i := 0; i < len(sides); i++ {
		for j := i + 1; j < len(sides); j++ {
			out = append(out, variant(entry, 3, sides[i], sides[j]))
		}
	}
	return out
}

func (StarPattern) Variants(entry int) []RotationVariant {
	out := make([]RotationVariant, 0, 5)
	for skip := 1; skip < EdgeCount; skip++ {
		v := variant(entry, 1, 2, 3, 4, 5)
		v.Edges = v.Edges.Without(v.Entry + skip)
		out = append(out, v)
	}
	return out
}

func (CrossroadsPattern) Variants(entry int) []RotationVariant {
	return []RotationVariant{variant(entry, 1, 2, 3, 4, 5)}
}

// Pattern returns the rotation pattern a placed piece of this shape uses. The
// castle is never placed, so it has none.
func (s Shape) Pattern() (RotationPattern, bool) {
	switch s {
	case ShapeSimple:
		return SimplePattern{}, true
	case ShapeGoblinCamp:
		return StraightPattern{}, true
	case ShapeFork:
		return ForkPattern{}, true
	case ShapeDeadEnd:
		return DeadEndPattern{}, true
	case ShapeCross:
		return CrossPattern{}, true
	case ShapeStar:
		return StarPattern{}, true
	case ShapeCrossroads:
		return CrossroadsPattern{}, true
	}
	return nil, false
}

// DefaultPatterns maps every placeable shape to its pattern.
func DefaultPatterns() map[Shape]RotationPattern {
	patterns := make(map[Shape]RotationPattern, len(AllShapes))
	for _, s := range AllShapes {
		if p, ok := s.Pattern(); ok {
			patterns[s] = p
		}
	}
	return patterns
}

// pkg/hexmap/hex.go
package hexmap

// EdgeCount is the number of edges (and neighbours) around a hex.
const EdgeCount = 6

// Hex is an axial coordinate (Q, R) on the hex grid. The third cube axis is
// derived: S = -Q - R.
type Hex struct {
	Q, R int
}

// Origin is where the castle always stands.
var Origin = Hex{}

// NeighborDirections defines the 6 unit directions from a hex, starting from
// +q (edge 0) and going counter-clockwise. Direction i+3 is always the
// negation of direction i, which is what OppositeEdge relies on.
var NeighborDirections = [EdgeCount]Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// NormalizeEdge maps any integer onto 0..5.
func NormalizeEdge(edge int) int {
	edge %= EdgeCount
	if edge < 0 {
		edge += EdgeCount
	}
	return edge
}

// OppositeEdge returns the edge facing back across edge.
func OppositeEdge(edge int) int {
	return NormalizeEdge(edge + EdgeCount/2)
}

// S returns the derived cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Neighbor returns the hex across the given edge.
func (h Hex) Neighbor(edge int) Hex {
	return h.Add(NeighborDirections[NormalizeEdge(edge)])
}

// AllPossibleNeighbors returns all six neighbours in edge order.
func (h Hex) AllPossibleNeighbors() [EdgeCount]Hex {
	var out [EdgeCount]Hex
	for edge, dir := range NeighborDirections {
		out[edge] = h.Add(dir)
	}
	return out
}

// EdgeTowards returns the edge of h that faces other, or -1 when the two
// hexes are not adjacent.
func (h Hex) EdgeTowards(other Hex) int {
	d := other.Subtract(h)
	for edge, dir := range NeighborDirections {
		if dir == d {
			return edge
		}
	}
	return -1
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{h.Q * factor, h.R * factor}
}

// Distance returns the number of steps between two hexes.
func (h Hex) Distance(to Hex) int {
	d := h.Subtract(to)
	return max(abs(d.Q), abs(d.R), abs(d.S()))
}

// HexesInRange returns every hex within radius of center, ring by ring
// starting at the centre. The order is fixed so callers that shuffle the
// result with a seeded source stay reproducible.
func HexesInRange(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	result := []Hex{center}
	for k := 1; k <= radius; k++ {
		result = append(result, Ring(center, k)...)
	}
	return result
}

// Ring returns the hexes exactly radius steps away from center.
func Ring(center Hex, radius int) []Hex {
	if radius <= 0 {
		return []Hex{center}
	}
	results := make([]Hex, 0, EdgeCount*radius)
	h := center.Add(NeighborDirections[4].Scale(radius))
	for edge := 0; edge < EdgeCount; edge++ {
		for j := 0; j < radius; j++ {
			results = append(results, h)
			h = h.Neighbor(edge)
		}
	}
	return results
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// pkg/hexmap/pathfinding.go
package hexmap

import "github.com/zyedidia/generic/mapset"

// PathFinder turns the tile network into walkable waypoint lists.
type PathFinder struct {
	layout Layout
}

// NewPathFinder creates a path finder that emits points in layout's world space.
func NewPathFinder(layout Layout) *PathFinder {
	return &PathFinder{layout: layout}
}

// Layout returns the world layout used for waypoints.
func (pf *PathFinder) Layout() Layout {
	return pf.layout
}

// FindTilePath runs a breadth-first search from start and returns the chain
// of coordinates up to the first tile accepted by isTarget, start included.
// Only linked edges are followed. Edges are tried in order 0..5; which of
// several equally short paths is returned is not part of the contract.
// The result is nil when no target is reachable.
func (pf *PathFinder) FindTilePath(view TileView, start Hex, isTarget func(Tile) bool) []Hex {
	startTile, ok := view.Tile(start)
	if !ok {
		return nil
	}
	if isTarget(startTile) {
		return []Hex{start}
	}

	cameFrom := map[Hex]Hex{}
	visited := mapset.New[Hex]()
	visited.Put(start)
	queue := []Hex{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for edge := 0; edge < EdgeCount; edge++ {
			if !Linked(view, current, edge) {
				continue
			}
			next := current.Neighbor(edge)
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			cameFrom[next] = current
			nextTile, _ := view.Tile(next)
			if isTarget(nextTile) {
				return reconstructPath(cameFrom, start, next)
			}
			queue = append(queue, next)
		}
	}
	return nil // Нет пути
}

func reconstructPath(cameFrom map[Hex]Hex, start, end Hex) []Hex {
	path := []Hex{end}
	for h := end; h != start; {
		h = cameFrom[h]
		path = append(path, h)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FindPath returns world waypoints from start to the first tile accepted by
// isTarget: the start centre, then for each following tile the midpoint of
// the edge it is entered through and its centre. Movement along the result
// therefore threads through the connecting sides instead of cutting across
// tile interiors. The result is empty when no target is reachable.
func (pf *PathFinder) FindPath(view TileView, start Hex, isTarget func(Tile) bool) []Vec3 {
	return pf.Waypoints(pf.FindTilePath(view, start, isTarget))
}

// FindPathToCastle is FindPath with the castle as target.
func (pf *PathFinder) FindPathToCastle(view TileView, start Hex) []Vec3 {
	return pf.FindPath(view, start, Tile.IsCastle)
}

// FindPathTo is FindPath with a fixed target coordinate.
func (pf *PathFinder) FindPathTo(view TileView, start, target Hex) []Vec3 {
	return pf.FindPath(view, start, func(t Tile) bool { return t.Hex == target })
}

// Waypoints expands a chain of adjacent coordinates into world points.
func (pf *PathFinder) Waypoints(chain []Hex) []Vec3 {
	if len(chain) == 0 {
		return []Vec3{}
	}
	points := make([]Vec3, 0, 2*len(chain)-1)
	points = append(points, pf.layout.ToWorld(chain[0]))
	for i := 1; i < len(chain); i++ {
		prev, cur := chain[i-1], chain[i]
		points = append(points,
			pf.layout.EdgeMidpoint(cur, cur.EdgeTowards(prev)),
			pf.layout.ToWorld(cur),
		)
	}
	return points
}

// Reachable returns every coordinate connected to from through linked edges,
// from included. It is empty if there is no tile at from.
func Reachable(view TileView, from Hex) mapset.Set[Hex] {
	reachable := mapset.New[Hex]()
	if _, ok := view.Tile(from); !ok {
		return reachable
	}
	reachable.Put(from)
	queue := []Hex{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for edge := 0; edge < EdgeCount; edge++ {
			if !Linked(view, current, edge) {
				continue
			}
			next := current.Neighbor(edge)
			if !reachable.Has(next) {
				reachable.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return reachable
}

// ReachableFromCastle is Reachable rooted at the network's castle.
func ReachableFromCastle(n *Network) mapset.Set[Hex] {
	castle, ok := n.Castle()
	if !ok {
		return mapset.New[Hex]()
	}
	return Reachable(n, castle.Hex)
}

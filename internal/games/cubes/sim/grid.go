package sim

import "fmt"

// Grid is a W×H board of tile slots stored in row-major order.
// A slot is either nil or owns exactly one tile.
type Grid struct {
	w, h  int
	cells []*Tile
}

// NewGrid creates an empty grid.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("sim: invalid grid size %dx%d", w, h))
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]*Tile, w*h),
	}
}

// Dimensions returns the grid width and height.
func (g *Grid) Dimensions() (w, h int) {
	return g.w, g.h
}

// InBounds returns true if the coordinate is on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// index converts a coordinate to a flat index. Out-of-bounds access panics.
func (g *Grid) index(c Coord) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("sim: cell %v out of bounds for %dx%d grid", c, g.w, g.h))
	}
	return c.Y*g.w + c.X
}

// Get returns the tile at c, or nil if the cell is empty.
func (g *Grid) Get(c Coord) *Tile {
	return g.cells[g.index(c)]
}

// Set places t at c. A nil tile clears the cell.
func (g *Grid) Set(c Coord, t *Tile) {
	g.cells[g.index(c)] = t
}

// Occupied reports whether c holds a tile.
func (g *Grid) Occupied(c Coord) bool {
	return g.Get(c) != nil
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = nil
	}
}

// EmptyCells returns all empty coordinates, column by column.
func (g *Grid) EmptyCells() []Coord {
	var cells []Coord
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			if g.cells[y*g.w+x] == nil {
				cells = append(cells, C(x, y))
			}
		}
	}
	return cells
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, t := range g.cells {
		if t != nil {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied cell in row-major order.
func (g *Grid) Each(fn func(c Coord, t *Tile)) {
	for i, t := range g.cells {
		if t != nil {
			fn(C(i%g.w, i/g.w), t)
		}
	}
}

// Tiles returns the occupied cells' tiles in row-major order.
func (g *Grid) Tiles() []*Tile {
	var tiles []*Tile
	g.Each(func(_ Coord, t *Tile) {
		tiles = append(tiles, t)
	})
	return tiles
}

// Levels returns the level grid, -1 for empty cells. Indexed [y][x].
func (g *Grid) Levels() [][]int {
	out := make([][]int, g.h)
	for y := range out {
		out[y] = make([]int, g.w)
		for x := range out[y] {
			out[y][x] = -1
			if t := g.cells[y*g.w+x]; t != nil {
				out[y][x] = t.Level
			}
		}
	}
	return out
}

package sim

import "sort"

// Renderer owns the visual side of tiles. The simulation creates, moves,
// recolors and destroys visuals through it and reads positions back.
type Renderer interface {
	Create(level, cellX, cellY int) Handle
	Destroy(h Handle)
	Position(h Handle) Vec
	SetPosition(h Handle, pos Vec)
	SetLevel(h Handle, level int)
}

// InputSource reports directional presses for the current tick.
type InputSource interface {
	Pressed(dir Direction) bool
}

// RandomSource picks spawn slots. *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Visual is the renderer-side state of one tile.
type Visual struct {
	Handle Handle
	Level  int
	Pos    Vec
}

// TileTable is an in-memory Renderer. Visuals stay in the table after their
// grid tile is merged away until Destroy is called, so a host can keep
// drawing them while they are covered.
type TileTable struct {
	next    Handle
	visuals map[Handle]*Visual
}

// NewTileTable creates an empty tile table.
func NewTileTable() *TileTable {
	return &TileTable{
		visuals: make(map[Handle]*Visual),
	}
}

// Create allocates a visual. Its position is set by the caller.
func (t *TileTable) Create(level, _, _ int) Handle {
	t.next++
	t.visuals[t.next] = &Visual{Handle: t.next, Level: level}
	return t.next
}

// Destroy removes a visual. Unknown handles are ignored.
func (t *TileTable) Destroy(h Handle) {
	delete(t.visuals, h)
}

// Position returns the visual position of h.
func (t *TileTable) Position(h Handle) Vec {
	if v, ok := t.visuals[h]; ok {
		return v.Pos
	}
	return Vec{}
}

// SetPosition moves the visual h.
func (t *TileTable) SetPosition(h Handle, pos Vec) {
	if v, ok := t.visuals[h]; ok {
		v.Pos = pos
	}
}

// SetLevel updates the level the visual is drawn with.
func (t *TileTable) SetLevel(h Handle, level int) {
	if v, ok := t.visuals[h]; ok {
		v.Level = level
	}
}

// Len returns the number of live visuals.
func (t *TileTable) Len() int {
	return len(t.visuals)
}

// Visuals returns a copy of all live visuals ordered by handle, so tiles
// created later are drawn on top.
func (t *TileTable) Visuals() []Visual {
	out := make([]Visual, 0, len(t.visuals))
	for _, v := range t.visuals {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Handle < out[j].Handle
	})
	return out
}

// Ensure TileTable implements Renderer
var _ Renderer = (*TileTable)(nil)

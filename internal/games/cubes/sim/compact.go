package sim

// Compact slides every tile toward the dir-most edge. Lines are processed
// from the edge outward so each tile lands behind the ones ahead of it. A
// tile stops before a non-empty cell or a cell pending destruction; the
// latter stays a wall until the tile there has been destroyed by Settle.
// Returns true if any tile moved.
func (s *Sim) Compact(dir Direction) bool {
	moved := false
	for _, line := range lineCells(s.grid.w, s.grid.h, dir) {
		for i := 1; i < len(line); i++ {
			t := s.grid.Get(line[i])
			if t == nil {
				continue
			}
			dest := i
			for dest > 0 && s.free(line[dest-1]) {
				dest--
			}
			if dest == i {
				continue
			}
			s.grid.Set(line[dest], t)
			s.grid.Set(line[i], nil)
			moved = true
		}
	}
	return moved
}

// free reports whether a tile may slide into c.
func (s *Sim) free(c Coord) bool {
	return s.grid.Get(c) == nil && s.pending.Get(c) == nil
}

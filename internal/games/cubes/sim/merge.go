package sim

// lineCells returns the cells of every line parallel to dir, each ordered
// from the dir-most edge outward. Index 0 of a line is the edge cell.
func lineCells(w, h int, dir Direction) [][]Coord {
	var lines [][]Coord
	switch dir {
	case DirLeft, DirRight:
		for y := 0; y < h; y++ {
			line := make([]Coord, w)
			for i := range w {
				x := i
				if dir == DirRight {
					x = w - 1 - i
				}
				line[i] = C(x, y)
			}
			lines = append(lines, line)
		}
	case DirUp, DirDown:
		for x := 0; x < w; x++ {
			line := make([]Coord, h)
			for i := range h {
				y := i
				if dir == DirDown {
					y = h - 1 - i
				}
				line[i] = C(x, y)
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// mergeTarget walks from the source at index i of line toward the edge and
// returns the index of the cell it merges into, or -1.
//
// Every same-level tile on the way becomes the target and the walk goes on;
// a tile of another level stops it. A cell that is already pending destruction
// consumed a merge this move and ends the walk without being a target.
func (s *Sim) mergeTarget(line []Coord, i int) int {
	level := s.grid.Get(line[i]).Level
	target := -1
	for j := i - 1; j >= 0; j-- {
		c := line[j]
		if s.pending.Get(c) != nil {
			break
		}
		t := s.grid.Get(c)
		if t == nil {
			continue
		}
		if t.Level != level {
			break
		}
		target = j
	}
	return target
}

// ResolveMerges marks the merges for a move in dir. Cells are scanned from
// the dir-most edge outward and each source cell merges at most once. Tiles
// are not slid past the merge point; Compact does that.
// Returns the number of merges.
func (s *Sim) ResolveMerges(dir Direction) int {
	merges := 0
	for _, line := range lineCells(s.grid.w, s.grid.h, dir) {
		for i := 1; i < len(line); i++ {
			src := s.grid.Get(line[i])
			if src == nil {
				continue
			}
			j := s.mergeTarget(line, i)
			if j < 0 {
				continue
			}
			s.merge(line[i], line[j])
			merges++
		}
	}
	s.stats.Merges += merges
	return merges
}

// merge consumes the tile at dst and moves the tile at src into its place.
func (s *Sim) merge(src, dst Coord) {
	consumed := s.grid.Get(dst)
	if stale := s.pending.Get(dst); stale != nil {
		s.renderer.Destroy(stale.Handle)
		s.stats.Destroyed++
	}
	s.pending.Set(dst, consumed)

	t := s.grid.Get(src)
	s.grid.Set(dst, t)
	s.grid.Set(src, nil)

	if t.Level < s.cfg.MaxLevel {
		t.Level++
		s.renderer.SetLevel(t.Handle, t.Level)
	}
}

package sim

// CellPosition returns the world position of a cell: its index times the
// tile spacing.
func (s *Sim) CellPosition(c Coord) Vec {
	return Vec{
		X: float64(c.X) * s.cfg.Spacing,
		Y: float64(c.Y) * s.cfg.Spacing,
	}
}

// Settle advances every tile's visual one step toward its cell and reports
// whether any tile is still in transit afterwards.
//
// Each axis moves by the full step independently, so diagonal travel is
// faster than straight travel. There is no overshoot guard: arrival is exact
// equality, which is why Step must evenly divide Spacing.
func (s *Sim) Settle() bool {
	inTransit := false
	s.grid.Each(func(c Coord, t *Tile) {
		target := s.CellPosition(c)
		pos := s.renderer.Position(t.Handle)
		if pos == target {
			return
		}

		pos.X = approach(pos.X, target.X, s.cfg.Step)
		pos.Y = approach(pos.Y, target.Y, s.cfg.Step)
		s.renderer.SetPosition(t.Handle, pos)

		s.destroyReached(pos)

		if pos != target {
			inTransit = true
		}
	})
	return inTransit
}

// destroyReached destroys every pending tile whose cell sits at pos.
func (s *Sim) destroyReached(pos Vec) {
	s.pending.Each(func(c Coord, t *Tile) {
		if s.CellPosition(c) != pos {
			return
		}
		s.renderer.Destroy(t.Handle)
		s.pending.Set(c, nil)
		s.stats.Destroyed++
	})
}

// approach moves cur one step toward target.
func approach(cur, target, step float64) float64 {
	switch {
	case cur < target:
		return cur + step
	case cur > target:
		return cur - step
	default:
		return cur
	}
}

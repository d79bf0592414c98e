package device

// Pos is an integer grid coordinate. The robot's Y axis grows upward; the
// arcade screen's grows downward. Each renderer handles its own
// orientation.
type Pos struct {
	X int64
	Y int64
}

// extents returns the inclusive bounds of a set of positions.
func extents[T any](points map[Pos]T) (lo Pos, hi Pos, ok bool) {
	for pos := range points {
		if !ok {
			lo, hi, ok = pos, pos, true
			continue
		}
		lo.X = min(lo.X, pos.X)
		lo.Y = min(lo.Y, pos.Y)
		hi.X = max(hi.X, pos.X)
		hi.Y = max(hi.Y, pos.Y)
	}

	return
}

// sign returns -1, 0, or 1.
func sign(v int64) int64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}

	return 0
}

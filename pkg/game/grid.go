package game

// Grid is the square coordinate space of the board
type Grid struct {
	Size int
}

// Contains reports whether p lies inside [0,Size)²
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.Size * g.Size
}

func occupies(body []Point, p Point) bool {
	for _, s := range body {
		if s == p {
			return true
		}
	}
	return false
}

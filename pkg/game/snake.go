package game

// Outcome is the result of one snake step
type Outcome int

const (
	Moved Outcome = iota
	Ate
	HitWall
	HitSelf
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case HitWall:
		return "hit_wall"
	case HitSelf:
		return "hit_self"
	}
	return "unknown"
}

// Dead reports whether the step ended the game
func (o Outcome) Dead() bool {
	return o == HitWall || o == HitSelf
}

// StepResult describes what a step did
type StepResult struct {
	Outcome Outcome
	Head    Point // Target cell of the move, even when it was refused
}

// Snake is the player body plus its steering state
type Snake struct {
	Body      []Point
	committed Direction // Direction of the last performed move
	pending   Direction // Latest accepted intent, applied on the next step
}

// InitialSnake returns the three-segment snake in the middle of grid, heading up.
// On small grids the snake is shifted up so the tail stays on the board.
func InitialSnake(grid Grid) *Snake {
	c := grid.Size / 2
	y := c
	if y+2 >= grid.Size {
		y = grid.Size - 3
	}
	return NewSnake([]Point{{X: c, Y: y}, {X: c, Y: y + 1}, {X: c, Y: y + 2}}, Up)
}

// NewSnake creates a snake from body (head first) that last moved in dir
func NewSnake(body []Point, dir Direction) *Snake {
	b := make([]Point, len(body))
	copy(b, body)
	return &Snake{Body: b, committed: dir, pending: dir}
}

// Head returns the first segment
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Direction returns the direction used by the last move
func (s *Snake) Direction() Direction {
	return s.committed
}

// Pending returns the direction the next step will use
func (s *Snake) Pending() Direction {
	return s.pending
}

// Steer records an intent for the next step. Reversals of the last
// performed move are rejected.
func (s *Snake) Steer(d Direction) bool {
	if d == s.committed.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Step advances the snake by one cell towards the pending direction.
// The body is left untouched when the move hits a wall or the snake itself.
func (s *Snake) Step(grid Grid, food Point) StepResult {
	s.committed = s.pending
	newHead := s.Head().Add(s.committed.Delta())

	if !grid.Contains(newHead) {
		return StepResult{Outcome: HitWall, Head: newHead}
	}
	// The tail still counts as occupied here even though a plain move would free it
	if occupies(s.Body, newHead) {
		return StepResult{Outcome: HitSelf, Head: newHead}
	}

	s.Body = append([]Point{newHead}, s.Body...)
	if newHead == food {
		return StepResult{Outcome: Ate, Head: newHead}
	}
	s.Body = s.Body[:len(s.Body)-1]
	return StepResult{Outcome: Moved, Head: newHead}
}

// Segments returns a copy of the body
func (s *Snake) Segments() []Point {
	b := make([]Point, len(s.Body))
	copy(b, s.Body)
	return b
}

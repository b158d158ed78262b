package sim

// Snake is the player's body on the grid.
type Snake struct {
	body    []Cell // Tail at index 0, head at the end
	heading Heading
	pending Heading // Buffered heading, committed on the next move
	owed    int     // Growth still to be paid out on upcoming moves
}

// NewSnake creates a straight snake of the given length whose head is at
// head and which is moving in heading.
func NewSnake(head Cell, heading Heading, length int) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]Cell, length)
	back := heading.Opposite()
	c := head
	for i := length - 1; i >= 0; i-- {
		body[i] = c
		c = c.Add(back)
	}
	return &Snake{
		body:    body,
		heading: heading,
		pending: heading,
	}
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[len(s.body)-1]
}

// Tail returns the last cell of the body.
func (s *Snake) Tail() Cell {
	return s.body[0]
}

// Body returns a copy of the occupied cells, tail first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the snake's length including growth that has been earned but
// not yet laid out on the grid. It changes only when food is consumed.
func (s *Snake) Len() int {
	return len(s.body) + s.owed
}

// Heading returns the direction of the last committed move.
func (s *Snake) Heading() Heading {
	return s.heading
}

// Pending returns the buffered heading for the next move.
func (s *Snake) Pending() Heading {
	return s.pending
}

// Turn buffers a new heading. A heading that reverses the current one is
// rejected, as is anything that is not a unit heading.
func (s *Snake) Turn(h Heading) bool {
	if !h.Valid() || h == s.heading.Opposite() {
		return false
	}
	s.pending = h
	return true
}

// Occupies reports whether c is part of the body.
func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

// collides reports whether moving the head onto c runs into the body.
// The tail is skipped when it is about to vacate its cell.
func (s *Snake) collides(c Cell) bool {
	start := 0
	if s.owed == 0 {
		start = 1
	}
	for _, b := range s.body[start:] {
		if b == c {
			return true
		}
	}
	return false
}

func (s *Snake) commit() {
	s.heading = s.pending
}

func (s *Snake) push(c Cell) {
	s.body = append(s.body, c)
}

// release moves the tail forward after a move without food, unless growth
// is still owed, in which case the tail stays put and the debt shrinks.
func (s *Snake) release() {
	if s.owed > 0 {
		s.owed--
		return
	}
	s.body = s.body[1:]
}

func (s *Snake) grow(n int) {
	if n > 0 {
		s.owed += n
	}
}

// cut removes up to n cells from the tail end, never going below floor.
// Owed growth is cancelled before any visible cell is removed.
func (s *Snake) cut(n, floor int) int {
	n = max(0, min(n, s.Len()-floor))
	removed := n
	fromOwed := min(n, s.owed)
	s.owed -= fromOwed
	n -= fromOwed
	if n > 0 {
		s.body = append([]Cell(nil), s.body[n:]...)
	}
	return removed
}

// relocateHead moves the head to c without touching the rest of the body.
func (s *Snake) relocateHead(c Cell) {
	s.body[len(s.body)-1] = c
}

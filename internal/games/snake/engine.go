package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snake/internal/core"
)

// DefaultLength is the target length a new engine starts with.
const DefaultLength = 7

// foodSamples is how many uniform draws are tried before falling back to
// enumerating the free cells.
const foodSamples = 64

// NoFood is reported by Engine.Food when the board has no free cell left.
// A wrapped head can never be equal to it.
var NoFood = core.Coord{X: -1, Y: -1}

// Engine holds the state of one snake game: the board, the body, the food
// and the loss flag. It is not safe for concurrent use.
//
// The board spans the inclusive range [0, size.X] x [0, size.Y].
type Engine struct {
	rng *rand.Rand

	size        core.Coord
	startLength int
	length      int // target length

	body     []core.Coord // oldest first, head last
	occupied map[core.Coord]struct{}

	direction core.Direction
	food      core.Coord
	lost      bool
}

// New creates an engine on a (width+1) x (height+1) board with a single
// segment placed at random. Width and height must not be negative. The
// initial length is not validated: values below 1 keep a single segment
// until enough food has been eaten to raise the target above one.
// A nil rng is replaced with a time-seeded source.
func New(width, height, length int, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		rng:         rng,
		size:        core.Coord{X: width, Y: height},
		startLength: length,
		length:      length,
		occupied:    make(map[core.Coord]struct{}),
		direction:   core.DirRight,
	}

	e.push(e.randomCell())
	e.food = e.placeFood(nil)
	return e
}

// SetDirection changes the heading used by the next Move.
// Reversing into the neck is allowed and loses on the next move.
func (e *Engine) SetDirection(d core.Direction) {
	e.direction = d
}

// Direction returns the current heading.
func (e *Engine) Direction() core.Direction {
	return e.direction
}

// Move advances the snake by one cell.
//
// The collision check runs against the body as it is before the move,
// so stepping onto the tail cell that would be vacated is still a loss.
// A collision sets the loss flag and leaves everything else untouched.
func (e *Engine) Move() {
	if e.lost {
		return
	}

	next := e.wrap(e.Head().Add(e.direction.Delta()))
	if e.Occupied(next) {
		e.lost = true
		return
	}

	if next == e.food {
		e.length++
		e.food = e.placeFood(&next)
	}

	e.push(next)
	if len(e.body) > e.length {
		e.popTail()
	}
}

// Quit marks the game as lost. Used when the player gives up.
func (e *Engine) Quit() {
	e.lost = true
}

// wrap teleports a position that left the board to the opposite edge.
func (e *Engine) wrap(p core.Coord) core.Coord {
	switch {
	case p.X < 0:
		p.X = e.size.X
	case p.X > e.size.X:
		p.X = 0
	}
	switch {
	case p.Y < 0:
		p.Y = e.size.Y
	case p.Y > e.size.Y:
		p.Y = 0
	}
	return p
}

// placeFood picks a uniformly random free cell. A non-nil reserved cell is
// treated as occupied too (the head about to be appended).
func (e *Engine) placeFood(reserved *core.Coord) core.Coord {
	free := func(p core.Coord) bool {
		if reserved != nil && p == *reserved {
			return false
		}
		return !e.Occupied(p)
	}

	for range foodSamples {
		if p := e.randomCell(); free(p) {
			return p
		}
	}

	// Crowded board: pick among the remaining cells directly.
	var cells []core.Coord
	for x := 0; x <= e.size.X; x++ {
		for y := 0; y <= e.size.Y; y++ {
			if p := (core.Coord{X: x, Y: y}); free(p) {
				cells = append(cells, p)
			}
		}
	}
	if len(cells) == 0 {
		return NoFood
	}
	return cells[e.rng.Intn(len(cells))]
}

func (e *Engine) randomCell() core.Coord {
	return core.Coord{
		X: e.rng.Intn(e.size.X + 1),
		Y: e.rng.Intn(e.size.Y + 1),
	}
}

func (e *Engine) push(p core.Coord) {
	e.body = append(e.body, p)
	e.occupied[p] = struct{}{}
}

func (e *Engine) popTail() {
	delete(e.occupied, e.body[0])
	e.body = e.body[1:]
}

// Occupied reports whether a body segment covers the cell.
func (e *Engine) Occupied(p core.Coord) bool {
	_, ok := e.occupied[p]
	return ok
}

// Head returns the newest body segment.
func (e *Engine) Head() core.Coord {
	if len(e.body) == 0 {
		return core.Coord{}
	}
	return e.body[len(e.body)-1]
}

// Body returns a copy of the body, oldest segment first.
func (e *Engine) Body() []core.Coord {
	out := make([]core.Coord, len(e.body))
	copy(out, e.body)
	return out
}

// Len returns the current number of body segments.
func (e *Engine) Len() int {
	return len(e.body)
}

// Target returns the length the snake is growing towards.
func (e *Engine) Target() int {
	return e.length
}

// Score is the number of foods eaten.
func (e *Engine) Score() int {
	return e.length - e.startLength
}

// Food returns the food position, or NoFood on a full board.
func (e *Engine) Food() core.Coord {
	return e.food
}

// Lost reports whether the game is over.
func (e *Engine) Lost() bool {
	return e.lost
}

// Size returns the largest valid coordinate on each axis.
func (e *Engine) Size() core.Coord {
	return e.size
}

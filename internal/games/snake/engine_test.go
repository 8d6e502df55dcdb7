package snake

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/snake/internal/core"
)

// newTestEngine builds an engine with a hand-placed body and food.
func newTestEngine(width, height, length int, body []core.Coord, food core.Coord) *Engine {
	e := New(width, height, length, rand.New(rand.NewSource(1)))
	e.body = nil
	e.occupied = make(map[core.Coord]struct{})
	for _, p := range body {
		e.push(p)
	}
	e.food = food
	return e
}

func inBounds(e *Engine, p core.Coord) bool {
	size := e.Size()
	return p.X >= 0 && p.X <= size.X && p.Y >= 0 && p.Y <= size.Y
}

func TestNewEngine(t *testing.T) {
	e := New(10, 20, DefaultLength, rand.New(rand.NewSource(42)))

	if e.Lost() {
		t.Error("new engine should not be lost")
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", e.Score())
	}
	if e.Direction() != core.DirRight {
		t.Errorf("Direction() = %v, expected right", e.Direction())
	}
	if e.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", e.Len())
	}
	if !inBounds(e, e.Head()) {
		t.Errorf("initial segment %v out of bounds", e.Head())
	}
	if e.Food() == e.Head() {
		t.Error("food generated on the snake")
	}
	if !inBounds(e, e.Food()) {
		t.Errorf("food %v out of bounds", e.Food())
	}
	if e.Target() != DefaultLength {
		t.Errorf("Target() = %d, expected %d", e.Target(), DefaultLength)
	}
}

func TestNewEngineNilRand(t *testing.T) {
	e := New(3, 3, 2, nil)
	if e.Len() != 1 || e.Lost() {
		t.Errorf("engine with nil rng not initialized: len=%d lost=%v", e.Len(), e.Lost())
	}
}

func TestDeterminism(t *testing.T) {
	// Two engines with the same seed and inputs evolve identically
	e1 := New(15, 30, 4, rand.New(rand.NewSource(12345)))
	e2 := New(15, 30, 4, rand.New(rand.NewSource(12345)))

	dirs := []core.Direction{core.DirRight, core.DirDown, core.DirLeft, core.DirDown}
	for i := 0; i < 200 && !e1.Lost(); i++ {
		if i%13 == 0 {
			d := dirs[(i/13)%len(dirs)]
			e1.SetDirection(d)
			e2.SetDirection(d)
		}
		e1.Move()
		e2.Move()
	}

	if !slices.Equal(e1.Body(), e2.Body()) {
		t.Error("bodies diverged for identical seeds")
	}
	if e1.Food() != e2.Food() || e1.Score() != e2.Score() || e1.Lost() != e2.Lost() {
		t.Error("state diverged for identical seeds")
	}
}

func TestEatScenario(t *testing.T) {
	e := newTestEngine(4, 4, 1, []core.Coord{{X: 2, Y: 2}}, core.C(2, 3))
	e.SetDirection(core.DirRight)

	e.Move()

	expected := []core.Coord{{X: 2, Y: 2}, {X: 2, Y: 3}}
	if !slices.Equal(e.Body(), expected) {
		t.Errorf("Body() = %v, expected %v", e.Body(), expected)
	}
	if e.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", e.Score())
	}
	if e.Lost() {
		t.Error("eating should not lose")
	}
	if f := e.Food(); f == core.C(2, 2) || f == core.C(2, 3) {
		t.Errorf("food relocated onto the snake at %v", f)
	}
	if !inBounds(e, e.Food()) {
		t.Errorf("food %v out of bounds", e.Food())
	}
}

func TestSingleCellBoard(t *testing.T) {
	for _, dir := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		t.Run(dir.String(), func(t *testing.T) {
			e := New(0, 0, DefaultLength, rand.New(rand.NewSource(7)))
			if e.Head() != core.C(0, 0) {
				t.Fatalf("Head() = %v, expected (0,0)", e.Head())
			}
			if e.Food() != NoFood {
				t.Errorf("Food() = %v, expected NoFood on a full board", e.Food())
			}

			e.SetDirection(dir)
			e.Move()

			if !e.Lost() {
				t.Error("wrapping onto the only cell should lose")
			}
		})
	}
}

func TestTailCellCollision(t *testing.T) {
	// Moving right from (0,2) on a board with height 2 wraps to (0,0),
	// the tail cell that a non-growing move would vacate.
	body := []core.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	e := newTestEngine(4, 2, 3, body, core.C(3, 1))
	e.SetDirection(core.DirRight)

	e.Move()

	if !e.Lost() {
		t.Error("moving onto the outgoing tail cell should lose")
	}
	if !slices.Equal(e.Body(), body) {
		t.Errorf("body changed on collision: %v", e.Body())
	}
}

func TestCollisionLeavesStateUnchanged(t *testing.T) {
	// Head at (1,1) turning up into (0,1), which also holds the food.
	body := []core.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	e := newTestEngine(5, 5, 6, body, core.C(0, 1))
	e.SetDirection(core.DirUp)

	e.Move()

	if !e.Lost() {
		t.Fatal("expected collision")
	}
	if !slices.Equal(e.Body(), body) {
		t.Errorf("Body() = %v, expected %v", e.Body(), body)
	}
	if e.Food() != core.C(0, 1) {
		t.Errorf("food should not be consumed on collision, got %v", e.Food())
	}
	if e.Score() != 0 || e.Target() != 6 {
		t.Errorf("score/target changed on collision: %d/%d", e.Score(), e.Target())
	}
}

func TestReversalIntoNeckLoses(t *testing.T) {
	body := []core.Coord{{X: 3, Y: 3}, {X: 3, Y: 4}}
	e := newTestEngine(9, 9, 5, body, core.C(0, 0))
	e.SetDirection(core.DirLeft)

	e.Move()

	if !e.Lost() {
		t.Error("reversing into the neck should lose")
	}
}

func TestMoveAfterLostIsNoop(t *testing.T) {
	e := newTestEngine(9, 9, 5, []core.Coord{{X: 3, Y: 3}}, core.C(0, 0))
	e.Quit()
	e.Move()

	if !e.Lost() {
		t.Error("Quit should mark the engine lost")
	}
	if e.Head() != core.C(3, 3) || e.Len() != 1 {
		t.Errorf("lost engine should not move, head=%v len=%d", e.Head(), e.Len())
	}
}

func TestWrapEdges(t *testing.T) {
	tests := []struct {
		name     string
		start    core.Coord
		dir      core.Direction
		expected core.Coord
	}{
		{"top edge up", core.C(0, 3), core.DirUp, core.C(6, 3)},
		{"bottom edge down", core.C(6, 3), core.DirDown, core.C(0, 3)},
		{"left edge left", core.C(2, 0), core.DirLeft, core.C(2, 9)},
		{"right edge right", core.C(2, 9), core.DirRight, core.C(2, 0)},
		{"interior", core.C(3, 3), core.DirDown, core.C(4, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(6, 9, 3, []core.Coord{tc.start}, NoFood)
			e.SetDirection(tc.dir)
			e.Move()

			if e.Lost() {
				t.Fatal("unexpected loss")
			}
			if e.Head() != tc.expected {
				t.Errorf("Head() = %v, expected %v", e.Head(), tc.expected)
			}
		})
	}
}

func TestGrowthReachesTarget(t *testing.T) {
	e := newTestEngine(20, 20, 5, []core.Coord{{X: 0, Y: 0}}, core.C(10, 10))
	e.SetDirection(core.DirRight)

	for i := 1; i <= 4; i++ {
		e.Move()
		if e.Len() != i+1 {
			t.Fatalf("after %d moves Len() = %d, expected %d", i, e.Len(), i+1)
		}
	}

	// Further moves translate the snake without growing
	for range 10 {
		e.Move()
		if e.Len() != 5 {
			t.Fatalf("Len() = %d, expected to stay at 5", e.Len())
		}
	}
	if e.Body()[0] != core.C(0, 10) {
		t.Errorf("tail = %v, expected (0,10)", e.Body()[0])
	}
}

func TestBodyIsDefensiveCopy(t *testing.T) {
	e := newTestEngine(5, 5, 3, []core.Coord{{X: 1, Y: 1}, {X: 1, Y: 2}}, core.C(4, 4))

	body := e.Body()
	body[0] = core.C(9, 9)

	if e.Body()[0] != core.C(1, 1) || e.Len() != 2 {
		t.Errorf("engine state changed through Body(): %v", e.Body())
	}
}

func TestFoodOnCrowdedBoard(t *testing.T) {
	// 2x2 board, three cells taken by the snake: food must land on the last one.
	body := []core.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	e := newTestEngine(1, 1, 3, body, NoFood)

	for i := range 20 {
		if f := e.placeFood(nil); f != core.C(1, 0) {
			t.Fatalf("attempt %d: food = %v, expected (1,0)", i, f)
		}
	}

	reserved := core.C(1, 0)
	if f := e.placeFood(&reserved); f != NoFood {
		t.Errorf("food = %v, expected NoFood when every cell is taken", f)
	}
}

func TestRandomWalkInvariants(t *testing.T) {
	dirs := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		e := New(rng.Intn(12), rng.Intn(12), 1+rng.Intn(6), rand.New(rand.NewSource(seed)))
		eaten := 0

		for step := 0; step < 500 && !e.Lost(); step++ {
			if rng.Intn(4) == 0 {
				e.SetDirection(dirs[rng.Intn(len(dirs))])
			}

			prevScore := e.Score()
			prevBody := e.Body()
			prevFood := e.Food()
			next := e.wrap(e.Head().Add(e.Direction().Delta()))

			e.Move()

			if e.Lost() {
				if !slices.Contains(prevBody, next) {
					t.Fatalf("seed %d: lost without colliding", seed)
				}
				if !slices.Equal(e.Body(), prevBody) || e.Food() != prevFood || e.Score() != prevScore {
					t.Fatalf("seed %d: collision mutated state", seed)
				}
				break
			}

			if e.Score() < prevScore {
				t.Fatalf("seed %d: score decreased", seed)
			}
			if e.Score() > prevScore {
				eaten++
			}
			if e.Score() != eaten {
				t.Fatalf("seed %d: score %d, eaten %d", seed, e.Score(), eaten)
			}
			if !inBounds(e, e.Head()) {
				t.Fatalf("seed %d: head %v out of bounds", seed, e.Head())
			}
			if e.Len() > e.Target() {
				t.Fatalf("seed %d: len %d exceeds target %d", seed, e.Len(), e.Target())
			}
			if slices.Contains(e.Body(), e.Food()) {
				t.Fatalf("seed %d: food %v on body", seed, e.Food())
			}
			for _, p := range e.Body() {
				if !e.Occupied(p) {
					t.Fatalf("seed %d: occupancy set missing %v", seed, p)
				}
			}
		}
	}
}

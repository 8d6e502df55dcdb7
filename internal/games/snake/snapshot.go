package snake

import "github.com/vovakirdan/snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateAlive GameStateType = "alive"
	StateLost  GameStateType = "lost"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	SnakeLen  int
	Target    int
	Head      core.Coord
	Dir       core.Direction
	Food      core.Coord
	Board     core.Coord
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		HighScore: g.hiscore,
		State:     StateAlive,
	}
	if g.engine == nil {
		return snap
	}

	snap.Score = g.engine.Score()
	snap.SnakeLen = g.engine.Len()
	snap.Target = g.engine.Target()
	snap.Head = g.engine.Head()
	snap.Dir = g.engine.Direction()
	snap.Food = g.engine.Food()
	snap.Board = g.engine.Size()
	if g.engine.Lost() {
		snap.State = StateLost
	}
	return snap
}

package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/core"
)

// Messages shown once the game is lost.
const (
	LostMessage    = "You lost!"
	ConfirmMessage = "Press enter to exit..."
)

// Game drives one Engine per session: it turns input frames into engine
// calls, tracks the high score, paces ticks and renders into a core.Screen.
type Game struct {
	cfg     config.Config
	engine  *Engine
	tick    uint64
	hiscore int

	screenW int
	screenH int
}

// NewGame creates a session that starts from a previously stored high score.
// Reset must be called before the first Step.
func NewGame(cfg config.Config, hiscore int) *Game {
	return &Game{
		cfg:     cfg,
		hiscore: hiscore,
	}
}

// BoardSize derives the engine board from the terminal size.
// The result is the largest coordinate per axis, never negative.
func BoardSize(screenW, screenH int, b config.BoardConfig) (width, height int) {
	lines := max(b.LinesRatio, 1)
	cols := max(b.ColsRatio, 1)
	width = max(screenH/lines-1, 0)
	height = max(screenW/cols-1, 0)
	return width, height
}

// Reset starts a new engine sized to the screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0

	width, height := BoardSize(rc.ScreenW, rc.ScreenH, g.cfg.Board)
	g.engine = New(width, height, g.cfg.Board.InitialLength, rand.New(rand.NewSource(rc.Seed)))
}

// Step applies one tick of input and advances the engine.
// A direction action turns the snake, Quit ends the game; a lost game
// no longer moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			dir, _ := a.Direction()
			g.engine.SetDirection(dir)
			break
		}
	}
	if in.Has(core.ActionQuit) {
		g.engine.Quit()
	}

	before := g.engine.Score()
	if !g.engine.Lost() {
		g.tick++
		g.engine.Move()
	}

	if score := g.engine.Score(); score > g.hiscore {
		g.hiscore = score
	}

	return core.StepResult{
		State: g.State(),
		Ate:   g.engine.Score() > before,
	}
}

// TickDelay returns how long to wait before the next tick.
func (g *Game) TickDelay() time.Duration {
	return g.cfg.Pacing.Delay(g.Score())
}

// Score returns the current score, 0 before the first Reset.
func (g *Game) Score() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.Score()
}

// HighScore returns the best of the stored and the current score.
func (g *Game) HighScore() int {
	return g.hiscore
}

// Ticks returns the number of moves played.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Engine exposes the underlying engine for queries.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	lost := false
	if g.engine != nil {
		lost = g.engine.Lost()
	}
	return core.GameState{
		Score:     g.Score(),
		HighScore: g.hiscore,
		Lost:      lost,
	}
}

// Render draws the HUD, the snake and the food. A lost game keeps the last
// board visible under the loss messages.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	text := g.cfg.Style.Color(g.cfg.Style.Text)
	g.drawText(dst, 0, 0, fmt.Sprintf("score: %d", g.Score()), text)
	g.drawText(dst, 0, 1, fmt.Sprintf("hi-score: %d", g.hiscore), text)

	if g.engine == nil {
		return
	}

	snakeColor := g.cfg.Style.Color(g.cfg.Style.Snake)
	for _, seg := range g.engine.Body() {
		g.drawCell(dst, seg, snakeColor)
	}
	if food := g.engine.Food(); food != NoFood {
		g.drawCell(dst, food, g.cfg.Style.Color(g.cfg.Style.Food))
	}

	if g.engine.Lost() {
		g.drawText(dst, 0, 2, LostMessage, text)
		g.drawText(dst, 0, dst.Height()-1, ConfirmMessage, text)
	}
}

// drawCell paints one board cell. Board X is the terminal row and Y the column.
func (g *Game) drawCell(dst *core.Screen, p core.Coord, color core.Color) {
	lines := max(g.cfg.Board.LinesRatio, 1)
	cols := max(g.cfg.Board.ColsRatio, 1)

	glyph := []rune(g.cfg.Style.Cell)
	if len(glyph) == 0 {
		glyph = []rune{'█'}
	}

	for dy := range lines {
		for dx := range cols {
			dst.SetColored(p.Y*cols+dx, p.X*lines+dy, glyph[dx%len(glyph)], color)
		}
	}
}

func (g *Game) drawText(dst *core.Screen, x, y int, s string, color core.Color) {
	i := 0
	for _, r := range s {
		dst.SetColored(x+i, y, r, color)
		i++
	}
}

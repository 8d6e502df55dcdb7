package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/storage"
)

// HighScoreStore persists the best score across runs.
type HighScoreStore interface {
	Load() int
	Record(score int) (int, error)
}

// HistoryStore records finished games.
type HistoryStore interface {
	SaveGame(rec storage.GameRecord) (int64, error)
}

// Recorder saves the outcome of one game exactly once. Save may be called
// from a signal handler while the Bubble Tea loop is still running.
type Recorder struct {
	hiscore HighScoreStore
	history HistoryStore
	player  string
	logger  *log.Logger

	mu    sync.Mutex
	last  snake.Snapshot
	saved bool
}

// NewRecorder creates a recorder. Either store may be nil.
func NewRecorder(hiscore HighScoreStore, history HistoryStore, player string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		hiscore: hiscore,
		history: history,
		player:  player,
		logger:  logger,
	}
}

// HighScore returns the stored best score, 0 without a store.
func (r *Recorder) HighScore() int {
	if r.hiscore == nil {
		return 0
	}
	return r.hiscore.Load()
}

// Update remembers the latest state of the game.
func (r *Recorder) Update(s snake.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = s
}

// Last returns the most recent snapshot passed to Update.
func (r *Recorder) Last() snake.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Saved reports whether Save has already run.
func (r *Recorder) Saved() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved
}

// Save writes the high score and, for a game that scored, a history
// record. Failures are logged, never returned: losing a score must not
// keep the player from leaving.
func (r *Recorder) Save() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saved {
		return
	}
	r.saved = true
	s := r.last

	if r.hiscore != nil {
		best, err := r.hiscore.Record(s.HighScore)
		if err != nil {
			r.logger.Warn("could not save high score", "error", err)
		} else {
			r.logger.Debug("high score saved", "best", best)
		}
	}

	if r.history != nil && s.Score > 0 {
		id, err := r.history.SaveGame(storage.GameRecord{
			Score:  s.Score,
			Length: s.SnakeLen,
			Ticks:  int(s.Tick),
			Player: r.player,
		})
		if err != nil {
			r.logger.Warn("could not record game", "error", err)
		} else {
			r.logger.Info("game recorded", "id", id, "score", s.Score, "player", r.player)
		}
	}
}

package scores

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// saveTimeout bounds a single leaderboard write so a locked database
// cannot stall the UI.
const saveTimeout = 2 * time.Second

// Board is the game's view of the leaderboard. Failures are logged and
// swallowed: a broken database never interrupts play. A Board without a
// store does nothing.
type Board struct {
	store  *Store
	logger *log.Logger
	now    func() time.Time
}

// NewBoard wraps store. A nil logger uses the default logger.
func NewBoard(store *Store, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	return &Board{
		store:  store,
		logger: logger.WithPrefix("scores"),
		now:    time.Now,
	}
}

// RecordScore stores a finished run's score.
func (b *Board) RecordScore(score int) {
	if b == nil || b.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	runID := uuid.NewString()
	if _, err := b.store.SaveScore(ctx, runID, score, b.now()); err != nil {
		b.logger.Warn("failed to save score", "run", runID, "score", score, "err", err)
		return
	}
	b.logger.Debug("score saved", "run", runID, "score", score)
}

// TopScores returns up to n entries, highest first. Errors yield an empty list.
func (b *Board) TopScores(n int) []Entry {
	if b == nil || b.store == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	entries, err := b.store.TopScores(ctx, n)
	if err != nil {
		b.logger.Warn("failed to load scores", "err", err)
		return nil
	}
	return entries
}

// HighScore returns the best score on record, or 0.
func (b *Board) HighScore() int {
	if b == nil || b.store == nil {
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	best, err := b.store.HighScore(ctx)
	if err != nil {
		b.logger.Warn("failed to load high score", "err", err)
		return 0
	}
	return best
}

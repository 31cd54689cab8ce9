package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// RunSaver persists finished runs.
type RunSaver interface {
	SaveRun(r storage.Run) (string, error)
}

// RunTracker is implemented by games that report finished runs.
type RunTracker interface {
	DrainRuns() []tetris.RunSummary
	FinishRun(reason string) tetris.RunSummary
}

// Journal records finished runs for one player session.
// Writes are best-effort: failures are logged and play continues.
type Journal struct {
	saver  RunSaver
	logger *log.Logger
	player string
	wipes  int
}

// NewJournal creates a journal backed by store. A nil store keeps the
// journal working but nothing is persisted.
func NewJournal(store *storage.Store, logger *log.Logger, player string) *Journal {
	j := &Journal{logger: logger, player: player}
	if store != nil {
		j.saver = store
	}
	if j.logger == nil {
		j.logger = log.New(io.Discard)
	}
	return j
}

// Record stores a finished run. Runs in which no piece landed are skipped.
func (j *Journal) Record(gameID string, s tetris.RunSummary) {
	if s.Reason == tetris.ReasonBoardFull {
		j.wipes++
	}
	if s.Pieces == 0 {
		return
	}
	if j.saver == nil {
		j.logger.Debug("run not recorded, no database", "game", gameID, "score", s.Score)
		return
	}

	id, err := j.saver.SaveRun(storage.Run{
		GameID:    gameID,
		Player:    j.player,
		Score:     s.Score,
		Lines:     s.Lines,
		Pieces:    s.Pieces,
		Wipes:     j.wipes,
		EndReason: s.Reason,
		Duration:  s.Duration(),
		CreatedAt: s.EndedAt,
	})
	if err != nil {
		j.logger.Warn("could not record run", "game", gameID, "player", j.player, "error", err)
		return
	}

	j.logger.Info("run recorded",
		"game", gameID,
		"run", id,
		"player", j.player,
		"score", s.Score,
		"lines", s.Lines,
		"reason", s.Reason,
	)
}

// Drain records every run the game finished since the last call.
func (j *Journal) Drain(gameID string, t RunTracker) {
	for _, s := range t.DrainRuns() {
		j.Record(gameID, s)
	}
}

// Finish records pending runs and then the run in progress.
func (j *Journal) Finish(gameID string, t RunTracker) {
	j.Drain(gameID, t)
	j.Record(gameID, t.FinishRun(tetris.ReasonQuit))
}

// Package game owns the loaded dataset snapshot and the per-game operations
// the presentation layer calls: new game, choices and answer checks.
package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"clueboard/internal/board"
	"clueboard/internal/choices"
	"clueboard/internal/clue"
	"clueboard/internal/dataset"
	"clueboard/internal/logger"
	"clueboard/internal/random"

	"github.com/google/uuid"
)

// Options configures a session.
type Options struct {
	Round   string
	Board   board.Options
	Choices choices.Options
	// Seed makes boards and choices reproducible; zero is random.
	Seed int64
	Now  func() time.Time
}

// Stats summarizes a loaded dataset.
type Stats struct {
	Rows               int `json:"rows"`
	Repository         int `json:"repository"`
	Eligible           int `json:"eligible"`
	EligibleCategories int `json:"eligible_categories"`
}

// Session is the snapshot of one dataset load. Reloading builds a new
// session; a session is never updated in place.
type Session struct {
	ID       string
	Source   string
	LoadedAt time.Time

	opts       Options
	rng        *rand.Rand
	log        *logger.Logger
	repo       *clue.Repository
	boardClues []clue.Record
	stats      Stats
}

// Load reads the dataset from src and builds a session from it. A fetch
// failure leaves nothing loaded.
func Load(ctx context.Context, src dataset.Source, opts Options, log *logger.Logger) (*Session, error) {
	rows, err := src.Rows(ctx)
	if err != nil {
		log.Error("dataset load failed", "source", src.Describe(), "error", err)
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return NewSession(rows, src.Describe(), opts, log), nil
}

// NewSession builds a session from header-first rows.
func NewSession(rows [][]string, source string, opts Options, log *logger.Logger) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Round == "" {
		opts.Round = board.DefaultRound
	}
	if log == nil {
		log = logger.Nop()
	}
	s := &Session{
		ID:         uuid.NewString(),
		Source:     source,
		LoadedAt:   opts.Now(),
		opts:       opts,
		rng:        random.New(opts.Seed),
		repo:       clue.NewRepository(clue.NormalizeRepository(rows)),
		boardClues: clue.NormalizeBoard(rows, opts.Round),
	}
	s.log = log.With("session_id", s.ID)
	s.stats = Stats{
		Repository: s.repo.Len(),
		Eligible:   len(s.boardClues),
		EligibleCategories: len(board.Eligible(
			board.GroupByCategory(s.boardClues), s.boardOptions().Ladder,
		)),
	}
	if len(rows) > 0 {
		s.stats.Rows = len(rows) - 1
	}
	if len(rows) > 0 {
		if missing := clue.NewHeader(rows[0]).Missing(); len(missing) > 0 {
			s.log.Warn("dataset header missing columns", "missing", missing)
		}
	}
	s.log.Info("dataset loaded",
		"source", source,
		"rows", s.stats.Rows,
		"repository", s.stats.Repository,
		"eligible", s.stats.Eligible,
		"eligible_categories", s.stats.EligibleCategories,
	)
	return s
}

// Loaded reports whether s holds a dataset. A nil session is not loaded.
func (s *Session) Loaded() bool {
	return s != nil
}

// Stats returns dataset counts for the loaded snapshot.
func (s *Session) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	return s.stats
}

// Repository returns the clue repository used for distractors.
func (s *Session) Repository() *clue.Repository {
	if s == nil {
		return nil
	}
	return s.repo
}

// Columns returns the target board width.
func (s *Session) Columns() int {
	return s.boardOptions().Columns
}

func (s *Session) boardOptions() board.Options {
	opts := s.opts.Board
	if opts.Columns <= 0 {
		opts.Columns = board.DefaultColumns
	}
	if len(opts.Ladder) == 0 {
		opts.Ladder = board.DefaultLadder
	}
	return opts
}

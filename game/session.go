// Package game drives one interactive Priests and Devils session on behalf
// of a front-end: it keeps the step counter and elapsed time, decides when
// the game is over and serializes solver replays against manual play.
package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"priests-devils/river"
)

var (
	ErrGameOver         = errors.New("game is over, start a new one")
	ErrReplayInProgress = errors.New("auto solve is running")
	ErrNoReplay         = errors.New("no replay steps left")
)

type Status int

const (
	Playing Status = iota
	Replaying
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Replaying:
		return "replaying"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is what a crossing meant for the session. Victory and Defeat are
// the crossings that end the game as Won or Lost.
type Outcome int

const (
	Continue Outcome = iota
	Victory
	Defeat
)

type Options struct {
	Logger *slog.Logger
	Now    func() time.Time
}

// Session is safe for use from several goroutines; every method runs under
// one lock so replay steps never interleave with manual actions.
type Session struct {
	mu sync.Mutex

	id      uuid.UUID
	totals  river.Totals
	state   *river.State
	status  Status
	steps   int
	started time.Time
	ended   time.Time
	replay  *Replay
	logger  *slog.Logger
	now     func() time.Time
}

func New(totals river.Totals, opts Options) (*Session, error) {
	state, err := river.NewState(totals)
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Session{
		id:     uuid.New(),
		totals: totals,
		state:  state,
		now:    opts.Now,
	}
	s.logger = opts.Logger.With("session", s.id.String())
	s.started = s.now()
	s.logger.Info("session started", "priests", totals.Priests, "devils", totals.Devils)
	return s, nil
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) Totals() river.Totals { return s.totals }

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

func (s *Session) Position() river.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

func (s *Session) Passengers() []river.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Passengers()
}

func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == Playing && s.state.Crossings() > 0
}

// Idle is the number of characters of kind k waiting on the bank, boarded
// passengers excluded.
func (s *Session) Idle(k river.Kind, side river.Side) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Idle(k, side)
}

// Elapsed is the play time so far, frozen once the game ends.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed()
}

func (s *Session) elapsed() time.Duration {
	if s.status == Won || s.status == Lost {
		return s.ended.Sub(s.started)
	}
	return s.now().Sub(s.started)
}

func (s *Session) checkPlaying() error {
	switch s.status {
	case Replaying:
		return ErrReplayInProgress
	case Won, Lost:
		return ErrGameOver
	}
	return nil
}

func (s *Session) Board(k river.Kind, side river.Side) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkPlaying(); err != nil {
		return err
	}
	if err := s.state.Board(k, side); err != nil {
		s.logger.Debug("board rejected", "kind", k, "side", side, "error", err)
		return err
	}
	s.logger.Debug("boarded", "kind", k, "side", side, "boat", s.state.Passengers())
	return nil
}

func (s *Session) Disembark() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkPlaying(); err != nil {
		return err
	}
	s.state.Disembark()
	return nil
}

func (s *Session) Cross() (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkPlaying(); err != nil {
		return Continue, err
	}
	safe, err := s.state.Cross()
	if err != nil {
		s.logger.Debug("cross rejected", "error", err)
		return Continue, err
	}
	s.steps++
	pos := s.state.Snapshot()
	s.logger.Debug("crossed", "position", pos.String(), "steps", s.steps)
	switch {
	case !safe:
		s.finish(Lost)
		return Defeat, nil
	case pos.IsWon():
		s.finish(Won)
		return Victory, nil
	}
	return Continue, nil
}

func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkPlaying(); err != nil {
		return err
	}
	if err := s.state.Undo(); err != nil {
		s.logger.Debug("undo rejected", "error", err)
		return err
	}
	s.steps = max(0, s.steps-1)
	s.logger.Debug("undone", "position", s.state.Snapshot().String(), "steps", s.steps)
	return nil
}

// Reset starts over from the opening position with a fresh clock.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Restart()
	s.status = Playing
	s.steps = 0
	s.replay = nil
	s.started = s.now()
	s.ended = time.Time{}
	s.logger.Info("session reset")
}

func (s *Session) finish(st Status) {
	s.status = st
	s.ended = s.now()
	s.logger.Info("game over", "status", st.String(), "steps", s.steps, "elapsed", s.elapsed())
}

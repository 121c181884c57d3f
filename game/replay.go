package game

import (
	"context"
	"time"

	"priests-devils/river"
)

const minReplayInterval = time.Millisecond

// Replay walks a solver path back onto the session, one position per call
// to Next. While a replay is active every manual action is refused.
type Replay struct {
	session  *Session
	path     []river.Position
	next     int
	expanded int
}

// Solve searches for the shortest solution from the current position and
// hands back the replay for it. Boarded passengers are sent back ashore once
// a solution is found; on failure nothing changes.
func (s *Session) Solve() (*Replay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkPlaying(); err != nil {
		return nil, err
	}
	start := s.state.Snapshot()
	result, err := river.Solve(s.totals, start)
	if err != nil {
		s.logger.Info("solver failed", "from", start.String(), "expanded", result.Expanded, "error", err)
		return nil, err
	}
	s.state.Disembark()
	s.logger.Info("solver finished", "from", start.String(), "moves", len(result.Path), "expanded", result.Expanded)

	r := &Replay{session: s, path: result.Path, expanded: result.Expanded}
	if len(r.path) == 0 {
		s.finish(Won)
		return r, nil
	}
	s.status = Replaying
	s.replay = r
	return r, nil
}

func (r *Replay) Len() int      { return len(r.path) }
func (r *Replay) Expanded() int { return r.expanded }

func (r *Replay) Remaining() int {
	r.session.mu.Lock()
	defer r.session.mu.Unlock()
	return len(r.path) - r.next
}

func (r *Replay) Path() []river.Position {
	return append([]river.Position(nil), r.path...)
}

func (r *Replay) active() bool {
	return r.session.replay == r && r.session.status == Replaying
}

// Next jumps the session to the following position of the path.
func (r *Replay) Next() (river.Position, error) {
	r.session.mu.Lock()
	defer r.session.mu.Unlock()
	return r.advance()
}

func (r *Replay) advance() (river.Position, error) {
	if !r.active() || r.next >= len(r.path) {
		return river.Position{}, ErrNoReplay
	}
	pos := r.path[r.next]
	if err := r.session.state.Restore(pos); err != nil {
		return river.Position{}, err
	}
	r.next++
	s := r.session
	s.steps++
	s.logger.Debug("replayed", "position", pos.String(), "step", r.next, "of", len(r.path))
	if r.next == len(r.path) {
		s.replay = nil
		s.finish(Won)
	}
	return pos, nil
}

// Stop abandons the replay and gives control back to the player at the
// position reached so far.
func (r *Replay) Stop() {
	r.session.mu.Lock()
	defer r.session.mu.Unlock()
	r.stop()
}

func (r *Replay) stop() {
	if !r.active() {
		return
	}
	s := r.session
	s.replay = nil
	s.status = Playing
	s.logger.Info("replay stopped", "remaining", len(r.path)-r.next)
}

// step advances unless ctx is already done. The check runs under the
// session lock, so a cancel that precedes a Reset always wins over Next.
func (r *Replay) step(ctx context.Context) (river.Position, error) {
	r.session.mu.Lock()
	defer r.session.mu.Unlock()
	if err := ctx.Err(); err != nil {
		r.stop()
		return river.Position{}, err
	}
	return r.advance()
}

// Run plays the remaining steps, one every interval, calling onStep after
// each. Cancelling ctx stops the replay and Run returns ctx.Err().
func (r *Replay) Run(ctx context.Context, interval time.Duration, onStep func(river.Position)) error {
	ticker := time.NewTicker(max(interval, minReplayInterval))
	defer ticker.Stop()

	for r.Remaining() > 0 {
		select {
		case <-ctx.Done():
			r.Stop()
			return ctx.Err()
		case <-ticker.C:
			pos, err := r.step(ctx)
			if err != nil {
				return err
			}
			if onStep != nil {
				onStep(pos)
			}
		}
	}
	return nil
}

// Package web serves tic-tac-toe games as a JSON API. Each game is a
// private session addressed by a random id.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/match"
)

// ErrNotFound is returned for unknown game ids.
var ErrNotFound = errors.New("game not found")

// GameView is the JSON representation of one game.
type GameView struct {
	ID              string          `json:"id"`
	Mode            string          `json:"mode"`
	ComputerPending bool            `json:"computer_pending"`
	State           tictactoe.State `json:"state"`
	Created         time.Time       `json:"created"`
	Updated         time.Time       `json:"updated"`
}

// MoveView is returned after a move request.
type MoveView struct {
	GameView
	Accepted     bool `json:"accepted"`
	HistoryIndex int  `json:"history_index"`
}

type session struct {
	id      string
	ctrl    *match.Controller
	timer   *time.Timer
	created time.Time
	updated time.Time
}

// subscriber is only sent to, closed and removed while Service.mu is held.
type subscriber struct {
	ch     chan GameView
	closed bool
}

func (s *subscriber) close() {
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// ServiceOptions configures a Service.
type ServiceOptions struct {
	Board  config.BoardConfig
	Mode   match.Mode // used when a create request names none
	Delay  time.Duration
	Seed   int64
	Store  match.BoardSizeStore
	Logger *log.Logger
}

// Service owns every web game and schedules the computer's replies.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session
	subs     map[string]map[*subscriber]struct{}
	opts     ServiceOptions
	logger   *log.Logger
}

// NewService creates an empty service.
func NewService(opts ServiceOptions) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		sessions: make(map[string]*session),
		subs:     make(map[string]map[*subscriber]struct{}),
		opts:     opts,
		logger:   logger,
	}
}

// checkSize enforces the configured board range on top of the engine's.
func (s *Service) checkSize(size int) error {
	b := s.opts.Board
	if size < b.MinSize || size > b.MaxSize {
		return fmt.Errorf("%w: %d (allowed %d..%d)", tictactoe.ErrUnsupportedBoardSize, size, b.MinSize, b.MaxSize)
	}
	return nil
}

// Create starts a game. A zero size uses the stored preference.
func (s *Service) Create(ctx context.Context, size int, mode match.Mode) (GameView, error) {
	if size == 0 {
		var err error
		size, err = match.InitialSize(ctx, s.opts.Store, s.opts.Board.DefaultSize)
		if err != nil {
			s.logger.Warn("could not load board size", "error", err)
		}
		size = s.opts.Board.ClampSize(size)
	}
	if err := s.checkSize(size); err != nil {
		return GameView{}, err
	}

	ctrl, err := match.NewController(size, match.Options{Mode: mode, Delay: s.opts.Delay, Seed: s.opts.Seed})
	if err != nil {
		return GameView{}, err
	}

	now := time.Now()
	sess := &session{id: uuid.NewString(), ctrl: ctrl, created: now, updated: now}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.id] = sess
	s.logger.Info("game created", "id", sess.id, "size", size, "mode", mode)
	return viewOf(sess), nil
}

// Get returns the current view of a game.
func (s *Service) Get(id string) (GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return GameView{}, ErrNotFound
	}
	return viewOf(sess), nil
}

// Move plays a human move.
func (s *Service) Move(id string, row, col int) (MoveView, error) {
	var mv MoveView
	err := s.update(id, func(sess *session) error {
		out, err := sess.ctrl.Submit(row, col)
		if err != nil {
			return err
		}
		mv.Accepted, mv.HistoryIndex = out.Accepted, out.HistoryIndex
		return nil
	}, func(v GameView) { mv.GameView = v })
	return mv, err
}

// Rewind shows snapshot index and cancels any pending computer move.
func (s *Service) Rewind(id string, index int) (GameView, error) {
	return s.updateView(id, func(sess *session) error {
		_, err := sess.ctrl.Rewind(index)
		return err
	})
}

// Resume lets the computer continue from a rewound snapshot.
func (s *Service) Resume(id string) (GameView, error) {
	return s.updateView(id, func(sess *session) error {
		sess.ctrl.Resume()
		return nil
	})
}

// Reset clears the board. A non-zero size also resizes it and stores the
// size as the new preference.
func (s *Service) Reset(ctx context.Context, id string, size int) (GameView, error) {
	if size != 0 {
		if err := s.checkSize(size); err != nil {
			return GameView{}, err
		}
	}
	view, err := s.updateView(id, func(sess *session) error {
		if size == 0 || size == sess.ctrl.Game().Size() {
			sess.ctrl.Reset()
			return nil
		}
		_, err := sess.ctrl.Resize(size)
		return err
	})
	if err != nil || size == 0 {
		return view, err
	}
	if err := match.SaveSize(ctx, s.opts.Store, size); err != nil {
		s.logger.Warn("could not save board size", "size", size, "error", err)
	}
	return view, nil
}

// Delete removes a game, cancels its pending move and closes its streams.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	stopTimer(sess)
	delete(s.sessions, id)
	for sub := range s.subs[id] {
		sub.close()
	}
	delete(s.subs, id)
	s.logger.Info("game deleted", "id", id)
	return nil
}

// BoardSize returns the stored preference, or the configured default.
func (s *Service) BoardSize(ctx context.Context) (int, error) {
	size, err := match.InitialSize(ctx, s.opts.Store, s.opts.Board.DefaultSize)
	return s.opts.Board.ClampSize(size), err
}

// SetBoardSize stores a new preference.
func (s *Service) SetBoardSize(ctx context.Context, size int) error {
	if err := s.checkSize(size); err != nil {
		return err
	}
	return match.SaveSize(ctx, s.opts.Store, size)
}

// Subscribe streams every later change of game id until ctx is done or the
// game is deleted.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return nil, ErrNotFound
	}
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan GameView, 4)}
	set[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		if set, ok := s.subs[id]; ok {
			delete(set, sub)
		}
		sub.close()
	}()
	return sub.ch, nil
}

// Close stops every pending computer move and ends every event stream.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		stopTimer(sess)
	}
	for id, set := range s.subs {
		for sub := range set {
			sub.close()
		}
		delete(s.subs, id)
	}
}

func (s *Service) updateView(id string, fn func(*session) error) (GameView, error) {
	var view GameView
	err := s.update(id, fn, func(v GameView) { view = v })
	return view, err
}

// update runs fn on a session under the lock, reschedules the computer and
// notifies subscribers.
func (s *Service) update(id string, fn func(*session) error, done func(GameView)) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	if err := fn(sess); err != nil {
		view := viewOf(sess)
		s.mu.Unlock()
		done(view)
		return err
	}
	sess.updated = time.Now()
	s.scheduleLocked(sess)
	view := viewOf(sess)
	s.broadcastLocked(view)
	s.mu.Unlock()

	done(view)
	return nil
}

// scheduleLocked replaces any pending computer move with a fresh one if
// the computer is due.
func (s *Service) scheduleLocked(sess *session) {
	stopTimer(sess)
	tok, ok := sess.ctrl.OpponentDue()
	if !ok {
		return
	}
	id := sess.id
	sess.timer = time.AfterFunc(sess.ctrl.Delay(), func() {
		s.playOpponent(id, tok)
	})
}

func (s *Service) playOpponent(id string, tok match.Token) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	out, played := sess.ctrl.PlayOpponent(tok)
	if !played {
		s.mu.Unlock()
		return
	}
	sess.updated = time.Now()
	sess.timer = nil
	s.scheduleLocked(sess)
	s.broadcastLocked(viewOf(sess))
	s.mu.Unlock()

	s.logger.Debug("computer move", "id", id, "index", out.HistoryIndex, "outcome", out.Result.Outcome)
}

// broadcastLocked delivers view to every subscriber of its game without
// blocking. Subscribers with a full buffer are dropped.
func (s *Service) broadcastLocked(view GameView) {
	set := s.subs[view.ID]
	for sub := range set {
		select {
		case sub.ch <- view:
		default:
			delete(set, sub)
			sub.close()
		}
	}
}

func stopTimer(sess *session) {
	if sess.timer != nil {
		sess.timer.Stop()
		sess.timer = nil
	}
}

func viewOf(sess *session) GameView {
	_, pending := sess.ctrl.OpponentDue()
	return GameView{
		ID:              sess.id,
		Mode:            sess.ctrl.Mode().String(),
		ComputerPending: pending,
		State:           sess.ctrl.State(),
		Created:         sess.created,
		Updated:         sess.updated,
	}
}

// Package rosterstore keeps each session's working copy of a roster board.
package rosterstore

import (
	"context"
	"sync"
	"time"

	rosterdomain "github.com/edenhub/eden-web/app/modules/roster/domain"
	"github.com/edenhub/eden-web/app/shared/clock"
)

// Key identifies a board: one per browser session and run.
type Key struct {
	Session string
	RunID   string
}

type entry struct {
	board   *rosterdomain.Board
	touched time.Time
}

// Store holds boards in memory and forgets those idle longer than the TTL.
// Boards are copied on the way in and out.
type Store struct {
	mu     sync.Mutex
	ttl    time.Duration
	clock  clock.Clock
	boards map[Key]*entry
}

// New creates an empty store.
func New(ttl time.Duration, clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Store{
		ttl:    ttl,
		clock:  clk,
		boards: make(map[Key]*entry),
	}
}

// Get returns a copy of the board for key.
func (s *Store) Get(key Key) (*rosterdomain.Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.boards[key]
	if !ok {
		return nil, false
	}
	now := s.clock.Now()
	if s.expired(e, now) {
		delete(s.boards, key)
		return nil, false
	}
	e.touched = now
	return e.board.Clone(), true
}

// Put stores a copy of board under key.
func (s *Store) Put(key Key, board *rosterdomain.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[key] = &entry{board: board.Clone(), touched: s.clock.Now()}
}

// Delete forgets the board for key.
func (s *Store) Delete(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, key)
}

// Len returns the number of stored boards.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boards)
}

// Sweep drops expired boards and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for key, e := range s.boards {
		if s.expired(e, now) {
			delete(s.boards, key)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.touched) > s.ttl
}

package rosterstore

import (
	"testing"
	"time"

	rosterdomain "github.com/edenhub/eden-web/app/modules/roster/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func testBoard() *rosterdomain.Board {
	return rosterdomain.NewBoard(edenapi.Run{ID: "r1", Difficulty: types.DifficultyNormal, TankCapacity: 1}, "", nil, nil)
}

func TestStore_CopiesBoards(t *testing.T) {
	s := New(time.Minute, nil)
	key := Key{Session: "s1", RunID: "r1"}
	board := testBoard()

	s.Put(key, board)
	board.Completed = true

	got, ok := s.Get(key)
	require.True(t, ok)
	assert.False(t, got.Completed)

	got.Completed = true
	again, _ := s.Get(key)
	assert.False(t, again.Completed)

	_, ok = s.Get(Key{Session: "s2", RunID: "r1"})
	assert.False(t, ok)
}

func TestStore_ExpiresIdleBoards(t *testing.T) {
	clk := &manualClock{now: time.Date(2026, 11, 2, 20, 0, 0, 0, time.UTC)}
	s := New(10*time.Minute, clk)
	active := Key{Session: "s1", RunID: "r1"}
	idle := Key{Session: "s2", RunID: "r1"}

	s.Put(active, testBoard())
	s.Put(idle, testBoard())

	clk.now = clk.now.Add(6 * time.Minute)
	_, ok := s.Get(active)
	require.True(t, ok)

	clk.now = clk.now.Add(6 * time.Minute)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	clk.now = clk.now.Add(11 * time.Minute)
	_, ok = s.Get(active)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_Delete(t *testing.T) {
	s := New(0, nil)
	key := Key{Session: "s1", RunID: "r1"}
	s.Put(key, testBoard())
	s.Delete(key)
	assert.Equal(t, 0, s.Len())
}

package gac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingListInitialChain(t *testing.T) {
	tl := NewTrackingList(0, 4)
	assert.Equal(t, 5, tl.GetSize())
	assert.Equal(t, 5, tl.GetUniverseSize())
	assert.False(t, tl.IsEmpty())

	got := []int{}
	for e := tl.GetNext(tl.GetSource()); e != tl.GetSink(); e = tl.GetNext(e) {
		got = append(got, e)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

// TestTrackingListRemoveTrackLeftRefill is a smaller companion to the
// tracking-list scenario below: on [0,4], remove an interior element,
// confirm TrackLeft skips the gap, then Refill restores it.
func TestTrackingListRemoveTrackLeftRefill(t *testing.T) {
	tl := NewTrackingList(0, 4)

	tl.Remove(2)
	assert.Equal(t, 4, tl.GetSize())
	assert.False(t, tl.IsPresent(2))
	assert.Equal(t, 1, tl.GetPrevious(3), "3's predecessor should now be 1")
	assert.Equal(t, 3, tl.GetNext(1), "1's successor should now be 3")

	assert.Equal(t, 1, tl.TrackLeft(2), "TrackLeft from a removed node finds the nearest present predecessor")
	assert.Equal(t, 3, tl.TrackLeft(3), "TrackLeft from a present node returns itself")

	tl.Refill()
	assert.Equal(t, 5, tl.GetSize())
	assert.True(t, tl.IsPresent(2))
	assert.Equal(t, 2, tl.GetNext(1))
	assert.Equal(t, 2, tl.GetPrevious(3))
}

// TestTrackingListSpecScenario reproduces the concrete tracking-list
// scenario: on [1,10], remove 5 and 6, check trackLeft at 4/5/6/7, refill,
// confirm all ten elements are present again.
func TestTrackingListSpecScenario(t *testing.T) {
	tl := NewTrackingList(1, 10)
	tl.Remove(5)
	tl.Remove(6)

	assert.Equal(t, 4, tl.TrackLeft(6))
	assert.Equal(t, 4, tl.TrackLeft(5))
	assert.Equal(t, 7, tl.TrackLeft(7))

	tl.Refill()
	assert.Equal(t, 10, tl.GetSize())
	got := []int{}
	for e := tl.GetNext(tl.GetSource()); e != tl.GetSink(); e = tl.GetNext(e) {
		got = append(got, e)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, got)
}

func TestTrackingListMultipleRemovesRefillIsLIFO(t *testing.T) {
	tl := NewTrackingList(0, 3)
	tl.Remove(1)
	tl.Remove(2)
	assert.Equal(t, 2, tl.GetSize())

	tl.Refill()
	assert.Equal(t, 4, tl.GetSize())
	got := []int{}
	for e := tl.GetNext(tl.GetSource()); e != tl.GetSink(); e = tl.GetNext(e) {
		got = append(got, e)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestTrackingListRemoveFromUniverse(t *testing.T) {
	tl := NewTrackingList(0, 2)
	tl.RemoveFromUniverse(1)
	assert.Equal(t, 2, tl.GetUniverseSize())
	assert.Equal(t, 2, tl.GetSize())
	assert.False(t, tl.InUniverse(1))

	got := []int{}
	for e := tl.GetNext(tl.GetSource()); e != tl.GetSink(); e = tl.GetNext(e) {
		got = append(got, e)
	}
	assert.Equal(t, []int{0, 2}, got)
}

func TestTrackingListRemoveFromUniverseEnvUndo(t *testing.T) {
	tl := NewTrackingList(0, 2)
	env := NewTrailEnvironment()

	tl.RemoveFromUniverseEnv(1, env)
	assert.False(t, tl.InUniverse(1))
	assert.Equal(t, 2, tl.GetUniverseSize())

	env.UndoTo(0)
	assert.True(t, tl.InUniverse(1))
	assert.Equal(t, 3, tl.GetUniverseSize())
	assert.Equal(t, 3, tl.GetSize())
	assert.Equal(t, 1, tl.GetNext(0))
}

func TestTrackingListRemoveFromUniversePreconditionPanics(t *testing.T) {
	tl := NewTrackingList(0, 2)
	tl.Remove(1)
	assert.Panics(t, func() { tl.RemoveFromUniverse(0) }, "stackRemoved non-empty")
}

func TestTrackingListRemovePreconditionPanics(t *testing.T) {
	tl := NewTrackingList(0, 2)
	assert.Panics(t, func() { tl.Remove(tl.GetSource()) })
	assert.Panics(t, func() { tl.Remove(tl.GetSink()) })

	tl.Remove(1)
	assert.Panics(t, func() { tl.Remove(1) }, "already removed")
}

func TestTrackingListBacktrackNeutral(t *testing.T) {
	tl := NewTrackingList(0, 4)
	env := NewTrailEnvironment()
	mark := env.Mark()

	tl.RemoveFromUniverseEnv(2, env)
	tl.RemoveFromUniverseEnv(4, env)
	require.Equal(t, 3, tl.GetUniverseSize())

	env.UndoTo(mark)
	assert.Equal(t, 5, tl.GetUniverseSize())
	assert.Equal(t, 5, tl.GetSize())
	got := []int{}
	for e := tl.GetNext(tl.GetSource()); e != tl.GetSink(); e = tl.GetNext(e) {
		got = append(got, e)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

package group

import (
	"sync"
	"testing"
	"time"

	"github.com/Dev4057/NoteFlow/model"
	"github.com/stretchr/testify/assert"
)

type capture struct {
	mu     sync.Mutex
	groups [][]model.NoteEvent
}

func (c *capture) sink(g []model.NoteEvent) {
	c.mu.Lock()
	c.groups = append(c.groups, g)
	c.mu.Unlock()
}

func (c *capture) all() [][]model.NoteEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := make([][]model.NoteEvent, len(c.groups))
	copy(res, c.groups)
	return res
}

func on(num uint8, ts float64) model.NoteEvent {
	return model.NoteEvent{Number: num, Velocity: 80, Timestamp: ts}
}

func TestEventsInsideWindowShareAGroup(t *testing.T) {
	var c capture
	a := New(50, c.sink)

	a.Observe(on(60, 0))
	a.Observe(on(64, 0.049))
	a.Flush()

	groups := c.all()
	assert := assert.New(t)
	assert.Len(groups, 1)
	assert.Len(groups[0], 2)
}

func TestEventsBeyondWindowSplit(t *testing.T) {
	var c capture
	a := New(50, c.sink)

	a.Observe(on(60, 0))
	a.Observe(on(64, 0.051))
	a.Flush()

	groups := c.all()
	assert := assert.New(t)
	assert.Len(groups, 2)
	assert.Equal(uint8(60), groups[0][0].Number)
	assert.Equal(uint8(64), groups[1][0].Number)
}

func TestWindowMeasuredFromAnchorNotLastEvent(t *testing.T) {
	var c capture
	a := New(50, c.sink)

	// the third event is 30ms after the second but 60ms after the anchor
	a.Observe(on(60, 0))
	a.Observe(on(64, 0.030))
	a.Observe(on(67, 0.060))
	a.Flush()

	groups := c.all()
	assert := assert.New(t)
	assert.Len(groups, 2)
	assert.Len(groups[0], 2)
	assert.Len(groups[1], 1)
}

func TestFlushOnStopDeliversTail(t *testing.T) {
	var c capture
	a := New(50, c.sink)

	a.Observe(on(60, 0))
	a.Observe(on(64, 0.010))
	a.Observe(on(67, 0.020))
	assert.Empty(t, c.all())

	a.Flush()
	groups := c.all()
	assert.Len(t, groups, 1)
	assert.Len(t, groups[0], 3)
}

func TestFlushOnEmptyIsNoop(t *testing.T) {
	var c capture
	a := New(50, c.sink)

	a.Flush()
	a.Observe(on(60, 0))
	a.Flush()
	a.Flush()

	assert.Len(t, c.all(), 1)
}

func TestNoteOffsDoNotAffectGrouping(t *testing.T) {
	var c capture
	a := New(50, c.sink)

	a.Observe(on(60, 0))
	a.Observe(model.NoteEvent{Number: 60, Timestamp: 0.2, NoteOff: true})
	a.Observe(on(64, 0.020))
	a.Flush()

	groups := c.all()
	assert := assert.New(t)
	assert.Len(groups, 1)
	assert.Len(groups[0], 2)
}

func TestArrivalOrderPreserved(t *testing.T) {
	var c capture
	a := New(50, c.sink)

	a.Observe(on(67, 0))
	a.Observe(on(60, 0.010))
	a.Observe(on(64, 0.020))
	a.Flush()

	groups := c.all()
	assert := assert.New(t)
	assert.Len(groups, 1)
	assert.Equal([]uint8{67, 60, 64}, []uint8{
		groups[0][0].Number, groups[0][1].Number, groups[0][2].Number,
	})
}

func TestQuietInputFlushesByTimer(t *testing.T) {
	done := make(chan []model.NoteEvent, 1)
	a := New(100, func(g []model.NoteEvent) {
		done <- g
	})

	a.Observe(on(60, 0))
	a.Observe(on(64, 0.005))

	select {
	case g := <-done:
		assert.Len(t, g, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("pending group was never flushed by the timer")
	}
}

func TestTimerIsSupersededNotStacked(t *testing.T) {
	done := make(chan []model.NoteEvent, 4)
	a := New(100, func(g []model.NoteEvent) {
		done <- g
	})

	// three arrivals inside one window re-arm the same timer; only one
	// flush may come out of it
	a.Observe(on(60, 0))
	time.Sleep(10 * time.Millisecond)
	a.Observe(on(64, 0.005))
	time.Sleep(10 * time.Millisecond)
	a.Observe(on(67, 0.010))

	select {
	case g := <-done:
		assert.Len(t, g, 3)
	case <-time.After(2 * time.Second):
		t.Fatal("pending group was never flushed by the timer")
	}

	select {
	case g := <-done:
		t.Fatalf("unexpected second flush: %v", g)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestZeroWindowFallsBackToDefault(t *testing.T) {
	a := New(0, func([]model.NoteEvent) {})
	assert.Equal(t, float64(DefaultWindowMs), a.WindowMs())
}

package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycle_ShortBreaksUntilBoundary(t *testing.T) {
	c := NewCycle(4)

	for i := 1; i <= 3; i++ {
		assert.Equal(t, ActionShortBreak, c.NextAfterFocus(true), "focus %d should propose a short break", i)
		assert.Equal(t, ActionFocus, c.NextAfterBreak(ActionShortBreak))
	}

	assert.Equal(t, ActionLongBreak, c.NextAfterFocus(true), "fourth completed focus should propose a long break")
}

func TestCycle_InterruptedFocusDoesNotAdvance(t *testing.T) {
	c := NewCycle(2)

	assert.Equal(t, ActionShortBreak, c.NextAfterFocus(true))
	assert.Equal(t, ActionFocus, c.NextAfterFocus(false))
	assert.Equal(t, 1, c.CompletedFocus, "interrupted focus must not count toward the rotation")

	// The next completed focus reaches the boundary.
	assert.Equal(t, ActionLongBreak, c.NextAfterFocus(true))
}

func TestCycle_LongBreakResetsCounter(t *testing.T) {
	c := NewCycle(2)

	c.NextAfterFocus(true)
	assert.Equal(t, ActionLongBreak, c.NextAfterFocus(true))
	assert.Equal(t, ActionFocus, c.NextAfterBreak(ActionLongBreak))
	assert.Equal(t, 0, c.CompletedFocus)

	// A fresh rotation starts over.
	assert.Equal(t, ActionShortBreak, c.NextAfterFocus(true))
	assert.Equal(t, ActionLongBreak, c.NextAfterFocus(true))
}

func TestCycle_ShortBreakDoesNotReset(t *testing.T) {
	c := NewCycle(4)
	c.NextAfterFocus(true)
	c.NextAfterBreak(ActionShortBreak)
	assert.Equal(t, 1, c.CompletedFocus)
}

func TestNewCycle_DefaultsEveryN(t *testing.T) {
	assert.Equal(t, 4, NewCycle(0).EveryN)
	assert.Equal(t, 4, NewCycle(-2).EveryN)
	assert.Equal(t, 6, NewCycle(6).EveryN)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "focus", ActionFocus.String())
	assert.Equal(t, "short break", ActionShortBreak.String())
	assert.Equal(t, "long break", ActionLongBreak.String())
}

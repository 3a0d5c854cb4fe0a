package timer

// Action is the next session the cycle controller proposes. The controller
// only proposes; starting a break is always confirmed by the caller.
type Action int

const (
	ActionFocus Action = iota
	ActionShortBreak
	ActionLongBreak
)

func (a Action) String() string {
	switch a {
	case ActionShortBreak:
		return "short break"
	case ActionLongBreak:
		return "long break"
	default:
		return "focus"
	}
}

// Cycle sequences the classic rotation: focus, short break, focus, ... with
// a long break every EveryN completed focus sessions. The counter tracks
// completed focus sessions since the last long break.
type Cycle struct {
	EveryN         int
	CompletedFocus int
}

// NewCycle creates a cycle controller. Non-positive everyN falls back to 4.
func NewCycle(everyN int) *Cycle {
	if everyN <= 0 {
		everyN = 4
	}
	return &Cycle{EveryN: everyN}
}

// NextAfterFocus advances the rotation past a focus session and proposes
// what follows. An interrupted focus session does not advance the counter
// and never triggers the long-break check.
func (c *Cycle) NextAfterFocus(completed bool) Action {
	if !completed {
		return ActionFocus
	}
	c.CompletedFocus++
	if c.CompletedFocus%c.EveryN == 0 {
		return ActionLongBreak
	}
	return ActionShortBreak
}

// NextAfterBreak proposes the action following a break. Consuming a
// long-break boundary resets the focus counter, whether or not the break
// itself ran to completion.
func (c *Cycle) NextAfterBreak(action Action) Action {
	if action == ActionLongBreak {
		c.CompletedFocus = 0
	}
	return ActionFocus
}

package rush

// InputLatch buffers player intents between ticks. Steering intents are
// edge-triggered: arming one and consuming it moves the car at most one
// lane per tick. The boost flag is level-triggered and is not cleared by
// Consume; the host sets it every frame while the key is held.
//
// Input callbacks push into the latch and the tick loop drains it exactly
// once per frame, so a single lane change is never applied twice even if
// the host delivers several key events between ticks.
type InputLatch struct {
	moveLeft  bool
	moveRight bool
	boost     bool
}

// PressLeft arms a one-shot move-left intent.
func (l *InputLatch) PressLeft() {
	l.moveLeft = true
}

// PressRight arms a one-shot move-right intent.
func (l *InputLatch) PressRight() {
	l.moveRight = true
}

// SetBoost sets the level-triggered boost flag.
func (l *InputLatch) SetBoost(active bool) {
	l.boost = active
}

// Boost reports whether boost is currently held.
func (l *InputLatch) Boost() bool {
	return l.boost
}

// Consume drains the armed steering intent and returns the lane delta to
// apply this tick: -1, 0 or +1. Left takes priority when both intents are
// armed in the same tick. Both intents are cleared afterwards.
func (l *InputLatch) Consume() int {
	delta := 0
	switch {
	case l.moveLeft:
		delta = -1
	case l.moveRight:
		delta = 1
	}
	l.moveLeft = false
	l.moveRight = false
	return delta
}

// Reset clears all pending intents and the boost flag.
func (l *InputLatch) Reset() {
	l.moveLeft = false
	l.moveRight = false
	l.boost = false
}

package internal

import (
	"time"

	"coachpad/pkg/coachpad/constants"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks held directions and handles repeat timing.
// Embed this in component controllers to get consistent directional
// input handling across all components.
type DirectionalInput struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return DirectionalInput{
		repeatDelay:    300 * time.Millisecond,
		repeatInterval: 50 * time.Millisecond,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld updates the held state for a direction based on a button.
// Returns true if the button was a directional button.
func (d *DirectionalInput) SetHeld(button constants.Button, held bool) bool {
	switch button {
	case constants.ButtonUp:
		d.held.up = held
	case constants.ButtonDown:
		d.held.down = held
	case constants.ButtonLeft:
		d.held.left = held
	case constants.ButtonRight:
		d.held.right = held
	default:
		return false
	}

	if !held {
		d.hasRepeated = false
	}
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.up || d.held.down || d.held.left || d.held.right
}

// HeldDirection returns the currently held direction.
// If multiple directions are held, priority is: up, down, left, right.
// Returns DirectionNone if no direction is held.
func (d *DirectionalInput) HeldDirection() Direction {
	switch {
	case d.held.up:
		return DirectionUp
	case d.held.down:
		return DirectionDown
	case d.held.left:
		return DirectionLeft
	case d.held.right:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. It returns the direction that should be processed,
// or DirectionNone if no repeat should occur.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update() Direction {
	if !d.IsHeld() {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if time.Since(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.up = false
	d.held.down = false
	d.held.left = false
	d.held.right = false
	d.hasRepeated = false
	d.lastRepeatTime = time.Now()
}

package models

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// SubmitStatus drives the contact button: idle -> sending -> done -> idle.
type SubmitStatus int

const (
	StatusIdle SubmitStatus = iota
	StatusSending
	StatusDone
)

func (s SubmitStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	case StatusDone:
		return "done"
	default:
		return fmt.Sprintf("SubmitStatus(%d)", int(s))
	}
}

// Label is the submit button text for the status.
func (s SubmitStatus) Label() string {
	switch s {
	case StatusSending:
		return "Sending…"
	case StatusDone:
		return "Sent"
	default:
		return "Send & Open WhatsApp"
	}
}

// Busy reports whether the button should be disabled. A done button stays
// disabled until the reset delay returns it to idle.
func (s SubmitStatus) Busy() bool {
	return s != StatusIdle
}

// Transition returns the next status, or ErrInvalidTransition if to does not follow s.
func (s SubmitStatus) Transition(to SubmitStatus) (SubmitStatus, error) {
	var ok bool
	switch s {
	case StatusIdle:
		ok = to == StatusSending
	case StatusSending:
		ok = to == StatusDone
	case StatusDone:
		ok = to == StatusIdle
	}
	if !ok {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
	}
	return to, nil
}

package service

import (
	"errors"

	"cs2analytics/internal/stream"
)

var (
	ErrNotFound       = errors.New("match not found")
	ErrAlreadySeeded  = errors.New("catalog already seeded")
	ErrNotEnoughTeams = errors.New("need at least two teams to synthesize a match")
)

// EventPublisher receives catalog change notifications. A nil publisher is
// allowed everywhere it appears.
type EventPublisher interface {
	Publish(ev stream.Event)
}

func publish(p EventPublisher, ev stream.Event) {
	if p == nil {
		return
	}
	p.Publish(ev)
}

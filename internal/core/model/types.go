package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrEmptyTimeline = errors.New("timeline has no events")
	ErrInvalidEvent  = errors.New("invalid event")
)

// Event is one entry on the timeline. Events are created once while parsing
// and treated as read-only afterwards.
type Event struct {
	Start float64 `json:"start" yaml:"start"`
	Stop  float64 `json:"stop" yaml:"stop"`
	Group string  `json:"group" yaml:"group"`
	Text  string  `json:"text" yaml:"text"`
}

// Duration returns Stop - Start
func (e Event) Duration() float64 {
	return e.Stop - e.Start
}

// Validate checks Stop > Start, finite bounds and a non-empty title
func (e Event) Validate() error {
	if math.IsNaN(e.Start) || math.IsInf(e.Start, 0) {
		return fmt.Errorf("%w: start %v is not a finite number", ErrInvalidEvent, e.Start)
	}
	if math.IsNaN(e.Stop) || math.IsInf(e.Stop, 0) {
		return fmt.Errorf("%w: stop %v is not a finite number", ErrInvalidEvent, e.Stop)
	}
	if e.Stop <= e.Start {
		return fmt.Errorf("%w: stop %v is not after start %v", ErrInvalidEvent, e.Stop, e.Start)
	}
	if strings.TrimSpace(e.Text) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidEvent)
	}
	return nil
}

func (e Event) String() string {
	return fmt.Sprintf("%v-%v [%s] %q", e.Start, e.Stop, e.Group, e.Text)
}

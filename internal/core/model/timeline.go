package model

// Timeline owns events in insertion order together with a per-group index.
// The index is only ever extended by AddEvent, so every grouped event is also
// in the flat list exactly once.
type Timeline struct {
	events     []Event
	groups     map[string][]Event
	groupOrder []string
}

// NewTimeline creates an empty timeline
func NewTimeline() *Timeline {
	return &Timeline{
		groups: make(map[string][]Event),
	}
}

// AddEvent validates and appends an event
func (t *Timeline) AddEvent(e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if t.groups == nil {
		t.groups = make(map[string][]Event)
	}

	t.events = append(t.events, e)
	if _, ok := t.groups[e.Group]; !ok {
		t.groupOrder = append(t.groupOrder, e.Group)
	}
	t.groups[e.Group] = append(t.groups[e.Group], e)
	return nil
}

// Events returns a copy of all events in insertion order
func (t *Timeline) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Len returns the number of events
func (t *Timeline) Len() int {
	return len(t.events)
}

// Groups returns group names in order of first appearance
func (t *Timeline) Groups() []string {
	out := make([]string, len(t.groupOrder))
	copy(out, t.groupOrder)
	return out
}

// GroupEvents returns the events of one group in insertion order
func (t *Timeline) GroupEvents(group string) []Event {
	events := t.groups[group]
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// Range returns the earliest start and the latest stop
func (t *Timeline) Range() (float64, float64, error) {
	if len(t.events) == 0 {
		return 0, 0, ErrEmptyTimeline
	}

	start, stop := t.events[0].Start, t.events[0].Stop
	for _, e := range t.events[1:] {
		if e.Start < start {
			start = e.Start
		}
		if e.Stop > stop {
			stop = e.Stop
		}
	}
	return start, stop, nil
}

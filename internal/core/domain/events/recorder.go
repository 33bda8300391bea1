// Package events provides the domain-event accumulation capability shared by
// aggregates. An aggregate embeds a Recorder and records one event per
// successful mutation; the outbox capture pipeline drains the recorded events
// exactly once per unit of work.
package events

// DomainEvent is an internal record of something that happened inside an
// aggregate. Events are produced only by aggregate mutation methods and are
// never constructed by infrastructure code.
type DomainEvent interface {
	// EventName returns the stable name of the event kind, e.g. "parcel_added".
	EventName() string
}

// Source is the narrow view of an aggregate the capture pipeline needs:
// read the pending events and clear them after a successful commit.
type Source interface {
	PendingEvents() []DomainEvent
	ClearEvents()
}

// Recorder accumulates domain events during a single unit of work.
// Insertion order is significant: downstream consumers may depend on the
// causal order in which events were recorded.
//
// A Recorder is owned exclusively by the handler executing the current unit
// of work and is not safe for concurrent use.
type Recorder struct {
	pending []DomainEvent
}

// Record appends an event to the pending sequence.
func (r *Recorder) Record(event DomainEvent) {
	r.pending = append(r.pending, event)
}

// PendingEvents returns the accumulated events in insertion order.
// The returned slice is the recorder's backing storage; callers must not
// mutate it.
func (r *Recorder) PendingEvents() []DomainEvent {
	return r.pending
}

// ClearEvents discards all pending events. Called by the capture pipeline
// after the events have been persisted to the outbox.
func (r *Recorder) ClearEvents() {
	r.pending = nil
}

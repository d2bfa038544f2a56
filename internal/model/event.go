package model

import "time"

// StatusEvent is the message a task emits on every status transition.
// A single owner applies events to its view of the batch.
type StatusEvent struct {
	TaskID     string
	Index      int
	URL        string
	FileID     string
	Status     TaskStatus
	OutputPath string // set on TaskStatusCompleted
	Reason     string // set on TaskStatusError
	At         time.Time
}

// IsTerminal reports whether the event ends its task
func (e StatusEvent) IsTerminal() bool {
	return e.Status.IsFinished()
}

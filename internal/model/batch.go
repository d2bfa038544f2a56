package model

// BatchResult is the outcome of one batch: every task in input order, each
// in a terminal state.
type BatchResult struct {
	Destination string
	Tasks       []*DownloadTask
}

// Total returns the number of tasks in the batch
func (b *BatchResult) Total() int {
	return len(b.Tasks)
}

// Succeeded returns the number of completed tasks
func (b *BatchResult) Succeeded() int {
	return b.count(TaskStatusCompleted)
}

// Failed returns the number of failed tasks
func (b *BatchResult) Failed() int {
	return b.count(TaskStatusError)
}

// Pending returns the number of tasks not yet in a terminal state
func (b *BatchResult) Pending() int {
	n := 0
	for _, t := range b.Tasks {
		if !t.Status.IsFinished() {
			n++
		}
	}
	return n
}

func (b *BatchResult) count(status TaskStatus) int {
	n := 0
	for _, t := range b.Tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}

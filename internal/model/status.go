package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task exists but has not been enqueued yet
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the task is enqueued or in flight
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the file was saved
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in flight
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusDownloading
}

// IsFinished returns true if the task reached a terminal state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

package model

// TaskStatus represents the lifecycle state of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task was accepted but the transfer has not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the engine is being launched
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusDownloading means the transfer is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusStopped means the request context was cancelled
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusCompleted means the file was produced and reported
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the transfer failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the engine may still be working on the task
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusStarting || ts == TaskStatusDownloading
}

// IsFinished returns true if the task reached a terminal state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped || ts == TaskStatusError
}

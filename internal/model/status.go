package model

// TaskStatus represents the status of a single conversion task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusRunning means the external tool is converting the file
	TaskStatusRunning TaskStatus = "Running"

	// TaskStatusStopping means a cancellation was requested for the running task
	TaskStatusStopping TaskStatus = "Stopping"

	// TaskStatusStopped means the task was stopped by user
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusFailed means the external tool exited with a non-zero code
	TaskStatusFailed TaskStatus = "Failed"

	// TaskStatusError means the task could not run (spawn or path error)
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusRunning || ts == TaskStatusStopping
}

// IsFinished returns true if the task is in a finished state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped ||
		ts == TaskStatusFailed || ts == TaskStatusError
}

// BatchState is the state of the batch driver.
//
//	Idle -> Running -> Idle
//	Idle -> Running -> Cancelling -> Idle
type BatchState string

const (
	BatchStateIdle       BatchState = "Idle"
	BatchStateRunning    BatchState = "Running"
	BatchStateCancelling BatchState = "Cancelling"
)

// String returns the string representation of BatchState
func (bs BatchState) String() string {
	return string(bs)
}

// IsBusy reports whether a batch is still owned by the worker
func (bs BatchState) IsBusy() bool {
	return bs == BatchStateRunning || bs == BatchStateCancelling
}

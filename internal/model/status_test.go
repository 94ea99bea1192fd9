package model

import "testing"

func TestTaskStatus_Lifecycle(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		active   bool
		finished bool
	}{
		{TaskStatusPending, false, false},
		{TaskStatusRunning, true, false},
		{TaskStatusStopping, true, false},
		{TaskStatusStopped, false, true},
		{TaskStatusCompleted, false, true},
		{TaskStatusFailed, false, true},
		{TaskStatusError, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.IsActive(); got != tt.active {
				t.Errorf("IsActive() = %v, expected %v", got, tt.active)
			}
			if got := tt.status.IsFinished(); got != tt.finished {
				t.Errorf("IsFinished() = %v, expected %v", got, tt.finished)
			}
			if tt.status.IsActive() && tt.status.IsFinished() {
				t.Error("A status cannot be both active and finished")
			}
		})
	}
}

func TestBatchState(t *testing.T) {
	busy := map[BatchState]bool{
		BatchStateIdle:       false,
		BatchStateRunning:    true,
		BatchStateCancelling: true,
	}

	for state, want := range busy {
		if got := state.IsBusy(); got != want {
			t.Errorf("BatchState(%s).IsBusy() = %v, expected %v", state, got, want)
		}
		if state.String() == "" {
			t.Errorf("BatchState %v has an empty name", state)
		}
	}
}

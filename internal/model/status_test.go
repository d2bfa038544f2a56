package model

import "testing"

func TestTaskStatus_Predicates(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		active   bool
		finished bool
	}{
		{TaskStatusPending, false, false},
		{TaskStatusDownloading, true, false},
		{TaskStatusCompleted, false, true},
		{TaskStatusError, false, true},
	}

	for _, test := range tests {
		if got := test.status.IsActive(); got != test.active {
			t.Errorf("%s.IsActive() = %v, expected %v", test.status, got, test.active)
		}
		if got := test.status.IsFinished(); got != test.finished {
			t.Errorf("%s.IsFinished() = %v, expected %v", test.status, got, test.finished)
		}
		if got := (StatusEvent{Status: test.status}).IsTerminal(); got != test.finished {
			t.Errorf("StatusEvent{%s}.IsTerminal() = %v, expected %v", test.status, got, test.finished)
		}
	}
}

func TestTaskStatus_String(t *testing.T) {
	if got := TaskStatusError.String(); got != "Error" {
		t.Errorf("TaskStatusError.String() = %s, expected Error", got)
	}
}

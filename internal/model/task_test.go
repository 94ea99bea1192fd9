package model

import (
	"strings"
	"testing"
)

func TestNewConversionTask(t *testing.T) {
	task := NewConversionTask(2, 5, "/videos/a.mp4")

	if !strings.HasPrefix(task.ID, "convert-") {
		t.Errorf("Expected ID with convert- prefix, got %s", task.ID)
	}
	if task.Index != 2 || task.Total != 5 {
		t.Errorf("Expected index 2 of 5, got %d of %d", task.Index, task.Total)
	}
	if task.Status != TaskStatusPending {
		t.Errorf("Expected pending status, got %s", task.Status)
	}

	other := NewConversionTask(3, 5, "/videos/b.mp4")
	if other.ID == task.ID {
		t.Error("Expected unique task IDs")
	}
}

func TestConversionTask_SetProgress(t *testing.T) {
	tests := []struct {
		in      float64
		percent int
	}{
		{-0.5, 0},
		{0, 0},
		{0.425, 42},
		{1, 100},
		{3, 100},
	}

	for _, test := range tests {
		task := &ConversionTask{}
		task.SetProgress(test.in)
		if task.Percent != test.percent {
			t.Errorf("SetProgress(%v): expected %d%%, got %d%%", test.in, test.percent, task.Percent)
		}
	}
}

func TestConversionTask_Finish(t *testing.T) {
	tests := []struct {
		result  ConversionResult
		status  TaskStatus
		lastErr string
	}{
		{ConversionResult{Kind: ResultSucceeded}, TaskStatusCompleted, ""},
		{ConversionResult{Kind: ResultFailed, ExitCode: 3}, TaskStatusFailed, "exit code 3"},
		{ConversionResult{Kind: ResultErrored, Message: "boom"}, TaskStatusError, "boom"},
		{ConversionResult{Kind: ResultSkipped}, TaskStatusStopped, ""},
	}

	for _, test := range tests {
		task := NewConversionTask(0, 1, "in.mp4")
		task.Finish(test.result)
		if task.Status != test.status {
			t.Errorf("%s: expected status %s, got %s", test.result.Kind, test.status, task.Status)
		}
		if task.LastError != test.lastErr {
			t.Errorf("%s: expected last error %q, got %q", test.result.Kind, test.lastErr, task.LastError)
		}
		if task.FinishedAt.IsZero() {
			t.Errorf("%s: FinishedAt should be set", test.result.Kind)
		}
	}
}

func TestConversionResult_Summary(t *testing.T) {
	tests := []struct {
		result   ConversionResult
		expected string
	}{
		{ConversionResult{Input: "/v/a.mp4", Kind: ResultSucceeded}, "✓ Success: a.mp4"},
		{ConversionResult{Input: "/v/b.mkv", Kind: ResultFailed, ExitCode: 1}, "✗ Failed: b.mkv (code 1)"},
		{ConversionResult{Input: "/v/c.mp4", Kind: ResultErrored, Message: "not found"}, "✗ Error: not found"},
		{ConversionResult{Input: "/v/d.mov", Kind: ResultSkipped}, "■ Stopped: d.mov"},
	}

	for _, test := range tests {
		if got := test.result.Summary(); got != test.expected {
			t.Errorf("Summary() = %q, expected %q", got, test.expected)
		}
	}
}

func TestReport_Counters(t *testing.T) {
	r := Report{Total: 4}
	r.Add(ConversionResult{Kind: ResultSucceeded})
	r.Add(ConversionResult{Kind: ResultFailed, ExitCode: 1})
	r.Add(ConversionResult{Kind: ResultErrored, Message: "x"})

	if r.Processed != 3 {
		t.Errorf("Expected processed 3, got %d", r.Processed)
	}
	if r.Complete() {
		t.Error("Report should not be complete with 3/4")
	}

	r.Add(ConversionResult{Kind: ResultSkipped})
	if r.Processed != 3 {
		t.Errorf("Skipped result must not be counted, got processed %d", r.Processed)
	}
	if len(r.Results) != 4 {
		t.Errorf("Expected 4 results, got %d", len(r.Results))
	}
}

func TestReport_CompleteAndClean(t *testing.T) {
	r := Report{Total: 2}
	r.Add(ConversionResult{Kind: ResultSucceeded})
	r.Add(ConversionResult{Kind: ResultSucceeded})
	if !r.Complete() || !r.Clean() {
		t.Error("All succeeded should be complete and clean")
	}

	r = Report{Total: 2}
	r.Add(ConversionResult{Kind: ResultSucceeded})
	r.Add(ConversionResult{Kind: ResultFailed, ExitCode: 2})
	if !r.Complete() {
		t.Error("A failed file still counts toward completion")
	}
	if r.Clean() {
		t.Error("A failed file means the report is not clean")
	}

	empty := Report{}
	if !empty.Complete() {
		t.Error("0/0 should be complete")
	}
}

func TestNewBatch_CopiesFiles(t *testing.T) {
	files := []string{"a.mp4", "b.mp4"}
	b := NewBatch(files, ConversionOptions{}, "/out")

	files[0] = "changed.mp4"
	if b.Files[0] != "a.mp4" {
		t.Errorf("Batch should hold a copy of files, got %s", b.Files[0])
	}
	if !strings.HasPrefix(b.ID, "batch-") {
		t.Errorf("Expected batch- prefix, got %s", b.ID)
	}
}

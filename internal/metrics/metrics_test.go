package metrics

import (
	"context"
	"testing"
)

func TestSubjectForEvent(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"wizard_started", "onboardr.events.wizard_started"},
		{"Sign In Submitted", "onboardr.events.sign-in-submitted"},
		{"provider/selected", "onboardr.events.provider-selected"},
	}
	for _, tt := range tests {
		if got := SubjectForEvent(tt.name); got != tt.want {
			t.Errorf("SubjectForEvent(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMemoryRecorder(t *testing.T) {
	r := NewMemoryRecorder()
	r.Capture("wizard_started", map[string]string{"flow": "signIn"})
	r.Capture("wizard_completed", nil)

	names := r.Names()
	if len(names) != 2 {
		t.Fatalf("expected 2 events, got %d", len(names))
	}
	if names[0] != "wizard_started" || names[1] != "wizard_completed" {
		t.Errorf("unexpected event order: %v", names)
	}
	if r.Events[0].Props["flow"] != "signIn" {
		t.Errorf("expected flow prop to survive, got %v", r.Events[0].Props)
	}
	if r.Events[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestNATSRecorder_CaptureAndHistory(t *testing.T) {
	ctx := context.Background()
	rec, err := NewNATSRecorder(ctx, t.TempDir())
	if err != nil {
		t.Fatalf("failed to start recorder: %v", err)
	}
	defer rec.Close()

	rec.Capture("wizard_started", map[string]string{"flow": "signUp"})
	rec.Capture("step_advanced", map[string]string{"page": "1"})
	rec.Capture("wizard_completed", nil)

	events, err := rec.History(ctx)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Name != "wizard_started" {
		t.Errorf("expected first event 'wizard_started', got %q", events[0].Name)
	}
	if events[1].Props["page"] != "1" {
		t.Errorf("expected page prop, got %v", events[1].Props)
	}
	if events[2].Name != "wizard_completed" {
		t.Errorf("expected last event 'wizard_completed', got %q", events[2].Name)
	}
}

func TestNATSRecorder_HistorySurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	rec, err := NewNATSRecorder(ctx, dir)
	if err != nil {
		t.Fatalf("failed to start recorder: %v", err)
	}
	rec.Capture("wizard_started", nil)
	if err := rec.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	rec2, err := NewNATSRecorder(ctx, dir)
	if err != nil {
		t.Fatalf("failed to restart recorder: %v", err)
	}
	defer rec2.Close()

	events, err := rec2.History(ctx)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(events) != 1 || events[0].Name != "wizard_started" {
		t.Errorf("expected persisted event after restart, got %v", events)
	}
}

package checklist_test

import (
	"testing"

	"keep-import/internal/checklist"
	"keep-import/internal/model"
)

func TestRender(t *testing.T) {
	items := []model.ChecklistItem{
		{Text: "eggs", Checked: true},
		{Text: "bread", Checked: false},
		{Text: "milk [2L]", Checked: true},
	}

	got := checklist.Render(items)
	want := []string{"- [x] eggs", "- [ ] bread", "- [x] milk [2L]"}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}

	if lines := checklist.Render(nil); len(lines) != 0 {
		t.Errorf("expected no lines for empty checklist, got %v", lines)
	}
}

func TestGetStats(t *testing.T) {
	stats := checklist.GetStats([]model.ChecklistItem{
		{Text: "a", Checked: true},
		{Text: "b"},
		{Text: "c"},
		{Text: "d", Checked: true},
	})
	if stats.Total != 4 || stats.Completed != 2 || stats.Pending != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.Progress != 50 {
		t.Errorf("expected 50%% progress, got %v", stats.Progress)
	}

	if empty := checklist.GetStats(nil); empty != (checklist.ChecklistStats{}) {
		t.Errorf("expected zero stats, got %+v", empty)
	}
}

package checklist

import "keep-import/internal/model"

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
)

// RenderLine renders one checklist item as a markdown task list line.
func RenderLine(item model.ChecklistItem) string {
	state := CheckboxUnchecked
	if item.Checked {
		state = CheckboxChecked
	}
	return state + " " + item.Text
}

// Render renders items in their original order, one line per item.
func Render(items []model.ChecklistItem) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, RenderLine(item))
	}
	return lines
}

// GetStats calculates checklist statistics
func GetStats(items []model.ChecklistItem) ChecklistStats {
	total := len(items)
	if total == 0 {
		return ChecklistStats{}
	}

	completed := 0
	for _, item := range items {
		if item.Checked {
			completed++
		}
	}

	return ChecklistStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

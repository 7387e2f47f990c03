package checklist

// ChecklistStats represents checklist progress
type ChecklistStats struct {
	Total     int     // Total checkboxes
	Completed int     // Checked checkboxes
	Pending   int     // Unchecked checkboxes
	Progress  float64 // Completion percentage (0-100)
}

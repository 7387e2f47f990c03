package model

// Note is one note read from a Google Keep export.
// Loaded notes are treated as values and never modified in place.
type Note struct {
	SourceID        string // File name the note was read from
	Title           string
	TextContent     string
	ChecklistItems  []ChecklistItem
	Labels          []Label
	CreatedAtMicros int64 // Microseconds since the Unix epoch
	UpdatedAtMicros int64 // Microseconds since the Unix epoch
	IsTrashed       bool
	IsArchived      bool
	IsPinned        bool

	// CreatedMissing is set when the export had no creation timestamp and
	// CreatedAtMicros fell back to the Unix epoch.
	CreatedMissing bool
}

// ChecklistItem is one entry of a Keep checklist note.
type ChecklistItem struct {
	Text    string
	Checked bool
}

// Label is a Keep label attached to a note.
type Label struct {
	Name string
}

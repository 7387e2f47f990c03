package repository

// LoadNotesOptions holds the parameters for loading notes from an export.
type LoadNotesOptions struct {
	Folder string // Export folder; a leading "~" is expanded to the home directory
}

// CreateMemoOptions holds the parameters for creating a memo in Memos.
type CreateMemoOptions struct {
	Content string // Full Markdown content body
}

// PatchTimestampsOptions holds the parameters for overriding memo timestamps.
type PatchTimestampsOptions struct {
	Name       string // Memo resource name, e.g. "memos/abc123"
	CreateTime string // ISO-8601 UTC
	UpdateTime string // ISO-8601 UTC
}

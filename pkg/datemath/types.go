package datemath

// Layouts used when rendering export timestamps for the Memos API.
// Both always render UTC with a literal Z suffix.
const (
	LayoutSeconds = "2006-01-02T15:04:05Z"
	LayoutMicros  = "2006-01-02T15:04:05.000000Z"
)

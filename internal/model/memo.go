package model

// Memo is a memo created in Memos during an import.
type Memo struct {
	Name string // Resource name assigned by Memos, e.g. "memos/abc123"; empty if Memos did not report it
}

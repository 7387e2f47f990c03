package note

// ImportInput is the input for a single import run.
type ImportInput struct {
	Folder string // Keep export folder holding one JSON file per note
	DryRun bool   // Format notes without touching Memos
}

// ImportOutput tallies the outcome of an import run.
type ImportOutput struct {
	Total     int // Notes considered for import (trashed excluded)
	Trashed   int // Notes filtered out because they were in the trash
	Succeeded int
	Failed    int
	Skipped   int // Notes whose formatted content was empty
	DryRun    bool
}

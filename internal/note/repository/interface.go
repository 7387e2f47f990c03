package repository

import (
	"context"

	"keep-import/internal/model"
)

// ExportRepository reads notes from a Keep export.
type ExportRepository interface {
	LoadNotes(ctx context.Context, opt LoadNotesOptions) ([]model.Note, error)
}

// MemosRepository is the interface for Memos write operations used by an import.
type MemosRepository interface {
	Probe(ctx context.Context) error
	CreateMemo(ctx context.Context, opt CreateMemoOptions) (model.Memo, error)
	PatchTimestamps(ctx context.Context, opt PatchTimestampsOptions) error
}

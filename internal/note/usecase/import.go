package usecase

import (
	"context"
	"fmt"

	"keep-import/internal/checklist"
	"keep-import/internal/model"
	"keep-import/internal/note"
	"keep-import/internal/note/repository"
	"keep-import/pkg/datemath"
)

// Import probes Memos, loads the export, asks the operator to confirm and
// then imports the notes one at a time. Per-note failures are counted and
// never retried.
func (uc *implUseCase) Import(ctx context.Context, input note.ImportInput) (note.ImportOutput, error) {
	out := note.ImportOutput{DryRun: input.DryRun}

	// Step 1: Make sure Memos is reachable before reading anything
	if !input.DryRun {
		if err := uc.memosRepo.Probe(ctx); err != nil {
			return out, fmt.Errorf("%w: %w", note.ErrProbeFailed, err)
		}
		uc.l.Info(ctx, "Connected to Memos API")
	}

	// Step 2: Load and drop trashed notes
	uc.l.Infof(ctx, "Loading notes from %s...", input.Folder)
	loaded, err := uc.exportRepo.LoadNotes(ctx, repository.LoadNotesOptions{Folder: input.Folder})
	if err != nil {
		return out, fmt.Errorf("failed to load notes: %w", err)
	}

	notes := filterTrashed(loaded)
	out.Total = len(notes)
	out.Trashed = len(loaded) - len(notes)
	uc.l.Infof(ctx, "Found %d notes (excluding trashed)", out.Total)
	if pinned, archived := countFlags(notes); pinned > 0 || archived > 0 {
		uc.l.Infof(ctx, "%d pinned and %d archived notes are imported as regular memos", pinned, archived)
	}

	// Step 3: Confirmation gate; nothing has been written to Memos yet
	if !input.DryRun && out.Total > 0 {
		ok, err := uc.confirmer.Confirm(ctx, out.Total)
		if err != nil {
			return out, fmt.Errorf("failed to confirm import: %w", err)
		}
		if !ok {
			return out, note.ErrImportCanceled
		}
	}

	// Step 4: Import sequentially in file order
	for i, n := range notes {
		if err := ctx.Err(); err != nil {
			uc.l.Warnf(ctx, "Import interrupted after %d of %d notes", i, out.Total)
			return out, err
		}

		switch uc.importNote(ctx, i+1, out.Total, n, input.DryRun) {
		case outcomeSucceeded:
			out.Succeeded++
		case outcomeFailed:
			out.Failed++
		case outcomeSkipped:
			out.Skipped++
		}
	}

	return out, nil
}

// importNote creates one memo and then restores its timestamps.
// Any 200 create counts as a success, even when the patch fails or
// cannot be sent.
func (uc *implUseCase) importNote(ctx context.Context, index, total int, n model.Note, dryRun bool) outcome {
	label := progressLabel(index, total, n.SourceID)

	content := FormatContent(n)
	if content == "" {
		uc.l.Debugf(ctx, "%s skipped (empty)", label)
		return outcomeSkipped
	}

	createTime := datemath.MicrosToISO(n.CreatedAtMicros)
	updateTime := datemath.MicrosToISO(n.UpdatedAtMicros)

	if dryRun {
		if stats := checklist.GetStats(n.ChecklistItems); stats.Total > 0 {
			uc.l.Debugf(ctx, "%s checklist %d/%d done", label, stats.Completed, stats.Total)
		}
		uc.l.Debugf(ctx, "%s created=%s updated=%s\n%s", label, createTime, updateTime, content)
		uc.l.Infof(ctx, "%s would import", label)
		return outcomeSucceeded
	}

	memo, err := uc.memosRepo.CreateMemo(ctx, repository.CreateMemoOptions{Content: content})
	if err != nil {
		uc.l.Errorf(ctx, "%s Failed to create: %v", label, err)
		return outcomeFailed
	}

	if memo.Name == "" {
		uc.l.Warnf(ctx, "%s Warning: timestamps not updated: create response has no memo name", label)
		uc.l.Infof(ctx, "%s OK", label)
		return outcomeSucceeded
	}

	err = uc.memosRepo.PatchTimestamps(ctx, repository.PatchTimestampsOptions{
		Name:       memo.Name,
		CreateTime: createTime,
		UpdateTime: updateTime,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s Warning: timestamps not updated: %v", label, err)
	}

	uc.l.Infof(ctx, "%s OK", label)
	return outcomeSucceeded
}

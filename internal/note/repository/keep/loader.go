package keep

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"keep-import/internal/model"
	"keep-import/internal/note/repository"
	pkgLog "keep-import/pkg/log"
)

const noteExt = ".json"

type implRepository struct {
	fs afero.Fs
	l  pkgLog.Logger
}

// New creates a Keep export repository reading from fs.
func New(fs afero.Fs, l pkgLog.Logger) repository.ExportRepository {
	return &implRepository{
		fs: fs,
		l:  l,
	}
}

// LoadNotes reads every *.json file directly inside the export folder, in
// lexicographic file name order. The first file that cannot be read or parsed
// aborts the load.
func (r *implRepository) LoadNotes(ctx context.Context, opt repository.LoadNotesOptions) ([]model.Note, error) {
	folder, err := expandHome(opt.Folder)
	if err != nil {
		return nil, err
	}

	// afero.ReadDir returns entries sorted by name.
	entries, err := afero.ReadDir(r.fs, folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read export folder %q: %w", folder, err)
	}

	notes := make([]model.Note, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != noteExt {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := r.loadNote(filepath.Join(folder, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrMalformedNote, entry.Name(), err)
		}
		if n.CreatedMissing {
			r.l.Warnf(ctx, "keep loader: %s has no createdTimestampUsec, using Unix epoch", n.SourceID)
		}
		notes = append(notes, n)
	}

	r.l.Debugf(ctx, "keep loader: loaded %d notes from %s", len(notes), folder)
	return notes, nil
}

func (r *implRepository) loadNote(path string) (model.Note, error) {
	raw, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return model.Note{}, err
	}

	var kn keepNote
	if err := json.Unmarshal(raw, &kn); err != nil {
		return model.Note{}, err
	}

	return toModel(filepath.Base(path), kn), nil
}

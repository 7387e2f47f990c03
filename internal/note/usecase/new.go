package usecase

import (
	"keep-import/internal/note"
	"keep-import/internal/note/repository"
	pkgLog "keep-import/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	exportRepo repository.ExportRepository
	memosRepo  repository.MemosRepository
	confirmer  note.Confirmer
}

// New creates a new note import UseCase instance.
func New(
	l pkgLog.Logger,
	exportRepo repository.ExportRepository,
	memosRepo repository.MemosRepository,
	confirmer note.Confirmer,
) note.UseCase {
	return &implUseCase{
		l:          l,
		exportRepo: exportRepo,
		memosRepo:  memosRepo,
		confirmer:  confirmer,
	}
}

package note

import "context"

// UseCase defines the business logic interface for the note import domain.
type UseCase interface {
	// Import loads a Keep export folder and creates one memo per importable note,
	// restoring the original timestamps on each created memo.
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
}

// Confirmer gates the import on an operator acknowledgment.
// It is consulted after notes are loaded and before any memo is written.
type Confirmer interface {
	Confirm(ctx context.Context, noteCount int) (bool, error)
}

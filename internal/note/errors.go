package note

import "errors"

// Domain-specific errors for the note package.
var (
	ErrProbeFailed    = errors.New("failed to connect to memos")
	ErrImportCanceled = errors.New("import canceled by operator")
)

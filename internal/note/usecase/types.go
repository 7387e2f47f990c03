package usecase

// outcome classifies what happened to a single note during an import.
type outcome int

const (
	outcomeSucceeded outcome = iota
	outcomeFailed
	outcomeSkipped
)

// maxSourceIDLen bounds the file name shown in progress lines.
const maxSourceIDLen = 40

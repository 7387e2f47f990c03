package usecase

import (
	"fmt"

	"keep-import/internal/model"
)

// filterTrashed returns the notes that are not in the Keep trash, in order.
func filterTrashed(notes []model.Note) []model.Note {
	kept := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		if n.IsTrashed {
			continue
		}
		kept = append(kept, n)
	}
	return kept
}

// countFlags counts pinned and archived notes.
func countFlags(notes []model.Note) (pinned, archived int) {
	for _, n := range notes {
		if n.IsPinned {
			pinned++
		}
		if n.IsArchived {
			archived++
		}
	}
	return pinned, archived
}

// progressLabel builds the "[i/n] name..." prefix of a per-note progress line.
func progressLabel(index, total int, sourceID string) string {
	return fmt.Sprintf("[%d/%d] %s...", index, total, truncate(sourceID, maxSourceIDLen))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

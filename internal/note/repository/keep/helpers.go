package keep

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"keep-import/internal/model"
)

// toModel applies the export defaulting rules: a missing creation time
// becomes the Unix epoch and a missing edit time falls back to creation.
func toModel(sourceID string, kn keepNote) model.Note {
	n := model.Note{
		SourceID:    sourceID,
		Title:       kn.Title,
		TextContent: kn.TextContent,
		IsTrashed:   kn.IsTrashed,
		IsArchived:  kn.IsArchived,
		IsPinned:    kn.IsPinned,
	}

	if kn.CreatedTimestampUsec != nil {
		n.CreatedAtMicros = *kn.CreatedTimestampUsec
	} else {
		n.CreatedMissing = true
	}
	n.UpdatedAtMicros = n.CreatedAtMicros
	if kn.UserEditedTimestampUsec != nil {
		n.UpdatedAtMicros = *kn.UserEditedTimestampUsec
	}

	if len(kn.ListContent) > 0 {
		n.ChecklistItems = make([]model.ChecklistItem, 0, len(kn.ListContent))
		for _, item := range kn.ListContent {
			n.ChecklistItems = append(n.ChecklistItems, model.ChecklistItem{
				Text:    item.Text,
				Checked: item.IsChecked,
			})
		}
	}

	if len(kn.Labels) > 0 {
		n.Labels = make([]model.Label, 0, len(kn.Labels))
		for _, label := range kn.Labels {
			n.Labels = append(n.Labels, model.Label{Name: label.Name})
		}
	}

	return n
}

// expandHome expands a leading "~" to the current user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

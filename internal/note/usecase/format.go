package usecase

import (
	"strings"

	"keep-import/internal/checklist"
	"keep-import/internal/model"
)

// FormatContent renders a Keep note as the Markdown body of a memo:
// a "# title" heading, the text, the checklist and finally a line of
// #tags built from the labels. An empty result means the note has
// nothing worth importing.
func FormatContent(n model.Note) string {
	parts := make([]string, 0, 4)

	if n.Title != "" {
		parts = append(parts, "# "+n.Title, "")
	}

	if n.TextContent != "" {
		parts = append(parts, n.TextContent)
	}

	if len(n.ChecklistItems) > 0 {
		parts = append(parts, checklist.Render(n.ChecklistItems)...)
	}

	if len(n.Labels) > 0 {
		parts = append(parts, "", formatTags(n.Labels))
	}

	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// formatTags turns labels into Memos tags. Memos tags cannot contain
// spaces, so they become underscores.
func formatTags(labels []model.Label) string {
	tags := make([]string, 0, len(labels))
	for _, label := range labels {
		tags = append(tags, "#"+strings.ReplaceAll(label.Name, " ", "_"))
	}
	return strings.Join(tags, " ")
}

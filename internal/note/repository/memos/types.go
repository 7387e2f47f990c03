package memos

import "fmt"

// CreateMemoRequest is the body for POST /api/v1/memos.
type CreateMemoRequest struct {
	Content string `json:"content"`
}

// PatchTimestampsRequest is the body for PATCH /api/v1/{name}.
// Memos accepts the snake_case field names here.
type PatchTimestampsRequest struct {
	Name       string `json:"name"`
	CreateTime string `json:"create_time"`
	UpdateTime string `json:"update_time"`
}

// Memo is the part of the Memos API memo object the importer reads.
type Memo struct {
	Name string `json:"name"`
}

// APIError is returned when Memos answers with a non-200 status.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("memos API %s error %d: %s", e.Op, e.StatusCode, e.Body)
}

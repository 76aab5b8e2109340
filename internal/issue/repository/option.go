package repository

import (
	"time"

	"issue-tracker/internal/issue"
)

// CreateIssueOptions holds parameters for inserting a new Issue.
// A zero Created is filled with the insertion time.
type CreateIssueOptions struct {
	Title          string
	Description    string
	Owner          string
	Status         issue.Status
	Effort         int
	Created        time.Time
	DueDate        string
	CompletionDate string
}

// GetOneIssueOptions holds filter parameters for fetching a single Issue.
type GetOneIssueOptions struct {
	ID string
}

// UpdateIssueOptions holds parameters for a partial update. Nil fields are not written.
type UpdateIssueOptions struct {
	ID             string
	Title          *string
	Description    *string
	Owner          *string
	Status         *issue.Status
	Effort         *int
	DueDate        *string
	CompletionDate *string
}

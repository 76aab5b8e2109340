package repository

import (
	"context"

	"issue-tracker/internal/issue"
)

// Repository is the composed interface for the issue data store.
type Repository interface {
	IssueRepository
}

// IssueRepository defines all data access methods for the Issue entity.
// Lookups that find nothing return the zero Issue and a nil error.
type IssueRepository interface {
	CreateIssue(ctx context.Context, opt CreateIssueOptions) (issue.Issue, error)
	GetOneIssue(ctx context.Context, opt GetOneIssueOptions) (issue.Issue, error)
	ListIssues(ctx context.Context) ([]issue.Issue, error)
	UpdateIssue(ctx context.Context, opt UpdateIssueOptions) (issue.Issue, error)
	DeleteIssue(ctx context.Context, id string) (issue.Issue, error)
	SetIssueStatus(ctx context.Context, id string, status issue.Status) (issue.Issue, error)
}

package usecase

import (
	"context"

	"issue-tracker/internal/issue"
)

// List returns every Issue in store order (newest first).
func (uc *implUseCase) List(ctx context.Context) (issue.ListIssuesOutput, error) {
	issues, err := uc.repo.ListIssues(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListIssues: %v", err)
		return issue.ListIssuesOutput{}, err
	}
	return issue.ListIssuesOutput{Issues: issues}, nil
}

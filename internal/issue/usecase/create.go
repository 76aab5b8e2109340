package usecase

import (
	"context"
	"strings"

	"issue-tracker/internal/issue"
	repo "issue-tracker/internal/issue/repository"
)

// Create validates and persists a new Issue. Status defaults to New.
func (uc *implUseCase) Create(ctx context.Context, input issue.CreateIssueInput) (issue.CreateIssueOutput, error) {
	title := strings.TrimSpace(input.Title)
	status := input.Status
	if status == "" {
		status = issue.StatusNew
	}
	dueDate := strings.TrimSpace(input.DueDate)
	completionDate := strings.TrimSpace(input.CompletionDate)

	if err := uc.validateFields(&title, &status, &input.Effort, &dueDate, &completionDate); err != nil {
		return issue.CreateIssueOutput{}, err
	}

	iss, err := uc.repo.CreateIssue(ctx, repo.CreateIssueOptions{
		Title:          title,
		Description:    input.Description,
		Owner:          input.Owner,
		Status:         status,
		Effort:         input.Effort,
		Created:        input.Created,
		DueDate:        dueDate,
		CompletionDate: completionDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateIssue: %v", err)
		return issue.CreateIssueOutput{}, err
	}

	return issue.CreateIssueOutput{Issue: iss}, nil
}

package usecase

import (
	"context"

	"issue-tracker/internal/issue"
	repo "issue-tracker/internal/issue/repository"
)

// Detail retrieves a single Issue by ID. Returns ErrIssueNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (issue.DetailIssueOutput, error) {
	iss, err := uc.repo.GetOneIssue(ctx, repo.GetOneIssueOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneIssue: %v", err)
		return issue.DetailIssueOutput{}, err
	}
	if iss.IsZero() {
		return issue.DetailIssueOutput{}, issue.ErrIssueNotFound
	}
	return issue.DetailIssueOutput{Issue: iss}, nil
}

// Update applies the fields present in input. ID and Created never change and
// status transitions are not ordered. Returns ErrIssueNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input issue.UpdateIssueInput) (issue.UpdateIssueOutput, error) {
	title := uc.trimmed(input.Title)
	dueDate := uc.trimmed(input.DueDate)
	completionDate := uc.trimmed(input.CompletionDate)

	if err := uc.validateFields(title, input.Status, input.Effort, dueDate, completionDate); err != nil {
		return issue.UpdateIssueOutput{}, err
	}

	if input.Empty() {
		out, err := uc.Detail(ctx, input.ID)
		if err != nil {
			return issue.UpdateIssueOutput{}, err
		}
		return issue.UpdateIssueOutput{Issue: out.Issue}, nil
	}

	// Single atomic write: a missing record comes back as the zero Issue.
	iss, err := uc.repo.UpdateIssue(ctx, repo.UpdateIssueOptions{
		ID:             input.ID,
		Title:          title,
		Description:    input.Description,
		Owner:          input.Owner,
		Status:         input.Status,
		Effort:         input.Effort,
		DueDate:        dueDate,
		CompletionDate: completionDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateIssue: %v", err)
		return issue.UpdateIssueOutput{}, err
	}
	if iss.IsZero() {
		return issue.UpdateIssueOutput{}, issue.ErrIssueNotFound
	}
	return issue.UpdateIssueOutput{Issue: iss}, nil
}

// Delete removes an Issue by ID. Returns ErrIssueNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.DeleteIssue(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteIssue: %v", err)
		return err
	}
	if deleted.IsZero() {
		return issue.ErrIssueNotFound
	}
	return nil
}

// Close sets the Issue to Completed whatever its current status.
// Returns ErrIssueNotFound when not found.
func (uc *implUseCase) Close(ctx context.Context, id string) (issue.CloseIssueOutput, error) {
	iss, err := uc.repo.SetIssueStatus(ctx, id, issue.StatusCompleted)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Close SetIssueStatus: %v", err)
		return issue.CloseIssueOutput{}, err
	}
	if iss.IsZero() {
		return issue.CloseIssueOutput{}, issue.ErrIssueNotFound
	}
	return issue.CloseIssueOutput{Issue: iss}, nil
}

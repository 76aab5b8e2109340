package memory

import (
	"context"
	"sort"

	"issue-tracker/internal/issue"
	repo "issue-tracker/internal/issue/repository"
)

// CreateIssue stores a new Issue under a fresh UUID.
func (r *implRepository) CreateIssue(ctx context.Context, opt repo.CreateIssueOptions) (issue.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := opt.Created
	if created.IsZero() {
		created = r.now()
	}
	status := opt.Status
	if status == "" {
		status = issue.StatusNew
	}

	r.seq++
	iss := issue.Issue{
		ID:             r.newID(),
		Title:          opt.Title,
		Description:    opt.Description,
		Owner:          opt.Owner,
		Status:         status,
		Effort:         opt.Effort,
		Created:        created.UTC(),
		DueDate:        opt.DueDate,
		CompletionDate: opt.CompletionDate,
	}
	r.records[iss.ID] = record{seq: r.seq, issue: iss}
	return iss, nil
}

// GetOneIssue returns the zero Issue when opt.ID is unknown.
func (r *implRepository) GetOneIssue(ctx context.Context, opt repo.GetOneIssueOptions) (issue.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[opt.ID].issue, nil
}

// ListIssues returns every Issue, newest first. Equal timestamps fall back to
// insertion order so the result is stable.
func (r *implRepository) ListIssues(ctx context.Context) ([]issue.Issue, error) {
	r.mu.RLock()
	recs := make([]record, 0, len(r.records))
	for _, rec := range r.records {
		recs = append(recs, rec)
	}
	r.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.issue.Created.Equal(b.issue.Created) {
			return a.issue.Created.After(b.issue.Created)
		}
		return a.seq > b.seq
	})

	issues := make([]issue.Issue, len(recs))
	for i, rec := range recs {
		issues[i] = rec.issue
	}
	return issues, nil
}

// UpdateIssue applies the non-nil fields of opt.
func (r *implRepository) UpdateIssue(ctx context.Context, opt repo.UpdateIssueOptions) (issue.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[opt.ID]
	if !ok {
		return issue.Issue{}, nil
	}

	iss := rec.issue
	if opt.Title != nil {
		iss.Title = *opt.Title
	}
	if opt.Description != nil {
		iss.Description = *opt.Description
	}
	if opt.Owner != nil {
		iss.Owner = *opt.Owner
	}
	if opt.Status != nil {
		iss.Status = *opt.Status
	}
	if opt.Effort != nil {
		iss.Effort = *opt.Effort
	}
	if opt.DueDate != nil {
		iss.DueDate = *opt.DueDate
	}
	if opt.CompletionDate != nil {
		iss.CompletionDate = *opt.CompletionDate
	}

	rec.issue = iss
	r.records[opt.ID] = rec
	return iss, nil
}

// SetIssueStatus writes only the status field.
func (r *implRepository) SetIssueStatus(ctx context.Context, id string, status issue.Status) (issue.Issue, error) {
	return r.UpdateIssue(ctx, repo.UpdateIssueOptions{ID: id, Status: &status})
}

// DeleteIssue removes and returns the Issue, or the zero Issue when unknown.
func (r *implRepository) DeleteIssue(ctx context.Context, id string) (issue.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return issue.Issue{}, nil
	}
	delete(r.records, id)
	return rec.issue, nil
}

package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"issue-tracker/pkg/issueclient"
)

var errBoom = errors.New("boom")

type updateCall struct {
	ID    string
	Patch issueclient.Patch
}

// fakeAPI is an in-memory stand-in for the issue service.
type fakeAPI struct {
	mu     sync.Mutex
	issues []issueclient.Issue

	listErr, createErr, updateErr, deleteErr, closeErr error

	listHook func()
	creates  []issueclient.CreateRequest
	updates  []updateCall
	deletes  []string
	closes   []string
}

// List copies the data before running listHook, so a blocked call answers
// with what the service held when the request arrived.
func (f *fakeAPI) List(ctx context.Context) ([]issueclient.Issue, error) {
	f.mu.Lock()
	err := f.listErr
	out := make([]issueclient.Issue, len(f.issues))
	copy(out, f.issues)
	hook := f.listHook
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeAPI) Create(ctx context.Context, req issueclient.CreateRequest) (issueclient.Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, req)
	if f.createErr != nil {
		return issueclient.Issue{}, f.createErr
	}
	i := issueclient.Issue{
		ID:             "new-" + req.Title,
		Title:          req.Title,
		Description:    req.Description,
		Owner:          req.Owner,
		Status:         req.Status,
		Effort:         req.Effort,
		DueDate:        req.DueDate,
		CompletionDate: req.CompletionDate,
	}
	if req.Created != nil {
		i.Created = *req.Created
	}
	f.issues = append([]issueclient.Issue{i}, f.issues...)
	return i, nil
}

func (f *fakeAPI) Update(ctx context.Context, id string, p issueclient.Patch) (issueclient.Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updateCall{ID: id, Patch: p})
	if f.updateErr != nil {
		return issueclient.Issue{}, f.updateErr
	}
	for idx, i := range f.issues {
		if i.ID != id {
			continue
		}
		if p.Title != nil {
			i.Title = *p.Title
		}
		if p.Description != nil {
			i.Description = *p.Description
		}
		if p.Owner != nil {
			i.Owner = *p.Owner
		}
		if p.Status != nil {
			i.Status = *p.Status
		}
		if p.Effort != nil {
			i.Effort = *p.Effort
		}
		if p.DueDate != nil {
			i.DueDate = *p.DueDate
		}
		if p.CompletionDate != nil {
			i.CompletionDate = *p.CompletionDate
		}
		f.issues[idx] = i
		return i, nil
	}
	return issueclient.Issue{}, issueclient.ErrNotFound
}

func (f *fakeAPI) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for idx, i := range f.issues {
		if i.ID == id {
			f.issues = append(f.issues[:idx], f.issues[idx+1:]...)
			return nil
		}
	}
	return issueclient.ErrNotFound
}

func (f *fakeAPI) Close(ctx context.Context, id string) (issueclient.Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes = append(f.closes, id)
	if f.closeErr != nil {
		return issueclient.Issue{}, f.closeErr
	}
	for idx, i := range f.issues {
		if i.ID == id {
			i.Status = StatusCompleted
			f.issues[idx] = i
			return i, nil
		}
	}
	return issueclient.Issue{}, issueclient.ErrNotFound
}

func seededAPI() *fakeAPI {
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	return &fakeAPI{issues: []issueclient.Issue{
		{ID: "3", Title: "Third", Owner: "carol", Status: StatusCompleted, Effort: 1, Created: base.Add(2 * time.Hour)},
		{ID: "2", Title: "Second", Owner: "bob", Status: StatusOnGoing, Effort: 3, Created: base.Add(time.Hour)},
		{ID: "1", Title: "First", Owner: "alice", Status: StatusNew, Effort: 2, Created: base},
	}}
}

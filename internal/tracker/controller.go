package tracker

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"issue-tracker/pkg/issueclient"
)

// Load fetches every issue and replaces the local list, keeping the
// service's newest-first order. The result of a load that was overtaken by
// a later one is dropped. Changes the service confirmed while the request
// was in flight are applied on top of the fetched list.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	mark := c.changeSeq
	c.inflight++
	c.loading = true
	c.mu.Unlock()

	issues, err := c.api.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	defer func() {
		if c.inflight == 0 {
			c.changes = nil
		}
	}()
	if seq != c.loadSeq {
		return nil
	}
	c.loading = false
	if err != nil {
		c.l.Errorf(ctx, "tracker.Load: %v", err)
		c.banner = MsgLoadFailed
		return err
	}
	c.issues = c.replay(issues, mark)
	c.banner = ""
	return nil
}

// SetFilter limits Visible to one status; "" shows everything.
func (c *Controller) SetFilter(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = status
}

// Filter returns the active status filter.
func (c *Controller) Filter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Visible returns the issues matching the filter, in list order.
func (c *Controller) Visible() []issueclient.Issue {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filter == "" {
		return slices.Clone(c.issues)
	}
	out := make([]issueclient.Issue, 0, len(c.issues))
	for _, i := range c.issues {
		if i.Status == c.filter {
			out = append(out, i)
		}
	}
	return out
}

// Issues returns the whole local list.
func (c *Controller) Issues() []issueclient.Issue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.issues)
}

// Issue returns the local copy of one issue.
func (c *Controller) Issue(id string) (issueclient.Issue, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return issueclient.Issue{}, false
	}
	return c.issues[idx], true
}

// Banner returns the current error message, or "".
func (c *Controller) Banner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner
}

// DismissBanner clears the error message.
func (c *Controller) DismissBanner() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.banner = ""
}

// Loading reports whether a load is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// BeginEdit puts id into edit mode, replacing any other session.
func (c *Controller) BeginEdit(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return ErrUnknownIssue
	}
	c.editSeq++
	d := draftOf(c.issues[idx])
	c.edit = &EditSession{ID: id, Snapshot: d, Scratch: d, token: c.editSeq}
	return nil
}

// Editing returns a copy of the current edit session.
func (c *Controller) Editing() (EditSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.edit == nil {
		return EditSession{}, false
	}
	return *c.edit, true
}

// UpdateScratch changes one field of the scratch buffer. It does nothing
// unless id is the row being edited.
func (c *Controller) UpdateScratch(id string, f Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.edit == nil || c.edit.ID != id {
		return
	}
	c.edit.Scratch = c.edit.Scratch.Set(f, value)
}

// CancelEdit drops the edit session for id.
func (c *Controller) CancelEdit(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.edit != nil && c.edit.ID == id {
		c.edit = nil
	}
}

// CommitEdit sends the fields that differ from the snapshot. Fields the
// user never touched are not sent, so they keep whatever value the service
// holds now. On failure the session and its scratch buffer stay.
func (c *Controller) CommitEdit(ctx context.Context, id string) (issueclient.Issue, error) {
	c.mu.Lock()
	if c.edit == nil || c.edit.ID != id {
		c.mu.Unlock()
		return issueclient.Issue{}, ErrNotEditing
	}
	session := *c.edit
	patch, err := c.diff(session.Snapshot, session.Scratch)
	if err != nil {
		c.banner = fmt.Sprintf("%s %v", MsgUpdateFailed, err)
		c.mu.Unlock()
		return issueclient.Issue{}, err
	}
	if patch.Empty() {
		c.edit = nil
		var current issueclient.Issue
		if idx := c.indexOf(id); idx >= 0 {
			current = c.issues[idx]
		}
		c.mu.Unlock()
		return current, nil
	}
	c.mu.Unlock()

	updated, err := c.api.Update(ctx, id, patch)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.l.Errorf(ctx, "tracker.CommitEdit: %v", err)
		c.banner = MsgUpdateFailed
		return issueclient.Issue{}, err
	}
	c.replace(updated)
	c.record(change{kind: changeUpdate, issue: updated})
	if c.edit != nil && c.edit.token == session.token {
		c.edit = nil
	}
	c.banner = ""
	return updated, nil
}

// Close marks id Completed and replaces the local record in place.
func (c *Controller) Close(ctx context.Context, id string) (issueclient.Issue, error) {
	closed, err := c.api.Close(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.l.Errorf(ctx, "tracker.Close: %v", err)
		c.banner = MsgCloseFailed
		return issueclient.Issue{}, err
	}
	c.replace(closed)
	c.record(change{kind: changeUpdate, issue: closed})
	c.banner = ""
	return closed, nil
}

// Remove deletes id on the service and, once confirmed, from the local list.
func (c *Controller) Remove(ctx context.Context, id string) error {
	err := c.api.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.l.Errorf(ctx, "tracker.Remove: %v", err)
		c.banner = MsgDeleteFailed
		return err
	}
	if idx := c.indexOf(id); idx >= 0 {
		c.issues = slices.Delete(c.issues, idx, idx+1)
	}
	c.record(change{kind: changeRemove, issue: issueclient.Issue{ID: id}})
	if c.edit != nil && c.edit.ID == id {
		c.edit = nil
	}
	c.banner = ""
	return nil
}

// Form returns the add-form contents.
func (c *Controller) Form() AddForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// SetForm replaces the add-form contents.
func (c *Controller) SetForm(f AddForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f
}

// Add submits form as a new issue with status New and created set to now.
// On success the issue is put at the top of the list and the form is
// cleared; on failure the form is kept.
func (c *Controller) Add(ctx context.Context, form AddForm) (issueclient.Issue, error) {
	c.mu.Lock()
	c.form = form
	req, err := c.createRequest(form)
	if err != nil {
		if errors.Is(err, ErrTitleRequired) {
			c.banner = MsgTitleRequired
		} else {
			c.banner = fmt.Sprintf("%s %v", MsgAddFailed, err)
		}
		c.mu.Unlock()
		return issueclient.Issue{}, err
	}
	c.mu.Unlock()

	created, err := c.api.Create(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.l.Errorf(ctx, "tracker.Add: %v", err)
		c.banner = MsgAddFailed
		return issueclient.Issue{}, err
	}
	c.issues = slices.Insert(c.issues, 0, created)
	c.record(change{kind: changeAdd, issue: created})
	c.form = AddForm{}
	c.banner = ""
	return created, nil
}

func (c *Controller) createRequest(form AddForm) (issueclient.CreateRequest, error) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return issueclient.CreateRequest{}, ErrTitleRequired
	}
	effort, err := parseEffort(form.Effort)
	if err != nil {
		return issueclient.CreateRequest{}, err
	}
	now := c.now()
	due, err := c.normalizeDate(form.DueDate)
	if err != nil {
		return issueclient.CreateRequest{}, err
	}
	completion, err := c.normalizeDate(form.CompletionDate)
	if err != nil {
		return issueclient.CreateRequest{}, err
	}
	return issueclient.CreateRequest{
		Title:          title,
		Description:    form.Description,
		Owner:          form.Owner,
		Status:         StatusNew,
		Effort:         effort,
		Created:        &now,
		DueDate:        due,
		CompletionDate: completion,
	}, nil
}

func (c *Controller) diff(snapshot, scratch Draft) (issueclient.Patch, error) {
	var p issueclient.Patch
	if scratch.Title != snapshot.Title {
		title := strings.TrimSpace(scratch.Title)
		if title == "" {
			return p, ErrTitleRequired
		}
		p.Title = &title
	}
	if scratch.Description != snapshot.Description {
		p.Description = &scratch.Description
	}
	if scratch.Owner != snapshot.Owner {
		p.Owner = &scratch.Owner
	}
	if scratch.Status != snapshot.Status {
		p.Status = &scratch.Status
	}
	if scratch.Effort != snapshot.Effort {
		effort, err := parseEffort(scratch.Effort)
		if err != nil {
			return p, err
		}
		p.Effort = &effort
	}
	if scratch.DueDate != snapshot.DueDate {
		due, err := c.normalizeDate(scratch.DueDate)
		if err != nil {
			return p, err
		}
		p.DueDate = &due
	}
	if scratch.CompletionDate != snapshot.CompletionDate {
		completion, err := c.normalizeDate(scratch.CompletionDate)
		if err != nil {
			return p, err
		}
		p.CompletionDate = &completion
	}
	return p, nil
}

func (c *Controller) normalizeDate(s string) (string, error) {
	d, err := c.dates.Normalize(s, c.now())
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

func parseEffort(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrInvalidEffort
	}
	return n, nil
}

// replace swaps in the service's copy of a record. A record that a reload
// dropped in the meantime stays dropped.
func (c *Controller) replace(i issueclient.Issue) {
	if idx := c.indexOf(i.ID); idx >= 0 {
		c.issues[idx] = i
	}
}

// record journals a confirmed change while any load is in flight.
func (c *Controller) record(ch change) {
	if c.inflight == 0 {
		return
	}
	c.changeSeq++
	ch.seq = c.changeSeq
	c.changes = append(c.changes, ch)
}

// replay applies the changes journaled after mark to a freshly fetched list.
func (c *Controller) replay(issues []issueclient.Issue, mark uint64) []issueclient.Issue {
	for _, ch := range c.changes {
		if ch.seq <= mark {
			continue
		}
		idx := slices.IndexFunc(issues, func(i issueclient.Issue) bool { return i.ID == ch.issue.ID })
		switch ch.kind {
		case changeAdd:
			if idx < 0 {
				issues = slices.Insert(issues, 0, ch.issue)
			}
		case changeUpdate:
			if idx >= 0 {
				issues[idx] = ch.issue
			}
		case changeRemove:
			if idx >= 0 {
				issues = slices.Delete(issues, idx, idx+1)
			}
		}
	}
	return issues
}

func (c *Controller) indexOf(id string) int {
	return slices.IndexFunc(c.issues, func(i issueclient.Issue) bool { return i.ID == id })
}

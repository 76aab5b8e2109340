package tracker

import (
	"context"
	"strconv"

	"issue-tracker/pkg/issueclient"
)

// API is the slice of the issue service the controller talks to.
type API interface {
	List(ctx context.Context) ([]issueclient.Issue, error)
	Create(ctx context.Context, req issueclient.CreateRequest) (issueclient.Issue, error)
	Update(ctx context.Context, id string, patch issueclient.Patch) (issueclient.Issue, error)
	Delete(ctx context.Context, id string) error
	Close(ctx context.Context, id string) (issueclient.Issue, error)
}

// Status values as the service spells them.
const (
	StatusNew       = "New"
	StatusOnGoing   = "On Going"
	StatusCompleted = "Completed"
)

// Statuses lists every status in workflow order.
var Statuses = []string{StatusNew, StatusOnGoing, StatusCompleted}

// Field names an editable issue field.
type Field string

const (
	FieldTitle          Field = "title"
	FieldDescription    Field = "description"
	FieldOwner          Field = "owner"
	FieldStatus         Field = "status"
	FieldEffort         Field = "effort"
	FieldDueDate        Field = "dueDate"
	FieldCompletionDate Field = "completionDate"
)

// Fields lists the editable fields in display order.
var Fields = []Field{
	FieldTitle, FieldDescription, FieldOwner, FieldStatus,
	FieldEffort, FieldDueDate, FieldCompletionDate,
}

// Draft holds the editable fields of an issue as text, the way a form does.
type Draft struct {
	Title          string
	Description    string
	Owner          string
	Status         string
	Effort         string
	DueDate        string
	CompletionDate string
}

func draftOf(i issueclient.Issue) Draft {
	return Draft{
		Title:          i.Title,
		Description:    i.Description,
		Owner:          i.Owner,
		Status:         i.Status,
		Effort:         strconv.Itoa(i.Effort),
		DueDate:        i.DueDate,
		CompletionDate: i.CompletionDate,
	}
}

// Get returns the value of f.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldTitle:
		return d.Title
	case FieldDescription:
		return d.Description
	case FieldOwner:
		return d.Owner
	case FieldStatus:
		return d.Status
	case FieldEffort:
		return d.Effort
	case FieldDueDate:
		return d.DueDate
	case FieldCompletionDate:
		return d.CompletionDate
	}
	return ""
}

// Set returns a copy of d with f set to value. Unknown fields are ignored.
func (d Draft) Set(f Field, value string) Draft {
	switch f {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = value
	case FieldOwner:
		d.Owner = value
	case FieldStatus:
		d.Status = value
	case FieldEffort:
		d.Effort = value
	case FieldDueDate:
		d.DueDate = value
	case FieldCompletionDate:
		d.CompletionDate = value
	}
	return d
}

// EditSession is the single row in inline-edit mode. Snapshot is what the
// row looked like when editing began; Scratch holds the unsaved changes.
type EditSession struct {
	ID       string
	Snapshot Draft
	Scratch  Draft

	token uint64
}

// AddForm holds the add-issue form. Status is not part of it: new issues
// always start as New.
type AddForm struct {
	Title          string
	Description    string
	Owner          string
	Effort         string
	DueDate        string
	CompletionDate string
}

type changeKind int

const (
	changeAdd changeKind = iota
	changeUpdate
	changeRemove
)

// change is a mutation the service confirmed, kept so a load that was
// already in flight does not undo it.
type change struct {
	seq   uint64
	kind  changeKind
	issue issueclient.Issue
}

package issue

import (
	"strings"
	"time"
)

// DateLayout is the accepted form of DueDate and CompletionDate.
const DateLayout = "2006-01-02"

// Status is the lifecycle state of an Issue.
type Status string

const (
	StatusNew       Status = "New"
	StatusOnGoing   Status = "On Going"
	StatusCompleted Status = "Completed"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{StatusNew, StatusOnGoing, StatusCompleted}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// --- Issue Domain Model ---

// Issue is the tracked work item.
type Issue struct {
	ID             string
	Title          string
	Description    string
	Owner          string
	Status         Status
	Effort         int
	Created        time.Time
	DueDate        string
	CompletionDate string
}

// IsZero reports whether i is the "not found" zero value returned by the store.
func (i Issue) IsZero() bool {
	return i.ID == ""
}

// ValidDate reports whether s is empty or a YYYY-MM-DD date.
func ValidDate(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// --- UseCase Inputs ---

type CreateIssueInput struct {
	Title          string
	Description    string
	Owner          string
	Status         Status
	Effort         int
	Created        time.Time
	DueDate        string
	CompletionDate string
}

// UpdateIssueInput carries a partial update: nil fields are left untouched.
type UpdateIssueInput struct {
	ID             string
	Title          *string
	Description    *string
	Owner          *string
	Status         *Status
	Effort         *int
	DueDate        *string
	CompletionDate *string
}

// Empty reports whether the input changes nothing.
func (in UpdateIssueInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.Owner == nil &&
		in.Status == nil && in.Effort == nil && in.DueDate == nil && in.CompletionDate == nil
}

// --- UseCase Outputs ---

type CreateIssueOutput struct {
	Issue Issue
}

type ListIssuesOutput struct {
	Issues []Issue
}

type DetailIssueOutput struct {
	Issue Issue
}

type UpdateIssueOutput struct {
	Issue Issue
}

type CloseIssueOutput struct {
	Issue Issue
}

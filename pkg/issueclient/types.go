package issueclient

import "time"

// Issue is the wire form of an issue record.
type Issue struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Owner          string    `json:"owner"`
	Status         string    `json:"status"`
	Effort         int       `json:"effort"`
	Created        time.Time `json:"created"`
	DueDate        string    `json:"dueDate"`
	CompletionDate string    `json:"completionDate"`
}

// CreateRequest is the body for POST /api/issues.
type CreateRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Owner          string     `json:"owner,omitempty"`
	Status         string     `json:"status,omitempty"`
	Effort         int        `json:"effort"`
	Created        *time.Time `json:"created,omitempty"`
	DueDate        string     `json:"dueDate,omitempty"`
	CompletionDate string     `json:"completionDate,omitempty"`
}

// Patch is the body for PUT /api/issues/:id. Nil fields are left untouched
// by the service.
type Patch struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	Owner          *string `json:"owner,omitempty"`
	Status         *string `json:"status,omitempty"`
	Effort         *int    `json:"effort,omitempty"`
	DueDate        *string `json:"dueDate,omitempty"`
	CompletionDate *string `json:"completionDate,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Owner == nil && p.Status == nil &&
		p.Effort == nil && p.DueDate == nil && p.CompletionDate == nil
}

type deleteResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

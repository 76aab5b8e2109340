package http

import (
	"strings"
	"time"

	"issue-tracker/internal/issue"
)

// --- Request DTOs ---

type createReq struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Owner          string     `json:"owner"`
	Status         string     `json:"status"`
	Effort         int        `json:"effort"`
	Created        *time.Time `json:"created"`
	DueDate        string     `json:"dueDate"`
	CompletionDate string     `json:"completionDate"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return issue.ErrTitleRequired
	}
	return nil
}

func (r createReq) toInput() issue.CreateIssueInput {
	in := issue.CreateIssueInput{
		Title:          r.Title,
		Description:    r.Description,
		Owner:          r.Owner,
		Status:         issue.Status(r.Status),
		Effort:         r.Effort,
		DueDate:        r.DueDate,
		CompletionDate: r.CompletionDate,
	}
	if r.Created != nil {
		in.Created = *r.Created
	}
	return in
}

// ---

// updateReq uses pointers so that absent JSON fields stay nil and are left
// untouched. id and created are not accepted.
type updateReq struct {
	ID             string  `json:"-"`
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Owner          *string `json:"owner"`
	Status         *string `json:"status"`
	Effort         *int    `json:"effort"`
	DueDate        *string `json:"dueDate"`
	CompletionDate *string `json:"completionDate"`
}

// validate checks only the fields present in the body.
func (r updateReq) validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return issue.ErrTitleRequired
	}
	return nil
}

func (r updateReq) toInput() issue.UpdateIssueInput {
	in := issue.UpdateIssueInput{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Owner:          r.Owner,
		Effort:         r.Effort,
		DueDate:        r.DueDate,
		CompletionDate: r.CompletionDate,
	}
	if r.Status != nil {
		s := issue.Status(*r.Status)
		in.Status = &s
	}
	return in
}

// --- Response DTOs ---

type issueResp struct {
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

func newIssueResp(i issue.Issue) issueResp {
	return issueResp{
		ID:             i.ID,
		Title:          i.Title,
		Description:    i.Description,
		Owner:          i.Owner,
		Status:         string(i.Status),
		Effort:         i.Effort,
		Created:        i.Created,
		DueDate:        i.DueDate,
		CompletionDate: i.CompletionDate,
	}
}

func (h *handler) newListResp(out issue.ListIssuesOutput) []issueResp {
	items := make([]issueResp, len(out.Issues))
	for i, iss := range out.Issues {
		items[i] = newIssueResp(iss)
	}
	return items
}

type deleteResp struct {
	Message string `json:"message"`
}

func (h *handler) newDeleteResp() deleteResp {
	return deleteResp{Message: "Deleted"}
}

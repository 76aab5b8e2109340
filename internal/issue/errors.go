package issue

import "errors"

var (
	ErrIssueNotFound  = errors.New("issue not found")
	ErrTitleRequired  = errors.New("title is required")
	ErrInvalidStatus  = errors.New("status must be one of New, On Going, Completed")
	ErrInvalidEffort  = errors.New("effort must be a non-negative number of days")
	ErrInvalidDate    = errors.New("dates must be empty or formatted as YYYY-MM-DD")
	ErrInvalidPayload = errors.New("invalid payload")
)

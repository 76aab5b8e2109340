package tracker

import "errors"

// Banner texts shown to the user.
const (
	MsgLoadFailed    = "Failed to load issues from server."
	MsgAddFailed     = "Failed to add issue."
	MsgUpdateFailed  = "Failed to update issue."
	MsgCloseFailed   = "Failed to close issue."
	MsgDeleteFailed  = "Failed to delete issue."
	MsgTitleRequired = "Title is required."
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidEffort = errors.New("effort must be a non-negative whole number")
	ErrInvalidDate   = errors.New("invalid date")
	ErrNotEditing    = errors.New("issue is not being edited")
	ErrUnknownIssue  = errors.New("issue is not in the list")
)

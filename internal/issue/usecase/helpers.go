package usecase

import (
	"strings"

	"issue-tracker/internal/issue"
)

// validateFields checks the fields shared by create and update. Nil pointers
// are skipped so partial updates only validate what they change.
func (uc *implUseCase) validateFields(title *string, status *issue.Status, effort *int, dates ...*string) error {
	if title != nil && strings.TrimSpace(*title) == "" {
		return issue.ErrTitleRequired
	}
	if status != nil && !status.Valid() {
		return issue.ErrInvalidStatus
	}
	if effort != nil && *effort < 0 {
		return issue.ErrInvalidEffort
	}
	for _, d := range dates {
		if d != nil && !issue.ValidDate(*d) {
			return issue.ErrInvalidDate
		}
	}
	return nil
}

// trimmed returns a pointer to the trimmed value, or nil for nil.
func (uc *implUseCase) trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

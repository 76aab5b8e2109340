package http

import (
	"errors"
	"net/http"

	"issue-tracker/internal/issue"
	pkgErrors "issue-tracker/pkg/errors"
)

// mapError translates domain and store errors into HTTP errors. storeStatus is
// the code reported for store failures, which differs per endpoint.
func (h *handler) mapError(err error, storeStatus int) error {
	switch {
	case errors.Is(err, issue.ErrIssueNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, issue.ErrTitleRequired),
		errors.Is(err, issue.ErrInvalidStatus),
		errors.Is(err, issue.ErrInvalidEffort),
		errors.Is(err, issue.ErrInvalidDate),
		errors.Is(err, issue.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(storeStatus, err.Error())
	}
}

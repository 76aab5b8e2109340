package http

import (
	"issue-tracker/internal/issue"
	"issue-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc issue.UseCase
}

// New creates a new HTTP handler for the issue domain.
func New(l log.Logger, uc issue.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

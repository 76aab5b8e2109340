package usecase

import (
	"issue-tracker/internal/issue/repository"
	"issue-tracker/pkg/log"
)

// implUseCase is the private implementation of issue.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new issue UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"issue-tracker/internal/issue"
	"issue-tracker/internal/issue/repository"
	"issue-tracker/pkg/log"
)

type record struct {
	seq   uint64
	issue issue.Issue
}

type implRepository struct {
	mu      sync.RWMutex
	records map[string]record
	seq     uint64
	l       log.Logger

	newID func() string
	now   func() time.Time
}

// New creates an in-process Repository. Data lives as long as the process.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		records: make(map[string]record),
		l:       l,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

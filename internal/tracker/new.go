package tracker

import (
	"sync"
	"time"

	"issue-tracker/pkg/datemath"
	"issue-tracker/pkg/issueclient"
	"issue-tracker/pkg/log"
)

// Controller keeps the client-side view of the issue list: the fetched
// issues, a status filter, at most one edit session, the add form and a
// single error banner. It is safe for concurrent use; network calls run
// without holding the lock.
type Controller struct {
	api   API
	l     log.Logger
	dates *datemath.Parser
	now   func() time.Time

	mu      sync.Mutex
	issues  []issueclient.Issue
	filter  string
	edit    *EditSession
	editSeq uint64
	form    AddForm
	banner  string
	loading bool
	loadSeq uint64

	// changes confirmed while a load is in flight
	inflight  int
	changeSeq uint64
	changes   []change
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l log.Logger) Option {
	return func(c *Controller) { c.l = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithDateParser sets the parser used for due and completion dates.
func WithDateParser(p *datemath.Parser) Option {
	return func(c *Controller) { c.dates = p }
}

// New creates a Controller over api.
func New(api API, opts ...Option) *Controller {
	c := &Controller{
		api:    api,
		l:      log.NewNop(),
		now:    time.Now,
		issues: []issueclient.Issue{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.dates == nil {
		c.dates, _ = datemath.NewParser("")
	}
	return c
}

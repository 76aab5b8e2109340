package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issue-tracker/internal/issue"
	repo "issue-tracker/internal/issue/repository"
	"issue-tracker/internal/issue/repository/memory"
)

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   issue.CreateIssueInput
		wantErr error
	}{
		{name: "valid", input: issue.CreateIssueInput{Title: " Fix login ", Owner: "alice", Effort: 2, Created: created}},
		{name: "blank title", input: issue.CreateIssueInput{Title: "   "}, wantErr: issue.ErrTitleRequired},
		{name: "bad status", input: issue.CreateIssueInput{Title: "t", Status: "Done"}, wantErr: issue.ErrInvalidStatus},
		{name: "negative effort", input: issue.CreateIssueInput{Title: "t", Effort: -1}, wantErr: issue.ErrInvalidEffort},
		{name: "bad due date", input: issue.CreateIssueInput{Title: "t", DueDate: "tomorrow"}, wantErr: issue.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockRepo{issue: issue.Issue{ID: "1", Title: "Fix login", Status: issue.StatusNew}}
			uc := New(m, &mockLogger{})

			out, err := uc.Create(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, m.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "1", out.Issue.ID)
			assert.Equal(t, "Fix login", m.createOpt.Title)
			assert.Equal(t, issue.StatusNew, m.createOpt.Status)
			assert.Equal(t, 2, m.createOpt.Effort)
			assert.True(t, m.createOpt.Created.Equal(created))
		})
	}
}

func TestCreateRepoError(t *testing.T) {
	m := &mockRepo{err: repo.ErrFailedToInsert}
	uc := New(m, &mockLogger{})

	_, err := uc.Create(context.Background(), issue.CreateIssueInput{Title: "t"})
	assert.ErrorIs(t, err, repo.ErrFailedToInsert)
}

func TestList(t *testing.T) {
	m := &mockRepo{list: []issue.Issue{{ID: "2"}, {ID: "1"}}}
	uc := New(m, &mockLogger{})

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []issue.Issue{{ID: "2"}, {ID: "1"}}, out.Issues)

	m.err = repo.ErrFailedToList
	_, err = uc.List(context.Background())
	assert.ErrorIs(t, err, repo.ErrFailedToList)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("only present fields are passed", func(t *testing.T) {
		m := &mockRepo{issue: issue.Issue{ID: "1", Title: "x"}}
		uc := New(m, &mockLogger{})

		out, err := uc.Update(ctx, issue.UpdateIssueInput{ID: "1", Title: ptr(" x ")})
		require.NoError(t, err)
		assert.Equal(t, "x", out.Issue.Title)
		assert.Equal(t, "x", *m.updateOpt.Title)
		assert.Nil(t, m.updateOpt.Owner)
		assert.Nil(t, m.updateOpt.Status)
		assert.Nil(t, m.updateOpt.Effort)
	})

	t.Run("not found", func(t *testing.T) {
		m := &mockRepo{}
		uc := New(m, &mockLogger{})

		_, err := uc.Update(ctx, issue.UpdateIssueInput{ID: "missing", Title: ptr("x")})
		assert.ErrorIs(t, err, issue.ErrIssueNotFound)
	})

	t.Run("empty patch reads current record", func(t *testing.T) {
		m := &mockRepo{issue: issue.Issue{ID: "1", Title: "keep"}}
		uc := New(m, &mockLogger{})

		out, err := uc.Update(ctx, issue.UpdateIssueInput{ID: "1"})
		require.NoError(t, err)
		assert.Equal(t, "keep", out.Issue.Title)
		assert.Equal(t, []string{"GetOneIssue"}, m.calls)
	})

	t.Run("any status transition allowed", func(t *testing.T) {
		m := &mockRepo{issue: issue.Issue{ID: "1", Status: issue.StatusNew}}
		uc := New(m, &mockLogger{})

		_, err := uc.Update(ctx, issue.UpdateIssueInput{ID: "1", Status: ptr(issue.StatusNew)})
		require.NoError(t, err)
		assert.Equal(t, issue.StatusNew, *m.updateOpt.Status)
	})

	t.Run("validation", func(t *testing.T) {
		m := &mockRepo{issue: issue.Issue{ID: "1"}}
		uc := New(m, &mockLogger{})

		_, err := uc.Update(ctx, issue.UpdateIssueInput{ID: "1", Title: ptr("")})
		assert.ErrorIs(t, err, issue.ErrTitleRequired)
		_, err = uc.Update(ctx, issue.UpdateIssueInput{ID: "1", Status: ptr(issue.Status("closed"))})
		assert.ErrorIs(t, err, issue.ErrInvalidStatus)
		_, err = uc.Update(ctx, issue.UpdateIssueInput{ID: "1", Effort: ptr(-3)})
		assert.ErrorIs(t, err, issue.ErrInvalidEffort)
		_, err = uc.Update(ctx, issue.UpdateIssueInput{ID: "1", CompletionDate: ptr("2026/01/01")})
		assert.ErrorIs(t, err, issue.ErrInvalidDate)
		assert.Empty(t, m.calls)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	m := &mockRepo{issue: issue.Issue{ID: "1"}}
	require.NoError(t, New(m, &mockLogger{}).Delete(ctx, "1"))

	m = &mockRepo{}
	assert.ErrorIs(t, New(m, &mockLogger{}).Delete(ctx, "1"), issue.ErrIssueNotFound)

	m = &mockRepo{err: repo.ErrFailedToDelete}
	assert.ErrorIs(t, New(m, &mockLogger{}).Delete(ctx, "1"), repo.ErrFailedToDelete)
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	store := memory.New(&mockLogger{})
	uc := New(store, &mockLogger{})

	for _, prior := range issue.Statuses {
		created, err := uc.Create(ctx, issue.CreateIssueInput{Title: "t", Status: prior})
		require.NoError(t, err)

		out, err := uc.Close(ctx, created.Issue.ID)
		require.NoError(t, err, prior)
		assert.Equal(t, issue.StatusCompleted, out.Issue.Status, prior)
		assert.Equal(t, created.Issue.Title, out.Issue.Title)
	}

	m := &mockRepo{issue: issue.Issue{ID: "1", Status: issue.StatusCompleted}}
	_, err := New(m, &mockLogger{}).Close(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, issue.StatusCompleted, m.status)

	_, err = uc.Close(ctx, "missing")
	assert.ErrorIs(t, err, issue.ErrIssueNotFound)
}

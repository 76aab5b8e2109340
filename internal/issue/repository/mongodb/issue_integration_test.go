package mongodb_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issue-tracker/internal/issue"
	repo "issue-tracker/internal/issue/repository"
	"issue-tracker/internal/issue/repository/mongodb"
	"issue-tracker/pkg/log"
	pkgMongo "issue-tracker/pkg/mongodb"
)

// newTestRepo connects to TRACKER_MONGO_TEST_URI and returns a repository over a
// throwaway collection. The test is skipped when the variable is unset.
func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	uri := os.Getenv("TRACKER_MONGO_TEST_URI")
	if uri == "" {
		t.Skip("TRACKER_MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	client, err := pkgMongo.Connect(ctx, pkgMongo.Config{URI: uri, Timeout: 5 * time.Second})
	require.NoError(t, err)

	db := client.Database("issue_tracker_test")
	coll := fmt.Sprintf("issues_%d", time.Now().UnixNano())
	require.NoError(t, mongodb.EnsureIndexes(ctx, db, coll))

	t.Cleanup(func() {
		_ = db.Collection(coll).Drop(context.Background())
		_ = pkgMongo.Disconnect(client, 5*time.Second)
	})
	return mongodb.New(db, coll, log.NewNop())
}

func TestMongoIssueLifecycle(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	older, err := r.CreateIssue(ctx, repo.CreateIssueOptions{Title: "older", Created: base})
	require.NoError(t, err)
	newer, err := r.CreateIssue(ctx, repo.CreateIssueOptions{Title: "newer", Owner: "alice", Effort: 2, Created: base.Add(time.Hour)})
	require.NoError(t, err)

	assert.NotEmpty(t, newer.ID)
	assert.Equal(t, issue.StatusNew, newer.Status)

	list, err := r.ListIssues(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	desc := "details"
	updated, err := r.UpdateIssue(ctx, repo.UpdateIssueOptions{ID: newer.ID, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "details", updated.Description)
	assert.Equal(t, "alice", updated.Owner)
	assert.Equal(t, 2, updated.Effort)
	assert.True(t, updated.Created.Equal(newer.Created))

	closed, err := r.SetIssueStatus(ctx, newer.ID, issue.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, issue.StatusCompleted, closed.Status)

	deleted, err := r.DeleteIssue(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, deleted.ID)

	got, err := r.GetOneIssue(ctx, repo.GetOneIssueOptions{ID: newer.ID})
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestMongoMissingIDs(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	title := "x"
	for _, id := range []string{"000000000000000000000000", "garbage"} {
		got, err := r.UpdateIssue(ctx, repo.UpdateIssueOptions{ID: id, Title: &title})
		require.NoError(t, err)
		assert.True(t, got.IsZero())

		got, err = r.DeleteIssue(ctx, id)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	}

	list, err := r.ListIssues(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

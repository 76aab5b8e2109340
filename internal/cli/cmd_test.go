package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issue-tracker/internal/httpserver"
	"issue-tracker/internal/tracker"
	"issue-tracker/pkg/issueclient"
	"issue-tracker/pkg/log"
)

var testNow = time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC) // Wednesday

// testApp starts the service over the in-memory store and returns an App
// pointed at it, plus a client for checking what the service holds.
func testApp(t *testing.T) (*App, string, *issueclient.Client) {
	t.Helper()
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:        5000,
		Mode:        gin.TestMode,
		StoreDriver: httpserver.StoreDriverMemory,
	})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	app := &App{
		NewAPI: func(baseURL string) tracker.API { return issueclient.NewClient(baseURL) },
		Now:    func() time.Time { return testNow },
	}
	return app, ts.URL, issueclient.NewClient(ts.URL)
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, apiURL string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--api", apiURL, "--tz", "UTC"}, args...))
	err := root.Execute()
	return buf.String(), err
}

func addIssue(t *testing.T, app *App, apiURL string, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, apiURL, append([]string{"add"}, args...)...)
	require.NoError(t, err, out)
	first := strings.SplitN(out, "\n", 2)[0]
	id := strings.TrimPrefix(first, "Created issue ")
	require.NotEmpty(t, id)
	return id
}

func TestAddAndList(t *testing.T) {
	app, url, _ := testApp(t)

	addIssue(t, app, url, "Fix login", "--owner", "alice", "--effort", "2")
	addIssue(t, app, url, "--title", "Add search", "--due", "tomorrow")

	out, err := executeCmd(t, app, url, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Less(t, strings.Index(out, "Add search"), strings.Index(out, "Fix login"), "newest first")
	assert.Contains(t, out, "2026-02-05")

	out, err = executeCmd(t, app, url, "list", "--status", "Completed")
	require.NoError(t, err)
	assert.Contains(t, out, "No issues.")

	_, err = executeCmd(t, app, url, "list", "--status", "Done")
	assert.ErrorContains(t, err, "unknown status")
}

func TestAddRequiresTitle(t *testing.T) {
	app, url, client := testApp(t)

	_, err := executeCmd(t, app, url, "add", "--owner", "alice")
	require.Error(t, err)
	assert.Equal(t, tracker.MsgTitleRequired, err.Error())
	assert.ErrorIs(t, err, tracker.ErrTitleRequired)

	issues, err := client.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEditSendsOnlyGivenFlags(t *testing.T) {
	app, url, client := testApp(t)
	id := addIssue(t, app, url, "Fix login", "--owner", "alice", "--effort", "2")

	out, err := executeCmd(t, app, url, "edit", id, "--owner", "bob", "--status", "On Going")
	require.NoError(t, err, out)
	assert.Contains(t, out, "bob")

	stored, err := client.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Fix login", stored.Title)
	assert.Equal(t, "bob", stored.Owner)
	assert.Equal(t, "On Going", stored.Status)
	assert.Equal(t, 2, stored.Effort)

	_, err = executeCmd(t, app, url, "edit", id, "--effort", "lots")
	assert.ErrorIs(t, err, tracker.ErrInvalidEffort)

	_, err = executeCmd(t, app, url, "edit", "missing", "--owner", "x")
	assert.ErrorIs(t, err, tracker.ErrUnknownIssue)
}

func TestCloseAndDelete(t *testing.T) {
	app, url, client := testApp(t)
	id := addIssue(t, app, url, "Fix login")

	out, err := executeCmd(t, app, url, "close", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Completed")

	out, err = executeCmd(t, app, url, "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted issue "+id)

	_, err = client.Get(context.Background(), id)
	assert.ErrorIs(t, err, issueclient.ErrNotFound)

	_, err = executeCmd(t, app, url, "delete", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), tracker.MsgDeleteFailed)
}

func TestServiceUnavailable(t *testing.T) {
	app, _, _ := testApp(t)
	ts := httptest.NewServer(nil)
	url := ts.URL
	ts.Close()

	_, err := executeCmd(t, app, url, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), tracker.MsgLoadFailed)
}

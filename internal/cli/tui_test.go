package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issue-tracker/internal/tracker"
	"issue-tracker/pkg/issueclient"
)

// tuiDriver feeds messages to the model and runs the controller work the
// model hands back, the way the bubbletea runtime would.
type tuiDriver struct {
	t *testing.T
	m model
}

func (d *tuiDriver) send(msg tea.Msg) {
	d.t.Helper()
	next, cmd := d.m.Update(msg)
	d.m = next.(model)
	d.run(cmd)
}

func (d *tuiDriver) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case loadedMsg, actionMsg:
		d.send(msg)
	case tea.BatchMsg:
		for _, c := range msg {
			d.run(c)
		}
	}
}

func (d *tuiDriver) key(s string) {
	d.t.Helper()
	switch s {
	case "enter":
		d.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		d.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "tab":
		d.send(tea.KeyMsg{Type: tea.KeyTab})
	default:
		d.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func (d *tuiDriver) typeText(s string) {
	d.t.Helper()
	for _, r := range s {
		d.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newDriver(t *testing.T) (*tuiDriver, *issueclient.Client) {
	t.Helper()
	app, url, client := testApp(t)
	app.apiURL = url
	app.timezone = "UTC"
	c, err := app.controller(true)
	require.NoError(t, err)

	d := &tuiDriver{t: t, m: newModel(context.Background(), c)}
	d.run(d.m.Init())
	return d, client
}

func TestTUIAddEditCloseDelete(t *testing.T) {
	d, client := newDriver(t)
	ctx := context.Background()
	assert.Contains(t, d.m.View(), "No issues.")

	// add
	d.key("a")
	require.Equal(t, modeAdd, d.m.mode)
	d.typeText("Fix login")
	d.key("tab")
	d.key("tab")
	d.typeText("alice")
	d.key("enter")
	require.Equal(t, modeBrowse, d.m.mode)

	issues, err := client.List(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	id := issues[0].ID
	assert.Equal(t, "alice", issues[0].Owner)
	assert.Contains(t, d.m.View(), "Fix login")

	// edit the title inline
	d.key("e")
	require.Equal(t, modeEdit, d.m.mode)
	d.typeText("!")
	session, ok := d.m.ctrl.Editing()
	require.True(t, ok)
	assert.Equal(t, "Fix login!", session.Scratch.Get(tracker.FieldTitle))
	d.key("enter")
	assert.Equal(t, modeBrowse, d.m.mode)

	stored, err := client.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Fix login!", stored.Title)
	assert.Equal(t, "alice", stored.Owner)

	// close
	d.key("c")
	stored, err = client.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, tracker.StatusCompleted, stored.Status)

	// filter cycles All -> New -> On Going -> Completed
	d.key("f")
	assert.Equal(t, tracker.StatusNew, d.m.ctrl.Filter())
	assert.Contains(t, d.m.View(), "No issues.")
	d.key("f")
	d.key("f")
	assert.Equal(t, tracker.StatusCompleted, d.m.ctrl.Filter())
	assert.Contains(t, d.m.View(), "Fix login!")

	// delete asks first
	d.key("d")
	d.key("n")
	assert.Len(t, d.m.ctrl.Issues(), 1)
	d.key("d")
	d.key("y")
	assert.Empty(t, d.m.ctrl.Issues())

	_, err = client.Get(ctx, id)
	assert.ErrorIs(t, err, issueclient.ErrNotFound)
}

func TestTUIFailedAddKeepsForm(t *testing.T) {
	d, _ := newDriver(t)

	d.key("a")
	d.key("tab")
	d.typeText("no title given")
	d.key("enter")

	assert.Equal(t, modeAdd, d.m.mode, "stays in the form")
	assert.Contains(t, d.m.View(), tracker.MsgTitleRequired)

	d.key("esc")
	assert.Equal(t, modeBrowse, d.m.mode)
	assert.Equal(t, "no title given", d.m.ctrl.Form().Description)
}

func TestTUICancelEdit(t *testing.T) {
	d, client := newDriver(t)
	_, err := client.Create(context.Background(), issueclient.CreateRequest{Title: "Keep"})
	require.NoError(t, err)
	d.key("r")

	d.key("e")
	d.typeText("zzz")
	d.key("esc")

	assert.Equal(t, modeBrowse, d.m.mode)
	_, editing := d.m.ctrl.Editing()
	assert.False(t, editing)
	i := d.m.ctrl.Issues()[0]
	assert.Equal(t, "Keep", i.Title)
}

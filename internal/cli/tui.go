package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"issue-tracker/internal/tracker"
	"issue-tracker/pkg/issueclient"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit issues interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.controller(true)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newModel(cmd.Context(), c),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeAdd
)

// Results of work done off the UI goroutine.
type (
	loadedMsg struct{ err error }
	actionMsg struct{ err error }
)

var addLabels = []string{"Title", "Description", "Owner", "Effort", "Due date", "Completion date"}

var editLabels = map[tracker.Field]string{
	tracker.FieldTitle:          "Title",
	tracker.FieldDescription:    "Description",
	tracker.FieldOwner:          "Owner",
	tracker.FieldStatus:         "Status",
	tracker.FieldEffort:         "Effort",
	tracker.FieldDueDate:        "Due date",
	tracker.FieldCompletionDate: "Completion date",
}

var filterCycle = append([]string{""}, tracker.Statuses...)

type model struct {
	ctx  context.Context
	ctrl *tracker.Controller

	mode          mode
	cursor        int
	editID        string
	inputs        []textinput.Model
	focus         int
	confirmDelete string
	busy          bool
	width         int
}

func newModel(ctx context.Context, c *tracker.Controller) model {
	return model{ctx: ctx, ctrl: c, width: 100}
}

func (m model) Init() tea.Cmd {
	return m.load()
}

func (m model) load() tea.Cmd {
	ctx, c := m.ctx, m.ctrl
	return func() tea.Msg { return loadedMsg{err: c.Load(ctx)} }
}

func (m model) run(action func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg { return actionMsg{err: action(ctx)} }
}

func (m model) selected() (issueclient.Issue, bool) {
	visible := m.ctrl.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return issueclient.Issue{}, false
	}
	return visible[m.cursor], true
}

func (m *model) clampCursor() {
	n := len(m.ctrl.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func newInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Width = 48
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	return ti
}

func (m *model) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case loadedMsg:
		m.busy = false
		m.clampCursor()
		return m, nil

	case actionMsg:
		m.busy = false
		if msg.err == nil {
			if m.mode == modeEdit {
				if _, editing := m.ctrl.Editing(); !editing {
					m.leaveForm()
				}
			}
			if m.mode == modeAdd {
				m.leaveForm()
				m.cursor = 0
			}
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeAdd:
			return m.updateAdd(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m *model) leaveForm() {
	m.mode = modeBrowse
	m.inputs = nil
	m.focus = 0
	m.editID = ""
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.confirmDelete != "" {
		id := m.confirmDelete
		m.confirmDelete = ""
		if key == "y" {
			m.busy = true
			return m, m.run(func(ctx context.Context) error { return m.ctrl.Remove(ctx, id) })
		}
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.ctrl.Visible())-1 {
			m.cursor++
		}
	case "f":
		current := m.ctrl.Filter()
		next := 0
		for i, s := range filterCycle {
			if s == current {
				next = (i + 1) % len(filterCycle)
			}
		}
		m.ctrl.SetFilter(filterCycle[next])
		m.cursor = 0
	case "r":
		m.busy = true
		return m, m.load()
	case "esc":
		m.ctrl.DismissBanner()
	case "a":
		form := m.ctrl.Form()
		m.mode = modeAdd
		m.inputs = []textinput.Model{
			newInput(form.Title), newInput(form.Description), newInput(form.Owner),
			newInput(form.Effort), newInput(form.DueDate), newInput(form.CompletionDate),
		}
		m.focus = 0
		m.inputs[0].Focus()
	case "e", "enter":
		i, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.ctrl.BeginEdit(i.ID); err != nil {
			return m, nil
		}
		session, _ := m.ctrl.Editing()
		m.mode = modeEdit
		m.editID = i.ID
		m.inputs = make([]textinput.Model, len(tracker.Fields))
		for idx, f := range tracker.Fields {
			m.inputs[idx] = newInput(session.Scratch.Get(f))
		}
		m.focus = 0
		m.inputs[0].Focus()
	case "c":
		i, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, m.run(func(ctx context.Context) error {
			_, err := m.ctrl.Close(ctx, i.ID)
			return err
		})
	case "d":
		if i, ok := m.selected(); ok {
			m.confirmDelete = i.ID
		}
	}
	return m, nil
}

func (m model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctrl.CancelEdit(m.editID)
		m.leaveForm()
		return m, nil
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "enter":
		id := m.editID
		m.busy = true
		return m, m.run(func(ctx context.Context) error {
			_, err := m.ctrl.CommitEdit(ctx, id)
			return err
		})
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.ctrl.UpdateScratch(m.editID, tracker.Fields[m.focus], m.inputs[m.focus].Value())
	return m, cmd
}

func (m model) formFromInputs() tracker.AddForm {
	return tracker.AddForm{
		Title:          m.inputs[0].Value(),
		Description:    m.inputs[1].Value(),
		Owner:          m.inputs[2].Value(),
		Effort:         m.inputs[3].Value(),
		DueDate:        m.inputs[4].Value(),
		CompletionDate: m.inputs[5].Value(),
	}
}

func (m model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctrl.SetForm(m.formFromInputs())
		m.leaveForm()
		return m, nil
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "enter":
		form := m.formFromInputs()
		m.busy = true
		return m, m.run(func(ctx context.Context) error {
			_, err := m.ctrl.Add(ctx, form)
			return err
		})
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	filter := m.ctrl.Filter()
	if filter == "" {
		filter = "All"
	}
	b.WriteString(StyleHeader.Render("Issues"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  filter: %s", filter)))
	if m.busy || m.ctrl.Loading() {
		b.WriteString(StyleDim.Render("  working…"))
	}
	b.WriteString("\n")

	if banner := m.ctrl.Banner(); banner != "" {
		b.WriteString(StyleRed.Render(banner))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.ctrl.Visible()
	if len(visible) == 0 {
		b.WriteString(StyleDim.Render("No issues."))
		b.WriteString("\n")
	}
	idW := idWidth(visible)
	for idx, i := range visible {
		marker := "  "
		if idx == m.cursor {
			marker = StyleHeader.Render("› ")
		}
		row := FormatIssueRow(i, idW)
		if m.width > 4 {
			row = lipgloss.NewStyle().MaxWidth(m.width - 2).Render(row)
		}
		b.WriteString(marker + row + "\n")
	}

	switch m.mode {
	case modeEdit:
		b.WriteString("\n" + StyleBold.Render("Edit "+m.editID) + "\n")
		for idx, f := range tracker.Fields {
			b.WriteString(m.formLine(idx, editLabels[f]))
		}
		b.WriteString(StyleDim.Render("enter save · esc cancel · tab next field") + "\n")
	case modeAdd:
		b.WriteString("\n" + StyleBold.Render("New issue") + "\n")
		for idx, label := range addLabels {
			b.WriteString(m.formLine(idx, label))
		}
		b.WriteString(StyleDim.Render("enter add · esc back · tab next field") + "\n")
	default:
		if m.confirmDelete != "" {
			b.WriteString("\n" + StyleRed.Render("Delete "+m.confirmDelete+"? (y/N)") + "\n")
		}
		b.WriteString("\n" + StyleDim.Render("j/k move · e edit · a add · c close · d delete · f filter · r reload · q quit") + "\n")
	}

	return b.String()
}

func (m model) formLine(idx int, label string) string {
	style := StyleDim
	if idx == m.focus {
		style = StyleBlue
	}
	return fmt.Sprintf("  %s %s\n", style.Render(pad(label, 16)), m.inputs[idx].View())
}

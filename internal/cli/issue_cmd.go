package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"issue-tracker/internal/tracker"
)

// bannerError reports the controller's banner, so the CLI and the UI say the
// same thing, while keeping the cause reachable through errors.Is.
type bannerError struct {
	banner string
	err    error
}

func (e *bannerError) Error() string {
	if strings.Contains(strings.ToLower(e.banner), strings.ToLower(e.err.Error())) {
		return e.banner
	}
	return e.banner + " " + e.err.Error()
}

func (e *bannerError) Unwrap() error { return e.err }

func actionError(c *tracker.Controller, err error) error {
	if b := c.Banner(); b != "" {
		return &bannerError{banner: b, err: err}
	}
	return err
}

func validStatus(s string) error {
	if !slices.Contains(tracker.Statuses, s) {
		return fmt.Errorf("unknown status %q (want one of %s)", s, strings.Join(tracker.Statuses, ", "))
	}
	return nil
}

func newListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" {
				if err := validStatus(status); err != nil {
					return err
				}
			}

			c, err := app.controller(false)
			if err != nil {
				return err
			}
			if err := c.Load(cmd.Context()); err != nil {
				return actionError(c, err)
			}
			c.SetFilter(status)

			fmt.Fprint(cmd.OutOrStdout(), FormatIssueTable(c.Visible()))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show issues with this status (New, On Going, Completed)")

	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	var form tracker.AddForm

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create an issue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				form.Title = args[0]
			}

			c, err := app.controller(false)
			if err != nil {
				return err
			}
			created, err := c.Add(cmd.Context(), form)
			if err != nil {
				return actionError(c, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created issue %s\n", created.ID)
			fmt.Fprint(cmd.OutOrStdout(), FormatIssue(created))
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Title, "title", "", "Issue title")
	cmd.Flags().StringVar(&form.Description, "description", "", "Longer description")
	cmd.Flags().StringVar(&form.Owner, "owner", "", "Person responsible")
	cmd.Flags().StringVar(&form.Effort, "effort", "", "Estimated effort in days")
	cmd.Flags().StringVar(&form.DueDate, "due", "", "Due date (YYYY-MM-DD, tomorrow, in 3 days, next friday)")
	cmd.Flags().StringVar(&form.CompletionDate, "completed", "", "Completion date")

	return cmd
}

// editFlags maps flag names to the field they edit.
var editFlags = []struct {
	flag  string
	field tracker.Field
	usage string
}{
	{"title", tracker.FieldTitle, "New title"},
	{"description", tracker.FieldDescription, "New description"},
	{"owner", tracker.FieldOwner, "New owner"},
	{"status", tracker.FieldStatus, "New status (New, On Going, Completed)"},
	{"effort", tracker.FieldEffort, "New effort in days"},
	{"due", tracker.FieldDueDate, "New due date; empty clears it"},
	{"completed", tracker.FieldCompletionDate, "New completion date; empty clears it"},
}

func newEditCmd(app *App) *cobra.Command {
	values := make(map[string]*string, len(editFlags))

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of an issue; only the flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if cmd.Flags().Changed("status") {
				if err := validStatus(*values["status"]); err != nil {
					return err
				}
			}

			c, err := app.controller(false)
			if err != nil {
				return err
			}
			if err := c.Load(cmd.Context()); err != nil {
				return actionError(c, err)
			}
			if err := c.BeginEdit(id); err != nil {
				return fmt.Errorf("issue %s: %w", id, err)
			}
			for _, ef := range editFlags {
				if cmd.Flags().Changed(ef.flag) {
					c.UpdateScratch(id, ef.field, *values[ef.flag])
				}
			}

			updated, err := c.CommitEdit(cmd.Context(), id)
			if err != nil {
				return actionError(c, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), FormatIssue(updated))
			return nil
		},
	}

	for _, ef := range editFlags {
		values[ef.flag] = cmd.Flags().String(ef.flag, "", ef.usage)
	}

	return cmd
}

func newCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close ID",
		Short: "Mark an issue Completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.controller(false)
			if err != nil {
				return err
			}
			closed, err := c.Close(cmd.Context(), args[0])
			if err != nil {
				return actionError(c, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Closed issue %s (%s)\n", closed.ID, StatusStyle(closed.Status).Render(closed.Status))
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete an issue permanently",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.controller(false)
			if err != nil {
				return err
			}
			if err := c.Remove(cmd.Context(), args[0]); err != nil {
				return actionError(c, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted issue %s\n", args[0])
			return nil
		},
	}
}

package usecase

import (
	"context"

	"issue-tracker/internal/issue"
	repo "issue-tracker/internal/issue/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo records the options it was called with and returns canned values.
type mockRepo struct {
	issue issue.Issue
	list  []issue.Issue
	err   error

	createOpt repo.CreateIssueOptions
	updateOpt repo.UpdateIssueOptions
	status    issue.Status
	calls     []string
}

func (m *mockRepo) CreateIssue(ctx context.Context, opt repo.CreateIssueOptions) (issue.Issue, error) {
	m.calls = append(m.calls, "CreateIssue")
	m.createOpt = opt
	return m.issue, m.err
}

func (m *mockRepo) GetOneIssue(ctx context.Context, opt repo.GetOneIssueOptions) (issue.Issue, error) {
	m.calls = append(m.calls, "GetOneIssue")
	return m.issue, m.err
}

func (m *mockRepo) ListIssues(ctx context.Context) ([]issue.Issue, error) {
	m.calls = append(m.calls, "ListIssues")
	return m.list, m.err
}

func (m *mockRepo) UpdateIssue(ctx context.Context, opt repo.UpdateIssueOptions) (issue.Issue, error) {
	m.calls = append(m.calls, "UpdateIssue")
	m.updateOpt = opt
	return m.issue, m.err
}

func (m *mockRepo) DeleteIssue(ctx context.Context, id string) (issue.Issue, error) {
	m.calls = append(m.calls, "DeleteIssue")
	return m.issue, m.err
}

func (m *mockRepo) SetIssueStatus(ctx context.Context, id string, status issue.Status) (issue.Issue, error) {
	m.calls = append(m.calls, "SetIssueStatus")
	m.status = status
	return m.issue, m.err
}

package issue

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateIssueInput) (CreateIssueOutput, error)
	List(ctx context.Context) (ListIssuesOutput, error)
	Detail(ctx context.Context, id string) (DetailIssueOutput, error)
	Update(ctx context.Context, input UpdateIssueInput) (UpdateIssueOutput, error)
	Delete(ctx context.Context, id string) error
	// Close forces the issue to Completed regardless of its current status.
	Close(ctx context.Context, id string) (CloseIssueOutput, error)
}

package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"issue-tracker/internal/issue"
)

// issueDocument is the stored shape of an Issue.
type issueDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Description    string             `bson:"description"`
	Owner          string             `bson:"owner"`
	Status         string             `bson:"status"`
	Effort         int                `bson:"effort"`
	Created        time.Time          `bson:"created"`
	DueDate        string             `bson:"dueDate"`
	CompletionDate string             `bson:"completionDate"`
}

func (d issueDocument) toDomain() issue.Issue {
	return issue.Issue{
		ID:             d.ID.Hex(),
		Title:          d.Title,
		Description:    d.Description,
		Owner:          d.Owner,
		Status:         issue.Status(d.Status),
		Effort:         d.Effort,
		Created:        d.Created,
		DueDate:        d.DueDate,
		CompletionDate: d.CompletionDate,
	}
}

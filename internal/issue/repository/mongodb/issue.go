package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"issue-tracker/internal/issue"
	repo "issue-tracker/internal/issue/repository"
)

// CreateIssue inserts a new Issue document and returns the stored entity.
func (r *implRepository) CreateIssue(ctx context.Context, opt repo.CreateIssueOptions) (issue.Issue, error) {
	created := opt.Created
	if created.IsZero() {
		created = time.Now()
	}
	status := opt.Status
	if status == "" {
		status = issue.StatusNew
	}

	doc := issueDocument{
		ID:             primitive.NewObjectID(),
		Title:          opt.Title,
		Description:    opt.Description,
		Owner:          opt.Owner,
		Status:         string(status),
		Effort:         opt.Effort,
		Created:        created.UTC().Truncate(time.Millisecond),
		DueDate:        opt.DueDate,
		CompletionDate: opt.CompletionDate,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateIssue"), err)
		return issue.Issue{}, repo.ErrFailedToInsert
	}
	return doc.toDomain(), nil
}

// GetOneIssue retrieves a single Issue by ID.
// Returns zero-value Issue when not found.
func (r *implRepository) GetOneIssue(ctx context.Context, opt repo.GetOneIssueOptions) (issue.Issue, error) {
	filter, ok := r.buildIDFilter(opt.ID)
	if !ok {
		return issue.Issue{}, nil
	}

	var doc issueDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return issue.Issue{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneIssue"), err)
		return issue.Issue{}, repo.ErrFailedToGet
	}
	return doc.toDomain(), nil
}

// ListIssues returns every Issue, newest first.
func (r *implRepository) ListIssues(ctx context.Context) ([]issue.Issue, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIssues"), err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	issues := make([]issue.Issue, 0)
	for cur.Next(ctx) {
		var doc issueDocument
		if err := cur.Decode(&doc); err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListIssues"), err)
			return nil, repo.ErrFailedToList
		}
		issues = append(issues, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		r.l.Errorf(ctx, "%s cursor: %v", r.dsn("ListIssues"), err)
		return nil, repo.ErrFailedToList
	}
	return issues, nil
}

// UpdateIssue applies the non-nil fields of opt and returns the updated entity.
// Returns zero-value Issue when not found.
func (r *implRepository) UpdateIssue(ctx context.Context, opt repo.UpdateIssueOptions) (issue.Issue, error) {
	set := r.buildUpdateSet(opt)
	if len(set) == 0 {
		return r.GetOneIssue(ctx, repo.GetOneIssueOptions{ID: opt.ID})
	}
	return r.findAndSet(ctx, "UpdateIssue", opt.ID, set)
}

// SetIssueStatus writes only the status field.
func (r *implRepository) SetIssueStatus(ctx context.Context, id string, status issue.Status) (issue.Issue, error) {
	return r.findAndSet(ctx, "SetIssueStatus", id, bson.M{"status": string(status)})
}

// DeleteIssue removes an Issue by ID and returns the removed entity.
// Returns zero-value Issue when not found.
func (r *implRepository) DeleteIssue(ctx context.Context, id string) (issue.Issue, error) {
	filter, ok := r.buildIDFilter(id)
	if !ok {
		return issue.Issue{}, nil
	}

	var doc issueDocument
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return issue.Issue{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteIssue"), err)
		return issue.Issue{}, repo.ErrFailedToDelete
	}
	return doc.toDomain(), nil
}

func (r *implRepository) findAndSet(ctx context.Context, method, id string, set bson.M) (issue.Issue, error) {
	filter, ok := r.buildIDFilter(id)
	if !ok {
		return issue.Issue{}, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc issueDocument
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return issue.Issue{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return issue.Issue{}, repo.ErrFailedToUpdate
	}
	return doc.toDomain(), nil
}

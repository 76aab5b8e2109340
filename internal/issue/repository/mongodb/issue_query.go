package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	repo "issue-tracker/internal/issue/repository"
)

// buildIDFilter parses id into an _id filter. ok is false when id cannot
// name any stored document.
func (r *implRepository) buildIDFilter(id string) (bson.M, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	return bson.M{"_id": oid}, true
}

// buildUpdateSet builds the $set document for UpdateIssue. Only non-nil
// options are written, so concurrent patches touching different fields do
// not clobber each other.
func (r *implRepository) buildUpdateSet(opt repo.UpdateIssueOptions) bson.M {
	set := bson.M{}
	if opt.Title != nil {
		set["title"] = *opt.Title
	}
	if opt.Description != nil {
		set["description"] = *opt.Description
	}
	if opt.Owner != nil {
		set["owner"] = *opt.Owner
	}
	if opt.Status != nil {
		set["status"] = string(*opt.Status)
	}
	if opt.Effort != nil {
		set["effort"] = *opt.Effort
	}
	if opt.DueDate != nil {
		set["dueDate"] = *opt.DueDate
	}
	if opt.CompletionDate != nil {
		set["completionDate"] = *opt.CompletionDate
	}
	return set
}

package todos

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListQuery holds the filter, sort and pagination parameters for listing
// a user's todos. All filters are conjunctive.
type ListQuery struct {
	IsCompleted *bool
	Priority    string
	Category    string
	Search      string
	SortBy      string
	Order       string
	Page        int
	Limit       int
}

// Sortable field whitelist. Client-supplied keys outside this set fall
// back to createdAt instead of being passed through to the store.
var sortFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"dueDate":   true,
	"priority":  true,
	"title":     true,
}

// Filter builds the owner-scoped query document. The owner predicate is
// always present; filters are ANDed on top, and the search term matches
// title or description as a case-insensitive substring.
func (q *ListQuery) Filter(userID string) bson.M {
	filter := bson.M{"userId": userID}

	if q.IsCompleted != nil {
		filter["isCompleted"] = *q.IsCompleted
	}
	if q.Priority != "" {
		filter["priority"] = q.Priority
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	return filter
}

// Sort returns the sort document, defaulting to createdAt descending.
func (q *ListQuery) Sort() bson.D {
	field := q.SortBy
	if !sortFields[field] {
		field = "createdAt"
	}

	direction := -1
	if q.Order == "asc" {
		direction = 1
	}

	return bson.D{{Key: field, Value: direction}}
}

// Skip returns the number of documents to skip for the requested page.
func (q *ListQuery) Skip() int64 {
	return int64((q.Page - 1) * q.Limit)
}

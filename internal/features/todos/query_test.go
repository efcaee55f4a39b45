package todos

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilter_OwnerAlwaysPresent(t *testing.T) {
	q := &ListQuery{}
	filter := q.Filter("user123")

	require.Equal(t, bson.M{"userId": "user123"}, filter)
}

func TestFilter_Conjunctive(t *testing.T) {
	completed := true
	q := &ListQuery{
		IsCompleted: &completed,
		Priority:    PriorityHigh,
		Category:    CategoryWork,
	}
	filter := q.Filter("user123")

	require.Equal(t, "user123", filter["userId"])
	require.Equal(t, true, filter["isCompleted"])
	require.Equal(t, PriorityHigh, filter["priority"])
	require.Equal(t, CategoryWork, filter["category"])
}

func TestFilter_SearchMatchesTitleOrDescription(t *testing.T) {
	q := &ListQuery{Search: "milk"}
	filter := q.Filter("user123")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	title := or[0].(bson.M)["title"].(primitive.Regex)
	require.Equal(t, "milk", title.Pattern)
	require.Equal(t, "i", title.Options)

	desc := or[1].(bson.M)["description"].(primitive.Regex)
	require.Equal(t, "milk", desc.Pattern)
}

func TestFilter_SearchEscapesRegexMetacharacters(t *testing.T) {
	q := &ListQuery{Search: "c++ (v2)"}
	filter := q.Filter("user123")

	or := filter["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(primitive.Regex)
	require.Equal(t, `c\+\+ \(v2\)`, title.Pattern)
}

func TestSort_DefaultAndDirections(t *testing.T) {
	q := &ListQuery{}
	require.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, q.Sort())

	q = &ListQuery{SortBy: "dueDate", Order: "asc"}
	require.Equal(t, bson.D{{Key: "dueDate", Value: 1}}, q.Sort())

	q = &ListQuery{SortBy: "priority", Order: "desc"}
	require.Equal(t, bson.D{{Key: "priority", Value: -1}}, q.Sort())
}

func TestSort_UnknownFieldFallsBack(t *testing.T) {
	// Arbitrary client-supplied keys never reach the store.
	q := &ListQuery{SortBy: "$where", Order: "asc"}
	require.Equal(t, bson.D{{Key: "createdAt", Value: 1}}, q.Sort())

	q = &ListQuery{SortBy: "password"}
	require.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, q.Sort())
}

func TestSkip(t *testing.T) {
	q := &ListQuery{Page: 1, Limit: 10}
	require.Equal(t, int64(0), q.Skip())

	q = &ListQuery{Page: 3, Limit: 10}
	require.Equal(t, int64(20), q.Skip())
}

package todos

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/codetern/gotasks/pkg/errors"
)

// Repository owns persistence for todos. Every query carries the owner
// predicate, so a todo belonging to another user is indistinguishable
// from a missing one.
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("todos")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "isCompleted", Value: 1},
			{Key: "priority", Value: 1},
			{Key: "dueDate", Value: 1},
		}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

// Create inserts a new todo owned by todo.UserID.
func (r *Repository) Create(ctx context.Context, todo *Todo) error {
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, todo)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		todo.ID = oid
	}
	return nil
}

// GetByID returns the todo with the given id owned by userID. A malformed
// id or a todo owned by someone else both surface as ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id, userID string) (*Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	var todo Todo
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "userId": userID}).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &todo, nil
}

// Save writes back a todo previously loaded with GetByID. The filter
// keeps the owner predicate so the document cannot change hands.
func (r *Repository) Save(ctx context.Context, todo *Todo) error {
	todo.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": todo.ID, "userId": todo.UserID}, todo)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a single todo owned by userID.
func (r *Repository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "userId": userID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMany removes the given ids that are owned by userID, silently
// skipping malformed ids and todos that belong to other users. It
// returns the number of documents actually removed.
func (r *Repository) DeleteMany(ctx context.Context, ids []string, userID string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	if len(oids) == 0 {
		return 0, nil
	}

	result, err := r.collection.DeleteMany(ctx, bson.M{
		"_id":    bson.M{"$in": oids},
		"userId": userID,
	})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

// DeleteAllByUser removes every todo owned by userID. Used by the account
// deletion cascade.
func (r *Repository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// List returns one page of todos matching the query plus the total count
// of matching documents.
func (r *Repository) List(ctx context.Context, userID string, q *ListQuery) ([]Todo, int64, error) {
	filter := q.Filter(userID)

	opts := options.Find().
		SetSort(q.Sort()).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var todos []Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, 0, err
	}
	if todos == nil {
		todos = []Todo{}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return todos, total, nil
}

// ListStats computes the unfiltered owner snapshot in a single $group pass.
func (r *Repository) ListStats(ctx context.Context, userID string) (*ListStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"total":     bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$isCompleted", true}}, 1, 0}}},
			"pending":   bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$isCompleted", false}}, 1, 0}}},
			"highPriority": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$priority", PriorityHigh}}, 1, 0,
			}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []ListStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return &ListStats{}, nil
	}
	return &results[0], nil
}

// Dashboard computes the grouped dashboard counts in one $facet pass.
// Today's window is [start-of-today, start-of-tomorrow) in server-local
// time; overdue is any incomplete todo due before start-of-today.
func (r *Repository) Dashboard(ctx context.Context, userID string, now time.Time) (*DashboardStats, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$facet", Value: bson.M{
			"overview": bson.A{
				bson.M{"$group": bson.M{
					"_id":       nil,
					"total":     bson.M{"$sum": 1},
					"completed": bson.M{"$sum": bson.M{"$cond": bson.A{"$isCompleted", 1, 0}}},
					"pending":   bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$isCompleted", false}}, 1, 0}}},
				}},
			},
			"byPriority": bson.A{
				bson.M{"$group": bson.M{"_id": "$priority", "count": bson.M{"$sum": 1}}},
			},
			"byCategory": bson.A{
				bson.M{"$group": bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}},
			},
			"todayDue": bson.A{
				bson.M{"$match": bson.M{
					"dueDate":     bson.M{"$gte": today, "$lt": tomorrow},
					"isCompleted": false,
				}},
				bson.M{"$count": "count"},
			},
			"overdue": bson.A{
				bson.M{"$match": bson.M{
					"dueDate":     bson.M{"$lt": today},
					"isCompleted": false,
				}},
				bson.M{"$count": "count"},
			},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []dashboardFacets
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return newDashboardStats(&dashboardFacets{}), nil
	}
	return newDashboardStats(&results[0]), nil
}

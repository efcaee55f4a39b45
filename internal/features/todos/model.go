package todos

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Priority values
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Category values
const (
	CategoryPersonal  = "personal"
	CategoryWork      = "work"
	CategoryShopping  = "shopping"
	CategoryHealth    = "health"
	CategoryFinance   = "finance"
	CategoryEducation = "education"
	CategoryOther     = "other"
)

// Subtask is an owned sub-structure of a todo with no independent identity.
type Subtask struct {
	Title       string `bson:"title" json:"title"`
	IsCompleted bool   `bson:"isCompleted" json:"isCompleted"`
}

// Attachment holds file metadata only; the file itself is not stored here.
type Attachment struct {
	Filename string `bson:"filename" json:"filename"`
	URL      string `bson:"url" json:"url"`
	FileType string `bson:"fileType" json:"fileType"`
}

// Todo represents a task owned by a single user. IsOverdue and
// TimeRemaining are computed at serialization time, never persisted.
type Todo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	IsCompleted bool               `bson:"isCompleted" json:"isCompleted"`
	Priority    string             `bson:"priority" json:"priority" enums:"low,medium,high"`
	DueDate     *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	DueTime     string             `bson:"dueTime,omitempty" json:"dueTime,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`
	Subtasks    []Subtask          `bson:"subtasks" json:"subtasks"`
	Attachments []Attachment       `bson:"attachments" json:"attachments"`
	Reminder    bool               `bson:"reminder" json:"reminder"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`

	IsOverdue     bool    `bson:"-" json:"isOverdue"`
	TimeRemaining *string `bson:"-" json:"timeRemaining"`
}

// OverdueAt reports whether the todo is past due and still open.
func (t *Todo) OverdueAt(now time.Time) bool {
	return t.DueDate != nil && !t.IsCompleted && t.DueDate.Before(now)
}

// TimeRemainingAt returns nil when there is no due date or the todo is
// complete, "Overdue" when past due, and otherwise a "<days> days <hours>
// hours" (or "<hours> hours") description of the time left.
func (t *Todo) TimeRemainingAt(now time.Time) *string {
	if t.DueDate == nil || t.IsCompleted {
		return nil
	}

	diff := t.DueDate.Sub(now)
	if diff < 0 {
		s := "Overdue"
		return &s
	}

	totalHours := int(diff.Hours())
	days := totalHours / 24
	hours := totalHours % 24

	var s string
	if days > 0 {
		s = fmt.Sprintf("%d days %d hours", days, hours)
	} else {
		s = fmt.Sprintf("%d hours", hours)
	}
	return &s
}

// Decorate fills the derived fields relative to now.
func (t *Todo) Decorate(now time.Time) {
	t.IsOverdue = t.OverdueAt(now)
	t.TimeRemaining = t.TimeRemainingAt(now)
}

// ApplyUpdate merges the provided fields into the todo (unset fields are
// left untouched) and then re-evaluates the subtask auto-complete rule.
func (t *Todo) ApplyUpdate(req *UpdateTodoRequest) {
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.IsCompleted != nil {
		t.IsCompleted = *req.IsCompleted
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	if req.DueTime != nil {
		t.DueTime = *req.DueTime
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Tags != nil {
		t.Tags = *req.Tags
	}
	if req.Subtasks != nil {
		t.Subtasks = *req.Subtasks
	}
	if req.Attachments != nil {
		t.Attachments = *req.Attachments
	}
	if req.Reminder != nil {
		t.Reminder = *req.Reminder
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}

	t.evaluateSubtasks()
}

// evaluateSubtasks marks the todo complete when every subtask is complete.
func (t *Todo) evaluateSubtasks() {
	if len(t.Subtasks) == 0 {
		return
	}
	for _, st := range t.Subtasks {
		if !st.IsCompleted {
			return
		}
	}
	t.IsCompleted = true
}

// ToggleCompletion flips the completion state. Completing cascades to all
// subtasks; reopening leaves them untouched.
func (t *Todo) ToggleCompletion() {
	t.IsCompleted = !t.IsCompleted
	if t.IsCompleted {
		for i := range t.Subtasks {
			t.Subtasks[i].IsCompleted = true
		}
	}
}

// CreateTodoRequest represents todo creation data
type CreateTodoRequest struct {
	Title       string       `json:"title" example:"Buy milk"`
	Description string       `json:"description"`
	Priority    string       `json:"priority" enums:"low,medium,high"`
	DueDate     *time.Time   `json:"dueDate"`
	DueTime     string       `json:"dueTime" example:"18:30"`
	Category    string       `json:"category"`
	Tags        []string     `json:"tags"`
	Subtasks    []Subtask    `json:"subtasks"`
	Attachments []Attachment `json:"attachments"`
	Reminder    bool         `json:"reminder"`
	Notes       string       `json:"notes"`
}

// UpdateTodoRequest represents a partial todo update; nil fields are ignored
type UpdateTodoRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	IsCompleted *bool         `json:"isCompleted"`
	Priority    *string       `json:"priority"`
	DueDate     *time.Time    `json:"dueDate"`
	DueTime     *string       `json:"dueTime"`
	Category    *string       `json:"category"`
	Tags        *[]string     `json:"tags"`
	Subtasks    *[]Subtask    `json:"subtasks"`
	Attachments *[]Attachment `json:"attachments"`
	Reminder    *bool         `json:"reminder"`
	Notes       *string       `json:"notes"`
}

// DeleteManyRequest is the bulk delete payload
type DeleteManyRequest struct {
	IDs []string `json:"ids"`
}

// ListResult is the list endpoint payload: one page of todos plus the
// whole-collection stats snapshot for the owner.
type ListResult struct {
	Items []Todo    `json:"items"`
	Count int       `json:"count"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
	Stats ListStats `json:"stats"`
}

package todos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string    { return &s }
func boolPtr(b bool) *bool       { return &b }
func timePtr(t time.Time) *time.Time { return &t }

func TestOverdueAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	todo := &Todo{DueDate: &yesterday}
	require.True(t, todo.OverdueAt(now))

	// Completed todos are never overdue.
	todo.IsCompleted = true
	require.False(t, todo.OverdueAt(now))

	todo = &Todo{DueDate: &tomorrow}
	require.False(t, todo.OverdueAt(now))

	todo = &Todo{}
	require.False(t, todo.OverdueAt(now))
}

func TestTimeRemainingAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	todo := &Todo{}
	require.Nil(t, todo.TimeRemainingAt(now))

	due := now.Add(5 * time.Hour)
	todo = &Todo{DueDate: &due, IsCompleted: true}
	require.Nil(t, todo.TimeRemainingAt(now))

	past := now.Add(-time.Hour)
	todo = &Todo{DueDate: &past}
	require.Equal(t, "Overdue", *todo.TimeRemainingAt(now))

	soon := now.Add(5*time.Hour + 30*time.Minute)
	todo = &Todo{DueDate: &soon}
	require.Equal(t, "5 hours", *todo.TimeRemainingAt(now))

	later := now.Add(26*time.Hour + time.Minute)
	todo = &Todo{DueDate: &later}
	require.Equal(t, "1 days 2 hours", *todo.TimeRemainingAt(now))
}

func TestDecorate(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	todo := &Todo{DueDate: &yesterday}
	todo.Decorate(now)
	require.True(t, todo.IsOverdue)
	require.NotNil(t, todo.TimeRemaining)
	require.Equal(t, "Overdue", *todo.TimeRemaining)
}

func TestApplyUpdate_PartialSemantics(t *testing.T) {
	todo := &Todo{
		Title:       "Buy milk",
		Description: "Whole milk",
		Priority:    PriorityMedium,
		Category:    CategoryShopping,
		Tags:        []string{"groceries"},
	}

	todo.ApplyUpdate(&UpdateTodoRequest{Title: strPtr("Buy oat milk")})

	require.Equal(t, "Buy oat milk", todo.Title)
	require.Equal(t, "Whole milk", todo.Description)
	require.Equal(t, PriorityMedium, todo.Priority)
	require.Equal(t, CategoryShopping, todo.Category)
	require.Equal(t, []string{"groceries"}, todo.Tags)
}

func TestApplyUpdate_AutoCompletesWhenAllSubtasksDone(t *testing.T) {
	todo := &Todo{
		Title: "Plan trip",
		Subtasks: []Subtask{
			{Title: "a", IsCompleted: false},
			{Title: "b", IsCompleted: false},
		},
	}

	todo.ApplyUpdate(&UpdateTodoRequest{
		Subtasks: &[]Subtask{
			{Title: "a", IsCompleted: true},
			{Title: "b", IsCompleted: true},
		},
	})

	require.True(t, todo.IsCompleted)
}

func TestApplyUpdate_NoAutoCompleteWithOpenSubtask(t *testing.T) {
	todo := &Todo{Title: "Plan trip"}

	todo.ApplyUpdate(&UpdateTodoRequest{
		Subtasks: &[]Subtask{
			{Title: "a", IsCompleted: true},
			{Title: "b", IsCompleted: false},
		},
	})
	require.False(t, todo.IsCompleted)

	// No subtasks at all never auto-completes.
	todo = &Todo{Title: "Empty"}
	todo.ApplyUpdate(&UpdateTodoRequest{Description: strPtr("x")})
	require.False(t, todo.IsCompleted)
}

func TestApplyUpdate_CanReopenCompletedTodo(t *testing.T) {
	todo := &Todo{Title: "Done already", IsCompleted: true}

	todo.ApplyUpdate(&UpdateTodoRequest{IsCompleted: boolPtr(false)})
	require.False(t, todo.IsCompleted)
}

func TestToggleCompletion_CascadesToSubtasks(t *testing.T) {
	todo := &Todo{
		Title: "Buy milk",
		Subtasks: []Subtask{
			{Title: "a", IsCompleted: false},
			{Title: "b", IsCompleted: true},
		},
	}

	todo.ToggleCompletion()
	require.True(t, todo.IsCompleted)
	for _, st := range todo.Subtasks {
		require.True(t, st.IsCompleted)
	}

	// Toggling back to incomplete leaves subtasks untouched.
	todo.ToggleCompletion()
	require.False(t, todo.IsCompleted)
	for _, st := range todo.Subtasks {
		require.True(t, st.IsCompleted)
	}
}

func TestApplyUpdate_DueDate(t *testing.T) {
	todo := &Todo{Title: "Buy milk"}
	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	todo.ApplyUpdate(&UpdateTodoRequest{DueDate: timePtr(due)})
	require.NotNil(t, todo.DueDate)
	require.True(t, todo.DueDate.Equal(due))
}

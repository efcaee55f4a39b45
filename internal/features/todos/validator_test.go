package todos

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCreateTodo(t *testing.T) {
	valid := &CreateTodoRequest{
		Title:    "Buy milk",
		Priority: PriorityHigh,
		Category: CategoryShopping,
		DueTime:  "14:30",
	}
	require.NoError(t, ValidateCreateTodo(valid))

	tests := []struct {
		name string
		req  CreateTodoRequest
		msg  string
	}{
		{"empty title", CreateTodoRequest{Title: "   "}, "please enter todo title"},
		{"title too long", CreateTodoRequest{Title: strings.Repeat("a", 201)}, "title cannot exceed 200 characters"},
		{"description too long", CreateTodoRequest{Title: "x", Description: strings.Repeat("a", 1001)}, "description cannot exceed 1000 characters"},
		{"bad priority", CreateTodoRequest{Title: "x", Priority: "urgent"}, "priority must be one of: low, medium, high"},
		{"bad category", CreateTodoRequest{Title: "x", Category: "hobbies"}, "category must be one of: personal, work, shopping, health, finance, education, other"},
		{"bad due time", CreateTodoRequest{Title: "x", DueTime: "25:00"}, "please enter valid time format (HH:MM)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateTodo(&tt.req)
			require.EqualError(t, err, tt.msg)
		})
	}
}

func TestValidateCreateTodo_OptionalFieldsSkipped(t *testing.T) {
	// Empty priority, category and dueTime pass; defaults fill in later.
	req := &CreateTodoRequest{Title: "Buy milk"}
	require.NoError(t, ValidateCreateTodo(req))
}

func TestValidateDueTimeFormats(t *testing.T) {
	for _, ok := range []string{"00:00", "9:05", "09:05", "23:59"} {
		require.NoError(t, validateDueTime(ok), ok)
	}
	for _, bad := range []string{"24:00", "12:60", "noon", "7", "7:5"} {
		require.Error(t, validateDueTime(bad), bad)
	}
}

func TestValidateUpdateTodo(t *testing.T) {
	require.NoError(t, ValidateUpdateTodo(&UpdateTodoRequest{}))

	require.NoError(t, ValidateUpdateTodo(&UpdateTodoRequest{
		Title:    strPtr("New title"),
		Priority: strPtr(PriorityLow),
	}))

	err := ValidateUpdateTodo(&UpdateTodoRequest{Title: strPtr("")})
	require.EqualError(t, err, "please enter todo title")

	err = ValidateUpdateTodo(&UpdateTodoRequest{Priority: strPtr("urgent")})
	require.EqualError(t, err, "priority must be one of: low, medium, high")

	// Clearing the due time with an empty string is allowed.
	require.NoError(t, ValidateUpdateTodo(&UpdateTodoRequest{DueTime: strPtr("")}))
}

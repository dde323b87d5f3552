package repository_test

import (
	"testing"

	"github.com/taskflow/backend/repository"
)

func TestTaskSortColumn(t *testing.T) {
	t.Parallel()

	allowed := map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"dueDate":   "due_date",
		"priority":  "priority",
		"status":    "status",
		"title":     "title",
	}
	for field, want := range allowed {
		column, ok := repository.TaskSortColumn(field)
		if !ok {
			t.Fatalf("%q must be sortable", field)
		}
		if column != want {
			t.Fatalf("%q: want column %q, got %q", field, want, column)
		}
	}

	denied := []string{
		"",
		"ownerId",
		"password_digest",
		"created_at",
		"title; DROP TABLE tasks",
	}
	for _, field := range denied {
		if column, ok := repository.TaskSortColumn(field); ok {
			t.Fatalf("%q must not resolve, got %q", field, column)
		}
	}
}

package transport_test

import (
	"strings"
	"testing"
	"time"

	"github.com/taskflow/backend/api/transport"
)

func strPtr(s string) *string { return &s }

func hasError(errs transport.FieldErrors, field string) bool {
	return len(errs[field]) > 0
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		request transport.RegisterRequest
		bad     []string
	}{
		{
			name: "valid",
			request: transport.RegisterRequest{
				Email: "a@example.com", Password: "password123",
				FirstName: "A", LastName: "B",
			},
		},
		{
			name: "valid with explicit role",
			request: transport.RegisterRequest{
				Email: "a@example.com", Password: "password123",
				FirstName: "A", LastName: "B", Role: "ADMIN",
			},
		},
		{
			name:    "everything missing",
			request: transport.RegisterRequest{},
			bad:     []string{"email", "password", "firstName", "lastName"},
		},
		{
			name: "malformed email",
			request: transport.RegisterRequest{
				Email: "not-an-email", Password: "password123",
				FirstName: "A", LastName: "B",
			},
			bad: []string{"email"},
		},
		{
			name: "seven character password",
			request: transport.RegisterRequest{
				Email: "a@example.com", Password: "seven77",
				FirstName: "A", LastName: "B",
			},
			bad: []string{"password"},
		},
		{
			name: "unknown role",
			request: transport.RegisterRequest{
				Email: "a@example.com", Password: "password123",
				FirstName: "A", LastName: "B", Role: "SUPERUSER",
			},
			bad: []string{"role"},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := tc.request.Validate()
			if len(tc.bad) == 0 {
				if errs != nil {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) != len(tc.bad) {
				t.Fatalf("expected errors on %v, got %v", tc.bad, errs)
			}
			for _, field := range tc.bad {
				if !hasError(errs, field) {
					t.Fatalf("expected an error on %q, got %v", field, errs)
				}
			}
		})
	}
}

func TestUpdateUserRequest_NilFieldsSkipped(t *testing.T) {
	t.Parallel()

	if errs := (transport.UpdateUserRequest{}).Validate(); errs != nil {
		t.Fatalf("an empty patch must validate, got %v", errs)
	}

	errs := transport.UpdateUserRequest{
		Email:     strPtr("bad"),
		Password:  strPtr("short"),
		FirstName: strPtr(""),
	}.Validate()
	for _, field := range []string{"email", "password", "firstName"} {
		if !hasError(errs, field) {
			t.Fatalf("expected an error on %q, got %v", field, errs)
		}
	}
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		request transport.CreateTaskRequest
		bad     []string
	}{
		{
			name:    "title only",
			request: transport.CreateTaskRequest{Title: "Buy milk"},
		},
		{
			name: "all fields valid",
			request: transport.CreateTaskRequest{
				Title: "Plan", Status: "IN_PROGRESS", Priority: "URGENT",
				DueDate:    "2024-06-01",
				CategoryID: strPtr("7c9e6679-7425-40de-944b-e07fc1f90ae7"),
			},
		},
		{
			name:    "missing title",
			request: transport.CreateTaskRequest{},
			bad:     []string{"title"},
		},
		{
			name:    "unknown status",
			request: transport.CreateTaskRequest{Title: "X", Status: "SHIPPED"},
			bad:     []string{"status"},
		},
		{
			name:    "unknown priority",
			request: transport.CreateTaskRequest{Title: "X", Priority: "WHENEVER"},
			bad:     []string{"priority"},
		},
		{
			name:    "unparseable due date",
			request: transport.CreateTaskRequest{Title: "X", DueDate: "tomorrow"},
			bad:     []string{"dueDate"},
		},
		{
			name:    "category id is not a UUID",
			request: transport.CreateTaskRequest{Title: "X", CategoryID: strPtr("42")},
			bad:     []string{"categoryId"},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := tc.request.Validate()
			if len(tc.bad) == 0 {
				if errs != nil {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			for _, field := range tc.bad {
				if !hasError(errs, field) {
					t.Fatalf("expected an error on %q, got %v", field, errs)
				}
			}
		})
	}
}

func TestTaskListQuery_SortFieldAllowList(t *testing.T) {
	t.Parallel()

	for _, field := range []string{"createdAt", "updatedAt", "dueDate", "priority", "status", "title"} {
		if errs := (transport.TaskListQuery{SortBy: field}).Validate(); errs != nil {
			t.Fatalf("%q must be sortable, got %v", field, errs)
		}
	}

	// Injection-shaped and merely unknown values fail the same way.
	for _, field := range []string{"ownerId", "id; DROP TABLE tasks", "created_at"} {
		errs := (transport.TaskListQuery{SortBy: field}).Validate()
		if !hasError(errs, "sortBy") {
			t.Fatalf("%q must be rejected, got %v", field, errs)
		}
	}
}

func TestTaskListQuery_Order(t *testing.T) {
	t.Parallel()

	for _, order := range []string{"", "asc", "desc"} {
		if errs := (transport.TaskListQuery{Order: order}).Validate(); errs != nil {
			t.Fatalf("order %q must validate, got %v", order, errs)
		}
	}
	if errs := (transport.TaskListQuery{Order: "descending"}).Validate(); !hasError(errs, "order") {
		t.Fatalf("expected an error on order, got %v", errs)
	}
}

func TestCategoryRequests_LengthBounds(t *testing.T) {
	t.Parallel()

	atLimit := transport.CreateCategoryRequest{
		Name:        strings.Repeat("n", 50),
		Description: strings.Repeat("d", 200),
	}
	if errs := atLimit.Validate(); errs != nil {
		t.Fatalf("boundary lengths must validate, got %v", errs)
	}

	over := transport.CreateCategoryRequest{
		Name:        strings.Repeat("n", 51),
		Description: strings.Repeat("d", 201),
	}
	errs := over.Validate()
	if !hasError(errs, "name") || !hasError(errs, "description") {
		t.Fatalf("expected errors on name and description, got %v", errs)
	}

	if errs := (transport.CreateCategoryRequest{}).Validate(); !hasError(errs, "name") {
		t.Fatalf("expected an error on name, got %v", errs)
	}

	empty := ""
	if errs := (transport.UpdateCategoryRequest{Name: &empty}).Validate(); !hasError(errs, "name") {
		t.Fatalf("an explicit empty name must fail, got %v", errs)
	}
	if errs := (transport.UpdateCategoryRequest{}).Validate(); errs != nil {
		t.Fatalf("an empty patch must validate, got %v", errs)
	}
}

func TestCommentRequest_Validate(t *testing.T) {
	t.Parallel()

	if errs := (transport.CommentRequest{Content: strings.Repeat("c", 500)}).Validate(); errs != nil {
		t.Fatalf("500 characters must validate, got %v", errs)
	}
	if errs := (transport.CommentRequest{Content: strings.Repeat("c", 501)}).Validate(); !hasError(errs, "content") {
		t.Fatalf("501 characters must fail, got %v", errs)
	}
	if errs := (transport.CommentRequest{}).Validate(); !hasError(errs, "content") {
		t.Fatalf("empty content must fail, got %v", errs)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	bare, err := transport.ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("bare date: %v", err)
	}
	if !bare.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("bare date parsed as %v", bare)
	}

	stamped, err := transport.ParseDate("2024-06-01T15:04:05Z")
	if err != nil {
		t.Fatalf("RFC 3339: %v", err)
	}
	if stamped.Hour() != 15 {
		t.Fatalf("timestamp parsed as %v", stamped)
	}

	if _, err := transport.ParseDate("June 1st"); err == nil {
		t.Fatal("expected an error for a non-date string")
	}
}

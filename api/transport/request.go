package transport

import (
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/repository"
)

// FieldErrors maps a payload field to its violation messages.
type FieldErrors map[string][]string

func (f FieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

// orNil collapses an empty error map to nil so `if errs != nil` reads cleanly.
func (f FieldErrors) orNil() FieldErrors {
	if len(f) == 0 {
		return nil
	}
	return f
}

const (
	maxCommentLength             = 500
	maxCategoryNameLength        = 50
	maxCategoryDescriptionLength = 200
	minPasswordLength            = 8
)

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// ParseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func (r RegisterRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Email == "" {
		errs.add("email", "Email is required")
	} else if !validEmail(r.Email) {
		errs.add("email", "Invalid email format")
	}
	if r.Password == "" {
		errs.add("password", "Password is required")
	} else if len(r.Password) < minPasswordLength {
		errs.add("password", "Password must be at least 8 characters long")
	}
	if r.FirstName == "" {
		errs.add("firstName", "First name is required")
	}
	if r.LastName == "" {
		errs.add("lastName", "Last name is required")
	}
	if r.Role != "" && !domain.Role(r.Role).Valid() {
		errs.add("role", "Role must be either ADMIN or USER")
	}
	return errs.orNil()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Email == "" {
		errs.add("email", "Email is required")
	} else if !validEmail(r.Email) {
		errs.add("email", "Invalid email format")
	}
	if r.Password == "" {
		errs.add("password", "Password is required")
	}
	return errs.orNil()
}

// CreateUserRequest is the admin-surface twin of RegisterRequest.
type CreateUserRequest = RegisterRequest

type UpdateUserRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      *string `json:"role"`
}

func (r UpdateUserRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Email != nil && !validEmail(*r.Email) {
		errs.add("email", "Invalid email format")
	}
	if r.Password != nil && len(*r.Password) < minPasswordLength {
		errs.add("password", "Password must be at least 8 characters long")
	}
	if r.FirstName != nil && *r.FirstName == "" {
		errs.add("firstName", "First name must not be empty")
	}
	if r.LastName != nil && *r.LastName == "" {
		errs.add("lastName", "Last name must not be empty")
	}
	if r.Role != nil && !domain.Role(*r.Role).Valid() {
		errs.add("role", "Role must be either ADMIN or USER")
	}
	return errs.orNil()
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"dueDate"`
	AssigneeID  *string `json:"assigneeId"`
	CategoryID  *string `json:"categoryId"`
}

func (r CreateTaskRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Title == "" {
		errs.add("title", "Title is required")
	}
	if r.Status != "" && !domain.TaskStatus(r.Status).Valid() {
		errs.add("status", "Status must be a valid task status")
	}
	if r.Priority != "" && !domain.TaskPriority(r.Priority).Valid() {
		errs.add("priority", "Priority must be a valid task priority")
	}
	if r.DueDate != "" {
		if _, err := ParseDate(r.DueDate); err != nil {
			errs.add("dueDate", "Due date must be a valid date string")
		}
	}
	if r.AssigneeID != nil && !validUUID(*r.AssigneeID) {
		errs.add("assigneeId", "Assignee ID must be a valid UUID")
	}
	if r.CategoryID != nil && !validUUID(*r.CategoryID) {
		errs.add("categoryId", "Category ID must be a valid UUID")
	}
	return errs.orNil()
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	AssigneeID  *string `json:"assigneeId"`
	CategoryID  *string `json:"categoryId"`
}

func (r UpdateTaskRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Title != nil && *r.Title == "" {
		errs.add("title", "Title must not be empty")
	}
	if r.Status != nil && !domain.TaskStatus(*r.Status).Valid() {
		errs.add("status", "Status must be a valid task status")
	}
	if r.Priority != nil && !domain.TaskPriority(*r.Priority).Valid() {
		errs.add("priority", "Priority must be a valid task priority")
	}
	if r.DueDate != nil {
		if _, err := ParseDate(*r.DueDate); err != nil {
			errs.add("dueDate", "Due date must be a valid date string")
		}
	}
	if r.AssigneeID != nil && !validUUID(*r.AssigneeID) {
		errs.add("assigneeId", "Assignee ID must be a valid UUID")
	}
	if r.CategoryID != nil && !validUUID(*r.CategoryID) {
		errs.add("categoryId", "Category ID must be a valid UUID")
	}
	return errs.orNil()
}

// TaskListQuery carries the task listing filters taken from the query string.
type TaskListQuery struct {
	Status     string
	Priority   string
	CategoryID string
	DueDate    string
	SortBy     string
	Order      string
}

func (q TaskListQuery) Validate() FieldErrors {
	errs := FieldErrors{}
	if q.Status != "" && !domain.TaskStatus(q.Status).Valid() {
		errs.add("status", "Status must be a valid task status")
	}
	if q.Priority != "" && !domain.TaskPriority(q.Priority).Valid() {
		errs.add("priority", "Priority must be a valid task priority")
	}
	if q.CategoryID != "" && !validUUID(q.CategoryID) {
		errs.add("categoryId", "Category ID must be a valid UUID")
	}
	if q.DueDate != "" {
		if _, err := ParseDate(q.DueDate); err != nil {
			errs.add("dueDate", "Due date must be a valid date string")
		}
	}
	if q.SortBy != "" {
		if _, ok := repository.TaskSortColumn(q.SortBy); !ok {
			errs.add("sortBy", "Sort field is not sortable")
		}
	}
	if q.Order != "" && q.Order != "asc" && q.Order != "desc" {
		errs.add("order", "Order must be asc or desc")
	}
	return errs.orNil()
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r CreateCategoryRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Name == "" {
		errs.add("name", "Category name is required")
	} else if utf8.RuneCountInString(r.Name) > maxCategoryNameLength {
		errs.add("name", "Category name cannot exceed 50 characters")
	}
	if utf8.RuneCountInString(r.Description) > maxCategoryDescriptionLength {
		errs.add("description", "Description cannot exceed 200 characters")
	}
	return errs.orNil()
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r UpdateCategoryRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Name != nil {
		if *r.Name == "" {
			errs.add("name", "Category name must not be empty")
		} else if utf8.RuneCountInString(*r.Name) > maxCategoryNameLength {
			errs.add("name", "Category name cannot exceed 50 characters")
		}
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxCategoryDescriptionLength {
		errs.add("description", "Description cannot exceed 200 characters")
	}
	return errs.orNil()
}

// CommentRequest covers both comment creation and update; the shape is the
// same for both.
type CommentRequest struct {
	Content string `json:"content"`
}

func (r CommentRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Content == "" {
		errs.add("content", "Comment content is required")
	} else if utf8.RuneCountInString(r.Content) > maxCommentLength {
		errs.add("content", "Comment content cannot exceed 500 characters")
	}
	return errs.orNil()
}

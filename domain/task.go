package domain

import "time"

// TaskStatus enumerates the lifecycle states of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusReview     TaskStatus = "REVIEW"
	StatusDone       TaskStatus = "DONE"
)

// DefaultTaskStatus is applied when a creation payload omits the status.
const DefaultTaskStatus = StatusTodo

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

// TaskPriority enumerates task urgency levels.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task represents a user-owned activity item.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	OwnerID     string       `json:"ownerId"`
	AssigneeID  *string      `json:"assigneeId,omitempty"`
	CategoryID  *string      `json:"categoryId,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// TaskWithCategory is a task joined with its optional category summary.
type TaskWithCategory struct {
	Task
	Category *CategoryRef `json:"category,omitempty"`
}

// CategoryRef is the shallow category projection embedded in task listings.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaskDetail is the full read model returned by getById: the task, its
// category and its comments with author summaries.
type TaskDetail struct {
	Task
	Category *Category           `json:"category,omitempty"`
	Comments []CommentWithAuthor `json:"comments"`
}

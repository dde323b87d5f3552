package domain

import "time"

// Comment is a remark attached to a task. Any authenticated user who can see
// the task may author one; the author is not required to own the task.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	TaskID    string    `json:"taskId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthorRef is the shallow user projection embedded in comment responses.
type AuthorRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CommentWithAuthor is a comment joined with its author summary.
type CommentWithAuthor struct {
	Comment
	User AuthorRef `json:"user"`
}

package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
)

// NullableUUID distinguishes an absent JSON field from an explicit null.
// Present is true whenever the field appeared in the request body; Value
// is nil when the field was null.
type NullableUUID struct {
	Present bool
	Value   *uuid.UUID
}

// UnmarshalJSON is only invoked for fields present in the body, so Present
// is always true here and stays false for absent fields.
func (n *NullableUUID) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

// MarshalJSON keeps the type symmetric for logging and tests.
func (n NullableUUID) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// CreateTaskRequest represents the request to create a new task. Assignee
// and reviewer must be a member or the owner of the board; due_date uses
// the YYYY-MM-DD format.
type CreateTaskRequest struct {
	Board       uuid.UUID           `json:"board" binding:"required"`
	Title       string              `json:"title" binding:"required,min=1,max=255"`
	Description string              `json:"description"`
	Status      domain.TaskStatus   `json:"status" binding:"required"`
	Priority    domain.TaskPriority `json:"priority" binding:"required"`
	AssigneeID  *uuid.UUID          `json:"assignee_id"`
	ReviewerID  *uuid.UUID          `json:"reviewer_id"`
	DueDate     *string             `json:"due_date"`
}

// UpdateTaskRequest represents a partial task update. Absent fields keep
// their current value. For assignee_id and reviewer_id, an explicit null
// or the zero UUID clears the relation; for due_date, an empty string
// clears the date.
type UpdateTaskRequest struct {
	Title       *string              `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string              `json:"description"`
	Status      *domain.TaskStatus   `json:"status"`
	Priority    *domain.TaskPriority `json:"priority"`
	AssigneeID  NullableUUID         `json:"assignee_id"`
	ReviewerID  NullableUUID         `json:"reviewer_id"`
	DueDate     *string              `json:"due_date"`
}

// TaskResponse is the task projection used in board details and the
// assigned-to-me / reviewing lists. CommentsCount is derived at read time.
type TaskResponse struct {
	ID            uuid.UUID           `json:"id"`
	Board         uuid.UUID           `json:"board"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Status        domain.TaskStatus   `json:"status"`
	Priority      domain.TaskPriority `json:"priority"`
	Assignee      *UserResponse       `json:"assignee"`
	Reviewer      *UserResponse       `json:"reviewer"`
	DueDate       *string             `json:"due_date"`
	CommentsCount int64               `json:"comments_count"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TaskStatus represents the workflow column of a task
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "to-do"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether the status is one of the known workflow columns
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

// TaskPriority represents the urgency of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Valid reports whether the priority is one of the known levels
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task represents a unit of work on a board. Assignee and reviewer, when
// set, must be a member or the owner of the task's board at write time.
type Task struct {
	BaseModel
	BoardID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_tasks_board_id" json:"board"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Status      TaskStatus      `gorm:"type:varchar(50);not null;index:idx_tasks_status" json:"status"`
	Priority    TaskPriority    `gorm:"type:varchar(50);not null;index:idx_tasks_priority" json:"priority"`
	AssigneeID  *uuid.UUID      `gorm:"type:uuid;index:idx_tasks_assignee_id" json:"assignee_id"`
	ReviewerID  *uuid.UUID      `gorm:"type:uuid;index:idx_tasks_reviewer_id" json:"reviewer_id"`
	DueDate     *datatypes.Date `gorm:"type:date" json:"due_date"`
	Comments    []Comment       `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kanban-board-api/internal/authz"
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

const dueDateLayout = "2006-01-02"

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTask(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	ListAssignedTo(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error)
	ListReviewing(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error)
	UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo    repository.TaskRepository
	boardRepo   repository.BoardRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	authz       *authz.Engine
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	engine *authz.Engine,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:    taskRepo,
		boardRepo:   boardRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		authz:       engine,
		metrics:     m,
		logger:      logger,
	}
}

// CreateTask creates a task on a board the actor owns or is a member of.
// A creator outside the board's membership is a validation failure, like
// a non-member assignee or reviewer: the board reference in the request
// body is inconsistent with who is making it.
func (s *taskServiceImpl) CreateTask(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	board, err := s.findBoard(ctx, req.Board)
	if err != nil {
		return nil, err
	}
	if !authz.IsBoardVisible(actorID, board) {
		return nil, response.NewAppError(response.ErrCodeValidation,
			"You must be a member of the board to create tasks", "board")
	}

	if !req.Status.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid task status", string(req.Status))
	}
	if !req.Priority.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid task priority", string(req.Priority))
	}
	if err := validateRelation(board, req.AssigneeID, "assignee"); err != nil {
		return nil, err
	}
	if err := validateRelation(board, req.ReviewerID, "reviewer"); err != nil {
		return nil, err
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		BoardID:     board.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		ReviewerID:  req.ReviewerID,
		DueDate:     dueDate,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementTaskCreated()
	}
	s.logger.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("board_id", board.ID.String()),
	)

	return s.toSingleTaskResponse(ctx, task)
}

// ListAssignedTo returns all tasks assigned to the actor
func (s *taskServiceImpl) ListAssignedTo(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.FindByAssignee(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}
	return buildTaskResponses(ctx, tasks, s.userRepo, s.commentRepo)
}

// ListReviewing returns all tasks the actor reviews
func (s *taskServiceImpl) ListReviewing(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.FindByReviewer(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}
	return buildTaskResponses(ctx, tasks, s.userRepo, s.commentRepo)
}

// UpdateTask applies a partial update. Absent fields keep their value;
// an explicit null or the zero UUID clears assignee or reviewer, and an
// empty due date string clears the date. New assignee or reviewer values
// are re-validated against the board's membership at the time of this call.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	board, err := s.findBoard(ctx, task.BoardID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(actorID, authz.OpTaskUpdate, board); err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid task status", string(*req.Status))
		}
		task.Status = *req.Status
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid task priority", string(*req.Priority))
		}
		task.Priority = *req.Priority
	}
	if req.AssigneeID.Present {
		if req.AssigneeID.Value == nil || *req.AssigneeID.Value == uuid.Nil {
			task.AssigneeID = nil
		} else {
			if err := validateRelation(board, req.AssigneeID.Value, "assignee"); err != nil {
				return nil, err
			}
			task.AssigneeID = req.AssigneeID.Value
		}
	}
	if req.ReviewerID.Present {
		if req.ReviewerID.Value == nil || *req.ReviewerID.Value == uuid.Nil {
			task.ReviewerID = nil
		} else {
			if err := validateRelation(board, req.ReviewerID.Value, "reviewer"); err != nil {
				return nil, err
			}
			task.ReviewerID = req.ReviewerID.Value
		}
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			dueDate, err := parseDueDate(req.DueDate)
			if err != nil {
				return nil, err
			}
			task.DueDate = dueDate
		}
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	return s.toSingleTaskResponse(ctx, task)
}

// DeleteTask removes a task and its comments. Owner-exclusive.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}
	board, err := s.findBoard(ctx, task.BoardID)
	if err != nil {
		return err
	}
	if err := s.authz.Authorize(actorID, authz.OpTaskDelete, board); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}

	s.logger.Info("Task deleted",
		zap.String("task_id", taskID.String()),
		zap.String("board_id", board.ID.String()),
	)
	return nil
}

func (s *taskServiceImpl) findTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}
	return task, nil
}

func (s *taskServiceImpl) findBoard(ctx context.Context, boardID uuid.UUID) (*domain.Board, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}
	return board, nil
}

func (s *taskServiceImpl) toSingleTaskResponse(ctx context.Context, task *domain.Task) (*dto.TaskResponse, error) {
	responses, err := buildTaskResponses(ctx, []*domain.Task{task}, s.userRepo, s.commentRepo)
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// validateRelation checks that the target of an assignee or reviewer
// relation is a member or the owner of the board
func validateRelation(board *domain.Board, userID *uuid.UUID, field string) error {
	if userID == nil || *userID == uuid.Nil {
		return nil
	}
	if !authz.IsBoardVisible(*userID, board) {
		return response.NewAppError(response.ErrCodeValidation,
			"The "+field+" must be a member of the board", field)
	}
	return nil
}

// parseDueDate parses a YYYY-MM-DD due date string
func parseDueDate(raw *string) (*datatypes.Date, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dueDateLayout, *raw)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid due date, expected YYYY-MM-DD", *raw)
	}
	d := datatypes.Date(t)
	return &d, nil
}

// formatDueDate renders a due date back to YYYY-MM-DD
func formatDueDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(dueDateLayout)
	return &s
}

// buildTaskResponses converts tasks to response DTOs, expanding assignee
// and reviewer to user profiles in one lookup and attaching per-task
// comment counts computed at query time
func buildTaskResponses(
	ctx context.Context,
	tasks []*domain.Task,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
) ([]dto.TaskResponse, error) {
	taskIDs := make([]uuid.UUID, len(tasks))
	userIDSet := make(map[uuid.UUID]bool)
	for i, task := range tasks {
		taskIDs[i] = task.ID
		if task.AssigneeID != nil {
			userIDSet[*task.AssigneeID] = true
		}
		if task.ReviewerID != nil {
			userIDSet[*task.ReviewerID] = true
		}
	}

	userIDs := make([]uuid.UUID, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}
	users, err := userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch users", err.Error())
	}
	userByID := make(map[uuid.UUID]*dto.UserResponse, len(users))
	for _, u := range users {
		userByID[u.ID] = toUserResponse(u)
	}

	counts, err := commentRepo.CountByTaskIDs(ctx, taskIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}

	responses := make([]dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		var assignee, reviewer *dto.UserResponse
		if task.AssigneeID != nil {
			assignee = userByID[*task.AssigneeID]
		}
		if task.ReviewerID != nil {
			reviewer = userByID[*task.ReviewerID]
		}

		responses[i] = dto.TaskResponse{
			ID:            task.ID,
			Board:         task.BoardID,
			Title:         task.Title,
			Description:   task.Description,
			Status:        task.Status,
			Priority:      task.Priority,
			Assignee:      assignee,
			Reviewer:      reviewer,
			DueDate:       formatDueDate(task.DueDate),
			CommentsCount: counts[task.ID],
			CreatedAt:     task.CreatedAt,
			UpdatedAt:     task.UpdatedAt,
		}
	}
	return responses, nil
}

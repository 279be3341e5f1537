package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/authz"
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	CreateComment(ctx context.Context, actorID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, actorID, taskID uuid.UUID) ([]dto.CommentResponse, error)
	DeleteComment(ctx context.Context, actorID, taskID, commentID uuid.UUID) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	boardRepo   repository.BoardRepository
	userRepo    repository.UserRepository
	authz       *authz.Engine
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	taskRepo repository.TaskRepository,
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	engine *authz.Engine,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		boardRepo:   boardRepo,
		userRepo:    userRepo,
		authz:       engine,
		metrics:     m,
		logger:      logger,
	}
}

// CreateComment adds a comment to a task on a board the actor owns or is
// a member of. The author is fixed to the actor.
func (s *commentServiceImpl) CreateComment(ctx context.Context, actorID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	board, task, err := s.findTaskBoard(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(actorID, authz.OpCommentCreate, board); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Comment content must not be empty", "content")
	}

	comment := &domain.Comment{
		TaskID:   task.ID,
		AuthorID: actorID,
		Content:  req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}
	s.logger.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("task_id", task.ID.String()),
	)

	return s.toCommentResponse(ctx, comment)
}

// ListComments returns a task's comments ordered by creation time ascending
func (s *commentServiceImpl) ListComments(ctx context.Context, actorID, taskID uuid.UUID) ([]dto.CommentResponse, error) {
	board, task, err := s.findTaskBoard(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(actorID, authz.OpCommentRead, board); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByTaskID(ctx, task.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}

	authorIDSet := make(map[uuid.UUID]bool, len(comments))
	for _, c := range comments {
		authorIDSet[c.AuthorID] = true
	}
	authorIDs := make([]uuid.UUID, 0, len(authorIDSet))
	for id := range authorIDSet {
		authorIDs = append(authorIDs, id)
	}
	authors, err := s.userRepo.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch authors", err.Error())
	}
	authorByID := make(map[uuid.UUID]*dto.UserResponse, len(authors))
	for _, u := range authors {
		authorByID[u.ID] = toUserResponse(u)
	}

	responses := make([]dto.CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = dto.CommentResponse{
			ID:        c.ID,
			TaskID:    c.TaskID,
			Author:    authorByID[c.AuthorID],
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
	}
	return responses, nil
}

// DeleteComment removes a comment. Only the author may delete it; board
// ownership does not override authorship.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, actorID, taskID, commentID uuid.UUID) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}
	if comment.TaskID != taskID {
		return response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
	}

	if err := s.authz.AuthorizeCommentDelete(actorID, comment); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}
	return nil
}

// findTaskBoard resolves a task together with its board
func (s *commentServiceImpl) findTaskBoard(ctx context.Context, taskID uuid.UUID) (*domain.Board, *domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}

	board, err := s.boardRepo.FindByID(ctx, task.BoardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}
	return board, task, nil
}

func (s *commentServiceImpl) toCommentResponse(ctx context.Context, comment *domain.Comment) (*dto.CommentResponse, error) {
	author, err := s.userRepo.FindByID(ctx, comment.AuthorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch author", err.Error())
	}

	resp := &dto.CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if author != nil {
		resp.Author = toUserResponse(author)
	}
	return resp, nil
}

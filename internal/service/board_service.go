package service

import (
	"context"
	"errors"

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

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardDetailResponse, error)
	ListBoards(ctx context.Context, actorID uuid.UUID) ([]*dto.BoardSummaryResponse, error)
	GetBoard(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	UpdateBoard(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardDetailResponse, error)
	DeleteBoard(ctx context.Context, actorID, boardID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo   repository.BoardRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	authz       *authz.Engine
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	engine *authz.Engine,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo:   boardRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		authz:       engine,
		metrics:     m,
		logger:      logger,
	}
}

// CreateBoard creates a new board owned by the actor. The actor is always
// forced into the member set, whether or not it was listed in the request.
func (s *boardServiceImpl) CreateBoard(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardDetailResponse, error) {
	memberIDs := append([]uuid.UUID{actorID}, req.Members...)
	if err := s.verifyUsersExist(ctx, req.Members); err != nil {
		return nil, err
	}

	board := &domain.Board{
		Title:   req.Title,
		OwnerID: actorID,
	}
	if err := s.boardRepo.Create(ctx, board, memberIDs); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("owner_id", actorID.String()),
		zap.Int("member_count", len(board.Members)),
	)

	return s.toBoardDetailResponse(ctx, board)
}

// ListBoards returns summaries of all boards the actor owns or is a member
// of, each exactly once regardless of a dual role
func (s *boardServiceImpl) ListBoards(ctx context.Context, actorID uuid.UUID) ([]*dto.BoardSummaryResponse, error) {
	boards, err := s.boardRepo.FindForUser(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}

	summaries := make([]*dto.BoardSummaryResponse, len(boards))
	for i, board := range boards {
		summaries[i] = toBoardSummaryResponse(board)
	}
	return summaries, nil
}

// GetBoard returns the full board detail for an owner or member
func (s *boardServiceImpl) GetBoard(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(actorID, authz.OpBoardRead, board); err != nil {
		return nil, err
	}
	return s.toBoardDetailResponse(ctx, board)
}

// UpdateBoard applies a partial update of title and/or membership. A
// member replacement fully replaces the previous set; the owner is only
// forced into members on create, not here, so an update can remove the
// owner from its own board's member set.
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardDetailResponse, error) {
	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(actorID, authz.OpBoardUpdate, board); err != nil {
		return nil, err
	}

	if req.Title != nil {
		board.Title = *req.Title
		if err := s.boardRepo.Update(ctx, board); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
		}
	}

	if req.Members != nil {
		if err := s.verifyUsersExist(ctx, *req.Members); err != nil {
			return nil, err
		}
		if err := s.boardRepo.ReplaceMembers(ctx, boardID, *req.Members); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to replace members", err.Error())
		}
	}

	reloaded, err := s.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return s.toBoardDetailResponse(ctx, reloaded)
}

// DeleteBoard removes a board and everything it owns. Owner-exclusive.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, actorID, boardID uuid.UUID) error {
	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return err
	}
	if err := s.authz.Authorize(actorID, authz.OpBoardDelete, board); err != nil {
		return err
	}

	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	s.logger.Info("Board deleted",
		zap.String("board_id", boardID.String()),
		zap.String("owner_id", actorID.String()),
	)
	return nil
}

// findBoard fetches a board, translating a missing row to NOT_FOUND
func (s *boardServiceImpl) findBoard(ctx context.Context, boardID uuid.UUID) (*domain.Board, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}
	return board, nil
}

// verifyUsersExist checks that every referenced user ID resolves to a row
// in the identity store
func (s *boardServiceImpl) verifyUsersExist(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch users", err.Error())
	}
	found := make(map[uuid.UUID]bool, len(users))
	for _, u := range users {
		found[u.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return response.NewAppError(response.ErrCodeValidation, "One or more members not found", id.String())
		}
	}
	return nil
}

// toBoardSummaryResponse computes the derived counts for the board list
func toBoardSummaryResponse(board *domain.Board) *dto.BoardSummaryResponse {
	toDo, highPrio := 0, 0
	for _, task := range board.Tasks {
		if task.Status == domain.TaskStatusToDo {
			toDo++
		}
		if task.Priority == domain.TaskPriorityHigh {
			highPrio++
		}
	}

	return &dto.BoardSummaryResponse{
		ID:                 board.ID,
		Title:              board.Title,
		OwnerID:            board.OwnerID,
		MemberCount:        len(board.Members),
		TicketCount:        len(board.Tasks),
		TasksToDoCount:     toDo,
		TasksHighPrioCount: highPrio,
	}
}

// toBoardDetailResponse expands members to user profiles and attaches the
// board's tasks with their derived comment counts
func (s *boardServiceImpl) toBoardDetailResponse(ctx context.Context, board *domain.Board) (*dto.BoardDetailResponse, error) {
	memberUsers, err := s.userRepo.FindByIDs(ctx, board.MemberIDs())
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch members", err.Error())
	}
	members := make([]dto.UserResponse, len(memberUsers))
	for i, u := range memberUsers {
		members[i] = *toUserResponse(u)
	}

	tasks := make([]*domain.Task, len(board.Tasks))
	for i := range board.Tasks {
		tasks[i] = &board.Tasks[i]
	}
	taskResponses, err := buildTaskResponses(ctx, tasks, s.userRepo, s.commentRepo)
	if err != nil {
		return nil, err
	}

	return &dto.BoardDetailResponse{
		ID:      board.ID,
		Title:   board.Title,
		OwnerID: board.OwnerID,
		Members: members,
		Tasks:   taskResponses,
	}, nil
}

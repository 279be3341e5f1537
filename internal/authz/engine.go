package authz

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/response"
)

// Operation identifies an action checked against a board's roles
type Operation string

const (
	OpBoardRead   Operation = "board:read"
	OpBoardUpdate Operation = "board:update"
	OpBoardDelete Operation = "board:delete"

	OpTaskRead   Operation = "task:read"
	OpTaskUpdate Operation = "task:update"
	OpTaskDelete Operation = "task:delete"

	OpCommentCreate Operation = "comment:create"
	OpCommentRead   Operation = "comment:read"
	OpCommentDelete Operation = "comment:delete"
)

// Engine decides whether a user may perform an operation on an entity.
// Denials are response.AppError values with code FORBIDDEN so the handler
// layer maps them to 403; inconsistent request state (assigning a
// non-member, or creating a task on a board the actor does not belong to)
// is reported by the services as VALIDATION instead.
type Engine struct {
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewEngine creates a new authorization engine
func NewEngine(m *metrics.Metrics, logger *zap.Logger) *Engine {
	return &Engine{metrics: m, logger: logger}
}

// IsBoardVisible is the single member-level predicate used by every check:
// the owner is always treated as an implicit member even when not listed
// in the member set.
func IsBoardVisible(userID uuid.UUID, board *domain.Board) bool {
	return board.OwnerID == userID || board.HasMember(userID)
}

// Authorize checks an operation against a board's roles and returns a
// FORBIDDEN AppError when the user lacks the required role.
func (e *Engine) Authorize(userID uuid.UUID, op Operation, board *domain.Board) error {
	var allowed bool
	switch op {
	case OpBoardDelete, OpTaskDelete:
		// Owner-exclusive operations
		allowed = board.OwnerID == userID
	case OpBoardRead, OpBoardUpdate,
		OpTaskRead, OpTaskUpdate,
		OpCommentCreate, OpCommentRead:
		allowed = IsBoardVisible(userID, board)
	default:
		allowed = false
	}

	if !allowed {
		return e.deny(userID, op, "You do not have access to this board")
	}
	return nil
}

// AuthorizeCommentDelete allows only the comment's author to delete it.
// Board ownership does not override authorship.
func (e *Engine) AuthorizeCommentDelete(userID uuid.UUID, comment *domain.Comment) error {
	if comment.AuthorID != userID {
		return e.deny(userID, OpCommentDelete, "Only the comment author can delete it")
	}
	return nil
}

func (e *Engine) deny(userID uuid.UUID, op Operation, message string) error {
	if e.metrics != nil {
		e.metrics.IncrementAuthzDenied(string(op))
	}
	if e.logger != nil {
		e.logger.Info("Authorization denied",
			zap.String("user_id", userID.String()),
			zap.String("operation", string(op)),
		)
	}
	return response.NewAppError(response.ErrCodeForbidden, message, string(op))
}

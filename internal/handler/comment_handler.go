package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// CommentHandler serves comment reads and writes under a task
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListComments godoc
// @Summary      List comments on a task
// @Description  Ordered oldest first; caller must see the task's board
// @Tags         comments
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {array} dto.CommentResponse
// @Failure      403 {object} response.ErrorResponse "Not an owner or member of the board"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Security     BearerAuth
// @Router       /tasks/{taskId}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	result, err := h.commentService.ListComments(c.Request.Context(), actorID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CreateComment godoc
// @Summary      Create a comment on a task
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.CreateCommentRequest true "Comment payload"
// @Success      201 {object} dto.CommentResponse
// @Failure      400 {object} response.ErrorResponse "Empty content"
// @Failure      403 {object} response.ErrorResponse "Not an owner or member of the board"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Security     BearerAuth
// @Router       /tasks/{taskId}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.commentService.CreateComment(c.Request.Context(), actorID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Author only; board owners cannot remove other users' comments
// @Tags         comments
// @Param        taskId path string true "Task ID (UUID)"
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      204 "Deleted"
// @Failure      403 {object} response.ErrorResponse "Not the comment author"
// @Failure      404 {object} response.ErrorResponse "Comment not found under this task"
// @Security     BearerAuth
// @Router       /tasks/{taskId}/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), actorID, taskID, commentID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// BoardHandler serves board CRUD
type BoardHandler struct {
	boardService service.BoardService
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// ListBoards godoc
// @Summary      List boards
// @Description  Returns summaries of every board the caller owns or is a member of
// @Tags         boards
// @Produce      json
// @Success      200 {array} dto.BoardSummaryResponse
// @Security     BearerAuth
// @Router       /boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	result, err := h.boardService.ListBoards(c.Request.Context(), actorID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CreateBoard godoc
// @Summary      Create a board
// @Description  The caller becomes the owner and is forced into the member set
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board payload"
// @Success      201 {object} dto.BoardDetailResponse
// @Failure      400 {object} response.ErrorResponse "Invalid payload or unknown member"
// @Security     BearerAuth
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.boardService.CreateBoard(c.Request.Context(), actorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// GetBoard godoc
// @Summary      Get a board
// @Description  Full detail with members and tasks; owner or member only
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} dto.BoardDetailResponse
// @Failure      403 {object} response.ErrorResponse "Not an owner or member"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Security     BearerAuth
// @Router       /boards/{boardId} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	result, err := h.boardService.GetBoard(c.Request.Context(), actorID, boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateBoard godoc
// @Summary      Update a board
// @Description  Partial update of title and/or full member-set replacement
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.UpdateBoardRequest true "Partial board payload"
// @Success      200 {object} dto.BoardDetailResponse
// @Failure      403 {object} response.ErrorResponse "Not an owner or member"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Security     BearerAuth
// @Router       /boards/{boardId} [patch]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.boardService.UpdateBoard(c.Request.Context(), actorID, boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteBoard godoc
// @Summary      Delete a board
// @Description  Owner only; cascades to the board's tasks and their comments
// @Tags         boards
// @Param        boardId path string true "Board ID (UUID)"
// @Success      204 "Deleted"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Security     BearerAuth
// @Router       /boards/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), actorID, boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseIDParam parses a UUID path parameter, writing a validation error
// on failure
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

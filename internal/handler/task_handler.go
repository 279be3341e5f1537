package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// TaskHandler serves task CRUD and the personal task lists
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTask godoc
// @Summary      Create a task
// @Description  Caller must own or be a member of the target board; assignee and reviewer must be members or the owner
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTaskRequest true "Task payload"
// @Success      201 {object} dto.TaskResponse
// @Failure      400 {object} response.ErrorResponse "Invalid payload, or a creator/assignee/reviewer outside the board's membership"
// @Security     BearerAuth
// @Router       /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.taskService.CreateTask(c.Request.Context(), actorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// ListAssignedToMe godoc
// @Summary      List tasks assigned to the caller
// @Tags         tasks
// @Produce      json
// @Success      200 {array} dto.TaskResponse
// @Security     BearerAuth
// @Router       /tasks/assigned-to-me [get]
func (h *TaskHandler) ListAssignedToMe(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	result, err := h.taskService.ListAssignedTo(c.Request.Context(), actorID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// ListReviewing godoc
// @Summary      List tasks the caller reviews
// @Tags         tasks
// @Produce      json
// @Success      200 {array} dto.TaskResponse
// @Security     BearerAuth
// @Router       /tasks/reviewing [get]
func (h *TaskHandler) ListReviewing(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	result, err := h.taskService.ListReviewing(c.Request.Context(), actorID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateTask godoc
// @Summary      Update a task
// @Description  Partial update; absent fields keep their value, an explicit null or the zero UUID clears assignee/reviewer
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.UpdateTaskRequest true "Partial task payload"
// @Success      200 {object} dto.TaskResponse
// @Failure      400 {object} response.ErrorResponse "Invalid payload or non-member assignee/reviewer"
// @Failure      403 {object} response.ErrorResponse "Not an owner or member of the board"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Security     BearerAuth
// @Router       /tasks/{taskId} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.taskService.UpdateTask(c.Request.Context(), actorID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Description  Board owner only; cascades to the task's comments
// @Tags         tasks
// @Param        taskId path string true "Task ID (UUID)"
// @Success      204 "Deleted"
// @Failure      403 {object} response.ErrorResponse "Not the board owner"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Security     BearerAuth
// @Router       /tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actorID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), actorID, taskID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

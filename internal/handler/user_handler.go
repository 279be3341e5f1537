package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// UserHandler serves user lookups
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CheckEmail godoc
// @Summary      Resolve an email address to a user
// @Description  Used when inviting members to a board
// @Tags         users
// @Produce      json
// @Param        email query string true "Email address"
// @Success      200 {object} dto.UserResponse
// @Failure      400 {object} response.ErrorResponse "Missing email parameter"
// @Failure      404 {object} response.ErrorResponse "No user with this email"
// @Security     BearerAuth
// @Router       /email-check [get]
func (h *UserHandler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Missing email parameter")
		return
	}

	result, err := h.userService.CheckEmail(c.Request.Context(), email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

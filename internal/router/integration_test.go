package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/dto"
)

// doRequest performs a JSON request against the router, optionally with a
// bearer token
func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerUser registers an account through the API and returns its token
// and user ID
func registerUser(t *testing.T, router *gin.Engine, fullName, email string) (string, uuid.UUID) {
	t.Helper()

	w := doRequest(router, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		FullName:         fullName,
		Email:            email,
		Password:         "secret123",
		RepeatedPassword: "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, "registration should succeed: %s", w.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.UserID
}

func TestEndToEnd_MembershipRevocation(t *testing.T) {
	cfg := setupTestConfig(t, "/api", nil)
	router := Setup(cfg)

	ownerToken, _ := registerUser(t, router, "Alice Owner", "alice@example.com")
	memberToken, memberID := registerUser(t, router, "Bob Member", "bob@example.com")

	// Owner creates a board with Bob as a member
	w := doRequest(router, http.MethodPost, "/api/boards", ownerToken, dto.CreateBoardRequest{
		Title:   "Shared Board",
		Members: []uuid.UUID{memberID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var board dto.BoardDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Len(t, board.Members, 2, "owner is forced into the member set")

	boardPath := fmt.Sprintf("/api/boards/%s", board.ID)

	// Bob can read the board while he is a member
	w = doRequest(router, http.MethodGet, boardPath, memberToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Owner replaces the member set, dropping Bob
	w = doRequest(router, http.MethodPatch, boardPath, ownerToken, map[string]interface{}{
		"members": []string{},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Bob's access is revoked immediately
	w = doRequest(router, http.MethodGet, boardPath, memberToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")

	// The owner keeps access through ownership even with an empty member
	// set, since the replacement does not re-add the owner
	w = doRequest(router, http.MethodGet, boardPath, ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Empty(t, board.Members)
}

func TestEndToEnd_TaskAndCommentFlow(t *testing.T) {
	cfg := setupTestConfig(t, "/api", nil)
	router := Setup(cfg)

	ownerToken, ownerID := registerUser(t, router, "Alice Owner", "alice@example.com")
	memberToken, memberID := registerUser(t, router, "Bob Member", "bob@example.com")

	w := doRequest(router, http.MethodPost, "/api/boards", ownerToken, dto.CreateBoardRequest{
		Title:   "Sprint Board",
		Members: []uuid.UUID{memberID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var board dto.BoardDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))

	// Member creates a task assigned to the owner
	w = doRequest(router, http.MethodPost, "/api/tasks", memberToken, map[string]interface{}{
		"board":       board.ID,
		"title":       "Set up CI",
		"status":      "to-do",
		"priority":    "high",
		"assignee_id": ownerID,
		"due_date":    "2026-10-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var task dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	require.NotNil(t, task.Assignee)
	assert.Equal(t, ownerID, task.Assignee.ID)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-10-01", *task.DueDate)

	// Assignee sees the task in the assigned-to-me list
	w = doRequest(router, http.MethodGet, "/api/tasks/assigned-to-me", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var assigned []dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assigned))
	require.Len(t, assigned, 1)
	assert.Equal(t, task.ID, assigned[0].ID)

	// A non-member assignee is rejected as a validation error
	w = doRequest(router, http.MethodPost, "/api/tasks", ownerToken, map[string]interface{}{
		"board":       board.ID,
		"title":       "Bad assignee",
		"status":      "to-do",
		"priority":    "low",
		"assignee_id": uuid.New(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// So is a creator outside the board's membership
	strangerToken, _ := registerUser(t, router, "Carol Stranger", "carol@example.com")
	w = doRequest(router, http.MethodPost, "/api/tasks", strangerToken, map[string]interface{}{
		"board":    board.ID,
		"title":    "Not my board",
		"status":   "to-do",
		"priority": "low",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "VALIDATION")

	// Member comments on the task
	commentsPath := fmt.Sprintf("/api/tasks/%s/comments", task.ID)
	w = doRequest(router, http.MethodPost, commentsPath, memberToken, dto.CreateCommentRequest{
		Content: "On it",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var comment dto.CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
	require.NotNil(t, comment.Author)
	assert.Equal(t, memberID, comment.Author.ID)

	// The board owner cannot delete another user's comment
	commentPath := fmt.Sprintf("/api/tasks/%s/comments/%s", task.ID, comment.ID)
	w = doRequest(router, http.MethodDelete, commentPath, ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The author can
	w = doRequest(router, http.MethodDelete, commentPath, memberToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Only the board owner can delete the task
	taskPath := fmt.Sprintf("/api/tasks/%s", task.ID)
	w = doRequest(router, http.MethodDelete, taskPath, memberToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodDelete, taskPath, ownerToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestEndToEnd_TaskPartialUpdate(t *testing.T) {
	cfg := setupTestConfig(t, "/api", nil)
	router := Setup(cfg)

	ownerToken, ownerID := registerUser(t, router, "Alice Owner", "alice@example.com")

	w := doRequest(router, http.MethodPost, "/api/boards", ownerToken, dto.CreateBoardRequest{
		Title: "Solo Board",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var board dto.BoardDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))

	w = doRequest(router, http.MethodPost, "/api/tasks", ownerToken, map[string]interface{}{
		"board":       board.ID,
		"title":       "Write docs",
		"description": "API reference",
		"status":      "to-do",
		"priority":    "medium",
		"assignee_id": ownerID,
		"due_date":    "2026-11-20",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var task dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))

	taskPath := fmt.Sprintf("/api/tasks/%s", task.ID)

	// Updating only the status leaves the other fields untouched
	w = doRequest(router, http.MethodPatch, taskPath, ownerToken, map[string]interface{}{
		"status": "in-progress",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, "in-progress", string(task.Status))
	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, "API reference", task.Description)
	require.NotNil(t, task.Assignee)

	// The zero UUID clears the assignee, an empty string clears the due date
	w = doRequest(router, http.MethodPatch, taskPath, ownerToken, map[string]interface{}{
		"assignee_id": uuid.Nil,
		"due_date":    "",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Nil(t, task.Assignee)
	assert.Nil(t, task.DueDate)

	// Re-assign, then clear with an explicit null
	w = doRequest(router, http.MethodPatch, taskPath, ownerToken, map[string]interface{}{
		"assignee_id": ownerID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	require.NotNil(t, task.Assignee)

	w = doRequest(router, http.MethodPatch, taskPath, ownerToken, map[string]interface{}{
		"assignee_id": nil,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Nil(t, task.Assignee, "a null assignee_id clears the relation")

	// An invalid status is rejected
	w = doRequest(router, http.MethodPatch, taskPath, ownerToken, map[string]interface{}{
		"status": "blocked",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEndToEnd_Authentication(t *testing.T) {
	cfg := setupTestConfig(t, "/api", nil)
	router := Setup(cfg)

	registerUser(t, router, "Alice Owner", "alice@example.com")

	// Duplicate registration is rejected
	w := doRequest(router, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		FullName:         "Alice Again",
		Email:            "alice@example.com",
		Password:         "secret123",
		RepeatedPassword: "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already exists")

	// Login with the right password succeeds
	w = doRequest(router, http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))

	// Wrong password and unknown email fail identically
	w = doRequest(router, http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	wrongPassword := w.Body.String()
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, wrongPassword, w.Body.String())

	// A garbage token is rejected
	w = doRequest(router, http.MethodGet, "/api/boards", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The issued token grants access
	w = doRequest(router, http.MethodGet, "/api/boards", auth.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEndToEnd_EmailCheck(t *testing.T) {
	cfg := setupTestConfig(t, "/api", nil)
	router := Setup(cfg)

	token, _ := registerUser(t, router, "Alice Owner", "alice@example.com")
	_, bobID := registerUser(t, router, "Bob Member", "bob@example.com")

	w := doRequest(router, http.MethodGet, "/api/email-check?email=bob@example.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, bobID, user.ID)
	assert.Equal(t, "Bob Member", user.FullName)

	w = doRequest(router, http.MethodGet, "/api/email-check?email=nobody@example.com", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

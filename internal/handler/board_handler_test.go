package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
)

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	CreateBoardFunc func(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardDetailResponse, error)
	ListBoardsFunc  func(ctx context.Context, actorID uuid.UUID) ([]*dto.BoardSummaryResponse, error)
	GetBoardFunc    func(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	UpdateBoardFunc func(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardDetailResponse, error)
	DeleteBoardFunc func(ctx context.Context, actorID, boardID uuid.UUID) error
}

func (m *MockBoardService) CreateBoard(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardDetailResponse, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, actorID, req)
	}
	return nil, nil
}

func (m *MockBoardService) ListBoards(ctx context.Context, actorID uuid.UUID) ([]*dto.BoardSummaryResponse, error) {
	if m.ListBoardsFunc != nil {
		return m.ListBoardsFunc(ctx, actorID)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoard(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, actorID, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardDetailResponse, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, actorID, boardID, req)
	}
	return nil, nil
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, actorID, boardID uuid.UUID) error {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, actorID, boardID)
	}
	return nil
}

func TestBoardHandler_CreateBoard(t *testing.T) {
	actorID := uuid.New()
	boardID := uuid.New()

	tests := []struct {
		name           string
		requestBody    interface{}
		mockService    func(*MockBoardService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success: board created",
			requestBody: dto.CreateBoardRequest{
				Title:   "Sprint Board",
				Members: []uuid.UUID{uuid.New()},
			},
			mockService: func(m *MockBoardService) {
				m.CreateBoardFunc = func(ctx context.Context, actor uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardDetailResponse, error) {
					return &dto.BoardDetailResponse{
						ID:      boardID,
						Title:   req.Title,
						OwnerID: actor,
						Members: []dto.UserResponse{{ID: actor}},
						Tasks:   []dto.TaskResponse{},
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var board dto.BoardDetailResponse
				if err := json.Unmarshal(w.Body.Bytes(), &board); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if board.Title != "Sprint Board" {
					t.Errorf("Expected title 'Sprint Board', got '%s'", board.Title)
				}
				if board.OwnerID != actorID {
					t.Errorf("Expected owner %s, got %s", actorID, board.OwnerID)
				}
			},
		},
		{
			name:           "failure: invalid request body",
			requestBody:    "invalid json",
			mockService:    func(m *MockBoardService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing title",
			requestBody:    map[string]interface{}{"members": []string{}},
			mockService:    func(m *MockBoardService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "failure: unknown member",
			requestBody: dto.CreateBoardRequest{
				Title:   "Sprint Board",
				Members: []uuid.UUID{uuid.New()},
			},
			mockService: func(m *MockBoardService) {
				m.CreateBoardFunc = func(ctx context.Context, actor uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardDetailResponse, error) {
					return nil, response.NewAppError(response.ErrCodeValidation, "Member does not exist", "")
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBoardService{}
			tt.mockService(mockService)
			handler := NewBoardHandler(mockService)

			router := setupTestRouter()
			router.POST("/api/boards", authAs(actorID), handler.CreateBoard)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/boards", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("CreateBoard() status = %v, want %v", w.Code, tt.expectedStatus)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestBoardHandler_GetBoard(t *testing.T) {
	actorID := uuid.New()
	boardID := uuid.New()

	tests := []struct {
		name           string
		boardID        string
		mockService    func(*MockBoardService)
		expectedStatus int
	}{
		{
			name:    "success: board retrieved",
			boardID: boardID.String(),
			mockService: func(m *MockBoardService) {
				m.GetBoardFunc = func(ctx context.Context, actor, id uuid.UUID) (*dto.BoardDetailResponse, error) {
					return &dto.BoardDetailResponse{
						ID:      id,
						Title:   "Sprint Board",
						OwnerID: actor,
						Members: []dto.UserResponse{},
						Tasks:   []dto.TaskResponse{},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: invalid board ID",
			boardID:        "not-a-uuid",
			mockService:    func(m *MockBoardService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "failure: not a member",
			boardID: boardID.String(),
			mockService: func(m *MockBoardService) {
				m.GetBoardFunc = func(ctx context.Context, actor, id uuid.UUID) (*dto.BoardDetailResponse, error) {
					return nil, response.NewAppError(response.ErrCodeForbidden, "Access to this board is denied", "")
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "failure: board not found",
			boardID: boardID.String(),
			mockService: func(m *MockBoardService) {
				m.GetBoardFunc = func(ctx context.Context, actor, id uuid.UUID) (*dto.BoardDetailResponse, error) {
					return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBoardService{}
			tt.mockService(mockService)
			handler := NewBoardHandler(mockService)

			router := setupTestRouter()
			router.GET("/api/boards/:boardId", authAs(actorID), handler.GetBoard)

			req := httptest.NewRequest(http.MethodGet, "/api/boards/"+tt.boardID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("GetBoard() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestBoardHandler_UpdateBoard(t *testing.T) {
	actorID := uuid.New()
	boardID := uuid.New()
	newTitle := "Renamed"

	tests := []struct {
		name           string
		requestBody    interface{}
		mockService    func(*MockBoardService)
		expectedStatus int
	}{
		{
			name:        "success: title updated",
			requestBody: dto.UpdateBoardRequest{Title: &newTitle},
			mockService: func(m *MockBoardService) {
				m.UpdateBoardFunc = func(ctx context.Context, actor, id uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardDetailResponse, error) {
					return &dto.BoardDetailResponse{ID: id, Title: *req.Title}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: invalid request body",
			requestBody:    "invalid json",
			mockService:    func(m *MockBoardService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: not a member",
			requestBody: dto.UpdateBoardRequest{Title: &newTitle},
			mockService: func(m *MockBoardService) {
				m.UpdateBoardFunc = func(ctx context.Context, actor, id uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardDetailResponse, error) {
					return nil, response.NewAppError(response.ErrCodeForbidden, "Access to this board is denied", "")
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBoardService{}
			tt.mockService(mockService)
			handler := NewBoardHandler(mockService)

			router := setupTestRouter()
			router.PATCH("/api/boards/:boardId", authAs(actorID), handler.UpdateBoard)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPatch, "/api/boards/"+boardID.String(), bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("UpdateBoard() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestBoardHandler_DeleteBoard(t *testing.T) {
	actorID := uuid.New()
	boardID := uuid.New()

	tests := []struct {
		name           string
		mockService    func(*MockBoardService)
		expectedStatus int
	}{
		{
			name: "success: board deleted",
			mockService: func(m *MockBoardService) {
				m.DeleteBoardFunc = func(ctx context.Context, actor, id uuid.UUID) error {
					return nil
				}
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "failure: not the owner",
			mockService: func(m *MockBoardService) {
				m.DeleteBoardFunc = func(ctx context.Context, actor, id uuid.UUID) error {
					return response.NewAppError(response.ErrCodeForbidden, "Only the owner can delete this board", "")
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBoardService{}
			tt.mockService(mockService)
			handler := NewBoardHandler(mockService)

			router := setupTestRouter()
			router.DELETE("/api/boards/:boardId", authAs(actorID), handler.DeleteBoard)

			req := httptest.NewRequest(http.MethodDelete, "/api/boards/"+boardID.String(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("DeleteBoard() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestBoardHandler_ListBoards(t *testing.T) {
	actorID := uuid.New()

	mockService := &MockBoardService{
		ListBoardsFunc: func(ctx context.Context, actor uuid.UUID) ([]*dto.BoardSummaryResponse, error) {
			return []*dto.BoardSummaryResponse{
				{ID: uuid.New(), Title: "Board A", OwnerID: actor, MemberCount: 2, TicketCount: 5},
				{ID: uuid.New(), Title: "Board B", OwnerID: uuid.New(), MemberCount: 3},
			}, nil
		},
	}
	handler := NewBoardHandler(mockService)

	router := setupTestRouter()
	router.GET("/api/boards", authAs(actorID), handler.ListBoards)

	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ListBoards() status = %v, want %v", w.Code, http.StatusOK)
	}

	var boards []dto.BoardSummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &boards); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(boards) != 2 {
		t.Errorf("Expected 2 boards, got %d", len(boards))
	}
	if boards[0].TicketCount != 5 {
		t.Errorf("Expected ticket count 5, got %d", boards[0].TicketCount)
	}
}

func TestBoardHandler_MissingAuthContext(t *testing.T) {
	handler := NewBoardHandler(&MockBoardService{})

	router := setupTestRouter()
	router.GET("/api/boards", handler.ListBoards)

	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("ListBoards() without auth context status = %v, want %v", w.Code, http.StatusUnauthorized)
	}
}

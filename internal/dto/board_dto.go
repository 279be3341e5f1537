package dto

import "github.com/google/uuid"

// CreateBoardRequest represents the request to create a new board.
// The creator becomes the owner and is always forced into the member set,
// whether or not it appears in members.
type CreateBoardRequest struct {
	Title   string      `json:"title" binding:"required,min=1,max=50"`
	Members []uuid.UUID `json:"members"`
}

// UpdateBoardRequest represents a partial board update. A nil Members
// slice leaves the membership untouched; a non-nil slice fully replaces
// it. Unlike create, the owner is not re-added automatically.
type UpdateBoardRequest struct {
	Title   *string      `json:"title" binding:"omitempty,min=1,max=50"`
	Members *[]uuid.UUID `json:"members"`
}

// BoardSummaryResponse is the list projection of a board with derived
// counts computed at read time
type BoardSummaryResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	OwnerID            uuid.UUID `json:"owner_id"`
	MemberCount        int       `json:"member_count"`
	TicketCount        int       `json:"ticket_count"`
	TasksToDoCount     int       `json:"tasks_to_do_count"`
	TasksHighPrioCount int       `json:"tasks_high_prio_count"`
}

// BoardDetailResponse is the full projection of a board with its members
// expanded to user profiles and its tasks included
type BoardDetailResponse struct {
	ID      uuid.UUID      `json:"id"`
	Title   string         `json:"title"`
	OwnerID uuid.UUID      `json:"owner_id"`
	Members []UserResponse `json:"members"`
	Tasks   []TaskResponse `json:"tasks"`
}

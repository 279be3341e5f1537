package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board, memberIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	ReplaceMembers(ctx context.Context, boardID uuid.UUID, memberIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create persists a board together with its membership rows in a single
// transaction. memberIDs is deduplicated; the caller is responsible for
// forcing the owner into the set on create.
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board, memberIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members", "Tasks").Create(board).Error; err != nil {
			return err
		}
		for _, userID := range dedupeUUIDs(memberIDs) {
			member := domain.BoardMember{BoardID: board.ID, UserID: userID}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
			board.Members = append(board.Members, member)
		}
		return nil
	})
}

// FindByID finds a board by ID with its members and tasks
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Tasks").
		First(&board, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindForUser returns all boards the user owns or is a member of. The
// subquery keeps each board exactly once even when the user holds both
// roles.
func (r *boardRepositoryImpl) FindForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	var boards []*domain.Board
	memberOf := r.db.Model(&domain.BoardMember{}).
		Select("board_id").
		Where("user_id = ?", userID)

	if err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Tasks").
		Where("owner_id = ? OR id IN (?)", userID, memberOf).
		Order("created_at ASC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Update saves the board's own columns, leaving associations untouched
func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).
		Omit("Members", "Tasks").
		Save(board).Error
}

// ReplaceMembers replaces the full membership set in one transaction. The
// new set is not merged with the old one, and the owner is not re-added
// automatically.
func (r *boardRepositoryImpl) ReplaceMembers(ctx context.Context, boardID uuid.UUID, memberIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", boardID).
			Delete(&domain.BoardMember{}).Error; err != nil {
			return err
		}
		for _, userID := range dedupeUUIDs(memberIDs) {
			member := domain.BoardMember{BoardID: boardID, UserID: userID}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a board with explicit cascade steps: comments on the
// board's tasks, the tasks, the membership rows, then the board itself,
// all in one transaction.
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&domain.Task{}).
			Select("id").
			Where("board_id = ?", id)

		if err := tx.Where("task_id IN (?)", taskIDs).
			Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).
			Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).
			Delete(&domain.BoardMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Board{}, "id = ?", id).Error
	})
}

// dedupeUUIDs removes duplicate IDs while preserving order
func dedupeUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}

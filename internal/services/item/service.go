package item

import (
	"context"
	"fmt"
	"time"

	"github.com/quadro-app/quadro/internal/database"
	"github.com/quadro-app/quadro/internal/events"
	"github.com/quadro-app/quadro/internal/models"
)

// Service defines all item-related business operations
type Service interface {
	// Read operations
	GetBoardItems(ctx context.Context, kind models.BoardKind) ([]*models.Item, error)
	GetItem(ctx context.Context, itemID string) (*models.Item, error)

	// Write operations
	CreateItem(ctx context.Context, req CreateItemRequest) (*models.Item, error)
	UpdateItem(ctx context.Context, req UpdateItemRequest) (*models.Item, error)
	DeleteItem(ctx context.Context, itemID string) error

	// Item movements
	MoveItem(ctx context.Context, itemID, status string) (*models.Item, error)
}

// CreateItemRequest encapsulates all data needed to create an item
type CreateItemRequest struct {
	Kind        models.BoardKind
	Title       string
	Description string
	Status      string // Optional: empty means the board's first canonical status
	Priority    string // Optional: empty means the default priority
	Owner       string
	DueDate     *time.Time
}

// UpdateItemRequest encapsulates all data needed to update an item
// Fields with pointers are optional - nil means don't update
type UpdateItemRequest struct {
	ItemID       string
	Title        *string
	Description  *string
	Priority     *string
	Owner        *string
	DueDate      *time.Time
	ClearDueDate bool
}

// service implements Service interface
type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new item service
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// GetBoardItems returns all items for one board in arrival order
func (s *service) GetBoardItems(ctx context.Context, kind models.BoardKind) ([]*models.Item, error) {
	if !kind.Valid() {
		return nil, ErrInvalidBoardKind
	}
	return s.repo.GetItemsByKind(ctx, kind)
}

// GetItem returns a single item
func (s *service) GetItem(ctx context.Context, itemID string) (*models.Item, error) {
	if itemID == "" {
		return nil, ErrInvalidItemID
	}
	return s.repo.GetItem(ctx, itemID)
}

// CreateItem handles item creation with validation and business rules
func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*models.Item, error) {
	if err := s.validateCreateItem(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = defaultStatus(req.Kind)
	}

	created, err := s.repo.CreateItem(ctx, &models.Item{
		Kind:        req.Kind,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    req.Priority,
		Owner:       req.Owner,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	// Publish event (if event client exists)
	s.publishItemEvent(created.Kind)

	return created, nil
}

// UpdateItem handles item edits with validation
func (s *service) UpdateItem(ctx context.Context, req UpdateItemRequest) (*models.Item, error) {
	if req.ItemID == "" {
		return nil, ErrInvalidItemID
	}
	if req.Title != nil && *req.Title == "" {
		return nil, ErrEmptyTitle
	}
	if req.Title != nil && len(*req.Title) > 255 {
		return nil, ErrTitleTooLong
	}
	if req.Priority != nil && !validPriority(*req.Priority) {
		return nil, ErrInvalidPriority
	}

	updated, err := s.repo.UpdateItem(ctx, req.ItemID, models.ItemUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		Owner:        req.Owner,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.publishItemEvent(updated.Kind)

	return updated, nil
}

// MoveItem commits a status change, the write half of a drag-and-drop move
func (s *service) MoveItem(ctx context.Context, itemID, status string) (*models.Item, error) {
	if itemID == "" {
		return nil, ErrInvalidItemID
	}
	if status == "" {
		return nil, ErrInvalidStatus
	}

	moved, err := s.repo.UpdateItemStatus(ctx, itemID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to move item: %w", err)
	}

	s.publishItemEvent(moved.Kind)

	return moved, nil
}

// DeleteItem handles item deletion
func (s *service) DeleteItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return ErrInvalidItemID
	}

	// Capture the kind before the row disappears so the event targets the
	// right board
	existing, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.publishItemEvent(existing.Kind)

	return nil
}

func (s *service) validateCreateItem(req CreateItemRequest) error {
	if !req.Kind.Valid() {
		return ErrInvalidBoardKind
	}
	if req.Title == "" {
		return ErrEmptyTitle
	}
	if len(req.Title) > 255 {
		return ErrTitleTooLong
	}
	if req.Priority != "" && !validPriority(req.Priority) {
		return ErrInvalidPriority
	}
	return nil
}

func validPriority(priority string) bool {
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

// defaultStatus is the canonical status of each board's first default column
func defaultStatus(kind models.BoardKind) string {
	if kind == models.BoardProjects {
		return models.StatusPlanning
	}
	return models.StatusPending
}

// publishItemEvent notifies the daemon that one board's items changed.
// Safe to call with no event client; delivery failures never surface to the
// caller because the database write has already committed.
func (s *service) publishItemEvent(kind models.BoardKind) {
	if s.eventClient == nil {
		return
	}

	_ = events.PublishWithRetry(s.eventClient, events.Event{
		Type:      events.EventDatabaseChanged,
		Kind:      string(kind),
		Timestamp: time.Now(),
	}, 3)
}

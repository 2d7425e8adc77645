package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

// NoticeStore is the storage contract the notice board consumes
type NoticeStore interface {
	GetAllOrderedByDateDesc(ctx context.Context) ([]*models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id int64) error
}

// NoticeService manages the announcement board
type NoticeService struct {
	store NoticeStore

	now func() time.Time
}

// NewNoticeService creates a new notice service instance
func NewNoticeService(store NoticeStore) *NoticeService {
	return &NoticeService{
		store: store,
		now:   time.Now,
	}
}

// List retrieves all notices, most recent first
func (s *NoticeService) List(ctx context.Context) ([]*models.Notice, error) {
	notices, err := s.store.GetAllOrderedByDateDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notices: %w", err)
	}
	return notices, nil
}

// Create posts a notice. A zero date defaults to the current date.
func (s *NoticeService) Create(ctx context.Context, notice *models.Notice) (*models.Notice, error) {
	if strings.TrimSpace(notice.Title) == "" {
		return nil, apperrors.NewValidationError("title cannot be empty")
	}
	if strings.TrimSpace(notice.Content) == "" {
		return nil, apperrors.NewValidationError("content cannot be empty")
	}
	if !notice.Priority.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown priority %q", notice.Priority))
	}

	if notice.Date.IsZero() {
		notice.Date = s.now()
	}

	if err := s.store.Create(ctx, notice); err != nil {
		return nil, err
	}

	return notice, nil
}

// Delete removes a notice, failing with ErrNoticeNotFound when absent
func (s *NoticeService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eren/campuscore/internal/app/models"
	"github.com/eren/campuscore/internal/pkg/apperrors"
)

func TestNoticeService_Create_DefaultsDate(t *testing.T) {
	store := newFakeNoticeStore()
	svc := NewNoticeService(store)
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return today }

	created, err := svc.Create(context.Background(), &models.Notice{
		Title:    "Exam schedule",
		Content:  "Finals start next month.",
		Priority: models.NoticePriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, today, created.Date)

	// An explicit date is kept as given
	explicit := today.AddDate(0, 0, -3)
	created, err = svc.Create(context.Background(), &models.Notice{
		Title:    "Library hours",
		Content:  "Extended during finals.",
		Date:     explicit,
		Priority: models.NoticePriorityNormal,
	})
	require.NoError(t, err)
	assert.Equal(t, explicit, created.Date)
}

func TestNoticeService_Create_Validation(t *testing.T) {
	svc := NewNoticeService(newFakeNoticeStore())

	_, err := svc.Create(context.Background(), &models.Notice{Content: "body", Priority: models.NoticePriorityLow})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(context.Background(), &models.Notice{Title: "title", Priority: models.NoticePriorityLow})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(context.Background(), &models.Notice{Title: "title", Content: "body", Priority: "urgent"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNoticeService_List_NewestFirst(t *testing.T) {
	store := newFakeNoticeStore()
	svc := NewNoticeService(store)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), &models.Notice{
			Title:    title,
			Content:  "body",
			Date:     base.AddDate(0, 0, i),
			Priority: models.NoticePriorityNormal,
		})
		require.NoError(t, err)
	}

	notices, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, notices, 3)
	assert.Equal(t, "third", notices[0].Title)
	assert.Equal(t, "first", notices[2].Title)
}

func TestNoticeService_Delete(t *testing.T) {
	store := newFakeNoticeStore()
	svc := NewNoticeService(store)

	created, err := svc.Create(context.Background(), &models.Notice{
		Title:    "Holiday",
		Content:  "Campus closed Friday.",
		Date:     time.Now(),
		Priority: models.NoticePriorityLow,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), apperrors.ErrNoticeNotFound)
}

package favorites

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhmaterial/material-api/internal/database"
	"github.com/zhmaterial/material-api/internal/models"
	apperrors "github.com/zhmaterial/material-api/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Favorite{}))
	t.Cleanup(func() { _ = db.Close() })

	return NewService(db)
}

func validFavorite() *models.Favorite {
	return &models.Favorite{
		MediaID:   195893,
		MediaKind: "photo",
		Title:     "meeting business office",
		Thumbnail: "https://cdn.pixabay.com/webformat.jpg",
		PageURL:   "https://pixabay.com/photos/meeting-195893/",
		Tags:      "meeting, business, office",
		Source:    "Pixabay",
	}
}

func TestService_SaveAndList(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Save(context.Background(), validFavorite()))

	items, total, err := svc.List(context.Background(), "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, 195893, items[0].MediaID)
	assert.Equal(t, "meeting business office", items[0].Title)
}

func TestService_SaveValidation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		mutate   func(*models.Favorite)
	}{
		{"missing media id", func(f *models.Favorite) { f.MediaID = 0 }},
		{"invalid kind", func(f *models.Favorite) { f.MediaKind = "gif" }},
		{"missing title", func(f *models.Favorite) { f.Title = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			favorite := validFavorite()
			tt.mutate(favorite)

			err := svc.Save(context.Background(), favorite)
			require.Error(t, err)
			assert.True(t, apperrors.IsClientError(err))
		})
	}
}

func TestService_SaveTwiceUpserts(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Save(context.Background(), validFavorite()))

	updated := validFavorite()
	updated.Title = "renamed"
	require.NoError(t, svc.Save(context.Background(), updated))

	items, total, err := svc.List(context.Background(), "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "same media saved twice should stay one row")
	require.Len(t, items, 1)
	assert.Equal(t, "renamed", items[0].Title)
}

func TestService_ListFiltersByKind(t *testing.T) {
	svc := newTestService(t)

	photo := validFavorite()
	require.NoError(t, svc.Save(context.Background(), photo))

	video := validFavorite()
	video.MediaID = 125
	video.MediaKind = "video"
	video.Title = "flowers yellow blossom"
	require.NoError(t, svc.Save(context.Background(), video))

	videos, total, err := svc.List(context.Background(), "video", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, videos, 1)
	assert.Equal(t, "video", videos[0].MediaKind)
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t)

	favorite := validFavorite()
	require.NoError(t, svc.Save(context.Background(), favorite))
	require.NotZero(t, favorite.ID)

	require.NoError(t, svc.Delete(context.Background(), favorite.ID))

	_, total, err := svc.List(context.Background(), "", 1, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestService_DeleteMissing(t *testing.T) {
	svc := newTestService(t)

	err := svc.Delete(context.Background(), 9999)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

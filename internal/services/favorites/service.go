// Package favorites persists saved media references.
package favorites

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zhmaterial/material-api/internal/database"
	"github.com/zhmaterial/material-api/internal/models"
	apperrors "github.com/zhmaterial/material-api/pkg/errors"
)

// Service manages favorite media items
type Service interface {
	Save(ctx context.Context, favorite *models.Favorite) error
	List(ctx context.Context, mediaKind string, page, perPage int) ([]models.Favorite, int64, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService creates a favorites service
func NewService(db *database.DB) Service {
	return &service{repo: NewRepository(db)}
}

// Save stores a favorite; saving the same media twice is an upsert, not an
// error
func (s *service) Save(ctx context.Context, favorite *models.Favorite) error {
	if favorite.MediaID == 0 {
		return apperrors.NewMissingField("mediaId")
	}
	if favorite.MediaKind != "photo" && favorite.MediaKind != "video" {
		return apperrors.NewInvalidInput(fmt.Sprintf("invalid media kind: %s", favorite.MediaKind))
	}
	if favorite.Title == "" {
		return apperrors.NewMissingField("title")
	}

	if err := s.repo.Upsert(ctx, favorite); err != nil {
		return apperrors.NewDatabase("save favorite", err)
	}
	return nil
}

// List returns a page of favorites, optionally filtered by media kind
func (s *service) List(ctx context.Context, mediaKind string, page, perPage int) ([]models.Favorite, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	items, total, err := s.repo.List(ctx, mediaKind, page, perPage)
	if err != nil {
		return nil, 0, apperrors.NewDatabase("list favorites", err)
	}
	return items, total, nil
}

// Delete removes a favorite by its row id
func (s *service) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound("favorite")
	}
	if err != nil {
		return apperrors.NewDatabase("delete favorite", err)
	}
	return nil
}

package favorites

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zhmaterial/material-api/internal/database"
	"github.com/zhmaterial/material-api/internal/models"
)

// Repository handles favorite persistence
type Repository interface {
	Upsert(ctx context.Context, favorite *models.Favorite) error
	List(ctx context.Context, mediaKind string, page, perPage int) ([]models.Favorite, int64, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *database.DB
}

// NewRepository creates a favorites repository
func NewRepository(db *database.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, favorite *models.Favorite) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "media_id"}, {Name: "media_kind"}},
			UpdateAll: true,
		}).
		Create(favorite).Error
}

func (r *repository) List(ctx context.Context, mediaKind string, page, perPage int) ([]models.Favorite, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Favorite{})
	if mediaKind != "" {
		query = query.Where("media_kind = ?", mediaKind)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Favorite
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Favorite{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

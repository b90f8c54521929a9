// Package history records executed searches so the UI can offer recent
// queries. Recording is best-effort by design: a failed insert must never
// fail the search that produced it.
package history

import (
	"context"
	"log"

	"github.com/zhmaterial/material-api/internal/database"
	"github.com/zhmaterial/material-api/internal/models"
	apperrors "github.com/zhmaterial/material-api/pkg/errors"
)

// recentLimit caps how many entries Recent returns
const recentLimit = 10

// Service manages search history
type Service interface {
	// Record stores one search, swallowing storage errors
	Record(ctx context.Context, entry *models.SearchHistory)

	// Recent returns the latest distinct queries, most recent first
	Recent(ctx context.Context) ([]models.SearchHistory, error)

	// Clear removes all history entries
	Clear(ctx context.Context) error
}

type service struct {
	db *database.DB
}

// NewService creates a history service
func NewService(db *database.DB) Service {
	return &service{db: db}
}

func (s *service) Record(ctx context.Context, entry *models.SearchHistory) {
	if entry.Query == "" {
		return
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		log.Printf("[WARN] failed to record search history: %v", err)
	}
}

func (s *service) Recent(ctx context.Context) ([]models.SearchHistory, error) {
	var entries []models.SearchHistory
	err := s.db.WithContext(ctx).
		Raw(`SELECT * FROM search_history
		     WHERE id IN (SELECT MAX(id) FROM search_history GROUP BY query)
		     ORDER BY id DESC LIMIT ?`, recentLimit).
		Scan(&entries).Error
	if err != nil {
		return nil, apperrors.NewDatabase("list search history", err)
	}
	return entries, nil
}

func (s *service) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec(`DELETE FROM search_history`).Error; err != nil {
		return apperrors.NewDatabase("clear search history", err)
	}
	return nil
}

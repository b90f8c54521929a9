package types

import (
	"github.com/zhmaterial/material-api/internal/database"
	"github.com/zhmaterial/material-api/internal/services/favorites"
	"github.com/zhmaterial/material-api/internal/services/history"
	"github.com/zhmaterial/material-api/internal/services/search"
	"github.com/zhmaterial/material-api/internal/services/translation"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB               *database.DB
	SearchService    *search.Service
	Translator       translation.Translator
	FavoritesService favorites.Service
	HistoryService   history.Service
}

package types

import "github.com/zhmaterial/material-api/internal/models"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// TranslateRequest is the body of the translation endpoint
type TranslateRequest struct {
	Text string `json:"text" binding:"required" example:"商业会议"`
}

// TranslateResponse is the translation endpoint response
type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
	Source         string `json:"source"`
	Cached         bool   `json:"cached,omitempty"`
}

// FavoriteRequest is the body for saving a favorite
type FavoriteRequest struct {
	MediaID   int    `json:"mediaId" binding:"required" example:"195893"`
	MediaKind string `json:"mediaKind" binding:"required" example:"photo"`
	Title     string `json:"title" binding:"required" example:"business meeting office"`
	Thumbnail string `json:"thumbnail" example:"https://cdn.pixabay.com/photo.jpg"`
	PageURL   string `json:"pageURL" example:"https://pixabay.com/photos/195893"`
	Tags      string `json:"tags" example:"business, meeting, office"`
	Source    string `json:"source" example:"Pixabay"`
}

// FavoritesResponse lists saved favorites
type FavoritesResponse struct {
	BaseResponse
	Favorites []models.Favorite `json:"favorites"`
	Count     int               `json:"count"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
}

// SingleFavoriteResponse wraps one saved favorite
type SingleFavoriteResponse struct {
	BaseResponse
	Favorite *models.Favorite `json:"favorite"`
}

// HistoryResponse lists recent searches
type HistoryResponse struct {
	BaseResponse
	History []models.SearchHistory `json:"history"`
	Count   int                    `json:"count"`
}

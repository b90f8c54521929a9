package models

import "time"

// SearchHistory records one executed search. Kept best-effort: a failed
// insert never fails the search that produced it.
type SearchHistory struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Query           string `gorm:"not null;index" json:"query"`
	TranslatedQuery string `json:"translatedQuery"`
	MediaType       string `json:"type"`
	TotalHits       int    `json:"totalHits"`
	UsedMockData    bool   `json:"usedMockData"`
}

// TableName overrides the table name
func (SearchHistory) TableName() string {
	return "search_history"
}

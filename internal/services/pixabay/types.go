package pixabay

// imageResponse is the raw Pixabay image search response
type imageResponse struct {
	Total     int         `json:"total"`
	TotalHits int         `json:"totalHits"`
	Hits      []imageHit  `json:"hits"`
}

type imageHit struct {
	ID            int    `json:"id"`
	PageURL       string `json:"pageURL"`
	Type          string `json:"type"`
	Tags          string `json:"tags"`
	PreviewURL    string `json:"previewURL"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL"`
	Views         int    `json:"views"`
	Downloads     int    `json:"downloads"`
	Likes         int    `json:"likes"`
	User          string `json:"user"`
	UserImageURL  string `json:"userImageURL"`
}

// videoResponse is the raw Pixabay video search response
type videoResponse struct {
	Total     int        `json:"total"`
	TotalHits int        `json:"totalHits"`
	Hits      []videoHit `json:"hits"`
}

type videoHit struct {
	ID           int            `json:"id"`
	PageURL      string         `json:"pageURL"`
	Type         string         `json:"type"`
	Tags         string         `json:"tags"`
	Duration     int            `json:"duration"`
	Videos       videoRenditions `json:"videos"`
	Views        int            `json:"views"`
	Downloads    int            `json:"downloads"`
	Likes        int            `json:"likes"`
	User         string         `json:"user"`
	UserImageURL string         `json:"userImageURL"`
}

type videoRenditions struct {
	Large  rendition `json:"large"`
	Medium rendition `json:"medium"`
	Small  rendition `json:"small"`
	Tiny   rendition `json:"tiny"`
}

type rendition struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int    `json:"size"`
}

// MediaItem is the normalized result shape shared by photo and video hits.
// MediaKind decides which of the kind-specific fields are populated.
type MediaItem struct {
	ID        int    `json:"id"`
	MediaKind string `json:"type"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`

	// Photo only
	PreviewURL    string `json:"previewURL,omitempty"`
	LargeImageURL string `json:"largeImageURL,omitempty"`

	// Video only
	VideoURL string `json:"videoURL,omitempty"`
	Duration int    `json:"duration,omitempty"`

	PageURL      string `json:"pageURL"`
	Tags         string `json:"tags"`
	Views        int    `json:"views"`
	Downloads    int    `json:"downloads"`
	Likes        int    `json:"likes"`
	User         string `json:"user"`
	UserImageURL string `json:"userImageURL"`
	Source       string `json:"source"`
}

// Media kinds
const (
	KindPhoto = "photo"
	KindVideo = "video"
)

// RateLimit carries Pixabay rate-limit headers verbatim
type RateLimit struct {
	Remaining string `json:"remaining"`
	Reset     string `json:"reset"`
}

// Result is one page of normalized search results from a single endpoint
type Result struct {
	TotalHits int        `json:"totalHits"`
	Hits      []MediaItem `json:"hits"`
	RateLimit *RateLimit `json:"rateLimit,omitempty"`
}

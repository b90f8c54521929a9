package pixabay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:            "test-key",
		BaseURL:           baseURL,
		Timeout:           5 * time.Second,
		RequestsPerMinute: 6000,
		Burst:             100,
	})
}

func TestClient_SearchPhotos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != "test-key" {
			t.Errorf("expected key=test-key, got %s", q.Get("key"))
		}
		if q.Get("q") != "business meeting" {
			t.Errorf("expected q='business meeting', got %s", q.Get("q"))
		}
		if q.Get("image_type") != "photo" {
			t.Errorf("expected image_type=photo, got %s", q.Get("image_type"))
		}
		if q.Get("safesearch") != "true" {
			t.Errorf("expected safesearch=true, got %s", q.Get("safesearch"))
		}
		if q.Get("order") != "popular" {
			t.Errorf("expected order=popular, got %s", q.Get("order"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-RateLimit-Remaining", "99")
		w.Header().Set("X-RateLimit-Reset", "42")
		_, _ = w.Write([]byte(`{
			"total": 500,
			"totalHits": 120,
			"hits": [{
				"id": 195893,
				"pageURL": "https://pixabay.com/photos/meeting-195893/",
				"type": "photo",
				"tags": "meeting, business, office, people",
				"previewURL": "https://cdn.pixabay.com/preview.jpg",
				"webformatURL": "https://cdn.pixabay.com/webformat.jpg",
				"largeImageURL": "https://cdn.pixabay.com/large.jpg",
				"views": 7671,
				"downloads": 6439,
				"likes": 5,
				"user": "Josch13",
				"userImageURL": "https://cdn.pixabay.com/user.jpg"
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/")
	result, err := client.SearchPhotos(context.Background(), "business meeting", 1, 20)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.TotalHits != 120 {
		t.Errorf("expected totalHits 120, got %d", result.TotalHits)
	}
	if len(result.Hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(result.Hits))
	}

	hit := result.Hits[0]
	if hit.MediaKind != KindPhoto {
		t.Errorf("expected kind %q, got %q", KindPhoto, hit.MediaKind)
	}
	if hit.Title != "meeting business office" {
		t.Errorf("expected title from first three tags, got %q", hit.Title)
	}
	if hit.Thumbnail != "https://cdn.pixabay.com/webformat.jpg" {
		t.Errorf("photo thumbnail should be webformatURL, got %q", hit.Thumbnail)
	}
	if hit.LargeImageURL != "https://cdn.pixabay.com/large.jpg" {
		t.Errorf("unexpected largeImageURL %q", hit.LargeImageURL)
	}
	if hit.VideoURL != "" {
		t.Errorf("photo hit should not carry a videoURL, got %q", hit.VideoURL)
	}
	if hit.Source != SourceLabel {
		t.Errorf("expected source %q, got %q", SourceLabel, hit.Source)
	}

	if result.RateLimit == nil {
		t.Fatal("expected rate limit info from headers")
	}
	if result.RateLimit.Remaining != "99" || result.RateLimit.Reset != "42" {
		t.Errorf("unexpected rate limit %+v", result.RateLimit)
	}
}

func TestClient_SearchVideos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/videos/") {
			t.Errorf("expected videos path, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("video_type"); got != "all" {
			t.Errorf("expected video_type=all, got %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total": 42,
			"totalHits": 42,
			"hits": [{
				"id": 125,
				"pageURL": "https://pixabay.com/videos/id-125/",
				"type": "film",
				"tags": "flowers, yellow, blossom",
				"duration": 12,
				"videos": {
					"large": {"url": "https://cdn.pixabay.com/large.mp4", "width": 1920, "height": 1080, "size": 6615235},
					"medium": {"url": "https://cdn.pixabay.com/medium.mp4", "width": 1280, "height": 720, "size": 3562083},
					"small": {"url": "https://cdn.pixabay.com/small.mp4", "width": 960, "height": 540, "size": 2030736},
					"tiny": {"url": "https://cdn.pixabay.com/tiny.mp4", "width": 640, "height": 360, "size": 1030736}
				},
				"views": 169,
				"downloads": 66,
				"likes": 1,
				"user": "",
				"userImageURL": ""
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/")
	result, err := client.SearchVideos(context.Background(), "flowers", 1, 20)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(result.Hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(result.Hits))
	}

	hit := result.Hits[0]
	if hit.MediaKind != KindVideo {
		t.Errorf("expected kind %q, got %q", KindVideo, hit.MediaKind)
	}
	if hit.Thumbnail != "https://cdn.pixabay.com/small.mp4" {
		t.Errorf("video thumbnail should come from the small rendition, got %q", hit.Thumbnail)
	}
	if hit.VideoURL != "https://cdn.pixabay.com/medium.mp4" {
		t.Errorf("video URL should come from the medium rendition, got %q", hit.VideoURL)
	}
	if hit.Duration != 12 {
		t.Errorf("expected duration 12, got %d", hit.Duration)
	}
	if hit.User != "Unknown" {
		t.Errorf("blank user should surface as 'Unknown', got %q", hit.User)
	}

	if result.RateLimit != nil {
		t.Error("expected nil rate limit when headers are absent")
	}
}

func TestClient_RateLimitedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/")
	_, err := client.SearchPhotos(context.Background(), "query", 1, 20)
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestClient_ServerErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/")
	_, err := client.SearchPhotos(context.Background(), "query", 1, 20)
	if !errors.Is(err, ErrServer) {
		t.Errorf("expected ErrServer, got %v", err)
	}
}

func TestClient_ClientErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/")
	_, err := client.SearchPhotos(context.Background(), "query", 1, 20)
	if !errors.Is(err, ErrHTTP) {
		t.Errorf("expected ErrHTTP, got %v", err)
	}
	if errors.Is(err, ErrServer) || errors.Is(err, ErrRateLimited) {
		t.Errorf("error should not match other categories: %v", err)
	}
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"total":0,"totalHits":0,"hits":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:            "test-key",
		BaseURL:           server.URL + "/",
		Timeout:           30 * time.Millisecond,
		RequestsPerMinute: 6000,
		Burst:             100,
	})

	_, err := client.SearchPhotos(context.Background(), "query", 1, 20)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestClient_Clamping(t *testing.T) {
	var gotQuery, gotPage, gotPerPage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = q.Get("q")
		gotPage = q.Get("page")
		gotPerPage = q.Get("per_page")
		_, _ = w.Write([]byte(`{"total":0,"totalHits":0,"hits":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/")

	longQuery := strings.Repeat("词", 150)
	if _, err := client.SearchPhotos(context.Background(), longQuery, 999, 999); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := len([]rune(gotQuery)); got != 100 {
		t.Errorf("query should be clamped to 100 runes, got %d", got)
	}
	if gotPage != "50" {
		t.Errorf("page should be clamped to 50, got %s", gotPage)
	}
	if gotPerPage != "200" {
		t.Errorf("per_page should be clamped to 200, got %s", gotPerPage)
	}

	if _, err := client.SearchPhotos(context.Background(), "q", 0, 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotPage != "1" {
		t.Errorf("page should be raised to 1, got %s", gotPage)
	}
	if gotPerPage != "1" {
		t.Errorf("per_page should be raised to 1, got %s", gotPerPage)
	}
}

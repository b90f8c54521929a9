// Package search orchestrates one media search end to end: validate,
// translate, query the live API or the demo generator, and assemble the
// response envelope. Outside of input validation it is designed to always
// produce a usable response, degrading to demo data rather than failing.
package search

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/zhmaterial/material-api/internal/services/pixabay"
	"github.com/zhmaterial/material-api/internal/services/translation"
	"github.com/zhmaterial/material-api/pkg/errors"
)

// Media type filters accepted by the search entry point
const (
	TypeAll    = "all"
	TypePhotos = "photos"
	TypeVideos = "videos"
)

// Page size constants: a full page for single-kind searches, an even split
// when merging photos and videos
const (
	fullPageSize  = 20
	splitPageSize = 10
)

// Request is one validated search invocation
type Request struct {
	Query     string
	MediaType string
	Page      int
}

// Response is the assembled search envelope returned to callers
type Response struct {
	Query           string               `json:"query"`
	TranslatedQuery string               `json:"translatedQuery"`
	MediaType       string               `json:"type"`
	Page            int                  `json:"page"`
	TotalHits       int                  `json:"totalHits"`
	Hits            []pixabay.MediaItem  `json:"hits"`
	UsingMockData   bool                 `json:"usingMockData"`
	RateLimit       *pixabay.RateLimit   `json:"rateLimit,omitempty"`
}

// MediaSearcher is the live search backend
type MediaSearcher interface {
	SearchPhotos(ctx context.Context, query string, page, perPage int) (*pixabay.Result, error)
	SearchVideos(ctx context.Context, query string, page, perPage int) (*pixabay.Result, error)
}

// MockGenerator produces fallback results and never fails
type MockGenerator interface {
	Generate(ctx context.Context, originalQuery, translatedQuery, mediaType string, page int) *pixabay.Result
}

// Service is the search orchestrator
type Service struct {
	translator         translation.Translator
	client             MediaSearcher
	generator          MockGenerator
	configured         bool
	translationTimeout time.Duration
}

// NewService creates a search orchestrator. configured reports whether a
// real API key is available; when false every search is served by the
// generator.
func NewService(translator translation.Translator, client MediaSearcher, generator MockGenerator, configured bool, translationTimeout time.Duration) *Service {
	if translationTimeout == 0 {
		translationTimeout = 3 * time.Second
	}
	return &Service{
		translator:         translator,
		client:             client,
		generator:          generator,
		configured:         configured,
		translationTimeout: translationTimeout,
	}
}

// Search runs one search. The only error it returns is a client input
// error; every upstream failure degrades to demo data instead.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return nil, errors.NewInvalidInput("Query parameter is required")
	}
	if req.Page < 1 || req.Page > 100 {
		return nil, errors.NewInvalidInput("Invalid page number")
	}
	if req.MediaType == "" {
		req.MediaType = TypeAll
	}

	translatedQuery := s.resolveTranslation(ctx, req.Query)

	var (
		result    *pixabay.Result
		usingMock bool
	)

	if s.configured {
		live, err := s.performSearch(ctx, translatedQuery, req.MediaType, req.Page)
		if err != nil {
			log.Printf("[WARN] live search failed, falling back to demo data: %v", err)
			result = s.generator.Generate(ctx, req.Query, translatedQuery, req.MediaType, req.Page)
			usingMock = true
		} else {
			result = live
		}
	} else {
		result = s.generator.Generate(ctx, req.Query, translatedQuery, req.MediaType, req.Page)
		usingMock = true
	}

	return &Response{
		Query:           req.Query,
		TranslatedQuery: translatedQuery,
		MediaType:       req.MediaType,
		Page:            req.Page,
		TotalHits:       result.TotalHits,
		Hits:            result.Hits,
		UsingMockData:   usingMock,
		RateLimit:       result.RateLimit,
	}, nil
}

// resolveTranslation runs the resolver under its own outer deadline,
// separate from the resolver's per-provider timeouts. Translation failure
// is never fatal: on timeout the original query is used as-is.
func (s *Service) resolveTranslation(ctx context.Context, query string) string {
	callCtx, cancel := context.WithTimeout(ctx, s.translationTimeout)
	defer cancel()

	done := make(chan translation.Result, 1)
	go func() {
		done <- s.translator.Translate(callCtx, query)
	}()

	select {
	case res := <-done:
		if res.Translated == "" {
			return query
		}
		return res.Translated
	case <-callCtx.Done():
		log.Printf("[WARN] translation timed out, using original query")
		return query
	}
}

// performSearch dispatches to the right endpoint combination for the
// requested media type
func (s *Service) performSearch(ctx context.Context, query, mediaType string, page int) (*pixabay.Result, error) {
	switch mediaType {
	case TypePhotos:
		return s.client.SearchPhotos(ctx, query, page, fullPageSize)
	case TypeVideos:
		return s.client.SearchVideos(ctx, query, page, fullPageSize)
	default:
		return s.searchBoth(ctx, query, page)
	}
}

type settled struct {
	result *pixabay.Result
	err    error
}

// searchBoth runs the photo and video searches concurrently and settles
// both before merging. One branch failing contributes an empty partial
// result without cancelling the other; only when both fail does the whole
// search report an error, triggering the demo fallback upstream.
func (s *Service) searchBoth(ctx context.Context, query string, page int) (*pixabay.Result, error) {
	var (
		photos settled
		videos settled
		wg     sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		photos.result, photos.err = s.client.SearchPhotos(ctx, query, page, splitPageSize)
	}()
	go func() {
		defer wg.Done()
		videos.result, videos.err = s.client.SearchVideos(ctx, query, page, splitPageSize)
	}()
	wg.Wait()

	if photos.err != nil && videos.err != nil {
		return nil, photos.err
	}

	if photos.err != nil {
		log.Printf("[WARN] photo branch failed, serving videos only: %v", photos.err)
		photos.result = &pixabay.Result{}
	}
	if videos.err != nil {
		log.Printf("[WARN] video branch failed, serving photos only: %v", videos.err)
		videos.result = &pixabay.Result{}
	}

	// Photos-first ordering is fixed; results are not re-ranked
	merged := &pixabay.Result{
		TotalHits: photos.result.TotalHits + videos.result.TotalHits,
		Hits:      append(photos.result.Hits, videos.result.Hits...),
		RateLimit: photos.result.RateLimit,
	}
	if merged.RateLimit == nil {
		merged.RateLimit = videos.result.RateLimit
	}
	if merged.Hits == nil {
		merged.Hits = []pixabay.MediaItem{}
	}

	return merged, nil
}

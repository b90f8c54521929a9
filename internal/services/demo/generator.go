// Package demo produces deterministic stand-in search results. It is used
// whenever no Pixabay key is configured or the live search fails, and emits
// the same result schema as the live client so downstream consumers cannot
// tell the sources apart structurally.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/zhmaterial/material-api/internal/services/pixabay"
)

// SourceLabel marks demo results so they are never mistaken for live ones
const SourceLabel = "Pixabay (演示)"

// MockTotalHits is reported for every demo page regardless of query or
// filter. A fixed constant, not derived from the generated set.
const MockTotalHits = 1247

// resultsPerPage is the fixed demo page size
const resultsPerPage = 20

// simulatedLatency mimics the network delay of a live search
const simulatedLatency = 300 * time.Millisecond

// Generator produces deterministic demo search results
type Generator struct {
	latency time.Duration
}

// NewGenerator creates a demo result generator
func NewGenerator() *Generator {
	return &Generator{latency: simulatedLatency}
}

// NewGeneratorWithLatency creates a generator with a custom artificial
// delay (zero for tests)
func NewGeneratorWithLatency(latency time.Duration) *Generator {
	return &Generator{latency: latency}
}

type template struct {
	kind       string
	titleLabel string
	tagSuffix  string
	pageURL    string
	views      int
	downloads  int
	likes      int
	user       string
	userImage  string
	duration   int
	imageSlug  string
}

// Four fixed templates, two photos and two videos, cycled to fill a page
var templates = []template{
	{
		kind:       pixabay.KindPhoto,
		titleLabel: "专业摄影作品",
		tagSuffix:  "professional, stock, demo",
		pageURL:    "https://pixabay.com/photos/demo-1",
		views:      15234,
		downloads:  3421,
		likes:      892,
		user:       "DemoPhotographer",
		userImage:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=40&h=40&fit=crop&crop=face",
		imageSlug:  "b33ff0c44a43",
	},
	{
		kind:       pixabay.KindVideo,
		titleLabel: "高清视频素材",
		tagSuffix:  "video, hd, demo",
		pageURL:    "https://pixabay.com/videos/demo-2",
		views:      8765,
		downloads:  2134,
		likes:      456,
		user:       "VideoCreator",
		userImage:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=40&h=40&fit=crop&crop=face",
		duration:   45,
		imageSlug:  "e076c223a692",
	},
	{
		kind:       pixabay.KindPhoto,
		titleLabel: "创意设计素材",
		tagSuffix:  "creative, design, demo",
		pageURL:    "https://pixabay.com/photos/demo-3",
		views:      12456,
		downloads:  2876,
		likes:      634,
		user:       "DesignStudio",
		userImage:  "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=40&h=40&fit=crop&crop=face",
		imageSlug:  "b33ff0c44a43",
	},
	{
		kind:       pixabay.KindVideo,
		titleLabel: "动态背景视频",
		tagSuffix:  "background, motion, demo",
		pageURL:    "https://pixabay.com/videos/demo-4",
		views:      19876,
		downloads:  4321,
		likes:      987,
		user:       "MotionGraphics",
		userImage:  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=40&h=40&fit=crop&crop=face",
		duration:   120,
		imageSlug:  "e076c223a692",
	},
}

// photoBaseID seeds the rotating placeholder image identifiers so repeated
// items get distinct thumbnails
const photoBaseID = 1560472354

// Generate fills exactly one page of demo results. It never fails; the
// artificial delay is cut short if the context ends first.
func (g *Generator) Generate(ctx context.Context, originalQuery, translatedQuery, mediaType string, page int) *pixabay.Result {
	if g.latency > 0 {
		select {
		case <-time.After(g.latency):
		case <-ctx.Done():
		}
	}

	pool := filterTemplates(mediaType)

	hits := make([]pixabay.MediaItem, 0, resultsPerPage)
	for i := 0; i < resultsPerPage; i++ {
		tpl := pool[i%len(pool)]
		imageID := photoBaseID + i
		thumbnail := fmt.Sprintf(
			"https://images.unsplash.com/photo-%d-%s?w=400&h=300&fit=crop&crop=center",
			imageID, tpl.imageSlug,
		)

		item := pixabay.MediaItem{
			ID:           (page-1)*resultsPerPage + i + 1,
			MediaKind:    tpl.kind,
			Title:        fmt.Sprintf("%s - %s %d", originalQuery, tpl.titleLabel, i+1),
			Thumbnail:    thumbnail,
			PageURL:      tpl.pageURL,
			Tags:         fmt.Sprintf("%s, %s", translatedQuery, tpl.tagSuffix),
			Views:        tpl.views,
			Downloads:    tpl.downloads,
			Likes:        tpl.likes,
			User:         tpl.user,
			UserImageURL: tpl.userImage,
			Source:       SourceLabel,
		}

		if tpl.kind == pixabay.KindPhoto {
			item.PreviewURL = thumbnail
			item.LargeImageURL = fmt.Sprintf(
				"https://images.unsplash.com/photo-%d-%s?w=800&h=600&fit=crop&crop=center",
				imageID, tpl.imageSlug,
			)
		} else {
			item.VideoURL = fmt.Sprintf(
				"https://images.unsplash.com/photo-%d-%s?w=640&h=480&fit=crop&crop=center",
				imageID, tpl.imageSlug,
			)
			item.Duration = tpl.duration
		}

		hits = append(hits, item)
	}

	return &pixabay.Result{
		TotalHits: MockTotalHits,
		Hits:      hits,
	}
}

// filterTemplates narrows the pool to the requested media kind. An unknown
// or "all" filter keeps the full pool.
func filterTemplates(mediaType string) []template {
	switch mediaType {
	case "photos":
		return pickKind(pixabay.KindPhoto)
	case "videos":
		return pickKind(pixabay.KindVideo)
	default:
		return templates
	}
}

func pickKind(kind string) []template {
	pool := make([]template, 0, len(templates))
	for _, tpl := range templates {
		if tpl.kind == kind {
			pool = append(pool, tpl)
		}
	}
	return pool
}

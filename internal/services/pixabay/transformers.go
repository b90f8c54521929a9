package pixabay

import "strings"

// SourceLabel marks results that came from the live API
const SourceLabel = "Pixabay"

// transformImageHits maps raw image hits into the common result schema
func transformImageHits(hits []imageHit) []MediaItem {
	items := make([]MediaItem, 0, len(hits))
	for _, hit := range hits {
		items = append(items, MediaItem{
			ID:            hit.ID,
			MediaKind:     KindPhoto,
			Title:         titleFromTags(hit.Tags),
			Thumbnail:     hit.WebformatURL,
			PreviewURL:    hit.PreviewURL,
			LargeImageURL: hit.LargeImageURL,
			PageURL:       hit.PageURL,
			Tags:          hit.Tags,
			Views:         hit.Views,
			Downloads:     hit.Downloads,
			Likes:         hit.Likes,
			User:          userOrPlaceholder(hit.User),
			UserImageURL:  hit.UserImageURL,
			Source:        SourceLabel,
		})
	}
	return items
}

// transformVideoHits maps raw video hits into the common result schema.
// The thumbnail comes from the smallest rendition, playback from medium.
func transformVideoHits(hits []videoHit) []MediaItem {
	items := make([]MediaItem, 0, len(hits))
	for _, hit := range hits {
		items = append(items, MediaItem{
			ID:           hit.ID,
			MediaKind:    KindVideo,
			Title:        titleFromTags(hit.Tags),
			Thumbnail:    hit.Videos.Small.URL,
			VideoURL:     hit.Videos.Medium.URL,
			Duration:     hit.Duration,
			PageURL:      hit.PageURL,
			Tags:         hit.Tags,
			Views:        hit.Views,
			Downloads:    hit.Downloads,
			Likes:        hit.Likes,
			User:         userOrPlaceholder(hit.User),
			UserImageURL: hit.UserImageURL,
			Source:       SourceLabel,
		})
	}
	return items
}

// titleFromTags derives a display title from the first three comma
// separated tags
func titleFromTags(tags string) string {
	parts := strings.Split(tags, ", ")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, " ")
}

func userOrPlaceholder(user string) string {
	if user == "" {
		return "Unknown"
	}
	return user
}

package translation

import "context"

// Source tags identify which tier of the resolver produced a translation
const (
	SourceCache      = "cache"
	SourceDictionary = "dictionary"
	SourceGoogle     = "google"
	SourceLibre      = "libre"
	SourceMyMemory   = "mymemory"
	SourceLocal      = "local"
	SourceDefault    = "default"
)

// DefaultTranslation is returned when the input is unusable, so callers
// always receive a non-empty, API-safe query string.
const DefaultTranslation = "search content"

// Result is the outcome of resolving one input text
type Result struct {
	Original   string `json:"original"`
	Translated string `json:"translatedText"`
	Source     string `json:"source"`
	Cached     bool   `json:"cached,omitempty"`
}

// Provider is one external translation backend. Implementations return the
// raw translated string or an error; the resolver decides whether the
// output counts as a hit (non-empty and different from the input).
type Provider interface {
	Name() string
	Translate(ctx context.Context, text string) (string, error)
}

// Translator resolves Chinese input text to an English query string.
// Implementations must not fail: any internal error degrades to a
// lower-priority tier.
type Translator interface {
	Translate(ctx context.Context, text string) Result
}

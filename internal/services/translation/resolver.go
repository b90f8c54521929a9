package translation

import (
	"context"
	"log"
	"strings"
	"time"
)

// maxInputLen bounds the text accepted from callers before resolution
const maxInputLen = 500

// Resolver turns Chinese input text into an English query string. Tiers are
// tried in strict order, short-circuiting on the first hit: cache, phrase
// dictionary, external providers (each with its own timeout), local
// substitution. The final tier cannot fail, so Translate never does either.
type Resolver struct {
	cache           *Cache
	providers       []Provider
	providerTimeout time.Duration
}

// Config holds configuration for the resolver
type Config struct {
	Providers       []Provider
	ProviderTimeout time.Duration
	CacheMaxEntries int
	CacheTTL        time.Duration
}

// NewResolver creates a translation resolver
func NewResolver(cfg Config) *Resolver {
	if cfg.ProviderTimeout == 0 {
		cfg.ProviderTimeout = 2 * time.Second
	}
	return &Resolver{
		cache:           NewCache(cfg.CacheMaxEntries, cfg.CacheTTL),
		providers:       cfg.Providers,
		providerTimeout: cfg.ProviderTimeout,
	}
}

// Translate resolves text to an English query string. It always returns a
// non-empty translation; upstream failures fall through to the next tier.
func (r *Resolver) Translate(ctx context.Context, text string) Result {
	cleaned := strings.TrimSpace(text)
	if runes := []rune(cleaned); len(runes) > maxInputLen {
		cleaned = string(runes[:maxInputLen])
	}
	if cleaned == "" {
		return Result{Original: text, Translated: DefaultTranslation, Source: SourceDefault}
	}

	// 1. Cache
	if translated, _, ok := r.cache.Get(cleaned); ok {
		return Result{Original: cleaned, Translated: translated, Source: SourceCache, Cached: true}
	}

	// 2. Curated phrase dictionary
	if translated, ok := lookupDictionary(cleaned); ok {
		r.cache.Set(cleaned, translated, SourceDictionary)
		return Result{Original: cleaned, Translated: translated, Source: SourceDictionary}
	}

	// 3. External providers, sequentially in priority order. A provider
	// hit requires a non-empty result different from the input; anything
	// else, including errors and timeouts, falls through.
	for _, provider := range r.providers {
		translated, err := r.tryProvider(ctx, provider, cleaned)
		if err != nil {
			log.Printf("[WARN] translation provider %s failed: %v", provider.Name(), err)
			continue
		}
		if translated == "" || translated == cleaned {
			continue
		}
		r.cache.Set(cleaned, translated, provider.Name())
		return Result{Original: cleaned, Translated: translated, Source: provider.Name()}
	}

	// 4. Local fallback, always succeeds
	translated := translateLocally(cleaned)
	r.cache.Set(cleaned, translated, SourceLocal)
	return Result{Original: cleaned, Translated: translated, Source: SourceLocal}
}

// tryProvider runs one provider call bounded by the per-provider timeout
func (r *Resolver) tryProvider(ctx context.Context, provider Provider, text string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.providerTimeout)
	defer cancel()
	return provider.Translate(callCtx, text)
}

// CacheLen exposes the cache size for health reporting
func (r *Resolver) CacheLen() int {
	return r.cache.Len()
}

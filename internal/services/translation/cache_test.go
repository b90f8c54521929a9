package translation

import (
	"fmt"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	cache := NewCache(10, time.Minute)

	cache.Set("商业", "business", SourceDictionary)

	translated, source, ok := cache.Get("商业")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if translated != "business" {
		t.Errorf("expected 'business', got %q", translated)
	}
	if source != SourceDictionary {
		t.Errorf("expected source %q, got %q", SourceDictionary, source)
	}
}

func TestCache_Miss(t *testing.T) {
	cache := NewCache(10, time.Minute)

	if _, _, ok := cache.Get("unknown"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestCache_Expiry(t *testing.T) {
	cache := NewCache(10, 10*time.Millisecond)

	cache.Set("短语", "phrase", SourceLocal)
	time.Sleep(30 * time.Millisecond)

	if _, _, ok := cache.Get("短语"); ok {
		t.Error("expected entry to expire")
	}
	if cache.Len() != 0 {
		t.Errorf("expired entry should be removed on read, len=%d", cache.Len())
	}
}

func TestCache_BoundedSize(t *testing.T) {
	cache := NewCache(5, time.Minute)

	for i := 0; i < 20; i++ {
		cache.Set(fmt.Sprintf("key-%d", i), "value", SourceLocal)
	}

	if cache.Len() > 5 {
		t.Errorf("cache exceeded bound: len=%d", cache.Len())
	}
}

func TestCache_Overwrite(t *testing.T) {
	cache := NewCache(10, time.Minute)

	cache.Set("词", "old", SourceLocal)
	cache.Set("词", "new", SourceGoogle)

	translated, source, ok := cache.Get("词")
	if !ok {
		t.Fatal("expected hit")
	}
	if translated != "new" || source != SourceGoogle {
		t.Errorf("expected overwrite, got %q from %q", translated, source)
	}
}

func TestCache_ZeroConfigUsesDefaults(t *testing.T) {
	cache := NewCache(0, 0)

	cache.Set("词", "word", SourceLocal)
	if _, _, ok := cache.Get("词"); !ok {
		t.Error("cache with defaulted config should still store entries")
	}
}

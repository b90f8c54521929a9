package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGoogleProvider_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "商业会议" {
			t.Errorf("expected q=商业会议, got %s", got)
		}
		if got := r.URL.Query().Get("sl"); got != "zh" {
			t.Errorf("expected sl=zh, got %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[["business meeting","商业会议",null,null,10]],null,"zh"]`))
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL)
	translated, err := provider.Translate(context.Background(), "商业会议")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if translated != "business meeting" {
		t.Errorf("expected 'business meeting', got %q", translated)
	}
}

func TestGoogleProvider_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL)
	if _, err := provider.Translate(context.Background(), "文本"); err == nil {
		t.Error("expected error for malformed response")
	}
}

func TestGoogleProvider_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL)
	if _, err := provider.Translate(context.Background(), "文本"); err == nil {
		t.Error("expected error for 503 response")
	}
}

func TestLibreProvider_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %s", ct)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"translatedText":"nature landscape"}`))
	}))
	defer server.Close()

	provider := NewLibreProvider(server.URL)
	translated, err := provider.Translate(context.Background(), "自然风景")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if translated != "nature landscape" {
		t.Errorf("expected 'nature landscape', got %q", translated)
	}
}

func TestMyMemoryProvider_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("langpair"); got != "zh|en" {
			t.Errorf("expected langpair=zh|en, got %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responseStatus":200,"responseData":{"translatedText":"city night"}}`))
	}))
	defer server.Close()

	provider := NewMyMemoryProvider(server.URL)
	translated, err := provider.Translate(context.Background(), "城市夜景")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if translated != "city night" {
		t.Errorf("expected 'city night', got %q", translated)
	}
}

func TestMyMemoryProvider_ErrorStatusInBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responseStatus":403,"responseData":{"translatedText":""}}`))
	}))
	defer server.Close()

	provider := NewMyMemoryProvider(server.URL)
	if _, err := provider.Translate(context.Background(), "文本"); err == nil {
		t.Error("expected error for non-200 responseStatus")
	}
}

func TestProviderNames(t *testing.T) {
	if got := NewGoogleProvider("").Name(); got != SourceGoogle {
		t.Errorf("expected %q, got %q", SourceGoogle, got)
	}
	if got := NewLibreProvider("").Name(); got != SourceLibre {
		t.Errorf("expected %q, got %q", SourceLibre, got)
	}
	if got := NewMyMemoryProvider("").Name(); got != SourceMyMemory {
		t.Errorf("expected %q, got %q", SourceMyMemory, got)
	}
}

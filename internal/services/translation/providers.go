package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const providerUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// GoogleProvider uses the public Google web translation endpoint.
// No auth required, best-effort availability.
type GoogleProvider struct {
	httpClient *http.Client
	baseURL    string
}

// NewGoogleProvider creates a Google web translation provider
func NewGoogleProvider(baseURL string) *GoogleProvider {
	if baseURL == "" {
		baseURL = "https://translate.googleapis.com/translate_a/single"
	}
	return &GoogleProvider{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// Name returns the provider tag
func (p *GoogleProvider) Name() string { return SourceGoogle }

// Translate translates Chinese text to English
func (p *GoogleProvider) Translate(ctx context.Context, text string) (string, error) {
	endpoint := fmt.Sprintf("%s?client=gtx&sl=zh&tl=en&dt=t&q=%s", p.baseURL, url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", providerUserAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	// Response shape is nested arrays: [[["translated","original",...],...],...]
	var data []interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	segments, ok := first(data).([]interface{})
	if !ok {
		return "", fmt.Errorf("malformed response body")
	}
	segment, ok := first(segments).([]interface{})
	if !ok {
		return "", fmt.Errorf("malformed response body")
	}
	translated, ok := first(segment).(string)
	if !ok {
		return "", fmt.Errorf("malformed response body")
	}

	return translated, nil
}

func first(arr []interface{}) interface{} {
	if len(arr) == 0 {
		return nil
	}
	return arr[0]
}

// LibreProvider uses a LibreTranslate instance
type LibreProvider struct {
	httpClient *http.Client
	baseURL    string
}

// NewLibreProvider creates a LibreTranslate provider
func NewLibreProvider(baseURL string) *LibreProvider {
	if baseURL == "" {
		baseURL = "https://libretranslate.de/translate"
	}
	return &LibreProvider{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// Name returns the provider tag
func (p *LibreProvider) Name() string { return SourceLibre }

// Translate translates Chinese text to English
func (p *LibreProvider) Translate(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"q":      text,
		"source": "zh",
		"target": "en",
		"format": "text",
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var body struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	return body.TranslatedText, nil
}

// MyMemoryProvider uses the MyMemory translation memory API
type MyMemoryProvider struct {
	httpClient *http.Client
	baseURL    string
}

// NewMyMemoryProvider creates a MyMemory provider
func NewMyMemoryProvider(baseURL string) *MyMemoryProvider {
	if baseURL == "" {
		baseURL = "https://api.mymemory.translated.net/get"
	}
	return &MyMemoryProvider{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// Name returns the provider tag
func (p *MyMemoryProvider) Name() string { return SourceMyMemory }

// Translate translates Chinese text to English
func (p *MyMemoryProvider) Translate(ctx context.Context, text string) (string, error) {
	endpoint := fmt.Sprintf("%s?q=%s&langpair=%s", p.baseURL, url.QueryEscape(text), url.QueryEscape("zh|en"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var body struct {
		ResponseStatus int `json:"responseStatus"`
		ResponseData   struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if body.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("API error status: %d", body.ResponseStatus)
	}

	return body.ResponseData.TranslatedText, nil
}

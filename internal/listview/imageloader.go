package listview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// maxImageBytes caps how much of a poster response is read into memory.
const maxImageBytes = 8 << 20

// ImageLoader fetches the bytes behind a poster URL. Implementations are
// free to cache; callers treat every Load as potentially remote.
type ImageLoader interface {
	Load(ctx context.Context, url string) ([]byte, error)
}

// HTTPLoader fetches images over HTTP and keeps every successfully fetched
// poster in memory for the lifetime of the process. Catalogs are small and
// posters repeat across the catalog and favorites screens, so a plain map
// is enough; there is no eviction.
type HTTPLoader struct {
	client *http.Client

	mu    sync.Mutex
	cache map[string][]byte
}

// NewHTTPLoader returns a loader with a bounded request timeout.
func NewHTTPLoader() *HTTPLoader {
	return &HTTPLoader{
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  make(map[string][]byte),
	}
}

// Load returns the image bytes at url, from cache when possible.
func (l *HTTPLoader) Load(ctx context.Context, url string) ([]byte, error) {
	l.mu.Lock()
	if data, ok := l.cache[url]; ok {
		l.mu.Unlock()
		return data, nil
	}
	l.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[url] = data
	l.mu.Unlock()
	return data, nil
}

package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Loader fetches the raw bytes of a named dataset. Implementations own the
// retry policy; the store treats a returned error as permanent for the
// session.
type Loader interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

// FileLoader reads <dir>/<name>.json from the local filesystem, the layout
// the preprocessing pipeline writes to public/data.
type FileLoader struct {
	Dir string
}

// Load reads the dataset file.
func (l FileLoader) Load(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(l.Dir, name+".json"))
}

// HTTPLoader fetches <baseURL>/<name>.json, for deployments where the
// datasets are served by a static file host or CDN.
type HTTPLoader struct {
	BaseURL string
	Client  *http.Client
}

// Load fetches the dataset over HTTP.
func (l HTTPLoader) Load(ctx context.Context, name string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	url := fmt.Sprintf("%s/%s.json", l.BaseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

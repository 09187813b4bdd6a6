package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/paulmach/orb/maptile"
)

// Fetcher resolves tiles through an on-disk cache laid out as
// <cacheDir>/<z>/<x>/<y>.png, falling back to the remote tile server on a
// miss. Fetched tiles are written back and never evicted, map tiles for a
// fixed zoom/x/y are immutable.
type Fetcher struct {
	TileMap  *TileMap
	CacheDir string
	Client   *http.Client
}

func NewFetcher(m *TileMap) *Fetcher {
	return &Fetcher{
		TileMap:  m,
		CacheDir: conf.Tm.CacheDir,
		Client:   &http.Client{Timeout: time.Duration(conf.Tm.Timeout) * time.Second},
	}
}

func (f *Fetcher) cachePath(t maptile.Tile) string {
	return filepath.Join(f.CacheDir,
		strconv.Itoa(int(t.Z)), strconv.Itoa(int(t.X)), strconv.Itoa(int(t.Y))+".png")
}

// Get returns the tile image. A cache hit makes no network call. Any fetch
// or decode failure propagates, there are no retries.
func (f *Fetcher) Get(t maptile.Tile) (image.Image, error) {
	path := f.cachePath(t)
	if data, err := os.ReadFile(path); err == nil {
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode cached tile %d/%d/%d: %w", t.Z, t.X, t.Y, err)
		}
		return img, nil
	}

	start := time.Now()
	url := f.TileMap.GetTileURL(t)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch tile %d/%d/%d: %w", t.Z, t.X, t.Y, err)
	}
	// tile providers require an identifying User-Agent
	req.Header.Set("User-Agent", f.TileMap.UserAgent)
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch tile %d/%d/%d: %w", t.Z, t.X, t.Y, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch tile %d/%d/%d: status code %d", t.Z, t.X, t.Y, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tile %d/%d/%d: %w", t.Z, t.X, t.Y, err)
	}
	img, err := png.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode tile %d/%d/%d: %w", t.Z, t.X, t.Y, err)
	}
	if err := f.save(path, body); err != nil {
		return nil, err
	}

	cost := time.Since(start).Milliseconds()
	log.Debugf("tile(z:%d, x:%d, y:%d), %dms, %.2f kb, %s", t.Z, t.X, t.Y, cost, float32(len(body))/1024.0, url)
	return img, nil
}

func (f *Fetcher) save(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("create cache dir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, os.ModePerm); err != nil {
		return fmt.Errorf("write cached tile %s: %w", path, err)
	}
	return nil
}

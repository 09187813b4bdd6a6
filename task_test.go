package main

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestRenderActivationsEmpty(t *testing.T) {
	initTestConf(t)
	var requests int32
	srv := tileServer(t, &requests)
	conf.Tm.URL = srv.URL + "/{z}/{x}/{y}.png"

	task := NewTask(&TileMap{Name: "test", URL: conf.Tm.URL, UserAgent: conf.Tm.UserAgent})
	if _, err := task.RenderActivations(nil); !errors.Is(err, ErrNoActivations) {
		t.Fatalf("got %v, want ErrNoActivations", err)
	}
	if n := atomic.LoadInt32(&requests); n != 0 {
		t.Errorf("%d tile requests before the empty-list check", n)
	}
}

func TestRunEndToEnd(t *testing.T) {
	initTestConf(t)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/HB9XYZ" {
			t.Errorf("got path %s, want /HB9XYZ", r.URL.Path)
		}
		w.Write([]byte(activationsJSON))
	}))
	defer api.Close()

	var requests int32
	tiles := tileServer(t, &requests)

	dir := t.TempDir()
	conf.Fetch.Callsign = "hb9xyz"
	conf.Fetch.URL = api.URL + "/{callsign}"
	conf.Tm.URL = tiles.URL + "/{z}/{x}/{y}.png"
	conf.Output.HTML = filepath.Join(dir, "sota.html")
	conf.Output.PNG = filepath.Join(dir, "sota.png")

	task := NewTask(&TileMap{Name: "test", URL: conf.Tm.URL, UserAgent: conf.Tm.UserAgent})
	if err := task.Run(); err != nil {
		t.Fatal(err)
	}

	html, err := os.ReadFile(conf.Output.HTML)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(html, []byte("marker_0")) {
		t.Error("html output has no markers")
	}

	data, err := os.ReadFile(conf.Output.PNG)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width%TileSize != 0 || cfg.Height%TileSize != 0 {
		t.Errorf("canvas %dx%d is not a multiple of the tile size", cfg.Width, cfg.Height)
	}
	if n := atomic.LoadInt32(&requests); n == 0 {
		t.Error("no tiles were fetched")
	}

	// a second run hits only the cache and produces the same bytes
	fetched := atomic.LoadInt32(&requests)
	if err := task.Run(); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&requests); n != fetched {
		t.Errorf("second run made %d extra tile requests", n-fetched)
	}
	again, err := os.ReadFile(conf.Output.PNG)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, again) {
		t.Error("two runs over identical input differ")
	}
}

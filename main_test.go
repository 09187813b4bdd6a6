package main

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
)

// initTestConf installs a default configuration with a throwaway tile cache
// and a silent logger.
func initTestConf(t *testing.T) {
	t.Helper()
	conf = &Conf{}
	conf.App.Title = "test map"
	conf.Output.HTML = "sota.html"
	conf.Output.PNG = "sota.png"
	conf.Output.OutputTerminal = false
	conf.Fetch.Timeout = 5
	conf.Fetch.URL = "https://sotl.as/api/activations/{callsign}"
	conf.Tm.Name = "osm"
	conf.Tm.URL = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	conf.Tm.UserAgent = "qrzmaps-test/0.1"
	conf.Tm.CacheDir = t.TempDir()
	conf.Tm.Timeout = 5
	conf.Render.MinZoom = 4
	conf.Render.MaxZoom = 12
	conf.Render.TargetWidth = 1200
	conf.Render.TargetHeight = 800
	conf.Render.Padding = 0.1
	conf.Render.MarkerRadius = 4

	log = logrus.New()
	log.SetOutput(io.Discard)
}

// testTilePNG encodes a uniform 256x256 tile.
func testTilePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{200, 220, 240, 255}}, image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test tile: %v", err)
	}
	return buf.Bytes()
}

// tileServer serves the same tile for every request and counts requests.
func tileServer(t *testing.T, requests *int32) *httptest.Server {
	t.Helper()
	data := testTilePNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

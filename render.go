package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"time"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb/maptile"
	pb "gopkg.in/cheggaaa/pb.v1"
)

// RenderPNG stitches the tiles into one canvas, draws a marker per point and
// encodes the result. The canvas exactly covers the tile bounding box, tiles
// are pasted at their grid offset and markers at their projected pixel
// position translated into canvas space.
//
// Encoding uses maximum compression and the stdlib encoder writes no
// timestamps or software chunks, so identical input produces byte-identical
// output.
func RenderPNG(points []Point, zoom int, tiles []maptile.Tile, fetcher *Fetcher) ([]byte, error) {
	if len(tiles) == 0 {
		return nil, ErrNoActivations
	}
	r := RangeOf(tiles)
	canvas := image.NewRGBA(image.Rect(0, 0, r.Width(), r.Height()))

	bar := pb.New(len(tiles)).Prefix(fmt.Sprintf("Zoom %d : ", zoom))
	bar.SetRefreshRate(time.Second)
	bar.NotPrint = !conf.Output.OutputTerminal
	bar.Start()
	for _, t := range tiles {
		img, err := fetcher.Get(t)
		if err != nil {
			bar.Finish()
			return nil, err
		}
		px := (int(t.X) - r.MinX) * TileSize
		py := (int(t.Y) - r.MinY) * TileSize
		draw.Draw(canvas, image.Rect(px, py, px+TileSize, py+TileSize), img, image.Point{}, draw.Src)
		bar.Increment()
	}
	bar.Finish()

	dc := gg.NewContextForRGBA(canvas)
	dc.SetLineWidth(1)
	for _, p := range points {
		gx, gy := Project(p.Lon, p.Lat, zoom)
		cx := gx - float64(r.MinX*TileSize)
		cy := gy - float64(r.MinY*TileSize)
		dc.DrawCircle(cx, cy, conf.Render.MarkerRadius)
		dc.SetRGB(1, 0, 0)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.Stroke()
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

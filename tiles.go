package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/maptile/tilecover"
)

// TileMap describes the raster tile source.
type TileMap struct {
	Name      string
	URL       string
	UserAgent string
}

// GetTileURL expands the {z}/{x}/{y} URL template for one tile.
func (m *TileMap) GetTileURL(t maptile.Tile) string {
	url := strings.Replace(m.URL, "{x}", strconv.Itoa(int(t.X)), -1)
	url = strings.Replace(url, "{y}", strconv.Itoa(int(t.Y)), -1)
	url = strings.Replace(url, "{z}", strconv.Itoa(int(t.Z)), -1)
	return url
}

// PaddedBound returns the bounding box of the points expanded by the
// configured padding on each side. Latitudes are clamped to the range the
// tile scheme can represent.
func PaddedBound(points []Point) orb.Bound {
	b := orb.Bound{Min: orb.Point{180, 90}, Max: orb.Point{-180, -90}}
	for _, p := range points {
		b = b.Extend(orb.Point{p.Lon, p.Lat})
	}
	pad := conf.Render.Padding
	b.Min[0] -= pad
	b.Max[0] += pad
	b.Min[1] = math.Max(b.Min[1]-pad, -MercatorMaxLat)
	b.Max[1] = math.Min(b.Max[1]+pad, MercatorMaxLat)
	return b
}

// CoverTiles returns the tiles covering the bound at the given zoom,
// ordered by (y, x) for a deterministic fetch order.
func CoverTiles(b orb.Bound, zoom int) ([]maptile.Tile, error) {
	set, err := tilecover.Geometry(b, maptile.Zoom(zoom))
	if err != nil {
		return nil, fmt.Errorf("tile cover: %w", err)
	}
	tiles := make([]maptile.Tile, 0, len(set))
	for t := range set {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Y != tiles[j].Y {
			return tiles[i].Y < tiles[j].Y
		}
		return tiles[i].X < tiles[j].X
	})
	return tiles, nil
}

// TileRange is the rectangular index extent of a tile list.
type TileRange struct {
	MinX, MinY int
	MaxX, MaxY int
}

// RangeOf computes the index extent of a non-empty tile list.
func RangeOf(tiles []maptile.Tile) TileRange {
	r := TileRange{MinX: math.MaxInt32, MinY: math.MaxInt32}
	for _, t := range tiles {
		r.MinX = min(r.MinX, int(t.X))
		r.MaxX = max(r.MaxX, int(t.X))
		r.MinY = min(r.MinY, int(t.Y))
		r.MaxY = max(r.MaxY, int(t.Y))
	}
	return r
}

// Width is the pixel width of a canvas covering the range.
func (r TileRange) Width() int { return (r.MaxX - r.MinX + 1) * TileSize }

// Height is the pixel height of a canvas covering the range.
func (r TileRange) Height() int { return (r.MaxY - r.MinY + 1) * TileSize }

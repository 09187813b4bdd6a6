package main

import "math"

// pixelBounds returns the width and height in pixels of the bounding box of
// the points projected at the given zoom level.
func pixelBounds(points []Point, zoom int) (width, height float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		x, y := Project(p.Lon, p.Lat, zoom)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return maxX - minX, maxY - minY
}

// ChooseZoom returns the most detailed zoom level at which all points still
// fit the target canvas. Candidates run from render.maxZoom down to
// render.minZoom; when even the coarsest level does not fit, the minimum zoom
// is returned so the canvas stays bounded for arbitrarily spread out points.
func ChooseZoom(points []Point) int {
	for zoom := conf.Render.MaxZoom; zoom >= conf.Render.MinZoom; zoom-- {
		w, h := pixelBounds(points, zoom)
		if w <= float64(conf.Render.TargetWidth) && h <= float64(conf.Render.TargetHeight) {
			return zoom
		}
	}
	return conf.Render.MinZoom
}

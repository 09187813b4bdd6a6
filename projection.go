package main

import "math"

// TileSize is the pixel edge length of one map tile.
const TileSize = 256

// MercatorMaxLat is the highest latitude representable in the spherical
// Mercator tile scheme.
const MercatorMaxLat = 85.05112878

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Project converts a lon/lat pair to global pixel coordinates at the given
// zoom level in the spherical Mercator tile scheme. The sine of the latitude
// is clamped so the poles stay finite.
func Project(lon, lat float64, zoom int) (x, y float64) {
	scale := TileSize * math.Exp2(float64(zoom))
	siny := math.Sin(lat * math.Pi / 180)
	if siny > 0.9999 {
		siny = 0.9999
	}
	if siny < -0.9999 {
		siny = -0.9999
	}
	x = (lon + 180) / 360 * scale
	y = (0.5 - math.Log((1+siny)/(1-siny))/(4*math.Pi)) * scale
	return x, y
}

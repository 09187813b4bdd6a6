package main

import "testing"

func TestChooseZoomSinglePoint(t *testing.T) {
	initTestConf(t)
	if z := ChooseZoom([]Point{{Lat: 46.0, Lon: 7.0}}); z != conf.Render.MaxZoom {
		t.Errorf("single point: got zoom %d, want %d", z, conf.Render.MaxZoom)
	}
}

func TestChooseZoomSpreadPoints(t *testing.T) {
	initTestConf(t)
	// spans most of the world, does not fit the canvas at any level
	points := []Point{{Lat: -60, Lon: -150}, {Lat: 60, Lon: 150}}
	if z := ChooseZoom(points); z != conf.Render.MinZoom {
		t.Errorf("spread points: got zoom %d, want %d", z, conf.Render.MinZoom)
	}
}

func TestChooseZoomAlpinePair(t *testing.T) {
	initTestConf(t)
	// half a degree apart at 46N: 1052px tall at zoom 11, 526px at zoom 10
	points := []Point{{Lat: 46.0, Lon: 7.0}, {Lat: 46.5, Lon: 7.5}}
	z := ChooseZoom(points)
	if z != 10 {
		t.Fatalf("got zoom %d, want 10", z)
	}
	w, h := pixelBounds(points, z)
	if w > float64(conf.Render.TargetWidth) || h > float64(conf.Render.TargetHeight) {
		t.Errorf("bbox %vx%v does not fit %dx%d", w, h, conf.Render.TargetWidth, conf.Render.TargetHeight)
	}
	w, h = pixelBounds(points, z+1)
	if w <= float64(conf.Render.TargetWidth) && h <= float64(conf.Render.TargetHeight) {
		t.Errorf("zoom %d also fits (%vx%v), selector was not maximal", z+1, w, h)
	}
}

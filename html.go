package main

import (
	"fmt"
	"html/template"
	"os"
)

// htmlZoom is the initial zoom level of the interactive map.
const htmlZoom = 8

type htmlMarker struct {
	ID    int
	Lat   float64
	Lon   float64
	Popup string
}

// Alt is the stable marker identifier, an explicit counter so repeated runs
// emit identical documents.
func (m htmlMarker) Alt() string {
	return fmt.Sprintf("marker_%d", m.ID)
}

type htmlMap struct {
	Title     string
	TileURL   string
	CenterLat float64
	CenterLon float64
	Zoom      int
	Markers   []htmlMarker
}

// WriteHTML renders the interactive Leaflet map to filename, one marker per
// activation. Element ids are the loop index, so two runs over the same data
// produce identical files.
func WriteHTML(acts []Activation, filename string) error {
	if len(acts) == 0 {
		return ErrNoActivations
	}

	var sumLat, sumLon float64
	markers := make([]htmlMarker, 0, len(acts))
	for i, a := range acts {
		p := a.Point()
		sumLat += p.Lat
		sumLon += p.Lon
		markers = append(markers, htmlMarker{
			ID:    i,
			Lat:   p.Lat,
			Lon:   p.Lon,
			Popup: fmt.Sprintf("%s %s (%s)", a.Summit.Code, a.Summit.Name, a.DateOnly()),
		})
	}

	data := htmlMap{
		Title:     conf.App.Title,
		TileURL:   conf.Tm.URL,
		CenterLat: sumLat / float64(len(acts)),
		CenterLon: sumLon / float64(len(acts)),
		Zoom:      htmlZoom,
		Markers:   markers,
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()
	if err := htmlTmpl.Execute(f, data); err != nil {
		return fmt.Errorf("render %s: %w", filename, err)
	}
	return nil
}

var htmlTmpl = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map_0 { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map_0"></div>
<script>
var map_0 = L.map("map_0", {preferCanvas: true}).setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.control.scale().addTo(map_0);
L.tileLayer({{.TileURL}}, {
	attribution: "&copy; OpenStreetMap contributors"
}).addTo(map_0);
{{range .Markers}}L.marker([{{.Lat}}, {{.Lon}}], {alt: {{.Alt}}}).addTo(map_0).bindPopup({{.Popup}});
{{end}}</script>
</body>
</html>
`))

package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/teris-io/shortid"
)

func InitTask() {
	start := time.Now()

	tm := &TileMap{
		Name:      conf.Tm.Name,
		URL:       conf.Tm.URL,
		UserAgent: conf.Tm.UserAgent,
	}
	task := NewTask(tm)
	SafeExitInst.Register(task.AbortFun)

	if err := task.Run(); err != nil {
		log.Fatalf("task %s failed: %s", task.ID, err)
	}

	secs := time.Since(start).Seconds()
	log.Printf("\n%.3fs finished...", secs)
}

// Task is one fetch-and-render run.
type Task struct {
	ID      string
	TileMap *TileMap
	Fetcher *Fetcher
}

// NewTask creates a run with a fresh id.
func NewTask(m *TileMap) *Task {
	id, _ := shortid.Generate()
	return &Task{
		ID:      id,
		TileMap: m,
		Fetcher: NewFetcher(m),
	}
}

// AbortFun runs on a termination signal.
func (task *Task) AbortFun() {
	log.Warnf("task %s got canceled", task.ID)
}

// Run executes the pipeline: resolve the callsign, fetch the activation
// list, write the interactive map, render and write the static map. Any
// failure aborts the run, no partial output is written.
func (task *Task) Run() error {
	callsign, err := Callsign()
	if err != nil {
		return err
	}
	log.Infof("task %s: fetching activations for %s", task.ID, callsign)
	acts, err := FetchActivations(callsign)
	if err != nil {
		return err
	}
	log.Infof("task %s: %d activations", task.ID, len(acts))

	if err := WriteHTML(acts, conf.Output.HTML); err != nil {
		return err
	}
	log.Infof("saved %s", conf.Output.HTML)

	data, err := task.RenderActivations(acts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(conf.Output.PNG, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", conf.Output.PNG, err)
	}
	log.Infof("saved %s", conf.Output.PNG)
	return nil
}

// RenderActivations runs the static map pipeline for the activation list.
func (task *Task) RenderActivations(acts []Activation) ([]byte, error) {
	points := make([]Point, 0, len(acts))
	for _, a := range acts {
		points = append(points, a.Point())
	}
	if len(points) == 0 {
		return nil, ErrNoActivations
	}
	// stable render order
	sort.Slice(points, func(i, j int) bool {
		if points[i].Lat != points[j].Lat {
			return points[i].Lat < points[j].Lat
		}
		return points[i].Lon < points[j].Lon
	})

	zoom := ChooseZoom(points)
	log.Infof("using zoom level %d", zoom)

	tiles, err := CoverTiles(PaddedBound(points), zoom)
	if err != nil {
		return nil, err
	}
	log.Infof("zoom: %d, tiles: %d", zoom, len(tiles))

	return RenderPNG(points, zoom, tiles, task.Fetcher)
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrNoCallsign means no operator callsign could be resolved from the
	// configuration or the environment.
	ErrNoCallsign = errors.New("no callsign configured, set CALLSIGN or GITHUB_REPOSITORY_OWNER")
	// ErrNoActivations means the API returned an empty activation list, so
	// there is nothing to center a map on.
	ErrNoActivations = errors.New("no activation coordinates found")
)

// Activation is one logged summit activation as returned by the sotl.as API.
type Activation struct {
	Date   string `json:"date"`
	Summit struct {
		Code        string `json:"code"`
		Name        string `json:"name"`
		Coordinates struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"coordinates"`
	} `json:"summit"`
}

// Point returns the summit coordinate.
func (a Activation) Point() Point {
	return Point{Lat: a.Summit.Coordinates.Latitude, Lon: a.Summit.Coordinates.Longitude}
}

// DateOnly returns the date portion of the activation timestamp.
func (a Activation) DateOnly() string {
	if len(a.Date) > 10 {
		return a.Date[:10]
	}
	return a.Date
}

// Callsign resolves the operator callsign, uppercased.
func Callsign() (string, error) {
	cs := strings.ToUpper(strings.TrimSpace(conf.Fetch.Callsign))
	if cs == "" {
		return "", ErrNoCallsign
	}
	return cs, nil
}

// FetchActivations downloads the activation list for a callsign.
func FetchActivations(callsign string) ([]Activation, error) {
	url := strings.Replace(conf.Fetch.URL, "{callsign}", callsign, -1)
	client := &http.Client{Timeout: time.Duration(conf.Fetch.Timeout) * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch activations: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch activations: status code %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read activations: %w", err)
	}
	var acts []Activation
	if err := json.Unmarshal(body, &acts); err != nil {
		return nil, fmt.Errorf("decode activations: %w", err)
	}
	return acts, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var conf *Conf

type Conf struct {
	App struct {
		Version string `toml:"version"`
		Title   string `toml:"title"`
	} `toml:"app"`
	Output struct {
		HTML           string `toml:"html"`
		PNG            string `toml:"png"`
		LogDir         string `toml:"logDir"`
		OutputTerminal bool   `toml:"outputTerminal"`
	} `toml:"output"`
	Fetch struct {
		Callsign string `toml:"callsign"`
		URL      string `toml:"url"`
		Timeout  int    `toml:"timeout"`
	} `toml:"fetch"`
	Tm struct {
		Name      string `toml:"name"`
		URL       string `toml:"url"`
		UserAgent string `toml:"userAgent"`
		CacheDir  string `toml:"cacheDir"`
		Timeout   int    `toml:"timeout"`
	} `toml:"tm"`
	Render struct {
		MinZoom      int     `toml:"minZoom"`
		MaxZoom      int     `toml:"maxZoom"`
		TargetWidth  int     `toml:"targetWidth"`
		TargetHeight int     `toml:"targetHeight"`
		Padding      float64 `toml:"padding"`
		MarkerRadius float64 `toml:"markerRadius"`
	} `toml:"render"`
}

// InitConf loads the TOML configuration. A missing config file is not an
// error, defaults and environment overrides still apply.
func InitConf(cfgFile string) {
	if cfgFile == "" {
		cfgFile = "conf.toml"
	}
	viper.SetConfigType("toml")
	viper.SetConfigFile(cfgFile)
	viper.AutomaticEnv() // read in environment variables that match
	// the callsign can come from the environment, CALLSIGN wins over
	// the repository owner set by CI
	viper.BindEnv("fetch.callsign", "CALLSIGN", "GITHUB_REPOSITORY_OWNER")
	if _, err := os.Stat(cfgFile); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			fmt.Printf("read config file(%s) error, details: %s\n", viper.ConfigFileUsed(), err)
		}
	}

	viper.SetDefault("app.version", "v0.1.0")
	viper.SetDefault("app.title", "QRZ Activation Maps")
	viper.SetDefault("output.html", "sota.html")
	viper.SetDefault("output.png", "sota.png")
	viper.SetDefault("output.outputTerminal", true)
	viper.SetDefault("fetch.url", "https://sotl.as/api/activations/{callsign}")
	viper.SetDefault("fetch.timeout", 30)
	viper.SetDefault("tm.name", "osm")
	viper.SetDefault("tm.url", "https://tile.openstreetmap.org/{z}/{x}/{y}.png")
	viper.SetDefault("tm.userAgent", "qrzmaps/0.1 (SOTA activation map generator)")
	viper.SetDefault("tm.cacheDir", "tile_cache")
	viper.SetDefault("tm.timeout", 20)
	viper.SetDefault("render.minZoom", 4)
	viper.SetDefault("render.maxZoom", 12)
	viper.SetDefault("render.targetWidth", 1200)
	viper.SetDefault("render.targetHeight", 800)
	viper.SetDefault("render.padding", 0.1)
	viper.SetDefault("render.markerRadius", 4.0)

	if err := viper.Unmarshal(&conf); err != nil {
		panic("unable to decode configuration")
	}
}

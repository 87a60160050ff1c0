// Package config describes a tessellation run as a YAML document.
//
//	polygon:
//	  sides: 6
//	  scale: 10
//	stop_time: 3
//	distribution:
//	  name: vonmises
//	  params: {mu: 0.5, kappa: 4}
//	output:
//	  png: cells.png
//
// Fields left out keep their Default values.
package config

import (
	"io"
	"os"

	"github.com/osuushi/stit/advanced"
	"github.com/osuushi/stit/importer"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Polygon       Polygon `yaml:"polygon"`
	StopTime      float64 `yaml:"stop_time"`
	MaxIterations int     `yaml:"max_iterations"`
	MaxRejections int     `yaml:"max_rejections"`
	// Zero means seed from the clock.
	Seed         uint64       `yaml:"seed"`
	Distribution Distribution `yaml:"distribution"`
	Ensemble     Ensemble     `yaml:"ensemble"`
	Output       Output       `yaml:"output"`
}

// The initial window. An SVG file takes precedence over Sides.
type Polygon struct {
	Sides int     `yaml:"sides"`
	Scale float64 `yaml:"scale"`
	SVG   string  `yaml:"svg,omitempty"`
}

type Distribution struct {
	Name   string             `yaml:"name"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

type Ensemble struct {
	Runs    int `yaml:"runs"`
	Workers int `yaml:"workers"`
}

// Empty paths are skipped.
type Output struct {
	PNG     string `yaml:"png,omitempty"`
	DXF     string `yaml:"dxf,omitempty"`
	PDF     string `yaml:"pdf,omitempty"`
	XLSX    string `yaml:"xlsx,omitempty"`
	Size    int    `yaml:"size"`
	Preview bool   `yaml:"preview"`
}

func Default() Config {
	return Config{
		Polygon:       Polygon{Sides: 4, Scale: 1},
		StopTime:      2,
		MaxIterations: advanced.DefaultMaxIterations,
		Distribution:  Distribution{Name: "uniform"},
		Ensemble:      Ensemble{Runs: 1},
		Output:        Output{Size: 800},
	}
}

// Load reads a config file on top of the defaults. Unknown keys are errors.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "opening config %s", path)
	}
	defer file.Close()

	config, err := Read(file)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return config, nil
}

func Read(r io.Reader) (Config, error) {
	config := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding yaml")
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (config Config) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return errors.Wrap(encoder.Close(), "encoding yaml")
}

func (config Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return errors.Wrapf(advanced.ErrInvalidConfig, format, args...)
	}
	switch {
	case config.Polygon.SVG == "" && config.Polygon.Sides < 3:
		return invalid("polygon needs at least 3 sides, got %d", config.Polygon.Sides)
	case !(config.Polygon.Scale > 0):
		return invalid("scale must be positive, got %v", config.Polygon.Scale)
	case !(config.StopTime > 0):
		return invalid("stop time must be positive, got %v", config.StopTime)
	case config.MaxIterations < 0:
		return invalid("max iterations must not be negative, got %d", config.MaxIterations)
	case config.MaxRejections < 0:
		return invalid("max rejections must not be negative, got %d", config.MaxRejections)
	case config.Ensemble.Runs < 1:
		return invalid("ensemble needs at least one run, got %d", config.Ensemble.Runs)
	case config.Ensemble.Workers < 0:
		return invalid("workers must not be negative, got %d", config.Ensemble.Workers)
	case config.Output.Size <= 0:
		return invalid("image size must be positive, got %d", config.Output.Size)
	}
	_, err := config.AngleDistribution()
	return err
}

// Custom distributions need code, so they can't come from a file.
func (config Config) AngleDistribution() (advanced.AngleDistribution, error) {
	return advanced.ParseAngleDistribution(config.Distribution.Name, config.Distribution.Params, nil)
}

// Window builds the initial polygon: the SVG file if there is one, otherwise a
// regular polygon inscribed in the unit circle. Either way it is then scaled.
func (config Config) Window() (advanced.Polygon, error) {
	var window advanced.Polygon
	var err error
	if config.Polygon.SVG != "" {
		window, err = importer.ReadSVGFile(config.Polygon.SVG)
	} else {
		window, err = advanced.MakeRegularPolygon(config.Polygon.Sides)
	}
	if err != nil {
		return advanced.Polygon{}, err
	}
	return window.Scale(config.Polygon.Scale), nil
}

// Engine converts the file settings into a simulation config. The source is
// left nil, and so seeded from the clock, when Seed is zero.
func (config Config) Engine() (advanced.Config, error) {
	dist, err := config.AngleDistribution()
	if err != nil {
		return advanced.Config{}, err
	}
	engine := advanced.Config{
		StopTime:      config.StopTime,
		MaxIterations: config.MaxIterations,
		MaxRejections: config.MaxRejections,
		Distribution:  dist,
	}
	if config.Seed != 0 {
		engine.Source = advanced.NewPCGSource(config.Seed)
	}
	return engine, nil
}

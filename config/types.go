package config

import (
	"time"

	"github.com/theoremus-urban-solutions/emstrack-routes/route"
	"github.com/theoremus-urban-solutions/emstrack-routes/segment"
	"github.com/theoremus-urban-solutions/emstrack-routes/tracking"
)

// SeparationConfig bounds the distance between consecutive updates, in meters
type SeparationConfig struct {
	Min float64 `yaml:"min" validate:"gte=0"`
	Max float64 `yaml:"max" validate:"gte=0,gtefield=Min"`
}

// TimeGapConfig bounds the interval between consecutive updates, in milliseconds
type TimeGapConfig struct {
	MinMS int64 `yaml:"minMS" validate:"gte=0"`
	MaxMS int64 `yaml:"maxMS" validate:"gte=0,gtefield=MinMS"`
}

// SegmentationConfig contains the leg breaking policy
type SegmentationConfig struct {
	SplitByStatus bool             `yaml:"splitByStatus"`
	Separation    SeparationConfig `yaml:"separation"`
	TimeGap       TimeGapConfig    `yaml:"timeGap"`
}

// InputConfig describes where updates come from
type InputConfig struct {
	Source    string `yaml:"source"`
	Format    string `yaml:"format" validate:"oneof=json gtfsrt"`
	Vehicle   string `yaml:"vehicle"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// OutputConfig selects the serialization of the planned route
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=geojson gpx"`
	Name   string `yaml:"name"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Segmentation SegmentationConfig `yaml:"segmentation"`
	Statuses     map[string]string  `yaml:"statuses"`
	Input        InputConfig        `yaml:"input"`
	Output       OutputConfig       `yaml:"output"`
}

// Default returns the configuration used when no file overrides it
func Default() AppConfig {
	opts := segment.DefaultOptions()
	labels := route.DefaultLabels()
	statuses := make(map[string]string, len(labels))
	for k, v := range labels {
		statuses[string(k)] = v
	}
	return AppConfig{
		Segmentation: SegmentationConfig{
			SplitByStatus: opts.SplitByStatus,
			Separation:    SeparationConfig{Min: opts.Separation.Min, Max: opts.Separation.Max},
			TimeGap:       TimeGapConfig{MinMS: opts.TimeGap.Min.Milliseconds(), MaxMS: opts.TimeGap.Max.Milliseconds()},
		},
		Statuses: statuses,
		Input:    InputConfig{Format: "json", TimeoutMS: 10000},
		Output:   OutputConfig{Format: "geojson", Name: "route"},
	}
}

// SegmentOptions converts the segmentation section to engine options
func (c AppConfig) SegmentOptions() segment.Options {
	opts := segment.DefaultOptions()
	opts.SplitByStatus = c.Segmentation.SplitByStatus
	opts.Separation = segment.SeparationThreshold{
		Min: c.Segmentation.Separation.Min,
		Max: c.Segmentation.Separation.Max,
	}
	opts.TimeGap = segment.TimeThreshold{
		Min: time.Duration(c.Segmentation.TimeGap.MinMS) * time.Millisecond,
		Max: time.Duration(c.Segmentation.TimeGap.MaxMS) * time.Millisecond,
	}
	return opts
}

// Labels returns the status label table
func (c AppConfig) Labels() route.Labels {
	labels := make(route.Labels, len(c.Statuses))
	for k, v := range c.Statuses {
		labels[tracking.Status(k)] = v
	}
	return labels
}

// Timeout is the input fetch timeout
func (c AppConfig) Timeout() time.Duration {
	return time.Duration(c.Input.TimeoutMS) * time.Millisecond
}

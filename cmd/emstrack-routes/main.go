package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/theoremus-urban-solutions/emstrack-routes/config"
	"github.com/theoremus-urban-solutions/emstrack-routes/formatter"
	"github.com/theoremus-urban-solutions/emstrack-routes/gtfsrt"
	"github.com/theoremus-urban-solutions/emstrack-routes/internal"
	"github.com/theoremus-urban-solutions/emstrack-routes/route"
	"github.com/theoremus-urban-solutions/emstrack-routes/tracking"
)

func main() {
	internal.InitLogging(os.Stderr)
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Printf("emstrack-routes: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("emstrack-routes", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to config.yml (default: search config.yml, ./config/config.yml)")
	input := fs.String("input", "", "comma-separated update feeds, URLs or files (overrides config)")
	inputFormat := fs.String("inputFormat", "", "json|gtfsrt (overrides config)")
	output := fs.String("format", "", "geojson|gpx (overrides config)")
	byStatus := fs.Bool("byStatus", false, "also break legs on status changes")
	vehicle := fs.String("vehicle", "", "vehicle id to route for gtfsrt input (default: first vehicle)")
	name := fs.String("name", "", "track name (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *input != "" {
		cfg.Input.Source = *input
	}
	if *inputFormat != "" {
		cfg.Input.Format = *inputFormat
	}
	if *output != "" {
		cfg.Output.Format = *output
	}
	if *byStatus {
		cfg.Segmentation.SplitByStatus = true
	}
	if *vehicle != "" {
		cfg.Input.Vehicle = *vehicle
	}
	if *name != "" {
		cfg.Output.Name = *name
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if cfg.Input.Source == "" {
		return errors.New("no input: set -input or input.source")
	}

	if cfg.Timeout() > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout())
		defer cancel()
	}
	feeds, err := newFetcher().fetchAll(ctx, cfg.Input.Source)
	if err != nil {
		return err
	}

	updates, err := decode(cfg, feeds)
	if err != nil {
		return err
	}
	log.Printf("decoded %d updates", len(updates))

	rt := route.FromUpdates(updates, cfg.Labels(), cfg.SegmentOptions())
	if rt != nil {
		log.Printf("split into %d segments (byStatus=%v)", len(rt.Segments), cfg.Segmentation.SplitByStatus)
	}

	buf, err := formatter.NewBuilder(cfg.Output.Name).Build(rt, cfg.Output.Format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(buf))
	return err
}

func decode(cfg config.AppConfig, feeds [][]byte) ([]*tracking.Update, error) {
	if cfg.Input.Format == "gtfsrt" {
		tracks, err := gtfsrt.Decode(feeds...)
		if err != nil {
			return nil, err
		}
		if n := tracks.Dropped(); n > 0 {
			log.Printf("dropped %d vehicle positions without id, time or valid position", n)
		}
		id := cfg.Input.Vehicle
		if id == "" {
			vehicles := tracks.Vehicles()
			if len(vehicles) == 0 {
				return nil, nil
			}
			id = vehicles[0]
		}
		return tracks.Updates(id), nil
	}

	var all []*tracking.Update
	for i, b := range feeds {
		updates, err := tracking.Decode(b)
		if err != nil {
			return nil, fmt.Errorf("feed %d: %w", i, err)
		}
		all = append(all, updates...)
	}
	return all, nil
}

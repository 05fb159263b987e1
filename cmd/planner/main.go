// Command planner computes an outing plan offline from a JSON file holding
// preferences and (optionally) the raw places to choose from.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kr/pretty"

	"github.com/jengzang/food-itinerary-go/internal/config"
	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/places"
	"github.com/jengzang/food-itinerary-go/internal/planner"
	"github.com/jengzang/food-itinerary-go/internal/service"
)

var (
	inputPath = flag.String("in", "-", "Input JSON file with preferences and places (- for stdin)")
	format    = flag.String("format", "text", "Output format: text, json or pretty")
	timeout   = flag.Duration("timeout", 15*time.Second, "Timeout for live place lookups")
)

func main() {
	flag.Parse()

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "planner: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(config.LoggingConfig{Level: "warn"})

	req, err := readRequest(*inputPath)
	if err != nil {
		return err
	}

	// Without places in the input, look them up live (no result cache)
	var placesService *service.PlacesService
	if req.Places == nil {
		client := places.NewClient(places.ClientConfig{
			APIKey:            cfg.Places.APIKey,
			BaseURL:           cfg.Places.BaseURL,
			Timeout:           cfg.Places.TimeoutDuration(),
			DefaultMaxResults: cfg.Places.DefaultMaxResults,
		}, logger)
		placesService = service.NewPlacesService(client, nil, cfg.Places.CacheTTLDuration(), cfg.Places.DefaultMaxResults, logger)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := service.NewPlanService(placesService, logger).Plan(ctx, req)
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "pretty":
		_, err := pretty.Fprintf(out, "%# v\n", result)
		return err
	default:
		return render(out, result)
	}
}

func readRequest(path string) (service.PlanRequest, error) {
	req := service.PlanRequest{Preferences: models.DefaultPreferences()}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return req, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode input: %w", err)
	}
	return req, nil
}

func render(w io.Writer, result *service.PlanResult) error {
	fmt.Fprintf(w, "%d places (%s)\n", result.PoolSize, result.Source)
	for _, tp := range []models.TierPlan{result.Plan.Upscale, result.Plan.Cheap} {
		fmt.Fprintf(w, "\n%s\n", tp.Label)
		if tp.Itinerary == nil {
			fmt.Fprintln(w, "  no place fits the current filters")
			continue
		}

		itin := tp.Itinerary
		fmt.Fprintf(w, "  %s (%s) %s, %s by %s, travel %s\n",
			itin.Place.Name, itin.Place.Area, itin.Place.PriceTag,
			planner.FormatDuration(itin.OneWayMins), itin.Mode, tp.CostLabel)
		for _, step := range itin.Timeline {
			fmt.Fprintf(w, "  %s  %s\n", step.Time, step.Label)
		}
		if p := tp.Progress; p != nil && p.HasLimit {
			fmt.Fprintf(w, "  total %s of %s (%d%%)\n",
				planner.FormatDuration(itin.TotalOutMins), planner.FormatDuration(float64(p.LimitMinutes)), p.ProgressPct)
		}
		fmt.Fprintf(w, "  %s\n", tp.DirectionsURL)
	}
	return nil
}

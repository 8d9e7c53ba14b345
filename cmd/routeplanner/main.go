// Command routeplanner is a thin CLI entrypoint around the engine: it
// reads a request document from a file, runs the orchestrator once,
// and writes the resulting route table to stdout as JSON. It stands
// in for the HTTP surface the core package itself stays agnostic of.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"multimodal-router/internal/domain"
	"multimodal-router/internal/engine"
	"multimodal-router/internal/geo"
	"multimodal-router/internal/oracle"
	"multimodal-router/internal/oraclecache"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	requestPath := flag.String("request", "", "path to the request JSON document")
	timeout := flag.Duration("timeout", 30*time.Second, "request deadline")
	flag.Parse()

	if *requestPath == "" {
		return fmt.Errorf("missing -request")
	}

	raw, err := os.ReadFile(*requestPath)
	if err != nil {
		return fmt.Errorf("reading request file: %w", err)
	}

	var doc requestDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}

	req, err := doc.toEngineRequest()
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	client, err := buildOracleClient()
	if err != nil {
		return fmt.Errorf("building oracle client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	log.Printf("[ENGINE] running request: origin=%v destination=%v inventory=%d", req.Origin, req.Destination, len(req.Inventory))

	result, err := engine.New(client).Run(ctx, req)
	if err != nil {
		return fmt.Errorf("running engine: %w", err)
	}

	out, err := json.MarshalIndent(responseDoc{
		Routes:    result.Routes,
		Synthetic: result.Synthetic,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

func buildOracleClient() (oracle.Client, error) {
	endpoint := getEnv("ORACLE_ENDPOINT", "http://localhost:8002")
	httpClient := oracle.NewHTTPClient(oracle.Config{Endpoint: endpoint})

	if cachePath := os.Getenv("ORACLE_CACHE_PATH"); cachePath != "" {
		cache, err := oraclecache.OpenSQLiteCache(cachePath)
		if err != nil {
			return nil, fmt.Errorf("opening oracle cache at %s: %w", cachePath, err)
		}
		return oracle.WithCache(httpClient, cache), nil
	}

	return oracle.WithCache(httpClient, oraclecache.NewMemoryCache()), nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// requestDoc mirrors the request contract in §6 as a JSON wire
// format: plain strings for enum fields, decoded into domain types by
// toEngineRequest.
type requestDoc struct {
	Origin            locationDoc   `json:"origin"`
	Destination       locationDoc   `json:"destination"`
	AvoidCars         bool          `json:"avoid_cars"`
	AvoidScooters     bool          `json:"avoid_scooters"`
	AvoidSeaVessels   bool          `json:"avoid_sea_vessels"`
	ScooterClustering bool          `json:"scooter_clustering"`
	Features          []domain.Feature `json:"features"`
	Avoids            []domain.Avoid   `json:"avoids"`
	Inventory         inventoryDoc  `json:"inventory"`
	Weather           weatherDoc    `json:"weather"`
	Traffic           trafficDoc    `json:"traffic"`
}

type locationDoc struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l locationDoc) toLocation() (geo.Location, error) {
	return geo.New(l.Lat, l.Lng)
}

type inventoryDoc struct {
	Vehicles []vehicleDoc `json:"vehicles"`
	Stops    []stopDoc    `json:"stops"`
}

type vehicleDoc struct {
	ID        int     `json:"id"`
	Type      string  `json:"type"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Available bool    `json:"available"`
}

type stopDoc struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Type string  `json:"type"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type weatherDoc struct {
	IsRaining bool `json:"is_raining"`
	IsWindy   bool `json:"is_windy"`
}

type trafficDoc struct {
	HighTrafficLocations []locationDoc `json:"high_traffic_locations"`
}

func (d requestDoc) toEngineRequest() (engine.Request, error) {
	origin, err := d.Origin.toLocation()
	if err != nil {
		return engine.Request{}, fmt.Errorf("origin: %w", err)
	}
	destination, err := d.Destination.toLocation()
	if err != nil {
		return engine.Request{}, fmt.Errorf("destination: %w", err)
	}

	var inventory []domain.Node
	for _, v := range d.Inventory.Vehicles {
		mot, err := transportTypeFromString(v.Type)
		if err != nil {
			return engine.Request{}, err
		}
		loc, err := geo.New(v.Lat, v.Lng)
		if err != nil {
			return engine.Request{}, fmt.Errorf("vehicle %d: %w", v.ID, err)
		}
		inventory = append(inventory, domain.Vehicle{ID: v.ID, Type: mot, Loc: loc, Available: v.Available})
	}
	for _, s := range d.Inventory.Stops {
		st, err := stopTypeFromString(s.Type)
		if err != nil {
			return engine.Request{}, err
		}
		loc, err := geo.New(s.Lat, s.Lng)
		if err != nil {
			return engine.Request{}, fmt.Errorf("stop %d: %w", s.ID, err)
		}
		inventory = append(inventory, domain.Stop{ID: s.ID, Name: s.Name, Type: st, Loc: loc})
	}

	var pref *domain.UserPreference
	if len(d.Features) > 0 || len(d.Avoids) > 0 {
		p, err := domain.NewUserPreference(d.Features, d.Avoids)
		if err != nil {
			return engine.Request{}, err
		}
		pref = p
	}

	var highTraffic []geo.Location
	for _, l := range d.Traffic.HighTrafficLocations {
		loc, err := l.toLocation()
		if err != nil {
			return engine.Request{}, fmt.Errorf("traffic location: %w", err)
		}
		highTraffic = append(highTraffic, loc)
	}

	return engine.Request{
		Origin:            origin,
		Destination:       destination,
		Inventory:         inventory,
		Weather:           domain.WeatherConditions{IsRaining: d.Weather.IsRaining, IsWindy: d.Weather.IsWindy},
		Traffic:           domain.TrafficConditions{HighTrafficLocations: highTraffic},
		ExcludeCars:       d.AvoidCars,
		ExcludeScooters:   d.AvoidScooters,
		ExcludeSeaVessels: d.AvoidSeaVessels,
		ScooterClustering: d.ScooterClustering,
		Preference:        pref,
	}, nil
}

func transportTypeFromString(s string) (domain.TransportType, error) {
	switch s {
	case "foot":
		return domain.Foot, nil
	case "scooter":
		return domain.Scooter, nil
	case "car":
		return domain.Car, nil
	case "bus":
		return domain.Bus, nil
	case "sea_vessel":
		return domain.SeaVessel, nil
	default:
		return 0, fmt.Errorf("unknown vehicle type %q", s)
	}
}

func stopTypeFromString(s string) (domain.StopType, error) {
	switch s {
	case "scooter_stop":
		return domain.ScooterStop, nil
	case "car_stop":
		return domain.CarStop, nil
	case "bus_stop":
		return domain.BusStop, nil
	case "sea_vessel_stop":
		return domain.SeaVesselStop, nil
	default:
		return 0, fmt.Errorf("unknown stop type %q", s)
	}
}

type responseDoc struct {
	Routes    []*domain.FeasibleRoute `json:"routes"`
	Synthetic []domain.Stop           `json:"synthetic_stops"`
}

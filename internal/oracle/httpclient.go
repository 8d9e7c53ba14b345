package oracle

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/gotidy/ptr"
	geojson "github.com/paulmach/go.geojson"
	"github.com/valyala/fasthttp"

	"multimodal-router/internal/domain"
	"multimodal-router/internal/geo"
)

// HTTPClient is the unwrapped oracle.Client: one HTTP round trip per
// Snap/Directions call, built the way the Valhalla client builds its
// transport (fasthttp for the request/response cycle, goccy/go-json
// for (de)serialization).
type HTTPClient struct {
	cfg        Config
	httpClient *fasthttp.Client
}

// NewHTTPClient constructs an oracle client against cfg.Endpoint.
func NewHTTPClient(cfg Config) *HTTPClient {
	return &HTTPClient{
		cfg: cfg,
		httpClient: &fasthttp.Client{
			Name:      "multimodal-router-oracle-client",
			TLSConfig: cfg.TLSConfig,
		},
	}
}

// directionsRequest mirrors the directions endpoint's expected body:
// two locations and a costing profile.
type directionsRequest struct {
	Locations []locationInput `json:"locations"`
	Costing   string          `json:"costing"`
}

type locationInput struct {
	Lon *float64 `json:"lon"`
	Lat *float64 `json:"lat"`
}

func newLocationInput(l geo.Location) locationInput {
	return locationInput{Lon: ptr.Float64(l.Lng), Lat: ptr.Float64(l.Lat)}
}

// directionsResponse mirrors the feature the spec's §6 describes:
// properties.summary.{distance,duration}, geometry.coordinates.
type directionsResponse struct {
	Properties struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
	} `json:"properties"`
	Geometry *geojson.Geometry `json:"geometry"`
}

func (c *HTTPClient) Directions(ctx context.Context, from, to geo.Location, mot domain.TransportType) (Result, error) {
	if mot == domain.SeaVessel {
		return seaVesselDirections(from, to), nil
	}

	body := directionsRequest{
		Locations: []locationInput{newLocationInput(from), newLocationInput(to)},
		Costing:   string(ProfileFor(mot)),
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := req.URI().Parse(nil, []byte(c.cfg.Endpoint+"/route")); err != nil {
		return Result{}, wrapExternalErr("directions", fmt.Errorf("invalid oracle endpoint: %w", err))
	}
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return Result{}, wrapExternalErr("directions", err)
	}
	req.SetBody(bodyBytes)

	if err := c.httpClient.DoDeadline(req, resp, deadlineFrom(ctx, c.cfg.directionsTimeout())); err != nil {
		return Result{}, wrapExternalErr("directions", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return Result{}, wrapExternalErr("directions", fmt.Errorf("oracle returned status %d", resp.StatusCode()))
	}

	var parsed directionsResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return Result{}, wrapExternalErr("directions", fmt.Errorf("malformed oracle response: %w", err))
	}

	return Result{
		DistanceM: parsed.Properties.Summary.Distance,
		DurationS: parsed.Properties.Summary.Duration,
		Polyline:  polylineFromGeometry(parsed.Geometry),
	}, nil
}

// snapRequest mirrors the snap endpoint's body: {locations, radius}.
type snapRequest struct {
	Locations [][2]float64 `json:"locations"`
	Radius    float64      `json:"radius"`
}

type snapResponse struct {
	Locations []struct {
		Location [2]float64 `json:"location"`
	} `json:"locations"`
}

func (c *HTTPClient) Snap(ctx context.Context, locations []geo.Location, profile Profile, radiusM float64) ([]geo.Location, error) {
	if profile == "" {
		profile = ProfileDrivingCar
	}
	if radiusM <= 0 {
		radiusM = c.cfg.defaultSnapRadiusM()
	}

	coords := make([][2]float64, len(locations))
	for i, l := range locations {
		coords[i] = l.ToLngLat()
	}
	body := snapRequest{Locations: coords, Radius: radiusM}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := req.URI().Parse(nil, []byte(c.cfg.Endpoint+"/snap?costing="+string(profile))); err != nil {
		return nil, wrapExternalErr("snap", fmt.Errorf("invalid oracle endpoint: %w", err))
	}
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, wrapExternalErr("snap", err)
	}
	req.SetBody(bodyBytes)

	if err := c.httpClient.DoDeadline(req, resp, deadlineFrom(ctx, c.cfg.snapTimeout())); err != nil {
		return nil, wrapExternalErr("snap", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, wrapExternalErr("snap", fmt.Errorf("oracle returned status %d", resp.StatusCode()))
	}

	var parsed snapResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, wrapExternalErr("snap", fmt.Errorf("malformed oracle response: %w", err))
	}

	out := make([]geo.Location, len(parsed.Locations))
	for i, l := range parsed.Locations {
		out[i] = geo.FromLngLat(l.Location)
	}
	return out, nil
}

// polylineFromGeometry unpacks a GeoJSON LineString's [lng,lat] pairs
// into the engine's Location polyline representation.
func polylineFromGeometry(g *geojson.Geometry) []geo.Location {
	if g == nil || !g.IsLineString() {
		return nil
	}
	pts := make([]geo.Location, len(g.LineString))
	for i, c := range g.LineString {
		if len(c) >= 2 {
			pts[i] = geo.Location{Lat: c[1], Lng: c[0]}
		}
	}
	return pts
}

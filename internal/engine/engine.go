// Package engine is the orchestrator: it composes eligibility
// filtering, optional e-scooter clustering, graph construction, path
// enumeration, oracle-backed evaluation, and ranking into the single
// entry point spec.md §4.10 calls get_possible_routes.
package engine

import (
	"context"
	"log"

	"multimodal-router/internal/cluster"
	"multimodal-router/internal/domain"
	"multimodal-router/internal/evaluator"
	"multimodal-router/internal/geo"
	"multimodal-router/internal/oracle"
	"multimodal-router/internal/pathenum"
	"multimodal-router/internal/ranker"
	"multimodal-router/internal/routegraph"
)

// Request is the full request contract presented to the core (§6):
// an origin/destination pair, the eligible inventory of vehicles and
// stops, ambient weather/traffic, and the optional ranking
// preference. Vehicles/Stops are domain.Node values so the caller
// builds the inventory once and the engine runs eligibility over it
// directly.
type Request struct {
	Origin      geo.Location
	Destination geo.Location
	Inventory   []domain.Node

	Weather domain.WeatherConditions
	Traffic domain.TrafficConditions

	ExcludeCars       bool
	ExcludeScooters   bool
	ExcludeSeaVessels bool
	ScooterClustering bool

	Preference *domain.UserPreference
}

// Result is what get_possible_routes returns: the ranked feasible
// routes table, any synthetic stops evaluation created (e.g.
// SCOOTER_STOP drop-offs), and the graph the paths were enumerated
// over — callers that want to inspect or re-evaluate the topology
// can do so without rebuilding it.
type Result struct {
	Routes    []*domain.FeasibleRoute
	Synthetic []domain.Stop
	Graph     *routegraph.Graph
}

// Engine wires an oracle client across requests; everything else is
// per-request state built fresh inside Run.
type Engine struct {
	client oracle.Client
}

func New(client oracle.Client) *Engine {
	return &Engine{client: client}
}

// Run executes the full pipeline for one request. An infeasible
// request (failed §4.6 preconditions, or a graph with no surviving
// paths) yields an empty Result, not an error. Only a cancelled or
// expired context (as a DeadlineExceededError) or an invariant
// violation propagates as an error. Run does not validate req itself,
// and oracle failures only drop the affected paths, so a request whose
// every oracle call fails also yields an empty Result.
func (e *Engine) Run(ctx context.Context, req Request) (Result, error) {
	start := domain.Point{Name: domain.StartName, Loc: req.Origin}
	end := domain.Point{Name: domain.EndName, Loc: req.Destination}

	nodes := make([]domain.Node, 0, len(req.Inventory)+2)
	nodes = append(nodes, start, end)
	nodes = append(nodes, req.Inventory...)

	eligible := routegraph.Eligible(nodes, req.Weather, req.ExcludeCars, req.ExcludeScooters, req.ExcludeSeaVessels)

	if req.ScooterClustering {
		eligible = cluster.Reduce(eligible)
	}

	g, err := routegraph.Build(eligible, req.Weather)
	if err != nil {
		log.Printf("[ENGINE] request infeasible: %v", err)
		return Result{Graph: g}, nil
	}
	if g.IsEmpty() {
		return Result{Graph: g}, nil
	}

	paths := pathenum.Enumerate(g)
	if len(paths) == 0 {
		return Result{Graph: g}, nil
	}

	ev := evaluator.New(e.client, g, req.Traffic)
	rows, synthetic, err := ev.Evaluate(ctx, paths)
	if err != nil {
		return Result{}, err
	}

	ranked := ranker.Rank(rows, req.Preference)

	return Result{Routes: ranked, Synthetic: synthetic, Graph: g}, nil
}

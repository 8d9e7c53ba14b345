// Package evaluator implements spec.md §4.8: it turns each enumerated
// path into a costed FeasibleRoute by querying the routing oracle edge
// by edge, enforcing per-mode range limits, splitting scooter legs
// that exceed their range, and aggregating per-path metrics. It is the
// largest single component in the planner, mirroring the Python
// original's path-by-path evaluation loop.
package evaluator

import (
	"context"
	"fmt"
	"log"
	"strings"

	"multimodal-router/internal/config"
	"multimodal-router/internal/domain"
	"multimodal-router/internal/geo"
	"multimodal-router/internal/oracle"
	"multimodal-router/internal/pathenum"
	"multimodal-router/internal/routegraph"
)

// Evaluator holds the per-request state the path evaluation pipeline
// needs: the oracle client, the graph it may extend with synthetic
// stops, and the traffic context used for the jam-delay penalty.
type Evaluator struct {
	client     oracle.Client
	graph      *routegraph.Graph
	traffic    domain.TrafficConditions
	nextStopID int
}

// New constructs an Evaluator. graph is mutated in place when a
// scooter split creates a synthetic stop — safe because each request
// builds its own graph and nothing else shares it mid-request.
func New(client oracle.Client, graph *routegraph.Graph, traffic domain.TrafficConditions) *Evaluator {
	return &Evaluator{
		client:     client,
		graph:      graph,
		traffic:    traffic,
		nextStopID: maxStopID(graph) + 1,
	}
}

func maxStopID(g *routegraph.Graph) int {
	max := 0
	for _, n := range g.Nodes() {
		if s, ok := n.(domain.Stop); ok && s.ID > max {
			max = s.ID
		}
	}
	return max
}

// Evaluate runs every enumerated path through the pipeline, returning
// the surviving rows plus any synthetic SCOOTER_STOP nodes created
// along the way. A dropped path (forbidden pattern, oracle failure,
// range violation) is simply absent from the result, not an error.
func (e *Evaluator) Evaluate(ctx context.Context, paths []pathenum.Path) ([]*domain.FeasibleRoute, []domain.Stop, error) {
	var rows []*domain.FeasibleRoute
	var synthetic []domain.Stop

	for _, p := range paths {
		select {
		case <-ctx.Done():
			return nil, nil, &domain.DeadlineExceededError{Err: ctx.Err()}
		default:
		}

		row, newStops, err := e.evaluatePath(ctx, p)
		if err != nil {
			// evaluatePath only ever returns a non-nil error for an
			// invariant violation; per-edge/oracle/pattern failures
			// drop the path silently (row == nil, err == nil).
			return nil, nil, err
		}
		if row == nil {
			continue
		}
		rows = append(rows, row)
		synthetic = append(synthetic, newStops...)
	}

	return rows, synthetic, nil
}

func (e *Evaluator) evaluatePath(ctx context.Context, p pathenum.Path) (*domain.FeasibleRoute, []domain.Stop, error) {
	nodes := make([]domain.Node, len(p))
	for i, uid := range p {
		n, ok := e.graph.Node(uid)
		if !ok {
			return nil, nil, nil
		}
		nodes[i] = n
	}

	row := &domain.FeasibleRoute{
		ExpectedIntermediateTime: []float64{0},
	}

	var sb strings.Builder
	var createdStops []domain.Stop
	finalPath := []domain.Node{nodes[0]}

	// The path is walked once over the unmutated nodes slice: a
	// scooter split never revisits the stop->b edge it creates,
	// because the loop index always advances to the next original
	// edge, not to one of the split's replacements.
	for i := 0; i < len(nodes)-1; i++ {
		a, b := nodes[i], nodes[i+1]
		mot, _, ok := e.graph.Edge(a.UID(), b.UID())
		if !ok {
			return nil, nil, nil
		}

		res, err := e.client.Directions(ctx, a.Location(), b.Location(), mot)
		if err != nil {
			log.Printf("[EVAL] dropping path %v: oracle directions failed for %s->%s: %v", p, a.UID(), b.UID(), err)
			return nil, nil, nil
		}

		if mot == domain.Scooter && res.DistanceM > config.MaxScooterDistanceM {
			if res.DistanceM > config.MaxScooterDistanceM+config.MaxWalkDistanceM {
				return nil, nil, nil
			}

			stop, aToStop, stopToB, err := e.splitScooterEdge(ctx, a, b, res)
			if err != nil {
				log.Printf("[EVAL] dropping path %v: scooter split failed: %v", p, err)
				return nil, nil, nil
			}

			createdStops = append(createdStops, stop)
			finalPath = append(finalPath, stop, b)

			// The split is reconstructed as the literal "SF" — no
			// stop marker — mirroring the original's
			// create_path_pattern(path[:index]) + "SF" +
			// create_path_pattern(path[index:]). Emitting the
			// marker-walking logic here instead would write "S*F",
			// which is itself a forbidden substring.
			sb.WriteString("SF")

			applyEdge(row, a, stop, domain.Scooter, aToStop, e.traffic)
			applyEdge(row, stop, b, domain.Foot, stopToB, e.traffic)
			continue
		}

		if exceedsRange(mot, res.DistanceM) {
			return nil, nil, nil
		}

		if domain.IsStop(a) {
			sb.WriteByte('*')
		}
		sb.WriteByte(mot.PatternTag())
		finalPath = append(finalPath, b)

		applyEdge(row, a, b, mot, res, e.traffic)
	}

	pattern := sb.String()
	if isForbidden(pattern) {
		return nil, nil, nil
	}

	row.Pattern = pattern
	row.Path = uidsOf(finalPath)
	row.Edges = len(row.Path) - 1
	if len(row.ExpectedIntermediateTime) != len(row.Path) {
		return nil, nil, &domain.InternalError{
			Invariant: "expected_intermediate_time length",
			Detail:    fmt.Sprintf("got %d entries for a %d-node path", len(row.ExpectedIntermediateTime), len(row.Path)),
		}
	}

	return row, createdStops, nil
}

func exceedsRange(mot domain.TransportType, distanceM float64) bool {
	switch mot {
	case domain.Foot:
		return distanceM > config.MaxWalkDistanceM
	case domain.Car:
		return distanceM > config.MaxCarDistanceM
	case domain.Scooter:
		return distanceM > config.MaxScooterDistanceM+config.MaxWalkDistanceM
	default:
		return false
	}
}

// splitScooterEdge creates the synthetic SCOOTER_STOP drop-off node
// and wires the two replacement edges into the graph, per spec.md
// §4.8 step 4.
func (e *Evaluator) splitScooterEdge(ctx context.Context, a, b domain.Node, originalLeg oracle.Result) (domain.Stop, oracle.Result, oracle.Result, error) {
	dropoffLoc := geo.CumulativeDistanceCutoff(originalLeg.Polyline, config.MaxScooterDistanceM)

	stop := domain.Stop{
		ID:   e.nextStopID,
		Name: "SCOOTER_STOP",
		Type: domain.ScooterStop,
		Loc:  dropoffLoc,
	}
	e.nextStopID++

	e.graph.AddEdge(a, stop, domain.Scooter, config.ScooterRentCost)
	e.graph.AddEdge(stop, b, domain.Foot, config.WalkCost)

	aToStop, err := e.client.Directions(ctx, a.Location(), stop.Loc, domain.Scooter)
	if err != nil {
		return domain.Stop{}, oracle.Result{}, oracle.Result{}, err
	}
	stopToB, err := e.client.Directions(ctx, stop.Loc, b.Location(), domain.Foot)
	if err != nil {
		return domain.Stop{}, oracle.Result{}, oracle.Result{}, err
	}

	return stop, aToStop, stopToB, nil
}

func uidsOf(nodes []domain.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.UID()
	}
	return out
}

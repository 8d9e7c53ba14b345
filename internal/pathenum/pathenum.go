// Package pathenum enumerates simple directed paths through the
// multi-modal graph from START to END, bounded by an edge-count
// cutoff so the combinatorics stay tractable (spec.md §4.7).
package pathenum

import (
	"multimodal-router/internal/config"
	"multimodal-router/internal/domain"
	"multimodal-router/internal/routegraph"
)

// Path is one simple START-to-END route through the graph, expressed
// as the ordered sequence of visited node uids.
type Path []string

// Enumerate yields every simple path (no repeated node) from START to
// END with at most config.PathEnumerationCutoff edges. Enumeration
// order is deterministic for a fixed graph: neighbors are visited in
// uid-sorted order at every branch.
func Enumerate(g *routegraph.Graph) []Path {
	if g.IsEmpty() {
		return nil
	}

	start, hasStart := findPoint(g, domain.StartName)
	end, hasEnd := findPoint(g, domain.EndName)
	if !hasStart || !hasEnd {
		return nil
	}

	visited := map[string]bool{start: true}
	current := []string{start}
	var out []Path

	var walk func(node string)
	walk = func(node string) {
		if node == end && len(current) > 1 {
			path := make(Path, len(current))
			copy(path, current)
			out = append(out, path)
			return
		}
		if len(current)-1 >= config.PathEnumerationCutoff {
			return
		}
		for _, next := range g.Neighbors(node) {
			if visited[next] {
				continue
			}
			visited[next] = true
			current = append(current, next)
			walk(next)
			current = current[:len(current)-1]
			visited[next] = false
		}
	}

	walk(start)
	return out
}

func findPoint(g *routegraph.Graph, name string) (string, bool) {
	return name, g.HasNode(name)
}

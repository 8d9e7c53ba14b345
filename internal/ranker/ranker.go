// Package ranker implements spec.md §4.9: it filters a result table
// against a UserPreference's avoided modes, then sorts the survivors
// either by the preference's feature tuple or, absent a preference,
// by total duration ascending.
package ranker

import (
	"sort"

	"multimodal-router/internal/domain"
)

// Rank filters rows whose per-mode count is nonzero for any avoided
// mode in pref, sorts the survivors, and re-indexes the result from
// 0. A nil pref sorts by total duration ascending.
func Rank(rows []*domain.FeasibleRoute, pref *domain.UserPreference) []*domain.FeasibleRoute {
	filtered := filterAvoids(rows, pref)

	if pref != nil && len(pref.Features) > 0 {
		sortByFeatures(filtered, pref.Features)
	} else {
		sortByDuration(filtered)
	}

	return filtered
}

func filterAvoids(rows []*domain.FeasibleRoute, pref *domain.UserPreference) []*domain.FeasibleRoute {
	if pref == nil || len(pref.Avoids) == 0 {
		out := make([]*domain.FeasibleRoute, len(rows))
		copy(out, rows)
		return out
	}

	out := make([]*domain.FeasibleRoute, 0, len(rows))
	for _, row := range rows {
		avoided := false
		for _, a := range pref.Avoids {
			if row.CountForAvoid(a) != 0 {
				avoided = true
				break
			}
		}
		if !avoided {
			out = append(out, row)
		}
	}
	return out
}

func sortByFeatures(rows []*domain.FeasibleRoute, features []domain.Feature) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		for _, f := range features {
			av, bv := a.Feature(f), b.Feature(f)
			if av != bv {
				return av < bv
			}
		}
		return false
	})
}

func sortByDuration(rows []*domain.FeasibleRoute) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalDurationS < rows[j].TotalDurationS
	})
}

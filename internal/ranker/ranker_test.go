package ranker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multimodal-router/internal/domain"
)

func TestRankDropsRowsUsingAvoidedMode(t *testing.T) {
	carRow := &domain.FeasibleRoute{Path: []string{"a", "b"}, TotalDurationS: 300, CarCount: 1}
	footRow := &domain.FeasibleRoute{Path: []string{"a", "b"}, TotalDurationS: 900}

	pref, err := domain.NewUserPreference([]domain.Feature{domain.FeatureTotalDuration}, []domain.Avoid{domain.AvoidCar})
	require.NoError(t, err)

	ranked := Rank([]*domain.FeasibleRoute{carRow, footRow}, pref)

	require.Len(t, ranked, 1)
	assert.Same(t, footRow, ranked[0])
}

func TestRankSortsByFeatureTuple(t *testing.T) {
	rowA := &domain.FeasibleRoute{TotalDistanceM: 1000, TotalDurationS: 200}
	rowB := &domain.FeasibleRoute{TotalDistanceM: 1000, TotalDurationS: 100}
	rowC := &domain.FeasibleRoute{TotalDistanceM: 500, TotalDurationS: 500}

	pref, err := domain.NewUserPreference(
		[]domain.Feature{domain.FeatureTotalDistance, domain.FeatureTotalDuration},
		nil,
	)
	require.NoError(t, err)

	ranked := Rank([]*domain.FeasibleRoute{rowA, rowB, rowC}, pref)

	require.Len(t, ranked, 3)
	assert.Same(t, rowC, ranked[0])
	assert.Same(t, rowB, ranked[1])
	assert.Same(t, rowA, ranked[2])
}

func TestRankFallsBackToDurationWithoutPreference(t *testing.T) {
	slow := &domain.FeasibleRoute{TotalDurationS: 900}
	fast := &domain.FeasibleRoute{TotalDurationS: 300}

	ranked := Rank([]*domain.FeasibleRoute{slow, fast}, nil)

	require.Len(t, ranked, 2)
	assert.Same(t, fast, ranked[0])
	assert.Same(t, slow, ranked[1])
}

func TestRankIsStableAcrossRepeatedCalls(t *testing.T) {
	rows := []*domain.FeasibleRoute{
		{TotalDurationS: 100, Edges: 1},
		{TotalDurationS: 100, Edges: 2},
		{TotalDurationS: 100, Edges: 3},
	}

	first := Rank(rows, nil)
	second := Rank(rows, nil)

	require.Len(t, first, 3)
	for i := range first {
		assert.Same(t, first[i], second[i])
	}
}

func TestRankWithNoAvoidsKeepsAllRows(t *testing.T) {
	rows := []*domain.FeasibleRoute{
		{TotalDurationS: 100, CarCount: 1},
		{TotalDurationS: 200, EscooterCount: 2},
	}

	ranked := Rank(rows, nil)

	assert.Len(t, ranked, 2)
}

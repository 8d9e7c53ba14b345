package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"multimodal-router/internal/domain"
	"multimodal-router/internal/geo"
)

func TestReducePassesThroughWhenNoScooters(t *testing.T) {
	nodes := []domain.Node{
		domain.Point{Name: domain.StartName},
		domain.Vehicle{ID: 1, Type: domain.Car, Loc: geo.Location{Lat: 41, Lng: 29}},
	}
	out := Reduce(nodes)
	assert.Len(t, out, 2)
}

func TestReduceMergesNearbyScootersIntoOneRepresentative(t *testing.T) {
	nodes := []domain.Node{
		domain.Point{Name: domain.StartName},
		domain.Vehicle{ID: 1, Type: domain.Scooter, Loc: geo.Location{Lat: 41.000, Lng: 29.000}},
		domain.Vehicle{ID: 2, Type: domain.Scooter, Loc: geo.Location{Lat: 41.0001, Lng: 29.0001}},
		domain.Vehicle{ID: 3, Type: domain.Scooter, Loc: geo.Location{Lat: 41.0002, Lng: 29.0000}},
	}

	out := Reduce(nodes)

	var scooterCount int
	for _, n := range out {
		if v, ok := n.(domain.Vehicle); ok && v.Type == domain.Scooter {
			scooterCount++
		}
	}
	assert.Equal(t, 1, scooterCount)
	assert.Len(t, out, 2) // START + 1 representative
}

func TestReduceKeepsDistantScootersSeparate(t *testing.T) {
	nodes := []domain.Node{
		domain.Vehicle{ID: 1, Type: domain.Scooter, Loc: geo.Location{Lat: 41.0, Lng: 29.0}},
		domain.Vehicle{ID: 2, Type: domain.Scooter, Loc: geo.Location{Lat: 42.0, Lng: 30.0}},
	}

	out := Reduce(nodes)

	assert.Len(t, out, 2)
}

func TestReducePreservesNonScooterOrderAndAppendsRepresentatives(t *testing.T) {
	start := domain.Point{Name: domain.StartName}
	end := domain.Point{Name: domain.EndName}
	scooter := domain.Vehicle{ID: 9, Type: domain.Scooter, Loc: geo.Location{Lat: 41, Lng: 29}}

	out := Reduce([]domain.Node{start, scooter, end})

	assert.Equal(t, start, out[0])
	assert.Equal(t, end, out[1])
	v, ok := out[2].(domain.Vehicle)
	assert.True(t, ok)
	assert.Equal(t, 9, v.ID)
}

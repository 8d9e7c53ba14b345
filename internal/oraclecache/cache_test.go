package oraclecache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multimodal-router/internal/domain"
	"multimodal-router/internal/geo"
)

func TestMemoryCacheComputesOnceOnMiss(t *testing.T) {
	c := NewMemoryCache()
	key := Key{Mot: domain.Foot, From: geo.Location{Lat: 41, Lng: 29}, To: geo.Location{Lat: 41.01, Lng: 29.01}}

	var calls int32
	compute := func() (Entry, error) {
		atomic.AddInt32(&calls, 1)
		return Entry{DistanceM: 500}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := c.GetOrCompute(key, compute)
			assert.NoError(t, err)
			assert.Equal(t, 500.0, e.DistanceM)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestMemoryCacheGetMiss(t *testing.T) {
	c := NewMemoryCache()
	_, ok := c.Get(Key{Mot: domain.Car, From: geo.Location{}, To: geo.Location{}})
	assert.False(t, ok)
}

func TestMemoryCacheRoundsCoordinates(t *testing.T) {
	c := NewMemoryCache()
	a := Key{Mot: domain.Scooter, From: geo.Location{Lat: 41.123456, Lng: 29.1}, To: geo.Location{Lat: 41.2, Lng: 29.2}}
	b := Key{Mot: domain.Scooter, From: geo.Location{Lat: 41.123459, Lng: 29.1}, To: geo.Location{Lat: 41.2, Lng: 29.2}}

	_, err := c.GetOrCompute(a, func() (Entry, error) { return Entry{DistanceM: 42}, nil })
	require.NoError(t, err)

	e, ok := c.Get(b)
	assert.True(t, ok)
	assert.Equal(t, 42.0, e.DistanceM)
}

func TestMemoryCacheDoesNotStoreOnError(t *testing.T) {
	c := NewMemoryCache()
	key := Key{Mot: domain.Bus, From: geo.Location{Lat: 1, Lng: 1}, To: geo.Location{Lat: 2, Lng: 2}}

	_, err := c.GetOrCompute(key, func() (Entry, error) { return Entry{}, errors.New("oracle down") })
	assert.Error(t, err)

	_, ok := c.Get(key)
	assert.False(t, ok)
}

package oraclecache

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"multimodal-router/internal/geo"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS oracle_cache (
	mot INTEGER NOT NULL,
	from_lat REAL NOT NULL,
	from_lng REAL NOT NULL,
	to_lat REAL NOT NULL,
	to_lng REAL NOT NULL,
	distance_m REAL NOT NULL,
	duration_s REAL NOT NULL,
	polyline TEXT NOT NULL,
	PRIMARY KEY (mot, from_lat, from_lng, to_lat, to_lng)
);
`

// SQLiteCache is the persistent counterpart to MemoryCache, for
// long-running services that want to warm the cache across restarts.
// It is adapted from the teacher's distanceCacheRepository: same
// round-to-5-decimals key scheme, same upsert-on-conflict pattern,
// repointed at oracle results instead of participant trip distances.
type SQLiteCache struct {
	db *sql.DB
}

// OpenSQLiteCache opens (creating if needed) a SQLite-backed oracle
// cache at path.
func OpenSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open oracle cache database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping oracle cache database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("failed to migrate oracle cache schema: %w", err)
	}
	return &SQLiteCache{db: db}, nil
}

// Close closes the underlying connection.
func (c *SQLiteCache) Close() error { return c.db.Close() }

// Get looks up a memoized entry without going through GetOrCompute's
// in-flight coordination; callers that want the dedup behavior should
// use GetOrCompute.
func (c *SQLiteCache) Get(key Key) (Entry, bool) {
	row := c.db.QueryRowContext(context.Background(), `
		SELECT distance_m, duration_s, polyline FROM oracle_cache
		WHERE mot = ? AND ROUND(from_lat, 5) = ROUND(?, 5) AND ROUND(from_lng, 5) = ROUND(?, 5)
		  AND ROUND(to_lat, 5) = ROUND(?, 5) AND ROUND(to_lng, 5) = ROUND(?, 5)`,
		int(key.Mot), key.From.Lat, key.From.Lng, key.To.Lat, key.To.Lng)

	var e Entry
	var polyline string
	if err := row.Scan(&e.DistanceM, &e.DurationS, &polyline); err != nil {
		return Entry{}, false
	}
	e.Polyline = decodePolyline(polyline)
	return e, true
}

// GetOrCompute reads through to compute on a miss and persists the
// result. It does not attempt in-process in-flight deduplication
// (that is MemoryCache's job); callers wanting both tiers should
// front this cache with a MemoryCache.
func (c *SQLiteCache) GetOrCompute(key Key, compute func() (Entry, error)) (Entry, error) {
	if e, ok := c.Get(key); ok {
		return e, nil
	}
	e, err := compute()
	if err != nil {
		return Entry{}, err
	}
	_, execErr := c.db.ExecContext(context.Background(), `
		INSERT INTO oracle_cache (mot, from_lat, from_lng, to_lat, to_lng, distance_m, duration_s, polyline)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(mot, from_lat, from_lng, to_lat, to_lng)
		DO UPDATE SET distance_m = excluded.distance_m, duration_s = excluded.duration_s, polyline = excluded.polyline`,
		int(key.Mot), key.From.Lat, key.From.Lng, key.To.Lat, key.To.Lng,
		e.DistanceM, e.DurationS, encodePolyline(e.Polyline))
	if execErr != nil {
		return Entry{}, fmt.Errorf("failed to persist oracle cache entry: %w", execErr)
	}
	return e, nil
}

func encodePolyline(pts []geo.Location) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%f,%f", p.Lat, p.Lng)
	}
	return strings.Join(parts, ";")
}

func decodePolyline(s string) []geo.Location {
	if s == "" {
		return nil
	}
	segments := strings.Split(s, ";")
	pts := make([]geo.Location, 0, len(segments))
	for _, seg := range segments {
		var lat, lng float64
		if _, err := fmt.Sscanf(seg, "%f,%f", &lat, &lng); err == nil {
			pts = append(pts, geo.Location{Lat: lat, Lng: lng})
		}
	}
	return pts
}

package domain

import (
	"time"

	"multimodal-router/internal/geo"
)

// Sex and AgeGroup are carried from the original source's data model
// for a future personalization hook; the ranker in this package does
// not read them (see spec's Open Questions: the ML hook is
// incomplete upstream and out of the core contract here).
type Sex int

const (
	SexMale Sex = iota + 1
	SexFemale
	SexOther
)

type AgeGroup int

const (
	AgeGroupChild AgeGroup = iota + 1
	AgeGroupAdult
	AgeGroupSenior
)

// User is an opaque rider record. Only Sex and AgeGroup would feed an
// eventual ML-driven ranking hook; the core route planner never reads
// them today.
type User struct {
	ID       int
	Sex      Sex
	AgeGroup AgeGroup
	Loc      *geo.Location
}

// TempData buckets a point in time into day-of-week and hour-of-day,
// the same granularity the ML hook in the original source would have
// consumed. Currently unused by ranking; present as the seam for it.
type TempData struct {
	DayOfWeek int // Monday = 0 ... Sunday = 6
	HourOfDay int // 0-23
}

// TempDataFromTime derives a TempData from a wall-clock time,
// converting Go's Sunday=0 weekday numbering to the Monday=0
// convention the original model used.
func TempDataFromTime(t time.Time) TempData {
	day := (int(t.Weekday()) + 6) % 7
	return TempData{DayOfWeek: day, HourOfDay: t.Hour()}
}

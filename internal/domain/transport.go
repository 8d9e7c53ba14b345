// Package domain holds the route planner's tagged-variant data model:
// transport and stop taxonomies, the Point/Vehicle/Stop node union,
// graph edges, environmental conditions, user preferences, and the
// feasible-route result row.
package domain

import "fmt"

// TransportType is the closed set of modes of transport the planner
// reasons about.
type TransportType int

const (
	Foot TransportType = iota + 1
	Scooter
	Car
	Bus
	SeaVessel
)

func (t TransportType) String() string {
	switch t {
	case Foot:
		return "FOOT"
	case Scooter:
		return "SCOOTER"
	case Car:
		return "CAR"
	case Bus:
		return "BUS"
	case SeaVessel:
		return "SEA_VESSEL"
	default:
		return fmt.Sprintf("TransportType(%d)", int(t))
	}
}

// Abbr returns the initials of the mode's name tokens, used to build a
// Vehicle's uid (e.g. "SV" for SEA_VESSEL, "S" for SCOOTER).
func (t TransportType) Abbr() string {
	switch t {
	case Foot:
		return "F"
	case Scooter:
		return "S"
	case Car:
		return "C"
	case Bus:
		return "B"
	case SeaVessel:
		return "SV"
	default:
		return "?"
	}
}

// PatternTag returns the single-letter tag used in path pattern
// strings: F, S, C, B, V.
func (t TransportType) PatternTag() byte {
	switch t {
	case Foot:
		return 'F'
	case Scooter:
		return 'S'
	case Car:
		return 'C'
	case Bus:
		return 'B'
	case SeaVessel:
		return 'V'
	default:
		return '?'
	}
}

// StopType is the closed set of stop kinds the planner reasons about.
type StopType int

const (
	ScooterStop StopType = iota + 1
	CarStop
	BusStop
	SeaVesselStop
)

func (s StopType) String() string {
	switch s {
	case ScooterStop:
		return "SCOOTER_STOP"
	case CarStop:
		return "CAR_STOP"
	case BusStop:
		return "BUS_STOP"
	case SeaVesselStop:
		return "SEA_VESSEL_STOP"
	default:
		return fmt.Sprintf("StopType(%d)", int(s))
	}
}

// Abbr returns the initials of the stop type's name tokens, used to
// build a Stop's uid (e.g. "CS" for CAR_STOP, "SVS" for
// SEA_VESSEL_STOP).
func (s StopType) Abbr() string {
	switch s {
	case ScooterStop:
		return "SS"
	case CarStop:
		return "CS"
	case BusStop:
		return "BS"
	case SeaVesselStop:
		return "SVS"
	default:
		return "?"
	}
}

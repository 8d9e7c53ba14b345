package domain

import (
	"fmt"

	"multimodal-router/internal/geo"
)

// NodeKind discriminates the three node shapes a Node can take.
type NodeKind int

const (
	KindPoint NodeKind = iota
	KindVehicle
	KindStop
)

// Node is the tagged union over Point, Vehicle and Stop — every
// vertex the multi-modal graph can contain. Implementations are value
// types; equality and graph membership are both keyed on UID.
type Node interface {
	UID() string
	Kind() NodeKind
	Location() geo.Location
}

// StartName and EndName are the two reserved Point names.
const (
	StartName = "START"
	EndName   = "END"
)

// Point is the origin or destination of a request.
type Point struct {
	Name string
	Loc  geo.Location
}

func (p Point) UID() string          { return p.Name }
func (p Point) Kind() NodeKind       { return KindPoint }
func (p Point) Location() geo.Location { return p.Loc }
func (p Point) String() string {
	return fmt.Sprintf("Point(name=%s, loc=%s)", p.Name, p.Loc)
}

// Vehicle is a shared e-scooter, e-car, bus, or sea vessel at a
// location.
type Vehicle struct {
	ID        int
	Type      TransportType
	Loc       geo.Location
	Available bool
}

func (v Vehicle) UID() string          { return fmt.Sprintf("%s-%d", v.Type.Abbr(), v.ID) }
func (v Vehicle) Kind() NodeKind       { return KindVehicle }
func (v Vehicle) Location() geo.Location { return v.Loc }
func (v Vehicle) String() string {
	return fmt.Sprintf("Vehicle(id=%d, type=%s, loc=%s, available=%v)", v.ID, v.Type, v.Loc, v.Available)
}

// Stop is a fixed docking/parking/port location: a scooter dock, a
// parking area, a bus stop, or a port.
type Stop struct {
	ID   int
	Name string
	Type StopType
	Loc  geo.Location
}

func (s Stop) UID() string          { return fmt.Sprintf("%s-%d", s.Type.Abbr(), s.ID) }
func (s Stop) Kind() NodeKind       { return KindStop }
func (s Stop) Location() geo.Location { return s.Loc }
func (s Stop) String() string {
	return fmt.Sprintf("Stop(id=%d, name=%s, type=%s, loc=%s)", s.ID, s.Name, s.Type, s.Loc)
}

// --- classification predicates, matching the original isinstance-style
// helpers as exhaustive type switches ---

func IsPoint(n Node) bool { return n.Kind() == KindPoint }

func IsStartPoint(n Node) bool {
	p, ok := n.(Point)
	return ok && p.Name == StartName
}

func IsEndPoint(n Node) bool {
	p, ok := n.(Point)
	return ok && p.Name == EndName
}

func IsVehicle(n Node) bool { return n.Kind() == KindVehicle }

func IsCar(n Node) bool {
	v, ok := n.(Vehicle)
	return ok && v.Type == Car
}

func IsBus(n Node) bool {
	v, ok := n.(Vehicle)
	return ok && v.Type == Bus
}

func IsScooter(n Node) bool {
	v, ok := n.(Vehicle)
	return ok && v.Type == Scooter
}

func IsSeaVessel(n Node) bool {
	v, ok := n.(Vehicle)
	return ok && v.Type == SeaVessel
}

func IsStop(n Node) bool { return n != nil && n.Kind() == KindStop }

func IsCarStop(n Node) bool {
	s, ok := n.(Stop)
	return ok && s.Type == CarStop
}

func IsBusStop(n Node) bool {
	s, ok := n.(Stop)
	return ok && s.Type == BusStop
}

func IsScooterStop(n Node) bool {
	s, ok := n.(Stop)
	return ok && s.Type == ScooterStop
}

func IsSeaVesselStop(n Node) bool {
	s, ok := n.(Stop)
	return ok && s.Type == SeaVesselStop
}

// Edge is a directed connection between two nodes, identified by uid,
// carrying the mode of transport used and its cost.
type Edge struct {
	From Node
	To   Node
	Mot  TransportType
	Cost int
}

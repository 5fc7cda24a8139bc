// Package simerr collects the sentinel errors shared by the simulation
// layers (model, vehicle, station, fleet) so each layer can react to the
// exact fault its policy is responsible for, via errors.Is.
package simerr

import "errors"

var (
	// ErrTooPowerfulDischarge is raised by the tension solver when the
	// requested power cannot be sustained at the cell's present state of
	// charge (the quadratic discriminant goes negative).
	ErrTooPowerfulDischarge = errors.New("too powerful discharge")

	// ErrEmptyCell is raised when a sub-step would drive a cell's stored
	// energy below zero.
	ErrEmptyCell = errors.New("cell is empty")

	// ErrFullCell is raised when a sub-step would drive a cell's stored
	// energy above its available capacity.
	ErrFullCell = errors.New("cell is full")

	// ErrBatteryLifetime is raised when a battery's available-to-nominal
	// capacity ratio falls at or below its end-of-life threshold.
	ErrBatteryLifetime = errors.New("battery reached end of life")

	// ErrNoPluggedVehicle is raised when a charging station is asked to
	// charge with no vehicle plugged in.
	ErrNoPluggedVehicle = errors.New("no vehicle plugged into charging station")

	// ErrRetriesExhausted is raised when a vehicle's bounded replace/upgrade
	// retry loop fails to resolve a fault within its depth limit.
	ErrRetriesExhausted = errors.New("vehicle exhausted battery recovery retries")

	// ErrConfiguration marks boundary-level failures (malformed resource or
	// scenario descriptors) distinct from simulation faults above.
	ErrConfiguration = errors.New("invalid configuration")
)

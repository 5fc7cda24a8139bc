package model

import (
	"fmt"
	"sort"
)

// ocvKind discriminates the two supported OCV curve shapes.
type ocvKind int

const (
	ocvLinear ocvKind = iota
	ocvLookup
)

// OCVPoint is one sample of an open-circuit-voltage lookup table.
type OCVPoint struct {
	SOC     float64
	Voltage float64
}

// OCVCurve is a cell's open-circuit voltage as a function of state of
// charge, represented as a tagged variant rather than a bare function
// pointer so it stays comparable and cheaply deep-copyable.
type OCVCurve struct {
	kind   ocvKind
	v0, v1 float64
	table  []OCVPoint
}

// NewLinearOCV builds a curve that interpolates linearly between v0 at
// soc=0 and v1 at soc=1.
func NewLinearOCV(v0, v1 float64) OCVCurve {
	return OCVCurve{kind: ocvLinear, v0: v0, v1: v1}
}

// DefaultOCV returns the default 3V-to-4.2V linear curve.
func DefaultOCV() OCVCurve {
	return NewLinearOCV(3.0, 4.2)
}

// NewLookupOCV builds a curve that linearly interpolates between table
// entries. The table must have at least two points, sorted or not, and
// must bracket the full [0,1] domain (a point at soc=0 and one at soc=1).
func NewLookupOCV(table []OCVPoint) (OCVCurve, error) {
	if len(table) < 2 {
		return OCVCurve{}, fmt.Errorf("ocv lookup table needs at least 2 points, got %d", len(table))
	}
	sorted := make([]OCVPoint, len(table))
	copy(sorted, table)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].SOC < sorted[j].SOC })
	if sorted[0].SOC != 0 || sorted[len(sorted)-1].SOC != 1 {
		return OCVCurve{}, fmt.Errorf("ocv lookup table must bracket [0,1], got [%v,%v]", sorted[0].SOC, sorted[len(sorted)-1].SOC)
	}
	return OCVCurve{kind: ocvLookup, table: sorted}, nil
}

// Evaluate returns the open-circuit voltage at the given state of charge.
// Evaluation outside [0,1] returns an error, never a silent extrapolation.
func (c OCVCurve) Evaluate(soc float64) (float64, error) {
	if soc < 0 || soc > 1 {
		return 0, fmt.Errorf("ocv curve evaluated outside domain [0,1]: soc=%v", soc)
	}
	switch c.kind {
	case ocvLinear:
		return c.v0 + (c.v1-c.v0)*soc, nil
	case ocvLookup:
		return evaluateLookup(c.table, soc), nil
	default:
		return 0, fmt.Errorf("ocv curve has unknown kind %d", c.kind)
	}
}

func evaluateLookup(table []OCVPoint, soc float64) float64 {
	for i := 1; i < len(table); i++ {
		if soc <= table[i].SOC {
			lo, hi := table[i-1], table[i]
			if hi.SOC == lo.SOC {
				return hi.Voltage
			}
			frac := (soc - lo.SOC) / (hi.SOC - lo.SOC)
			return lo.Voltage + frac*(hi.Voltage-lo.Voltage)
		}
	}
	return table[len(table)-1].Voltage
}

// Clone returns an independent copy of the curve (deep-copying the lookup
// table, if any).
func (c OCVCurve) Clone() OCVCurve {
	if c.kind != ocvLookup {
		return c
	}
	table := make([]OCVPoint, len(c.table))
	copy(table, c.table)
	return OCVCurve{kind: ocvLookup, table: table}
}

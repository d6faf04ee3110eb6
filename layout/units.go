package layout

import (
	"fmt"
	"math"
)

// This file defines the unit-safe length type used across the package.
// Lengths are stored in millimeters; constructors and accessors keep the
// unit conversions at the boundaries so layout math stays unit-free.

// Length is a distance on the page, stored internally in millimeters.
// It works like time.Duration: a named scalar with one constant per unit,
// so arithmetic is native and conversions are explicit.
type Length float64

// One of each supported unit, expressed in millimeters.
const (
	Millimeter Length = 1
	Centimeter        = 10 * Millimeter
	Inch              = 25.4 * Millimeter
	Point             = Inch / 72

	// DeviceUnit is the fixed-point subdivision of a point used by text
	// shaping backends (1024 device units per point).
	DeviceUnit = Point / 1024
)

// Conversion constants between pt and mm, for raw float boundaries such as
// drawing backends.
const (
	PtToMm = 25.4 / 72.0
	MmToPt = 72.0 / 25.4
)

// Mm returns a length of v millimeters.
func Mm(v float64) Length { return Length(v) * Millimeter }

// Cm returns a length of v centimeters.
func Cm(v float64) Length { return Length(v) * Centimeter }

// Inches returns a length of v inches.
func Inches(v float64) Length { return Length(v) * Inch }

// Pt returns a length of v typographic points.
func Pt(v float64) Length { return Length(v) * Point }

// DeviceUnits returns a length of v device units.
func DeviceUnits(v float64) Length { return Length(v) * DeviceUnit }

// Mm reports the length in millimeters.
func (l Length) Mm() float64 { return float64(l) }

// Cm reports the length in centimeters.
func (l Length) Cm() float64 { return float64(l / Centimeter) }

// Inches reports the length in inches.
func (l Length) Inches() float64 { return float64(l / Inch) }

// Pt reports the length in typographic points.
func (l Length) Pt() float64 { return float64(l / Point) }

// DeviceUnits reports the length in device units.
func (l Length) DeviceUnits() float64 { return float64(l / DeviceUnit) }

// Min returns the smaller of l and o.
func (l Length) Min(o Length) Length {
	if o < l {
		return o
	}
	return l
}

// Max returns the larger of l and o.
func (l Length) Max(o Length) Length {
	if o > l {
		return o
	}
	return l
}

// Abs returns the absolute value of l.
func (l Length) Abs() Length { return Length(math.Abs(float64(l))) }

func (l Length) String() string { return fmt.Sprintf("%gmm", float64(l)) }

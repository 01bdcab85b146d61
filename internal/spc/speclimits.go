package spc

import "fmt"

// OptionalValue is a float64 that may be absent. Absence is explicit and
// distinct from NaN, which remains a legal observation value downstream.
type OptionalValue struct {
	Value float64
	Valid bool
}

// Value wraps a present float64.
func Value(v float64) OptionalValue { return OptionalValue{Value: v, Valid: true} }

// Absent returns the absent OptionalValue.
func Absent() OptionalValue { return OptionalValue{} }

// SpecLimits is a normalized (lower, upper, target) specification triple.
// User-entered tolerancing data is frequently partial or swapped, so
// construction repairs the common mistakes instead of rejecting them:
//
//   - Both limits present: order is canonicalized (swapped input is
//     corrected), and an absent target defaults to the midpoint. A target
//     outside the bilateral range is contradictory and fails with a
//     ValidationError.
//   - One limit present with a target: the limit is reinterpreted as
//     upper or lower depending on which side of the target it falls. A
//     limit equal to the target keeps the slot it was supplied in.
//   - One limit present without a target: stored as supplied; no
//     direction can be inferred.
//   - No limits: the target alone (possibly absent) is stored.
type SpecLimits struct {
	lower  OptionalValue
	upper  OptionalValue
	target OptionalValue
}

// NewSpecLimits normalizes a pair of specification limits and an optional
// nominal/target value. Any of the three may be absent.
func NewSpecLimits(lower, upper, target OptionalValue) (SpecLimits, error) {
	switch {
	case lower.Valid && upper.Valid:
		lo, hi := lower.Value, upper.Value
		if lo > hi {
			lo, hi = hi, lo
		}
		if !target.Valid {
			return SpecLimits{lower: Value(lo), upper: Value(hi), target: Value((lo + hi) / 2)}, nil
		}
		if target.Value < lo || target.Value > hi {
			return SpecLimits{}, &ValidationError{
				Field:   "target",
				Message: fmt.Sprintf("target outside limits [%g, %g]", lo, hi),
				Value:   target.Value,
			}
		}
		return SpecLimits{lower: Value(lo), upper: Value(hi), target: target}, nil

	case lower.Valid:
		if target.Valid && lower.Value > target.Value {
			// The lone limit sits above the target, so it is the upper one.
			return SpecLimits{upper: lower, target: target}, nil
		}
		return SpecLimits{lower: lower, target: target}, nil

	case upper.Valid:
		if target.Valid && upper.Value < target.Value {
			return SpecLimits{lower: upper, target: target}, nil
		}
		return SpecLimits{upper: upper, target: target}, nil

	default:
		return SpecLimits{target: target}, nil
	}
}

// Lower returns the lower specification limit, if present.
func (s SpecLimits) Lower() (float64, bool) { return s.lower.Value, s.lower.Valid }

// Upper returns the upper specification limit, if present.
func (s SpecLimits) Upper() (float64, bool) { return s.upper.Value, s.upper.Valid }

// Target returns the nominal/target value, if present.
func (s SpecLimits) Target() (float64, bool) { return s.target.Value, s.target.Valid }

// HasSpec reports whether any of lower, upper or target is present.
func (s SpecLimits) HasSpec() bool {
	return s.lower.Valid || s.upper.Valid || s.target.Valid
}

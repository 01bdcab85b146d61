package spc

import "sort"

// NumRules is the size of the pattern rule battery.
const NumRules = 8

// Rule windows. Each rule inspects every window of its width; a point
// flagged by several windows of the same rule is reported once.
const (
	rule2Window = 3  // 2 of 3 beyond zone B
	rule3Window = 5  // 4 of 5 beyond zone C
	rule4Window = 9  // same side of center
	rule5Window = 7  // monotone run
	rule6Window = 8  // all beyond zone C, either side
	rule7Window = 15 // all inside zone C, both sides
	rule8Window = 14 // alternating direction
)

// Violations holds the points implicated by one rule, as parallel value
// and label lists in series order. Both lists may be empty.
type Violations struct {
	Values []float64
	Labels []string
}

// EvaluateRules runs the eight out-of-control pattern rules against a
// scored series and returns the implicated points keyed by rule number
// (1-8). A series shorter than a rule's window trivially yields no
// violations for that rule.
//
// Zone comparisons are strict: rule 7 requires lowerC < x < upperC, and
// rule 8 requires strictly alternating first differences (ties break the
// run). Comparisons against NaN observations are false, so NaN points
// never satisfy a rule.
//
//	1: single point beyond a control limit
//	2: 2 of 3 consecutive points beyond zone B, same side
//	3: 4 of 5 consecutive points beyond zone C, same side
//	4: 9 consecutive points on the same side of center
//	5: 7 consecutive points monotonically non-decreasing or non-increasing
//	6: 8 consecutive points beyond zone C on either side
//	7: 15 consecutive points inside zone C on both sides
//	8: 14 consecutive points alternating direction
func EvaluateRules(s Scored) map[int]Violations {
	x := s.Series.Values
	b := s.Bounds

	flagged := map[int]map[int]struct{}{}
	for rule := 1; rule <= NumRules; rule++ {
		flagged[rule] = map[int]struct{}{}
	}

	// Rule 1: point beyond a control limit.
	for i, v := range x {
		if v > b.Upper || v < b.Lower {
			flagged[1][i] = struct{}{}
		}
	}

	// Rule 2: exactly 2 of 3 beyond zone B on the same side. Points
	// beyond either zone B boundary within a qualifying window are
	// implicated.
	for i := 0; i+rule2Window <= len(x); i++ {
		w := x[i : i+rule2Window]
		if countAbove(w, b.UpperB) == 2 || countBelow(w, b.LowerB) == 2 {
			for j, v := range w {
				if v > b.UpperB || v < b.LowerB {
					flagged[2][i+j] = struct{}{}
				}
			}
		}
	}

	// Rule 3: exactly 4 of 5 beyond zone C on the same side.
	for i := 0; i+rule3Window <= len(x); i++ {
		w := x[i : i+rule3Window]
		if countAbove(w, b.UpperC) == 4 || countBelow(w, b.LowerC) == 4 {
			for j, v := range w {
				if v > b.UpperC || v < b.LowerC {
					flagged[3][i+j] = struct{}{}
				}
			}
		}
	}

	// Rule 4: a full window on one side of the center line.
	for i := 0; i+rule4Window <= len(x); i++ {
		w := x[i : i+rule4Window]
		if countAbove(w, b.Center) == rule4Window || countBelow(w, b.Center) == rule4Window {
			flagWindow(flagged[4], i, rule4Window)
		}
	}

	// Rule 5: monotone run (trend).
	for i := 0; i+rule5Window <= len(x); i++ {
		w := x[i : i+rule5Window]
		if isMonotone(w) {
			flagWindow(flagged[5], i, rule5Window)
		}
	}

	// Rule 6: every point beyond zone C, either side per window.
	for i := 0; i+rule6Window <= len(x); i++ {
		w := x[i : i+rule6Window]
		if countAbove(w, b.UpperC) == rule6Window || countBelow(w, b.LowerC) == rule6Window {
			flagWindow(flagged[6], i, rule6Window)
		}
	}

	// Rule 7: every point strictly inside zone C (stratification).
	for i := 0; i+rule7Window <= len(x); i++ {
		w := x[i : i+rule7Window]
		inside := 0
		for _, v := range w {
			if b.LowerC < v && v < b.UpperC {
				inside++
			}
		}
		if inside == rule7Window {
			flagWindow(flagged[7], i, rule7Window)
		}
	}

	// Rule 8: strictly alternating first differences (systematic
	// oscillation).
	for i := 0; i+rule8Window <= len(x); i++ {
		w := x[i : i+rule8Window]
		if isAlternating(w) {
			flagWindow(flagged[8], i, rule8Window)
		}
	}

	result := make(map[int]Violations, NumRules)
	for rule, idx := range flagged {
		result[rule] = collect(s.Series, idx)
	}
	return result
}

func countAbove(w []float64, threshold float64) int {
	n := 0
	for _, v := range w {
		if v > threshold {
			n++
		}
	}
	return n
}

func countBelow(w []float64, threshold float64) int {
	n := 0
	for _, v := range w {
		if v < threshold {
			n++
		}
	}
	return n
}

func isMonotone(w []float64) bool {
	nonDecreasing, nonIncreasing := true, true
	for i := 1; i < len(w); i++ {
		if !(w[i-1] <= w[i]) {
			nonDecreasing = false
		}
		if !(w[i-1] >= w[i]) {
			nonIncreasing = false
		}
	}
	return nonDecreasing || nonIncreasing
}

func isAlternating(w []float64) bool {
	for i := 2; i < len(w); i++ {
		prev := w[i-1] - w[i-2]
		cur := w[i] - w[i-1]
		if !(prev*cur < 0) {
			return false
		}
	}
	return true
}

func flagWindow(set map[int]struct{}, start, width int) {
	for i := start; i < start+width; i++ {
		set[i] = struct{}{}
	}
}

// collect materializes a flagged index set as ordered parallel value and
// label lists.
func collect(s Series, idx map[int]struct{}) Violations {
	if len(idx) == 0 {
		return Violations{}
	}
	order := make([]int, 0, len(idx))
	for i := range idx {
		order = append(order, i)
	}
	sort.Ints(order)

	v := Violations{
		Values: make([]float64, len(order)),
		Labels: make([]string, len(order)),
	}
	for i, j := range order {
		v.Values[i] = s.Values[j]
		if j < len(s.Labels) {
			v.Labels[i] = s.Labels[j]
		}
	}
	return v
}

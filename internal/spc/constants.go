package spc

// Control chart constants per ASQ tables. The range-based standard
// deviation estimators are biased; these factors unbias them for a given
// subgroup size. d3 is zero for subgroup sizes below seven.

// Supported subgroup sizes. Sizes of ten or more are usually better
// served by an X̄-S chart, but the tables cover the full published range.
const (
	MinSubgroupSize = 2
	MaxSubgroupSize = 25
)

// ConstantsRow holds the chart constants for one subgroup size.
// D2 unbiases the mean range as a standard deviation estimate, D3 and D4
// bound the range chart, A2 bounds the mean chart, and E2 bounds the
// individuals chart (moving ranges always use the n=2 row).
type ConstantsRow struct {
	N  int
	D2 float64
	D3 float64
	D4 float64
	A2 float64
	E2 float64
}

var constantsByN = buildConstants()

// Constants returns the chart constants row for subgroup size n.
// Sizes outside [MinSubgroupSize, MaxSubgroupSize] fail with a
// ConstructionError.
func Constants(n int) (ConstantsRow, error) {
	row, ok := constantsByN[n]
	if !ok {
		return ConstantsRow{}, &ConstructionError{
			Field:   "subgroup_size",
			Message: "unsupported subgroup size, supported range is 2 to 25",
			Value:   n,
		}
	}
	return row, nil
}

func buildConstants() map[int]ConstantsRow {
	// Rows are indexed n-2, n = 2..25.
	d2 := []float64{
		1.128, 1.693, 2.059, 2.326, 2.534, 2.704, 2.847, 2.970,
		3.078, 3.173, 3.258, 3.336, 3.407, 3.472, 3.532, 3.588,
		3.640, 3.689, 3.735, 3.778, 3.819, 3.858, 3.895, 3.931,
	}
	d3 := []float64{
		0.0, 0.0, 0.0, 0.0, 0.0, 0.076, 0.136, 0.184,
		0.223, 0.256, 0.283, 0.307, 0.328, 0.347, 0.363, 0.378,
		0.391, 0.403, 0.415, 0.425, 0.434, 0.443, 0.451, 0.459,
	}
	d4 := []float64{
		3.267, 2.574, 2.282, 2.114, 2.004, 1.924, 1.864, 1.816,
		1.777, 1.744, 1.717, 1.693, 1.672, 1.653, 1.637, 1.622,
		1.608, 1.597, 1.585, 1.575, 1.566, 1.557, 1.548, 1.541,
	}
	a2 := []float64{
		1.880, 1.023, 0.729, 0.577, 0.483, 0.419, 0.373, 0.337,
		0.308, 0.285, 0.266, 0.249, 0.235, 0.223, 0.212, 0.203,
		0.194, 0.187, 0.180, 0.173, 0.167, 0.162, 0.157, 0.153,
	}
	// E2 = 3/d2, published to three decimals.
	e2 := []float64{
		2.660, 1.772, 1.457, 1.290, 1.184, 1.109, 1.054, 1.010,
		0.975, 0.946, 0.921, 0.899, 0.880, 0.864, 0.849, 0.836,
		0.824, 0.813, 0.803, 0.794, 0.786, 0.778, 0.770, 0.763,
	}

	rows := make(map[int]ConstantsRow, len(d2))
	for i := range d2 {
		n := i + MinSubgroupSize
		rows[n] = ConstantsRow{N: n, D2: d2[i], D3: d3[i], D4: d4[i], A2: a2[i], E2: e2[i]}
	}
	return rows
}

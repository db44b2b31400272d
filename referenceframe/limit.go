package referenceframe

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/jointplan/utils"
)

// Limit represents the limits of motion for one joint.
type Limit struct {
	Min float64
	Max float64
}

// LimitsFromBounds pairs up parallel lower/upper bound slices into Limits,
// validating that the slices agree in length and that each pair is ordered.
func LimitsFromBounds(lower, upper []float64) ([]Limit, error) {
	if len(lower) != len(upper) {
		return nil, errors.Errorf("lower bounds have length %d but upper bounds have length %d", len(lower), len(upper))
	}
	var errAll error
	limits := make([]Limit, 0, len(lower))
	for i, l := range lower {
		if l > upper[i] {
			errAll = multierr.Append(errAll, errors.Errorf("joint %d has lower bound %f above upper bound %f", i, l, upper[i]))
			continue
		}
		limits = append(limits, Limit{Min: l, Max: upper[i]})
	}
	if errAll != nil {
		return nil, errAll
	}
	return limits, nil
}

// LimitsAlmostEqual returns true if the two sets of limits are equal within a small epsilon.
func LimitsAlmostEqual(a, b []Limit) bool {
	if len(a) != len(b) {
		return false
	}

	const epsilon = 1e-5
	for idx, x := range a {
		if !utils.Float64AlmostEqual(x.Min, b[idx].Min, epsilon) ||
			!utils.Float64AlmostEqual(x.Max, b[idx].Max, epsilon) {
			return false
		}
	}

	return true
}

// RandomInputs will produce a set of valid, in-bounds inputs, one drawn uniformly per limit.
func RandomInputs(limits []Limit, rSeed *rand.Rand) []Input {
	if rSeed == nil {
		//nolint:gosec
		rSeed = rand.New(rand.NewSource(1))
	}
	pos := make([]Input, 0, len(limits))
	for _, limit := range limits {
		l, u := limit.Min, limit.Max

		// Default to [-999,999] as range if limits are infinite
		if l == math.Inf(-1) {
			l = -999
		}
		if u == math.Inf(1) {
			u = 999
		}

		pos = append(pos, Input{rSeed.Float64()*(u-l) + l})
	}
	return pos
}

// ClampToLimits returns a copy of the given inputs with each value capped to its limit range.
func ClampToLimits(inputs []Input, limits []Limit) []Input {
	clamped := make([]Input, len(inputs))
	for i, input := range inputs {
		clamped[i] = Input{utils.Clamp(input.Value, limits[i].Min, limits[i].Max)}
	}
	return clamped
}

// InputsWithinLimits returns true if every input value lies within its corresponding limit range.
func InputsWithinLimits(inputs []Input, limits []Limit) bool {
	if len(inputs) != len(limits) {
		return false
	}
	for i, input := range inputs {
		if input.Value < limits[i].Min || input.Value > limits[i].Max {
			return false
		}
	}
	return true
}
